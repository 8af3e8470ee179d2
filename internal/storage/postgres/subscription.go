package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"video_notifier/internal/domain"
)

type SubscriptionStore struct {
	db        *sqlx.DB
	txManager *TransactionManager
}

func NewSubscriptionStore(db *sqlx.DB) *SubscriptionStore {
	return &SubscriptionStore{db: db, txManager: NewTransactionManager(db)}
}

func (s *SubscriptionStore) ListGroups(ctx context.Context) ([]domain.Group, error) {
	var groups []domain.Group
	query := `SELECT id, poll_interval_minutes FROM groups ORDER BY id`

	err := s.db.SelectContext(ctx, &groups, query)
	return groups, err
}

func (s *SubscriptionStore) GetChannelsForGroup(ctx context.Context, groupID string) ([]string, error) {
	var channels []string
	query := `
		SELECT DISTINCT channel_id
		FROM subscriptions
		WHERE group_id = $1
		ORDER BY channel_id`

	err := s.db.SelectContext(ctx, &channels, query, groupID)
	return channels, err
}

func (s *SubscriptionStore) GetByChannel(ctx context.Context, groupID, channelID string) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	query := `
		SELECT id, group_id, channel_id, category, destination, template
		FROM subscriptions
		WHERE group_id = $1 AND channel_id = $2
		ORDER BY category`

	err := s.db.SelectContext(ctx, &subs, query, groupID, channelID)
	return subs, err
}

// Add upserts the group and the subscription in one transaction. One
// destination per (group, channel, category); re-adding replaces the
// destination and template.
func (s *SubscriptionStore) Add(ctx context.Context, group domain.Group, sub domain.Subscription) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, s.db)

		_, err := exec.ExecContext(txCtx, `
			INSERT INTO groups (id, poll_interval_minutes)
			VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET
				poll_interval_minutes = EXCLUDED.poll_interval_minutes`,
			group.ID, group.PollIntervalMinutes,
		)
		if err != nil {
			return fmt.Errorf("upsert group: %w", err)
		}

		_, err = exec.ExecContext(txCtx, `
			INSERT INTO subscriptions (group_id, channel_id, category, destination, template)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (group_id, channel_id, category) DO UPDATE SET
				destination = EXCLUDED.destination,
				template = EXCLUDED.template`,
			sub.GroupID, sub.ChannelID, sub.Category, sub.Destination, sub.Template,
		)
		if err != nil {
			return fmt.Errorf("upsert subscription: %w", err)
		}

		return nil
	})
}

func (s *SubscriptionStore) Remove(ctx context.Context, groupID, channelID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM subscriptions WHERE group_id = $1 AND channel_id = $2`,
		groupID, channelID,
	)
	return err
}

func (s *SubscriptionStore) SetPollInterval(ctx context.Context, groupID string, minutes int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO groups (id, poll_interval_minutes)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET
			poll_interval_minutes = EXCLUDED.poll_interval_minutes`,
		groupID, minutes,
	)
	return err
}
