package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"video_notifier/internal/domain"
)

type ChannelStateStore struct {
	db *sqlx.DB
}

func NewChannelStateStore(db *sqlx.DB) *ChannelStateStore {
	return &ChannelStateStore{db: db}
}

// Get returns the channel's persisted cursor. A channel never seen
// before yields a zero state, not an error.
func (s *ChannelStateStore) Get(ctx context.Context, channelID string) (*domain.ChannelState, error) {
	var state domain.ChannelState
	query := `
		SELECT channel_id, last_item_id, updated_at
		FROM channel_state
		WHERE channel_id = $1`

	err := s.db.GetContext(ctx, &state, query, channelID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.ChannelState{ChannelID: channelID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *ChannelStateStore) SetLastItem(ctx context.Context, channelID, itemID string) error {
	query := `
		INSERT INTO channel_state (channel_id, last_item_id, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (channel_id) DO UPDATE SET
			last_item_id = EXCLUDED.last_item_id,
			updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query, channelID, itemID, time.Now().UTC())
	return err
}
