package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"video_notifier/internal/domain"
)

// PrimarySource is the quota-bound API client.
type PrimarySource interface {
	FetchRecent(ctx context.Context, channelID string) (*domain.RecentItems, error)
}

// SecondarySource is the quota-free fallback feed. Best-effort: a nil
// item covers both "nothing new" and "fetch failed".
type SecondarySource interface {
	FetchLatest(ctx context.Context, channelID string) *domain.Item
}

type SubscriptionStore interface {
	ListGroups(ctx context.Context) ([]domain.Group, error)
	GetChannelsForGroup(ctx context.Context, groupID string) ([]string, error)
	GetByChannel(ctx context.Context, groupID, channelID string) ([]domain.Subscription, error)
}

type ChannelStateStore interface {
	Get(ctx context.Context, channelID string) (*domain.ChannelState, error)
	SetLastItem(ctx context.Context, channelID, itemID string) error
}

type Ledger interface {
	IsNotified(id string, ns domain.Namespace) bool
	Record(id string, ns domain.Namespace)
	Prune()
}

type Publisher interface {
	Publish(ctx context.Context, event *domain.Event) error
	Close() error
}
