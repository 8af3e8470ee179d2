package domain

import "time"

// Group is a set of channel subscriptions sharing one poll schedule.
type Group struct {
	ID                  string `db:"id"`
	PollIntervalMinutes int    `db:"poll_interval_minutes"`
}

// Subscription binds a channel to a delivery destination for one
// content category within a subscriber group.
type Subscription struct {
	ID          int64    `db:"id"`
	GroupID     string   `db:"group_id"`
	ChannelID   string   `db:"channel_id"`
	Category    Category `db:"category"`
	Destination string   `db:"destination"`
	Template    *string  `db:"template"`
}

// ChannelState is the persisted per-channel cursor. LastItemID backs
// the first-check semantics of the feed fallback across restarts.
type ChannelState struct {
	ChannelID  string    `db:"channel_id"`
	LastItemID string    `db:"last_item_id"`
	UpdatedAt  time.Time `db:"updated_at"`
}
