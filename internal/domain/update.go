package domain

import "time"

// Category classifies a discovered item.
type Category string

const (
	CategoryVideo     Category = "video"
	CategoryLive      Category = "live"
	CategoryScheduled Category = "scheduled"
)

// Namespace partitions the deduplication ledger. Stream entries have a
// longer retention so an ongoing broadcast is never re-announced.
type Namespace string

const (
	NamespaceVideo  Namespace = "video"
	NamespaceStream Namespace = "stream"
)

// Item is a raw entry returned by a source, before dedup and
// freshness filtering.
type Item struct {
	ID               string
	Title            string
	ChannelTitle     string
	ThumbnailURL     *string
	PublishedAt      time.Time
	ScheduledStartAt *time.Time
	ActualStartAt    *time.Time
	LiveStatus       string // "live", "upcoming" or empty
}

// RecentItems is the classified result of one primary-source fetch.
// The three buckets are disjoint: live beats scheduled beats video.
type RecentItems struct {
	Videos    []Item
	Streams   []Item
	Scheduled []Item
}

// Event is the outbound message to the delivery frontend: one Update
// fanned out to one destination of a subscriber group.
type Event struct {
	Update      Update  `json:"update"`
	ChannelID   string  `json:"channel_id"`
	GroupID     string  `json:"group_id"`
	Destination string  `json:"destination"`
	Template    *string `json:"template,omitempty"`
}

// Update is a normalized notification about one newly discovered item.
type Update struct {
	Category         Category   `json:"category"`
	ItemID           string     `json:"item_id"`
	Title            string     `json:"title"`
	URL              string     `json:"url"`
	ThumbnailURL     *string    `json:"thumbnail_url,omitempty"`
	ChannelTitle     string     `json:"channel_title"`
	PublishedAt      time.Time  `json:"published_at"`
	ScheduledStartAt *time.Time `json:"scheduled_start_at,omitempty"`
}
