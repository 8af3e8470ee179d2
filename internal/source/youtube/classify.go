package youtube

import (
	"strings"

	"video_notifier/internal/domain"
)

// LiveHintFunc decides whether an item is a potential live or
// scheduled broadcast worth a detail lookup. Title and thumbnail
// matching is inherently fuzzy and locale-coupled, so the predicate is
// injectable; tests supply deterministic fixtures.
type LiveHintFunc func(item domain.Item) bool

var liveTitleMarkers = []string{
	"live",
	"stream",
	"na żywo",
	"transmisja",
	"🔴",
}

const liveThumbnailMarker = "_live"

// DefaultLiveHint flags items with an explicit broadcast status, a
// live-indicator substring in the title, or a live-marker thumbnail.
func DefaultLiveHint(item domain.Item) bool {
	if item.LiveStatus == "live" || item.LiveStatus == "upcoming" {
		return true
	}

	title := strings.ToLower(item.Title)
	for _, marker := range liveTitleMarkers {
		if strings.Contains(title, marker) {
			return true
		}
	}

	if item.ThumbnailURL != nil && strings.Contains(*item.ThumbnailURL, liveThumbnailMarker) {
		return true
	}
	return false
}

// partition splits items into three disjoint buckets. Live signals
// win over scheduled ones: an item that has actually started is a
// stream even if a scheduled start is also present.
func partition(items []domain.Item) *domain.RecentItems {
	result := &domain.RecentItems{}

	for _, it := range items {
		switch {
		case it.LiveStatus == "live" || it.ActualStartAt != nil:
			result.Streams = append(result.Streams, it)
		case it.LiveStatus == "upcoming" || it.ScheduledStartAt != nil:
			result.Scheduled = append(result.Scheduled, it)
		default:
			result.Videos = append(result.Videos, it)
		}
	}

	return result
}
