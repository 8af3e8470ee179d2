package youtube

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"video_notifier/internal/domain"
)

func TestDefaultLiveHint(t *testing.T) {
	liveThumb := "https://i.ytimg.com/vi/abc/hqdefault_live.jpg"
	plainThumb := "https://i.ytimg.com/vi/abc/hqdefault.jpg"

	tests := []struct {
		name string
		item domain.Item
		want bool
	}{
		{"explicit live status", domain.Item{LiveStatus: "live"}, true},
		{"explicit upcoming status", domain.Item{LiveStatus: "upcoming"}, true},
		{"english title marker", domain.Item{Title: "We are LIVE right now"}, true},
		{"polish title marker", domain.Item{Title: "Gramy NA ŻYWO"}, true},
		{"stream title marker", domain.Item{Title: "Friday Stream"}, true},
		{"emoji marker", domain.Item{Title: "🔴 watch this"}, true},
		{"live thumbnail marker", domain.Item{Title: "untitled", ThumbnailURL: &liveThumb}, true},
		{"plain upload", domain.Item{Title: "Top 10 moments", ThumbnailURL: &plainThumb}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DefaultLiveHint(tc.item))
		})
	}
}

func TestPartition_DisjointBuckets(t *testing.T) {
	now := time.Now()
	scheduled := now.Add(2 * time.Hour)

	items := []domain.Item{
		{ID: "live-1", LiveStatus: "live"},
		{ID: "started-1", ActualStartAt: &now, ScheduledStartAt: &scheduled},
		{ID: "upcoming-1", LiveStatus: "upcoming", ScheduledStartAt: &scheduled},
		{ID: "scheduled-1", ScheduledStartAt: &scheduled},
		{ID: "video-1"},
	}

	result := partition(items)

	assert.Len(t, result.Streams, 2)
	assert.Len(t, result.Scheduled, 2)
	assert.Len(t, result.Videos, 1)

	assert.Equal(t, "live-1", result.Streams[0].ID)
	assert.Equal(t, "started-1", result.Streams[1].ID, "an actually-started item is a stream even with a scheduled time")
	assert.Equal(t, "upcoming-1", result.Scheduled[0].ID)
	assert.Equal(t, "scheduled-1", result.Scheduled[1].ID)
	assert.Equal(t, "video-1", result.Videos[0].ID)
}

func TestPartition_LiveStatusNeverInVideos(t *testing.T) {
	result := partition([]domain.Item{{ID: "x", LiveStatus: "live"}})
	assert.Empty(t, result.Videos)
	assert.Empty(t, result.Scheduled)
	assert.Len(t, result.Streams, 1)
}
