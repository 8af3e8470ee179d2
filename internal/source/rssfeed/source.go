package rssfeed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"video_notifier/internal/domain"
)

const (
	SourceID = "rssfeed"

	defaultFeedURL = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"
)

// Source fetches the most recent item from a channel's RSS feed. It
// is the quota-free fallback used when every API credential is
// exhausted, so it is strictly best-effort: any fetch or parse problem
// yields a nil item, never an error the caller has to handle.
type Source struct {
	httpClient *http.Client
	feedURL    string
	parser     *gofeed.Parser
	logger     *slog.Logger
}

type Config struct {
	FeedURL string
	Timeout time.Duration
}

func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.FeedURL == "" {
		cfg.FeedURL = defaultFeedURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Source{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		feedURL:    cfg.FeedURL,
		parser:     gofeed.NewParser(),
		logger:     logger.With("source", SourceID),
	}
}

// FetchLatest returns the newest feed item for the channel, or nil
// when the feed is empty or unavailable.
func (s *Source) FetchLatest(ctx context.Context, channelID string) *domain.Item {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf(s.feedURL, channelID), nil)
	if err != nil {
		s.logger.Warn("feed request build failed", "channel_id", channelID, "error", err)
		return nil
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("feed fetch failed", "channel_id", channelID, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("feed fetch failed",
			"channel_id", channelID,
			"status", resp.StatusCode,
		)
		return nil
	}

	feed, err := s.parser.Parse(resp.Body)
	if err != nil {
		s.logger.Warn("feed parse failed", "channel_id", channelID, "error", err)
		return nil
	}
	if len(feed.Items) == 0 {
		return nil
	}

	latest := feed.Items[0]
	item := &domain.Item{
		ID:           videoID(latest),
		Title:        latest.Title,
		ChannelTitle: feed.Title,
		ThumbnailURL: thumbnailURL(latest),
	}
	if latest.PublishedParsed != nil {
		item.PublishedAt = *latest.PublishedParsed
	}
	if item.ID == "" {
		return nil
	}
	return item
}

// videoID extracts the id from the feed's "yt:video:<id>" GUID,
// falling back to the raw GUID or link.
func videoID(item *gofeed.Item) string {
	if item.GUID != "" {
		parts := strings.Split(item.GUID, ":")
		return parts[len(parts)-1]
	}
	return item.Link
}

// thumbnailURL digs the media:group thumbnail out of the feed
// extensions when present.
func thumbnailURL(item *gofeed.Item) *string {
	media, ok := item.Extensions["media"]
	if !ok {
		return nil
	}
	for _, group := range media["group"] {
		for _, thumb := range group.Children["thumbnail"] {
			if url := thumb.Attrs["url"]; url != "" {
				return &url
			}
		}
	}
	return nil
}
