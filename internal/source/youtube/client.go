package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"video_notifier/internal/domain"
	"video_notifier/internal/keypool"
)

const (
	SourceID = "youtube"

	defaultBaseURL    = "https://www.googleapis.com/youtube/v3"
	defaultMaxResults = 5

	// Quota costs per the Data API v3 pricing table.
	searchQuotaCost = 100
	detailQuotaCost = 1
)

// ErrUpstream marks transient primary-source failures (network, 5xx).
// The poll cycle for the affected channel is aborted and retried on
// the next scheduled tick.
var ErrUpstream = errors.New("primary source unavailable")

var (
	errQuotaDenied = errors.New("quota denied")
	errNotFound    = errors.New("channel content not found")
)

// CredentialSource supplies and accounts API credentials.
type CredentialSource interface {
	Next() (*keypool.Credential, error)
	MarkExceeded(c *keypool.Credential)
	RecordUsage(c *keypool.Credential, units int)
}

// Config holds YouTube client configuration.
type Config struct {
	BaseURL         string
	MaxResults      int
	Timeout         time.Duration
	FreshnessWindow time.Duration
	DetailPause     time.Duration
}

// Client fetches and classifies recent channel items from the YouTube
// Data API v3.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxResults  int
	freshness   time.Duration
	detailPause time.Duration
	creds       CredentialSource
	liveHint    LiveHintFunc
	logger      *slog.Logger

	now func() time.Time
}

// New creates a new YouTube client. A nil liveHint falls back to
// DefaultLiveHint.
func New(cfg Config, creds CredentialSource, liveHint LiveHintFunc, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.FreshnessWindow <= 0 {
		cfg.FreshnessWindow = time.Hour
	}
	if liveHint == nil {
		liveHint = DefaultLiveHint
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		maxResults:  cfg.MaxResults,
		freshness:   cfg.FreshnessWindow,
		detailPause: cfg.DetailPause,
		creds:       creds,
		liveHint:    liveHint,
		logger:      logger.With("source", SourceID),
		now:         time.Now,
	}
}

// FetchRecent returns the channel's fresh items partitioned into
// streams, scheduled broadcasts and plain uploads. A quota-denied
// response rotates the credential and retries the fetch once.
func (c *Client) FetchRecent(ctx context.Context, channelID string) (*domain.RecentItems, error) {
	const maxAttempts = 2

	var raw []searchItem
	var err error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var cred *keypool.Credential
		cred, err = c.creds.Next()
		if err != nil {
			return nil, fmt.Errorf("select credential: %w", err)
		}

		raw, err = c.search(ctx, channelID, cred)
		if err == nil {
			break
		}
		if errors.Is(err, errNotFound) {
			c.logger.Info("channel has no content", "channel_id", channelID)
			return &domain.RecentItems{}, nil
		}
		if errors.Is(err, errQuotaDenied) {
			c.creds.MarkExceeded(cred)
			c.logger.Warn("credential denied, rotating",
				"channel_id", channelID,
				"attempt", attempt,
			)
			continue
		}
		return nil, fmt.Errorf("search channel %s: %w", channelID, err)
	}
	if err != nil {
		return nil, fmt.Errorf("search channel %s: %w", channelID, err)
	}

	items := c.fresh(raw)
	c.resolveLiveDetails(ctx, items)

	return partition(items), nil
}

func (c *Client) search(ctx context.Context, channelID string, cred *keypool.Credential) ([]searchItem, error) {
	params := url.Values{}
	params.Set("key", cred.Key)
	params.Set("channelId", channelID)
	params.Set("part", "snippet,id")
	params.Set("order", "date")
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(c.maxResults))

	var resp searchResponse
	if err := c.get(ctx, c.baseURL+"/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	c.creds.RecordUsage(cred, searchQuotaCost)

	return resp.Items, nil
}

// fresh parses and keeps items published within the freshness window.
// Older items are never candidates for a notification.
func (c *Client) fresh(raw []searchItem) []domain.Item {
	cutoff := c.now().Add(-c.freshness)
	items := make([]domain.Item, 0, len(raw))

	for _, it := range raw {
		if it.ID.VideoID == "" {
			continue
		}
		publishedAt, err := time.Parse(time.RFC3339, it.Snippet.PublishedAt)
		if err != nil {
			c.logger.Warn("failed to parse publish time",
				"video_id", it.ID.VideoID,
				"published_at", it.Snippet.PublishedAt,
			)
			continue
		}
		if publishedAt.Before(cutoff) {
			continue
		}

		items = append(items, domain.Item{
			ID:           it.ID.VideoID,
			Title:        it.Snippet.Title,
			ChannelTitle: it.Snippet.ChannelTitle,
			ThumbnailURL: it.Snippet.Thumbnails.best(),
			PublishedAt:  publishedAt,
			LiveStatus:   it.Snippet.LiveBroadcastContent,
		})
	}

	return items
}

// resolveLiveDetails issues one detail request per potential live or
// scheduled item to pick up precise broadcast timing. Lookup failures
// are logged and skipped, never failing the fetch.
func (c *Client) resolveLiveDetails(ctx context.Context, items []domain.Item) {
	first := true
	for i := range items {
		if !c.liveHint(items[i]) {
			continue
		}
		if !first {
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.detailPause):
			}
		}
		first = false

		details, err := c.videoDetails(ctx, items[i].ID)
		if err != nil {
			c.logger.Warn("live detail lookup failed",
				"video_id", items[i].ID,
				"error", err,
			)
			continue
		}
		if details == nil {
			continue
		}
		items[i].ActualStartAt = parseBroadcastTime(details.ActualStartTime)
		items[i].ScheduledStartAt = parseBroadcastTime(details.ScheduledStartTime)
	}
}

func (c *Client) videoDetails(ctx context.Context, videoID string) (*liveStreamingDetails, error) {
	cred, err := c.creds.Next()
	if err != nil {
		return nil, fmt.Errorf("select credential: %w", err)
	}

	params := url.Values{}
	params.Set("key", cred.Key)
	params.Set("id", videoID)
	params.Set("part", "liveStreamingDetails")

	var resp videosResponse
	if err := c.get(ctx, c.baseURL+"/videos?"+params.Encode(), &resp); err != nil {
		if errors.Is(err, errQuotaDenied) {
			c.creds.MarkExceeded(cred)
		}
		return nil, err
	}
	c.creds.RecordUsage(cred, detailQuotaCost)

	if len(resp.Items) == 0 {
		return nil, nil
	}
	return resp.Items[0].LiveStreamingDetails, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return errQuotaDenied
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBroadcastTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
