package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"video_notifier/internal/config"
	"video_notifier/internal/domain"
	"video_notifier/internal/keypool"
)

const watchURLPrefix = "https://www.youtube.com/watch?v="

// RunStats is a snapshot of poller counters since process start.
type RunStats struct {
	Checks        int64
	CooldownSkips int64
	FeedFallbacks int64
	Notifications int64
	Errors        int64
}

// Poller orchestrates one channel check: cooldown, primary fetch with
// feed fallback on credential exhaustion, freshness filtering and
// dedup, then fan-out of updates to group destinations.
type Poller struct {
	primary   PrimarySource
	secondary SecondarySource
	subs      SubscriptionStore
	states    ChannelStateStore
	ledger    Ledger
	publisher Publisher
	logger    *slog.Logger
	cfg       config.PollConfig

	mu       sync.Mutex
	lastPoll map[string]time.Time
	stats    RunStats

	now func() time.Time
}

func NewPoller(
	primary PrimarySource,
	secondary SecondarySource,
	subs SubscriptionStore,
	states ChannelStateStore,
	ledger Ledger,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.PollConfig,
) *Poller {
	return &Poller{
		primary:   primary,
		secondary: secondary,
		subs:      subs,
		states:    states,
		ledger:    ledger,
		publisher: publisher,
		logger:    logger.With("component", "poller"),
		cfg:       cfg,
		lastPoll:  make(map[string]time.Time),
		now:       time.Now,
	}
}

// CheckChannel polls one channel and returns its new updates. Returns
// nil without polling while the channel is cooling down.
func (p *Poller) CheckChannel(ctx context.Context, channelID string) ([]domain.Update, error) {
	updates, _, _, err := p.check(ctx, channelID)
	return updates, err
}

func (p *Poller) check(ctx context.Context, channelID string) (updates []domain.Update, skipped, fallback bool, err error) {
	if !p.beginPoll(channelID) {
		p.logger.Debug("channel cooling down", "channel_id", channelID)
		p.count(func(s *RunStats) { s.CooldownSkips++ })
		return nil, true, false, nil
	}
	p.count(func(s *RunStats) { s.Checks++ })

	recent, err := p.primary.FetchRecent(ctx, channelID)
	if err != nil {
		if errors.Is(err, keypool.ErrNoUsableCredential) {
			p.logger.Info("all credentials exhausted, using feed fallback",
				"channel_id", channelID,
			)
			return p.checkViaFeed(ctx, channelID), false, true, nil
		}
		p.count(func(s *RunStats) { s.Errors++ })
		return nil, false, false, fmt.Errorf("check channel %s: %w", channelID, err)
	}

	updates = p.collect(ctx, channelID, recent)
	return updates, false, false, nil
}

// beginPoll enforces the minimum inter-poll interval and records the
// poll start.
func (p *Poller) beginPoll(channelID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if last, ok := p.lastPoll[channelID]; ok && now.Sub(last) < p.cfg.Cooldown {
		return false
	}
	p.lastPoll[channelID] = now
	return true
}

// collect turns classified buckets into updates, in order streams,
// scheduled, videos. Live items are recorded under the stream
// namespace so they survive the shorter video retention.
func (p *Poller) collect(ctx context.Context, channelID string, recent *domain.RecentItems) []domain.Update {
	now := p.now()
	var updates []domain.Update

	for _, it := range recent.Streams {
		if p.ledger.IsNotified(it.ID, domain.NamespaceStream) {
			continue
		}
		p.ledger.Record(it.ID, domain.NamespaceStream)
		updates = append(updates, newUpdate(it, domain.CategoryLive))
	}

	for _, it := range recent.Scheduled {
		if p.ledger.IsNotified(it.ID, domain.NamespaceVideo) {
			continue
		}
		if now.Sub(it.PublishedAt) > p.cfg.FreshnessWindow {
			continue
		}
		if it.ScheduledStartAt != nil && now.Sub(*it.ScheduledStartAt) > p.cfg.ScheduledExpiry {
			continue
		}
		p.ledger.Record(it.ID, domain.NamespaceVideo)
		updates = append(updates, newUpdate(it, domain.CategoryScheduled))
	}

	for _, it := range recent.Videos {
		if p.ledger.IsNotified(it.ID, domain.NamespaceVideo) {
			continue
		}
		if now.Sub(it.PublishedAt) > p.cfg.FreshnessWindow {
			continue
		}
		p.ledger.Record(it.ID, domain.NamespaceVideo)
		updates = append(updates, newUpdate(it, domain.CategoryVideo))
	}

	if len(updates) > 0 {
		if err := p.states.SetLastItem(ctx, channelID, updates[0].ItemID); err != nil {
			p.logger.Warn("failed to persist channel state",
				"channel_id", channelID,
				"error", err,
			)
		}
	}

	return updates
}

// checkViaFeed wraps the secondary source's single newest item as a
// one-element update list. On the first-ever check of a channel a
// stale item is marked seen without being surfaced, so it cannot
// resurface on every later fallback.
func (p *Poller) checkViaFeed(ctx context.Context, channelID string) []domain.Update {
	p.count(func(s *RunStats) { s.FeedFallbacks++ })

	item := p.secondary.FetchLatest(ctx, channelID)
	if item == nil {
		return nil
	}

	state, err := p.states.Get(ctx, channelID)
	if err != nil {
		p.logger.Warn("failed to load channel state",
			"channel_id", channelID,
			"error", err,
		)
		state = &domain.ChannelState{ChannelID: channelID}
	}

	if state.LastItemID == item.ID || p.ledger.IsNotified(item.ID, domain.NamespaceVideo) {
		return nil
	}
	firstCheck := state.LastItemID == ""

	if err := p.states.SetLastItem(ctx, channelID, item.ID); err != nil {
		p.logger.Warn("failed to persist channel state",
			"channel_id", channelID,
			"error", err,
		)
	}
	p.ledger.Record(item.ID, domain.NamespaceVideo)

	if firstCheck && p.now().Sub(item.PublishedAt) > p.cfg.FreshnessWindow {
		p.logger.Info("skipping stale item on first check",
			"channel_id", channelID,
			"item_id", item.ID,
		)
		return nil
	}

	return []domain.Update{newUpdate(*item, domain.CategoryVideo)}
}

// PollGroup checks every channel of a subscriber group sequentially,
// pausing between channels to smooth request bursts, and publishes
// each update to every matching destination. A failing channel is
// logged and never blocks the rest of the group.
func (p *Poller) PollGroup(ctx context.Context, groupID string) (*domain.PollStats, error) {
	start := p.now()

	channels, err := p.subs.GetChannelsForGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("load channels for group %s: %w", groupID, err)
	}

	stats := &domain.PollStats{GroupID: groupID, Channels: len(channels)}

	for i, channelID := range channels {
		if i > 0 {
			select {
			case <-ctx.Done():
				stats.Duration = time.Since(start)
				return stats, ctx.Err()
			case <-time.After(p.cfg.ChannelPause):
			}
		}

		updates, skipped, fallback, err := p.check(ctx, channelID)
		if err != nil {
			stats.Errors++
			p.logger.Error("channel check failed",
				"group_id", groupID,
				"channel_id", channelID,
				"error", err,
			)
			continue
		}
		if skipped {
			stats.Cooldown++
			continue
		}
		stats.Checked++
		if fallback {
			stats.Fallbacks++
		}
		stats.Updates += len(updates)

		if len(updates) == 0 {
			continue
		}
		stats.Published += p.publish(ctx, groupID, channelID, updates, stats)
	}

	stats.Duration = time.Since(start)
	p.logger.Info("group poll completed",
		"group_id", groupID,
		"channels", stats.Channels,
		"checked", stats.Checked,
		"cooldown", stats.Cooldown,
		"fallbacks", stats.Fallbacks,
		"updates", stats.Updates,
		"published", stats.Published,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (p *Poller) publish(ctx context.Context, groupID, channelID string, updates []domain.Update, stats *domain.PollStats) int {
	subs, err := p.subs.GetByChannel(ctx, groupID, channelID)
	if err != nil {
		stats.Errors++
		p.logger.Error("failed to load subscriptions",
			"group_id", groupID,
			"channel_id", channelID,
			"error", err,
		)
		return 0
	}

	published := 0
	for _, update := range updates {
		for _, sub := range subs {
			if sub.Category != update.Category {
				continue
			}
			event := &domain.Event{
				Update:      update,
				ChannelID:   channelID,
				GroupID:     groupID,
				Destination: sub.Destination,
				Template:    sub.Template,
			}
			if err := p.publisher.Publish(ctx, event); err != nil {
				stats.Errors++
				p.count(func(s *RunStats) { s.Errors++ })
				p.logger.Error("failed to publish update",
					"channel_id", channelID,
					"item_id", update.ItemID,
					"destination", sub.Destination,
					"error", err,
				)
				continue
			}
			published++
			p.count(func(s *RunStats) { s.Notifications++ })
		}
	}
	return published
}

// Stats returns a snapshot of the process-lifetime counters.
func (p *Poller) Stats() RunStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

func (p *Poller) count(fn func(*RunStats)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.stats)
}

func newUpdate(it domain.Item, category domain.Category) domain.Update {
	return domain.Update{
		Category:         category,
		ItemID:           it.ID,
		Title:            it.Title,
		URL:              watchURLPrefix + it.ID,
		ThumbnailURL:     it.ThumbnailURL,
		ChannelTitle:     it.ChannelTitle,
		PublishedAt:      it.PublishedAt,
		ScheduledStartAt: it.ScheduledStartAt,
	}
}
