package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"video_notifier/internal/domain"
)

// GroupPoller polls every channel of one subscriber group.
type GroupPoller interface {
	PollGroup(ctx context.Context, groupID string) (*domain.PollStats, error)
}

// Pruner expires dedup entries. Called between poll cycles only, never
// while a cycle is in flight on the same goroutine.
type Pruner interface {
	Prune()
}

// Group is one scheduling unit: a subscriber group and its poll
// period.
type Group struct {
	ID       string
	Interval time.Duration
}

type Scheduler struct {
	poller GroupPoller
	pruner Pruner
	groups []Group
	logger *slog.Logger
}

func New(poller GroupPoller, pruner Pruner, groups []Group, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		poller: poller,
		pruner: pruner,
		groups: groups,
		logger: logger.With("component", "scheduler"),
	}
}

// Start runs one polling loop per group until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "groups", len(s.groups))

	var wg sync.WaitGroup
	for _, group := range s.groups {
		wg.Add(1)
		go func(g Group) {
			defer wg.Done()
			s.runGroup(ctx, g)
		}(group)
	}

	wg.Wait()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runGroup(ctx context.Context, g Group) {
	s.logger.Info("group loop started", "group_id", g.ID, "interval", g.Interval)

	s.runPoll(ctx, g.ID)

	ticker := time.NewTicker(g.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runPoll(ctx, g.ID)
		}
	}
}

func (s *Scheduler) runPoll(ctx context.Context, groupID string) {
	pollCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if _, err := s.poller.PollGroup(pollCtx, groupID); err != nil {
		s.logger.Error("group poll failed", "group_id", groupID, "error", err)
	}

	s.pruner.Prune()
}
