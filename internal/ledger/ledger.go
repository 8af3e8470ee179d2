package ledger

import (
	"log/slog"
	"sync"
	"time"

	"video_notifier/internal/domain"
)

const (
	defaultVideoRetention  = 40 * time.Minute
	defaultStreamRetention = 24 * time.Hour
)

// Ledger records item identifiers that have already been surfaced so
// a poll cycle never notifies the same item twice. Entries live in two
// namespaces with independent retention: uploads expire quickly, live
// broadcast ids are held for a full day so an ongoing stream is not
// re-announced.
type Ledger struct {
	mu      sync.Mutex
	videos  map[string]time.Time
	streams map[string]time.Time

	videoRetention  time.Duration
	streamRetention time.Duration
	logger          *slog.Logger

	now func() time.Time
}

type Config struct {
	VideoRetention  time.Duration
	StreamRetention time.Duration
}

func New(cfg Config, logger *slog.Logger) *Ledger {
	if cfg.VideoRetention <= 0 {
		cfg.VideoRetention = defaultVideoRetention
	}
	if cfg.StreamRetention <= 0 {
		cfg.StreamRetention = defaultStreamRetention
	}
	return &Ledger{
		videos:          make(map[string]time.Time),
		streams:         make(map[string]time.Time),
		videoRetention:  cfg.VideoRetention,
		streamRetention: cfg.StreamRetention,
		logger:          logger.With("component", "ledger"),
		now:             time.Now,
	}
}

// IsNotified reports whether an unexpired entry exists for the id in
// the given namespace.
func (l *Ledger) IsNotified(id string, ns domain.Namespace) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ns == domain.NamespaceStream {
		_, ok := l.streams[id]
		return ok
	}
	_, ok := l.videos[id]
	return ok
}

// Record stores the id with the current timestamp. A stream entry also
// pins a paired video entry so the broadcast's id cannot resurface as
// a fresh upload.
func (l *Ledger) Record(id string, ns domain.Namespace) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if ns == domain.NamespaceStream {
		l.streams[id] = now
	}
	l.videos[id] = now
}

// Len returns the total entry count across both namespaces.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.videos) + len(l.streams)
}

// Prune drops expired entries. A video entry is kept while a paired
// stream entry is still live; an expired stream entry takes its paired
// video entry with it. Idempotent, called between poll cycles only.
func (l *Ledger) Prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0

	for id, seenAt := range l.videos {
		if now.Sub(seenAt) <= l.videoRetention {
			continue
		}
		if _, live := l.streams[id]; live {
			continue
		}
		delete(l.videos, id)
		removed++
	}

	for id, seenAt := range l.streams {
		if now.Sub(seenAt) <= l.streamRetention {
			continue
		}
		delete(l.streams, id)
		delete(l.videos, id)
		removed++
	}

	if removed > 0 {
		l.logger.Debug("pruned ledger entries",
			"removed", removed,
			"remaining", len(l.videos)+len(l.streams),
		)
	}
}
