package keypool

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrNoUsableCredential is returned when a full rotation finds every
// credential exhausted.
var ErrNoUsableCredential = errors.New("no usable credential")

const usageLogEvery = 100

// Credential is one API key with its daily quota accounting.
type Credential struct {
	Key string

	index     int
	quotaUsed int
	exhausted bool
	resetAt   *time.Time
}

// QuotaUsed returns the units spent on this credential since its last
// reset. Only meaningful while the pool lock is not contended, so it
// is exposed for logging and tests rather than control flow.
func (c *Credential) QuotaUsed() int { return c.quotaUsed }

// Pool rotates a fixed set of credentials under a shared daily quota
// ceiling. All methods are safe for concurrent use; pollers for
// different subscriber groups share one Pool.
type Pool struct {
	mu      sync.Mutex
	creds   []*Credential
	cursor  int
	ceiling int
	loc     *time.Location
	logger  *slog.Logger

	now func() time.Time
}

type Config struct {
	Keys         []string
	QuotaCeiling int
	// Location of the primary source's quota day. Daily ceilings roll
	// over at this timezone's midnight, not UTC.
	Location *time.Location
}

func New(cfg Config, logger *slog.Logger) (*Pool, error) {
	if len(cfg.Keys) == 0 {
		return nil, errors.New("keypool: at least one API key required")
	}
	if cfg.QuotaCeiling <= 0 {
		cfg.QuotaCeiling = 10000
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	creds := make([]*Credential, len(cfg.Keys))
	for i, k := range cfg.Keys {
		creds[i] = &Credential{Key: k, index: i}
	}

	return &Pool{
		creds:   creds,
		ceiling: cfg.QuotaCeiling,
		loc:     loc,
		logger:  logger.With("component", "keypool"),
		now:     time.Now,
	}, nil
}

// Next returns the first usable credential, scanning from the rotation
// cursor. A credential whose reset time has elapsed is reset in place
// and returned. Returns ErrNoUsableCredential after a full cycle with
// no candidate.
func (p *Pool) Next() (*Credential, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	for i := 0; i < len(p.creds); i++ {
		c := p.creds[(p.cursor+i)%len(p.creds)]

		if c.exhausted && c.resetAt != nil && !now.Before(*c.resetAt) {
			p.resetLocked(c)
		}
		if c.exhausted {
			continue
		}

		p.cursor = c.index
		return c, nil
	}

	return nil, ErrNoUsableCredential
}

// MarkExceeded flags the credential as exhausted until the next local
// midnight and advances the rotation cursor past it.
func (p *Pool) MarkExceeded(c *Credential) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.markExceededLocked(c)
}

func (p *Pool) markExceededLocked(c *Credential) {
	if c.exhausted {
		return
	}
	c.exhausted = true
	resetAt := p.nextMidnight()
	c.resetAt = &resetAt
	p.cursor = (c.index + 1) % len(p.creds)

	p.logger.Warn("credential quota exceeded",
		"key_index", c.index,
		"quota_used", c.quotaUsed,
		"reset_at", resetAt,
	)
}

// RecordUsage adds units to the credential's quota counter and
// auto-exceeds it when the daily ceiling is crossed.
func (p *Pool) RecordUsage(c *Credential, units int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c.quotaUsed += units
	if c.quotaUsed%usageLogEvery < units {
		p.logger.Debug("credential usage",
			"key_index", c.index,
			"quota_used", c.quotaUsed,
		)
	}
	if c.quotaUsed >= p.ceiling {
		p.markExceededLocked(c)
	}
}

// ResetAll clears quota state for every credential and rewinds the
// cursor. Invoked once per day at the source-local midnight.
func (p *Pool) ResetAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range p.creds {
		p.resetLocked(c)
	}
	p.cursor = 0
	p.logger.Info("credential pool reset", "keys", len(p.creds))
}

func (p *Pool) resetLocked(c *Credential) {
	if c.exhausted || c.quotaUsed > 0 {
		p.logger.Info("credential reset", "key_index", c.index, "quota_used", c.quotaUsed)
	}
	c.exhausted = false
	c.quotaUsed = 0
	c.resetAt = nil
}

// ActiveCount reports how many credentials are currently usable.
func (p *Pool) ActiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, c := range p.creds {
		if !c.exhausted {
			n++
		}
	}
	return n
}

func (p *Pool) nextMidnight() time.Time {
	now := p.now().In(p.loc)
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, p.loc)
}

// RunDailyReset blocks until ctx is done, invoking ResetAll at every
// local midnight boundary.
func (p *Pool) RunDailyReset(ctx context.Context) {
	for {
		wait := time.Until(p.nextMidnight())
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
			p.ResetAll()
		}
	}
}
