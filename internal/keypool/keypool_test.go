package keypool

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestPool(t *testing.T, keys ...string) *Pool {
	t.Helper()
	p, err := New(Config{Keys: keys, QuotaCeiling: 10000, Location: time.UTC}, testLogger())
	require.NoError(t, err)
	return p
}

func TestNew_RequiresKeys(t *testing.T) {
	_, err := New(Config{}, testLogger())
	assert.Error(t, err)
}

func TestNext_ReturnsFirstUsable(t *testing.T) {
	p := newTestPool(t, "key-a", "key-b")

	c, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "key-a", c.Key)

	// Without exhaustion the cursor stays put.
	c, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, "key-a", c.Key)
}

func TestNext_SkipsExhausted(t *testing.T) {
	p := newTestPool(t, "key-a", "key-b", "key-c")

	a, err := p.Next()
	require.NoError(t, err)
	p.MarkExceeded(a)

	b, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "key-b", b.Key)
}

func TestNext_AllExhausted(t *testing.T) {
	p := newTestPool(t, "key-a", "key-b")

	for i := 0; i < 2; i++ {
		c, err := p.Next()
		require.NoError(t, err)
		p.MarkExceeded(c)
	}

	_, err := p.Next()
	assert.ErrorIs(t, err, ErrNoUsableCredential)
	assert.Equal(t, 0, p.ActiveCount())
}

func TestRecordUsage_CrossesCeiling(t *testing.T) {
	p := newTestPool(t, "key-a", "key-b")

	a, err := p.Next()
	require.NoError(t, err)

	p.RecordUsage(a, 9999)
	assert.Equal(t, 2, p.ActiveCount(), "key-a still active at 9999")

	p.RecordUsage(a, 2)
	assert.Equal(t, 1, p.ActiveCount())

	next, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "key-b", next.Key)
}

func TestNext_LazyResetAfterMidnight(t *testing.T) {
	p := newTestPool(t, "key-a")

	base := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return base }

	a, err := p.Next()
	require.NoError(t, err)
	p.RecordUsage(a, 10000)

	_, err = p.Next()
	require.ErrorIs(t, err, ErrNoUsableCredential)

	// Just before midnight the key stays exhausted.
	p.now = func() time.Time { return time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC) }
	_, err = p.Next()
	require.ErrorIs(t, err, ErrNoUsableCredential)

	// After the boundary it is reset in place and usable again.
	p.now = func() time.Time { return time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC) }
	c, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "key-a", c.Key)
	assert.Equal(t, 0, c.QuotaUsed())
}

func TestResetAll(t *testing.T) {
	p := newTestPool(t, "key-a", "key-b")

	for i := 0; i < 2; i++ {
		c, err := p.Next()
		require.NoError(t, err)
		p.MarkExceeded(c)
	}
	require.Equal(t, 0, p.ActiveCount())

	p.ResetAll()
	assert.Equal(t, 2, p.ActiveCount())

	c, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "key-a", c.Key)
	assert.Equal(t, 0, c.QuotaUsed())
}

func TestMarkExceeded_AdvancesCursor(t *testing.T) {
	p := newTestPool(t, "key-a", "key-b", "key-c")

	a, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "key-a", a.Key)

	p.MarkExceeded(a)

	b, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "key-b", b.Key)

	p.MarkExceeded(b)

	c, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "key-c", c.Key)
}
