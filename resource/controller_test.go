package resource

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	// Acquire 50
	err := c.AcquireMemory(50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), c.MemoryUsage())

	// Acquire 40
	err = c.AcquireMemory(40)
	require.NoError(t, err)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Acquire 20 (should fail - limit exceeded)
	err = c.AcquireMemory(20)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Release 50
	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	// Now Acquire 20 should succeed
	err = c.AcquireMemory(20)
	require.NoError(t, err)
	assert.Equal(t, int64(60), c.MemoryUsage())
	assert.Equal(t, int64(100), c.MemoryLimit())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	err := c.AcquireMemory(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
}

func TestController_NonPositiveAmounts(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 10})

	require.NoError(t, c.AcquireMemory(0))
	require.NoError(t, c.AcquireMemory(-5))
	c.ReleaseMemory(-5)
	assert.Equal(t, int64(0), c.MemoryUsage())
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	assert.NoError(t, c.AcquireMemory(100))
	c.ReleaseMemory(100)
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
	assert.Equal(t, 0, c.IOBurst())
	assert.NoError(t, c.AcquireIO(t.Context(), 1<<20))
	assert.True(t, c.TryAcquireIO(1<<20))
}

func TestController_IO(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 10})

	assert.Equal(t, minIOBurst, c.IOBurst())

	// The bucket starts full.
	assert.True(t, c.TryAcquireIO(minIOBurst))
	// Refill at 10 B/s cannot cover another full burst immediately.
	assert.False(t, c.TryAcquireIO(minIOBurst))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	assert.Error(t, c.AcquireIO(ctx, minIOBurst))
}

func TestRateLimitedWriter(t *testing.T) {
	t.Run("unlimited passes through", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewRateLimitedWriter(t.Context(), &buf, NewController(Config{}))

		n, err := w.Write([]byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, "hello", buf.String())
	})

	t.Run("splits into bursts", func(t *testing.T) {
		c := NewController(Config{IOLimitBytesPerSec: 1 << 20})
		rec := &recordingWriter{}
		w := NewRateLimitedWriter(t.Context(), rec, c)

		payload := bytes.Repeat([]byte{0xAB}, c.IOBurst()*2+3)
		n, err := w.Write(payload)
		require.NoError(t, err)
		assert.Equal(t, len(payload), n)
		assert.Equal(t, []int{c.IOBurst(), c.IOBurst(), 3}, rec.sizes)
	})

	t.Run("cancelled context", func(t *testing.T) {
		c := NewController(Config{IOLimitBytesPerSec: 1})
		require.True(t, c.TryAcquireIO(c.IOBurst())) // drain the bucket

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		var buf bytes.Buffer
		n, err := NewRateLimitedWriter(ctx, &buf, c).Write([]byte("x"))
		assert.Error(t, err)
		assert.Equal(t, 0, n)
		assert.Zero(t, buf.Len())
	})

	t.Run("underlying error", func(t *testing.T) {
		c := NewController(Config{IOLimitBytesPerSec: 1 << 20})
		boom := errors.New("boom")
		_, err := NewRateLimitedWriter(t.Context(), failingWriter{boom}, c).Write([]byte("x"))
		assert.ErrorIs(t, err, boom)
	})
}

type recordingWriter struct {
	sizes []int
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.sizes = append(w.sizes, len(p))
	return len(p), nil
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }
