package countvec_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/countvec"
	"github.com/hupe1980/countvec/resource"
	"github.com/hupe1980/countvec/testutil"
)

func randomVector(t *testing.T, size, base int, opts ...countvec.Option) *countvec.Vector {
	t.Helper()
	rng := testutil.NewRNG(4711)
	v := newVector(t, size, base, 0, opts...)
	vals := make([]float64, size)
	rng.FillUniform(vals, -100, 100)
	for i, x := range vals {
		require.True(t, v.SetRange(base+i, base+i, x))
	}
	return v
}

func TestWriteDoubles(t *testing.T) {
	// More than one chunk.
	v := randomVector(t, 1500, -700, countvec.WithByteOrder(binary.LittleEndian))

	var buf bytes.Buffer
	n, err := v.WriteDoubles(t.Context(), &buf, -690, 790)
	require.NoError(t, err)

	want, ok := v.PackDouble(-690, 790)
	require.True(t, ok)
	require.Equal(t, int64(len(want)*countvec.DoubleSize), n)
	require.Equal(t, len(want)*countvec.DoubleSize, buf.Len())

	raw := buf.Bytes()
	for i, x := range want {
		got := math.Float64frombits(binary.LittleEndian.Uint64(raw[i*countvec.DoubleSize:]))
		require.Equal(t, x, got, "element %d", i)
	}

	// Same bytes as the in-memory packer.
	packed := make([]byte, len(want)*countvec.DoubleSize)
	require.True(t, v.PackDoubleBytes(packed, -690, 790))
	assert.Equal(t, packed, raw)
}

func TestWriteInts(t *testing.T) {
	v := randomVector(t, 600, 1, countvec.WithByteOrder(binary.BigEndian))

	var buf bytes.Buffer
	n, err := v.WriteInts(t.Context(), &buf, 1, 600)
	require.NoError(t, err)
	assert.Equal(t, int64(600*countvec.IntSize), n)

	want, ok := v.PackInt(1, 600)
	require.True(t, ok)
	raw := buf.Bytes()
	for i, x := range want {
		require.Equal(t, x, int32(binary.BigEndian.Uint32(raw[i*countvec.IntSize:])))
	}
}

func TestWrite_InvalidRange(t *testing.T) {
	v := newVector(t, 20, 1, 1)

	var buf bytes.Buffer
	n, err := v.WriteDoubles(t.Context(), &buf, 4, 2)
	assert.ErrorIs(t, err, countvec.ErrOutOfRange)
	assert.Zero(t, n)
	assert.Zero(t, buf.Len())

	n, err = v.WriteInts(t.Context(), &buf, 0, 2)
	assert.ErrorIs(t, err, countvec.ErrOutOfRange)
	assert.Zero(t, n)
	assert.Zero(t, buf.Len())
}

func TestWrite_CancelledContext(t *testing.T) {
	v := newVector(t, 20, 1, 1)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var buf bytes.Buffer
	n, err := v.WriteDoubles(ctx, &buf, 1, 20)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestWrite_WriterError(t *testing.T) {
	v := newVector(t, 2000, 1, 1)
	boom := errors.New("boom")

	w := &limitWriter{limit: 100, err: boom}
	n, err := v.WriteDoubles(t.Context(), w, 1, 2000)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(100), n)
}

func TestWrite_RateLimited(t *testing.T) {
	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})
	v := randomVector(t, 100, 0, countvec.WithResourceController(rc))

	var buf bytes.Buffer
	n, err := v.WriteDoubles(t.Context(), &buf, 0, 99)
	require.NoError(t, err)
	assert.Equal(t, int64(100*countvec.DoubleSize), n)
}

// limitWriter accepts limit bytes, then fails.
type limitWriter struct {
	limit int
	n     int
	err   error
}

func (w *limitWriter) Write(p []byte) (int, error) {
	room := w.limit - w.n
	if len(p) <= room {
		w.n += len(p)
		return len(p), nil
	}
	w.n += room
	return room, w.err
}
