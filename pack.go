package countvec

import (
	"encoding/binary"
	"math"

	"github.com/hupe1980/countvec/internal/conv"
)

// PackDouble returns a copy of [from, to] in ascending logical order, with
// buffer position 0 holding logical index from.
// It returns nil, false if the range is invalid.
func (v *Vector) PackDouble(from, to int) ([]float64, bool) {
	w, ok := v.window(from, to)
	v.opts.metricsCollector.RecordPack(OpPackDouble, len(w), ok)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(w))
	copy(out, w)
	return out, true
}

// PackDoubleInto copies [from, to] into dst[:to-from+1].
// It returns false, leaving dst untouched, if the range is invalid or dst is
// too short.
func (v *Vector) PackDoubleInto(dst []float64, from, to int) bool {
	w, ok := v.window(from, to)
	ok = ok && len(dst) >= len(w)
	v.opts.metricsCollector.RecordPack(OpPackDouble, len(w), ok)
	if !ok {
		return false
	}
	copy(dst, w)
	return true
}

// PackInt returns [from, to] rounded half away from zero to int32.
// Values beyond the int32 range saturate; NaN packs as 0.
// It returns nil, false if the range is invalid.
func (v *Vector) PackInt(from, to int) ([]int32, bool) {
	w, ok := v.window(from, to)
	v.opts.metricsCollector.RecordPack(OpPackInt, len(w), ok)
	if !ok {
		return nil, false
	}
	out := make([]int32, len(w))
	packInts(out, w)
	return out, true
}

// PackIntInto is PackInt into a caller buffer of at least to-from+1 elements.
// It returns false, leaving dst untouched, if the range is invalid or dst is
// too short.
func (v *Vector) PackIntInto(dst []int32, from, to int) bool {
	w, ok := v.window(from, to)
	ok = ok && len(dst) >= len(w)
	v.opts.metricsCollector.RecordPack(OpPackInt, len(w), ok)
	if !ok {
		return false
	}
	packInts(dst, w)
	return true
}

// PackDoubleBytes writes [from, to] as raw float64 values into dst, which
// must hold at least (to-from+1)*DoubleSize bytes, using the vector's byte
// order. It returns false, leaving dst untouched, otherwise.
func (v *Vector) PackDoubleBytes(dst []byte, from, to int) bool {
	w, ok := v.window(from, to)
	ok = ok && len(dst) >= len(w)*DoubleSize
	v.opts.metricsCollector.RecordPack(OpPackDouble, len(w), ok)
	if !ok {
		return false
	}
	encodeDoubles(v.opts.byteOrder, dst, w)
	return true
}

// PackIntBytes writes [from, to] as rounded int32 values into dst, which
// must hold at least (to-from+1)*IntSize bytes, using the vector's byte
// order. It returns false, leaving dst untouched, otherwise.
func (v *Vector) PackIntBytes(dst []byte, from, to int) bool {
	w, ok := v.window(from, to)
	ok = ok && len(dst) >= len(w)*IntSize
	v.opts.metricsCollector.RecordPack(OpPackInt, len(w), ok)
	if !ok {
		return false
	}
	encodeInts(v.opts.byteOrder, dst, w)
	return true
}

func packInts(dst []int32, src []float64) {
	for i, x := range src {
		dst[i] = roundToInt32(x)
	}
}

func roundToInt32(x float64) int32 {
	return conv.Float64ToInt32(RoundHalfAwayFromZero(x))
}

func encodeDoubles(order binary.ByteOrder, dst []byte, src []float64) {
	for i, x := range src {
		order.PutUint64(dst[i*DoubleSize:], math.Float64bits(x))
	}
}

func encodeInts(order binary.ByteOrder, dst []byte, src []float64) {
	for i, x := range src {
		order.PutUint32(dst[i*IntSize:], uint32(roundToInt32(x)))
	}
}
