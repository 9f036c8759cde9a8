package countvec

import (
	"fmt"
	"math"

	"github.com/hupe1980/countvec/internal/changeset"
	"github.com/hupe1980/countvec/internal/conv"
)

// Vector is a fixed-length float64 vector addressed by logical indices
// [First, Last], where First is the base passed to New.
//
// Vector is not safe for concurrent use; wrap it in a Locked when it must be
// shared between goroutines.
type Vector struct {
	base  int
	size  int
	first int
	last  int

	// data[i-base] holds logical index i. nil once closed.
	data  []float64
	bytes int64

	changes *changeset.Set // nil unless change tracking is enabled
	opts    options
}

// New allocates a vector of size slots addressed [base, base+size-1], with
// every slot set to initial.
//
// size must be at least 1. If a resource controller is configured the
// storage is charged against its memory budget; when the budget (or the
// runtime) cannot provide it, the returned error wraps ErrOutOfMemory and no
// vector is constructed.
func New(size, base int, initial float64, optFns ...Option) (*Vector, error) {
	o := applyOptions(optFns)

	last, bytes, err := layout(size, base, o.trackChanges)
	if err == nil {
		err = o.controller.AcquireMemory(bytes)
		if err != nil {
			err = fmt.Errorf("%w: reserving %d bytes: %w", ErrOutOfMemory, bytes, err)
		}
	}

	var data []float64
	if err == nil {
		data, err = allocate(size)
		if err != nil {
			o.controller.ReleaseMemory(bytes)
		}
	}

	o.metricsCollector.RecordCreate(bytes, err)
	o.logger.LogCreate(size, base, bytes, err)
	if err != nil {
		return nil, err
	}

	for i := range data {
		data[i] = initial
	}

	v := &Vector{
		base:  base,
		size:  size,
		first: base,
		last:  last,
		data:  data,
		bytes: bytes,
		opts:  o,
	}
	if o.trackChanges {
		v.changes = changeset.New()
	}
	v.opts.logger = o.logger.WithBounds(v.first, v.last)
	return v, nil
}

// With creates a vector, passes it to fn and closes it when fn returns.
func With(size, base int, initial float64, fn func(*Vector) error, optFns ...Option) error {
	v, err := New(size, base, initial, optFns...)
	if err != nil {
		return err
	}
	defer v.Close() //nolint:errcheck // only fails if fn already closed v
	return fn(v)
}

// layout validates the construction request and returns the last logical
// index and the storage footprint in bytes.
func layout(size, base int, trackChanges bool) (int, int64, error) {
	if size < 1 {
		return 0, 0, &SizeError{Size: size, Base: base, Reason: "size must be at least 1"}
	}

	last, err := conv.AddInt(base, size-1)
	if err != nil {
		return 0, 0, &SizeError{Size: size, Base: base, Reason: "last index overflows int", cause: err}
	}

	if trackChanges {
		if _, err := conv.IntToUint32(size - 1); err != nil {
			return 0, 0, &SizeError{Size: size, Base: base, Reason: "change tracking supports at most 2^32 slots", cause: err}
		}
	}

	bytes, err := conv.MulInt64(int64(size), int64(DoubleSize))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	return last, bytes, nil
}

// allocate turns a runtime allocation panic into ErrOutOfMemory.
func allocate(size int) (data []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = fmt.Errorf("%w: allocating %d slots: %v", ErrOutOfMemory, size, r)
		}
	}()
	return make([]float64, size), nil
}

// Close releases the vector's storage and its memory reservation.
//
// Close on an already closed vector returns ErrClosed. Every other method
// panics once the vector is closed.
func (v *Vector) Close() error {
	if v == nil {
		return nil
	}
	if v.data == nil {
		return ErrClosed
	}

	v.data = nil
	v.changes = nil
	v.opts.controller.ReleaseMemory(v.bytes)
	v.opts.metricsCollector.RecordClose(v.bytes)
	v.opts.logger.LogClose(v.size, v.bytes)
	return nil
}

// Closed reports whether Close has been called.
func (v *Vector) Closed() bool {
	return v.data == nil
}

func (v *Vector) mustOpen() {
	if v.data == nil {
		panic(fmt.Errorf("countvec: use of closed vector: %w", ErrClosed))
	}
}

// InRange reports whether first <= from <= to <= last.
//
// A reversed range (from > to) is never in range, even when both ends are
// individually within bounds.
func (v *Vector) InRange(from, to int) bool {
	v.mustOpen()
	return v.inRange(from, to)
}

func (v *Vector) inRange(from, to int) bool {
	return v.first <= from && from <= to && to <= v.last
}

// window returns the storage backing [from, to], or false if the range gate fails.
func (v *Vector) window(from, to int) ([]float64, bool) {
	v.mustOpen()
	if !v.inRange(from, to) {
		return nil, false
	}
	return v.data[from-v.base : to-v.base+1], true
}

// First returns the first valid logical index (the base).
func (v *Vector) First() int {
	v.mustOpen()
	return v.first
}

// Last returns the last valid logical index.
func (v *Vector) Last() int {
	v.mustOpen()
	return v.last
}

// Len returns the number of slots.
func (v *Vector) Len() int {
	v.mustOpen()
	return v.size
}

// Bounds returns [First, Last].
func (v *Vector) Bounds() Range {
	v.mustOpen()
	return Range{From: v.first, To: v.last}
}

// Get returns the value at logical index pos, or NaN if pos is out of range.
func (v *Vector) Get(pos int) float64 {
	w, ok := v.window(pos, pos)
	if !ok {
		return math.NaN()
	}
	return w[0]
}

// At is the checked variant of Get.
func (v *Vector) At(pos int) (float64, error) {
	w, ok := v.window(pos, pos)
	if !ok {
		return 0, v.rangeError(pos, pos)
	}
	return w[0], nil
}

func (v *Vector) rangeError(from, to int) error {
	return &RangeError{From: from, To: to, First: v.first, Last: v.last}
}

// SetRange sets every slot in [from, to] to value.
// It returns false, leaving the vector untouched, if the range is invalid.
func (v *Vector) SetRange(from, to int, value float64) bool {
	w, ok := v.mutable(OpSet, from, to)
	if !ok {
		return false
	}
	for i := range w {
		w[i] = value
	}
	return true
}

// IncrementRange adds value to every slot in [from, to].
// It returns false, leaving the vector untouched, if the range is invalid.
func (v *Vector) IncrementRange(from, to int, value float64) bool {
	w, ok := v.mutable(OpIncrement, from, to)
	if !ok {
		return false
	}
	for i := range w {
		w[i] += value
	}
	return true
}

// MultiplyRange multiplies every slot in [from, to] by value.
// It returns false, leaving the vector untouched, if the range is invalid.
func (v *Vector) MultiplyRange(from, to int, value float64) bool {
	w, ok := v.mutable(OpMultiply, from, to)
	if !ok {
		return false
	}
	for i := range w {
		w[i] *= value
	}
	return true
}

func (v *Vector) mutable(op string, from, to int) ([]float64, bool) {
	w, ok := v.window(from, to)
	v.opts.metricsCollector.RecordMutation(op, len(w), ok)
	if ok && v.changes != nil {
		v.changes.AddRange(uint32(from-v.base), uint32(to-v.base))
	}
	return w, ok
}
