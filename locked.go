package countvec

import (
	"context"
	"io"
	"sync"
)

// Locked guards a Vector with a read/write mutex so it can be shared between
// goroutines. Mutators and Close take the write lock; reads and packs take
// the read lock, so a configured MetricsCollector must be safe for
// concurrent use.
type Locked struct {
	mu sync.RWMutex
	v  *Vector
}

// NewLocked creates a Vector and wraps it.
func NewLocked(size, base int, initial float64, optFns ...Option) (*Locked, error) {
	v, err := New(size, base, initial, optFns...)
	if err != nil {
		return nil, err
	}
	return &Locked{v: v}, nil
}

// Lock wraps v. The caller must not use v directly afterwards.
func Lock(v *Vector) *Locked {
	return &Locked{v: v}
}

// Do runs fn with exclusive access, for sequences that must be atomic.
func (l *Locked) Do(fn func(v *Vector)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.v)
}

// View runs fn with shared access. fn must not mutate v.
func (l *Locked) View(fn func(v *Vector)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.v)
}

func (l *Locked) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.v.Close()
}

func (l *Locked) InRange(from, to int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.v.InRange(from, to)
}

func (l *Locked) Get(pos int) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.v.Get(pos)
}

func (l *Locked) At(pos int) (float64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.v.At(pos)
}

func (l *Locked) First() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.v.First()
}

func (l *Locked) Last() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.v.Last()
}

func (l *Locked) SetRange(from, to int, value float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.v.SetRange(from, to, value)
}

func (l *Locked) IncrementRange(from, to int, value float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.v.IncrementRange(from, to, value)
}

func (l *Locked) MultiplyRange(from, to int, value float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.v.MultiplyRange(from, to, value)
}

func (l *Locked) PackDouble(from, to int) ([]float64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.v.PackDouble(from, to)
}

func (l *Locked) PackInt(from, to int) ([]int32, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.v.PackInt(from, to)
}

func (l *Locked) Changed() []Range {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.v.Changed()
}

func (l *Locked) ResetChanges() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.v.ResetChanges()
}

func (l *Locked) Dump(w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.v.Dump(w)
}

// WriteDoubles holds the read lock for the whole transfer.
func (l *Locked) WriteDoubles(ctx context.Context, w io.Writer, from, to int) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.v.WriteDoubles(ctx, w, from, to)
}
