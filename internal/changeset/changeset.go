// Package changeset tracks which physical slots of a vector were mutated.
//
// It wraps a 32-bit Roaring Bitmap, which keeps long contiguous runs
// (the common shape of range mutations) as compact run containers.
package changeset

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Run is an inclusive span of slot offsets.
type Run struct {
	Lo uint32
	Hi uint32
}

// Set is a set of slot offsets.
type Set struct {
	rb *roaring.Bitmap
}

// New creates an empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// AddRange marks every offset in [lo, hi].
func (s *Set) AddRange(lo, hi uint32) {
	if lo > hi {
		return
	}
	s.rb.AddRange(uint64(lo), uint64(hi)+1)
}

// Contains reports whether offset was marked.
func (s *Set) Contains(offset uint32) bool {
	return s.rb.Contains(offset)
}

// Len returns the number of marked offsets.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty reports whether no offset is marked.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Clear removes every offset.
func (s *Set) Clear() {
	s.rb.Clear()
}

// Runs returns the marked offsets as ascending, coalesced runs.
func (s *Set) Runs() []Run {
	if s.rb.IsEmpty() {
		return nil
	}

	var runs []Run
	it := s.rb.Iterator()
	cur := Run{Lo: it.Next()}
	cur.Hi = cur.Lo
	for it.HasNext() {
		v := it.Next()
		if v == cur.Hi+1 {
			cur.Hi = v
			continue
		}
		runs = append(runs, cur)
		cur = Run{Lo: v, Hi: v}
	}
	return append(runs, cur)
}
