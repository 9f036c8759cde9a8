package countvec

import "fmt"

// Range is an inclusive span of logical indices.
type Range struct {
	From int
	To   int
}

// Len returns the number of indices in the range, or 0 when From > To.
func (r Range) Len() int {
	if r.From > r.To {
		return 0
	}
	return r.To - r.From + 1
}

// Contains reports whether i lies in [From, To].
func (r Range) Contains(i int) bool {
	return r.From <= i && i <= r.To
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.From, r.To)
}
