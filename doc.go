// Package countvec provides a fixed-length float64 vector addressed by an
// arbitrary integer base, with whole-range mutation and packed extraction.
//
// It is meant for hosts that cannot afford to call in element by element:
// every operation works on an inclusive logical range [from, to] in a single
// call, and sub-ranges can be copied out as contiguous float64 or int32
// buffers (or their raw bytes) for bulk transfer.
//
// # Quick Start
//
//	v, err := countvec.New(20, 1, 1.0) // indices 1..20, all 1.0
//	if err != nil {
//	    return err
//	}
//	defer v.Close()
//
//	v.IncrementRange(2, 4, 3.3)   // 2..4 -> 4.3
//	v.MultiplyRange(3, 5, 3.3)    // 3,4 -> 14.19, 5 -> 3.3
//	counts, _ := v.PackInt(1, 20) // rounded half away from zero
//
// # Range Gate
//
// Every bulk operation is gated by InRange(from, to), which holds exactly
// when First() <= from <= to <= Last(). A reversed range is never in range.
//
// # Failure Tiers
//
// Failures are reported in three distinct ways:
//
//   - Construction: New returns an error (ErrInvalidSize, ErrOutOfMemory) and
//     no vector.
//   - Range gate: mutators and packers return false and have no side effect;
//     packers leave caller buffers untouched.
//   - Reads: Get returns NaN for an index outside [First, Last]. Use At for a
//     checked read.
//
// # Lifetime
//
// Close releases the storage. Using a vector after Close panics with an error
// wrapping ErrClosed; With scopes a vector to a function call.
//
// # Concurrency
//
// Vector has no internal synchronization. Wrap it in a Locked to share it.
package countvec
