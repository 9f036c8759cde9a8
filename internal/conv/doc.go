// Package conv provides checked numeric conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned and different bit-width types.
//
// Use cases:
//   - Sizing storage reservations from caller-supplied element counts
//   - Mapping physical slot offsets into 32-bit bitmap keys
//   - Narrowing rounded float64 values into packed int32 buffers
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices inside a validated range), use direct type casts instead to avoid overhead.
package conv
