// Package testutil provides testing utilities for countvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, thread-safe RNG with helpers for generating
// float64 payloads, logical ranges and rounding tie values.
//
//	rng := testutil.NewRNG(seed)
//	vals := make([]float64, 128)
//	rng.FillUniform(vals, -10, 10)
//	from, to := rng.RangeWithin(first, last)
package testutil
