// Package resource implements the Controller for limits shared between vectors.
//
// The Controller manages two resource types:
//
//   - Memory: Track and limit vector storage (non-blocking, fail-fast)
//   - IO: Rate-limit streamed transfers so bulk exports do not starve the host
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	v, err := countvec.New(1<<20, 0, 0, countvec.WithResourceController(rc))
//	if errors.Is(err, countvec.ErrOutOfMemory) {
//	    // budget exhausted, nothing was allocated
//	}
//	defer v.Close() // returns the reservation
//
// # IO Rate Limiting
//
// Token bucket rate limiter for streamed transfers:
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 100 * 1024 * 1024, // 100MB/s
//	})
//
//	writer := resource.NewRateLimitedWriter(ctx, conn, rc)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use. The underlying
// implementations use atomic operations and sync primitives.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
