package countvec

import (
	"encoding/binary"
	"log/slog"

	"github.com/hupe1980/countvec/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
	trackChanges     bool
	byteOrder        binary.ByteOrder
}

// Option configures Vector construction.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &countvec.BasicMetricsCollector{}
//	v, _ := countvec.New(20, 1, 0, countvec.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Mutations: %d, rejected: %d\n", stats.MutationCount, stats.MutationRejected)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for lifecycle and transfer events.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := countvec.NewJSONLogger(slog.LevelDebug)
//	v, _ := countvec.New(20, 1, 0, countvec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceController charges the vector's storage against rc's memory
// budget and throttles streamed writes by rc's IO limit.
// A single controller may be shared by many vectors.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithChangeTracking records every slot touched by a successful mutation.
// See Vector.Changed.
func WithChangeTracking() Option {
	return func(o *options) {
		o.trackChanges = true
	}
}

// WithByteOrder sets the byte order used by the byte packers and the
// streaming writers. The default is the platform's native order.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *options) {
		if order == nil {
			order = NativeByteOrder()
		}
		o.byteOrder = order
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		byteOrder:        NativeByteOrder(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
