package countvec

import (
	"context"
	"encoding/binary"
	"io"
	"time"

	"github.com/hupe1980/countvec/resource"
)

// streamChunk is the number of elements encoded per write.
const streamChunk = 512

// WriteDoubles streams [from, to] to w as raw float64 values in the vector's
// byte order, the same bytes PackDoubleBytes produces.
//
// An invalid range returns an error wrapping ErrOutOfRange and writes nothing.
// Writes are throttled by the resource controller's IO limit, and ctx is
// checked between chunks.
func (v *Vector) WriteDoubles(ctx context.Context, w io.Writer, from, to int) (int64, error) {
	return v.writeRange(ctx, w, from, to, DoubleSize, encodeDoubles)
}

// WriteInts streams [from, to] to w as rounded int32 values in the vector's
// byte order, the same bytes PackIntBytes produces.
func (v *Vector) WriteInts(ctx context.Context, w io.Writer, from, to int) (int64, error) {
	return v.writeRange(ctx, w, from, to, IntSize, encodeInts)
}

func (v *Vector) writeRange(
	ctx context.Context,
	w io.Writer,
	from, to int,
	width int,
	encode func(order binary.ByteOrder, dst []byte, src []float64),
) (int64, error) {
	src, ok := v.window(from, to)
	if !ok {
		return 0, v.rangeError(from, to)
	}

	if v.opts.controller.IOBurst() > 0 {
		w = resource.NewRateLimitedWriter(ctx, w, v.opts.controller)
	}

	start := time.Now()
	buf := make([]byte, min(len(src), streamChunk)*width)

	var written int64
	var err error
	for len(src) > 0 {
		if err = ctx.Err(); err != nil {
			break
		}
		n := min(len(src), streamChunk)
		chunk := buf[:n*width]
		encode(v.opts.byteOrder, chunk, src[:n])

		var m int
		m, err = w.Write(chunk)
		written += int64(m)
		if err != nil {
			break
		}
		src = src[n:]
	}

	v.opts.metricsCollector.RecordWrite(written, time.Since(start), err)
	v.opts.logger.LogWrite(ctx, from, to, written, err)
	return written, err
}
