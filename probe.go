package countvec

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/cpu"
)

const (
	// IntSize is the byte width of one element produced by the int packers.
	IntSize = int(unsafe.Sizeof(int32(0)))

	// DoubleSize is the byte width of one element produced by the double packers.
	DoubleSize = int(unsafe.Sizeof(float64(0)))
)

// SizeofInt reports IntSize. Hosts use it to size PackIntBytes buffers.
func SizeofInt() int { return IntSize }

// SizeofDouble reports DoubleSize. Hosts use it to size PackDoubleBytes buffers.
func SizeofDouble() int { return DoubleSize }

// Platform describes the layout packed buffers use on this machine.
type Platform struct {
	IntSize    int
	DoubleSize int
	BigEndian  bool
	ByteOrder  binary.ByteOrder
}

// NativeByteOrder returns the platform byte order.
func NativeByteOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Probe reports the packed element widths and the native byte order.
func Probe() Platform {
	return Platform{
		IntSize:    IntSize,
		DoubleSize: DoubleSize,
		BigEndian:  cpu.IsBigEndian,
		ByteOrder:  NativeByteOrder(),
	}
}
