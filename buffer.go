package gonpp

import (
	"encoding/binary"
	"fmt"
	"math"
)

// DeviceBuffer is linear scratch memory on the device. Several operations
// need one; its required size is returned by the matching *BufferSize
// query.
type DeviceBuffer struct {
	ptr  DevicePtr
	size int
}

// NewDeviceBuffer allocates size bytes with nppsMalloc_8u.
func NewDeviceBuffer(size int) (*DeviceBuffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: buffer size %d", ErrInvalidArgument, size)
	}
	l, err := native("nppsMalloc_8u")
	if err != nil {
		return nil, err
	}
	ptr := l.malloc(size)
	if ptr == 0 {
		return nil, fmt.Errorf("%w: nppsMalloc_8u(%d)", ErrOutOfMemory, size)
	}
	return &DeviceBuffer{ptr: ptr, size: size}, nil
}

// Ptr returns the device address of the buffer.
func (b *DeviceBuffer) Ptr() DevicePtr { return b.ptr }

// Size returns the buffer length in bytes.
func (b *DeviceBuffer) Size() int { return b.size }

// Close frees the buffer. Calling Close more than once is safe.
func (b *DeviceBuffer) Close() error {
	if b == nil || b.ptr == 0 {
		return nil
	}
	l, err := native("nppsFree")
	if err != nil {
		return err
	}
	l.free(b.ptr)
	b.ptr = 0
	return nil
}

// Upload copies src into the start of the buffer and waits for the copy.
func (b *DeviceBuffer) Upload(sc *StreamContext, src []byte) error {
	if b.ptr == 0 {
		return ErrClosed
	}
	if len(src) > b.size {
		return fmt.Errorf("%w: %d bytes into %d", ErrBufferTooSmall, len(src),
			b.size)
	}
	l, err := native("cudaMemcpyAsync")
	if err != nil {
		return err
	}
	return runtimeErr(l, "cudaMemcpyAsync",
		l.copyToDevice(b.ptr, src, streamOf(sc)))
}

// Download copies the start of the buffer into dst and waits for the copy.
func (b *DeviceBuffer) Download(sc *StreamContext, dst []byte) error {
	if b.ptr == 0 {
		return ErrClosed
	}
	if len(dst) > b.size {
		return fmt.Errorf("%w: %d bytes from %d", ErrBufferTooSmall, len(dst),
			b.size)
	}
	l, err := native("cudaMemcpyAsync")
	if err != nil {
		return err
	}
	return runtimeErr(l, "cudaMemcpyAsync",
		l.copyToHost(dst, b.ptr, streamOf(sc)))
}

func streamOf(sc *StreamContext) uintptr {
	if sc == nil {
		return 0
	}
	return sc.Stream
}

// scratch returns buf when it holds at least size bytes. With a nil buf it
// allocates one and returns the function that frees it again.
func scratch(buf *DeviceBuffer, size int) (*DeviceBuffer, func(), error) {
	if buf != nil {
		if buf.ptr == 0 {
			return nil, nil, ErrClosed
		}
		if buf.size < size {
			return nil, nil, fmt.Errorf("%w: have %d bytes, need %d",
				ErrBufferTooSmall, buf.size, size)
		}
		return buf, func() {}, nil
	}
	b, err := NewDeviceBuffer(max(size, 1))
	if err != nil {
		return nil, nil, err
	}
	return b, func() { b.Close() }, nil
}

// Decoders for results NPP writes to device memory.

func float64s(b []byte) []float64 {
	out := make([]float64, len(b)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return out
}

func float32At(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
}

func int32s(b []byte) []int32 {
	out := make([]int32, len(b)/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

// samples decodes n values of type t into float64.
func samples(t DataType, b []byte, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		switch t {
		case Type8u:
			out[i] = float64(b[i])
		case Type16u:
			out[i] = float64(binary.LittleEndian.Uint16(b[i*2:]))
		case Type16s:
			out[i] = float64(int16(binary.LittleEndian.Uint16(b[i*2:])))
		case Type32s:
			out[i] = float64(int32(binary.LittleEndian.Uint32(b[i*4:])))
		case Type32u:
			out[i] = float64(binary.LittleEndian.Uint32(b[i*4:]))
		case Type32f:
			out[i] = float64(float32At(b, i))
		}
	}
	return out
}
