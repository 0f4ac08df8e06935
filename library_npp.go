//go:build npp && cgo

package gonpp

// #cgo CFLAGS: -I/usr/local/cuda/include -I/usr/include
// #cgo LDFLAGS: -L/usr/local/cuda/lib64 -lnppc -lnppial -lnppicc -lnppidei
// #cgo LDFLAGS: -lnppif -lnppig -lnppim -lnppist -lnppisu -lnpps -lcudart
// #include "gonpp_npp.h"
import "C"
import "unsafe"

// nppLibrary calls NPP and the CUDA runtime through cgo. It has no state:
// the device and stream of every call come from the stream context.
type nppLibrary struct{}

func loadLibrary() nativeLibrary { return nppLibrary{} }

// dev reinterprets a device address as a typed pointer for a native call.
// The pointer is never dereferenced on the host.
func dev[T any](p DevicePtr) *T { return (*T)(unsafe.Pointer(p)) }

func u8(p plane) *C.Npp8u   { return dev[C.Npp8u](p.ptr) }
func u16(p plane) *C.Npp16u { return dev[C.Npp16u](p.ptr) }
func s16(p plane) *C.Npp16s { return dev[C.Npp16s](p.ptr) }
func s32(p plane) *C.Npp32s { return dev[C.Npp32s](p.ptr) }
func u32(p plane) *C.Npp32u { return dev[C.Npp32u](p.ptr) }
func f32(p plane) *C.Npp32f { return dev[C.Npp32f](p.ptr) }

func step(p plane) C.int     { return C.int(p.step) }
func step32(p plane) C.Npp32s { return C.Npp32s(p.step) }

func csize(s Size) C.NppiSize {
	return C.NppiSize{width: C.int(s.Width), height: C.int(s.Height)}
}

func crect(r Rect) C.NppiRect {
	return C.NppiRect{x: C.int(r.X), y: C.int(r.Y), width: C.int(r.Width),
		height: C.int(r.Height)}
}

func cpoint(p Point) C.NppiPoint {
	return C.NppiPoint{x: C.int(p.X), y: C.int(p.Y)}
}

func cctx(sc *StreamContext) C.NppStreamContext {
	return C.gonpp_ctx(C.uintptr_t(sc.Stream), C.int(sc.DeviceID),
		C.int(sc.MultiProcessorCount), C.int(sc.MaxThreadsPerMultiProcessor),
		C.int(sc.MaxThreadsPerBlock), C.size_t(sc.SharedMemPerBlock),
		C.int(sc.ComputeCapabilityMajor), C.int(sc.ComputeCapabilityMinor),
		C.uint(sc.StreamFlags))
}

func status(s C.NppStatus) Status { return Status(s) }

// noVariant is returned when a format reaches a native method that has no
// symbol for it. Callers validate formats first, so this marks a bug.
const noVariant = StatusNotSupportedMode

func (nppLibrary) version() Version {
	v := C.nppGetLibVersion()
	return Version{int(v.major), int(v.minor), int(v.build)}
}

func (nppLibrary) runtimeVersion() (int, int) {
	var v C.int
	code := C.cudaRuntimeGetVersion(&v)
	return int(v), int(code)
}

func (nppLibrary) driverVersion() (int, int) {
	var v C.int
	code := C.cudaDriverGetVersion(&v)
	return int(v), int(code)
}

func (nppLibrary) deviceCount() (int, int) {
	var n C.int
	code := C.cudaGetDeviceCount(&n)
	return int(n), int(code)
}

func (nppLibrary) setDevice(id int) int {
	return int(C.cudaSetDevice(C.int(id)))
}

func (nppLibrary) deviceInfo(id int) (DeviceInfo, int) {
	var name [256]C.char
	var vram C.size_t
	var integrated, sms, warp, major, minor C.int
	code := C.gonpp_device_props(C.int(id), &name[0], C.size_t(len(name)),
		&vram, &integrated, &sms, &warp, &major, &minor)
	if code != 0 {
		return DeviceInfo{}, int(code)
	}
	return DeviceInfo{
		Name:                C.GoString(&name[0]),
		VRAMSize:            uint64(vram),
		Integrated:          integrated != 0,
		MultiProcessorCount: int(sms),
		WarpSize:            int(warp),
		ComputeMajor:        int(major),
		ComputeMinor:        int(minor),
	}, 0
}

func (nppLibrary) streamContext(stream uintptr) (StreamContext, int) {
	var c C.NppStreamContext
	if code := C.gonpp_stream_context(C.uintptr_t(stream), &c); code != 0 {
		return StreamContext{}, int(code)
	}
	return StreamContext{
		Stream:                      stream,
		DeviceID:                    int(c.nCudaDeviceId),
		MultiProcessorCount:         int(c.nMultiProcessorCount),
		MaxThreadsPerMultiProcessor: int(c.nMaxThreadsPerMultiProcessor),
		MaxThreadsPerBlock:          int(c.nMaxThreadsPerBlock),
		SharedMemPerBlock:           int(c.nSharedMemPerBlock),
		ComputeCapabilityMajor:      int(c.nCudaDevAttrComputeCapabilityMajor),
		ComputeCapabilityMinor:      int(c.nCudaDevAttrComputeCapabilityMinor),
		StreamFlags:                 uint32(c.nStreamFlags),
	}, 0
}

func (nppLibrary) synchronize(stream uintptr) int {
	return int(C.gonpp_synchronize(C.uintptr_t(stream)))
}

func (nppLibrary) errorString(code int) string {
	return C.GoString(C.cudaGetErrorString(C.cudaError_t(code)))
}

// mallocImage uses the NPP allocator of the format when NPP has one and a
// pitched runtime allocation otherwise. Both are released by nppiFree.
func (nppLibrary) mallocImage(f Format, width, height int) (DevicePtr, int,
	int) {
	w, h := C.int(width), C.int(height)
	var pitch C.int
	var p unsafe.Pointer
	switch f {
	case Format8uC1:
		p = unsafe.Pointer(C.nppiMalloc_8u_C1(w, h, &pitch))
	case Format8uC3:
		p = unsafe.Pointer(C.nppiMalloc_8u_C3(w, h, &pitch))
	case Format8uC4:
		p = unsafe.Pointer(C.nppiMalloc_8u_C4(w, h, &pitch))
	case Format16uC1:
		p = unsafe.Pointer(C.nppiMalloc_16u_C1(w, h, &pitch))
	case Format16uC3:
		p = unsafe.Pointer(C.nppiMalloc_16u_C3(w, h, &pitch))
	case Format16uC4:
		p = unsafe.Pointer(C.nppiMalloc_16u_C4(w, h, &pitch))
	case Format16sC1:
		p = unsafe.Pointer(C.nppiMalloc_16s_C1(w, h, &pitch))
	case Format16sC4:
		p = unsafe.Pointer(C.nppiMalloc_16s_C4(w, h, &pitch))
	case Format32sC1:
		p = unsafe.Pointer(C.nppiMalloc_32s_C1(w, h, &pitch))
	case Format32sC3:
		p = unsafe.Pointer(C.nppiMalloc_32s_C3(w, h, &pitch))
	case Format32sC4:
		p = unsafe.Pointer(C.nppiMalloc_32s_C4(w, h, &pitch))
	case Format32fC1:
		p = unsafe.Pointer(C.nppiMalloc_32f_C1(w, h, &pitch))
	case Format32fC3:
		p = unsafe.Pointer(C.nppiMalloc_32f_C3(w, h, &pitch))
	case Format32fC4:
		p = unsafe.Pointer(C.nppiMalloc_32f_C4(w, h, &pitch))
	default:
		var ptr C.uintptr_t
		var cpitch C.size_t
		code := C.gonpp_malloc_pitch(C.size_t(width*f.PixelSize()),
			C.size_t(height), &ptr, &cpitch)
		return DevicePtr(ptr), int(cpitch), int(code)
	}
	return DevicePtr(p), int(pitch), 0
}

func (nppLibrary) freeImage(p DevicePtr) {
	C.nppiFree(unsafe.Pointer(p))
}

func (nppLibrary) malloc(size int) DevicePtr {
	return DevicePtr(unsafe.Pointer(C.nppsMalloc_8u(C.size_t(size))))
}

func (nppLibrary) free(p DevicePtr) {
	C.nppsFree(unsafe.Pointer(p))
}

func (nppLibrary) copyToDevice(dst DevicePtr, src []byte, stream uintptr) int {
	if len(src) == 0 {
		return 0
	}
	return int(C.gonpp_copy_to_device(C.uintptr_t(dst),
		hostPtr(src), C.size_t(len(src)), C.uintptr_t(stream)))
}

func (nppLibrary) copyToHost(dst []byte, src DevicePtr, stream uintptr) int {
	if len(dst) == 0 {
		return 0
	}
	return int(C.gonpp_copy_to_host(hostPtr(dst),
		C.uintptr_t(src), C.size_t(len(dst)), C.uintptr_t(stream)))
}

func (nppLibrary) copy2DToDevice(dst plane, src []byte, srcPitch, rowBytes,
	rows int, stream uintptr) int {
	if rows == 0 || rowBytes == 0 {
		return 0
	}
	return int(C.gonpp_copy_2d_to_device(C.uintptr_t(dst.ptr),
		C.size_t(dst.step), hostPtr(src), C.size_t(srcPitch),
		C.size_t(rowBytes), C.size_t(rows), C.uintptr_t(stream)))
}

func (nppLibrary) copy2DToHost(dst []byte, dstPitch int, src plane, rowBytes,
	rows int, stream uintptr) int {
	if rows == 0 || rowBytes == 0 {
		return 0
	}
	return int(C.gonpp_copy_2d_to_host(hostPtr(dst),
		C.size_t(dstPitch), C.uintptr_t(src.ptr), C.size_t(src.step),
		C.size_t(rowBytes), C.size_t(rows), C.uintptr_t(stream)))
}
