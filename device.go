package gonpp

import "fmt"

// Version contains the NPP library version.
type Version struct {
	Major, Minor, Build int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}

// GetVersion returns the version of the linked NPP library.
func GetVersion() (Version, error) {
	l, err := native("nppGetLibVersion")
	if err != nil {
		return Version{}, err
	}
	return l.version(), nil
}

// GetRuntimeVersion returns the CUDA runtime version as encoded by CUDA
// (1000*major + 10*minor).
func GetRuntimeVersion() (int, error) {
	l, err := native("cudaRuntimeGetVersion")
	if err != nil {
		return 0, err
	}
	v, code := l.runtimeVersion()
	return v, runtimeErr(l, "cudaRuntimeGetVersion", code)
}

// GetDriverVersion returns the latest CUDA version supported by the
// installed driver.
func GetDriverVersion() (int, error) {
	l, err := native("cudaDriverGetVersion")
	if err != nil {
		return 0, err
	}
	v, code := l.driverVersion()
	return v, runtimeErr(l, "cudaDriverGetVersion", code)
}

// GetDeviceCount returns the number of CUDA devices.
func GetDeviceCount() (int, error) {
	l, err := native("cudaGetDeviceCount")
	if err != nil {
		return 0, err
	}
	n, code := l.deviceCount()
	return n, runtimeErr(l, "cudaGetDeviceCount", code)
}

// SetDevice selects the device used by subsequent calls on this OS thread.
func SetDevice(gpuID int) error {
	l, err := native("cudaSetDevice")
	if err != nil {
		return err
	}
	return runtimeErr(l, "cudaSetDevice", l.setDevice(gpuID))
}

// DeviceInfo contains information about a GPU device.
type DeviceInfo struct {
	Name                string
	VRAMSize            uint64
	Integrated          bool
	MultiProcessorCount int
	WarpSize            int
	ComputeMajor        int
	ComputeMinor        int
}

func (di *DeviceInfo) GetString() string {
	return fmt.Sprintf("Name: %s VramSize: %f GiB Integrated: %t"+
		" Processor Count: %d Warp Size: %d Compute: %d.%d", di.Name,
		float64(di.VRAMSize)/1024/1024/1024, di.Integrated,
		di.MultiProcessorCount, di.WarpSize, di.ComputeMajor, di.ComputeMinor)
}

// GetDeviceInfo retrieves information about a GPU device.
func GetDeviceInfo(gpuID int) (DeviceInfo, error) {
	l, err := native("cudaGetDeviceProperties")
	if err != nil {
		return DeviceInfo{}, err
	}
	info, code := l.deviceInfo(gpuID)
	if err := runtimeErr(l, "cudaGetDeviceProperties", code); err != nil {
		return DeviceInfo{}, err
	}
	return info, nil
}

// FullGpuCheck selects the device, builds its stream context and round trips
// a small image allocation through NPP.
func FullGpuCheck(gpuID int) error {
	if err := SetDevice(gpuID); err != nil {
		return err
	}
	sc, err := NewStreamContext(0)
	if err != nil {
		return err
	}
	img, err := NewImage(Format8uC1, 64, 64)
	if err != nil {
		return err
	}
	defer img.Close()
	if err := img.Set(sc, 0); err != nil {
		return err
	}
	return Synchronize(sc)
}

// StreamContext mirrors NppStreamContext. It is the execution token passed
// to every operation: NPP launches its kernels on Stream and sizes them from
// the device attributes recorded here.
type StreamContext struct {
	// Stream is a cudaStream_t. Zero is the legacy default stream.
	Stream                      uintptr
	DeviceID                    int
	MultiProcessorCount         int
	MaxThreadsPerMultiProcessor int
	MaxThreadsPerBlock          int
	SharedMemPerBlock           int
	ComputeCapabilityMajor      int
	ComputeCapabilityMinor      int
	StreamFlags                 uint32
}

// NewStreamContext fills a context for the current device that launches
// work on stream. The stream is created and owned by the caller.
func NewStreamContext(stream uintptr) (*StreamContext, error) {
	const fn = "cudaDeviceGetAttribute"
	l, err := native(fn)
	if err != nil {
		return nil, err
	}
	sc, code := l.streamContext(stream)
	if err := runtimeErr(l, fn, code); err != nil {
		return nil, err
	}
	Logger().WithField("func", fn).Debugf("stream context for device %d",
		sc.DeviceID)
	return &sc, nil
}

// Synchronize blocks until all work queued on the context's stream is done.
func Synchronize(sc *StreamContext) error {
	l, err := native("cudaStreamSynchronize")
	if err != nil {
		return err
	}
	var stream uintptr
	if sc != nil {
		stream = sc.Stream
	}
	return runtimeErr(l, "cudaStreamSynchronize", l.synchronize(stream))
}

// resolve returns sc, or the default stream context of the current device
// when sc is nil.
func resolve(l nativeLibrary, sc *StreamContext) (*StreamContext, error) {
	if sc != nil {
		return sc, nil
	}
	def, code := l.streamContext(0)
	if err := runtimeErr(l, "cudaDeviceGetAttribute", code); err != nil {
		return nil, err
	}
	return &def, nil
}
