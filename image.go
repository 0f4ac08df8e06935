package gonpp

import "fmt"

// Image describes a pitched, interleaved 2D buffer in device memory and the
// region of interest that operations act on.
//
// An Image created by NewImage owns its memory and frees it on Close. An
// Image created by WrapImage only describes memory owned by someone else.
//
// Images are not safe for concurrent use: every call records its status on
// the receiver.
type Image struct {
	ptr        DevicePtr
	pitch      int
	size       Size
	format     Format
	roi        Rect
	owned      bool
	closed     bool
	lastStatus Status
}

// NewImage allocates a width x height image of the given format. Rows are
// padded by the allocator; use Pitch for the real stride.
func NewImage(format Format, width, height int) (*Image, error) {
	if !format.Valid() && format != Format32uC1 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidArgument,
			width, height)
	}
	fn := "nppiMalloc_" + format.Suffix()
	l, err := native(fn)
	if err != nil {
		return nil, err
	}
	ptr, pitch, code := l.mallocImage(format, width, height)
	if err := runtimeErr(l, fn, code); err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, fmt.Errorf("%w: %s %dx%d", ErrOutOfMemory, fn, width,
			height)
	}
	Logger().WithField("func", fn).Debugf("allocated %dx%d pitch %d",
		width, height, pitch)
	return &Image{
		ptr:    ptr,
		pitch:  pitch,
		size:   Size{width, height},
		format: format,
		roi:    Rect{0, 0, width, height},
		owned:  true,
	}, nil
}

// WrapImage describes existing device memory. The memory is not freed by
// Close.
func WrapImage(ptr DevicePtr, pitch int, format Format, width,
	height int) (*Image, error) {
	if ptr == 0 {
		return nil, fmt.Errorf("%w: nil device pointer", ErrInvalidArgument)
	}
	if format.DataType().ElementSize() == 0 || format.Channels() < 1 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidArgument,
			width, height)
	}
	if pitch < width*format.PixelSize() {
		return nil, fmt.Errorf("%w: pitch %d shorter than a %d pixel row",
			ErrInvalidArgument, pitch, width)
	}
	return &Image{
		ptr:    ptr,
		pitch:  pitch,
		size:   Size{width, height},
		format: format,
		roi:    Rect{0, 0, width, height},
	}, nil
}

// Close releases owned device memory. Calling Close more than once is safe.
func (img *Image) Close() error {
	if img == nil || img.closed {
		return nil
	}
	img.closed = true
	if !img.owned {
		return nil
	}
	l, err := native("nppiFree")
	if err != nil {
		return err
	}
	l.freeImage(img.ptr)
	img.ptr = 0
	return nil
}

// DevicePointer returns the address of the first pixel of the image.
func (img *Image) DevicePointer() DevicePtr { return img.ptr }

// Pitch returns the row stride in bytes.
func (img *Image) Pitch() int { return img.pitch }

// Size returns the full image size.
func (img *Image) Size() Size { return img.size }

func (img *Image) Width() int  { return img.size.Width }
func (img *Image) Height() int { return img.size.Height }

// Format returns the sample type and channel count.
func (img *Image) Format() Format { return img.format }

// Channels returns the number of interleaved channels.
func (img *Image) Channels() int { return img.format.Channels() }

// ROI returns the current region of interest.
func (img *Image) ROI() Rect { return img.roi }

// SizeROI returns the size of the current region of interest.
func (img *Image) SizeROI() Size { return img.roi.Size() }

// SetROI restricts subsequent operations to r, which must lie inside the
// image.
func (img *Image) SetROI(r Rect) error {
	if !r.Within(img.size) {
		return fmt.Errorf("%w: %s in %s image", ErrROIOutOfBounds, r, img.size)
	}
	img.roi = r
	return nil
}

// ResetROI makes the whole image the region of interest.
func (img *Image) ResetROI() { img.roi = RectOf(img.size) }

// ROIPointer returns the address of the first pixel of the region of
// interest.
func (img *Image) ROIPointer() DevicePtr {
	return img.ptr.Offset(img.roi.Y*img.pitch +
		img.roi.X*img.format.PixelSize())
}

// ChannelPointer returns the address of the given channel of the first ROI
// pixel.
func (img *Image) ChannelPointer(channel int) (DevicePtr, error) {
	if channel < 0 || channel >= img.format.Channels() {
		return 0, fmt.Errorf("%w: channel %d of %d", ErrChannelOutOfRange,
			channel, img.format.Channels())
	}
	return img.ROIPointer().Offset(channel *
		img.format.DataType().ElementSize()), nil
}

// LastStatus returns the status of the most recent native call made through
// this image.
func (img *Image) LastStatus() Status { return img.lastStatus }

func (img *Image) String() string {
	return fmt.Sprintf("Image(%s %s pitch=%d roi=%s)", img.format, img.size,
		img.pitch, img.roi)
}

func (img *Image) roiPlane() plane  { return plane{img.ROIPointer(), img.pitch} }
func (img *Image) basePlane() plane { return plane{img.ptr, img.pitch} }

func (img *Image) usable() error {
	if img == nil || img.closed || img.ptr == 0 {
		return ErrClosed
	}
	return nil
}

// prepare resolves the native library and stream context for a call made
// through img.
func (img *Image) prepare(fn string, sc *StreamContext) (nativeLibrary,
	*StreamContext, error) {
	if err := img.usable(); err != nil {
		return nil, nil, err
	}
	l, err := native(fn)
	if err != nil {
		return nil, nil, err
	}
	sc, err = resolve(l, sc)
	if err != nil {
		return nil, nil, err
	}
	return l, sc, nil
}

// record stores, logs and translates the status of a native call.
func (img *Image) record(fn string, st Status) error {
	img.lastStatus = st
	logCall(fn, st)
	return checkStatus(fn, st)
}

// call runs a single native entry point on behalf of img.
func (img *Image) call(fn string, sc *StreamContext,
	do func(l nativeLibrary, sc *StreamContext) Status) error {
	l, sc, err := img.prepare(fn, sc)
	if err != nil {
		return err
	}
	return img.record(fn, do(l, sc))
}

// requireFormat checks that f is one of the formats an entry point exists
// for.
func requireFormat(fn string, f Format, supported ...Format) error {
	for _, s := range supported {
		if s == f {
			return nil
		}
	}
	return unsupported(fn, f)
}

// fitsROI checks that dst can receive a result the size of src's ROI.
func fitsROI(src, dst *Image) error {
	if err := dst.usable(); err != nil {
		return err
	}
	if !src.SizeROI().Fits(dst.SizeROI()) {
		return fmt.Errorf("%w: source ROI %s, destination ROI %s",
			ErrSizeMismatch, src.SizeROI(), dst.SizeROI())
	}
	return nil
}
