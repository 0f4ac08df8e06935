package gonpp

import "fmt"

// ConnectedRegion describes the pixels changed by FloodFill.
type ConnectedRegion struct {
	BoundingBox Rect
	PixelCount  uint32
	// Value is the fill value; only the first entry is used for single
	// channel images.
	Value [3]uint32
}

func checkConnectivity(norm Norm) error {
	if norm != NormInf && norm != NormL1 {
		return fmt.Errorf("%w: connectivity norm %s", ErrInvalidArgument,
			norm.name())
	}
	return nil
}

// FloodFillBufferSize returns the scratch size FloodFill needs.
func (img *Image) FloodFillBufferSize() (int, error) {
	const fn = "nppiFloodFillGetBufferSize"
	l, err := img.bound(fn)
	if err != nil {
		return 0, err
	}
	n, st := l.floodFillBufferSize(img.SizeROI())
	return n, img.record(fn, st)
}

// FloodFill sets every pixel connected to seed that shares its value to
// value, in place. seed is relative to the ROI origin. norm selects the
// connectivity: NormInf for 8-way, NormL1 for 4-way.
func (img *Image) FloodFill(sc *StreamContext, seed Point, value uint8,
	norm Norm, buf *DeviceBuffer) (ConnectedRegion, error) {
	const fn = "nppiFloodFill_8u_C1IR_Ctx"
	if err := img.usable(); err != nil {
		return ConnectedRegion{}, err
	}
	if err := requireFormat(fn, img.format, Format8uC1); err != nil {
		return ConnectedRegion{}, err
	}
	if seed.X < 0 || seed.Y < 0 || seed.X >= img.roi.Width ||
		seed.Y >= img.roi.Height {
		return ConnectedRegion{}, fmt.Errorf("%w: seed (%d,%d) in %s ROI",
			ErrROIOutOfBounds, seed.X, seed.Y, img.SizeROI())
	}
	if err := checkConnectivity(norm); err != nil {
		return ConnectedRegion{}, err
	}
	size, err := img.FloodFillBufferSize()
	if err != nil {
		return ConnectedRegion{}, err
	}
	b, release, err := scratch(buf, size)
	if err != nil {
		return ConnectedRegion{}, err
	}
	defer release()
	l, sc, err := img.prepare(fn, sc)
	if err != nil {
		return ConnectedRegion{}, err
	}
	region, st := l.floodFill(img.roiPlane(), seed, value, norm,
		img.SizeROI(), b.ptr, sc)
	if err := img.record(fn, st); err != nil {
		return ConnectedRegion{}, err
	}
	return region, nil
}

// LabelMarkersBufferSize returns the scratch size LabelMarkers needs.
func (img *Image) LabelMarkersBufferSize() (int, error) {
	const fn = "nppiLabelMarkersUFGetBufferSize_32u_C1R"
	l, err := img.bound(fn)
	if err != nil {
		return 0, err
	}
	n, st := l.labelMarkersBufferSize(img.SizeROI())
	return n, img.record(fn, st)
}

// LabelMarkers gives every connected region of equal valued pixels in an 8u
// C1 ROI a unique label, written to the 32u C1 image dst. Labels are not
// contiguous.
func (img *Image) LabelMarkers(sc *StreamContext, dst *Image, norm Norm,
	buf *DeviceBuffer) error {
	const fn = "nppiLabelMarkersUF_8u32u_C1R_Ctx"
	if err := img.pairWith(fn, dst, Format32uC1, Format8uC1); err != nil {
		return err
	}
	if err := checkConnectivity(norm); err != nil {
		return err
	}
	size, err := img.LabelMarkersBufferSize()
	if err != nil {
		return err
	}
	b, release, err := scratch(buf, size)
	if err != nil {
		return err
	}
	defer release()
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.labelMarkers(img.roiPlane(), dst.roiPlane(), img.SizeROI(),
			norm, b.ptr, sc)
	})
}
