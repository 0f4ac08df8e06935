package gonpp

import "fmt"

var resizeFormats = []Format{
	Format8uC1, Format8uC3, Format8uC4,
	Format16uC1, Format16uC3, Format16uC4,
	Format16sC1, Format16sC3, Format16sC4,
	Format32fC1, Format32fC3, Format32fC4,
}

var warpFormats = []Format{
	Format8uC1, Format8uC3, Format8uC4,
	Format16uC1, Format16uC3, Format16uC4,
	Format32fC1, Format32fC3, Format32fC4,
}

// Resize scales the ROI of img to fill the ROI of dst.
func (img *Image) Resize(sc *StreamContext, dst *Image,
	interp Interpolation) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiResize", img.format, "R")
	if err := img.geometryPair(fn, dst, resizeFormats); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.resize(img.format, img.basePlane(), img.size, img.roi,
			dst.basePlane(), dst.size, dst.roi, interp, sc)
	})
}

// Mirror flips the ROI about axis into dst.
func (img *Image) Mirror(sc *StreamContext, dst *Image, axis Axis) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiMirror", img.format, "R")
	if err := img.pairWith(fn, dst, img.format, copyFormats...); err != nil {
		return err
	}
	if axis < AxisHorizontal || axis > AxisBoth {
		return fmt.Errorf("%w: mirror axis %d", ErrInvalidArgument, axis)
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.mirror(img.format, img.roiPlane(), dst.roiPlane(),
			img.SizeROI(), axis, sc)
	})
}

// WarpAffine maps the ROI of img into the ROI of dst. coeffs maps source to
// destination coordinates: x' = c00*x + c01*y + c02, y' = c10*x + c11*y + c12.
func (img *Image) WarpAffine(sc *StreamContext, dst *Image,
	coeffs [2][3]float64, interp Interpolation) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiWarpAffine", img.format, "R")
	if err := img.geometryPair(fn, dst, warpFormats); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.warpAffine(img.format, img.basePlane(), img.size, img.roi,
			dst.basePlane(), dst.roi, coeffs, interp, sc)
	})
}

// WarpPerspective maps the ROI of img into the ROI of dst through the
// projective transform coeffs.
func (img *Image) WarpPerspective(sc *StreamContext, dst *Image,
	coeffs [3][3]float64, interp Interpolation) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiWarpPerspective", img.format, "R")
	if err := img.geometryPair(fn, dst, warpFormats); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.warpPerspective(img.format, img.basePlane(), img.size,
			img.roi, dst.basePlane(), dst.roi, coeffs, interp, sc)
	})
}

// Rotate rotates the ROI by angle degrees counter-clockwise about the source
// origin, then shifts it by (shiftX, shiftY). Pixels are written only inside
// the ROI of dst.
func (img *Image) Rotate(sc *StreamContext, dst *Image, angle, shiftX,
	shiftY float64, interp Interpolation) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiRotate", img.format, "R")
	if err := img.geometryPair(fn, dst, warpFormats); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.rotate(img.format, img.basePlane(), img.size, img.roi,
			dst.basePlane(), dst.roi, angle, shiftX, shiftY, interp, sc)
	})
}

// RotateBound returns the bounding box {{minX, minY}, {maxX, maxY}} of the ROI
// after Rotate with the same parameters.
func (img *Image) RotateBound(angle, shiftX, shiftY float64) ([2][2]float64,
	error) {
	const fn = "nppiGetRotateBound"
	l, err := img.bound(fn)
	if err != nil {
		return [2][2]float64{}, err
	}
	box, st := l.rotateBound(img.roi, angle, shiftX, shiftY)
	return box, img.record(fn, st)
}

// AffineBound returns the bounding box {{minX, minY}, {maxX, maxY}} of the ROI
// after WarpAffine with coeffs.
func (img *Image) AffineBound(coeffs [2][3]float64) ([2][2]float64, error) {
	const fn = "nppiGetAffineBound"
	l, err := img.bound(fn)
	if err != nil {
		return [2][2]float64{}, err
	}
	box, st := l.affineBound(img.roi, coeffs)
	return box, img.record(fn, st)
}

// bound resolves the library for host-side helpers, which need no stream.
func (img *Image) bound(fn string) (nativeLibrary, error) {
	if err := img.usable(); err != nil {
		return nil, err
	}
	return native(fn)
}

// geometryPair validates a transform whose source and destination ROIs may
// differ in size.
func (img *Image) geometryPair(fn string, dst *Image,
	supported []Format) error {
	if err := img.usable(); err != nil {
		return err
	}
	if err := requireFormat(fn, img.format, supported...); err != nil {
		return err
	}
	if err := dst.usable(); err != nil {
		return err
	}
	if dst.format != img.format {
		return fmt.Errorf("%w: %s: destination is %s, want %s",
			ErrUnsupportedFormat, fn, dst.format, img.format)
	}
	if img.roi.Empty() || dst.roi.Empty() {
		return fmt.Errorf("%w: empty ROI", ErrInvalidArgument)
	}
	return nil
}
