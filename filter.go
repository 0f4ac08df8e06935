package gonpp

import "fmt"

var filterFormats = []Format{
	Format8uC1, Format8uC3, Format8uC4,
	Format16uC1, Format16uC3, Format16uC4,
	Format16sC1, Format16sC3, Format16sC4,
	Format32fC1, Format32fC3, Format32fC4,
}

var sobelFormats = []Format{
	Format8uC1, Format8uC3, Format8uC4,
	Format16sC1, Format16sC3, Format16sC4,
	Format32fC1, Format32fC3, Format32fC4,
}

var medianFormats = []Format{
	Format8uC1, Format8uC3, Format8uC4,
	Format16uC1, Format16uC3, Format16uC4,
	Format32fC1, Format32fC3, Format32fC4,
}

// FilterBox averages every pixel of the ROI over a mask-sized window whose
// anchor sits on the pixel. Pixels outside the image are supplied by border.
func (img *Image) FilterBox(sc *StreamContext, dst *Image, mask Size,
	anchor Point, border BorderType) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiFilterBoxBorder", img.format, "R")
	if err := img.pairWith(fn, dst, img.format, filterFormats...); err != nil {
		return err
	}
	if err := checkMask(mask, anchor); err != nil {
		return err
	}
	if err := checkBorder(border); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.filterBox(img.format, img.roiPlane(), img.size,
			img.roi.Origin(), dst.roiPlane(), img.SizeROI(), mask, anchor,
			border, sc)
	})
}

// FilterGauss applies a fixed size Gaussian kernel.
func (img *Image) FilterGauss(sc *StreamContext, dst *Image, mask MaskSize,
	border BorderType) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiFilterGaussBorder", img.format, "R")
	if err := img.pairWith(fn, dst, img.format, filterFormats...); err != nil {
		return err
	}
	switch mask {
	case MaskSize3x3, MaskSize5x5, MaskSize7x7, MaskSize9x9, MaskSize11x11,
		MaskSize13x13, MaskSize15x15:
	default:
		return fmt.Errorf("%w: gauss mask %d", ErrInvalidArgument, mask)
	}
	if err := checkBorder(border); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.filterGauss(img.format, img.roiPlane(), img.size,
			img.roi.Origin(), dst.roiPlane(), img.SizeROI(), mask, border, sc)
	})
}

func sobelSymbol(dir SobelDirection, f Format) string {
	if dir == SobelVertical {
		return symbol("nppiFilterSobelVertBorder", f, "R")
	}
	return symbol("nppiFilterSobelHorizBorder", f, "R")
}

// FilterSobel applies the 3x3 Sobel operator in one direction.
func (img *Image) FilterSobel(sc *StreamContext, dst *Image,
	dir SobelDirection, border BorderType) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := sobelSymbol(dir, img.format)
	if err := img.pairWith(fn, dst, img.format, sobelFormats...); err != nil {
		return err
	}
	if dir != SobelHorizontal && dir != SobelVertical {
		return fmt.Errorf("%w: sobel direction %d", ErrInvalidArgument, dir)
	}
	if err := checkBorder(border); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.filterSobel(img.format, dir, img.roiPlane(), img.size,
			img.roi.Origin(), dst.roiPlane(), img.SizeROI(), border, sc)
	})
}

// FilterMedianBufferSize returns the scratch size FilterMedian needs for the
// current ROI and mask.
func (img *Image) FilterMedianBufferSize(sc *StreamContext,
	mask Size) (int, error) {
	if err := img.usable(); err != nil {
		return 0, err
	}
	fn := symbol("nppiFilterMedianGetBufferSize", img.format, "R")
	if err := requireFormat(fn, img.format, medianFormats...); err != nil {
		return 0, err
	}
	l, sc, err := img.prepare(fn, sc)
	if err != nil {
		return 0, err
	}
	n, st := l.filterMedianBufferSize(img.format, img.SizeROI(), mask, sc)
	return n, img.record(fn, st)
}

// FilterMedian replaces every pixel of the ROI with the median of its mask
// window. The source must hold valid pixels for the whole window around the
// ROI. With a nil buf a scratch buffer is allocated for the call.
func (img *Image) FilterMedian(sc *StreamContext, dst *Image, mask Size,
	anchor Point, buf *DeviceBuffer) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiFilterMedian", img.format, "R")
	if err := img.pairWith(fn, dst, img.format, medianFormats...); err != nil {
		return err
	}
	if err := checkMask(mask, anchor); err != nil {
		return err
	}
	size, err := img.FilterMedianBufferSize(sc, mask)
	if err != nil {
		return err
	}
	b, release, err := scratch(buf, size)
	if err != nil {
		return err
	}
	defer release()
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.filterMedian(img.format, img.roiPlane(), dst.roiPlane(),
			img.SizeROI(), mask, anchor, b.ptr, sc)
	})
}

func checkMask(mask Size, anchor Point) error {
	if mask.Empty() {
		return fmt.Errorf("%w: mask %s", ErrInvalidArgument, mask)
	}
	if anchor.X < 0 || anchor.Y < 0 || anchor.X >= mask.Width ||
		anchor.Y >= mask.Height {
		return fmt.Errorf("%w: anchor (%d,%d) outside %s mask",
			ErrInvalidArgument, anchor.X, anchor.Y, mask)
	}
	return nil
}

func checkBorder(b BorderType) error {
	if b < BorderNone || b > BorderMirror {
		return fmt.Errorf("%w: border type %d", ErrInvalidArgument, b)
	}
	return nil
}
