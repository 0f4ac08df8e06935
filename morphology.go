package gonpp

import "fmt"

var morphFormats = []Format{
	Format8uC1, Format8uC3, Format8uC4,
	Format16uC1, Format16uC3, Format16uC4,
	Format32fC1, Format32fC3, Format32fC4,
}

// Dilate replaces every pixel of the ROI with the maximum over the non-zero
// entries of mask, a row-major maskSize array. Pixels outside the image are
// replicated from the nearest edge.
func (img *Image) Dilate(sc *StreamContext, dst *Image, mask []byte,
	maskSize Size, anchor Point) error {
	return img.morphology(sc, morphDilate, dst, mask, maskSize, anchor)
}

// Erode is Dilate with the minimum instead of the maximum.
func (img *Image) Erode(sc *StreamContext, dst *Image, mask []byte,
	maskSize Size, anchor Point) error {
	return img.morphology(sc, morphErode, dst, mask, maskSize, anchor)
}

func (img *Image) morphology(sc *StreamContext, op morphOp, dst *Image,
	mask []byte, maskSize Size, anchor Point) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol(op.name()+"Border", img.format, "R")
	if err := img.pairWith(fn, dst, img.format, morphFormats...); err != nil {
		return err
	}
	if err := checkMask(maskSize, anchor); err != nil {
		return err
	}
	if len(mask) != maskSize.Width*maskSize.Height {
		return fmt.Errorf("%w: %d mask entries for %s", ErrInvalidArgument,
			len(mask), maskSize)
	}
	dmask, err := NewDeviceBuffer(len(mask))
	if err != nil {
		return err
	}
	defer dmask.Close()
	if err := dmask.Upload(sc, mask); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.morphology(op, img.format, img.roiPlane(), img.size,
			img.roi.Origin(), dst.roiPlane(), img.SizeROI(), dmask.ptr,
			maskSize, anchor, BorderReplicate, sc)
	})
}

// Dilate3x3 dilates with a full 3x3 mask centred on each pixel. The source
// must hold valid pixels one pixel beyond each side of the ROI.
func (img *Image) Dilate3x3(sc *StreamContext, dst *Image) error {
	return img.morphology3x3(sc, morphDilate, dst)
}

// Erode3x3 erodes with a full 3x3 mask centred on each pixel.
func (img *Image) Erode3x3(sc *StreamContext, dst *Image) error {
	return img.morphology3x3(sc, morphErode, dst)
}

func (img *Image) morphology3x3(sc *StreamContext, op morphOp,
	dst *Image) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol(op.name()+"3x3", img.format, "R")
	if err := img.pairWith(fn, dst, img.format, morphFormats...); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.morphology3x3(op, img.format, img.roiPlane(), dst.roiPlane(),
			img.SizeROI(), sc)
	})
}
