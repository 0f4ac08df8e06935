package gonpp

import "fmt"

var arithFormats = []Format{
	Format8uC1, Format8uC3, Format8uC4,
	Format16uC1, Format16uC3, Format16uC4,
	Format32fC1, Format32fC3, Format32fC4,
}

var absDiffFormats = []Format{
	Format8uC1, Format8uC3, Format8uC4, Format16uC1, Format32fC1,
}

// Add stores img + other in dst. Integer results are divided by 2^scale
// before saturation; scale is ignored for 32f.
func (img *Image) Add(sc *StreamContext, other, dst *Image, scale int) error {
	return img.arithmetic(sc, opAdd, img, other, dst, scale)
}

// Sub stores img - other in dst.
func (img *Image) Sub(sc *StreamContext, other, dst *Image, scale int) error {
	// nppiSub computes src2 - src1.
	return img.arithmetic(sc, opSub, other, img, dst, scale)
}

// Mul stores img * other in dst, scaled like Add.
func (img *Image) Mul(sc *StreamContext, other, dst *Image, scale int) error {
	return img.arithmetic(sc, opMul, img, other, dst, scale)
}

// AbsDiff stores |img - other| in dst.
func (img *Image) AbsDiff(sc *StreamContext, other, dst *Image) error {
	return img.arithmetic(sc, opAbsDiff, img, other, dst, 0)
}

func arithSuffix(op arithOp, f Format) string {
	if op == opAbsDiff || f.DataType().IsFloat() {
		return "R"
	}
	return "RSfs"
}

// arithmetic runs a binary operation. src1 and src2 are passed to NPP in that
// order; img is the image the status is recorded on.
func (img *Image) arithmetic(sc *StreamContext, op arithOp, src1, src2,
	dst *Image, scale int) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol(op.name(), img.format, arithSuffix(op, img.format))
	supported := arithFormats
	if op == opAbsDiff {
		supported = absDiffFormats
	}
	if err := img.pairWith(fn, dst, img.format, supported...); err != nil {
		return err
	}
	other := src2
	if src1 != img {
		other = src1
	}
	if err := img.sameOperand(fn, other); err != nil {
		return err
	}
	if scale < 0 {
		return fmt.Errorf("%w: scale factor %d", ErrInvalidArgument, scale)
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.arithmetic(op, img.format, src1.roiPlane(), src2.roiPlane(),
			dst.roiPlane(), img.SizeROI(), scale, sc)
	})
}

var thresholdFormats = []Format{
	Format8uC1, Format8uC3,
	Format16uC1, Format16uC3,
	Format16sC1, Format16sC3,
	Format32fC1, Format32fC3,
}

// Threshold clamps every sample of the ROI to level: with CmpLess samples
// below level become level, with CmpGreater samples above it do.
func (img *Image) Threshold(sc *StreamContext, dst *Image, level float64,
	op CmpOp) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiThreshold", img.format, "R")
	if err := img.pairWith(fn, dst, img.format, thresholdFormats...); err != nil {
		return err
	}
	if op != CmpLess && op != CmpGreater {
		return fmt.Errorf("%w: threshold comparison %d", ErrInvalidArgument, op)
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.threshold(img.format, img.roiPlane(), dst.roiPlane(),
			img.SizeROI(), level, op, sc)
	})
}
