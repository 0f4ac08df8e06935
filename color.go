package gonpp

import "fmt"

var grayFormats = []Format{Format8uC3, Format16uC3, Format16sC3, Format32fC3}

// RGBToGray converts a 3 channel RGB ROI to single channel luma in dst using
// the ITU-R BT.601 weights.
func (img *Image) RGBToGray(sc *StreamContext, dst *Image) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := fmt.Sprintf("nppiRGBToGray_%s_C3C1R_Ctx", img.format.DataType())
	if err := img.pairWith(fn, dst, img.format.WithChannels(1),
		grayFormats...); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.colorConvert(convRGBToGray, img.format, img.roiPlane(),
			dst.roiPlane(), img.SizeROI(), sc)
	})
}

var colorToGrayFormats = []Format{
	Format8uC3, Format8uC4,
	Format16uC3, Format16uC4,
	Format16sC3, Format16sC4,
	Format32fC3, Format32fC4,
}

// ColorToGray converts a 3 or 4 channel ROI to a single channel weighted sum.
// coeffs holds one weight per source channel.
func (img *Image) ColorToGray(sc *StreamContext, dst *Image,
	coeffs []float32) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := fmt.Sprintf("nppiColorToGray_%s_C%dC1R_Ctx", img.format.DataType(),
		img.format.Channels())
	if err := img.pairWith(fn, dst, img.format.WithChannels(1),
		colorToGrayFormats...); err != nil {
		return err
	}
	if len(coeffs) != img.format.Channels() {
		return fmt.Errorf("%w: %d coefficients for %d channels",
			ErrInvalidArgument, len(coeffs), img.format.Channels())
	}
	var c [4]float32
	copy(c[:], coeffs)
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.colorToGray(img.format, img.roiPlane(), dst.roiPlane(),
			img.SizeROI(), c, sc)
	})
}

// RGBToYUV converts packed 8-bit RGB to packed YUV.
func (img *Image) RGBToYUV(sc *StreamContext, dst *Image) error {
	return img.convertColor(sc, convRGBToYUV, dst)
}

// YUVToRGB converts packed 8-bit YUV to packed RGB.
func (img *Image) YUVToRGB(sc *StreamContext, dst *Image) error {
	return img.convertColor(sc, convYUVToRGB, dst)
}

// RGBToYCbCr converts packed 8-bit RGB to packed YCbCr.
func (img *Image) RGBToYCbCr(sc *StreamContext, dst *Image) error {
	return img.convertColor(sc, convRGBToYCbCr, dst)
}

// YCbCrToRGB converts packed 8-bit YCbCr to packed RGB.
func (img *Image) YCbCrToRGB(sc *StreamContext, dst *Image) error {
	return img.convertColor(sc, convYCbCrToRGB, dst)
}

// RGBToHSV converts packed 8-bit RGB to packed HSV.
func (img *Image) RGBToHSV(sc *StreamContext, dst *Image) error {
	return img.convertColor(sc, convRGBToHSV, dst)
}

// HSVToRGB converts packed 8-bit HSV to packed RGB.
func (img *Image) HSVToRGB(sc *StreamContext, dst *Image) error {
	return img.convertColor(sc, convHSVToRGB, dst)
}

// convertColor runs one of the fixed 8u C3 to 8u C3 conversions.
func (img *Image) convertColor(sc *StreamContext, conv colorConversion,
	dst *Image) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol(conv.name(), img.format, "R")
	if err := img.pairWith(fn, dst, Format8uC3, Format8uC3); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.colorConvert(conv, img.format, img.roiPlane(),
			dst.roiPlane(), img.SizeROI(), sc)
	})
}

var colorTwistFormats = []Format{
	Format8uC3, Format8uC4, Format16uC3, Format32fC3,
}

func colorTwistSymbol(f Format) string {
	if f.DataType().IsFloat() {
		return symbol("nppiColorTwist", f, "R")
	}
	return symbol("nppiColorTwist32f", f, "R")
}

// ColorTwist applies an affine color transform: every destination channel c
// is twist[c][0]*r + twist[c][1]*g + twist[c][2]*b + twist[c][3]. The fourth
// channel of a 4 channel image is not transformed.
func (img *Image) ColorTwist(sc *StreamContext, dst *Image,
	twist [3][4]float32) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := colorTwistSymbol(img.format)
	if err := img.pairWith(fn, dst, img.format,
		colorTwistFormats...); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.colorTwist(img.format, img.roiPlane(), dst.roiPlane(),
			img.SizeROI(), twist, sc)
	})
}
