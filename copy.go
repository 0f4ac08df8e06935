package gonpp

import "fmt"

// Formats every nppiCopy/nppiSet/nppiMirror variant exists for.
var copyFormats = []Format{
	Format8uC1, Format8uC3, Format8uC4,
	Format16uC1, Format16uC3, Format16uC4,
	Format16sC1, Format16sC3, Format16sC4,
	Format32sC1, Format32sC3, Format32sC4,
	Format32fC1, Format32fC3, Format32fC4,
}

// Copy copies the ROI of img into the ROI of dst. Both images must share a
// format.
func (img *Image) Copy(sc *StreamContext, dst *Image) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiCopy", img.format, "R")
	if err := img.pairWith(fn, dst, img.format, copyFormats...); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.copy(img.format, img.roiPlane(), dst.roiPlane(),
			img.SizeROI(), sc)
	})
}

// CopyChannel copies one channel of img into one channel of dst, leaving the
// other channels of dst untouched.
func (img *Image) CopyChannel(sc *StreamContext, dst *Image, srcChannel,
	dstChannel int) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiCopy", img.format, "CR")
	if err := img.pairWith(fn, dst, img.format, multiChannel(
		copyFormats)...); err != nil {
		return err
	}
	src, err := img.channelPlane(srcChannel)
	if err != nil {
		return err
	}
	to, err := dst.channelPlane(dstChannel)
	if err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.copyChannel(img.format, src, to, img.SizeROI(), sc)
	})
}

// ExtractChannel copies one channel of a 3 or 4 channel image into a single
// channel image of the same type.
func (img *Image) ExtractChannel(sc *StreamContext, dst *Image,
	channel int) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := fmt.Sprintf("nppiCopy_%s_C%dC1R_Ctx", img.format.DataType(),
		img.format.Channels())
	if err := img.pairWith(fn, dst, img.format.WithChannels(1),
		multiChannel(copyFormats)...); err != nil {
		return err
	}
	src, err := img.channelPlane(channel)
	if err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.extractChannel(img.format, src, dst.roiPlane(),
			img.SizeROI(), sc)
	})
}

// InsertChannel copies a single channel image into one channel of a 3 or 4
// channel image of the same type.
func (img *Image) InsertChannel(sc *StreamContext, dst *Image,
	channel int) error {
	if err := img.usable(); err != nil {
		return err
	}
	if err := dst.usable(); err != nil {
		return err
	}
	fn := fmt.Sprintf("nppiCopy_%s_C1C%dR_Ctx", img.format.DataType(),
		dst.format.Channels())
	if err := requireFormat(fn, dst.format, multiChannel(
		copyFormats)...); err != nil {
		return err
	}
	if img.format != dst.format.WithChannels(1) {
		return unsupported(fn, img.format)
	}
	if err := fitsROI(img, dst); err != nil {
		return err
	}
	to, err := dst.channelPlane(channel)
	if err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.insertChannel(dst.format, img.roiPlane(), to, img.SizeROI(),
			sc)
	})
}

// Set fills the ROI with a constant. values holds one value per channel; a
// single value is used for every channel.
func (img *Image) Set(sc *StreamContext, values ...float64) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiSet", img.format, "R")
	if err := requireFormat(fn, img.format, copyFormats...); err != nil {
		return err
	}
	var v [4]float64
	switch len(values) {
	case 1:
		for i := range img.format.Channels() {
			v[i] = values[0]
		}
	case img.format.Channels():
		copy(v[:], values)
	default:
		return fmt.Errorf("%w: %d values for %d channels", ErrInvalidArgument,
			len(values), img.format.Channels())
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.set(img.format, v, img.roiPlane(), img.SizeROI(), sc)
	})
}

// conversions lists the supported bit depth changes.
var conversions = map[[2]DataType]bool{
	{Type8u, Type16u}:  true,
	{Type8u, Type32f}:  true,
	{Type16u, Type32f}: true,
	{Type16u, Type8u}:  true,
	{Type32f, Type8u}:  true,
}

// Convert converts the ROI to the sample type of dst, which must have the
// same channel count. mode applies when converting from 32f; integer
// narrowing saturates.
func (img *Image) Convert(sc *StreamContext, dst *Image, mode RoundMode) error {
	if err := img.usable(); err != nil {
		return err
	}
	if err := dst.usable(); err != nil {
		return err
	}
	from, to := img.format.DataType(), dst.format.DataType()
	suffix := "R"
	if from == Type32f {
		suffix = "RSfs"
	}
	fn := fmt.Sprintf("nppiConvert_%s%s_C%d%s_Ctx", from, to,
		img.format.Channels(), suffix)
	if !conversions[[2]DataType{from, to}] || !img.format.Valid() ||
		dst.format.Channels() != img.format.Channels() {
		return unsupported(fn, dst.format)
	}
	if err := fitsROI(img, dst); err != nil {
		return err
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.convert(img.format, dst.format, img.roiPlane(),
			dst.roiPlane(), img.SizeROI(), mode, sc)
	})
}

// SwapChannels writes the ROI into dst with its channels reordered:
// destination channel i receives source channel order[i].
func (img *Image) SwapChannels(sc *StreamContext, dst *Image,
	order []int) error {
	if err := img.usable(); err != nil {
		return err
	}
	fn := symbol("nppiSwapChannels", img.format, "R")
	if err := img.pairWith(fn, dst, img.format, multiChannel(
		copyFormats)...); err != nil {
		return err
	}
	if len(order) != img.format.Channels() {
		return fmt.Errorf("%w: %d indices for %d channels", ErrInvalidArgument,
			len(order), img.format.Channels())
	}
	var o [4]int
	for i, c := range order {
		if c < 0 || c >= img.format.Channels() {
			return fmt.Errorf("%w: order[%d] = %d", ErrChannelOutOfRange, i, c)
		}
		o[i] = c
	}
	return img.call(fn, sc, func(l nativeLibrary, sc *StreamContext) Status {
		return l.swapChannels(img.format, img.roiPlane(), dst.roiPlane(),
			img.SizeROI(), o, sc)
	})
}

// pairWith validates a source/destination pair: img must have a supported
// format, dst must have format want and a ROI at least as large as img's.
func (img *Image) pairWith(fn string, dst *Image, want Format,
	supported ...Format) error {
	if err := img.usable(); err != nil {
		return err
	}
	if err := requireFormat(fn, img.format, supported...); err != nil {
		return err
	}
	if err := dst.usable(); err != nil {
		return err
	}
	if dst.format != want {
		return fmt.Errorf("%w: %s: destination is %s, want %s",
			ErrUnsupportedFormat, fn, dst.format, want)
	}
	return fitsROI(img, dst)
}

func (img *Image) channelPlane(channel int) (plane, error) {
	p, err := img.ChannelPointer(channel)
	if err != nil {
		return plane{}, err
	}
	return plane{p, img.pitch}, nil
}

func multiChannel(formats []Format) []Format {
	var out []Format
	for _, f := range formats {
		if f.Channels() > 1 {
			out = append(out, f)
		}
	}
	return out
}
