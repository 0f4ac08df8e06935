package gonpp

import "fmt"

// DataType is the storage type of a single channel sample.
type DataType uint8

const (
	Type8u DataType = iota + 1
	Type16u
	Type16s
	Type32s
	Type32u
	Type32f
)

// ElementSize returns the size of one sample in bytes.
func (t DataType) ElementSize() int {
	switch t {
	case Type8u:
		return 1
	case Type16u, Type16s:
		return 2
	case Type32s, Type32u, Type32f:
		return 4
	}
	return 0
}

// IsFloat reports whether samples are floating point.
func (t DataType) IsFloat() bool { return t == Type32f }

// String returns the NPP spelling of the type, e.g. "8u".
func (t DataType) String() string {
	switch t {
	case Type8u:
		return "8u"
	case Type16u:
		return "16u"
	case Type16s:
		return "16s"
	case Type32s:
		return "32s"
	case Type32u:
		return "32u"
	case Type32f:
		return "32f"
	}
	return fmt.Sprintf("DataType(%d)", uint8(t))
}

// Format is a sample type combined with an interleaved channel count.
type Format uint16

// NewFormat builds a Format from a type and channel count.
func NewFormat(t DataType, channels int) Format {
	return Format(uint16(t)<<4 | uint16(channels&0xf))
}

const (
	Format8uC1  = Format(uint16(Type8u)<<4 | 1)
	Format8uC3  = Format(uint16(Type8u)<<4 | 3)
	Format8uC4  = Format(uint16(Type8u)<<4 | 4)
	Format16uC1 = Format(uint16(Type16u)<<4 | 1)
	Format16uC3 = Format(uint16(Type16u)<<4 | 3)
	Format16uC4 = Format(uint16(Type16u)<<4 | 4)
	Format16sC1 = Format(uint16(Type16s)<<4 | 1)
	Format16sC3 = Format(uint16(Type16s)<<4 | 3)
	Format16sC4 = Format(uint16(Type16s)<<4 | 4)
	Format32sC1 = Format(uint16(Type32s)<<4 | 1)
	Format32sC3 = Format(uint16(Type32s)<<4 | 3)
	Format32sC4 = Format(uint16(Type32s)<<4 | 4)
	Format32uC1 = Format(uint16(Type32u)<<4 | 1)
	Format32fC1 = Format(uint16(Type32f)<<4 | 1)
	Format32fC3 = Format(uint16(Type32f)<<4 | 3)
	Format32fC4 = Format(uint16(Type32f)<<4 | 4)
)

// DataType returns the sample type.
func (f Format) DataType() DataType { return DataType(f >> 4) }

// Channels returns the number of interleaved channels.
func (f Format) Channels() int { return int(f & 0xf) }

// PixelSize returns the size of one pixel in bytes.
func (f Format) PixelSize() int { return f.DataType().ElementSize() * f.Channels() }

// Valid reports whether the format names a known type with 1, 3 or 4
// channels.
func (f Format) Valid() bool {
	if f.DataType().ElementSize() == 0 {
		return false
	}
	switch f.Channels() {
	case 1, 3, 4:
		return true
	}
	return false
}

// Suffix returns the fragment NPP uses in symbol names, e.g. "8u_C3".
func (f Format) Suffix() string {
	return fmt.Sprintf("%s_C%d", f.DataType(), f.Channels())
}

func (f Format) String() string { return f.Suffix() }

// WithChannels returns the same sample type with a different channel count.
func (f Format) WithChannels(n int) Format { return NewFormat(f.DataType(), n) }

// Interpolation selects the resampling filter of geometric operations. Values
// match NppiInterpolationMode.
type Interpolation int

const (
	InterpolationNearest    Interpolation = 1
	InterpolationLinear     Interpolation = 2
	InterpolationCubic      Interpolation = 4
	InterpolationBSpline    Interpolation = 5
	InterpolationCatmullRom Interpolation = 6
	InterpolationB05C03     Interpolation = 7
	InterpolationSuper      Interpolation = 8
	InterpolationLanczos    Interpolation = 16
	InterpolationLanczos3   Interpolation = 17
)

// BorderType controls how filters read pixels outside the source frame.
// Values match NppiBorderType.
type BorderType int

const (
	BorderNone      BorderType = 0
	BorderConstant  BorderType = 1
	BorderReplicate BorderType = 2
	BorderWrap      BorderType = 3
	BorderMirror    BorderType = 4
)

// Axis is the flip axis of Mirror. Values match NppiAxis.
type Axis int

const (
	AxisHorizontal Axis = 0
	AxisVertical   Axis = 1
	AxisBoth       Axis = 2
)

// CmpOp is a comparison operator. Values match NppCmpOp.
type CmpOp int

const (
	CmpLess      CmpOp = 0
	CmpLessEq    CmpOp = 1
	CmpEq        CmpOp = 2
	CmpGreaterEq CmpOp = 3
	CmpGreater   CmpOp = 4
)

// RoundMode controls float to integer conversion. Values match NppRoundMode.
type RoundMode int

const (
	RoundNearestEven RoundMode = 0
	RoundFinancial   RoundMode = 1
	RoundZero        RoundMode = 2
)

// MaskSize is one of the fixed kernel sizes accepted by Gauss filtering.
// Values match NppiMaskSize.
type MaskSize int

const (
	MaskSize3x3   MaskSize = 200
	MaskSize5x5   MaskSize = 201
	MaskSize7x7   MaskSize = 400
	MaskSize9x9   MaskSize = 500
	MaskSize11x11 MaskSize = 600
	MaskSize13x13 MaskSize = 700
	MaskSize15x15 MaskSize = 800
)

// MaskSizeOf returns the fixed mask size with the given edge length.
func MaskSizeOf(edge int) (MaskSize, bool) {
	switch edge {
	case 3:
		return MaskSize3x3, true
	case 5:
		return MaskSize5x5, true
	case 7:
		return MaskSize7x7, true
	case 9:
		return MaskSize9x9, true
	case 11:
		return MaskSize11x11, true
	case 13:
		return MaskSize13x13, true
	case 15:
		return MaskSize15x15, true
	}
	return 0, false
}

// Norm selects a distance measure. Values match NppiNorm.
type Norm int

const (
	NormInf Norm = 0
	NormL1  Norm = 1
	NormL2  Norm = 2
)

func (n Norm) name() string {
	switch n {
	case NormInf:
		return "Inf"
	case NormL1:
		return "L1"
	case NormL2:
		return "L2"
	}
	return fmt.Sprintf("Norm(%d)", int(n))
}

// SobelDirection selects the gradient computed by FilterSobel.
type SobelDirection int

const (
	SobelHorizontal SobelDirection = iota
	SobelVertical
)
