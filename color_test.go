package gonpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RGBToGray(t *testing.T) {
	f := useFake(t)
	rgb := newTestImage(t, Format8uC3, 16, 16)
	gray := newTestImage(t, Format8uC1, 16, 16)

	require.NoError(t, rgb.RGBToGray(nil, gray))
	assert.Equal(t, convRGBToGray, f.last(t, "colorConvert").args[0])

	assert.ErrorIs(t, rgb.RGBToGray(nil, rgb), ErrUnsupportedFormat)

	rgba := newTestImage(t, Format8uC4, 16, 16)
	assert.ErrorIs(t, rgba.RGBToGray(nil, gray), ErrUnsupportedFormat)
}

func Test_ColorToGray(t *testing.T) {
	f := useFake(t)
	rgba := newTestImage(t, Format16uC4, 16, 16)
	gray := newTestImage(t, Format16uC1, 16, 16)

	require.NoError(t, rgba.ColorToGray(nil, gray,
		[]float32{0.25, 0.5, 0.25, 0}))
	assert.Equal(t, [4]float32{0.25, 0.5, 0.25, 0},
		f.last(t, "colorToGray").args[4])

	assert.ErrorIs(t, rgba.ColorToGray(nil, gray, []float32{1, 1, 1}),
		ErrInvalidArgument)
}

func Test_ConvertColor(t *testing.T) {
	f := useFake(t)
	a := newTestImage(t, Format8uC3, 16, 16)
	b := newTestImage(t, Format8uC3, 16, 16)

	for conv, run := range map[colorConversion]func(*StreamContext,
		*Image) error{
		convRGBToYUV:   a.RGBToYUV,
		convYUVToRGB:   a.YUVToRGB,
		convRGBToYCbCr: a.RGBToYCbCr,
		convYCbCrToRGB: a.YCbCrToRGB,
		convRGBToHSV:   a.RGBToHSV,
		convHSVToRGB:   a.HSVToRGB,
	} {
		require.NoError(t, run(nil, b), conv.name())
		assert.Equal(t, conv, f.last(t, "colorConvert").args[0])
	}

	float := newTestImage(t, Format32fC3, 16, 16)
	assert.ErrorIs(t, float.RGBToHSV(nil, float), ErrUnsupportedFormat)
}

func Test_ColorTwist(t *testing.T) {
	f := useFake(t)
	img := newTestImage(t, Format8uC4, 16, 16)
	twist := [3][4]float32{{0, 0, 1, 0}, {0, 1, 0, 0}, {1, 0, 0, 0}}

	require.NoError(t, img.ColorTwist(nil, img, twist))
	assert.Equal(t, twist, f.last(t, "colorTwist").args[4])

	assert.Equal(t, "nppiColorTwist32f_8u_C3R_Ctx",
		colorTwistSymbol(Format8uC3))
	assert.Equal(t, "nppiColorTwist_32f_C3R_Ctx",
		colorTwistSymbol(Format32fC3))

	s16 := newTestImage(t, Format16sC3, 16, 16)
	assert.ErrorIs(t, s16.ColorTwist(nil, s16, twist), ErrUnsupportedFormat)
}
