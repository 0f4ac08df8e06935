package gonpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Resize(t *testing.T) {
	f := useFake(t)
	src := newTestImage(t, Format8uC3, 64, 48)
	dst := newTestImage(t, Format8uC3, 32, 24)
	require.NoError(t, src.SetROI(Rect{4, 4, 32, 32}))
	require.NoError(t, dst.SetROI(Rect{0, 0, 16, 16}))

	require.NoError(t, src.Resize(nil, dst, InterpolationLanczos))

	call := f.last(t, "resize")
	assert.Equal(t, src.basePlane(), call.args[1])
	assert.Equal(t, Size{64, 48}, call.args[2])
	assert.Equal(t, Rect{4, 4, 32, 32}, call.args[3])
	assert.Equal(t, dst.basePlane(), call.args[4])
	assert.Equal(t, Size{32, 24}, call.args[5])
	assert.Equal(t, Rect{0, 0, 16, 16}, call.args[6])
	assert.Equal(t, InterpolationLanczos, call.args[7])
}

func Test_Resize_Mismatch(t *testing.T) {
	useFake(t)
	src := newTestImage(t, Format8uC3, 64, 48)
	dst := newTestImage(t, Format8uC4, 32, 24)

	assert.ErrorIs(t, src.Resize(nil, dst, InterpolationLinear),
		ErrUnsupportedFormat)

	s32 := newTestImage(t, Format32sC1, 8, 8)
	assert.ErrorIs(t, s32.Resize(nil, s32, InterpolationLinear),
		ErrUnsupportedFormat)
}

func Test_Mirror(t *testing.T) {
	f := useFake(t)
	img := newTestImage(t, Format16sC4, 8, 8)

	require.NoError(t, img.Mirror(nil, img, AxisBoth))
	assert.Equal(t, AxisBoth, f.last(t, "mirror").args[4])

	assert.ErrorIs(t, img.Mirror(nil, img, Axis(3)), ErrInvalidArgument)
}

func Test_Warp(t *testing.T) {
	f := useFake(t)
	src := newTestImage(t, Format32fC1, 16, 16)
	dst := newTestImage(t, Format32fC1, 20, 20)
	affine := [2][3]float64{{1, 0, 2}, {0, 1, 2}}
	perspective := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0.001, 0, 1}}

	require.NoError(t, src.WarpAffine(nil, dst, affine, InterpolationCubic))
	call := f.last(t, "warpAffine")
	assert.Equal(t, affine, call.args[6])
	assert.Equal(t, Rect{0, 0, 20, 20}, call.args[5])

	require.NoError(t, src.WarpPerspective(nil, dst, perspective,
		InterpolationNearest))
	assert.Equal(t, perspective, f.last(t, "warpPerspective").args[6])

	s16 := newTestImage(t, Format16sC1, 16, 16)
	assert.ErrorIs(t, s16.WarpAffine(nil, s16, affine, InterpolationCubic),
		ErrUnsupportedFormat)
}

func Test_Rotate(t *testing.T) {
	f := useFake(t)
	src := newTestImage(t, Format8uC1, 16, 16)
	dst := newTestImage(t, Format8uC1, 24, 24)

	require.NoError(t, src.Rotate(nil, dst, 45, 8, 0, InterpolationLinear))
	call := f.last(t, "rotate")
	assert.Equal(t, 45.0, call.args[6])
	assert.Equal(t, 8.0, call.args[7])
	assert.Equal(t, 0.0, call.args[8])

	box, err := src.RotateBound(45, 8, 0)
	require.NoError(t, err)
	assert.Equal(t, [2][2]float64{{-1, -2}, {3, 4}}, box)
	assert.Equal(t, Rect{0, 0, 16, 16}, f.last(t, "rotateBound").args[0])

	box, err = src.AffineBound([2][3]float64{{1, 0, 0}, {0, 1, 0}})
	require.NoError(t, err)
	assert.Equal(t, [2][2]float64{{0, 0}, {5, 6}}, box)
}

func Test_RotateBound_Closed(t *testing.T) {
	useFake(t)
	img, err := NewImage(Format8uC1, 8, 8)
	require.NoError(t, err)
	require.NoError(t, img.Close())

	_, err = img.RotateBound(10, 0, 0)
	assert.ErrorIs(t, err, ErrClosed)
}
