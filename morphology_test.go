package gonpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Dilate(t *testing.T) {
	f := useFake(t)
	src := newTestImage(t, Format8uC1, 16, 16)
	dst := newTestImage(t, Format8uC1, 16, 16)
	mask := []byte{0, 1, 0, 1, 1, 1, 0, 1, 0}

	require.NoError(t, src.Dilate(nil, dst, mask, Size{3, 3}, Point{1, 1}))

	call := f.last(t, "morphology")
	assert.Equal(t, morphDilate, call.args[0])
	assert.Equal(t, mask, call.args[7])
	assert.Equal(t, BorderReplicate, call.args[10])
	// The device copy of the mask is freed after the call.
	assert.Equal(t, 1, f.count("free"))
}

func Test_Erode_Invalid(t *testing.T) {
	f := useFake(t)
	img := newTestImage(t, Format16uC3, 16, 16)

	assert.ErrorIs(t, img.Erode(nil, img, []byte{1, 1}, Size{3, 3},
		Point{1, 1}), ErrInvalidArgument)
	assert.ErrorIs(t, img.Erode(nil, img, []byte{1}, Size{1, 1},
		Point{1, 0}), ErrInvalidArgument)
	assert.Equal(t, 0, f.count("malloc"))

	s16 := newTestImage(t, Format16sC1, 16, 16)
	assert.ErrorIs(t, s16.Erode(nil, s16, []byte{1}, Size{1, 1}, Point{}),
		ErrUnsupportedFormat)
}

func Test_Morphology3x3(t *testing.T) {
	f := useFake(t)
	img := newTestImage(t, Format32fC1, 16, 16)
	dst := newTestImage(t, Format32fC1, 16, 16)
	require.NoError(t, img.SetROI(Rect{1, 1, 14, 14}))

	require.NoError(t, img.Erode3x3(nil, dst))
	assert.Equal(t, morphErode, f.last(t, "morphology3x3").args[0])

	require.NoError(t, img.Dilate3x3(nil, dst))
	call := f.last(t, "morphology3x3")
	assert.Equal(t, morphDilate, call.args[0])
	assert.Equal(t, img.roiPlane(), call.args[2])
	assert.Equal(t, Size{14, 14}, call.args[4])
}
