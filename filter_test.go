package gonpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FilterBox(t *testing.T) {
	f := useFake(t)
	src := newTestImage(t, Format8uC1, 32, 32)
	dst := newTestImage(t, Format8uC1, 16, 16)
	require.NoError(t, src.SetROI(Rect{8, 4, 16, 16}))

	require.NoError(t, src.FilterBox(nil, dst, Size{5, 5}, Point{2, 2},
		BorderReplicate))

	call := f.last(t, "filterBox")
	assert.Equal(t, src.roiPlane(), call.args[1])
	assert.Equal(t, Size{32, 32}, call.args[2])
	assert.Equal(t, Point{8, 4}, call.args[3])
	assert.Equal(t, Size{16, 16}, call.args[5])
	assert.Equal(t, BorderReplicate, call.args[8])
}

func Test_FilterBox_Invalid(t *testing.T) {
	useFake(t)
	img := newTestImage(t, Format8uC1, 16, 16)

	assert.ErrorIs(t, img.FilterBox(nil, img, Size{3, 3}, Point{3, 1},
		BorderReplicate), ErrInvalidArgument)
	assert.ErrorIs(t, img.FilterBox(nil, img, Size{0, 3}, Point{},
		BorderReplicate), ErrInvalidArgument)
	assert.ErrorIs(t, img.FilterBox(nil, img, Size{3, 3}, Point{1, 1},
		BorderType(9)), ErrInvalidArgument)

	s32 := newTestImage(t, Format32sC1, 16, 16)
	assert.ErrorIs(t, s32.FilterBox(nil, s32, Size{3, 3}, Point{1, 1},
		BorderReplicate), ErrUnsupportedFormat)
}

func Test_FilterGauss(t *testing.T) {
	f := useFake(t)
	img := newTestImage(t, Format32fC3, 16, 16)

	require.NoError(t, img.FilterGauss(nil, img, MaskSize7x7, BorderMirror))
	assert.Equal(t, MaskSize7x7, f.last(t, "filterGauss").args[6])

	assert.ErrorIs(t, img.FilterGauss(nil, img, MaskSize(3), BorderMirror),
		ErrInvalidArgument)
}

func Test_FilterSobel(t *testing.T) {
	f := useFake(t)
	img := newTestImage(t, Format16sC1, 16, 16)

	require.NoError(t, img.FilterSobel(nil, img, SobelVertical,
		BorderReplicate))
	assert.Equal(t, SobelVertical, f.last(t, "filterSobel").args[1])
	assert.Equal(t, "nppiFilterSobelVertBorder_16s_C1R_Ctx",
		sobelSymbol(SobelVertical, Format16sC1))
	assert.Equal(t, "nppiFilterSobelHorizBorder_8u_C3R_Ctx",
		sobelSymbol(SobelHorizontal, Format8uC3))

	u16 := newTestImage(t, Format16uC1, 16, 16)
	assert.ErrorIs(t, u16.FilterSobel(nil, u16, SobelHorizontal,
		BorderReplicate), ErrUnsupportedFormat)
	assert.ErrorIs(t, img.FilterSobel(nil, img, SobelDirection(2),
		BorderReplicate), ErrInvalidArgument)
}

func Test_FilterMedian(t *testing.T) {
	f := useFake(t)
	f.bufferSize = 48
	src := newTestImage(t, Format8uC1, 16, 16)
	dst := newTestImage(t, Format8uC1, 16, 16)
	require.NoError(t, src.SetROI(Rect{1, 1, 14, 14}))

	require.NoError(t, src.FilterMedian(nil, dst, Size{3, 3}, Point{1, 1},
		nil))

	assert.Equal(t, Size{3, 3},
		f.last(t, "filterMedianBufferSize").args[2])
	alloc := f.last(t, "malloc")
	assert.Equal(t, 48, alloc.args[0])
	call := f.last(t, "filterMedian")
	assert.Equal(t, f.freed[0], call.args[6])
}
