package gonpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FloodFill(t *testing.T) {
	f := useFake(t)
	f.bufferSize = 128
	f.region = ConnectedRegion{
		BoundingBox: Rect{2, 2, 4, 4},
		PixelCount:  16,
		Value:       [3]uint32{200},
	}
	img := newTestImage(t, Format8uC1, 16, 16)
	require.NoError(t, img.SetROI(Rect{2, 2, 8, 8}))

	region, err := img.FloodFill(nil, Point{1, 1}, 200, NormL1, nil)
	require.NoError(t, err)
	assert.Equal(t, f.region, region)

	call := f.last(t, "floodFill")
	assert.Equal(t, img.roiPlane(), call.args[0])
	assert.Equal(t, Point{1, 1}, call.args[1])
	assert.Equal(t, uint8(200), call.args[2])
	assert.Equal(t, Size{8, 8}, f.last(t, "floodFillBufferSize").args[0])
	assert.Equal(t, 1, f.count("free"))
}

func Test_FloodFill_Invalid(t *testing.T) {
	useFake(t)
	img := newTestImage(t, Format8uC1, 16, 16)
	require.NoError(t, img.SetROI(Rect{0, 0, 8, 8}))

	_, err := img.FloodFill(nil, Point{8, 0}, 1, NormInf, nil)
	assert.ErrorIs(t, err, ErrROIOutOfBounds)

	_, err = img.FloodFill(nil, Point{-1, 0}, 1, NormInf, nil)
	assert.ErrorIs(t, err, ErrROIOutOfBounds)

	_, err = img.FloodFill(nil, Point{0, 0}, 1, NormL2, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	rgb := newTestImage(t, Format8uC3, 16, 16)
	_, err = rgb.FloodFill(nil, Point{}, 1, NormInf, nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func Test_LabelMarkers(t *testing.T) {
	f := useFake(t)
	f.bufferSize = 4096
	src := newTestImage(t, Format8uC1, 16, 16)
	labels := newTestImage(t, Format32uC1, 16, 16)

	require.NoError(t, src.LabelMarkers(nil, labels, NormInf, nil))
	call := f.last(t, "labelMarkers")
	assert.Equal(t, src.roiPlane(), call.args[0])
	assert.Equal(t, labels.roiPlane(), call.args[1])
	assert.Equal(t, NormInf, call.args[3])

	wrong := newTestImage(t, Format32sC1, 16, 16)
	assert.ErrorIs(t, src.LabelMarkers(nil, wrong, NormInf, nil),
		ErrUnsupportedFormat)

	buf, err := NewDeviceBuffer(16)
	require.NoError(t, err)
	defer buf.Close()
	assert.ErrorIs(t, src.LabelMarkers(nil, labels, NormInf, buf),
		ErrBufferTooSmall)
}
