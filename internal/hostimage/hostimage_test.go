package hostimage

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/GreatValueCreamSoda/gonpp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := range 2 {
		for x := range 3 {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 80), uint8(y * 100),
				200, 255})
		}
	}
	return img
}

func Test_ToPacked(t *testing.T) {
	src := testImage()

	rgb, err := ToPacked(src, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, rgb.Stride)
	assert.Equal(t, gonpp.Format8uC3, rgb.Format())
	assert.Equal(t, []byte{160, 100, 200}, rgb.Pix[9+6:9+9])

	rgba, err := ToPacked(src, 4)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, rgba.Pix)

	gray, err := ToPacked(src, 1)
	require.NoError(t, err)
	assert.Len(t, gray.Pix, 6)
	assert.Equal(t, gonpp.Format8uC1, gray.Format())

	_, err = ToPacked(src, 2)
	assert.Error(t, err)
}

func Test_Packed_Image(t *testing.T) {
	src := testImage()
	rgb, err := ToPacked(src, 3)
	require.NoError(t, err)

	back, err := rgb.Image()
	require.NoError(t, err)
	assert.Equal(t, src.Pix, back.(*image.NRGBA).Pix)

	_, err = NewPacked(2, 2, 2).Image()
	assert.Error(t, err)
}

func Test_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := testImage()

	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, src), name)

		img, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, src.Bounds(), img.Bounds(), name)

		p, err := ToPacked(img, 4)
		require.NoError(t, err, name)
		assert.Equal(t, src.Pix, p.Pix, name)
	}

	require.NoError(t, Save(filepath.Join(dir, "out.jpg"), src))

	assert.ErrorIs(t, Save(filepath.Join(dir, "out.webp"), src),
		ErrUnsupportedEncoding)

	_, err := Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}
