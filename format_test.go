package gonpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Format(t *testing.T) {
	for _, tc := range []struct {
		format    Format
		suffix    string
		pixelSize int
	}{
		{Format8uC1, "8u_C1", 1},
		{Format8uC3, "8u_C3", 3},
		{Format16uC4, "16u_C4", 8},
		{Format16sC3, "16s_C3", 6},
		{Format32sC1, "32s_C1", 4},
		{Format32uC1, "32u_C1", 4},
		{Format32fC4, "32f_C4", 16},
	} {
		assert.Equal(t, tc.suffix, tc.format.Suffix())
		assert.Equal(t, tc.pixelSize, tc.format.PixelSize(), tc.suffix)
		assert.True(t, tc.format.Valid(), tc.suffix)
	}

	assert.False(t, NewFormat(Type8u, 2).Valid())
	assert.False(t, Format(0).Valid())
	assert.Equal(t, Format16uC1, Format16uC3.WithChannels(1))
	assert.Equal(t, Format32fC3, NewFormat(Type32f, 3))
	assert.Equal(t, "nppiCopy_8u_C3R_Ctx", symbol("nppiCopy", Format8uC3, "R"))
}

func Test_MaskSizeOf(t *testing.T) {
	m, ok := MaskSizeOf(5)
	assert.True(t, ok)
	assert.Equal(t, MaskSize5x5, m)

	_, ok = MaskSizeOf(4)
	assert.False(t, ok)
}

func Test_Rect(t *testing.T) {
	r := Rect{2, 2, 4, 4}
	assert.True(t, r.Within(Size{6, 6}))
	assert.False(t, r.Within(Size{5, 6}))
	assert.Equal(t, Rect{4, 4, 2, 2}, r.Intersect(Rect{4, 4, 8, 8}))
	assert.True(t, r.Intersect(Rect{10, 10, 1, 1}).Empty())
	assert.Equal(t, Point{2, 2}, r.Origin())
	assert.Equal(t, "(2,2)+4x4", r.String())
	assert.True(t, Size{3, 3}.Fits(Size{3, 4}))
	assert.False(t, Size{4, 3}.Fits(Size{3, 4}))
}
