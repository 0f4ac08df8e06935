//go:build !npp || !cgo

package compare

import (
	"testing"

	"github.com/GreatValueCreamSoda/gonpp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LumaMetric_Unavailable(t *testing.T) {
	m, err := NewLumaMetric(0, 2, []string{"psnr", "ssim"})
	require.NoError(t, err)
	defer m.Close()

	src := &fakeSource{frames: 1}
	a, err := src.Frame(0)
	require.NoError(t, err)
	_, err = m.Compute(a, a)
	assert.ErrorIs(t, err, gonpp.ErrUnavailable)
}

func Test_LumaMetric_Invalid(t *testing.T) {
	_, err := NewLumaMetric(0, 1, []string{"vmaf"})
	assert.Error(t, err)

	m, err := NewLumaMetric(0, 1, []string{"mse"})
	require.NoError(t, err)
	a := &Frame{Width: 4, Height: 2}
	b := &Frame{Width: 2, Height: 2}
	_, err = m.Compute(a, b)
	assert.ErrorContains(t, err, "frame sizes differ")
}
