package pipeline

import (
	"io"
	"strings"
	"testing"

	"github.com/GreatValueCreamSoda/gonpp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
pipeline:
  - op: resize
    width: 640
    interpolation: lanczos
  - op: gauss
    mask: 5
  - op: median
    mask: 3
  - op: sobel
    direction: vertical
    border: mirror
  - op: threshold
    level: 128
    compare: greater
  - op: swap
    order: [2, 1, 0]
  - op: gray
  - op: dilate
    mask: 3
`

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func Test_Load(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(testConfig)))

	steps, err := Load(v, "pipeline")
	require.NoError(t, err)
	require.Len(t, steps, 8)
	assert.Equal(t, Step{Op: "resize", Width: 640,
		Interpolation: "lanczos"}, steps[0])
	assert.Equal(t, []int{2, 1, 0}, steps[5].Order)
	assert.Equal(t, 128.0, steps[4].Level)

	p, err := New(steps, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 8, p.Len())
}

func Test_New_Invalid(t *testing.T) {
	for _, tc := range []struct {
		step Step
		msg  string
	}{
		{Step{Op: "blur"}, "unknown op"},
		{Step{Op: "resize"}, "positive width or height"},
		{Step{Op: "resize", Width: 10, Interpolation: "fancy"},
			"invalid interpolation"},
		{Step{Op: "mirror", Axis: "diagonal"}, "invalid axis"},
		{Step{Op: "gauss", Mask: 4}, "unsupported gauss mask"},
		{Step{Op: "box", Mask: 2}, "positive odd number"},
		{Step{Op: "box", Mask: 3, Border: "none"}, "invalid border"},
		{Step{Op: "sobel", Direction: "diagonal"}, "invalid direction"},
		{Step{Op: "threshold", Compare: "equal"}, "invalid compare"},
		{Step{Op: "erode"}, "positive odd number"},
		{Step{Op: "swap", Order: []int{1}}, "one index per channel"},
	} {
		_, err := New([]Step{{Op: "gray"}, tc.step}, quietLogger())
		require.Error(t, err, tc.step.Op)
		assert.Contains(t, err.Error(), "pipeline step 1", tc.step.Op)
		assert.Contains(t, err.Error(), tc.msg, tc.step.Op)
	}
}

func Test_ScaledSize(t *testing.T) {
	src := gonpp.Size{Width: 1920, Height: 1080}
	assert.Equal(t, gonpp.Size{Width: 640, Height: 360},
		scaledSize(src, 640, 0))
	assert.Equal(t, gonpp.Size{Width: 1280, Height: 720},
		scaledSize(src, 0, 720))
	assert.Equal(t, gonpp.Size{Width: 100, Height: 100},
		scaledSize(src, 100, 100))
}

func Test_RotationShift(t *testing.T) {
	dx, dy := rotationShift(4, 2, 0)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, 0, dy, 1e-9)

	dx, dy = rotationShift(4, 2, 180)
	assert.InDelta(t, 4, dx, 1e-9)
	assert.InDelta(t, 2, dy, 1e-9)
}
