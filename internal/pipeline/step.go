// Package pipeline runs configured chains of NPP operations on a device
// image. Each step reads the previous step's output and allocates its own.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/GreatValueCreamSoda/gonpp"
)

// Step is one entry of the pipeline list in the config file. Only the fields
// relevant to Op are read.
type Step struct {
	Op            string  `mapstructure:"op"`
	Width         int     `mapstructure:"width"`
	Height        int     `mapstructure:"height"`
	Interpolation string  `mapstructure:"interpolation"`
	Axis          string  `mapstructure:"axis"`
	Angle         float64 `mapstructure:"angle"`
	Mask          int     `mapstructure:"mask"`
	Border        string  `mapstructure:"border"`
	Direction     string  `mapstructure:"direction"`
	Level         float64 `mapstructure:"level"`
	Compare       string  `mapstructure:"compare"`
	Order         []int   `mapstructure:"order"`
}

var interpolations = map[string]gonpp.Interpolation{
	"":           gonpp.InterpolationLinear,
	"nearest":    gonpp.InterpolationNearest,
	"linear":     gonpp.InterpolationLinear,
	"cubic":      gonpp.InterpolationCubic,
	"bspline":    gonpp.InterpolationBSpline,
	"catmullrom": gonpp.InterpolationCatmullRom,
	"super":      gonpp.InterpolationSuper,
	"lanczos":    gonpp.InterpolationLanczos,
}

var axes = map[string]gonpp.Axis{
	"horizontal": gonpp.AxisHorizontal,
	"vertical":   gonpp.AxisVertical,
	"both":       gonpp.AxisBoth,
}

var borders = map[string]gonpp.BorderType{
	"":          gonpp.BorderReplicate,
	"replicate": gonpp.BorderReplicate,
	"constant":  gonpp.BorderConstant,
	"wrap":      gonpp.BorderWrap,
	"mirror":    gonpp.BorderMirror,
}

var directions = map[string]gonpp.SobelDirection{
	"":           gonpp.SobelHorizontal,
	"horizontal": gonpp.SobelHorizontal,
	"vertical":   gonpp.SobelVertical,
}

var comparisons = map[string]gonpp.CmpOp{
	"":        gonpp.CmpLess,
	"less":    gonpp.CmpLess,
	"greater": gonpp.CmpGreater,
}

func lookup[T any](m map[string]T, field, value string) (T, error) {
	v, ok := m[strings.ToLower(value)]
	if !ok {
		var zero T
		return zero, fmt.Errorf("invalid %s %q", field, value)
	}
	return v, nil
}

// oddMask validates a square mask edge length.
func oddMask(n int) (gonpp.Size, gonpp.Point, error) {
	if n < 1 || n%2 == 0 {
		return gonpp.Size{}, gonpp.Point{}, fmt.Errorf("mask must be a "+
			"positive odd number, got %d", n)
	}
	return gonpp.Size{Width: n, Height: n}, gonpp.Point{X: n / 2, Y: n / 2}, nil
}
