package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/GreatValueCreamSoda/gonpp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// stage produces a new image from src. src is never modified or closed.
type stage func(sc *gonpp.StreamContext, src *gonpp.Image) (*gonpp.Image, error)

// Pipeline is a parsed, validated list of steps.
type Pipeline struct {
	names  []string
	stages []stage
	log    logrus.FieldLogger
}

// Load reads the step list stored under key.
func Load(v *viper.Viper, key string) ([]Step, error) {
	var steps []Step
	if err := v.UnmarshalKey(key, &steps); err != nil {
		return nil, fmt.Errorf("pipeline: decode %s: %w", key, err)
	}
	return steps, nil
}

// New validates steps. Options that do not depend on the input image are
// checked here, so configuration errors surface before any device work.
func New(steps []Step, log logrus.FieldLogger) (*Pipeline, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	p := &Pipeline{log: log}
	for i, s := range steps {
		st, err := build(s)
		if err != nil {
			return nil, fmt.Errorf("pipeline step %d (%s): %w", i, s.Op, err)
		}
		p.names = append(p.names, strings.ToLower(s.Op))
		p.stages = append(p.stages, st)
	}
	return p, nil
}

// Len returns the number of steps.
func (p *Pipeline) Len() int { return len(p.stages) }

// Run applies every step to src and returns the final image, which the
// caller must close. With no steps the result is a copy of src.
func (p *Pipeline) Run(sc *gonpp.StreamContext,
	src *gonpp.Image) (*gonpp.Image, error) {
	if len(p.stages) == 0 {
		return copyImage(sc, src)
	}

	cur := src
	for i, st := range p.stages {
		out, err := st(sc, cur)
		if cur != src {
			cur.Close()
		}
		if err != nil {
			return nil, fmt.Errorf("pipeline step %d (%s): %w", i, p.names[i],
				err)
		}
		p.log.WithFields(logrus.Fields{"step": i, "op": p.names[i]}).
			Debugf("produced %s", out)
		cur = out
	}
	return cur, nil
}

func build(s Step) (stage, error) {
	switch strings.ToLower(s.Op) {
	case "resize":
		interp, err := lookup(interpolations, "interpolation", s.Interpolation)
		if err != nil {
			return nil, err
		}
		if s.Width < 0 || s.Height < 0 || s.Width+s.Height == 0 {
			return nil, fmt.Errorf("need a positive width or height")
		}
		return resize(s.Width, s.Height, interp), nil
	case "mirror":
		axis, err := lookup(axes, "axis", s.Axis)
		if err != nil {
			return nil, err
		}
		return sameSize(func(sc *gonpp.StreamContext, src, dst *gonpp.Image) error {
			return src.Mirror(sc, dst, axis)
		}), nil
	case "rotate":
		interp, err := lookup(interpolations, "interpolation", s.Interpolation)
		if err != nil {
			return nil, err
		}
		return rotate(s.Angle, interp), nil
	case "gauss":
		mask, ok := gonpp.MaskSizeOf(s.Mask)
		if !ok {
			return nil, fmt.Errorf("unsupported gauss mask %d", s.Mask)
		}
		border, err := lookup(borders, "border", s.Border)
		if err != nil {
			return nil, err
		}
		return sameSize(func(sc *gonpp.StreamContext, src, dst *gonpp.Image) error {
			return src.FilterGauss(sc, dst, mask, border)
		}), nil
	case "box":
		mask, anchor, err := oddMask(s.Mask)
		if err != nil {
			return nil, err
		}
		border, err := lookup(borders, "border", s.Border)
		if err != nil {
			return nil, err
		}
		return sameSize(func(sc *gonpp.StreamContext, src, dst *gonpp.Image) error {
			return src.FilterBox(sc, dst, mask, anchor, border)
		}), nil
	case "median":
		mask, anchor, err := oddMask(s.Mask)
		if err != nil {
			return nil, err
		}
		return median(mask, anchor), nil
	case "sobel":
		dir, err := lookup(directions, "direction", s.Direction)
		if err != nil {
			return nil, err
		}
		border, err := lookup(borders, "border", s.Border)
		if err != nil {
			return nil, err
		}
		return sameSize(func(sc *gonpp.StreamContext, src, dst *gonpp.Image) error {
			return src.FilterSobel(sc, dst, dir, border)
		}), nil
	case "gray":
		return gray, nil
	case "threshold":
		op, err := lookup(comparisons, "compare", s.Compare)
		if err != nil {
			return nil, err
		}
		return sameSize(func(sc *gonpp.StreamContext, src, dst *gonpp.Image) error {
			return src.Threshold(sc, dst, s.Level, op)
		}), nil
	case "dilate", "erode":
		mask, anchor, err := oddMask(s.Mask)
		if err != nil {
			return nil, err
		}
		weights := make([]byte, mask.Width*mask.Height)
		for i := range weights {
			weights[i] = 1
		}
		erode := strings.EqualFold(s.Op, "erode")
		return sameSize(func(sc *gonpp.StreamContext, src, dst *gonpp.Image) error {
			if erode {
				return src.Erode(sc, dst, weights, mask, anchor)
			}
			return src.Dilate(sc, dst, weights, mask, anchor)
		}), nil
	case "swap":
		if len(s.Order) < 3 {
			return nil, fmt.Errorf("order needs one index per channel")
		}
		order := s.Order
		return sameSize(func(sc *gonpp.StreamContext, src, dst *gonpp.Image) error {
			return src.SwapChannels(sc, dst, order)
		}), nil
	}
	return nil, fmt.Errorf("unknown op %q", s.Op)
}

// sameSize wraps run in a stage whose output matches the input format and
// size.
func sameSize(run func(sc *gonpp.StreamContext, src,
	dst *gonpp.Image) error) stage {
	return func(sc *gonpp.StreamContext, src *gonpp.Image) (*gonpp.Image,
		error) {
		return into(src.Format(), src.SizeROI(), func(dst *gonpp.Image) error {
			return run(sc, src, dst)
		})
	}
}

// into allocates an image and runs fill on it, closing it on failure.
func into(format gonpp.Format, size gonpp.Size,
	fill func(dst *gonpp.Image) error) (*gonpp.Image, error) {
	dst, err := gonpp.NewImage(format, size.Width, size.Height)
	if err != nil {
		return nil, err
	}
	if err := fill(dst); err != nil {
		dst.Close()
		return nil, err
	}
	return dst, nil
}

func copyImage(sc *gonpp.StreamContext, src *gonpp.Image) (*gonpp.Image,
	error) {
	return into(src.Format(), src.SizeROI(), func(dst *gonpp.Image) error {
		return src.Copy(sc, dst)
	})
}

// scaledSize fills in a missing dimension so the aspect ratio is kept.
func scaledSize(src gonpp.Size, width, height int) gonpp.Size {
	switch {
	case width == 0:
		width = max(1, int(math.Round(float64(src.Width)*float64(height)/
			float64(src.Height))))
	case height == 0:
		height = max(1, int(math.Round(float64(src.Height)*float64(width)/
			float64(src.Width))))
	}
	return gonpp.Size{Width: width, Height: height}
}

func resize(width, height int, interp gonpp.Interpolation) stage {
	return func(sc *gonpp.StreamContext, src *gonpp.Image) (*gonpp.Image,
		error) {
		size := scaledSize(src.SizeROI(), width, height)
		return into(src.Format(), size, func(dst *gonpp.Image) error {
			return src.Resize(sc, dst, interp)
		})
	}
}

// rotationShift returns the shift that keeps the centre of a w x h frame in
// place when rotating by angle degrees about the origin.
func rotationShift(w, h int, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	cx, cy := float64(w)/2, float64(h)/2
	return cx - (cx*cos + cy*sin), cy - (-cx*sin + cy*cos)
}

func rotate(angle float64, interp gonpp.Interpolation) stage {
	return func(sc *gonpp.StreamContext, src *gonpp.Image) (*gonpp.Image,
		error) {
		size := src.SizeROI()
		dx, dy := rotationShift(size.Width, size.Height, angle)
		return into(src.Format(), size, func(dst *gonpp.Image) error {
			if err := dst.Set(sc, 0); err != nil {
				return err
			}
			return src.Rotate(sc, dst, angle, dx, dy, interp)
		})
	}
}

// median copies the frame and filters the interior, where the whole window
// lies inside the source.
func median(mask gonpp.Size, anchor gonpp.Point) stage {
	return func(sc *gonpp.StreamContext, src *gonpp.Image) (*gonpp.Image,
		error) {
		roi := src.ROI()
		return into(src.Format(), roi.Size(), func(dst *gonpp.Image) error {
			if err := src.Copy(sc, dst); err != nil {
				return err
			}
			inner := gonpp.Rect{
				X:      anchor.X,
				Y:      anchor.Y,
				Width:  roi.Width - mask.Width + 1,
				Height: roi.Height - mask.Height + 1,
			}
			if inner.Empty() {
				return nil
			}
			defer src.SetROI(roi)
			defer dst.ResetROI()
			if err := src.SetROI(gonpp.Rect{X: roi.X + inner.X,
				Y: roi.Y + inner.Y, Width: inner.Width,
				Height: inner.Height}); err != nil {
				return err
			}
			if err := dst.SetROI(inner); err != nil {
				return err
			}
			return src.FilterMedian(sc, dst, mask, anchor, nil)
		})
	}
}

var grayWeights = []float32{0.299, 0.587, 0.114, 0}

func gray(sc *gonpp.StreamContext, src *gonpp.Image) (*gonpp.Image, error) {
	f := src.Format()
	switch f.Channels() {
	case 1:
		return copyImage(sc, src)
	case 3:
		return into(f.WithChannels(1), src.SizeROI(), func(dst *gonpp.Image) error {
			return src.RGBToGray(sc, dst)
		})
	}
	return into(f.WithChannels(1), src.SizeROI(), func(dst *gonpp.Image) error {
		return src.ColorToGray(sc, dst, grayWeights)
	})
}
