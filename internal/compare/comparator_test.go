package compare

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource yields 4x2 frames whose luma is filled with index+offset.
type fakeSource struct {
	frames int
	offset int
	failAt int
}

func (s *fakeSource) NumFrames() int { return s.frames }

func (s *fakeSource) Frame(index int) (*Frame, error) {
	if s.failAt > 0 && index == s.failAt {
		return nil, errors.New("decode failed")
	}
	luma := make([]byte, 8)
	for i := range luma {
		luma[i] = byte(index + s.offset)
	}
	return &Frame{
		Data:     [3][]byte{luma, {128, 128}, {128, 128}},
		LineSize: [3]int{4, 2, 2},
		Width:    4,
		Height:   2,
	}, nil
}

type fakeMetric struct {
	closed atomic.Int32
	fail   error
}

func (m *fakeMetric) Name() string { return "fake" }
func (m *fakeMetric) Close()       { m.closed.Add(1) }

func (m *fakeMetric) Compute(a, b *Frame) (map[string]float64, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	return map[string]float64{
		"a":    float64(a.Data[0][0]),
		"diff": float64(b.Data[0][0]) - float64(a.Data[0][0]),
	}, nil
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func Test_Comparator(t *testing.T) {
	cfg := Config{Workers: 3, Metrics: []string{"psnr"}, AStart: 2, BStart: 5}
	a := &fakeSource{frames: 20}
	b := &fakeSource{frames: 30, offset: 1}
	metric := &fakeMetric{}

	c, err := NewComparator(cfg, a, b, []Metric{metric}, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 18, c.NumFrames())

	require.NoError(t, c.Run(context.Background()))

	scores := c.FinalScores()
	require.Len(t, scores["a"], 18)
	for i, v := range scores["a"] {
		assert.Equal(t, float64(cfg.AStart+i), v)
		// B starts three frames later and is offset by one.
		assert.Equal(t, 4.0, scores["diff"][i])
	}
	assert.Equal(t, int32(1), metric.closed.Load())
}

func Test_Comparator_MaxFrames(t *testing.T) {
	cfg := Config{Workers: 1, Metrics: []string{"mse"}, MaxFrames: 5}
	c, err := NewComparator(cfg, &fakeSource{frames: 20},
		&fakeSource{frames: 20}, []Metric{&fakeMetric{}}, quietLogger())
	require.NoError(t, err)

	require.NoError(t, c.Run(context.Background()))
	assert.Len(t, c.FinalScores()["diff"], 5)
}

func Test_Comparator_MetricError(t *testing.T) {
	failure := errors.New("kernel failed")
	cfg := Config{Workers: 2, Metrics: []string{"ssim"}}
	c, err := NewComparator(cfg, &fakeSource{frames: 10},
		&fakeSource{frames: 10}, []Metric{&fakeMetric{fail: failure}},
		quietLogger())
	require.NoError(t, err)

	err = c.Run(context.Background())
	assert.ErrorIs(t, err, failure)
}

func Test_Comparator_SourceError(t *testing.T) {
	cfg := Config{Workers: 2, Metrics: []string{"ssim"}}
	c, err := NewComparator(cfg, &fakeSource{frames: 10, failAt: 4},
		&fakeSource{frames: 10}, []Metric{&fakeMetric{}}, quietLogger())
	require.NoError(t, err)

	err = c.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source A frame 4")
}

func Test_Comparator_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{Workers: 1, Metrics: []string{"ssim"}}
	c, err := NewComparator(cfg, &fakeSource{frames: 10},
		&fakeSource{frames: 10}, []Metric{&fakeMetric{}}, quietLogger())
	require.NoError(t, err)

	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func Test_NewComparator_Invalid(t *testing.T) {
	_, err := NewComparator(Config{Metrics: []string{"vmaf"}},
		&fakeSource{frames: 1}, &fakeSource{frames: 1}, nil, nil)
	assert.ErrorContains(t, err, "unknown metric")

	_, err = NewComparator(Config{Metrics: []string{"psnr"}, AStart: 3},
		&fakeSource{frames: 3}, &fakeSource{frames: 3}, nil, nil)
	assert.ErrorContains(t, err, "no frames to compare")
}
