package compare

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Summarize(t *testing.T) {
	s := Summarize([]float64{4, 1, 3, 2})
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.Equal(t, 2.5, s.Mean)
	assert.Equal(t, 2.5, s.Median)
	assert.InDelta(t, 1.118034, s.StdDev, 1e-6)

	assert.Equal(t, 3.0, Summarize([]float64{5, 3, 1}).Median)
	assert.Equal(t, Summary{}, Summarize(nil))
}

func Test_Pearson(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1, Pearson(x, []float64{2, 4, 6, 8}), 1e-12)
	assert.InDelta(t, -1, Pearson(x, []float64{4, 3, 2, 1}), 1e-12)
	assert.Zero(t, Pearson(x, []float64{1, 1, 1, 1}))
	assert.Zero(t, Pearson(x, x[:2]))
}

func Test_WriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, map[string][]float64{
		"psnr": {30, 40},
		"ssim": {0.9, 0.95},
	})
	out := buf.String()
	t.Log(out)
	assert.Contains(t, out, "psnr\n----\n")
	assert.Contains(t, out, "  average : 35.000000")
	assert.Contains(t, out, "psnr <-> ssim :  1.000000")

	buf.Reset()
	WriteSummary(&buf, nil)
	assert.Equal(t, "No scores to report\n", buf.String())
}

func Test_SaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	scores := map[string][]float64{"mse": {0, 1.5}}
	require.NoError(t, SaveJSON(scores, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string][]float64
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, scores, got)
}

func Test_Config(t *testing.T) {
	cfg := Config{Metrics: []string{" PSNR", "msssim "}}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, []string{"psnr", "msssim"}, cfg.Metrics)

	cfg = Config{Metrics: []string{"psnr"}, BStart: -1}
	assert.Error(t, cfg.Validate())
	cfg = Config{}
	assert.Error(t, cfg.Validate())

	def := DefaultConfig()
	assert.NoError(t, def.Validate())
}
