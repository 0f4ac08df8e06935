package compare

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Config selects what to compare. Field tags match the compare section of
// the CLI config file.
type Config struct {
	VideoA    string   `mapstructure:"a"`
	VideoB    string   `mapstructure:"b"`
	AStart    int      `mapstructure:"a_start"`
	BStart    int      `mapstructure:"b_start"`
	MaxFrames int      `mapstructure:"max_frames"`
	Workers   int      `mapstructure:"workers"`
	Metrics   []string `mapstructure:"metrics"`
	Device    int      `mapstructure:"device"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Workers: max(1, runtime.NumCPU()/4),
		Metrics: []string{"psnr", "ssim"},
	}
}

// Validate normalizes metric names and rejects settings that cannot run.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.AStart < 0 || c.BStart < 0 {
		return errors.New("start indices must not be negative")
	}
	if len(c.Metrics) == 0 {
		return errors.New("at least one metric must be specified")
	}
	for i, m := range c.Metrics {
		c.Metrics[i] = strings.ToLower(strings.TrimSpace(m))
		if _, ok := metricsByName[c.Metrics[i]]; !ok {
			return fmt.Errorf("unknown metric %q", m)
		}
	}
	return nil
}

// FrameCount returns how many pairs will be compared given the lengths of
// both sources.
func (c *Config) FrameCount(a, b Source) (int, error) {
	n := min(a.NumFrames()-c.AStart, b.NumFrames()-c.BStart)
	if c.MaxFrames > 0 && c.MaxFrames < n {
		n = c.MaxFrames
	}
	if n <= 0 {
		return 0, errors.New("no frames to compare")
	}
	return n, nil
}
