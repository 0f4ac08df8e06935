package compare

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"sort"
	"strings"
)

// Summary describes the distribution of one metric over all frames.
type Summary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
}

// Summarize returns the statistics of values. StdDev is the population
// standard deviation.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := slices.Clone(values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(n)

	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2.0
	}

	var variance float64
	for _, v := range values {
		d := v - avg
		variance += d * d
	}
	variance /= float64(n)

	return Summary{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   avg,
		Median: median,
		StdDev: math.Sqrt(variance),
	}
}

// Pearson returns the correlation coefficient of x and y, or 0 when the
// inputs are empty, of different lengths or constant.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}

	var sumX, sumY float64
	for i := range n {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var num, denomX, denomY float64
	for i := range n {
		dx := x[i] - meanX
		dy := y[i] - meanY
		num += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}

	denom := math.Sqrt(denomX * denomY)
	if denom == 0 {
		return 0
	}
	return num / denom
}

// WriteSummary prints per-metric statistics, followed by pairwise absolute
// correlations when there is more than one metric.
func WriteSummary(w io.Writer, scores map[string][]float64) {
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores to report")
		return
	}

	names := make([]string, 0, len(scores))
	for name, values := range scores {
		if len(values) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Metric summary")
	fmt.Fprintln(w, "==============")
	for _, name := range names {
		s := Summarize(scores[name])
		fmt.Fprintln(w)
		fmt.Fprintln(w, name)
		fmt.Fprintln(w, strings.Repeat("-", len(name)))
		fmt.Fprintf(w, "  min     : %.6f\n", s.Min)
		fmt.Fprintf(w, "  max     : %.6f\n", s.Max)
		fmt.Fprintf(w, "  average : %.6f\n", s.Mean)
		fmt.Fprintf(w, "  median  : %.6f\n", s.Median)
		fmt.Fprintf(w, "  stddev  : %.6f\n", s.StdDev)
	}

	if len(names) < 2 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Metric correlations")
	fmt.Fprintln(w, "===================")

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			a, b := names[i], names[j]
			fmt.Fprintf(w, "  %-*s <-> %-*s : % .6f\n", width, a, width, b,
				math.Abs(Pearson(scores[a], scores[b])))
		}
	}
}

// SaveJSON writes per-frame scores to path.
func SaveJSON(scores map[string][]float64, path string) error {
	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func prettyMap[K comparable, V any](m map[K]V) string {
	if len(m) == 0 {
		return "{}"
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})

	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v=%v", k, m[k])
	}
	sb.WriteString("}")
	return sb.String()
}
