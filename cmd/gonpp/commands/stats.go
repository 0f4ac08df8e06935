package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/GreatValueCreamSoda/gonpp"
	"github.com/GreatValueCreamSoda/gonpp/internal/hostimage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var statsCmd = &cobra.Command{
	Use:   "stats IMAGE",
	Short: "Print luma statistics of an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Int("bins", 16, "histogram bins")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	bins, _ := cmd.Flags().GetInt("bins")
	if bins < 1 || bins > 256 {
		return fmt.Errorf("bins must be in [1, 256], got %d", bins)
	}

	src, err := hostimage.Load(args[0])
	if err != nil {
		return err
	}
	luma, err := hostimage.ToPacked(src, 1)
	if err != nil {
		return err
	}

	release, err := useDevice(viper.GetInt("device"))
	if err != nil {
		return err
	}
	defer release()

	img, err := luma.Upload(nil)
	if err != nil {
		return err
	}
	defer img.Close()

	mean, stdDev, err := img.MeanStdDev(nil, nil)
	if err != nil {
		return err
	}
	lo, hi, err := img.MinMax(nil, nil)
	if err != nil {
		return err
	}
	hist, err := img.HistogramEven(nil, bins+1, 0, 256, nil)
	if err != nil {
		return err
	}
	levels, err := gonpp.EvenLevels(bins+1, 0, 256)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %dx%d\n", args[0], luma.Width, luma.Height)
	fmt.Fprintf(out, "  min     : %.0f\n", lo[0])
	fmt.Fprintf(out, "  max     : %.0f\n", hi[0])
	fmt.Fprintf(out, "  mean    : %.6f\n", mean)
	fmt.Fprintf(out, "  stddev  : %.6f\n", stdDev)
	fmt.Fprintln(out, "  histogram:")
	writeHistogram(out, levels, hist)
	return nil
}

func writeHistogram(w io.Writer, levels, counts []int32) {
	var peak int32
	for _, c := range counts {
		peak = max(peak, c)
	}
	for i, c := range counts {
		bar := 0
		if peak > 0 {
			bar = int(40 * int64(c) / int64(peak))
		}
		fmt.Fprintf(w, "    [%3d, %3d) %10d %s\n", levels[i], levels[i+1], c,
			strings.Repeat("#", bar))
	}
}
