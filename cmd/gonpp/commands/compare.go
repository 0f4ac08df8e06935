package commands

import (
	"fmt"
	"os"

	"github.com/GreatValueCreamSoda/gonpp/internal/compare"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var compareCmd = &cobra.Command{
	Use:   "compare VIDEO_A VIDEO_B",
	Short: "Score two videos frame by frame",
	Long: `Compare the luma planes of two 8-bit YUV videos with NPP quality
metrics: mse, psnr, ssim and msssim.

A summary with per-metric statistics and pairwise correlations is written
to stderr. Requires a binary built with -tags "npp ffms2".`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	flags := compareCmd.Flags()
	flags.Int("workers", 0, "number of GPU workers")
	flags.StringSlice("metrics", nil, "metrics to compute")
	flags.Int("a-start", 0, "starting frame index for video A")
	flags.Int("b-start", 0, "starting frame index for video B")
	flags.Int("frames", 0, "maximum number of frames to compare (0 = all)")
	flags.StringP("output", "o", "", "path to save per-frame JSON results")

	bindFlags(viper.GetViper(), flags, map[string]string{
		"workers": "compare.workers",
		"metrics": "compare.metrics",
		"a-start": "compare.a_start",
		"b-start": "compare.b_start",
		"frames":  "compare.max_frames",
	})

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	cc := cfg.Compare
	cc.VideoA, cc.VideoB = args[0], args[1]
	cc.Device = cfg.Device
	if err := cc.Validate(); err != nil {
		return err
	}

	a, b, err := compare.OpenPair(cc.VideoA, cc.VideoB)
	if err != nil {
		return err
	}

	metric, err := compare.NewLumaMetric(cc.Device, cc.Workers, cc.Metrics)
	if err != nil {
		return err
	}

	vc, err := compare.NewComparator(cc, a, b, []compare.Metric{metric}, log)
	if err != nil {
		metric.Close()
		return err
	}

	log.Infof("Comparing %d frames (A start: %d, B start: %d) with %d "+
		"workers", vc.NumFrames(), cc.AStart, cc.BStart, cc.Workers)

	if err := vc.Run(cmd.Context()); err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	scores := vc.FinalScores()
	compare.WriteSummary(os.Stderr, scores)

	if outputPath != "" {
		if err := compare.SaveJSON(scores, outputPath); err != nil {
			return err
		}
		log.Infof("Per-frame scores saved to %s", outputPath)
	}
	return nil
}
