package commands

import (
	"fmt"

	"github.com/GreatValueCreamSoda/gonpp/internal/hostimage"
	"github.com/GreatValueCreamSoda/gonpp/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var processCmd = &cobra.Command{
	Use:   "process INPUT OUTPUT",
	Short: "Run a pipeline of NPP operations on an image",
	Long: `Decode INPUT, run the configured pipeline on the GPU and encode the
result to OUTPUT.

Steps come from the "pipeline" list of the config file, or from the file
given with --steps. Supported ops: resize, mirror, rotate, gauss, box,
median, sobel, gray, threshold, dilate, erode, swap.

Example config:

  pipeline:
    - op: resize
      width: 1280
      interpolation: lanczos
    - op: gauss
      mask: 5`,
	Args: cobra.ExactArgs(2),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().String("steps", "", "YAML file with a pipeline list")
	processCmd.Flags().Int("channels", 3, "channels to process: 1, 3 or 4")
	rootCmd.AddCommand(processCmd)
}

func loadSteps(path string) ([]pipeline.Step, error) {
	if path == "" {
		return pipeline.Load(viper.GetViper(), "pipeline")
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return pipeline.Load(v, "pipeline")
}

func runProcess(cmd *cobra.Command, args []string) error {
	stepsFile, _ := cmd.Flags().GetString("steps")
	channels, _ := cmd.Flags().GetInt("channels")

	steps, err := loadSteps(stepsFile)
	if err != nil {
		return err
	}
	p, err := pipeline.New(steps, log)
	if err != nil {
		return err
	}

	src, err := hostimage.Load(args[0])
	if err != nil {
		return err
	}
	packed, err := hostimage.ToPacked(src, channels)
	if err != nil {
		return err
	}

	release, err := useDevice(viper.GetInt("device"))
	if err != nil {
		return err
	}
	defer release()

	img, err := packed.Upload(nil)
	if err != nil {
		return err
	}
	defer img.Close()

	out, err := p.Run(nil, img)
	if err != nil {
		return err
	}
	defer out.Close()

	result, err := hostimage.Download(nil, out)
	if err != nil {
		return err
	}
	encoded, err := result.Image()
	if err != nil {
		return err
	}
	if err := hostimage.Save(args[1], encoded); err != nil {
		return err
	}

	log.Infof("Ran %d steps on %s, wrote %dx%d to %s", p.Len(), args[0],
		result.Width, result.Height, args[1])
	fmt.Fprintln(cmd.OutOrStdout(), args[1])
	return nil
}
