package commands

import (
	"fmt"

	"github.com/GreatValueCreamSoda/gonpp"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List CUDA devices",
	Long: `List the CUDA devices visible to NPP.

With --check every device also runs a short allocation, fill and
synchronize cycle.`,
	Args: cobra.NoArgs,
	RunE: runDevices,
}

func init() {
	devicesCmd.Flags().Bool("check", false, "run a test workload on each device")
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	check, _ := cmd.Flags().GetBool("check")
	out := cmd.OutOrStdout()

	count, err := gonpp.GetDeviceCount()
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Fprintln(out, "No CUDA devices found")
		return nil
	}

	for i := range count {
		info, err := gonpp.GetDeviceInfo(i)
		if err != nil {
			return fmt.Errorf("device %d: %w", i, err)
		}
		fmt.Fprintf(out, "[%d] %s\n", i, info.GetString())

		if !check {
			continue
		}
		if err := gonpp.FullGpuCheck(i); err != nil {
			fmt.Fprintf(out, "    check failed: %v\n", err)
			continue
		}
		fmt.Fprintln(out, "    check passed")
	}
	return nil
}
