package commands

import (
	"fmt"

	"github.com/GreatValueCreamSoda/gonpp"
	"github.com/GreatValueCreamSoda/gonpp/internal/probe"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show NPP and CUDA versions",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !gonpp.Available() {
		fmt.Fprintln(out, "Binding: stub (built without -tags npp)")
	} else {
		fmt.Fprintln(out, "Binding: native")
		if v, err := gonpp.GetVersion(); err == nil {
			fmt.Fprintf(out, "NPP:     %s\n", v)
		} else {
			log.Warnf("NPP version: %v", err)
		}
		if v, err := gonpp.GetRuntimeVersion(); err == nil {
			fmt.Fprintf(out, "Runtime: %d.%d\n", v/1000, v%1000/10)
		}
		if v, err := gonpp.GetDriverVersion(); err == nil {
			fmt.Fprintf(out, "Driver:  %d.%d\n", v/1000, v%1000/10)
		}
	}

	res, err := probe.Detect()
	if err != nil {
		fmt.Fprintf(out, "Probe:   %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "Probe:   %s\n", res)
	return nil
}
