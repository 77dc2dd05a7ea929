package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutree.dev/pkg/mutree/internal/domain"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge the graphs of batch runs into one graph",
		Long:  "Merge the graphs from run_* subdirectories into a single graph written to the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Merge(cmd.Context(), domain.MergeArgs{
				Root:    viper.GetString(outputFlagName),
				Formats: viper.GetStringSlice(formatsConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
