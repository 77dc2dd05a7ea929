package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutree.dev/pkg/mutree/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously exported mutation graph",
		Long:  "Show the mutation tree, node depths and history stored in an output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Dir: viper.GetString(outputFlagName)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
