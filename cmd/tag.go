package cmd

import (
	"github.com/spf13/cobra"

	"mutree.dev/pkg/mutree/internal/domain"
)

// tagCmd represents the tag command.
var tagCmd = newTagCmd()

func newTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <words...>",
		Short: "Show the category and gender assigned to words",
		Long:  "Tag words with the configured lexicon and show the category and gender the mutation rules will see.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Tag(cmd.Context(), domain.TagArgs{Words: args})
		},
	}
}

func init() {
	rootCmd.AddCommand(tagCmd)
}
