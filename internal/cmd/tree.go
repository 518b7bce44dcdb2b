package cmd

import (
	"github.com/salmonumbrella/txt2opml/internal/outline"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree <input>",
	Short: "Print the parsed outline",
	Long: `Parse an outline and print the resulting tree without writing OPML.

Text output re-renders the outline in sparse style. Structured formats
(json, ndjson, yaml) print nodes with text and children; table prints one
row per node with its depth and position.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := loadOutline(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		forest := parsed.forest
		if forest == nil {
			forest = []*outline.Node{}
		}
		return printStructured(cmd.Context(), forest)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <input>",
	Short: "Show summit count, node count and depth of an outline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := loadOutline(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printStructured(cmd.Context(), outline.Summarize(parsed.forest))
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(statsCmd)
}
