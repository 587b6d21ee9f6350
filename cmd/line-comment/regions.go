package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/line-comment/internal/comment"
	"github.com/pdiddy/line-comment/internal/report"
	"github.com/pdiddy/line-comment/internal/textio"
)

var regionsCmd = &cobra.Command{
	Use:   "regions <input>",
	Short: "List the block comments in a file as YAML",
	Long: `Regions prints a YAML report of every block comment in the input: the
line and byte offset where it starts, its body, and the line comments it
would be replaced with. Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := textio.ReadText(args[0])
		if err != nil {
			return err
		}
		regions := comment.Find(src)
		_, stats := comment.Splice(src, regions)
		return report.Write(cmd.OutOrStdout(), report.Build(args[0], regions, stats))
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
