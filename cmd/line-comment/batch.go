package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/line-comment/internal/convert"
	"github.com/pdiddy/line-comment/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Convert many files into an output directory",
	Long: `Batch converts each input file and writes the result under --out-dir with
the same base name. Outputs that already exist are skipped unless --force is
set. A file that fails does not stop the batch; the command exits non-zero
if any file failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := convert.ConvertBatch(args, cfg.Batch.OutDir, cfg.Batch.Force, cmd.OutOrStdout())

		runs := make([]types.Run, 0, len(result.Files))
		for _, f := range result.Files {
			if f.Status == types.ConversionNone {
				continue
			}
			runs = append(runs, types.RunFromResult(f, nil))
		}
		recordRuns(cmd.Context(), runs...)

		logger.Info("batch finished",
			"converted", result.Converted,
			"skipped", result.Skipped,
			"failed", result.Failed)
		if result.HasFailures() {
			return fmt.Errorf("%d of %d files failed", result.Failed, result.Total())
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().String("out-dir", "converted", "directory converted files are written to")
	batchCmd.Flags().Bool("force", false, "overwrite outputs that already exist")
	bindFlag("batch.out_dir", batchCmd.Flags().Lookup("out-dir"))
	bindFlag("batch.force", batchCmd.Flags().Lookup("force"))

	rootCmd.AddCommand(batchCmd)
}
