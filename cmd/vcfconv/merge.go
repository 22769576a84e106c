package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/haryo/vcfconv/convert"
)

var mergeCmd = &cobra.Command{
	Use:   "merge DST.vcf SRC.vcf...",
	Short: "Merge multiple .vcf files into one",
	Long: `Merge concatenates the contacts of the source .vcf files into a
single destination file, preserving their order and any extension
properties the sources carry.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	dst, srcs := args[0], args[1:]
	if err := convert.MergeVCFFiles(dst, srcs...); err != nil {
		return err
	}
	logger.Info("merged", slog.Int("sources", len(srcs)), slog.String("dst", dst))
	return nil
}
