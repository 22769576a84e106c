package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haryo/vcfconv/convert"
)

var splitOutput string

var splitCmd = &cobra.Command{
	Use:   "split SRC.vcf",
	Short: "Split a multi-contact .vcf into a ZIP of single-contact files",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

func init() {
	splitCmd.Flags().StringVarP(&splitOutput, "output", "o", "", "Output ZIP path (default: SRC with .zip extension)")
}

func runSplit(cmd *cobra.Command, args []string) error {
	src := args[0]
	out := splitOutput
	if out == "" {
		out = strings.TrimSuffix(src, filepath.Ext(src)) + ".zip"
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	n, err := convert.SplitVCFToZip(src, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(out)
		return err
	}

	logger.Info("split", slog.String("src", src), slog.String("zip", out), slog.Int("contacts", n))
	return nil
}
