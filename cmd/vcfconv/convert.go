package main

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/haryo/vcfconv/convert"
)

var (
	convertDelimiter string
	convertMapping   string
)

var convertCmd = &cobra.Command{
	Use:   "convert SRC DST",
	Short: "Convert a contact file to another format",
	Long: `Convert a contact file between vCard and tabular formats. The
direction is inferred from the file extensions:

  vcfconv convert contacts.vcf contacts.csv
  vcfconv convert contacts.xlsx contacts.vcf

Delimited text is sniffed for its separator unless --delimiter is set.
A YAML --mapping file renames table headers to the canonical columns
before conversion.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertDelimiter, "delimiter", "d", "", "Field delimiter for .csv/.txt input (single character, default: sniffed)")
	convertCmd.Flags().StringVarP(&convertMapping, "mapping", "m", "", "YAML file mapping source headers to canonical columns")
}

func convertOptions() ([]convert.Option, error) {
	var opts []convert.Option
	if convertDelimiter != "" {
		r, size := utf8.DecodeRuneInString(convertDelimiter)
		if size != len(convertDelimiter) || r == utf8.RuneError {
			return nil, fmt.Errorf("--delimiter must be a single character, got %q", convertDelimiter)
		}
		opts = append(opts, convert.WithDelimiter(r))
	}
	if convertMapping != "" {
		m, err := convert.LoadMapping(convertMapping)
		if err != nil {
			return nil, err
		}
		opts = append(opts, convert.WithMapping(m))
	}
	return opts, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]

	opts, err := convertOptions()
	if err != nil {
		return err
	}
	if err := convert.Convert(src, dst, opts...); err != nil {
		return err
	}
	logger.Info("converted", slog.String("src", src), slog.String("dst", dst))
	return nil
}
