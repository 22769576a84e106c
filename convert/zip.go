package convert

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"github.com/haryo/vcfconv/vcard"
)

// SplitVCFToZip splits a multi-contact vCard file into one file per
// contact and writes them as contact_1.vcf, contact_2.vcf, ... entries
// of a zip archive. It returns the number of contacts written. Block
// text is preserved verbatim (folding, unknown properties), only
// normalized to \n line endings.
func SplitVCFToZip(src string, w io.Writer) (int, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return 0, fmt.Errorf("convert: read %s: %w", src, err)
	}

	blocks := vcard.SplitBlocks(string(data))
	zw := zip.NewWriter(w)
	for i, block := range blocks {
		f, err := zw.Create(fmt.Sprintf("contact_%d.vcf", i+1))
		if err != nil {
			return 0, fmt.Errorf("convert: zip entry %d: %w", i+1, err)
		}
		if _, err := io.WriteString(f, block); err != nil {
			return 0, fmt.Errorf("convert: zip entry %d: %w", i+1, err)
		}
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("convert: finalize zip: %w", err)
	}
	return len(blocks), nil
}
