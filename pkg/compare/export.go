package compare

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// SummaryHeader is the first line of the delimited summary export
const SummaryHeader = "file,category,status,left_size,right_size"

// WriteSummary writes the comparison result in the delimited summary
// format: a header line followed by one comma-joined line per entry.
// Embedded commas are not escaped; the format is caller-facing, not
// round-trip safe.
func WriteSummary(report *Report, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, SummaryHeader)
	for _, entry := range report.Entries {
		fmt.Fprintln(bw, strings.Join([]string{
			entry.Key,
			string(entry.Category),
			string(entry.Status),
			entry.LeftDisplay,
			entry.RightDisplay,
		}, ","))
	}
	return bw.Flush()
}

// ExportSummary writes the delimited summary to a file
func ExportSummary(report *Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := WriteSummary(report, file); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
