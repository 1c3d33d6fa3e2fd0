package report

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fdcreport/internal"
)

// Header returns the fixed CSV header line: Food, FDC ID, then one
// "<name> (<unit>)" column per catalog entry in order.
func Header() string {
	var b strings.Builder
	b.WriteString("Food,FDC ID")
	for _, spec := range Catalog {
		b.WriteString(",")
		b.WriteString(spec.Name)
		b.WriteString(" (")
		b.WriteString(spec.Unit.String())
		b.WriteString(")")
	}
	return b.String()
}

// WriteCSV writes the header and one line per row, in the given order.
// Lines are joined by hand: descriptions already have commas replaced, and
// the format performs no CSV quoting or escaping beyond that, which
// encoding/csv would not preserve.
func WriteCSV(w io.Writer, rows []internal.ReportRow) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header() + "\n"); err != nil {
		return err
	}
	for _, row := range rows {
		fields := make([]string, 0, 2+len(row.Amounts))
		fields = append(fields, row.Description, strconv.Itoa(row.FdcID))
		fields = append(fields, row.Amounts...)
		if _, err := bw.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCSVFile writes the report to path, overwriting any previous run.
func WriteCSVFile(path string, rows []internal.ReportRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
