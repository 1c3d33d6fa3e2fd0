package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"fdcreport/internal"
)

// ExportRowsToXLSX writes an archived report as a spreadsheet, mirroring the
// CSV column layout.
func ExportRowsToXLSX(rows []internal.ReportRow, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Food", "FDC ID"}
	for _, spec := range Catalog {
		headers = append(headers, fmt.Sprintf("%s (%s)", spec.Name, spec.Unit))
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}
		set(1, row.Description)
		set(2, row.FdcID)
		for j, amount := range row.Amounts {
			set(3+j, amount)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
