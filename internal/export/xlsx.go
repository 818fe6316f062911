package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// singleSheetName is the sheet used by the single-period workbook.
const singleSheetName = "Expenses"

// WriteWorkbookSheet serializes one table into a one-sheet workbook.
// Amounts stay bare numeric strings so the file imports as numbers.
func WriteWorkbookSheet(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), singleSheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	if err := writeSheet(f, singleSheetName, t); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteWorkbook serializes the all-data report, one sheet per month in
// the given (chronological) order.
func WriteWorkbook(w io.Writer, sections []MonthSection) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, section := range sections {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), section.Sheet); err != nil {
				return fmt.Errorf("name sheet %q: %w", section.Sheet, err)
			}
		} else {
			if _, err := f.NewSheet(section.Sheet); err != nil {
				return fmt.Errorf("add sheet %q: %w", section.Sheet, err)
			}
		}
		if err := writeSheet(f, section.Sheet, section.Table); err != nil {
			return err
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// writeSheet lays out header, body, total row and column width hints.
func writeSheet(f *excelize.File, sheet string, t Table) error {
	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, c := range row {
			cells[j] = c
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, start, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	total := make([]interface{}, len(t.Columns))
	for i := range total {
		total[i] = ""
	}
	total[0] = t.Total.Label
	total[amountColumn] = t.Total.Amount
	start, err := excelize.CoordinatesToCellName(1, len(t.Rows)+2)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, start, &total); err != nil {
		return fmt.Errorf("write total row: %w", err)
	}

	for i, width := range t.ColWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	return nil
}
