package export

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// writeXLSX mirrors writeCSV: a qualifying set of zero rows yields a
// workbook with an empty sheet and no header row.
func writeXLSX(w io.Writer, sheet string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), sheet)
	if len(rows) > 0 {
		all := append([][]string{header}, rows...)
		for i, row := range all {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return err
			}
			vals := make([]interface{}, len(row))
			for j, v := range row {
				vals[j] = v
			}
			if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}

// ISRXLSX writes the cédula ISR ledger as a spreadsheet.
func (e *Exporter) ISRXLSX(ctx context.Context, w io.Writer) error {
	list, err := e.invoices.List(ctx)
	if err != nil {
		return fmt.Errorf("list invoices: %w", err)
	}
	return writeXLSX(w, "Cedula ISR", isrHeader, isrRows(list))
}

// IVAXLSX writes the cédula IVA ledger as a spreadsheet.
func (e *Exporter) IVAXLSX(ctx context.Context, w io.Writer) error {
	list, err := e.invoices.List(ctx)
	if err != nil {
		return fmt.Errorf("list invoices: %w", err)
	}
	return writeXLSX(w, "Cedula IVA", ivaHeader, ivaRows(list))
}
