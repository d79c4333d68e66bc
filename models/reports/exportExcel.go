package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pennyflow/pennyflow_backend/models"
)

// ExportTransactionsExcel builds an xlsx workbook from the given transaction
// views. Amounts are written in major units. The caller owns closing/writing
// the returned file.
func ExportTransactionsExcel(transactions []models.TransactionView) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Sheet1"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}

	// Add headers
	f.SetCellValue(sheet, "A1", "Date")
	f.SetCellValue(sheet, "B1", "Type")
	f.SetCellValue(sheet, "C1", "Category")
	f.SetCellValue(sheet, "D1", "Amount")
	f.SetCellValue(sheet, "E1", "Frequency")
	f.SetCellValue(sheet, "F1", "Description")

	// Add data
	for i, t := range transactions {
		row := fmt.Sprint(i + 2)
		f.SetCellValue(sheet, "A"+row, t.Date)
		f.SetCellValue(sheet, "B"+row, string(t.Type))
		f.SetCellValue(sheet, "C"+row, string(t.Category))
		f.SetCellValue(sheet, "D"+row, t.Amount.InexactFloat64())
		if t.Frequency != nil {
			f.SetCellValue(sheet, "E"+row, string(*t.Frequency))
		}
		if t.Description != nil {
			f.SetCellValue(sheet, "F"+row, *t.Description)
		}
	}

	return f, nil
}
