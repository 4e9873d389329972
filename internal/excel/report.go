package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Production Orders Report"

// Row is one production order as it appears in the exported workbook.
type Row struct {
	ProductionOrder string
	WorkCenter      string
	Quantity        int
	OrderType       string
	Name            string
	Department      string
	CreatedAt       time.Time
}

var headers = []string{"Production Order", "Work Center", "Quantity", "Type", "Name", "Department", "Date & Time"}

// BuildOrderReport renders the production order report as a single-sheet
// workbook: styled header row, one row per order, column widths fitted to
// the longest value (capped at 50 characters).
func BuildOrderReport(rows []Row) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "G1", headerStyle); err != nil {
		return nil, err
	}

	for i, row := range rows {
		n := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", n), row.ProductionOrder)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", n), row.WorkCenter)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", n), row.Quantity)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", n), row.OrderType)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", n), row.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", n), row.Department)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", n), row.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	// Width fitting is cosmetic: on failure the defaults stay.
	autoSizeColumns(f, len(rows))

	return f, nil
}

func autoSizeColumns(f *excelize.File, dataRows int) {
	for col := 1; col <= len(headers); col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			continue
		}
		maxLen := 0
		for row := 1; row <= dataRows+1; row++ {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			v, err := f.GetCellValue(sheetName, cell)
			if err != nil {
				continue
			}
			if len(v) > maxLen {
				maxLen = len(v)
			}
		}
		width := maxLen + 2
		if width > 50 {
			width = 50
		}
		_ = f.SetColWidth(sheetName, name, name, float64(width))
	}
}
