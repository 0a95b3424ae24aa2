package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateCatalogExcel creates an Excel file of the equipment catalog and
// returns the file contents as a byte slice. Column order matches the
// distributor price list so the file round-trips through ParseCatalogExcel.
func GenerateCatalogExcel(items []EquipmentItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Equipment"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through G).
	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{14, 42, 14, 14, 14, 10, 12}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	headers := []string{"Code", "Name", "Dealer USD", "Client USD", "MSRP USD", "Weight", "Category"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s1", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)

	row := 2
	for _, item := range items {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(item.Code))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(item.Name))
		f.SetCellValue(sheetName, "C"+rowStr, item.DealerUSD)
		f.SetCellValue(sheetName, "D"+rowStr, item.ClientUSD)
		f.SetCellValue(sheetName, "E"+rowStr, item.MSRPUSD)
		f.SetCellValue(sheetName, "F"+rowStr, item.Weight)
		f.SetCellValue(sheetName, "G"+rowStr, sanitizeExcelCell(item.Category))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, rowStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
