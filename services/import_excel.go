package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportRowError represents a single field-level error on one uploaded row.
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CatalogImportResult is returned after parsing an uploaded price list.
// Valid rows are ready to upsert by code; error rows are reported back to
// the user and skipped.
type CatalogImportResult struct {
	TotalRows int              `json:"total_rows"`
	ValidRows int              `json:"valid_rows"`
	ErrorRows int              `json:"error_rows"`
	Errors    []ImportRowError `json:"errors"`
	Items     []EquipmentItem  `json:"-"`
}

// ParseCatalogExcel reads an uploaded equipment price list in the layout
// GenerateCatalogExcel produces. Rows with a missing code or name, a
// non-numeric price, or a non-positive dealer price are reported and
// skipped; the remaining rows come back ready to import.
func ParseCatalogExcel(file io.Reader) (*CatalogImportResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	result := &CatalogImportResult{TotalRows: len(rows) - 1}
	errorRowSet := make(map[int]bool)

	addError := func(rowNum int, field, message string) {
		result.Errors = append(result.Errors, ImportRowError{Row: rowNum, Field: field, Message: message})
		errorRowSet[rowNum] = true
	}

	for rowIdx, row := range rows[1:] {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row

		cell := func(i int) string {
			if i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}

		code := cell(0)
		name := cell(1)
		if code == "" {
			addError(rowNum, "Code", "Code is required")
		}
		if name == "" {
			addError(rowNum, "Name", "Name is required")
		}

		dealerUSD := parseImportNumber(rowNum, "Dealer USD", cell(2), addError)
		clientUSD := parseImportNumber(rowNum, "Client USD", cell(3), addError)
		msrpUSD := parseImportNumber(rowNum, "MSRP USD", cell(4), addError)
		weight := parseImportNumber(rowNum, "Weight", cell(5), addError)
		if dealerUSD <= 0 && !errorRowSet[rowNum] {
			addError(rowNum, "Dealer USD", "Dealer USD must be greater than zero")
		}

		category := strings.ToLower(cell(6))
		switch category {
		case "":
			category = CategoryAccessory
		case CategoryVoid, CategoryAccessory:
		default:
			addError(rowNum, "Category", fmt.Sprintf("Category must be %q or %q", CategoryVoid, CategoryAccessory))
		}

		if errorRowSet[rowNum] {
			continue
		}

		result.Items = append(result.Items, EquipmentItem{
			Code:      code,
			Name:      name,
			DealerUSD: dealerUSD,
			ClientUSD: clientUSD,
			MSRPUSD:   msrpUSD,
			Weight:    weight,
			Category:  category,
		})
	}

	result.ErrorRows = len(errorRowSet)
	result.ValidRows = result.TotalRows - result.ErrorRows

	return result, nil
}

// parseImportNumber parses an optional numeric cell, tolerating currency
// symbols and thousands separators from hand-edited price lists.
func parseImportNumber(rowNum int, field, value string, addError func(int, string, string)) float64 {
	if value == "" {
		return 0
	}
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(value)
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		addError(rowNum, field, fmt.Sprintf("%s must be a number", field))
		return 0
	}
	if n < 0 {
		addError(rowNum, field, fmt.Sprintf("%s must not be negative", field))
		return 0
	}
	return n
}
