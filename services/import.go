package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ValidationError represents a single field-level error on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// LineImportRow is one validated row from an uploaded line file.
type LineImportRow struct {
	ItemID   int
	Name     string
	IsOption bool
}

// LineImportResult is returned after parsing and validating an uploaded
// quotation-line file.
type LineImportResult struct {
	TotalRows int               `json:"total_rows"`
	ValidRows int               `json:"valid_rows"`
	ErrorRows int               `json:"error_rows"`
	Errors    []ValidationError `json:"errors"`
	Rows      []LineImportRow   `json:"-"`
	FileName  string            `json:"-"`
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the
// first sheet.
func parseExcel(file multipart.File) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return rows[0], rows[1:], nil
}

// lineImportColumns maps recognized header labels to row fields.
var lineImportColumns = map[string]string{
	"item id":  "item_id",
	"item_id":  "item_id",
	"study":    "name",
	"name":     "name",
	"option":   "option",
	"optional": "option",
}

// ValidateLineImport parses an uploaded CSV/XLSX of catalog item ids and
// validates each row against the master-data snapshot. Rows referencing
// unknown items or carrying a non-numeric id are reported, not dropped
// silently.
func ValidateLineImport(file multipart.File, fileName string, md MasterData) (*LineImportResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return nil, err
	}

	// Map columns to known fields.
	columnKeys := make([]string, len(headers))
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		columnKeys[i] = lineImportColumns[norm]
	}

	result := &LineImportResult{
		TotalRows: len(dataRows),
		FileName:  fileName,
	}

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		values := map[string]string{}
		for colIdx, key := range columnKeys {
			if key == "" {
				continue
			}
			if colIdx < len(row) {
				values[key] = strings.TrimSpace(row[colIdx])
			}
		}

		var rowErrors []ValidationError

		itemID, convErr := strconv.Atoi(values["item_id"])
		if values["item_id"] == "" {
			rowErrors = append(rowErrors, ValidationError{Row: rowNum, Field: "Item ID", Message: "Item ID is required"})
		} else if convErr != nil {
			rowErrors = append(rowErrors, ValidationError{Row: rowNum, Field: "Item ID", Message: fmt.Sprintf("%q is not a number", values["item_id"])})
		} else if _, ok := md.Items[itemID]; !ok {
			if _, ok := md.Combos[itemID]; !ok {
				rowErrors = append(rowErrors, ValidationError{Row: rowNum, Field: "Item ID", Message: fmt.Sprintf("item %d is not in the catalog", itemID)})
			}
		}

		if len(rowErrors) > 0 {
			result.ErrorRows++
			result.Errors = append(result.Errors, rowErrors...)
			continue
		}

		isOption := false
		switch strings.ToLower(values["option"]) {
		case "y", "yes", "true", "1":
			isOption = true
		}

		result.ValidRows++
		result.Rows = append(result.Rows, LineImportRow{
			ItemID:   itemID,
			Name:     values["name"],
			IsOption: isOption,
		})
	}

	return result, nil
}
