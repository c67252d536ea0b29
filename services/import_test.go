package services

import (
	"bytes"
	"mime/multipart"
	"strings"
	"testing"
)

// multipartFile adapts an in-memory byte slice to multipart.File.
type multipartFile struct {
	*bytes.Reader
}

func (multipartFile) Close() error { return nil }

func newMultipartFile(data string) multipart.File {
	return multipartFile{bytes.NewReader([]byte(data))}
}

func importMasterFixture() MasterData {
	return MasterData{
		Items: map[int]StudyItem{
			1: {ID: 1, Duration: "단회"},
			4: {ID: 4, Duration: "13주"},
		},
		Combos: map[int]ComboStudyItem{
			301: {ID: 301},
		},
	}
}

func TestValidateLineImport_CSV(t *testing.T) {
	csvData := "Item ID,Study,Option\n" +
		"1,단회투여독성시험,\n" +
		"4,13주 반복투여독성시험,no\n" +
		"301,복합제 13주,yes\n"

	result, err := ValidateLineImport(newMultipartFile(csvData), "lines.csv", importMasterFixture())
	if err != nil {
		t.Fatalf("ValidateLineImport() error = %v", err)
	}

	if result.TotalRows != 3 || result.ValidRows != 3 || result.ErrorRows != 0 {
		t.Fatalf("counts = %d/%d/%d, want 3/3/0", result.TotalRows, result.ValidRows, result.ErrorRows)
	}
	if !result.Rows[2].IsOption {
		t.Error("combo row should be flagged as option")
	}
	if result.Rows[1].ItemID != 4 || result.Rows[1].Name != "13주 반복투여독성시험" {
		t.Errorf("row 2 = %+v", result.Rows[1])
	}
}

func TestValidateLineImport_RowErrors(t *testing.T) {
	csvData := "Item ID,Study\n" +
		",missing id\n" +
		"abc,bad id\n" +
		"999,unknown item\n" +
		"1,valid row\n"

	result, err := ValidateLineImport(newMultipartFile(csvData), "lines.csv", importMasterFixture())
	if err != nil {
		t.Fatalf("ValidateLineImport() error = %v", err)
	}

	if result.ValidRows != 1 || result.ErrorRows != 3 {
		t.Fatalf("counts = valid %d / error %d, want 1/3", result.ValidRows, result.ErrorRows)
	}
	if len(result.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %d: %+v", len(result.Errors), result.Errors)
	}
	// Row numbers are 1-indexed including the header row.
	if result.Errors[0].Row != 2 {
		t.Errorf("first error row = %d, want 2", result.Errors[0].Row)
	}
	if !strings.Contains(result.Errors[2].Message, "not in the catalog") {
		t.Errorf("unexpected message: %q", result.Errors[2].Message)
	}
}

func TestValidateLineImport_UnsupportedFormat(t *testing.T) {
	if _, err := ValidateLineImport(newMultipartFile("x"), "lines.pdf", importMasterFixture()); err == nil {
		t.Error("expected error for unsupported file format")
	}
}

func TestValidateLineImport_HeaderOnly(t *testing.T) {
	if _, err := ValidateLineImport(newMultipartFile("Item ID,Study\n"), "lines.csv", importMasterFixture()); err == nil {
		t.Error("expected error for a file without data rows")
	}
}
