package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadTable(t *testing.T) {
	// Fabricate a workbook with a header row and mixed data rows
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "ID Column ")
	f.SetCellValue(sheetName, "B1", "desc_column")
	f.SetCellValue(sheetName, "C1", "Eligibility (cat-a)")
	f.SetCellValue(sheetName, "A2", "123")
	f.SetCellValue(sheetName, "B2", "first")
	f.SetCellValue(sheetName, "C2", 1)
	f.SetCellValue(sheetName, "A3", "456")
	// B3 and C3 left unset: the short row must not fabricate cells

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	table, err := LoadTable(f2, sheetName)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	wantColumns := []string{"ID Column ", "desc_column", "Eligibility (cat-a)"}
	if len(table.Columns) != len(wantColumns) {
		t.Fatalf("Expected %d columns, got %d: %v", len(wantColumns), len(table.Columns), table.Columns)
	}
	for i, want := range wantColumns {
		if table.Columns[i] != want {
			t.Errorf("Column %d = %q, expected %q", i, table.Columns[i], want)
		}
	}

	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0]["ID Column "] != "123" || table.Rows[0]["desc_column"] != "first" {
		t.Errorf("Unexpected first row: %v", table.Rows[0])
	}
	if table.Rows[0]["Eligibility (cat-a)"] != "1" {
		t.Errorf("Expected numeric cell as string \"1\", got %q", table.Rows[0]["Eligibility (cat-a)"])
	}
	if _, ok := table.Rows[1]["desc_column"]; ok {
		t.Errorf("Short row grew a desc_column cell: %v", table.Rows[1])
	}
}

func TestLoadTableSkipsBlankHeaders(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "id_column")
	// B1 intentionally blank
	f.SetCellValue(sheetName, "C1", "Eligibility (cat-b)")
	f.SetCellValue(sheetName, "A2", "1")
	f.SetCellValue(sheetName, "B2", "orphan")
	f.SetCellValue(sheetName, "C2", "0")

	tmpFile := filepath.Join(t.TempDir(), "blank_header.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	table, err := LoadTable(f2, sheetName)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	if len(table.Columns) != 2 {
		t.Fatalf("Expected 2 columns, got %v", table.Columns)
	}
	if _, ok := table.Rows[0][""]; ok {
		t.Error("Cell under a blank header leaked into the row")
	}
	if table.Rows[0]["Eligibility (cat-b)"] != "0" {
		t.Errorf("Column after the blank header misaligned: %v", table.Rows[0])
	}
}

func TestLoadTableEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	tmpFile := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	table, err := LoadTable(f2, "Sheet1")
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if len(table.Columns) != 0 || len(table.Rows) != 0 {
		t.Errorf("Expected empty table, got %d columns, %d rows", len(table.Columns), len(table.Rows))
	}
}
