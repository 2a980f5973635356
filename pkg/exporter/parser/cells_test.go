package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestSnapshotRow(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellValue(sheetName, "A1", "收件人姓名")
	f.SetCellValue(sheetName, "B1", 100)
	f.SetCellValue(sheetName, "C1", 200.5)
	f.SetCellValue(sheetName, "D1", "001")
	f.SetCellStyle(sheetName, "A1", "A1", bold)

	// Save to temp file
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	height := 30.0
	layout := &SheetLayout{RowHeights: map[int]float64{1: height}}
	row, err := SnapshotRow(f2, sheetName, 1, 5, layout)
	if err != nil {
		t.Fatalf("SnapshotRow failed: %v", err)
	}

	if len(row.Cells) != 5 {
		t.Errorf("Expected 5 cells, got %d", len(row.Cells))
	}
	if row.Height == nil || *row.Height != height {
		t.Errorf("Expected height %v, got %v", height, row.Height)
	}

	if row.Cells[1].Value != "收件人姓名" {
		t.Errorf("Expected '收件人姓名', got %v", row.Cells[1].Value)
	}
	if row.Cells[1].Style == nil || row.Cells[1].Style.Font == nil || !row.Cells[1].Style.Font.Bold {
		t.Errorf("Expected bold style on A1, got %+v", row.Cells[1].Style)
	}

	// Check numeric values
	if row.Cells[2].Value != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", row.Cells[2].Value, row.Cells[2].Value)
	}
	if row.Cells[3].Value != 200.5 {
		t.Errorf("Expected 200.5, got %v", row.Cells[3].Value)
	}

	// Numeric-looking text stays text
	if row.Cells[4].Value != "001" {
		t.Errorf("Expected '001', got %v (type: %T)", row.Cells[4].Value, row.Cells[4].Value)
	}

	// Empty cell has neither value nor style
	if row.Cells[5].Value != nil || row.Cells[5].Style != nil {
		t.Errorf("Expected empty snapshot for E1, got %+v", row.Cells[5])
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestCellValue(t *testing.T) {
	tests := []struct {
		raw      string
		cellType excelize.CellType
		expected interface{}
	}{
		{"", excelize.CellTypeSharedString, nil},
		{"42", excelize.CellTypeUnset, int64(42)},
		{"42", excelize.CellTypeSharedString, "42"},
		{"1", excelize.CellTypeBool, true},
		{"0", excelize.CellTypeBool, false},
		{"数量", excelize.CellTypeInlineString, "数量"},
	}

	for _, tt := range tests {
		result := cellValue(tt.raw, tt.cellType)
		if result != tt.expected {
			t.Errorf("cellValue(%q, %v) = %v, expected %v", tt.raw, tt.cellType, result, tt.expected)
		}
	}
}
