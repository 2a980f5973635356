// Package xlsxtest writes synthetic upload templates for tests.
package xlsxtest

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/models"
)

// SampleFill is the fill color of the sample data row.
const SampleFill = "D9D9D9"

// Template describes the template to write.
type Template struct {
	SheetName    string
	HeaderHeight float64
	ColumnWidths map[int]float64
	// DataRow adds a styled sample row 2.
	DataRow       bool
	DataRowBold   bool
	DataRowHeight float64
	// DataRowColumns limits which columns of row 2 are styled; empty means all.
	DataRowColumns []int
	FreezeHeader   bool
	Protect        bool
}

// Write saves the template into t's temp dir and returns its path.
func Write(t testing.TB, tmpl Template) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if tmpl.SheetName != "" && tmpl.SheetName != sheet {
		require.NoError(t, f.SetSheetName(sheet, tmpl.SheetName))
		sheet = tmpl.SheetName
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "000000", Size: 11},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	require.NoError(t, err)

	for col := 1; col <= models.TemplateColumns; col++ {
		cell, err := excelize.CoordinatesToCellName(col, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, models.Columns[col-1]))
		require.NoError(t, f.SetCellStyle(sheet, cell, cell, headerStyle))
	}
	if tmpl.HeaderHeight > 0 {
		require.NoError(t, f.SetRowHeight(sheet, 1, tmpl.HeaderHeight))
	}

	for col, width := range tmpl.ColumnWidths {
		name, err := excelize.ColumnNumberToName(col)
		require.NoError(t, err)
		require.NoError(t, f.SetColWidth(sheet, name, name, width))
	}

	if tmpl.DataRow {
		dataStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: tmpl.DataRowBold, Color: "333333", Size: 10},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{SampleFill}},
		})
		require.NoError(t, err)

		cols := tmpl.DataRowColumns
		if len(cols) == 0 {
			for col := 1; col <= models.TemplateColumns; col++ {
				cols = append(cols, col)
			}
		}
		for _, col := range cols {
			cell, err := excelize.CoordinatesToCellName(col, 2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStyle(sheet, cell, cell, dataStyle))
		}
		require.NoError(t, f.SetCellValue(sheet, "A2", "示例"))
		if tmpl.DataRowHeight > 0 {
			require.NoError(t, f.SetRowHeight(sheet, 2, tmpl.DataRowHeight))
		}
	}

	if tmpl.FreezeHeader {
		require.NoError(t, f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}))
	}

	if tmpl.Protect {
		require.NoError(t, f.ProtectSheet(sheet, &excelize.SheetProtectionOptions{
			SelectLockedCells:   true,
			SelectUnlockedCells: true,
		}))
	}

	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// Open opens a workbook from bytes and closes it with the test.
func Open(t testing.TB, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// CellStyle returns the style of a cell, nil for the default style.
func CellStyle(t testing.TB, f *excelize.File, sheet, cell string) *excelize.Style {
	t.Helper()
	id, err := f.GetCellStyle(sheet, cell)
	require.NoError(t, err)
	if id == 0 {
		return nil
	}
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	return style
}
