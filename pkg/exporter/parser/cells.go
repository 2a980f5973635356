package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/models"
)

// SnapshotRow captures value and style of columns 1..cols in one row.
// Height comes from layout when the row sets one.
func SnapshotRow(f *excelize.File, sheetName string, row, cols int, layout *SheetLayout) (*models.RowSnapshot, error) {
	snap := &models.RowSnapshot{
		Cells: make(map[int]models.CellSnapshot, cols),
	}
	if layout != nil {
		if ht, ok := layout.RowHeights[row]; ok {
			snap.Height = &ht
		}
	}

	for col := 1; col <= cols; col++ {
		cellName, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return nil, err
		}
		cell, err := snapshotCell(f, sheetName, cellName)
		if err != nil {
			return nil, err
		}
		snap.Cells[col] = cell
	}

	return snap, nil
}

func snapshotCell(f *excelize.File, sheetName, cellName string) (models.CellSnapshot, error) {
	var cell models.CellSnapshot

	raw, err := f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return cell, err
	}
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return cell, err
	}
	cell.Value = cellValue(raw, cellType)

	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return cell, err
	}
	if styleID != 0 {
		style, err := f.GetStyle(styleID)
		if err != nil {
			return cell, err
		}
		cell.Style = style
	}

	return cell, nil
}

// cellValue converts a raw cell string according to its stored type.
// Text stays text even when it looks numeric.
func cellValue(raw string, cellType excelize.CellType) interface{} {
	if raw == "" {
		return nil
	}
	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return parseValue(raw)
	case excelize.CellTypeBool:
		return raw == "1" || raw == "TRUE" || raw == "true"
	default:
		return raw
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
