package writer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/models"
)

// Append writes one row per record below the existing rows, in input order.
// Styles come from the data row template, falling back to the header with
// bold cleared. The quantity column is stored as an integer when it parses.
func (s *Sheet) Append(desc *models.TemplateDescriptor, records []models.OutputRecord) error {
	return s.AppendFunc(desc, records, nil)
}

// AppendFunc is Append with a callback after each written row, used for
// progress reporting.
func (s *Sheet) AppendFunc(desc *models.TemplateDescriptor, records []models.OutputRecord, fn func(row int)) error {
	styles, err := s.resolveDataStyles(desc)
	if err != nil {
		return fmt.Errorf("resolve data styles: %w", err)
	}

	var height *float64
	if desc.DataRow != nil {
		height = desc.DataRow.Height
	}

	for _, record := range records {
		if err := s.appendRow(record, styles, height); err != nil {
			return err
		}
		if fn != nil {
			fn(s.rows)
		}
	}
	return nil
}

// resolveDataStyles registers one style per template column. Index 0 is unused
// and a zero id leaves the cell unstyled.
func (s *Sheet) resolveDataStyles(desc *models.TemplateDescriptor) ([]int, error) {
	ids := make([]int, models.TemplateColumns+1)
	for col := 1; col <= models.TemplateColumns; col++ {
		style, fallback := dataStyle(desc, col)
		id, err := registerStyle(s.file, style, fallback)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", col, err)
		}
		ids[col] = id
	}
	return ids, nil
}

func (s *Sheet) appendRow(record models.OutputRecord, styles []int, height *float64) error {
	rowNum := s.rows + 2 // row 1 is the header

	values := record.Values()
	values[models.QuantityColumn-1] = CoerceQuantity(values[models.QuantityColumn-1])

	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := s.file.SetSheetRow(s.name, start, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}

	if height != nil {
		if err := s.file.SetRowHeight(s.name, rowNum, *height); err != nil {
			return fmt.Errorf("set height of row %d: %w", rowNum, err)
		}
	}

	for col := 1; col <= models.TemplateColumns; col++ {
		if styles[col] == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col, rowNum)
		if err != nil {
			return err
		}
		if err := s.file.SetCellStyle(s.name, cell, cell, styles[col]); err != nil {
			return fmt.Errorf("style cell %s: %w", cell, err)
		}
	}

	s.rows++
	return nil
}

// CoerceQuantity returns v as an int when its text form is a base-10
// integer, and v unchanged otherwise.
func CoerceQuantity(v interface{}) interface{} {
	var text string
	switch t := v.(type) {
	case int:
		return t
	case string:
		text = t
	default:
		text = fmt.Sprint(t)
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return v
	}
	return n
}
