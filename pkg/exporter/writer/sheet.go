// Package writer rebuilds the upload sheet from a template descriptor and
// fills it with records.
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/models"
)

// ErrReservedSheetName indicates a sheet name Excel refuses to use.
var ErrReservedSheetName = errors.New("reserved sheet name")

// Sheet is the rebuilt worksheet and the workbook that owns it.
type Sheet struct {
	file *excelize.File
	name string
	rows int
}

// Name returns the worksheet name.
func (s *Sheet) Name() string { return s.name }

// Rows returns the number of data rows appended so far.
func (s *Sheet) Rows() int { return s.rows }

// File returns the owning workbook.
func (s *Sheet) File() *excelize.File { return s.file }

// Close releases the owning workbook.
func (s *Sheet) Close() error { return s.file.Close() }

// Build creates a fresh single-sheet workbook laid out like desc, with the
// header row written and no data rows.
func Build(desc *models.TemplateDescriptor) (*Sheet, error) {
	name := desc.SheetName
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty name", ErrReservedSheetName)
	}
	if strings.EqualFold(name, "History") {
		return nil, fmt.Errorf("%w: %q", ErrReservedSheetName, name)
	}

	f := excelize.NewFile()
	s := &Sheet{file: f, name: name}
	if err := s.init(desc); err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

func (s *Sheet) init(desc *models.TemplateDescriptor) error {
	if err := s.createSheet(); err != nil {
		return err
	}
	if err := s.applyView(desc.View); err != nil {
		return fmt.Errorf("apply view: %w", err)
	}
	if err := s.applyProtection(desc.Protection); err != nil {
		return fmt.Errorf("apply protection: %w", err)
	}
	if err := s.applyColumnWidths(desc.ColumnWidths); err != nil {
		return fmt.Errorf("set column widths: %w", err)
	}
	if err := s.writeHeader(&desc.HeaderRow); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

// createSheet replaces the default sheet of the new workbook with one named
// s.name.
func (s *Sheet) createSheet() error {
	defaultName := s.file.GetSheetName(0)
	if strings.EqualFold(defaultName, s.name) {
		return s.file.SetSheetName(defaultName, s.name)
	}

	if _, err := s.file.NewSheet(s.name); err != nil {
		return err
	}
	if err := s.file.DeleteSheet(defaultName); err != nil {
		return err
	}
	idx, err := s.file.GetSheetIndex(s.name)
	if err != nil {
		return err
	}
	s.file.SetActiveSheet(idx)
	return nil
}

func (s *Sheet) applyView(view *models.ViewSettings) error {
	if view == nil {
		return nil
	}
	opts, err := clone(&view.View)
	if err != nil {
		return err
	}
	if err := s.file.SetSheetView(s.name, 0, opts); err != nil {
		return err
	}
	if view.Panes == nil {
		return nil
	}
	panes, err := clone(view.Panes)
	if err != nil {
		return err
	}
	return s.file.SetPanes(s.name, panes)
}

func (s *Sheet) applyProtection(protection *excelize.SheetProtectionOptions) error {
	if protection == nil {
		return nil
	}
	opts, err := clone(protection)
	if err != nil {
		return err
	}
	return s.file.ProtectSheet(s.name, opts)
}

func (s *Sheet) applyColumnWidths(widths []models.ColumnWidth) error {
	for _, cw := range widths {
		if cw.Width == nil {
			continue
		}
		col, err := excelize.ColumnNumberToName(cw.Index)
		if err != nil {
			return err
		}
		if err := s.file.SetColWidth(s.name, col, col, *cw.Width); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sheet) writeHeader(header *models.RowSnapshot) error {
	for col := 1; col <= models.TemplateColumns; col++ {
		snap, ok := header.Cells[col]
		if !ok {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return err
		}
		if snap.Value != nil {
			if err := s.file.SetCellValue(s.name, cell, snap.Value); err != nil {
				return err
			}
		}
		styleID, err := registerStyle(s.file, snap.Style, false)
		if err != nil {
			return err
		}
		if styleID != 0 {
			if err := s.file.SetCellStyle(s.name, cell, cell, styleID); err != nil {
				return err
			}
		}
	}

	if header.Height != nil {
		return s.file.SetRowHeight(s.name, 1, *header.Height)
	}
	return nil
}
