// Package parser captures the structure of an upload template workbook.
package parser

import (
	"errors"

	"github.com/xuri/excelize/v2"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/models"
)

const (
	headerRowIndex = 1
	dataRowIndex   = 2
)

// ReadTemplate opens the workbook at path and captures its first worksheet.
// The returned descriptor holds no reference to the opened workbook.
func ReadTemplate(path string) (*models.TemplateDescriptor, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheetName := sheetList[0]

	layout, err := ReadSheetLayout(path, sheetName)
	if err != nil {
		return nil, err
	}

	return Capture(f, sheetName, layout)
}

// Capture builds a descriptor from an open workbook and the sheet's layout.
func Capture(f *excelize.File, sheetName string, layout *SheetLayout) (*models.TemplateDescriptor, error) {
	desc := &models.TemplateDescriptor{
		SheetName:    sheetName,
		View:         captureView(f, sheetName),
		Protection:   layout.Protection,
		ColumnWidths: make([]models.ColumnWidth, 0, models.TemplateColumns),
	}

	for col := 1; col <= models.TemplateColumns; col++ {
		cw := models.ColumnWidth{Index: col}
		if width, ok := layout.ColWidths[col]; ok {
			cw.Width = &width
		}
		desc.ColumnWidths = append(desc.ColumnWidths, cw)
	}

	header, err := SnapshotRow(f, sheetName, headerRowIndex, models.TemplateColumns, layout)
	if err != nil {
		return nil, err
	}
	desc.HeaderRow = *header

	if layout.PopulatedRows[dataRowIndex] {
		dataRow, err := SnapshotRow(f, sheetName, dataRowIndex, models.TemplateColumns, layout)
		if err != nil {
			return nil, err
		}
		desc.DataRow = dataRow
	}

	return desc, nil
}

// captureView returns nil when the sheet view cannot be read.
func captureView(f *excelize.File, sheetName string) *models.ViewSettings {
	view, err := f.GetSheetView(sheetName, 0)
	if err != nil {
		return nil
	}
	settings := &models.ViewSettings{View: view}

	panes, err := f.GetPanes(sheetName)
	if err == nil && (panes.Freeze || panes.Split) {
		settings.Panes = &panes
	}
	return settings
}
