// Package models defines the data structures shared by template capture and
// sheet rebuilding.
package models

import "github.com/xuri/excelize/v2"

// TemplateColumns is the number of template columns whose formatting is
// captured. The 18th output column has no styled counterpart in the template.
const TemplateColumns = 17

// CellSnapshot is the captured content and style of one template cell.
type CellSnapshot struct {
	// Value is the cell content: string, int64, float64, bool or nil when empty.
	Value interface{} `json:"value"`
	// Style is the cell's explicit style, nil when the cell uses the default style.
	Style *excelize.Style `json:"style,omitempty"`
}

// RowSnapshot is the captured height and cells of one template row.
type RowSnapshot struct {
	// Height is the row height in points (nil if the template leaves it default).
	Height *float64 `json:"height,omitempty"`
	// Cells maps 1-based column index to the captured cell.
	Cells map[int]CellSnapshot `json:"cells"`
}

// Style returns the captured style of column col, or nil.
func (r *RowSnapshot) Style(col int) *excelize.Style {
	if r == nil {
		return nil
	}
	return r.Cells[col].Style
}

// Populated reports whether any captured cell carries a value or a style.
func (r *RowSnapshot) Populated() bool {
	if r == nil {
		return false
	}
	for _, c := range r.Cells {
		if c.Value != nil || c.Style != nil {
			return true
		}
	}
	return false
}

// ColumnWidth is the configured width of one template column.
type ColumnWidth struct {
	// Index is the 1-based column index.
	Index int `json:"index"`
	// Width is the column width (nil if the template leaves it default).
	Width *float64 `json:"width,omitempty"`
}

// ViewSettings holds the sheet view and pane settings of the template.
type ViewSettings struct {
	View  excelize.ViewOptions `json:"view"`
	Panes *excelize.Panes      `json:"panes,omitempty"`
}

// TemplateDescriptor is the structural snapshot of an upload template. It is
// built once per export and never modified afterwards.
type TemplateDescriptor struct {
	// SheetName is the name of the template's first worksheet.
	SheetName string `json:"sheet_name"`
	// View is the captured view and freeze settings (nil if unavailable).
	View *ViewSettings `json:"view,omitempty"`
	// Protection is the captured sheet lock (nil if the sheet is not protected).
	Protection *excelize.SheetProtectionOptions `json:"protection,omitempty"`
	// ColumnWidths lists columns 1..TemplateColumns in order.
	ColumnWidths []ColumnWidth `json:"column_widths"`
	// HeaderRow is row 1 of the template.
	HeaderRow RowSnapshot `json:"header_row"`
	// DataRow is the sample data row (row 2), nil when the template has none.
	DataRow *RowSnapshot `json:"data_row,omitempty"`
}
