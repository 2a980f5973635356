package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetLayout holds the worksheet properties excelize does not report
// directly: whether a width or height is set at all, which rows hold cells,
// and the sheet protection element.
type SheetLayout struct {
	// ColWidths maps 1-based column index to its configured width.
	ColWidths map[int]float64
	// RowHeights maps 1-based row index to its configured height.
	RowHeights map[int]float64
	// PopulatedRows lists rows with at least one cell carrying a value or style.
	PopulatedRows map[int]bool
	// Protection is nil when the sheet is not locked.
	Protection *excelize.SheetProtectionOptions
}

type xlsxWorksheet struct {
	Cols            []xlsxCol            `xml:"cols>col"`
	Rows            []xlsxRow            `xml:"sheetData>row"`
	SheetProtection *xlsxSheetProtection `xml:"sheetProtection"`
}

type xlsxCol struct {
	Min   int    `xml:"min,attr"`
	Max   int    `xml:"max,attr"`
	Width string `xml:"width,attr"`
}

type xlsxRow struct {
	R     int     `xml:"r,attr"`
	Ht    string  `xml:"ht,attr"`
	Cells []xlsxC `xml:"c"`
}

type xlsxC struct {
	S  string    `xml:"s,attr"`
	T  string    `xml:"t,attr"`
	V  *string   `xml:"v"`
	IS *struct{} `xml:"is"`
}

func (c xlsxC) populated() bool {
	return (c.S != "" && c.S != "0") || c.V != nil || c.IS != nil
}

// xlsxSheetProtection keeps attribute text so omitted attributes can fall back
// to their OOXML defaults.
type xlsxSheetProtection struct {
	Sheet               string `xml:"sheet,attr"`
	Objects             string `xml:"objects,attr"`
	Scenarios           string `xml:"scenarios,attr"`
	FormatCells         string `xml:"formatCells,attr"`
	FormatColumns       string `xml:"formatColumns,attr"`
	FormatRows          string `xml:"formatRows,attr"`
	InsertColumns       string `xml:"insertColumns,attr"`
	InsertRows          string `xml:"insertRows,attr"`
	InsertHyperlinks    string `xml:"insertHyperlinks,attr"`
	DeleteColumns       string `xml:"deleteColumns,attr"`
	DeleteRows          string `xml:"deleteRows,attr"`
	SelectLockedCells   string `xml:"selectLockedCells,attr"`
	Sort                string `xml:"sort,attr"`
	AutoFilter          string `xml:"autoFilter,attr"`
	PivotTables         string `xml:"pivotTables,attr"`
	SelectUnlockedCells string `xml:"selectUnlockedCells,attr"`
}

// ReadSheetLayout reads the layout of the named sheet straight from the
// package parts of the xlsx file at path.
func ReadSheetLayout(path, sheetName string) (*SheetLayout, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheetPath, err := findSheetPath(&r.Reader, sheetName)
	if err != nil {
		return nil, err
	}

	data, err := readZipFile(&r.Reader, sheetPath)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("worksheet part %s missing", sheetPath)
	}

	return parseSheetLayout(data)
}

func parseSheetLayout(data []byte) (*SheetLayout, error) {
	var ws xlsxWorksheet
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parse worksheet: %w", err)
	}

	layout := &SheetLayout{
		ColWidths:     make(map[int]float64),
		RowHeights:    make(map[int]float64),
		PopulatedRows: make(map[int]bool),
	}

	for _, col := range ws.Cols {
		if col.Width == "" {
			continue
		}
		width, err := strconv.ParseFloat(col.Width, 64)
		if err != nil {
			continue
		}
		for i := col.Min; i <= col.Max; i++ {
			layout.ColWidths[i] = width
		}
	}

	for _, row := range ws.Rows {
		if row.Ht != "" {
			if ht, err := strconv.ParseFloat(row.Ht, 64); err == nil {
				layout.RowHeights[row.R] = ht
			}
		}
		for _, c := range row.Cells {
			if c.populated() {
				layout.PopulatedRows[row.R] = true
				break
			}
		}
	}

	if p := ws.SheetProtection; p != nil && xmlBool(p.Sheet, false) {
		layout.Protection = p.options()
	}

	return layout, nil
}

// options converts the protection attributes, which mark actions as locked,
// into excelize's allow-flags.
func (p *xlsxSheetProtection) options() *excelize.SheetProtectionOptions {
	return &excelize.SheetProtectionOptions{
		AutoFilter:          !xmlBool(p.AutoFilter, true),
		DeleteColumns:       !xmlBool(p.DeleteColumns, true),
		DeleteRows:          !xmlBool(p.DeleteRows, true),
		EditObjects:         !xmlBool(p.Objects, false),
		EditScenarios:       !xmlBool(p.Scenarios, false),
		FormatCells:         !xmlBool(p.FormatCells, true),
		FormatColumns:       !xmlBool(p.FormatColumns, true),
		FormatRows:          !xmlBool(p.FormatRows, true),
		InsertColumns:       !xmlBool(p.InsertColumns, true),
		InsertHyperlinks:    !xmlBool(p.InsertHyperlinks, true),
		InsertRows:          !xmlBool(p.InsertRows, true),
		PivotTables:         !xmlBool(p.PivotTables, true),
		SelectLockedCells:   !xmlBool(p.SelectLockedCells, false),
		SelectUnlockedCells: !xmlBool(p.SelectUnlockedCells, false),
		Sort:                !xmlBool(p.Sort, true),
	}
}

func xmlBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	return def
}

// findSheetPath resolves a sheet name to its worksheet part via the workbook
// and its relationships.
func findSheetPath(r *zip.Reader, sheetName string) (string, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return "", err
	}
	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return "", err
	}

	sheetFiles := parseWorkbookRels(wbRelsXML, parseWorkbookSheets(workbookXML))
	sheetPath, ok := sheetFiles[sheetName]
	if !ok {
		return "", fmt.Errorf("sheet %q not found in workbook", sheetName)
	}
	return sheetPath, nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	return baseDir + "/" + target
}

func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> part path
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}
