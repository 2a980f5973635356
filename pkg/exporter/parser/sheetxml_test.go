package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yh1472056602/customer-management-system/internal/xlsxtest"
)

func TestParseSheetLayout(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <cols>
    <col min="1" max="2" width="12.5" customWidth="1"/>
    <col min="3" max="3" width="25" customWidth="1"/>
    <col min="4" max="4" style="1"/>
  </cols>
  <sheetData>
    <row r="1" ht="30" customHeight="1"><c r="A1" s="1" t="s"><v>0</v></c></row>
    <row r="2"><c r="A2"/></row>
    <row r="3"><c r="B3" s="2"/></row>
  </sheetData>
  <sheetProtection sheet="1" formatCells="0" selectLockedCells="1"/>
</worksheet>`)

	layout, err := parseSheetLayout(data)
	require.NoError(t, err)

	assert.Equal(t, map[int]float64{1: 12.5, 2: 12.5, 3: 25}, layout.ColWidths)
	assert.Equal(t, map[int]float64{1: 30}, layout.RowHeights)
	assert.True(t, layout.PopulatedRows[1])
	assert.False(t, layout.PopulatedRows[2], "bare cell reference is not populated")
	assert.True(t, layout.PopulatedRows[3])

	require.NotNil(t, layout.Protection)
	assert.True(t, layout.Protection.FormatCells)
	assert.False(t, layout.Protection.SelectLockedCells)
	assert.True(t, layout.Protection.SelectUnlockedCells)
	assert.False(t, layout.Protection.FormatRows)
	assert.False(t, layout.Protection.Sort)
}

func TestParseSheetLayoutUnlocked(t *testing.T) {
	layout, err := parseSheetLayout([]byte(`<worksheet><sheetData/><sheetProtection sheet="0"/></worksheet>`))
	require.NoError(t, err)
	assert.Nil(t, layout.Protection)
	assert.Empty(t, layout.ColWidths)
}

func TestReadSheetLayout(t *testing.T) {
	path := xlsxtest.Write(t, xlsxtest.Template{
		SheetName:    "上传模板",
		HeaderHeight: 30,
		ColumnWidths: map[int]float64{3: 25},
		Protect:      true,
	})

	layout, err := ReadSheetLayout(path, "上传模板")
	require.NoError(t, err)

	assert.Equal(t, 25.0, layout.ColWidths[3])
	assert.Equal(t, 30.0, layout.RowHeights[1])
	assert.True(t, layout.PopulatedRows[1])
	assert.False(t, layout.PopulatedRows[2])
	require.NotNil(t, layout.Protection)
	assert.True(t, layout.Protection.SelectLockedCells)

	_, err = ReadSheetLayout(path, "missing")
	assert.Error(t, err)
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		expected string
	}{
		{"worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"/xl/worksheets/sheet2.xml", "xl/worksheets/sheet2.xml"},
		{"../worksheets/sheet3.xml", "xl/worksheets/sheet3.xml"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, resolveRelativePath(tt.target, "xl"), tt.target)
	}
}

func TestParseWorkbookRels(t *testing.T) {
	workbook := []byte(`<workbook xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<sheets><sheet name="模板" sheetId="1" r:id="rId1"/><sheet name="Other" sheetId="2" r:id="rId2"/></sheets></workbook>`)
	rels := []byte(`<Relationships>
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="/xl/worksheets/sheet2.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`)

	sheets := parseWorkbookRels(rels, parseWorkbookSheets(workbook))
	assert.Equal(t, map[string]string{
		"模板":    "xl/worksheets/sheet1.xml",
		"Other": "xl/worksheets/sheet2.xml",
	}, sheets)
}
