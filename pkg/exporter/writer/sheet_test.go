package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yh1472056602/customer-management-system/internal/xlsxtest"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/models"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/parser"
)

func readDescriptor(t *testing.T, tmpl xlsxtest.Template) *models.TemplateDescriptor {
	t.Helper()
	desc, err := parser.ReadTemplate(xlsxtest.Write(t, tmpl))
	require.NoError(t, err)
	return desc
}

func TestBuildReservedNames(t *testing.T) {
	for _, name := range []string{"", "  ", "History", "history"} {
		_, err := Build(&models.TemplateDescriptor{SheetName: name})
		assert.ErrorIs(t, err, ErrReservedSheetName, "name %q", name)
	}
}

func TestBuildInvalidName(t *testing.T) {
	_, err := Build(&models.TemplateDescriptor{SheetName: "bad[name]"})
	assert.Error(t, err)
}

func TestBuildReproducesLayout(t *testing.T) {
	desc := readDescriptor(t, xlsxtest.Template{
		SheetName:    "上传模板",
		HeaderHeight: 30,
		ColumnWidths: map[int]float64{3: 25, 6: 40},
		FreezeHeader: true,
		Protect:      true,
	})

	s, err := Build(desc)
	require.NoError(t, err)
	defer s.Close()

	data, err := s.Bytes()
	require.NoError(t, err)
	out := xlsxtest.Open(t, data)

	assert.Equal(t, []string{"上传模板"}, out.GetSheetList())
	assert.Equal(t, 0, s.Rows())

	width, err := out.GetColWidth("上传模板", "C")
	require.NoError(t, err)
	assert.Equal(t, 25.0, width)
	width, err = out.GetColWidth("上传模板", "F")
	require.NoError(t, err)
	assert.Equal(t, 40.0, width)

	height, err := out.GetRowHeight("上传模板", 1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, height)

	for col := 1; col <= models.TemplateColumns; col++ {
		cell := cellName(t, col, 1)
		value, err := out.GetCellValue("上传模板", cell)
		require.NoError(t, err)
		assert.Equal(t, models.Columns[col-1], value)

		style := xlsxtest.CellStyle(t, out, "上传模板", cell)
		require.NotNil(t, style, cell)
		assert.True(t, style.Font.Bold, cell)
		assert.Equal(t, desc.HeaderRow.Cells[col].Style.Border, style.Border, cell)
	}

	rows, err := out.GetRows("上传模板")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	panes, err := out.GetPanes("上传模板")
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 1, panes.YSplit)
	assert.Equal(t, "A2", panes.TopLeftCell)

	layout, err := parser.ReadSheetLayout(writeBytes(t, data), "上传模板")
	require.NoError(t, err)
	assert.NotNil(t, layout.Protection)
}

func TestBuildDefaultSheetName(t *testing.T) {
	desc := readDescriptor(t, xlsxtest.Template{})
	require.Equal(t, "Sheet1", desc.SheetName)

	s, err := Build(desc)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, []string{"Sheet1"}, s.File().GetSheetList())
	assert.Equal(t, "Sheet1", s.Name())
}

func TestBuildLeavesNullWidthsDefault(t *testing.T) {
	desc := readDescriptor(t, xlsxtest.Template{ColumnWidths: map[int]float64{2: 18}})
	for _, cw := range desc.ColumnWidths {
		if cw.Index != 2 {
			assert.Nil(t, cw.Width, "column %d", cw.Index)
		}
	}

	s, err := Build(desc)
	require.NoError(t, err)
	defer s.Close()

	base, err := excelizeDefaultWidth(t)
	require.NoError(t, err)
	width, err := s.File().GetColWidth(desc.SheetName, "A")
	require.NoError(t, err)
	assert.Equal(t, base, width)
}
