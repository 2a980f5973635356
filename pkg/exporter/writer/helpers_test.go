package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func cellName(t *testing.T, col, row int) string {
	t.Helper()
	name, err := excelize.CoordinatesToCellName(col, row)
	require.NoError(t, err)
	return name
}

func writeBytes(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func excelizeDefaultWidth(t *testing.T) (float64, error) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	return f.GetColWidth(f.GetSheetName(0), "A")
}
