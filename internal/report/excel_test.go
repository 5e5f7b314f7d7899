package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.xlsx")
	require.NoError(t, WriteWorkbook(sampleResult(), Meta{InputPath: "data/sample.txt"}, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	verdictCell, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "NON-RANDOM", verdictCell)

	firstTest, err := f.GetCellValue("Tests", "A2")
	require.NoError(t, err)
	assert.Equal(t, "monobit", firstTest)

	outcome, err := f.GetCellValue("Tests", "D3")
	require.NoError(t, err)
	assert.Equal(t, "PASS", outcome)
}
