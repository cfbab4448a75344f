package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, cells := range rows {
		for j, value := range cells {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParse_SplitsHeaderAndRows(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"名称", "出席情况", "提供内部引荐"},
		{"张三", "出席", "3"},
		{"李四", "请假", ""},
	})

	sheet, err := Parse(buf)
	require.NoError(t, err)
	require.Equal(t, []string{"名称", "出席情况", "提供内部引荐"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	require.Equal(t, "张三", sheet.Rows[0]["名称"])
	require.Equal(t, "3", sheet.Rows[0]["提供内部引荐"])

	_, ok := sheet.Rows[1]["提供内部引荐"]
	require.False(t, ok, "blank cells are omitted from the row map")
}

func TestParse_SkipsFullyEmptyRows(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"名称", "出席情况"},
		{"", ""},
		{"张三", "出席"},
	})

	sheet, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)
	require.Equal(t, "张三", sheet.Rows[0]["名称"])
}

func TestParse_TrimsHeaderAndCellWhitespace(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{" 名称 ", "出席情况"},
		{" 张三 ", "出席"},
	})

	sheet, err := Parse(buf)
	require.NoError(t, err)
	require.Equal(t, "名称", sheet.Headers[0])
	require.Equal(t, "张三", sheet.Rows[0]["名称"])
}

func TestParse_HeaderOnlyWorkbookIsEmpty(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"名称", "出席情况"},
	})

	_, err := Parse(buf)
	require.ErrorIs(t, err, ErrEmptySheet)
}

func TestParse_RejectsGarbageInput(t *testing.T) {
	_, err := Parse(bytes.NewBufferString("not a workbook"))
	require.Error(t, err)
}
