package excel

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("spreadsheet is empty or could not be parsed")

// Row is one parsed spreadsheet row keyed by the sheet's column headers.
// A header missing from the map means the cell was absent, which is not an
// error at parse time.
type Row map[string]string

// Sheet is the first worksheet of an uploaded workbook, header row split off.
type Sheet struct {
	Headers []string
	Rows    []Row
}

// Parse reads the first worksheet of an xlsx workbook. The first non-empty
// row is treated as the header row; fully empty rows are skipped.
func Parse(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	headers := make([]string, 0, len(rows[0]))
	for _, h := range rows[0] {
		headers = append(headers, strings.TrimSpace(h))
	}

	sheet := &Sheet{Headers: headers}
	for _, cells := range rows[1:] {
		if rowIsEmpty(cells) {
			continue
		}
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(cells) {
				continue
			}
			value := strings.TrimSpace(cells[i])
			if value == "" {
				continue
			}
			row[header] = value
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	if len(sheet.Rows) == 0 {
		return nil, ErrEmptySheet
	}

	return sheet, nil
}

func rowIsEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
