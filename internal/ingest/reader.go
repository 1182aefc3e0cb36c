// Package ingest reads user-supplied tabular files into the string shapes the
// generator consumes.
//
// Files arrive as CSV or xlsx exports from banking and ERP frontends. CSV is
// decoded as UTF-8 with a GBK fallback, since Chinese bank exports commonly
// ship in GBK. Every cell stays a string so codes keep their leading zeros;
// incidental whitespace is trimmed.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// ErrEmptyTable is returned when a file contains no rows at all.
var ErrEmptyTable = errors.New("table file contains no rows")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadTable reads a whole tabular file and returns its header row and data
// rows. The format is chosen from the file name: .xlsx goes through the Excel
// reader, everything else is treated as CSV.
func ReadTable(r io.Reader, filename string) (header []string, rows [][]string, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", filename, err)
	}

	var all [][]string
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		all, err = readXLSX(data)
	} else {
		all, err = readCSV(data)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	if len(all) == 0 {
		return nil, nil, ErrEmptyTable
	}
	return all[0], all[1:], nil
}

// readCSV parses CSV bytes, retrying as GBK when the payload is not valid
// UTF-8.
func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if !utf8.Valid(data) {
		decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("not UTF-8 and GBK decode failed: %w", err)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return trimCells(records), nil
}

// readXLSX parses the first sheet of an xlsx workbook.
func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return trimCells(rows), nil
}

func trimCells(rows [][]string) [][]string {
	for _, row := range rows {
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
		}
	}
	return rows
}
