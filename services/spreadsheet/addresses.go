// Package spreadsheet reads address lists from uploaded xlsx and csv files.
package spreadsheet

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/govgoose/govgoose/dtos"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format, expected .xlsx or .csv")
	ErrNoSheet           = errors.New("workbook does not contain a sheet")
)

type row struct {
	number int
	cells  []string
}

// ExtractAddresses returns the first column of every row after the header.
// Blank cells are dropped, row numbers are 1 based and refer to the file.
func ExtractAddresses(fileName string, r io.Reader) ([]dtos.AddressRow, error) {
	var rows []row
	var err error

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(r)
	case ".csv":
		rows, err = readCSV(r)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	return addressRows(rows), nil
}

func addressRows(rows []row) []dtos.AddressRow {
	addresses := make([]dtos.AddressRow, 0, len(rows))
	for i, r := range rows {
		// header
		if i == 0 {
			continue
		}
		if len(r.cells) == 0 {
			continue
		}
		address := strings.TrimSpace(r.cells[0])
		if address == "" {
			continue
		}
		addresses = append(addresses, dtos.AddressRow{Row: r.number, Address: address})
	}
	return addresses
}

func readWorkbook(r io.Reader) ([]row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "could not read sheet")
	}

	rows := make([]row, 0, len(cells))
	for i, c := range cells {
		rows = append(rows, row{number: i + 1, cells: c})
	}
	return rows, nil
}

func readCSV(r io.Reader) ([]row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows []row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "could not read csv")
		}
		// the reader skips empty lines, keep the line number of the file
		line, _ := reader.FieldPos(0)
		if len(rows) == 0 && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
		}
		rows = append(rows, row{number: line, cells: record})
	}
	return rows, nil
}
