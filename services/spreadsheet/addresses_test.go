package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/govgoose/govgoose/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExtractAddresses(t *testing.T) {
	t.Run("should skip the header and blank cells of a csv file", func(t *testing.T) {
		input := "\ufeffAddress,Note\n123 Main St,first\n,\n   ,blank\n456 Oak Ave\n"

		rows, err := ExtractAddresses("addresses.csv", strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, []dtos.AddressRow{
			{Row: 2, Address: "123 Main St"},
			{Row: 5, Address: "456 Oak Ave"},
		}, rows)
	})

	t.Run("should read the first sheet of a workbook", func(t *testing.T) {
		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		require.NoError(t, f.SetCellValue(sheet, "A1", "Address"))
		require.NoError(t, f.SetCellValue(sheet, "A2", "1 Elm St, Springfield"))
		require.NoError(t, f.SetCellValue(sheet, "A4", "  9 Pine Rd  "))
		require.NoError(t, f.SetCellValue(sheet, "B3", "only a note"))

		var buf bytes.Buffer
		require.NoError(t, f.Write(&buf))

		rows, err := ExtractAddresses("Addresses.XLSX", &buf)
		require.NoError(t, err)

		assert.Equal(t, []dtos.AddressRow{
			{Row: 2, Address: "1 Elm St, Springfield"},
			{Row: 4, Address: "9 Pine Rd"},
		}, rows)
	})

	t.Run("should return an empty list when only the header is present", func(t *testing.T) {
		rows, err := ExtractAddresses("addresses.csv", strings.NewReader("Address\n"))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("should reject unknown file types", func(t *testing.T) {
		_, err := ExtractAddresses("addresses.txt", strings.NewReader("Address\n1 Main St"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("should fail on a broken workbook", func(t *testing.T) {
		_, err := ExtractAddresses("addresses.xlsx", strings.NewReader("not a zip"))
		assert.Error(t, err)
	})
}
