package export

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/govgoose/govgoose/dtos"
)

const (
	utf8BOM      = "\ufeff"
	csvDelimiter = '|'
	// spreadsheet layout has exactly two citation columns
	citationColumns = 2
)

var csvHeader = []string{"Question", "Answer", "Citation 1", "Citation 2"}

// CitationLink points the citation viewer to the base64 encoded citation text.
func CitationLink(viewerURL, text string) string {
	sep := "?"
	if strings.Contains(viewerURL, "?") {
		sep = "&"
	}
	return viewerURL + sep + "text=" + url.QueryEscape(base64.StdEncoding.EncodeToString([]byte(text)))
}

func escapeFormulaString(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

func hyperlinkFormula(link, label string) string {
	return fmt.Sprintf(`=HYPERLINK("%s","%s")`, escapeFormulaString(link), escapeFormulaString(label))
}

func citationCells(viewerURL string, citations []dtos.Citation) []string {
	cells := make([]string, citationColumns)
	for i := 0; i < citationColumns && i < len(citations); i++ {
		if strings.TrimSpace(citations[i].Text) == "" {
			continue
		}
		cells[i] = hyperlinkFormula(CitationLink(viewerURL, citations[i].Text), fmt.Sprintf("Citation %d", i+1))
	}
	return cells
}

// isBareFormula reports whether field is written without csv quoting.
func isBareFormula(field string) bool {
	return strings.HasPrefix(field, "=HYPERLINK(") && !strings.ContainsAny(field, string(csvDelimiter)+"\r\n")
}

func quoteField(field string) string {
	if field == "" || !strings.ContainsAny(field, string(csvDelimiter)+"\"\r\n") && field[0] != ' ' && field[0] != '\t' {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func writeRow(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(csvDelimiter); err != nil {
				return err
			}
		}
		if !isBareFormula(field) {
			field = quoteField(field)
		}
		if _, err := w.WriteString(field); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// WriteCSV writes one section per record followed by one row per answer.
func WriteCSV(w io.Writer, records []Record, viewerURL string) error {
	writer := bufio.NewWriter(w)
	if _, err := writer.WriteString(utf8BOM); err != nil {
		return err
	}

	if err := writeRow(writer, csvHeader); err != nil {
		return err
	}
	for _, record := range records {
		section := []string{
			"Address: " + record.Address,
			"Zoning: " + strings.Join(record.ZoningCodes, ", "),
			"",
			"",
		}
		if err := writeRow(writer, section); err != nil {
			return err
		}

		for _, answer := range record.Analysis.Answers {
			row := append([]string{answer.Question, answer.DisplayAnswer()}, citationCells(viewerURL, answer.Citations)...)
			if err := writeRow(writer, row); err != nil {
				return err
			}
		}
	}
	return writer.Flush()
}
