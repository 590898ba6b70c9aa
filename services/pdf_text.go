package services

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pbberlin/pdf"
)

const maxExtractedPages = 200

// ExtractPDFText concatenates the text runs of every page. Pages which can
// not be decoded are skipped.
func ExtractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered while opening pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var content strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages && i <= maxExtractedPages; i++ {
		page := reader.Page(i)
		cn, err := pageContent(&page)
		if err != nil {
			slog.Warn("could not read pdf page", "page", i, "err", err)
			continue
		}
		for _, t := range cn.Text {
			content.WriteString(t.S)
		}
		content.WriteString("\n")
	}
	return strings.TrimSpace(content.String()), nil
}

func pageContent(p *pdf.Page) (cnt pdf.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			// malformed streams make the reader panic
			err = fmt.Errorf("recovered while reading page content: %v", r)
		}
	}()
	return p.Content(), nil
}
