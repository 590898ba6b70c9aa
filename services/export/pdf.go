package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageMarginLeft   = 15.0
	pageMarginRight  = 15.0
	pageMarginTop    = 20.0
	pageMarginBottom = 20.0
	fontFamily       = "Helvetica"
)

// pdfWriter lays out the text line by line and tracks the vertical cursor
// itself, a new page is started whenever the next line would cross the
// bottom margin.
type pdfWriter struct {
	doc          *fpdf.Fpdf
	translate    func(string) string
	contentWidth float64
	pageHeight   float64
	y            float64
}

func newPDFWriter() *pdfWriter {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMarginLeft, pageMarginTop, pageMarginRight)
	doc.SetAutoPageBreak(false, pageMarginBottom)

	pageWidth, pageHeight := doc.GetPageSize()
	return &pdfWriter{
		doc:          doc,
		translate:    doc.UnicodeTranslatorFromDescriptor(""),
		contentWidth: pageWidth - pageMarginLeft - pageMarginRight,
		pageHeight:   pageHeight,
	}
}

func (p *pdfWriter) newPage() {
	p.doc.AddPage()
	p.y = pageMarginTop
}

func (p *pdfWriter) space(h float64) {
	p.y += h
}

func (p *pdfWriter) text(style string, size float64, text string) {
	p.doc.SetFont(fontFamily, style, size)
	lineHeight := size * 0.5

	for _, paragraph := range strings.Split(text, "\n") {
		lines := p.doc.SplitText(p.translate(paragraph), p.contentWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}
		for _, line := range lines {
			if p.y+lineHeight > p.pageHeight-pageMarginBottom {
				p.newPage()
				p.doc.SetFont(fontFamily, style, size)
			}
			p.doc.SetXY(pageMarginLeft, p.y)
			p.doc.CellFormat(p.contentWidth, lineHeight, line, "", 0, "L", false, 0, "")
			p.y += lineHeight
		}
	}
}

func (p *pdfWriter) rule() {
	p.doc.SetDrawColor(180, 180, 180)
	p.doc.Line(pageMarginLeft, p.y, pageMarginLeft+p.contentWidth, p.y)
	p.y += 3
}

// WritePDF renders an A4 report with one section per record.
func WritePDF(w io.Writer, records []Record, generatedAt time.Time) error {
	p := newPDFWriter()
	p.newPage()
	p.text("B", 20, "Code check report")
	p.text("", 10, fmt.Sprintf("Generated %s, %d code checks", generatedAt.Format("January 2, 2006"), len(records)))
	p.space(4)

	for i, record := range records {
		if i > 0 {
			p.newPage()
		}
		p.text("B", 14, record.Address)
		if len(record.ZoningCodes) > 0 {
			p.text("", 10, "Zoning: "+strings.Join(record.ZoningCodes, ", "))
		}
		p.text("", 10, "Status: "+record.Status)
		p.space(2)
		p.rule()

		for _, answer := range record.Analysis.Answers {
			p.text("B", 11, answer.Question)
			p.text("", 10, answer.DisplayAnswer())
			for j, citation := range answer.Citations {
				if strings.TrimSpace(citation.Text) == "" {
					continue
				}
				p.text("I", 9, fmt.Sprintf("[%d] %s", j+1, citation.Text))
			}
			p.space(4)
		}
	}

	if err := p.doc.Error(); err != nil {
		return err
	}
	return p.doc.Output(w)
}
