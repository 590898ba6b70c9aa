package export

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

const viewerURL = "https://govgoose.example/citation"

func codeCheckWithDetails(address string, details string) models.CodeCheck {
	return models.CodeCheck{
		Model:       models.Model{ID: uuid.New()},
		Address:     address,
		ZoningCodes: datatypes.JSONSlice[string]{"C-2", "SGN-1"},
		Status:      models.CodeCheckStatusCompleted,
		Details:     datatypes.JSON(details),
	}
}

func readCSV(t *testing.T, raw []byte) [][]string {
	t.Helper()
	require.True(t, bytes.HasPrefix(raw, []byte("\ufeff")), "missing byte order mark")

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, []byte("\ufeff"))))
	reader.Comma = '|'
	reader.FieldsPerRecord = -1
	// formula cells are written without quotes
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCitationLink(t *testing.T) {
	t.Run("should encode the citation text so that the viewer can decode it", func(t *testing.T) {
		text := "Sec. 4-12: signs shall not exceed 32 sq ft & must be set back 10'"

		link := CitationLink(viewerURL, text)

		u, err := url.Parse(link)
		require.NoError(t, err)
		decoded, err := base64.StdEncoding.DecodeString(u.Query().Get("text"))
		require.NoError(t, err)
		assert.Equal(t, text, string(decoded))
		assert.True(t, strings.HasPrefix(link, viewerURL+"?text="))
	})

	t.Run("should append to an existing query", func(t *testing.T) {
		link := CitationLink(viewerURL+"?lang=en", "x")
		assert.True(t, strings.HasPrefix(link, viewerURL+"?lang=en&text="))
	})
}

func TestWriteCSV(t *testing.T) {
	t.Run("should write a section per record and exactly two citation columns", func(t *testing.T) {
		records := []Record{{
			Address:     "123 Main St",
			ZoningCodes: []string{"C-2", "SGN-1"},
			Analysis: dtos.Analysis{Answers: []dtos.Answer{
				{Question: "Max height?", ShortAnswer: "20 ft", Citations: []dtos.Citation{{Text: "a"}, {Text: "b"}, {Text: "c"}}},
				{Question: "Permit needed?", DetailedAnswer: "Yes, always.", Citations: []dtos.Citation{{Text: "only one"}}},
				{Question: "Banners?", ShortAnswer: "No"},
			}},
		}}

		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, records, viewerURL))
		rows := readCSV(t, buf.Bytes())

		require.Len(t, rows, 5)
		assert.Equal(t, []string{"Question", "Answer", "Citation 1", "Citation 2"}, rows[0])
		assert.Equal(t, []string{"Address: 123 Main St", "Zoning: C-2, SGN-1", "", ""}, rows[1])

		assert.Equal(t, "Max height?", rows[2][0])
		assert.Equal(t, "20 ft", rows[2][1])
		require.Len(t, rows[2], 4)
		assert.Equal(t, `=HYPERLINK("`+CitationLink(viewerURL, "a")+`","Citation 1")`, rows[2][2])
		assert.Equal(t, `=HYPERLINK("`+CitationLink(viewerURL, "b")+`","Citation 2")`, rows[2][3])

		// detailed answer is used when the short one is empty
		assert.Equal(t, "Yes, always.", rows[3][1])
		assert.Equal(t, "", rows[3][3])

		assert.Equal(t, []string{"Banners?", "No", "", ""}, rows[4])
	})

	t.Run("should render an answer without citations with empty cells", func(t *testing.T) {
		records := []Record{{
			Address:  "1 Elm St",
			Analysis: dtos.Analysis{Answers: []dtos.Answer{{Question: "Question", ShortAnswer: "Answer"}}},
		}}

		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, records, viewerURL))

		assert.Contains(t, buf.String(), "\nQuestion|Answer||\n")
	})

	t.Run("should write formula cells without csv quoting", func(t *testing.T) {
		records := []Record{{
			Address:     "9 Oak St",
			ZoningCodes: []string{"R-1"},
			Analysis: dtos.Analysis{Answers: []dtos.Answer{
				{Question: "Setback|front?", ShortAnswer: `10 "ft"`, Citations: []dtos.Citation{{Text: "Sec. 2"}}},
			}},
		}}

		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, records, viewerURL))

		expected := "\ufeff" +
			"Question|Answer|Citation 1|Citation 2\n" +
			"Address: 9 Oak St|Zoning: R-1||\n" +
			`"Setback|front?"|"10 ""ft"""|=HYPERLINK("` + CitationLink(viewerURL, "Sec. 2") + `","Citation 1")|` + "\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("should double quotes inside the formula", func(t *testing.T) {
		assert.Equal(t, `=HYPERLINK("a""b","Citation 1")`, hyperlinkFormula(`a"b`, "Citation 1"))
	})
}

func TestRecordsFromCodeChecks(t *testing.T) {
	withAnalysis := codeCheckWithDetails("1 Main St", `{"answers":[{"question":"q","short_answer":"a","detailed_answer":"","citations":["c"]}]}`)
	legacy := codeCheckWithDetails("2 Main St", `"[{\"question\":\"q\",\"short_answer\":\"a\",\"detailed_answer\":\"\",\"citations\":[]}]"`)
	empty := codeCheckWithDetails("3 Main St", `{"answers":[]}`)
	broken := codeCheckWithDetails("4 Main St", `{not json`)
	missing := codeCheckWithDetails("5 Main St", ``)
	deleted := codeCheckWithDetails("6 Main St", `{"answers":[{"question":"q","short_answer":"a"}]}`)
	deleted.Status = models.CodeCheckStatusDeleted

	ids := []uuid.UUID{legacy.ID, withAnalysis.ID, empty.ID, broken.ID, missing.ID, deleted.ID, uuid.New(), legacy.ID}
	records := RecordsFromCodeChecks(ids, []models.CodeCheck{withAnalysis, legacy, empty, broken, missing, deleted})

	require.Len(t, records, 2)
	assert.Equal(t, "2 Main St", records[0].Address)
	assert.Equal(t, "1 Main St", records[1].Address)
	assert.Equal(t, "c", records[1].Analysis.Answers[0].Citations[0].Text)
}

func TestExport(t *testing.T) {
	codeCheck := codeCheckWithDetails("123 Main St", `{"answers":[{"question":"Max sign area?","short_answer":"32 sq ft","detailed_answer":"","citations":[{"text":"Sec. 4-12","page":3}]}]}`)
	cfg := config.Config{CitationViewerURL: viewerURL}

	t.Run("should export csv", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)
		repo.On("List", []uuid.UUID{codeCheck.ID}).Return([]models.CodeCheck{codeCheck}, nil)

		var buf bytes.Buffer
		n, err := NewService(repo, cfg).Export(t.Context(), []uuid.UUID{codeCheck.ID}, dtos.ExportFormatCSV, &buf)
		require.NoError(t, err)

		assert.Equal(t, 1, n)
		assert.Contains(t, buf.String(), "Max sign area?|32 sq ft|")
	})

	t.Run("should export a pdf document", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)
		repo.On("List", []uuid.UUID{codeCheck.ID}).Return([]models.CodeCheck{codeCheck}, nil)

		var buf bytes.Buffer
		s := NewService(repo, cfg)
		s.now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }
		n, err := s.Export(t.Context(), []uuid.UUID{codeCheck.ID}, dtos.ExportFormatPDF, &buf)
		require.NoError(t, err)

		assert.Equal(t, 1, n)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	})

	t.Run("should reject unknown formats without touching the database", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)

		_, err := NewService(repo, cfg).Export(t.Context(), []uuid.UUID{codeCheck.ID}, "xml", &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, dtos.ExportFormatPDF, format)

	_, err = ParseFormat("xls")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWritePDF(t *testing.T) {
	t.Run("should start a new page when the next line would cross the bottom margin", func(t *testing.T) {
		p := newPDFWriter()
		p.newPage()
		for range 200 {
			p.text("", 10, "Signs must not exceed the permitted area.")
		}

		assert.Greater(t, p.doc.PageCount(), 1)
		assert.LessOrEqual(t, p.y, p.pageHeight-pageMarginBottom)
	})

	t.Run("should render a report", func(t *testing.T) {
		answers := []dtos.Answer{{
			Question:    "Which restrictions apply to freestanding signs in this district?",
			ShortAnswer: strings.Repeat("Signs must not exceed the permitted area. ", 10),
			Citations:   []dtos.Citation{{Text: "Sec. 4-12"}, {Text: "Sec. 4-13"}},
		}}

		var buf bytes.Buffer
		err := WritePDF(&buf, []Record{{Address: "123 Main St", Status: "completed", Analysis: dtos.Analysis{Answers: answers}}}, time.Now())
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	})
}
