package controllers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/mocks"
	"github.com/govgoose/govgoose/services"
	"github.com/govgoose/govgoose/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	shared.SetSession(ctx, shared.NewSession("user-1"))
	return ctx, rec
}

func requireHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, code, he.Code)
	return he
}

func TestCodeCheckControllerCreate(t *testing.T) {
	t.Run("should create the code check for the session user", func(t *testing.T) {
		codeCheckService := mocks.NewCodeCheckService(t)
		codeCheckService.On("Create", "user-1", mock.MatchedBy(func(req dtos.CodeCheckCreateRequest) bool {
			return req.Address == "123 Main St" && *req.Latitude == 40.1
		})).Return(models.CodeCheck{Address: "123 Main St", Status: models.CodeCheckStatusPending}, nil)

		ctx, rec := newJSONContext(http.MethodPost, "/code-checks/", `{"address":"123 Main St","latitude":40.1,"longitude":-75.2}`)
		err := NewCodeCheckController(codeCheckService, nil, nil, nil, nil).Create(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	})

	t.Run("should reject requests without coordinates", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/code-checks/", `{"address":"123 Main St"}`)
		err := NewCodeCheckController(mocks.NewCodeCheckService(t), nil, nil, nil, nil).Create(ctx)

		requireHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestCodeCheckControllerDelete(t *testing.T) {
	id := uuid.New()

	t.Run("should answer 400 without confirmation", func(t *testing.T) {
		codeCheckService := mocks.NewCodeCheckService(t)
		codeCheckService.On("SoftDelete", id, "nope").Return(services.ErrDeleteNotConfirmed)

		ctx, _ := newJSONContext(http.MethodDelete, "/", `{"confirmation":"nope"}`)
		ctx.SetParamNames("codeCheckID")
		ctx.SetParamValues(id.String())

		err := NewCodeCheckController(codeCheckService, nil, nil, nil, nil).Delete(ctx)
		requireHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("should answer 204 when confirmed", func(t *testing.T) {
		codeCheckService := mocks.NewCodeCheckService(t)
		codeCheckService.On("SoftDelete", id, "DELETE").Return(nil)

		ctx, rec := newJSONContext(http.MethodDelete, "/", `{"confirmation":"DELETE"}`)
		ctx.SetParamNames("codeCheckID")
		ctx.SetParamValues(id.String())

		require.NoError(t, NewCodeCheckController(codeCheckService, nil, nil, nil, nil).Delete(ctx))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestCodeCheckControllerRead(t *testing.T) {
	id := uuid.New()

	t.Run("should answer 404 for deleted code checks", func(t *testing.T) {
		codeCheckService := mocks.NewCodeCheckService(t)
		codeCheckService.On("Read", id).Return(models.CodeCheck{}, gorm.ErrRecordNotFound)

		ctx, _ := newJSONContext(http.MethodGet, "/", "")
		ctx.SetParamNames("codeCheckID")
		ctx.SetParamValues(id.String())

		err := NewCodeCheckController(codeCheckService, nil, nil, mocks.NewDocumentService(t), nil).Read(ctx)
		requireHTTPError(t, err, http.StatusNotFound)
	})

	t.Run("should attach the signed documents", func(t *testing.T) {
		codeCheckService := mocks.NewCodeCheckService(t)
		documentService := mocks.NewDocumentService(t)
		codeCheckService.On("Read", id).Return(models.CodeCheck{Model: models.Model{ID: id}}, nil)
		documentService.On("ListForCodeCheck", mock.Anything, id).Return([]dtos.DocumentDTO{{Title: "ordinance.pdf", SignedURL: "https://storage/signed"}}, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/", "")
		ctx.SetParamNames("codeCheckID")
		ctx.SetParamValues(id.String())

		require.NoError(t, NewCodeCheckController(codeCheckService, nil, nil, documentService, nil).Read(ctx))
		assert.Contains(t, rec.Body.String(), "https://storage/signed")
	})
}

func TestCodeCheckControllerAnalyze(t *testing.T) {
	id := uuid.New()
	analysisService := mocks.NewAnalysisService(t)
	analysisService.On("Analyze", mock.Anything, id, []string{"Are roof signs allowed?"}).Return(dtos.Analysis{}, errors.Join(services.ErrAnalysisFailed, errors.New("timeout")))

	ctx, _ := newJSONContext(http.MethodPost, "/", `{"customQuestions":["Are roof signs allowed?"]}`)
	ctx.SetParamNames("codeCheckID")
	ctx.SetParamValues(id.String())

	err := NewCodeCheckController(nil, analysisService, nil, nil, nil).Analyze(ctx)
	requireHTTPError(t, err, http.StatusBadGateway)
}

func TestCodeCheckControllerExport(t *testing.T) {
	ids := []uuid.UUID{uuid.New()}

	t.Run("should stream the report as attachment", func(t *testing.T) {
		exportService := mocks.NewExportService(t)
		exportService.On("Export", mock.Anything, ids, dtos.ExportFormatCSV, mock.Anything).Return(func(_ context.Context, _ []uuid.UUID, _ dtos.ExportFormat, w io.Writer) (int, error) {
			_, err := w.Write([]byte("Question|Answer|Citation 1|Citation 2\n"))
			return 1, err
		})

		ctx, rec := newJSONContext(http.MethodPost, "/code-checks/export/", `{"ids":["`+ids[0].String()+`"],"format":"csv"}`)
		require.NoError(t, NewCodeCheckController(nil, nil, exportService, nil, nil).Export(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment; filename=")
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Body.String(), "Question|Answer")
	})

	t.Run("should reject unknown formats", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/code-checks/export/", `{"ids":["`+ids[0].String()+`"],"format":"docx"}`)
		err := NewCodeCheckController(nil, nil, mocks.NewExportService(t), nil, nil).Export(ctx)

		requireHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestCodeCheckControllerImport(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "addresses.csv")
	require.NoError(t, err)
	_, _ = part.Write([]byte("Address\n1 Main St\n"))
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/code-checks/import/", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	shared.SetSession(ctx, shared.NewSession("user-1"))

	batchImportService := mocks.NewBatchImportService(t)
	batchImportService.On("Import", mock.Anything, "user-1", "addresses.csv", mock.Anything).Return(dtos.BatchImportSummary{Total: 1, Succeeded: 1}, nil)

	require.NoError(t, NewCodeCheckController(nil, nil, nil, nil, batchImportService).Import(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"succeeded":1`)
}
