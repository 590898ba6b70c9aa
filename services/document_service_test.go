package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/mocks"
	"github.com/govgoose/govgoose/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = config.Config{Storage: config.StorageConfig{SignedURLTTL: 10 * time.Minute}}

func TestObjectPath(t *testing.T) {
	id := uuid.MustParse("3c1f7d8e-8d5a-4b8e-9a53-3c43c1f0b2aa")

	assert.Equal(t, "users/user-1/springfield-sign-code-3c1f7d8e-8d5a-4b8e-9a53-3c43c1f0b2aa.pdf", ObjectPath("user-1", "Springfield Sign Code.PDF", id))
	assert.Equal(t, "users/user-1/document-3c1f7d8e-8d5a-4b8e-9a53-3c43c1f0b2aa.pdf", ObjectPath("user-1", "../.pdf", id))
}

func TestDocumentServiceUpload(t *testing.T) {
	pathPattern := regexp.MustCompile(`^users/user-1/zoning-ordinance-[0-9a-f-]{36}\.pdf$`)

	t.Run("should store the pdf and link it to the code check", func(t *testing.T) {
		codeCheckID := uuid.New()
		documentRepository := mocks.NewDocumentRepository(t)
		codeCheckRepository := mocks.NewCodeCheckRepository(t)
		storage := mocks.NewObjectStorage(t)

		codeCheckRepository.On("ReadActive", codeCheckID).Return(models.CodeCheck{}, nil)
		storage.On("Upload", mock.Anything, mock.MatchedBy(pathPattern.MatchString), "application/pdf", mock.Anything).Return(nil)
		documentRepository.On("Create", mock.Anything, mock.MatchedBy(func(d *models.Document) bool {
			return pathPattern.MatchString(d.URL) && d.Title == "Zoning Ordinance.pdf"
		})).Return(nil)
		codeCheckRepository.On("LinkDocuments", mock.Anything, codeCheckID, mock.Anything).Return(nil)

		s := NewDocumentService(documentRepository, codeCheckRepository, storage, nil, testConfig)
		document, err := s.Upload(t.Context(), dtos.DocumentUpload{
			UserID:      "user-1",
			FileName:    "Zoning Ordinance.pdf",
			ContentType: "application/pdf",
			CodeCheckID: &codeCheckID,
		}, strings.NewReader("%PDF-1.4"))
		require.NoError(t, err)
		assert.True(t, pathPattern.MatchString(document.URL))
	})

	t.Run("should reject anything but pdf", func(t *testing.T) {
		s := NewDocumentService(nil, nil, mocks.NewObjectStorage(t), nil, testConfig)

		_, err := s.Upload(t.Context(), dtos.DocumentUpload{UserID: "user-1", FileName: "notes.docx", ContentType: "application/msword"}, strings.NewReader(""))
		assert.ErrorIs(t, err, ErrUnsupportedFileType)
	})

	t.Run("should remove the stored object if the document row cannot be created", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		storage := mocks.NewObjectStorage(t)

		var uploadedPath string
		storage.On("Upload", mock.Anything, mock.MatchedBy(pathPattern.MatchString), "application/pdf", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			uploadedPath = args.String(1)
		})
		documentRepository.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
		storage.On("Delete", mock.Anything, mock.MatchedBy(func(p string) bool { return p == uploadedPath })).Return(nil)

		s := NewDocumentService(documentRepository, nil, storage, nil, testConfig)
		_, err := s.Upload(t.Context(), dtos.DocumentUpload{UserID: "user-1", FileName: "Zoning Ordinance.pdf", ContentType: "application/pdf"}, strings.NewReader("%PDF-1.4"))

		assert.ErrorContains(t, err, "could not store document")
		storage.AssertCalled(t, "Delete", mock.Anything, uploadedPath)
	})
}

func TestDocumentServiceListForCodeCheck(t *testing.T) {
	codeCheckID := uuid.New()
	documents := []models.Document{
		{Model: models.Model{ID: uuid.New()}, Title: "a", URL: "users/u/a.pdf"},
		{Model: models.Model{ID: uuid.New()}, Title: "b", URL: "users/u/b.pdf"},
		{Model: models.Model{ID: uuid.New()}, Title: "c", URL: "https://city.example/c.pdf"},
		{Model: models.Model{ID: uuid.New()}, Title: "d", URL: "users/u/d.pdf"},
	}

	documentRepository := mocks.NewDocumentRepository(t)
	storage := mocks.NewObjectStorage(t)
	documentRepository.On("ListByCodeCheck", codeCheckID).Return(documents, nil)
	storage.On("SignedURL", mock.Anything, "users/u/a.pdf", 10*time.Minute).Return("https://storage/a?token=1", nil)
	storage.On("SignedURL", mock.Anything, "users/u/b.pdf", 10*time.Minute).Return("", errors.New("expired key"))
	storage.On("SignedURL", mock.Anything, "users/u/d.pdf", 10*time.Minute).Return("https://storage/d?token=1", nil)

	s := NewDocumentService(documentRepository, nil, storage, nil, testConfig)
	res, err := s.ListForCodeCheck(t.Context(), codeCheckID)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c", "d"}, utils.Map(res, func(d dtos.DocumentDTO) string { return d.Title }))
	assert.Equal(t, "https://storage/a?token=1", res[0].SignedURL)
	assert.Equal(t, "https://city.example/c.pdf", res[1].SignedURL)
}

func TestDocumentServiceExtractText(t *testing.T) {
	t.Run("should return the text of the analysis backend", func(t *testing.T) {
		client := mocks.NewAnalysisClient(t)
		client.On("ExtractText", mock.Anything, "https://city.example/code.pdf").Return("Sec. 1 Signs", nil)

		res, err := NewDocumentService(nil, nil, nil, client, testConfig).ExtractText(t.Context(), "u", "https://city.example/code.pdf")
		require.NoError(t, err)
		assert.Equal(t, dtos.ExtractTextResponse{Text: "Sec. 1 Signs", Source: TextSourceRemote}, res)
	})

	t.Run("should fall back to the stored object when the backend fails", func(t *testing.T) {
		client := mocks.NewAnalysisClient(t)
		storage := mocks.NewObjectStorage(t)
		client.On("ExtractText", mock.Anything, "users/u/a.pdf").Return("", errors.New("backend down"))
		storage.On("Download", mock.Anything, "users/u/a.pdf").Return([]byte("definitely not a pdf"), nil)

		_, err := NewDocumentService(nil, nil, storage, client, testConfig).ExtractText(t.Context(), "u", "users/u/a.pdf")
		assert.ErrorContains(t, err, "could not extract text")
	})

	t.Run("should download external documents over http", func(t *testing.T) {
		var gotAccept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte("not a pdf either"))
		}))
		defer srv.Close()

		client := mocks.NewAnalysisClient(t)
		client.On("ExtractText", mock.Anything, srv.URL+"/code.pdf").Return("", errors.New("backend down"))

		_, err := NewDocumentService(nil, nil, nil, client, testConfig).ExtractText(t.Context(), "u", srv.URL+"/code.pdf")
		assert.ErrorContains(t, err, "could not extract text")
		assert.Equal(t, "application/pdf", gotAccept)
	})

	t.Run("should not read objects of other users", func(t *testing.T) {
		for _, objectPath := range []string{
			"users/victim/secret-lease.pdf",
			"users/u/../victim/secret-lease.pdf",
			"/users/victim/secret-lease.pdf",
			"users/u",
			"catalog/fees.pdf",
		} {
			// neither the backend nor the storage may be asked
			s := NewDocumentService(nil, nil, mocks.NewObjectStorage(t), mocks.NewAnalysisClient(t), testConfig)

			_, err := s.ExtractText(t.Context(), "u", objectPath)
			assert.ErrorIs(t, err, ErrDocumentNotAccessible, objectPath)
		}
	})

	t.Run("should require a user", func(t *testing.T) {
		_, err := NewDocumentService(nil, nil, nil, nil, testConfig).ExtractText(t.Context(), "", "users/u/a.pdf")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})
}

func TestStorageObjectOf(t *testing.T) {
	p, ok := storageObjectOf("u", "/users/u/a.pdf")
	assert.True(t, ok)
	assert.Equal(t, "users/u/a.pdf", p)

	_, ok = storageObjectOf("u", "users/u//a.pdf")
	assert.False(t, ok)
}

func TestExtractPDFText(t *testing.T) {
	_, err := ExtractPDFText([]byte("garbage"))
	assert.Error(t, err)
}
