// Copyright (C) 2026 The GovGoose Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/govgoose/govgoose/common"
	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/shared"
	"github.com/govgoose/govgoose/transformer"
	"github.com/govgoose/govgoose/utils"
	"github.com/pkg/errors"
)

var (
	ErrUnsupportedFileType   = errors.New("only pdf documents are supported")
	ErrDocumentNotAccessible = errors.New("document is not accessible")
)

const (
	maxPDFDownloadSize = 50 << 20
	signingConcurrency = 8

	TextSourceRemote = "remote"
	TextSourceLocal  = "local"
)

type documentService struct {
	documentRepository  shared.DocumentRepository
	codeCheckRepository shared.CodeCheckRepository
	storage             shared.ObjectStorage
	analysisClient      shared.AnalysisClient
	httpClient          *http.Client
	signedURLTTL        time.Duration
}

var _ shared.DocumentService = (*documentService)(nil)

func NewDocumentService(documentRepository shared.DocumentRepository, codeCheckRepository shared.CodeCheckRepository, storage shared.ObjectStorage, analysisClient shared.AnalysisClient, cfg config.Config) *documentService {
	ttl := cfg.Storage.SignedURLTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &documentService{
		documentRepository:  documentRepository,
		codeCheckRepository: codeCheckRepository,
		storage:             storage,
		analysisClient:      analysisClient,
		httpClient:          common.NewHTTPClient(time.Minute),
		signedURLTTL:        ttl,
	}
}

func isPDF(fileName, contentType string) bool {
	if strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		return true
	}
	return strings.HasPrefix(strings.ToLower(contentType), "application/pdf")
}

// ObjectPath builds the storage key of an uploaded document.
func ObjectPath(userID, fileName string, id uuid.UUID) string {
	name := slug.Make(strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName)))
	if name == "" {
		name = "document"
	}
	return fmt.Sprintf("users/%s/%s-%s.pdf", userID, name, id)
}

func isExternalURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func (s *documentService) Upload(ctx context.Context, upload dtos.DocumentUpload, r io.Reader) (models.Document, error) {
	if upload.UserID == "" {
		return models.Document{}, ErrNotAuthenticated
	}
	if !isPDF(upload.FileName, upload.ContentType) {
		return models.Document{}, ErrUnsupportedFileType
	}

	if upload.CodeCheckID != nil {
		if _, err := s.codeCheckRepository.ReadActive(*upload.CodeCheckID); err != nil {
			return models.Document{}, err
		}
	}

	document := models.Document{
		Model:       models.Model{ID: uuid.New()},
		Title:       upload.FileName,
		UserID:      upload.UserID,
		ContentType: "application/pdf",
		Size:        upload.Size,
	}
	document.URL = ObjectPath(upload.UserID, upload.FileName, document.ID)

	if err := s.storage.Upload(ctx, document.URL, document.ContentType, r); err != nil {
		return models.Document{}, errors.Wrap(err, "could not upload document")
	}

	if err := s.documentRepository.Create(nil, &document); err != nil {
		if deleteErr := s.storage.Delete(ctx, document.URL); deleteErr != nil {
			slog.Error("could not remove orphaned document object", "path", document.URL, "err", deleteErr)
		}
		return models.Document{}, errors.Wrap(err, "could not store document")
	}

	if upload.CodeCheckID != nil {
		if err := s.codeCheckRepository.LinkDocuments(nil, *upload.CodeCheckID, []uuid.UUID{document.ID}); err != nil {
			return models.Document{}, errors.Wrap(err, "could not link document")
		}
	}
	return document, nil
}

// ListForCodeCheck signs the stored documents concurrently. Documents which
// could not be signed are left out, the order is kept.
func (s *documentService) ListForCodeCheck(ctx context.Context, codeCheckID uuid.UUID) ([]dtos.DocumentDTO, error) {
	documents, err := s.documentRepository.ListByCodeCheck(codeCheckID)
	if err != nil {
		return nil, err
	}

	group := utils.ErrGroup[*dtos.DocumentDTO](signingConcurrency)
	for _, document := range documents {
		group.Go(func() (*dtos.DocumentDTO, error) {
			dto := transformer.DocumentModelToDTO(document)
			if isExternalURL(document.URL) {
				dto.SignedURL = document.URL
				return &dto, nil
			}

			signed, err := s.storage.SignedURL(ctx, document.URL, s.signedURLTTL)
			if err != nil {
				slog.Warn("could not sign document url", "documentID", document.ID, "err", err)
				return nil, nil
			}
			dto.SignedURL = signed
			return &dto, nil
		})
	}

	results, err := group.WaitAndCollect()
	if err != nil {
		return nil, err
	}
	return utils.NotNil(results), nil
}

func (s *documentService) CheckExists(ctx context.Context, address string) (dtos.DocumentExistsResponse, error) {
	res, err := s.analysisClient.CheckDocuments(ctx, strings.TrimSpace(address))
	if err != nil {
		return dtos.DocumentExistsResponse{}, err
	}
	if res.Paths == nil {
		res.Paths = []string{}
	}
	return res, nil
}

func (s *documentService) ListUnderPath(ctx context.Context, path string) ([]dtos.RemoteDocument, error) {
	documents, err := s.analysisClient.ListDocuments(ctx, path)
	if err != nil {
		return nil, err
	}
	if documents == nil {
		documents = []dtos.RemoteDocument{}
	}
	return documents, nil
}

// storageObjectOf returns the cleaned storage path if it lives below the upload prefix of userID.
func storageObjectOf(userID, objectPath string) (string, bool) {
	cleaned := path.Clean("/" + objectPath)[1:]
	prefix := fmt.Sprintf("users/%s/", userID)
	if cleaned != strings.TrimPrefix(objectPath, "/") || !strings.HasPrefix(cleaned, prefix) || len(cleaned) == len(prefix) {
		return "", false
	}
	return cleaned, true
}

// ExtractText asks the analysis backend first and parses the pdf in process
// when the backend is not able to. Storage paths outside the uploads of userID are rejected.
func (s *documentService) ExtractText(ctx context.Context, userID, pdfURL string) (dtos.ExtractTextResponse, error) {
	if userID == "" {
		return dtos.ExtractTextResponse{}, ErrNotAuthenticated
	}
	if !isExternalURL(pdfURL) {
		objectPath, ok := storageObjectOf(userID, pdfURL)
		if !ok {
			return dtos.ExtractTextResponse{}, errors.Wrap(ErrDocumentNotAccessible, pdfURL)
		}
		pdfURL = objectPath
	}

	text, err := s.analysisClient.ExtractText(ctx, pdfURL)
	if err == nil {
		return dtos.ExtractTextResponse{Text: text, Source: TextSourceRemote}, nil
	}
	slog.Warn("analysis backend could not extract text, falling back to local extraction", "url", pdfURL, "err", err)

	data, err := s.download(ctx, pdfURL)
	if err != nil {
		return dtos.ExtractTextResponse{}, errors.Wrap(err, "could not download pdf")
	}

	text, err = ExtractPDFText(data)
	if err != nil {
		return dtos.ExtractTextResponse{}, errors.Wrap(err, "could not extract text")
	}
	return dtos.ExtractTextResponse{Text: text, Source: TextSourceLocal}, nil
}

func (s *documentService) download(ctx context.Context, pdfURL string) ([]byte, error) {
	if !isExternalURL(pdfURL) {
		return s.storage.Download(ctx, pdfURL)
	}

	resp, err := common.FetchWithRetry(ctx, s.httpClient, pdfURL, common.FetchOptions{
		Headers: http.Header{"Accept": []string{"application/pdf"}},
	}, 0)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(io.LimitReader(resp.Body, maxPDFDownloadSize))
}
