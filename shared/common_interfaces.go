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

package shared

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/utils"
	client "github.com/ory/client-go"
	"gorm.io/datatypes"
)

type CodeCheckRepository interface {
	utils.Repository[uuid.UUID, models.CodeCheck, DB]
	// ReadActive returns gorm.ErrRecordNotFound for deleted rows
	ReadActive(id uuid.UUID) (models.CodeCheck, error)
	ListActive() ([]models.CodeCheck, error)
	ListActiveByUser(userID string) ([]models.CodeCheck, error)
	UpdateStatus(tx DB, id uuid.UUID, status models.CodeCheckStatus) error
	UpdateDetails(tx DB, id uuid.UUID, details datatypes.JSON, status models.CodeCheckStatus) error
	LinkDocuments(tx DB, codeCheckID uuid.UUID, documentIDs []uuid.UUID) error
}

type ProjectRepository interface {
	utils.Repository[uuid.UUID, models.Project, DB]
	ListForUser(userID string) ([]models.Project, error)
}

type ProjectCodeCheckRepository interface {
	Exists(projectID, codeCheckID uuid.UUID) (bool, error)
	Create(tx DB, m *models.ProjectCodeCheck) error
	Delete(tx DB, projectID, codeCheckID uuid.UUID) error
	// ListCodeChecks returns the non deleted code checks assigned to the project
	ListCodeChecks(projectID uuid.UUID) ([]models.CodeCheck, error)
	ProjectIDsByCodeCheck(codeCheckIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
}

type ProjectUserRepository interface {
	utils.Repository[uuid.UUID, models.ProjectUser, DB]
	All() ([]models.ProjectUser, error)
	ListByProject(projectID uuid.UUID) ([]models.ProjectUser, error)
	ReadByProjectAndUser(projectID uuid.UUID, userID string) (models.ProjectUser, error)
}

type DocumentRepository interface {
	utils.Repository[uuid.UUID, models.Document, DB]
	ListByCodeCheck(codeCheckID uuid.UUID) ([]models.Document, error)
}

type CatalogRepository interface {
	utils.Repository[uuid.UUID, models.CatalogEntry, DB]
	Search(search string) ([]models.CatalogEntry, error)
}

type CodeCheckService interface {
	Create(userID string, req dtos.CodeCheckCreateRequest) (models.CodeCheck, error)
	List(userID string, query dtos.CodeCheckListQuery) ([]models.CodeCheck, error)
	Read(id uuid.UUID) (models.CodeCheck, error)
	Update(id uuid.UUID, req dtos.CodeCheckPatchRequest) (models.CodeCheck, error)
	SoftDelete(id uuid.UUID, confirmation string) error
	LinkDocuments(codeCheckID uuid.UUID, documentIDs []uuid.UUID) error
}

type AnalysisService interface {
	Analyze(ctx context.Context, codeCheckID uuid.UUID, customQuestions []string) (dtos.Analysis, error)
}

type ExportService interface {
	// Export writes the report and returns the number of code checks that made it into the file
	Export(ctx context.Context, ids []uuid.UUID, format dtos.ExportFormat, w io.Writer) (int, error)
}

type ProjectService interface {
	Create(ownerID string, req dtos.ProjectCreateRequest) (models.Project, error)
	Read(id uuid.UUID) (models.Project, error)
	ListForUser(userID string) ([]models.Project, error)
	Update(project models.Project, req dtos.ProjectPatchRequest) (models.Project, error)
	Delete(id uuid.UUID) error
	AddCodeChecks(projectID uuid.UUID, codeCheckIDs []uuid.UUID) (dtos.ProjectAddCodeChecksResponse, error)
	RemoveCodeCheck(projectID, codeCheckID uuid.UUID) error
	ListCodeChecks(projectID uuid.UUID) ([]models.CodeCheck, error)
	ListCandidates(projectID uuid.UUID, userID string) ([]dtos.ProjectCandidateDTO, error)
}

type ProjectUserService interface {
	List(projectID uuid.UUID) ([]models.ProjectUser, error)
	Add(projectID uuid.UUID, req dtos.ProjectUserCreateRequest) (models.ProjectUser, error)
	ChangeRole(projectID uuid.UUID, userID string, req dtos.ProjectChangeRoleRequest) (models.ProjectUser, error)
	Remove(projectID uuid.UUID, userID string) error
}

type DocumentService interface {
	Upload(ctx context.Context, upload dtos.DocumentUpload, r io.Reader) (models.Document, error)
	ListForCodeCheck(ctx context.Context, codeCheckID uuid.UUID) ([]dtos.DocumentDTO, error)
	CheckExists(ctx context.Context, address string) (dtos.DocumentExistsResponse, error)
	ListUnderPath(ctx context.Context, path string) ([]dtos.RemoteDocument, error)
	ExtractText(ctx context.Context, userID, pdfURL string) (dtos.ExtractTextResponse, error)
}

type CatalogService interface {
	List(search string) ([]models.CatalogEntry, error)
	Read(id uuid.UUID) (models.CatalogEntry, error)
}

type BatchImportService interface {
	Import(ctx context.Context, userID, fileName string, r io.Reader) (dtos.BatchImportSummary, error)
}

type Geocoder interface {
	// Suggest never fails, lookup errors surface as NotFound
	Suggest(ctx context.Context, fragment string) dtos.AddressSuggestions
	Geocode(ctx context.Context, address string) (dtos.Coordinates, bool)
}

type MapsLoader interface {
	EnsureLoaded(ctx context.Context) (dtos.MapConfig, error)
}

type AnalysisClient interface {
	CheckDocuments(ctx context.Context, address string) (dtos.DocumentExistsResponse, error)
	ListDocuments(ctx context.Context, path string) ([]dtos.RemoteDocument, error)
	ExtractText(ctx context.Context, pdfURL string) (string, error)
	AnswerQuestions(ctx context.Context, req dtos.AnswerQuestionsRequest) ([]dtos.Answer, error)
}

type ObjectStorage interface {
	List(ctx context.Context, prefix string) ([]dtos.StoredObject, error)
	Upload(ctx context.Context, path, contentType string, r io.Reader) error
	Download(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}

type AdminClient interface {
	GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error)
	GetIdentityFromToken(ctx context.Context, token string) (client.Identity, error)
}

type AccessControl interface {
	GrantRole(projectID uuid.UUID, userID string, role models.ProjectRole) error
	RevokeRoles(projectID uuid.UUID, userID string) error
	IsAllowed(project models.Project, userID string, action Action) (bool, error)
	LoadPolicies(users []models.ProjectUser) error
}
