package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/shared"
	"github.com/govgoose/govgoose/transformer"
	"github.com/govgoose/govgoose/utils"
	"github.com/pkg/errors"
)

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrUnknownCodeCheck = errors.New("code check does not exist")
)

const alreadyAddedMessage = "already added"

type projectService struct {
	projectRepository          shared.ProjectRepository
	projectCodeCheckRepository shared.ProjectCodeCheckRepository
	codeCheckRepository        shared.CodeCheckRepository
}

var _ shared.ProjectService = (*projectService)(nil)

func NewProjectService(projectRepository shared.ProjectRepository, projectCodeCheckRepository shared.ProjectCodeCheckRepository, codeCheckRepository shared.CodeCheckRepository) *projectService {
	return &projectService{
		projectRepository:          projectRepository,
		projectCodeCheckRepository: projectCodeCheckRepository,
		codeCheckRepository:        codeCheckRepository,
	}
}

func validateDateRange(project models.Project) error {
	if project.StartDate != nil && project.EndDate != nil && project.StartDate.After(*project.EndDate) {
		return ErrInvalidDateRange
	}
	return nil
}

func (s *projectService) Create(ownerID string, req dtos.ProjectCreateRequest) (models.Project, error) {
	if ownerID == "" {
		return models.Project{}, ErrNotAuthenticated
	}
	if err := shared.V.Struct(req); err != nil {
		return models.Project{}, err
	}

	project := transformer.ProjectCreateRequestToModel(req, ownerID)
	if err := validateDateRange(project); err != nil {
		return models.Project{}, err
	}

	if err := s.projectRepository.Create(nil, &project); err != nil {
		return models.Project{}, errors.Wrap(err, "could not create project")
	}
	return project, nil
}

func (s *projectService) Read(id uuid.UUID) (models.Project, error) {
	return s.projectRepository.Read(id)
}

func (s *projectService) ListForUser(userID string) ([]models.Project, error) {
	return s.projectRepository.ListForUser(userID)
}

func (s *projectService) Update(project models.Project, req dtos.ProjectPatchRequest) (models.Project, error) {
	if err := shared.V.Struct(req); err != nil {
		return models.Project{}, err
	}
	if !transformer.ApplyProjectPatchRequestToModel(req, &project) {
		return project, nil
	}
	if err := validateDateRange(project); err != nil {
		return models.Project{}, err
	}

	if err := s.projectRepository.Save(nil, &project); err != nil {
		return models.Project{}, errors.Wrap(err, "could not save project")
	}
	return project, nil
}

func (s *projectService) Delete(id uuid.UUID) error {
	return s.projectRepository.Delete(nil, id)
}

// AddCodeChecks assigns the code checks to the project. Code checks which are
// already assigned are reported back instead of failing the whole request.
func (s *projectService) AddCodeChecks(projectID uuid.UUID, codeCheckIDs []uuid.UUID) (dtos.ProjectAddCodeChecksResponse, error) {
	codeCheckIDs = utils.UniqBy(codeCheckIDs, func(id uuid.UUID) uuid.UUID { return id })

	codeChecks, err := s.codeCheckRepository.List(codeCheckIDs)
	if err != nil {
		return dtos.ProjectAddCodeChecksResponse{}, err
	}
	for _, id := range codeCheckIDs {
		if !utils.Any(codeChecks, func(c models.CodeCheck) bool { return c.ID == id && !c.IsDeleted() }) {
			return dtos.ProjectAddCodeChecksResponse{}, errors.Wrap(ErrUnknownCodeCheck, id.String())
		}
	}

	res := dtos.ProjectAddCodeChecksResponse{
		Added:        []uuid.UUID{},
		AlreadyAdded: []uuid.UUID{},
	}
	err = s.projectRepository.Transaction(func(tx shared.DB) error {
		for _, id := range codeCheckIDs {
			exists, err := s.projectCodeCheckRepository.Exists(projectID, id)
			if err != nil {
				return err
			}
			if exists {
				res.AlreadyAdded = append(res.AlreadyAdded, id)
				continue
			}
			if err := s.projectCodeCheckRepository.Create(tx, &models.ProjectCodeCheck{ProjectID: projectID, CodeCheckID: id}); err != nil {
				return errors.Wrap(err, fmt.Sprintf("could not add code check %s", id))
			}
			res.Added = append(res.Added, id)
		}
		return nil
	})
	if err != nil {
		return dtos.ProjectAddCodeChecksResponse{}, err
	}

	if len(res.Added) == 0 {
		res.Message = alreadyAddedMessage
	}
	return res, nil
}

func (s *projectService) RemoveCodeCheck(projectID, codeCheckID uuid.UUID) error {
	return s.projectCodeCheckRepository.Delete(nil, projectID, codeCheckID)
}

func (s *projectService) ListCodeChecks(projectID uuid.UUID) ([]models.CodeCheck, error) {
	return s.projectCodeCheckRepository.ListCodeChecks(projectID)
}

// ListCandidates returns the code checks of the user which can be assigned to
// the project. Code checks assigned elsewhere are flagged, never filtered.
func (s *projectService) ListCandidates(projectID uuid.UUID, userID string) ([]dtos.ProjectCandidateDTO, error) {
	codeChecks, err := s.codeCheckRepository.ListActiveByUser(userID)
	if err != nil {
		return nil, err
	}

	ids := utils.Map(codeChecks, func(c models.CodeCheck) uuid.UUID { return c.ID })
	assignments, err := s.projectCodeCheckRepository.ProjectIDsByCodeCheck(ids)
	if err != nil {
		return nil, err
	}

	return utils.Map(codeChecks, func(c models.CodeCheck) dtos.ProjectCandidateDTO {
		candidate := dtos.ProjectCandidateDTO{
			CodeCheckDTO:    transformer.CodeCheckModelToDTO(c),
			OtherProjectIDs: []uuid.UUID{},
		}
		for _, pID := range assignments[c.ID] {
			if pID == projectID {
				candidate.InCurrentProject = true
				continue
			}
			candidate.OtherProjectIDs = append(candidate.OtherProjectIDs, pID)
		}
		return candidate
	}), nil
}
