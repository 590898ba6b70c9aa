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
	"log/slog"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/shared"
	"github.com/pkg/errors"
)

var (
	ErrRoleChangeNotConfirmed = errors.New("role change has to be confirmed")
	ErrAlreadyMember          = errors.New("user is already a member of the project")
)

type projectUserService struct {
	projectUserRepository shared.ProjectUserRepository
	accessControl         shared.AccessControl
}

var _ shared.ProjectUserService = (*projectUserService)(nil)

func NewProjectUserService(projectUserRepository shared.ProjectUserRepository, accessControl shared.AccessControl) *projectUserService {
	return &projectUserService{
		projectUserRepository: projectUserRepository,
		accessControl:         accessControl,
	}
}

func (s *projectUserService) List(projectID uuid.UUID) ([]models.ProjectUser, error) {
	return s.projectUserRepository.ListByProject(projectID)
}

func (s *projectUserService) Add(projectID uuid.UUID, req dtos.ProjectUserCreateRequest) (models.ProjectUser, error) {
	if err := shared.V.Struct(req); err != nil {
		return models.ProjectUser{}, err
	}

	user := models.ProjectUser{
		ProjectID: projectID,
		UserID:    req.UserID,
		Email:     req.Email,
		Role:      models.ProjectRole(req.Role),
	}
	if err := s.projectUserRepository.Create(nil, &user); err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.ProjectUser{}, ErrAlreadyMember
		}
		return models.ProjectUser{}, errors.Wrap(err, "could not add user to project")
	}

	if err := s.accessControl.GrantRole(projectID, user.UserID, user.Role); err != nil {
		return models.ProjectUser{}, errors.Wrap(err, "could not grant role")
	}
	return user, nil
}

// ChangeRole only applies the new role when the request carries the
// confirmation of the dialog.
func (s *projectUserService) ChangeRole(projectID uuid.UUID, userID string, req dtos.ProjectChangeRoleRequest) (models.ProjectUser, error) {
	if err := shared.V.Struct(req); err != nil {
		return models.ProjectUser{}, err
	}
	if !req.Confirm {
		return models.ProjectUser{}, ErrRoleChangeNotConfirmed
	}

	user, err := s.projectUserRepository.ReadByProjectAndUser(projectID, userID)
	if err != nil {
		return models.ProjectUser{}, err
	}

	newRole := models.ProjectRole(req.Role)
	if user.Role == newRole {
		return user, nil
	}
	user.Role = newRole
	if err := s.projectUserRepository.Save(nil, &user); err != nil {
		return models.ProjectUser{}, errors.Wrap(err, "could not save role")
	}

	if err := s.accessControl.GrantRole(projectID, userID, newRole); err != nil {
		return models.ProjectUser{}, errors.Wrap(err, "could not grant role")
	}
	slog.Info("changed project role", "projectID", projectID, "userID", userID, "role", newRole)
	return user, nil
}

func (s *projectUserService) Remove(projectID uuid.UUID, userID string) error {
	user, err := s.projectUserRepository.ReadByProjectAndUser(projectID, userID)
	if err != nil {
		return err
	}
	if err := s.projectUserRepository.Delete(nil, user.ID); err != nil {
		return errors.Wrap(err, "could not remove user from project")
	}
	return s.accessControl.RevokeRoles(projectID, userID)
}
