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

package transformer

import (
	"strings"

	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/utils"
)

func ProjectCreateRequestToModel(projectCreate dtos.ProjectCreateRequest, ownerID string) models.Project {
	return models.Project{
		Title:       strings.TrimSpace(projectCreate.Title),
		Description: projectCreate.Description,
		StartDate:   projectCreate.StartDate,
		EndDate:     projectCreate.EndDate,
		ClientName:  projectCreate.ClientName,
		OwnerID:     ownerID,
	}
}

func ApplyProjectPatchRequestToModel(projectPatch dtos.ProjectPatchRequest, project *models.Project) bool {
	updated := false
	if projectPatch.Title != nil {
		project.Title = strings.TrimSpace(*projectPatch.Title)
		updated = true
	}
	if projectPatch.Description != nil {
		project.Description = *projectPatch.Description
		updated = true
	}
	if projectPatch.StartDate != nil {
		project.StartDate = projectPatch.StartDate
		updated = true
	}
	if projectPatch.EndDate != nil {
		project.EndDate = projectPatch.EndDate
		updated = true
	}
	if projectPatch.ClientName != nil {
		project.ClientName = *projectPatch.ClientName
		updated = true
	}
	return updated
}

func ProjectUserModelToDTO(user models.ProjectUser) dtos.ProjectUserDTO {
	return dtos.ProjectUserDTO{
		ID:     user.ID,
		UserID: user.UserID,
		Email:  user.Email,
		Role:   string(user.Role),
	}
}

func ProjectModelToDTO(project models.Project) dtos.ProjectDTO {
	return dtos.ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		ClientName:  project.ClientName,
		OwnerID:     project.OwnerID,
		Users:       utils.Map(project.Users, ProjectUserModelToDTO),
		CreatedAt:   project.CreatedAt,
	}
}
