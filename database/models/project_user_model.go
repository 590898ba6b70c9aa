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

package models

import (
	"github.com/google/uuid"
)

type ProjectRole string

const (
	ProjectRoleCollaborator ProjectRole = "collaborator"
	ProjectRoleViewer       ProjectRole = "viewer"
)

func (r ProjectRole) Valid() bool {
	return r == ProjectRoleCollaborator || r == ProjectRoleViewer
}

type ProjectUser struct {
	Model
	ProjectID uuid.UUID   `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_project_user;"`
	UserID    string      `json:"userId" gorm:"type:text;not null;uniqueIndex:idx_project_user;"`
	Email     string      `json:"email" gorm:"type:text;"`
	Role      ProjectRole `json:"role" gorm:"type:text;not null;default:'viewer';"`
}

func (m ProjectUser) TableName() string {
	return "project_users"
}
