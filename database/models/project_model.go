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
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Model
	Title       string     `json:"title" gorm:"type:text;not null;"`
	Description string     `json:"description" gorm:"type:text;"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	ClientName  string     `json:"clientName" gorm:"type:text;"`
	OwnerID     string     `json:"ownerId" gorm:"type:text;not null;index"`

	Users []ProjectUser `json:"users,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m Project) TableName() string {
	return "projects"
}

// ProjectCodeCheck is the membership of a code check in a project.
// A code check may belong to any number of projects.
type ProjectCodeCheck struct {
	ProjectID   uuid.UUID `json:"projectId" gorm:"primaryKey;type:uuid;"`
	CodeCheckID uuid.UUID `json:"codeCheckId" gorm:"primaryKey;type:uuid;"`
	CreatedAt   time.Time `json:"createdAt"`

	Project   Project   `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
	CodeCheck CodeCheck `json:"codeCheck" gorm:"foreignKey:CodeCheckID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m ProjectCodeCheck) TableName() string {
	return "project_code_checks"
}
