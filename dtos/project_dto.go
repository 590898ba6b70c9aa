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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type ProjectCreateRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	ClientName  string     `json:"clientName"`
}

type ProjectPatchRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	ClientName  *string    `json:"clientName"`
}

type ProjectDTO struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	ClientName  string           `json:"clientName"`
	OwnerID     string           `json:"ownerId"`
	Users       []ProjectUserDTO `json:"users,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type ProjectAddCodeChecksRequest struct {
	CodeCheckIDs []uuid.UUID `json:"codeCheckIds" validate:"required,min=1"`
}

type ProjectAddCodeChecksResponse struct {
	Added        []uuid.UUID `json:"added"`
	AlreadyAdded []uuid.UUID `json:"alreadyAdded"`
	Message      string      `json:"message,omitempty"`
}

type ProjectCandidateDTO struct {
	CodeCheckDTO
	InCurrentProject bool        `json:"inCurrentProject"`
	OtherProjectIDs  []uuid.UUID `json:"otherProjectIds"`
}

type ProjectUserCreateRequest struct {
	UserID string `json:"userId" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Role   string `json:"role" validate:"required,oneof=collaborator viewer"`
}

type ProjectChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=collaborator viewer"`
	// set by the confirmation dialog
	Confirm bool `json:"confirm"`
}

type ProjectUserDTO struct {
	ID     uuid.UUID `json:"id"`
	UserID string    `json:"userId"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}
