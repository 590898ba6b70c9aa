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

type CodeCheckCreateRequest struct {
	Address      string      `json:"address" validate:"required"`
	Latitude     *float64    `json:"latitude" validate:"required,latitude"`
	Longitude    *float64    `json:"longitude" validate:"required,longitude"`
	ZoningCodes  []string    `json:"zoningCodes"`
	DocumentType string      `json:"documentType"`
	DocumentIDs  []uuid.UUID `json:"documentIds"`
}

type CodeCheckPatchRequest struct {
	Address      *string   `json:"address"`
	Latitude     *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64  `json:"longitude" validate:"omitempty,longitude"`
	ZoningCodes  *[]string `json:"zoningCodes"`
	DocumentType *string   `json:"documentType"`
	Status       *string   `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}

type CodeCheckDeleteRequest struct {
	Confirmation string `json:"confirmation"`
}

type CodeCheckListQuery struct {
	// dashboard lists the code checks of all users
	Scope  string `query:"scope"`
	Status string `query:"status"`
	Search string `query:"search"`
}

type CodeCheckLinkDocumentsRequest struct {
	DocumentIDs []uuid.UUID `json:"documentIds" validate:"required,min=1"`
}

type CodeCheckDTO struct {
	ID           uuid.UUID     `json:"id"`
	Address      string        `json:"address"`
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	ZoningCodes  []string      `json:"zoningCodes"`
	DocumentType string        `json:"documentType"`
	Status       string        `json:"status"`
	UserID       string        `json:"userId"`
	Analysis     *Analysis     `json:"analysis,omitempty"`
	Documents    []DocumentDTO `json:"documents,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type ExportRequest struct {
	IDs    []uuid.UUID  `json:"ids" validate:"required,min=1"`
	Format ExportFormat `json:"format" validate:"required,oneof=csv pdf"`
}
