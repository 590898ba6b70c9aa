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
	"gorm.io/datatypes"
)

type CodeCheckStatus string

const (
	CodeCheckStatusPending    CodeCheckStatus = "pending"
	CodeCheckStatusInProgress CodeCheckStatus = "in_progress"
	CodeCheckStatusCompleted  CodeCheckStatus = "completed"
	CodeCheckStatusDeleted    CodeCheckStatus = "deleted"
)

// CodeCheck is an address bound compliance inquiry.
// Rows are never removed, deletion sets the status to "deleted".
type CodeCheck struct {
	Model
	Address      string                      `json:"address" gorm:"type:text;not null;"`
	Latitude     float64                     `json:"latitude" gorm:"not null;"`
	Longitude    float64                     `json:"longitude" gorm:"not null;"`
	ZoningCodes  datatypes.JSONSlice[string] `json:"zoningCodes"`
	DocumentType string                      `json:"documentType" gorm:"type:text;"`
	Details      datatypes.JSON              `json:"details"`
	Status       CodeCheckStatus             `json:"status" gorm:"type:text;not null;default:'pending';index"`
	UserID       string                      `json:"userId" gorm:"type:text;not null;index"`

	Documents []Document `json:"documents,omitempty" gorm:"many2many:code_check_documents;"`
}

func (m CodeCheck) TableName() string {
	return "code_checks"
}

func (m CodeCheck) IsDeleted() bool {
	return m.Status == CodeCheckStatusDeleted
}
