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

// Document is an uploaded or fetched pdf. URL is either an object path inside
// the storage bucket or an absolute url.
type Document struct {
	Model
	Title       string `json:"title" gorm:"type:text;not null;"`
	URL         string `json:"url" gorm:"type:text;not null;"`
	UserID      string `json:"userId" gorm:"type:text;index"`
	ContentType string `json:"contentType" gorm:"type:text;"`
	Size        int64  `json:"size"`
}

func (m Document) TableName() string {
	return "documents"
}

type CodeCheckDocument struct {
	CodeCheckID uuid.UUID `json:"codeCheckId" gorm:"primaryKey;type:uuid;"`
	DocumentID  uuid.UUID `json:"documentId" gorm:"primaryKey;type:uuid;"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (m CodeCheckDocument) TableName() string {
	return "code_check_documents"
}
