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
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
)

func DocumentModelToDTO(document models.Document) dtos.DocumentDTO {
	return dtos.DocumentDTO{
		ID:          document.ID,
		Title:       document.Title,
		Path:        document.URL,
		ContentType: document.ContentType,
		Size:        document.Size,
		CreatedAt:   document.CreatedAt,
	}
}
