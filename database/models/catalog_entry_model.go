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

import "gorm.io/datatypes"

// CatalogEntry describes the permitting contacts, fees and process of a
// municipality. It is reference data and not owned by any user.
type CatalogEntry struct {
	Model
	Municipality       string         `json:"municipality" gorm:"type:text;not null;index"`
	County             string         `json:"county" gorm:"type:text;"`
	State              string         `json:"state" gorm:"type:text;"`
	Department         string         `json:"department" gorm:"type:text;"`
	ContactName        string         `json:"contactName" gorm:"type:text;"`
	ContactEmail       string         `json:"contactEmail" gorm:"type:text;"`
	ContactPhone       string         `json:"contactPhone" gorm:"type:text;"`
	Website            string         `json:"website" gorm:"type:text;"`
	PermitFees         datatypes.JSON `json:"permitFees"`
	ProcessNotes       string         `json:"processNotes" gorm:"type:text;"`
	ProcessingTimeDays *int           `json:"processingTimeDays"`
	RequiresSitePlan   bool           `json:"requiresSitePlan" gorm:"default:false;not null;"`
}

func (m CatalogEntry) TableName() string {
	return "catalog_entries"
}
