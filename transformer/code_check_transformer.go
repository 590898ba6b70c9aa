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
	"gorm.io/datatypes"
)

func cleanZoningCodes(codes []string) datatypes.JSONSlice[string] {
	cleaned := utils.Filter(utils.Map(codes, strings.TrimSpace), func(s string) bool {
		return s != ""
	})
	return datatypes.JSONSlice[string](cleaned)
}

func CodeCheckCreateRequestToModel(req dtos.CodeCheckCreateRequest, userID string) models.CodeCheck {
	return models.CodeCheck{
		Address:      strings.TrimSpace(req.Address),
		Latitude:     utils.OrDefault(req.Latitude, 0),
		Longitude:    utils.OrDefault(req.Longitude, 0),
		ZoningCodes:  cleanZoningCodes(req.ZoningCodes),
		DocumentType: req.DocumentType,
		Status:       models.CodeCheckStatusPending,
		UserID:       userID,
	}
}

func ApplyCodeCheckPatchRequestToModel(patch dtos.CodeCheckPatchRequest, codeCheck *models.CodeCheck) bool {
	updated := false
	if patch.Address != nil {
		codeCheck.Address = strings.TrimSpace(*patch.Address)
		updated = true
	}
	if patch.Latitude != nil {
		codeCheck.Latitude = *patch.Latitude
		updated = true
	}
	if patch.Longitude != nil {
		codeCheck.Longitude = *patch.Longitude
		updated = true
	}
	if patch.ZoningCodes != nil {
		codeCheck.ZoningCodes = cleanZoningCodes(*patch.ZoningCodes)
		updated = true
	}
	if patch.DocumentType != nil {
		codeCheck.DocumentType = *patch.DocumentType
		updated = true
	}
	if patch.Status != nil {
		codeCheck.Status = models.CodeCheckStatus(*patch.Status)
		updated = true
	}
	return updated
}

func CodeCheckModelToDTO(codeCheck models.CodeCheck) dtos.CodeCheckDTO {
	var analysis *dtos.Analysis
	if a, err := dtos.ParseAnalysis(codeCheck.Details); err == nil {
		analysis = &a
	}

	zoningCodes := []string(codeCheck.ZoningCodes)
	if zoningCodes == nil {
		zoningCodes = []string{}
	}

	return dtos.CodeCheckDTO{
		ID:           codeCheck.ID,
		Address:      codeCheck.Address,
		Latitude:     codeCheck.Latitude,
		Longitude:    codeCheck.Longitude,
		ZoningCodes:  zoningCodes,
		DocumentType: codeCheck.DocumentType,
		Status:       string(codeCheck.Status),
		UserID:       codeCheck.UserID,
		Analysis:     analysis,
		Documents:    utils.Map(codeCheck.Documents, DocumentModelToDTO),
		CreatedAt:    codeCheck.CreatedAt,
		UpdatedAt:    codeCheck.UpdatedAt,
	}
}
