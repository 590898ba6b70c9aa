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

package services

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/monitoring"
	"github.com/govgoose/govgoose/shared"
	"github.com/govgoose/govgoose/transformer"
	"github.com/govgoose/govgoose/utils"
	"github.com/pkg/errors"
)

var (
	ErrDeleteNotConfirmed = errors.New("deletion not confirmed, type \"delete\" to confirm")
	ErrNotAuthenticated   = errors.New("an authenticated user is required")
)

const (
	ListScopeDashboard = "dashboard"
	StatusFilterAll    = "all"
	deleteConfirmation = "delete"
)

type codeCheckService struct {
	codeCheckRepository shared.CodeCheckRepository
}

var _ shared.CodeCheckService = (*codeCheckService)(nil)

func NewCodeCheckService(codeCheckRepository shared.CodeCheckRepository) *codeCheckService {
	return &codeCheckService{
		codeCheckRepository: codeCheckRepository,
	}
}

func (s *codeCheckService) Create(userID string, req dtos.CodeCheckCreateRequest) (models.CodeCheck, error) {
	if userID == "" {
		return models.CodeCheck{}, ErrNotAuthenticated
	}
	if err := shared.V.Struct(req); err != nil {
		return models.CodeCheck{}, err
	}

	codeCheck := transformer.CodeCheckCreateRequestToModel(req, userID)
	err := s.codeCheckRepository.Transaction(func(tx shared.DB) error {
		if err := s.codeCheckRepository.Create(tx, &codeCheck); err != nil {
			return errors.Wrap(err, "could not create code check")
		}
		if len(req.DocumentIDs) == 0 {
			return nil
		}
		return errors.Wrap(s.codeCheckRepository.LinkDocuments(tx, codeCheck.ID, req.DocumentIDs), "could not link documents")
	})
	if err != nil {
		return models.CodeCheck{}, err
	}

	monitoring.CodeCheckCreatedAmount.Inc()
	return codeCheck, nil
}

// List returns the non deleted code checks visible in the requested scope,
// narrowed down by the status tab and the search term. Newest first.
func (s *codeCheckService) List(userID string, query dtos.CodeCheckListQuery) ([]models.CodeCheck, error) {
	var codeChecks []models.CodeCheck
	var err error
	if query.Scope == ListScopeDashboard {
		codeChecks, err = s.codeCheckRepository.ListActive()
	} else {
		if userID == "" {
			return nil, ErrNotAuthenticated
		}
		codeChecks, err = s.codeCheckRepository.ListActiveByUser(userID)
	}
	if err != nil {
		return nil, err
	}

	return FilterCodeChecks(codeChecks, query.Status, query.Search), nil
}

// FilterCodeChecks applies the status tab and the case insensitive search on
// address and zoning codes, then sorts by creation date descending.
func FilterCodeChecks(codeChecks []models.CodeCheck, status, search string) []models.CodeCheck {
	status = strings.TrimSpace(status)
	search = strings.TrimSpace(search)

	filtered := utils.Filter(codeChecks, func(c models.CodeCheck) bool {
		if c.IsDeleted() {
			return false
		}
		if status != "" && !strings.EqualFold(status, StatusFilterAll) && string(c.Status) != status {
			return false
		}
		if search == "" {
			return true
		}
		if utils.ContainsFold(c.Address, search) {
			return true
		}
		return utils.Any([]string(c.ZoningCodes), func(code string) bool {
			return utils.ContainsFold(code, search)
		})
	})

	slices.SortStableFunc(filtered, func(a, b models.CodeCheck) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return filtered
}

func (s *codeCheckService) Read(id uuid.UUID) (models.CodeCheck, error) {
	return s.codeCheckRepository.ReadActive(id)
}

func (s *codeCheckService) Update(id uuid.UUID, req dtos.CodeCheckPatchRequest) (models.CodeCheck, error) {
	if err := shared.V.Struct(req); err != nil {
		return models.CodeCheck{}, err
	}

	codeCheck, err := s.codeCheckRepository.ReadActive(id)
	if err != nil {
		return models.CodeCheck{}, err
	}

	if !transformer.ApplyCodeCheckPatchRequestToModel(req, &codeCheck) {
		return codeCheck, nil
	}

	if err := s.codeCheckRepository.Save(nil, &codeCheck); err != nil {
		return models.CodeCheck{}, errors.Wrap(err, "could not save code check")
	}
	return codeCheck, nil
}

// SoftDelete only marks the code check as deleted. The typed confirmation has
// to match before any row is touched.
func (s *codeCheckService) SoftDelete(id uuid.UUID, confirmation string) error {
	if !strings.EqualFold(confirmation, deleteConfirmation) {
		return ErrDeleteNotConfirmed
	}

	if err := s.codeCheckRepository.UpdateStatus(nil, id, models.CodeCheckStatusDeleted); err != nil {
		return err
	}
	monitoring.CodeCheckDeletedAmount.Inc()
	return nil
}

func (s *codeCheckService) LinkDocuments(codeCheckID uuid.UUID, documentIDs []uuid.UUID) error {
	if _, err := s.codeCheckRepository.ReadActive(codeCheckID); err != nil {
		return err
	}
	return s.codeCheckRepository.LinkDocuments(nil, codeCheckID, documentIDs)
}
