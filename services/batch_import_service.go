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
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/monitoring"
	"github.com/govgoose/govgoose/services/spreadsheet"
	"github.com/govgoose/govgoose/shared"
	"github.com/govgoose/govgoose/utils"
	"github.com/pkg/errors"
)

const (
	ReasonAddressNotFound = "address not found"
	ReasonCancelled       = "import cancelled"
)

type batchImportService struct {
	codeCheckService shared.CodeCheckService
	geocoder         shared.Geocoder
	concurrency      int
}

var _ shared.BatchImportService = (*batchImportService)(nil)

func NewBatchImportService(codeCheckService shared.CodeCheckService, geocoder shared.Geocoder, cfg config.Config) *batchImportService {
	concurrency := cfg.BatchImportConcurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	return &batchImportService{
		codeCheckService: codeCheckService,
		geocoder:         geocoder,
		concurrency:      concurrency,
	}
}

func (s *batchImportService) Import(ctx context.Context, userID, fileName string, r io.Reader) (dtos.BatchImportSummary, error) {
	return s.ImportWithProgress(ctx, userID, fileName, r, nil)
}

// ImportWithProgress geocodes every address of the file and creates a pending
// code check for it. A failing row never stops the others. onResult is called
// from the worker goroutines once per finished row.
func (s *batchImportService) ImportWithProgress(ctx context.Context, userID, fileName string, r io.Reader, onResult func(dtos.BatchImportResult)) (dtos.BatchImportSummary, error) {
	if userID == "" {
		return dtos.BatchImportSummary{}, ErrNotAuthenticated
	}

	rows, err := spreadsheet.ExtractAddresses(fileName, r)
	if err != nil {
		return dtos.BatchImportSummary{}, err
	}

	start := time.Now()
	defer func() {
		monitoring.BatchImportDuration.Observe(time.Since(start).Seconds())
	}()

	group := utils.ErrGroup[dtos.BatchImportResult](s.concurrency)
	for _, row := range rows {
		group.Go(func() (dtos.BatchImportResult, error) {
			res := s.importRow(ctx, userID, row)
			if onResult != nil {
				onResult(res)
			}
			return res, nil
		})
	}
	results, err := group.WaitAndCollect()
	if err != nil {
		return dtos.BatchImportSummary{}, err
	}

	summary := dtos.BatchImportSummary{
		Total:   len(results),
		Results: results,
	}
	for _, res := range results {
		if res.Success {
			summary.Succeeded++
			monitoring.BatchImportItems.WithLabelValues("success").Inc()
		} else {
			summary.Failed++
			monitoring.BatchImportItems.WithLabelValues("failed").Inc()
		}
	}
	slog.Info("batch import finished", "userID", userID, "file", fileName, "total", summary.Total, "failed", summary.Failed, "duration", time.Since(start))
	return summary, nil
}

func (s *batchImportService) importRow(ctx context.Context, userID string, row dtos.AddressRow) dtos.BatchImportResult {
	res := dtos.BatchImportResult{
		Row:     row.Row,
		Address: row.Address,
	}
	if ctx.Err() != nil {
		res.Reason = ReasonCancelled
		return res
	}

	coordinates, ok := s.geocoder.Geocode(ctx, row.Address)
	if !ok {
		res.Reason = ReasonAddressNotFound
		return res
	}

	codeCheck, err := s.codeCheckService.Create(userID, dtos.CodeCheckCreateRequest{
		Address:   row.Address,
		Latitude:  utils.Ptr(coordinates.Latitude),
		Longitude: utils.Ptr(coordinates.Longitude),
	})
	if err != nil {
		res.Reason = errors.Cause(err).Error()
		return res
	}

	res.Success = true
	res.CodeCheckID = utils.Ptr(codeCheck.ID)
	return res
}
