// Package export renders selected code checks with their stored analysis as
// csv or pdf report.
package export

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/monitoring"
	"github.com/govgoose/govgoose/shared"
	"github.com/pkg/errors"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Record struct {
	ID          uuid.UUID
	Address     string
	ZoningCodes []string
	Status      string
	Analysis    dtos.Analysis
}

// RecordsFromCodeChecks keeps the order of ids and skips code checks without
// a usable analysis.
func RecordsFromCodeChecks(ids []uuid.UUID, codeChecks []models.CodeCheck) []Record {
	byID := make(map[uuid.UUID]models.CodeCheck, len(codeChecks))
	for _, c := range codeChecks {
		byID[c.ID] = c
	}

	records := make([]Record, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		codeCheck, ok := byID[id]
		if !ok || codeCheck.IsDeleted() {
			continue
		}
		analysis, err := dtos.ParseAnalysis(codeCheck.Details)
		if err != nil {
			if !errors.Is(err, dtos.ErrNoAnalysis) {
				slog.Debug("skipping code check with unreadable analysis", "codeCheckID", id, "err", err)
			}
			continue
		}
		if len(analysis.Answers) == 0 {
			continue
		}
		records = append(records, Record{
			ID:          codeCheck.ID,
			Address:     codeCheck.Address,
			ZoningCodes: codeCheck.ZoningCodes,
			Status:      string(codeCheck.Status),
			Analysis:    analysis,
		})
	}
	return records
}

type service struct {
	codeCheckRepository shared.CodeCheckRepository
	viewerURL           string
	now                 func() time.Time
}

var _ shared.ExportService = (*service)(nil)

func NewService(codeCheckRepository shared.CodeCheckRepository, cfg config.Config) *service {
	return &service{
		codeCheckRepository: codeCheckRepository,
		viewerURL:           cfg.CitationViewerURL,
		now:                 time.Now,
	}
}

func ParseFormat(raw string) (dtos.ExportFormat, error) {
	switch format := dtos.ExportFormat(strings.ToLower(strings.TrimSpace(raw))); format {
	case dtos.ExportFormatCSV, dtos.ExportFormatPDF:
		return format, nil
	}
	return "", errors.Wrap(ErrUnknownFormat, raw)
}

func (s *service) Export(ctx context.Context, ids []uuid.UUID, format dtos.ExportFormat, w io.Writer) (int, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return 0, err
	}

	codeChecks, err := s.codeCheckRepository.List(ids)
	if err != nil {
		return 0, errors.Wrap(err, "could not load code checks")
	}
	records := RecordsFromCodeChecks(ids, codeChecks)

	switch format {
	case dtos.ExportFormatCSV:
		err = WriteCSV(w, records, s.viewerURL)
	case dtos.ExportFormatPDF:
		err = WritePDF(w, records, s.now())
	}
	if err != nil {
		return 0, errors.Wrapf(err, "could not write %s export", format)
	}

	monitoring.CodeCheckExportedAmount.WithLabelValues(string(format)).Add(float64(len(records)))
	return len(records), nil
}
