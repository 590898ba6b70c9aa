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
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/monitoring"
	"github.com/govgoose/govgoose/shared"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

var ErrAnalysisFailed = errors.New("analysis backend failed")

// DefaultQuestions is asked for every code check.
var DefaultQuestions = []string{
	"What is the maximum permitted sign area for a wall sign?",
	"What is the maximum permitted height for a freestanding or monument sign?",
	"How many freestanding signs are permitted per parcel?",
	"Are illuminated or internally lit signs permitted?",
	"Are electronic message centers or digital signs permitted, and with which restrictions?",
	"What are the setback requirements for freestanding signs?",
	"Is a sign permit required and which documents must be submitted?",
	"Are temporary signs or banners permitted and for how long?",
	"Which sign types are prohibited?",
	"Does a historic or overlay district impose additional sign restrictions?",
}

type analysisService struct {
	codeCheckRepository shared.CodeCheckRepository
	analysisClient      shared.AnalysisClient
	now                 func() time.Time
}

var _ shared.AnalysisService = (*analysisService)(nil)

func NewAnalysisService(codeCheckRepository shared.CodeCheckRepository, analysisClient shared.AnalysisClient) *analysisService {
	return &analysisService{
		codeCheckRepository: codeCheckRepository,
		analysisClient:      analysisClient,
		now:                 time.Now,
	}
}

// BuildQuestions appends the custom questions to the default battery.
// Blank entries and duplicates are dropped.
func BuildQuestions(customQuestions []string) []string {
	questions := make([]string, 0, len(DefaultQuestions)+len(customQuestions))
	seen := make(map[string]struct{}, cap(questions))
	for _, q := range append(append([]string{}, DefaultQuestions...), customQuestions...) {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		key := strings.ToLower(q)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		questions = append(questions, q)
	}
	return questions
}

func (s *analysisService) Analyze(ctx context.Context, codeCheckID uuid.UUID, customQuestions []string) (dtos.Analysis, error) {
	codeCheck, err := s.codeCheckRepository.ReadActive(codeCheckID)
	if err != nil {
		return dtos.Analysis{}, err
	}

	previousStatus := codeCheck.Status
	if err := s.codeCheckRepository.UpdateStatus(nil, codeCheckID, models.CodeCheckStatusInProgress); err != nil {
		return dtos.Analysis{}, err
	}

	start := time.Now()
	answers, err := s.analysisClient.AnswerQuestions(ctx, dtos.AnswerQuestionsRequest{
		Address:   codeCheck.Address,
		Zone:      strings.Join(codeCheck.ZoningCodes, ", "),
		Questions: BuildQuestions(customQuestions),
	})
	monitoring.AnalysisDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		monitoring.AnalysisFailedAmount.Inc()
		slog.Error("analysis failed", "codeCheckID", codeCheckID, "err", err)
		// details stay untouched, only the status is rolled back
		if rollbackErr := s.codeCheckRepository.UpdateStatus(nil, codeCheckID, previousStatus); rollbackErr != nil {
			slog.Error("could not restore code check status", "codeCheckID", codeCheckID, "err", rollbackErr)
		}
		return dtos.Analysis{}, errors.Wrap(ErrAnalysisFailed, err.Error())
	}

	if answers == nil {
		answers = []dtos.Answer{}
	}
	now := s.now()
	analysis := dtos.Analysis{
		Answers:    answers,
		AnalyzedAt: &now,
	}

	raw, err := json.Marshal(analysis)
	if err != nil {
		return dtos.Analysis{}, err
	}
	if err := s.codeCheckRepository.UpdateDetails(nil, codeCheckID, datatypes.JSON(raw), models.CodeCheckStatusCompleted); err != nil {
		return dtos.Analysis{}, errors.Wrap(err, "could not store analysis")
	}
	return analysis, nil
}
