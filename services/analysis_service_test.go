package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestBuildQuestions(t *testing.T) {
	t.Run("should append custom questions and drop blanks and duplicates", func(t *testing.T) {
		questions := BuildQuestions([]string{"  ", "Are roof signs allowed?", DefaultQuestions[0], "are roof signs allowed?"})

		assert.Len(t, questions, len(DefaultQuestions)+1)
		assert.Equal(t, DefaultQuestions, questions[:len(DefaultQuestions)])
		assert.Equal(t, "Are roof signs allowed?", questions[len(questions)-1])
	})

	t.Run("should not modify the default battery", func(t *testing.T) {
		before := append([]string{}, DefaultQuestions...)
		BuildQuestions([]string{"x"})
		assert.Equal(t, before, DefaultQuestions)
	})
}

func TestAnalysisServiceAnalyze(t *testing.T) {
	id := uuid.New()
	codeCheck := models.CodeCheck{
		Model:       models.Model{ID: id},
		Address:     "123 Main St",
		ZoningCodes: datatypes.JSONSlice[string]{"C-2", "SGN-1"},
		Status:      models.CodeCheckStatusPending,
		Details:     datatypes.JSON(`{"answers":[{"question":"old"}]}`),
	}

	t.Run("should store the answers and complete the code check", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)
		client := mocks.NewAnalysisClient(t)
		analyzedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

		repo.On("ReadActive", id).Return(codeCheck, nil)
		repo.On("UpdateStatus", mock.Anything, id, models.CodeCheckStatusInProgress).Return(nil)
		client.On("AnswerQuestions", mock.Anything, mock.MatchedBy(func(req dtos.AnswerQuestionsRequest) bool {
			return req.Address == "123 Main St" && req.Zone == "C-2, SGN-1" && len(req.Questions) == len(DefaultQuestions)+1
		})).Return([]dtos.Answer{
			{Question: "Max height?", ShortAnswer: "20 ft", Citations: []dtos.Citation{{Text: "Sec. 1"}}},
			{Question: "Banners?", ShortAnswer: "No"},
		}, nil)
		repo.On("UpdateDetails", mock.Anything, id, mock.MatchedBy(func(details datatypes.JSON) bool {
			analysis, err := dtos.ParseAnalysis(details)
			return err == nil && len(analysis.Answers) == 2 && analysis.AnalyzedAt.Equal(analyzedAt)
		}), models.CodeCheckStatusCompleted).Return(nil)

		s := NewAnalysisService(repo, client)
		s.now = func() time.Time { return analyzedAt }

		analysis, err := s.Analyze(t.Context(), id, []string{"Are roof signs allowed?"})
		require.NoError(t, err)
		assert.Len(t, analysis.Answers, 2)
	})

	t.Run("should keep the details and restore the status when the backend fails", func(t *testing.T) {
		repo := mocks.NewCodeCheckRepository(t)
		client := mocks.NewAnalysisClient(t)

		repo.On("ReadActive", id).Return(codeCheck, nil)
		repo.On("UpdateStatus", mock.Anything, id, models.CodeCheckStatusInProgress).Return(nil)
		client.On("AnswerQuestions", mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))
		repo.On("UpdateStatus", mock.Anything, id, models.CodeCheckStatusPending).Return(nil)

		_, err := NewAnalysisService(repo, client).Analyze(t.Context(), id, nil)

		assert.ErrorIs(t, err, ErrAnalysisFailed)
		repo.AssertNotCalled(t, "UpdateDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
