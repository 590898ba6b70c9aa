package dtos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysis(t *testing.T) {
	t.Run("should parse the wrapped form", func(t *testing.T) {
		a, err := ParseAnalysis([]byte(`{"answers":[{"question":"Max height?","short_answer":"20ft","detailed_answer":"Signs may be up to 20ft","citations":["Sec. 4.1",{"text":"Sec. 4.2","page":3}]}],"analyzedAt":"2026-01-02T03:04:05Z"}`))
		require.Nil(t, err)
		require.Len(t, a.Answers, 1)
		assert.Equal(t, "Max height?", a.Answers[0].Question)
		assert.Equal(t, "20ft", a.Answers[0].DisplayAnswer())
		assert.Equal(t, []Citation{{Text: "Sec. 4.1"}, {Text: "Sec. 4.2", Page: 3}}, a.Answers[0].Citations)
		assert.NotNil(t, a.AnalyzedAt)
	})

	t.Run("should parse a bare array", func(t *testing.T) {
		a, err := ParseAnalysis([]byte(`[{"question":"q","detailed_answer":"long"}]`))
		require.Nil(t, err)
		assert.Equal(t, "long", a.Answers[0].DisplayAnswer())
	})

	t.Run("should parse the results key", func(t *testing.T) {
		a, err := ParseAnalysis([]byte(`{"results":[{"question":"q","short_answer":"yes"}]}`))
		require.Nil(t, err)
		assert.Len(t, a.Answers, 1)
	})

	t.Run("should parse stringified json", func(t *testing.T) {
		a, err := ParseAnalysis([]byte(`"[{\"question\":\"q\",\"short_answer\":\"yes\"}]"`))
		require.Nil(t, err)
		assert.Equal(t, "yes", a.Answers[0].ShortAnswer)
	})

	t.Run("should return ErrNoAnalysis for empty input", func(t *testing.T) {
		for _, raw := range []string{"", "null", "[]", `{"answers":[]}`, "  "} {
			_, err := ParseAnalysis([]byte(raw))
			assert.ErrorIs(t, err, ErrNoAnalysis, raw)
		}
	})

	t.Run("should return an error for invalid json", func(t *testing.T) {
		_, err := ParseAnalysis([]byte(`{"answers":`))
		assert.NotNil(t, err)
		assert.NotErrorIs(t, err, ErrNoAnalysis)
	})
}
