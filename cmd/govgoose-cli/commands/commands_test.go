package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/services/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDs(t *testing.T) {
	t.Run("should parse every id", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()

		ids, err := parseIDs([]string{a.String(), "", b.String()})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, ids)
	})

	t.Run("should require at least one id", func(t *testing.T) {
		_, err := parseIDs([]string{""})
		assert.Error(t, err)
	})

	t.Run("should reject malformed ids", func(t *testing.T) {
		_, err := parseIDs([]string{"123"})
		assert.ErrorContains(t, err, "invalid id 123")
	})
}

func TestRenderImportSummary(t *testing.T) {
	id := uuid.New()
	out := renderImportSummary(dtos.BatchImportSummary{
		Total:     2,
		Succeeded: 1,
		Failed:    1,
		Results: []dtos.BatchImportResult{
			{Row: 2, Address: "1 Main St", Success: true, CodeCheckID: &id},
			{Row: 3, Address: "nowhere", Reason: "address not found"},
		},
	})

	assert.Contains(t, out, "1 Main St")
	assert.Contains(t, out, id.String())
	assert.Contains(t, out, "address not found")
	// footers are upper cased by the default style
	assert.Contains(t, strings.ToLower(out), "1 created, 1 failed")
}

func TestExportCommand(t *testing.T) {
	t.Run("should reject unknown formats before creating the output file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "report.xls")

		cmd := NewExportCommand()
		cmd.SetArgs([]string{"--ids", uuid.NewString(), "--format", "xls", "--out", out})
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		err := cmd.Execute()
		assert.ErrorIs(t, err, export.ErrUnknownFormat)

		_, statErr := os.Stat(out)
		assert.True(t, os.IsNotExist(statErr))
	})
}
