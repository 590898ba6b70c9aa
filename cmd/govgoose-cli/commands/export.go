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

package commands

import (
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/repositories"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/services/export"
	"github.com/govgoose/govgoose/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewExportCommand() *cobra.Command {
	exportCmd := cobra.Command{
		Use:   "export",
		Short: "Export the answers of code checks as csv or pdf report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rawIDs, _ := cmd.Flags().GetStringSlice("ids")
			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")

			ids, err := parseIDs(rawIDs)
			if err != nil {
				return err
			}
			exportFormat, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, closeDB, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			f, err := os.Create(out)
			if err != nil {
				return errors.Wrap(err, "could not create output file")
			}
			defer f.Close()

			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
			s.Suffix = " GovGoose: Writing report"
			s.Start()

			n, err := export.NewService(repositories.NewCodeCheckRepository(db), cfg).Export(cmd.Context(), ids, exportFormat, f)
			s.Stop()
			if err != nil {
				return err
			}

			slog.Info("report written", "file", out, "codeChecks", n)
			return nil
		},
	}

	exportCmd.Flags().StringSlice("ids", nil, "ids of the code checks to export")
	exportCmd.Flags().String("format", string(dtos.ExportFormatCSV), "csv or pdf")
	exportCmd.Flags().String("out", "code-checks.csv", "output file")
	return &exportCmd
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	raw = utils.Filter(raw, func(s string) bool { return s != "" })
	if len(raw) == 0 {
		return nil, errors.New("--ids is required")
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid id %s", r)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
