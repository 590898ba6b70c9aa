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
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/govgoose/govgoose/database/repositories"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/integrations/geocoding"
	"github.com/govgoose/govgoose/services"
	"github.com/govgoose/govgoose/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func NewImportCommand() *cobra.Command {
	importCmd := cobra.Command{
		Use:   "import <file>",
		Short: "Create a pending code check for every address of a xlsx or csv file",
		Long:  `The first row of the file is treated as header. The first column has to hold the address.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			if userID == "" {
				return errors.New("--user is required")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "could not open file")
			}
			defer file.Close()

			db, closeDB, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			codeCheckService := services.NewCodeCheckService(repositories.NewCodeCheckRepository(db))
			batchImportService := services.NewBatchImportService(codeCheckService, geocoding.NewClientFromConfig(cfg), cfg)

			// the number of rows is only known after parsing
			bar := progressbar.Default(-1, "importing addresses")
			var mu sync.Mutex
			summary, err := batchImportService.ImportWithProgress(cmd.Context(), userID, filepath.Base(args[0]), file, func(dtos.BatchImportResult) {
				mu.Lock()
				defer mu.Unlock()
				bar.Add(1) // nolint: errcheck
			})
			bar.Finish() // nolint: errcheck
			if err != nil {
				return err
			}

			fmt.Println(renderImportSummary(summary))
			return nil
		},
	}

	importCmd.Flags().String("user", "", "id of the user the code checks are created for")
	return &importCmd
}

func renderImportSummary(summary dtos.BatchImportSummary) string {
	green := text.Colors{text.FgGreen}
	red := text.Colors{text.FgRed}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Row", "Address", "Result", "Code Check"})
	tw.AppendRows(utils.Map(summary.Results, func(r dtos.BatchImportResult) table.Row {
		if r.Success {
			return table.Row{r.Row, r.Address, green.Sprint("created"), r.CodeCheckID.String()}
		}
		return table.Row{r.Row, r.Address, red.Sprint(r.Reason), ""}
	}))
	tw.AppendFooter(table.Row{"", "Total", summary.Total, fmt.Sprintf("%d created, %d failed", summary.Succeeded, summary.Failed)})
	return tw.Render()
}
