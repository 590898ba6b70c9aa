package main

import (
	"log/slog"
	"os"

	"github.com/govgoose/govgoose/cmd/govgoose-cli/commands"

	_ "github.com/lib/pq"
)

func Execute() {
	err := commands.GetRootCmd().Execute()
	if err != nil {
		slog.Error("Error executing command", "err", err)
		os.Exit(1)
	}
}

func init() {
	commands.GetRootCmd().AddCommand(commands.NewMigrateCommand())
	commands.GetRootCmd().AddCommand(commands.NewImportCommand())
	commands.GetRootCmd().AddCommand(commands.NewExportCommand())
	commands.GetRootCmd().AddCommand(commands.NewVersionCommand())
}

func main() {
	Execute()
}
