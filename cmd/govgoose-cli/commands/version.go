package commands

import (
	"fmt"

	"github.com/govgoose/govgoose/config"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// the version does not need any configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("govgoose %s (commit %s, built %s)\n", config.Version, config.Commit, config.BuildDate)
		},
	}
}
