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
	"log/slog"
	"strings"

	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/database"
	"github.com/govgoose/govgoose/shared"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const defaultConfigFilename = ".govgoose"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "govgoose-cli",
	Short: "Management cli",
	Long:  `The govgoose cli runs maintenance tasks and batch jobs against the govgoose database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.govgoose.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func initializeConfig(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(defaultConfigFilename)
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/govgoose/")
	}

	// Attempt to read the config file, gracefully ignoring errors
	// caused by a config file not being found.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("no config file found")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd)

	shared.InitLogger(shared.ParseLogLevel(viper.GetString("log-level")))
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := f.Name

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)) // nolint: errcheck
		}

		if err := viper.BindPFlag(configName, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}

func loadConfig() (config.Config, error) {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return config.Config{}, errors.Wrap(err, "could not load config")
	}
	return cfg, nil
}

func openDatabase(cfg config.Config) (*gorm.DB, func(), error) {
	pool, err := database.NewPgxConnPool(database.PoolConfigFromConfig(cfg.Postgres))
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not connect to database")
	}
	db, err := database.NewGormDB(pool)
	if err != nil {
		pool.Close()
		return nil, nil, errors.Wrap(err, "could not open database")
	}
	return db, pool.Close, nil
}
