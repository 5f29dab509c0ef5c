// Copyright © 2026 The enckeys Authors
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dbcrypt/enckeys/internal/constants"
	"github.com/dbcrypt/enckeys/internal/keygen"
	"github.com/dbcrypt/enckeys/internal/log"
	"github.com/dbcrypt/enckeys/internal/report"
)

var (
	cfgFile   string
	configErr error
	conf      = viper.New()
	logger    log.Logger = log.NewLogrusLogger(os.Stderr, log.Warn)
)

// entropy is the random source handed to the key generator. nil selects
// crypto/rand.
var entropy io.Reader

// rootCmd generates a key when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "Generate a database encryption key for a vault secret",
	Long: `Generate a database encryption key for a vault secret

A new Fernet key is generated from the operating system's secure random
source and printed together with the bookkeeping fields of the key
versioning scheme, ready to be merged into the application's vault secret:

  DATABASE_ENCRYPTION_KEY_V1  the key material
  CURRENT_KEY_VERSION         v1
  ROTATION_DATE               empty until the first rotation
  MIGRATION_STATUS            none

Nothing is stored or sent anywhere. Copy the output into the vault console.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		logger = log.NewLogrusLogger(cmd.ErrOrStderr(), log.Warn)
		if conf.GetBool("verbose") {
			logger.SetLogLevel(log.Debug)
		}
		if f := conf.ConfigFileUsed(); f != "" {
			logger.Debug(fmt.Sprintf("using config file: %s", f))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := report.Options{
			Format:     conf.GetString("format"),
			SecretName: conf.GetString("secret-name"),
			VaultName:  conf.GetString("vault-name"),
			Color:      colorEnabled(cmd.OutOrStdout()),
		}
		if err := report.ValidateFormat(opts.Format); err != nil {
			return err
		}

		ctx := log.WithVerbosity(context.Background(), conf.GetBool("verbose"))
		ctx = log.WithLogger(ctx, logger)

		cfg, err := keygen.NewGenerator(entropy).Generate(ctx)
		if err != nil {
			return err
		}
		return report.NewPrinter(cmd.OutOrStdout(), opts).PrintConfig(cfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		logger.Debug(fmt.Sprintf("command failed: %s", err))
		report.NewPrinter(rootCmd.ErrOrStderr(), report.Options{
			Color: colorEnabled(rootCmd.ErrOrStderr()),
		}).PrintRemediation(err)
		return 1
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s.yaml)", constants.ConfigFileName))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose log output")
	rootCmd.PersistentFlags().StringP("format", "f", report.FormatJSON, fmt.Sprintf("format of the configuration snippet. Options are: %v", report.Formats))
	rootCmd.PersistentFlags().String("secret-name", constants.DefaultSecretName, "name of the vault secret the fields are added to")
	rootCmd.PersistentFlags().String("vault-name", constants.DefaultVaultName, "name of the vault service shown in the instructions")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI colors")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	conf = viper.New()
	configErr = conf.BindPFlags(rootCmd.PersistentFlags())
	if configErr != nil {
		return
	}

	conf.SetEnvPrefix(constants.EnvPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv() // read in environment variables that match

	if cfgFile != "" {
		// Use config file from the flag. It must be readable.
		conf.SetConfigFile(cfgFile)
		if err := conf.ReadInConfig(); err != nil {
			configErr = fmt.Errorf("failed to read config file '%s': %w", cfgFile, err)
		}
		return
	}

	// Search config in home directory with name ".enckeys" (without extension).
	if home, err := homedir.Dir(); err == nil {
		conf.AddConfigPath(home)
		conf.SetConfigName(constants.ConfigFileName)
		_ = conf.ReadInConfig()
	}
}

func colorEnabled(w io.Writer) bool {
	if conf.GetBool("no-color") {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
