// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/teradata-labs/chartsense/internal/log"
	"github.com/teradata-labs/chartsense/internal/version"
	"github.com/teradata-labs/chartsense/pkg/visualization"
)

var (
	cfgFile string
	config  *Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "chartsense",
	Short: "Suggest the best charts for a dataset and a question",
	Long: heredoc.Doc(`
		chartsense inspects tabular data (JSON, CSV, XLSX or a SQL query), infers
		column types and structure, and returns up to three ranked chart
		suggestions with ready-to-render configurations.

		Questions may be asked in English or Portuguese.`),
	Version:       version.Get(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: chartsense.yaml in the config dir or current directory)")
	rootCmd.PersistentFlags().String("lexicon", "", "YAML keyword lexicon overriding the built-in lists")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	_ = viper.BindPFlag("lexicon.path", rootCmd.PersistentFlags().Lookup("lexicon"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error
	config, err = LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := log.Configure(config.Logging.Level, config.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logging: %v\n", err)
		os.Exit(1)
	}
}

// newEngine builds an engine from the configured lexicon, if any.
func newEngine(cfg *Config, logger *zap.Logger) (*visualization.Engine, error) {
	if cfg.Lexicon.Path == "" {
		return visualization.NewEngine(logger), nil
	}
	lexicon, err := visualization.LoadLexicon(cfg.Lexicon.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded lexicon", zap.String("path", cfg.Lexicon.Path))
	return visualization.NewEngine(logger, visualization.WithLexicon(lexicon)), nil
}
