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
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/teradata-labs/chartsense/internal/log"
	"github.com/teradata-labs/chartsense/pkg/visualization"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Inspect and validate keyword lexicons",
	Long: heredoc.Doc(`
		The lexicon holds the keyword lists used to detect question intent
		(growth, trend, distribution, ranking, ...) and to recognize time,
		geographic and value columns. Lists in a lexicon file replace the
		built-in ones; omitted lists keep their defaults.`),
}

var lexiconShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective lexicon as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(config, log.Logger())
		if err != nil {
			return err
		}
		return printLexicon(cmd.OutOrStdout(), engine.Lexicon())
	},
}

var lexiconValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a lexicon file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := visualization.LoadLexicon(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", args[0])
		return nil
	},
}

var lexiconIntentCmd = &cobra.Command{
	Use:   "intent [question]",
	Short: "Show which intents a question triggers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(config, log.Logger())
		if err != nil {
			return err
		}
		question := strings.Join(args, " ")
		intent := engine.Lexicon().DetectIntent(visualization.Normalize(question))
		fmt.Fprintln(cmd.OutOrStdout(), formatIntent(intent))
		return nil
	},
}

func init() {
	lexiconCmd.AddCommand(lexiconShowCmd)
	lexiconCmd.AddCommand(lexiconValidateCmd)
	lexiconCmd.AddCommand(lexiconIntentCmd)
	rootCmd.AddCommand(lexiconCmd)
}

func printLexicon(w io.Writer, lexicon *visualization.Lexicon) error {
	data, err := lexicon.YAML()
	if err != nil {
		return fmt.Errorf("failed to encode lexicon: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func formatIntent(intent visualization.Intent) string {
	flags := []struct {
		name string
		on   bool
	}{
		{"growth", intent.Growth},
		{"trend", intent.Trend},
		{"distribution", intent.Distribution},
		{"ranking", intent.Ranking},
		{"correlation", intent.Correlation},
		{"comparison", intent.Comparison},
		{"map", intent.Map},
		{"region", intent.Region},
		{"month", intent.Month},
	}

	var matched []string
	for _, f := range flags {
		if f.on {
			matched = append(matched, f.name)
		}
	}
	if len(matched) == 0 {
		return "no intent detected"
	}
	return strings.Join(matched, ", ")
}
