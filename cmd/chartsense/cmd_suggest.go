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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/teradata-labs/chartsense/internal/log"
	"github.com/teradata-labs/chartsense/pkg/dataset"
	"github.com/teradata-labs/chartsense/pkg/visualization"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [file]",
	Short: "Suggest charts for a data file or SQL query",
	Long: heredoc.Doc(`
		Suggest up to three charts for a dataset.

		The dataset is read from a JSON, CSV, TSV or XLSX file (or stdin when the
		file is "-" or omitted), or from a SQL query when --query is given.`),
	Example: heredoc.Doc(`
		chartsense suggest sales.csv -q "vendas por região"
		cat rows.json | chartsense suggest -q "growth" --format json
		chartsense suggest report.xlsx --sheet Q1 --html preview.html
		chartsense suggest --driver sqlite --dsn ./shop.db --query "SELECT month, total FROM sales"`),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := suggestOptions{
			Path:     "-",
			Question: suggestQuestion,
			Sheet:    suggestSheet,
			Input:    dataset.Format(suggestInput),
			Query:    suggestQuery,
			HTMLPath: suggestHTML,
			Copy:     suggestCopy,
			Explain:  suggestExplain,
		}
		if len(args) == 1 {
			opts.Path = args[0]
		}
		return runSuggest(cmd.Context(), config, opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

var (
	suggestQuestion string
	suggestSheet    string
	suggestInput    string
	suggestQuery    string
	suggestHTML     string
	suggestCopy     bool
	suggestExplain  bool
)

func init() {
	f := suggestCmd.Flags()
	f.StringVarP(&suggestQuestion, "question", "q", "", "question about the data (English or Portuguese)")
	f.StringVar(&suggestSheet, "sheet", "", "worksheet to read from an XLSX file (default: active sheet)")
	f.StringVar(&suggestInput, "input-format", "", "input format: json, csv, tsv, xlsx (default: from extension)")
	f.StringVar(&suggestQuery, "query", "", "SQL query to run instead of reading a file")
	f.String("driver", "", "SQL driver: postgres, mysql, sqlite")
	f.String("dsn", "", "SQL data source name (or keyring sql_dsn / CHARTSENSE_SQL_DSN)")
	f.StringVar(&suggestHTML, "html", "", "write an HTML preview with rendered charts to this path")
	f.BoolVar(&suggestCopy, "copy", false, "copy the top suggestion's ECharts option to the clipboard")
	f.BoolVar(&suggestExplain, "explain", false, "print the structural analysis instead of suggestions")
	f.String("format", "text", "output format: text, json")
	f.String("theme", "dark", "chart theme: dark, light, teradata, minimal")
	f.Bool("color", true, "colorize terminal output")

	_ = viper.BindPFlag("sql.driver", f.Lookup("driver"))
	_ = viper.BindPFlag("sql.dsn", f.Lookup("dsn"))
	_ = viper.BindPFlag("output.format", f.Lookup("format"))
	_ = viper.BindPFlag("output.theme", f.Lookup("theme"))
	_ = viper.BindPFlag("output.color", f.Lookup("color"))

	rootCmd.AddCommand(suggestCmd)
}

type suggestOptions struct {
	Path     string
	Question string
	Sheet    string
	Input    dataset.Format
	Query    string
	HTMLPath string
	Copy     bool
	Explain  bool
}

type suggestOutput struct {
	Source      string                           `json:"source"`
	Question    string                           `json:"question,omitempty"`
	Rows        int                              `json:"rows"`
	Suggestions []visualization.ChartSuggestion `json:"suggestions"`
}

func runSuggest(ctx context.Context, cfg *Config, opts suggestOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger := log.Logger()

	dsn, err := cfg.SQL.ResolveDSN()
	if err != nil {
		return fmt.Errorf("invalid SQL connection settings: %w", err)
	}

	src := dataset.Source{
		Path:   opts.Path,
		Format: opts.Input,
		Sheet:  opts.Sheet,
		Driver: cfg.SQL.Driver,
		DSN:    dsn,
		Query:  opts.Query,
	}
	ds, err := dataset.Load(ctx, src, stdin)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", src.Name(), err)
	}
	logger.Debug("Loaded dataset",
		zap.String("source", src.Name()),
		zap.Int("rows", len(ds)),
		zap.Strings("columns", ds.Columns()))

	engine, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}

	if opts.Explain {
		data, err := json.MarshalIndent(engine.Explain(ds, opts.Question), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode analysis: %w", err)
		}
		return writeJSON(stdout, data, cfg.Output.Color)
	}

	suggestions := engine.SuggestCharts(ds, opts.Question)

	switch cfg.Output.Format {
	case "json":
		data, err := json.MarshalIndent(suggestOutput{
			Source:      src.Name(),
			Question:    opts.Question,
			Rows:        len(ds),
			Suggestions: suggestions,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode suggestions: %w", err)
		}
		if err := writeJSON(stdout, data, cfg.Output.Color); err != nil {
			return err
		}
	default:
		newRenderer(stdout, cfg.Output.Color).suggestions(opts.Question, suggestions)
	}

	style := visualization.GetThemeVariant(cfg.Output.Theme)

	if opts.HTMLPath != "" {
		if err := writeHTMLPreview(opts.HTMLPath, style, src.Name(), opts.Question, engine.Analyze(ds), suggestions); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Wrote HTML preview to %s\n", opts.HTMLPath)
	}

	if opts.Copy && len(suggestions) > 0 {
		option, err := visualization.NewEChartsGenerator(style).Generate(suggestions[0].Config)
		if err != nil {
			return fmt.Errorf("failed to build chart option: %w", err)
		}
		if err := clipboard.WriteAll(option); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintf(stderr, "Copied %s option to clipboard\n", suggestions[0].Title)
	}
	return nil
}

func writeHTMLPreview(path string, style *visualization.StyleConfig, source, question string, structure visualization.DataStructure, suggestions []visualization.ChartSuggestion) error {
	rg := visualization.NewReportGenerator(style)
	report, err := rg.GenerateReport(source, question, structure, suggestions)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	html, err := rg.ExportHTML(report)
	if err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
