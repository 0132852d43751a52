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
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const monthlyCSV = "month,total\nJan,100\nFeb,120\nMar,90\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunSuggest_JSON(t *testing.T) {
	cfg := loadTestConfig(t, "")
	cfg.Output.Format = "json"
	path := writeFile(t, "monthly.csv", monthlyCSV)

	var stdout, stderr bytes.Buffer
	err := runSuggest(context.Background(), cfg, suggestOptions{Path: path, Question: "crescimento"}, nil, &stdout, &stderr)
	require.NoError(t, err)

	var out struct {
		Source      string `json:"source"`
		Rows        int    `json:"rows"`
		Suggestions []struct {
			Type string `json:"type"`
		} `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "monthly.csv", out.Source)
	assert.Equal(t, 3, out.Rows)
	require.NotEmpty(t, out.Suggestions)
	assert.Equal(t, "line", out.Suggestions[0].Type)
}

func TestRunSuggest_TextFromStdin(t *testing.T) {
	cfg := loadTestConfig(t, "")
	stdin := strings.NewReader(`[{"region":"North","total":10},{"region":"South","total":12}]`)

	var stdout bytes.Buffer
	err := runSuggest(context.Background(), cfg, suggestOptions{Path: "-", Question: "vendas por região"}, stdin, &stdout, &bytes.Buffer{})
	require.NoError(t, err)

	text := stdout.String()
	assert.Contains(t, text, "Question: vendas por região")
	assert.Contains(t, text, "1. Bar Chart")
	assert.Contains(t, text, "[bar]")
	// plain output for non-terminals
	assert.NotContains(t, text, "\x1b[")
}

func TestRunSuggest_HTMLPreview(t *testing.T) {
	cfg := loadTestConfig(t, "")
	cfg.Output.Theme = "light"
	path := writeFile(t, "monthly.csv", monthlyCSV)
	htmlPath := filepath.Join(t.TempDir(), "preview.html")

	var stderr bytes.Buffer
	err := runSuggest(context.Background(), cfg, suggestOptions{Path: path, HTMLPath: htmlPath}, nil, &bytes.Buffer{}, &stderr)
	require.NoError(t, err)

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "echarts.init")
	assert.Contains(t, stderr.String(), "Wrote HTML preview")
}

func TestRunSuggest_Explain(t *testing.T) {
	cfg := loadTestConfig(t, "")
	path := writeFile(t, "monthly.csv", monthlyCSV)

	var stdout bytes.Buffer
	require.NoError(t, runSuggest(context.Background(), cfg, suggestOptions{Path: path, Explain: true}, nil, &stdout, &bytes.Buffer{}))

	var analysis map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &analysis))
	assert.Contains(t, analysis, "structure")
	assert.Contains(t, analysis, "candidates")
}

func TestRunSuggest_SQLite(t *testing.T) {
	cfg := loadTestConfig(t, "")
	cfg.Output.Format = "json"
	cfg.SQL.Driver = "sqlite"
	cfg.SQL.DSN = filepath.Join(t.TempDir(), "shop.db")

	db, err := sql.Open("sqlite3", cfg.SQL.DSN)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE sales (region TEXT, total REAL)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO sales VALUES ('North', 10), ('South', 12)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	var stdout bytes.Buffer
	require.NoError(t, runSuggest(context.Background(), cfg, suggestOptions{
		Query: "SELECT region, total FROM sales",
	}, nil, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), `"rows": 2`)
}

func TestRunSuggest_Errors(t *testing.T) {
	cfg := loadTestConfig(t, "")

	err := runSuggest(context.Background(), cfg, suggestOptions{Path: filepath.Join(t.TempDir(), "missing.csv")}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)

	cfg.Lexicon.Path = writeFile(t, "lexicon.yaml", "months: [[jan]]\n")
	err = runSuggest(context.Background(), cfg, suggestOptions{Path: "-"}, strings.NewReader("[]"), &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)

	cfg = loadTestConfig(t, "")
	cfg.Output.Theme = "neon"
	err = runSuggest(context.Background(), cfg, suggestOptions{Path: "-"}, strings.NewReader("[]"), &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRenderHelpers(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", 15)+strings.Repeat("░", 5), confidenceBar(0.75))
	assert.Equal(t, strings.Repeat("░", barWidth), confidenceBar(-1))
	assert.Equal(t, strings.Repeat("█", barWidth), confidenceBar(2))

	wrapped := wrap("one two three four", 9, "  ")
	assert.Equal(t, "one two\n  three\n  four", wrapped)

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, []byte(`{"a":1}`), true))
	assert.Equal(t, "{\"a\":1}\n", buf.String())
}
