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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/teradata-labs/chartsense/pkg/visualization"
)

func TestFormatIntent(t *testing.T) {
	lex := visualization.DefaultLexicon()

	assert.Equal(t, "no intent detected", formatIntent(visualization.Intent{}))
	assert.Equal(t, "growth", formatIntent(lex.DetectIntent(visualization.Normalize("crescimento"))))
	assert.Contains(t, formatIntent(visualization.Intent{Ranking: true, Region: true}), "ranking, region")
}

func TestPrintLexicon(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printLexicon(&buf, visualization.DefaultLexicon()))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "growth")
	assert.Contains(t, decoded, "months")
}

func TestNewEngine_WithLexiconFile(t *testing.T) {
	cfg := loadTestConfig(t, "")
	cfg.Lexicon.Path = writeFile(t, "lexicon.yaml", "growth: [wachstum]\n")

	engine, err := newEngine(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"wachstum"}, engine.Lexicon().Growth)
}

func TestServe_StopsOnCancel(t *testing.T) {
	cfg := loadTestConfig(t, "")
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Lexicon.Path = writeFile(t, "lexicon.yaml", "growth: [wachstum]\n")
	cfg.Lexicon.DebounceMs = 10

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg, zaptest.NewLogger(t)) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestExampleFiles(t *testing.T) {
	lex, err := visualization.LoadLexicon("../../examples/lexicon.yaml")
	require.NoError(t, err)
	assert.True(t, lex.DetectIntent(visualization.Normalize("Wachstum pro Bundesland")).Growth)

	cfg := loadTestConfig(t, "../../examples/chartsense.yaml")
	assert.Equal(t, "teradata", cfg.Output.Theme)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORS.AllowedOrigins)
	assert.NoError(t, cfg.Validate())
}
