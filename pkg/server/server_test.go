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

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/teradata-labs/chartsense/pkg/visualization"
)

const regionBody = `{"data":[{"region":"North","total":10},{"region":"South","total":12}],"question":"vendas por região"}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(nil, DefaultConfig(), zaptest.NewLogger(t))
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestServer_SuggestCharts(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodPost, "/api/suggest-charts", regionBody, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		Success     bool `json:"success"`
		Suggestions []struct {
			Type       string  `json:"type"`
			Confidence float64 `json:"confidence"`
		} `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "bar", resp.Suggestions[0].Type)
	assert.LessOrEqual(t, len(resp.Suggestions), 3)
}

func TestServer_RejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"data is an object", `{"data":{"region":"North"}}`},
		{"data is a number", `{"data":42,"question":"x"}`},
		{"malformed JSON", `{"data":`},
		{"empty body", ``},
	}

	h := newTestServer(t).Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/suggest-charts", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestServer_BodyTooLarge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBodyBytes = 16
	rec := do(t, NewServer(nil, cfg, nil).Handler(), http.MethodPost, "/api/suggest-charts", regionBody, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_Analyze(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodPost, "/api/analyze", regionBody, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Analysis.Structure.HasCategories)
	assert.Equal(t, []visualization.ChartType{visualization.ChartTypePie, visualization.ChartTypeBar}, resp.Analysis.Candidates)
}

func TestServer_RoutingErrors(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodGet, "/api/suggest-charts", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)

	rec = do(t, h, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_CORS(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodOptions, "/api/suggest-charts", "", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")

	cfg := DefaultConfig()
	cfg.CORS.AllowedOrigins = []string{"https://app.example.com"}
	s := NewServer(nil, cfg, nil)
	assert.Equal(t, "https://app.example.com", s.getAllowedOrigin("https://app.example.com"))
	assert.Equal(t, "", s.getAllowedOrigin("https://evil.example.com"))
	assert.Equal(t, "", s.getAllowedOrigin(""))
}

func TestServer_RequestID(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodGet, "/health", "", nil)
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	rec = do(t, h, http.MethodGet, "/health", "", map[string]string{RequestIDHeader: id})
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	rec = do(t, h, http.MethodGet, "/health", "", map[string]string{RequestIDHeader: "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestServer_RecoversPanics(t *testing.T) {
	s := newTestServer(t)
	h := s.recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := do(t, h, http.MethodPost, "/api/suggest-charts", regionBody, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"internal server error"}`, rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	h := newTestServer(t).Handler()
	do(t, h, http.MethodPost, "/api/suggest-charts", regionBody, nil)

	rec := do(t, h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "chartsense_http_requests_total")
	assert.Contains(t, body, `route="/api/suggest-charts"`)
	assert.Contains(t, body, "chartsense_suggestions_total")

	cfg := DefaultConfig()
	cfg.Metrics = false
	rec = do(t, NewServer(nil, cfg, nil).Handler(), http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_CompressesLargeResponses(t *testing.T) {
	rows := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		rows = append(rows, fmt.Sprintf(`{"region":"Region-%03d","total":%d}`, i, i+1))
	}
	body := fmt.Sprintf(`{"data":[%s]}`, strings.Join(rows, ","))

	rec := do(t, newTestServer(t).Handler(), http.MethodPost, "/api/suggest-charts", body,
		map[string]string{"Accept-Encoding": "gzip"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"success":true`)
}

func TestServer_SetEngine(t *testing.T) {
	s := newTestServer(t)
	original := s.Engine()

	s.SetEngine(nil)
	assert.Same(t, original, s.Engine())

	lex, err := visualization.ParseLexicon([]byte("growth: [wachstum]\n"))
	require.NoError(t, err)
	s.SetEngine(visualization.NewEngine(nil, visualization.WithLexicon(lex)))
	assert.Same(t, lex, s.Engine().Lexicon())
}
