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
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/teradata-labs/chartsense/pkg/dataset"
	"github.com/teradata-labs/chartsense/pkg/visualization"
)

// SuggestResponse is the body of a successful suggest-charts call.
type SuggestResponse struct {
	Success     bool                             `json:"success"`
	Suggestions []visualization.ChartSuggestion `json:"suggestions"`
}

// AnalyzeResponse is the body of a successful analyze call.
type AnalyzeResponse struct {
	Success  bool                   `json:"success"`
	Analysis visualization.Analysis `json:"analysis"`
}

// ErrorResponse is returned for every failed call.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	engine := s.Engine()
	suggestions := engine.SuggestCharts(req.Data, req.Question)
	for _, sg := range suggestions {
		suggestionsTotal.WithLabelValues(string(sg.Type)).Inc()
	}

	s.logger.Debug("Suggested charts",
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.Int("rows", len(req.Data)),
		zap.Int("suggestions", len(suggestions)))

	writeJSON(w, http.StatusOK, SuggestResponse{Success: true, Suggestions: suggestions})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	analysis := s.Engine().Explain(req.Data, req.Question)
	writeJSON(w, http.StatusOK, AnalyzeResponse{Success: true, Analysis: analysis})
}

// decode reads and validates the body, writing the error response itself
// when it fails.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*dataset.Request, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return nil, false
	}

	req, err := dataset.DecodeRequest(body)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dataset.ErrInvalidPayload) {
			status = http.StatusBadRequest
		}
		s.logger.Info("Rejected request",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err))
		writeError(w, status, err.Error())
		return nil, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	data, _ := json.Marshal(ErrorResponse{Success: false, Error: msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
