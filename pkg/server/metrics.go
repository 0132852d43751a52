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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chartsense",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chartsense",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	suggestionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chartsense",
		Name:      "suggestions_total",
		Help:      "Chart suggestions returned, by chart type.",
	}, []string{"chart_type"})

	panicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chartsense",
		Name:      "panics_recovered_total",
		Help:      "Handler panics converted into 500 responses.",
	})

	lexiconReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chartsense",
		Name:      "lexicon_reloads_total",
		Help:      "Lexicon reload attempts by result.",
	}, []string{"result"})
)
