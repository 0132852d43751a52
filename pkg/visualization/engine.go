// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"go.uber.org/zap"
)

// Engine recommends charts for a dataset and an optional question.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	lexicon    *Lexicon
	logger     *zap.Logger
	analyzer   *DataStructureAnalyzer
	summarizer *ColumnSummarizer
	selector   *ChartTypeSelector
	builder    *ChartConfigBuilder
	ranker     *SuggestionRanker
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLexicon replaces the built-in keyword lexicon.
func WithLexicon(lexicon *Lexicon) EngineOption {
	return func(e *Engine) {
		if lexicon != nil {
			e.lexicon = lexicon
		}
	}
}

// NewEngine creates an engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		lexicon: DefaultLexicon(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.analyzer = NewDataStructureAnalyzer(e.lexicon)
	e.summarizer = NewColumnSummarizer(e.lexicon)
	e.selector = NewChartSelector(e.lexicon)
	e.builder = NewChartConfigBuilder(e.lexicon)
	e.ranker = NewSuggestionRanker(e.lexicon)
	return e
}

// Lexicon returns the keyword lexicon the engine matches against.
func (e *Engine) Lexicon() *Lexicon {
	return e.lexicon
}

// Analyze returns the structural signals for ds.
func (e *Engine) Analyze(ds Dataset) DataStructure {
	return e.analyzer.Analyze(ds)
}

// Analysis bundles everything the engine derives before building charts.
type Analysis struct {
	Structure  DataStructure    `json:"structure"`
	Summary    ColumnSummary    `json:"summary"`
	Signals    SelectionSignals `json:"signals"`
	Fields     Fields           `json:"fields"`
	Candidates []ChartType      `json:"candidates"`
}

// Explain runs analysis and selection without building charts.
func (e *Engine) Explain(ds Dataset, question string) Analysis {
	q := Normalize(question)
	structure := e.analyzer.Analyze(ds)
	summary := e.summarizer.Summarize(ds, structure)
	signals := e.selector.Signals(summary, q)
	return Analysis{
		Structure:  structure,
		Summary:    summary,
		Signals:    signals,
		Fields:     e.builder.ResolveFields(structure, summary),
		Candidates: e.selector.Select(structure, q, signals),
	}
}

// SuggestCharts returns at most three ranked chart suggestions.
func (e *Engine) SuggestCharts(ds Dataset, question string) []ChartSuggestion {
	q := Normalize(question)
	analysis := e.Explain(ds, question)
	intent := e.lexicon.DetectIntent(q)

	suggestions := make([]ChartSuggestion, 0, len(analysis.Candidates))
	for _, chartType := range analysis.Candidates {
		cfg := e.builder.Build(chartType, ds, analysis.Structure, analysis.Summary)
		cfg = e.enrich(cfg, intent, analysis.Signals.HasTime, len(ds))
		suggestions = append(suggestions, e.ranker.Suggest(cfg, analysis.Structure, q))
	}

	ranked := e.ranker.Rank(suggestions)
	e.logger.Debug("Charts suggested",
		zap.Int("rows", len(ds)),
		zap.Int("candidates", len(analysis.Candidates)),
		zap.Int("suggestions", len(ranked)))
	return ranked
}

// enrich applies percent-of-total, growth and narrative in that order.
func (e *Engine) enrich(cfg ChartConfig, intent Intent, hasTime bool, rows int) ChartConfig {
	if intent.Distribution {
		cfg = ApplyPercentOfTotal(cfg)
	}
	if (intent.Growth || intent.Trend) && hasTime {
		cfg = ApplyGrowth(cfg)
	}
	out, err := ApplyNarrative(cfg, rows)
	if err != nil {
		e.logger.Debug("Narrative omitted",
			zap.String("chart_type", string(cfg.Type)),
			zap.Error(err))
		return cfg
	}
	return out
}
