// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"strings"
)

// pieMaxSlices is the largest category count that still reads well as a pie.
const pieMaxSlices = 6

// SelectionSignals are the data-shape flags the selector combines with
// question keywords.
type SelectionSignals struct {
	HasCategory         bool `json:"hasCategory"`
	CategoryUniqueCount int  `json:"categoryUniqueCount"`
	HasTime             bool `json:"hasTime"`
	HasTwoNumbers       bool `json:"hasTwoNumbers"`
	HasTwoCategories    bool `json:"hasTwoCategories"`
}

// ChartTypeSelector maps data signals and question keywords to an ordered
// list of candidate chart types.
type ChartTypeSelector struct {
	lexicon *Lexicon
}

// NewChartSelector creates a new chart selector
func NewChartSelector(lexicon *Lexicon) *ChartTypeSelector {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &ChartTypeSelector{lexicon: lexicon}
}

// Signals derives the selection flags from the analysis results and the
// normalized question.
func (cs *ChartTypeSelector) Signals(summary ColumnSummary, question string) SelectionSignals {
	twoCategories := len(summary.Categorical) >= 2 ||
		(len(summary.StringColumns) >= 2 && mentionedColumns(question, summary) >= 2)

	return SelectionSignals{
		HasCategory:         summary.HasCategory(),
		CategoryUniqueCount: summary.CategoryUniqueCount(),
		HasTime:             len(summary.DateLikeColumns) > 0,
		HasTwoNumbers:       len(summary.NumberColumns) >= 2,
		HasTwoCategories:    twoCategories,
	}
}

// Select returns the deduplicated candidate chart types in emission order.
// The order seeds tie-breaking in the ranker.
func (cs *ChartTypeSelector) Select(structure DataStructure, question string, signals SelectionSignals) []ChartType {
	intent := cs.lexicon.DetectIntent(question)
	temporal := signals.HasTime || intent.Trend || intent.Growth

	var candidates []ChartType
	add := func(types ...ChartType) {
		candidates = append(candidates, types...)
	}

	// 1. Two categorical dimensions → multi-series chart
	if signals.HasTwoCategories {
		if temporal {
			add(ChartTypeLine)
		} else {
			add(ChartTypeBar)
		}
	}

	// 2. Time axis or change-over-time question → line, area
	if signals.HasTime || intent.Growth || intent.Trend {
		add(ChartTypeLine, ChartTypeArea)
	}

	// 3. Few categories and a share question → pie
	if signals.HasCategory && signals.CategoryUniqueCount >= 1 && signals.CategoryUniqueCount <= pieMaxSlices && intent.Distribution {
		add(ChartTypePie)
	}

	// 4. Ranking question → horizontal bars
	if intent.Ranking && signals.HasCategory {
		add(ChartTypeHorizontalBar)
	}

	// 5. Correlation question over two measures → scatter
	if signals.HasTwoNumbers && intent.Correlation {
		add(ChartTypeScatter)
	}

	// 6. Generic categorical comparison
	if signals.HasCategory {
		if signals.CategoryUniqueCount <= pieMaxSlices && !intent.Trend && !signals.HasTime {
			add(ChartTypePie, ChartTypeBar)
		} else {
			add(ChartTypeBar)
		}
	}

	// 7. Measures only → scatter
	if !signals.HasCategory && signals.HasTwoNumbers {
		add(ChartTypeScatter)
	}

	// 7b. Geographic columns and a map question → map
	if structure.HasGeographicData && intent.Map {
		add(ChartTypeMap)
	}

	// 8. Fallback
	if len(candidates) == 0 {
		add(ChartTypeTable, ChartTypeBar)
	}

	return dedupe(candidates)
}

func dedupe(types []ChartType) []ChartType {
	seen := make(map[ChartType]bool, len(types))
	out := make([]ChartType, 0, len(types))
	for _, t := range types {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// mentionedColumns counts distinct column names that appear in the question.
func mentionedColumns(question string, summary ColumnSummary) int {
	if question == "" {
		return 0
	}
	seen := make(map[string]bool)
	for col := range summary.Distinct {
		name := Normalize(col)
		if name == "" || seen[name] {
			continue
		}
		if strings.Contains(question, name) {
			seen[name] = true
		}
	}
	return len(seen)
}
