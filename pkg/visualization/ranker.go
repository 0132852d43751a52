// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"sort"
)

// Confidence scoring.
const (
	baseConfidence    = 0.5
	maxSuggestions    = 3
	minConfidenceClip = 0.0
	maxConfidenceClip = 1.0
)

// SuggestionRanker scores candidate charts and orders them.
type SuggestionRanker struct {
	lexicon *Lexicon
}

// NewSuggestionRanker creates a ranker.
func NewSuggestionRanker(lexicon *Lexicon) *SuggestionRanker {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &SuggestionRanker{lexicon: lexicon}
}

// Score returns the confidence for chartType given the data signals and the
// normalized question, clamped to [0,1].
func (r *SuggestionRanker) Score(chartType ChartType, structure DataStructure, question string) float64 {
	intent := r.lexicon.DetectIntent(question)
	temporal := intent.Month || intent.Growth || intent.Trend
	score := baseConfidence

	switch chartType {
	case ChartTypeLine:
		if structure.HasTimeSeries {
			score += 0.35
		}
		if temporal {
			score += 0.25
		}
	case ChartTypeArea:
		if structure.HasTimeSeries {
			score += 0.3
		}
		if temporal {
			score += 0.2
		}
	case ChartTypeBar:
		if structure.HasCategories {
			score += 0.25
		}
		if intent.Comparison {
			score += 0.15
		}
	case ChartTypeHorizontalBar:
		if structure.HasCategories {
			score += 0.2
		}
		if intent.Ranking {
			score += 0.25
		}
	case ChartTypePie:
		if structure.HasCategories {
			score += 0.2
		}
		if intent.Distribution {
			score += 0.2
		}
	case ChartTypeScatter:
		if structure.HasNumericalComparison {
			score += 0.3
		}
		if intent.Correlation {
			score += 0.2
		}
	case ChartTypeMap:
		if structure.HasGeographicData {
			score += 0.4
		}
		if intent.Map {
			score += 0.2
		}
	case ChartTypeTable:
		if !structure.HasTimeSeries && !structure.HasCategories &&
			!structure.HasNumericalComparison && !structure.HasGeographicData {
			score += 0.1
		}
	}

	return clamp(score, minConfidenceClip, maxConfidenceClip)
}

// Suggest wraps one built config as a scored suggestion.
func (r *SuggestionRanker) Suggest(cfg ChartConfig, structure DataStructure, question string) ChartSuggestion {
	intent := r.lexicon.DetectIntent(question)
	title, description := describe(cfg.Type)
	return ChartSuggestion{
		Type:        cfg.Type,
		Title:       title,
		Description: description,
		Confidence:  r.Score(cfg.Type, structure, question),
		Config:      cfg,
		Reasoning:   reasoning(cfg.Type, intent),
	}
}

// Rank sorts suggestions by descending confidence, keeping input order on
// ties, and keeps the top three.
func (r *SuggestionRanker) Rank(suggestions []ChartSuggestion) []ChartSuggestion {
	out := append([]ChartSuggestion(nil), suggestions...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	if out == nil {
		out = []ChartSuggestion{}
	}
	return out
}

func describe(t ChartType) (title, description string) {
	switch t {
	case ChartTypeBar:
		return "Bar Chart", "Compares values across categories"
	case ChartTypeLine:
		return "Line Chart", "Shows how values change over time"
	case ChartTypePie:
		return "Pie Chart", "Shows each category's share of the total"
	case ChartTypeArea:
		return "Area Chart", "Shows cumulative volume over time"
	case ChartTypeScatter:
		return "Scatter Plot", "Shows the relationship between two measures"
	case ChartTypeHorizontalBar:
		return "Horizontal Bar Chart", "Ranks categories from highest to lowest"
	case ChartTypeTable:
		return "Data Table", "Lists every row for detailed inspection"
	case ChartTypeMap:
		return "Map", "Shows values by geographic region"
	}
	return string(t), ""
}

func reasoning(t ChartType, intent Intent) string {
	switch t {
	case ChartTypeBar:
		if intent.Region {
			return "Bar charts make differences between regions easy to compare side by side"
		}
		return "Bar charts are ideal for comparing values across distinct categories"
	case ChartTypeLine:
		if intent.Region {
			return "Line charts show how each region evolves across periods"
		}
		return "Line charts highlight trends and changes across ordered periods"
	case ChartTypePie:
		return "Pie charts show how parts contribute to a whole when there are few categories"
	case ChartTypeArea:
		return "Area charts emphasize the magnitude of change over time"
	case ChartTypeScatter:
		return "Scatter plots reveal correlation between two numeric variables"
	case ChartTypeHorizontalBar:
		return "Horizontal bars make rankings readable, even with long category names"
	case ChartTypeTable:
		return "No strong visual pattern was detected, so a table shows the raw data"
	case ChartTypeMap:
		return "Geographic columns can be placed on a map to compare regions spatially"
	}
	return ""
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
