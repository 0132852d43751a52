// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

// Categorical columns must have this many distinct values (inclusive).
const (
	minCategoryCardinality = 2
	maxCategoryCardinality = 20
)

// DataStructure is the dataset-level snapshot that drives chart selection.
// It is built once per call and never modified afterwards.
type DataStructure struct {
	HasTimeSeries          bool                  `json:"hasTimeSeries"`
	HasCategories          bool                  `json:"hasCategories"`
	HasNumericalComparison bool                  `json:"hasNumericalComparison"`
	HasGeographicData      bool                  `json:"hasGeographicData"`
	Columns                []string              `json:"columns"`
	ColumnTypes            map[string]ColumnType `json:"columnTypes"`
	RowCount               int                   `json:"rowCount"`
	ColumnCount            int                   `json:"columnCount"`
}

// TypeOf returns the inferred type of a column.
func (d DataStructure) TypeOf(column string) ColumnType {
	return d.ColumnTypes[column]
}

// ColumnsOfType returns the columns with the given type, in column order.
func (d DataStructure) ColumnsOfType(t ColumnType) []string {
	var out []string
	for _, c := range d.Columns {
		if d.ColumnTypes[c] == t {
			out = append(out, c)
		}
	}
	return out
}

// DataStructureAnalyzer derives dataset-level signals from column types and names.
type DataStructureAnalyzer struct {
	classifier *ColumnTypeClassifier
	lexicon    *Lexicon
}

// NewDataStructureAnalyzer creates an analyzer.
func NewDataStructureAnalyzer(lexicon *Lexicon) *DataStructureAnalyzer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &DataStructureAnalyzer{
		classifier: NewColumnTypeClassifier(lexicon),
		lexicon:    lexicon,
	}
}

// Analyze examines dataset structure.
func (a *DataStructureAnalyzer) Analyze(ds Dataset) DataStructure {
	if len(ds) == 0 {
		return DataStructure{
			Columns:     []string{},
			ColumnTypes: map[string]ColumnType{},
		}
	}

	columns := ds.Columns()
	structure := DataStructure{
		Columns:     columns,
		ColumnTypes: make(map[string]ColumnType, len(columns)),
		RowCount:    len(ds),
		ColumnCount: len(columns),
	}

	numbers := 0
	for _, col := range columns {
		colType := a.classifier.Classify(ds, col)
		structure.ColumnTypes[col] = colType

		switch colType {
		case ColumnDate:
			structure.HasTimeSeries = true
		case ColumnNumber:
			numbers++
		case ColumnString:
			if isCategorical(distinctCount(ds, col)) {
				structure.HasCategories = true
			}
		}

		if NameMatches(col, a.lexicon.TimeColumns) {
			structure.HasTimeSeries = true
		}
		if NameMatches(col, a.lexicon.GeoColumns) {
			structure.HasGeographicData = true
		}
	}
	structure.HasNumericalComparison = numbers >= 2

	return structure
}

// ColumnSummary buckets columns by role.
type ColumnSummary struct {
	StringColumns   []string       `json:"stringColumns"`
	NumberColumns   []string       `json:"numberColumns"`
	DateLikeColumns []string       `json:"dateLikeColumns"`
	Categorical     []string       `json:"categorical"`
	Distinct        map[string]int `json:"distinct"`
	// CategoryColumn is the primary category column, empty when none exists.
	CategoryColumn string `json:"categoryColumn,omitempty"`
}

// HasCategory reports whether a primary category column exists.
func (s ColumnSummary) HasCategory() bool { return s.CategoryColumn != "" }

// CategoryUniqueCount returns the distinct value count of the primary category.
func (s ColumnSummary) CategoryUniqueCount() int {
	if s.CategoryColumn == "" {
		return 0
	}
	return s.Distinct[s.CategoryColumn]
}

// ColumnSummarizer classifies columns into role buckets.
type ColumnSummarizer struct {
	lexicon *Lexicon
}

// NewColumnSummarizer creates a summarizer.
func NewColumnSummarizer(lexicon *Lexicon) *ColumnSummarizer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &ColumnSummarizer{lexicon: lexicon}
}

// Summarize buckets the columns described by structure.
func (cs *ColumnSummarizer) Summarize(ds Dataset, structure DataStructure) ColumnSummary {
	summary := ColumnSummary{Distinct: make(map[string]int, len(structure.Columns))}

	for _, col := range structure.Columns {
		colType := structure.TypeOf(col)
		summary.Distinct[col] = distinctCount(ds, col)

		switch colType {
		case ColumnString:
			summary.StringColumns = append(summary.StringColumns, col)
			if isCategorical(summary.Distinct[col]) {
				summary.Categorical = append(summary.Categorical, col)
			}
		case ColumnNumber:
			summary.NumberColumns = append(summary.NumberColumns, col)
		}
		if colType == ColumnDate || NameMatches(col, cs.lexicon.TimeColumns) {
			summary.DateLikeColumns = append(summary.DateLikeColumns, col)
		}
	}

	switch {
	case len(summary.Categorical) > 0:
		summary.CategoryColumn = summary.Categorical[0]
	case len(summary.StringColumns) > 0:
		summary.CategoryColumn = summary.StringColumns[0]
	case len(summary.DateLikeColumns) > 0:
		summary.CategoryColumn = summary.DateLikeColumns[0]
	}

	return summary
}

func isCategorical(distinct int) bool {
	return distinct >= minCategoryCardinality && distinct <= maxCategoryCardinality
}

// distinctCount counts distinct non-absent display values in a column.
func distinctCount(ds Dataset, column string) int {
	seen := make(map[string]struct{})
	for _, row := range ds {
		v := row.Get(column)
		if v.IsAbsent() {
			continue
		}
		seen[v.Text()] = struct{}{}
	}
	return len(seen)
}
