// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"
	"sort"
)

// ChartConfigBuilder turns a dataset into a renderable ChartConfig for one
// chart type.
type ChartConfigBuilder struct {
	lexicon *Lexicon
}

// NewChartConfigBuilder creates a builder.
func NewChartConfigBuilder(lexicon *Lexicon) *ChartConfigBuilder {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &ChartConfigBuilder{lexicon: lexicon}
}

// Fields names the columns a chart is built from.
type Fields struct {
	Category string `json:"category"` // label axis
	Value    string `json:"value"`    // measured column
	Series   string `json:"series"`   // optional second category; one series per distinct value
}

// ResolveFields picks the category, value and series columns for a dataset.
func (b *ChartConfigBuilder) ResolveFields(structure DataStructure, summary ColumnSummary) Fields {
	f := Fields{
		Category: b.categoryColumn(structure),
		Value:    b.valueColumn(structure),
	}
	for _, col := range summary.Categorical {
		if col != f.Category && col != f.Value {
			f.Series = col
			break
		}
	}
	return f
}

// categoryColumn: geo name → time name → date type → string type → first column.
func (b *ChartConfigBuilder) categoryColumn(structure DataStructure) string {
	cols := structure.Columns
	for _, c := range cols {
		if NameMatches(c, b.lexicon.GeoColumns) {
			return c
		}
	}
	for _, c := range cols {
		if NameMatches(c, b.lexicon.TimeColumns) {
			return c
		}
	}
	if dates := structure.ColumnsOfType(ColumnDate); len(dates) > 0 {
		return dates[0]
	}
	if strs := structure.ColumnsOfType(ColumnString); len(strs) > 0 {
		return strs[0]
	}
	if len(cols) > 0 {
		return cols[0]
	}
	return ""
}

// valueColumn: value-named number → first number → second column → first column.
func (b *ChartConfigBuilder) valueColumn(structure DataStructure) string {
	numbers := structure.ColumnsOfType(ColumnNumber)
	for _, c := range numbers {
		if NameMatches(c, b.lexicon.ValueColumns) {
			return c
		}
	}
	if len(numbers) > 0 {
		return numbers[0]
	}
	switch {
	case len(structure.Columns) > 1:
		return structure.Columns[1]
	case len(structure.Columns) == 1:
		return structure.Columns[0]
	}
	return ""
}

// Build creates the chart configuration for chartType.
func (b *ChartConfigBuilder) Build(chartType ChartType, ds Dataset, structure DataStructure, summary ColumnSummary) ChartConfig {
	fields := b.ResolveFields(structure, summary)

	switch chartType {
	case ChartTypeBar:
		return b.buildBar(ds, fields)
	case ChartTypeHorizontalBar:
		return b.buildHorizontalBar(ds, fields)
	case ChartTypeLine:
		return b.buildLine(ds, fields, structure)
	case ChartTypeArea:
		return b.buildArea(ds, fields, structure)
	case ChartTypePie:
		return b.buildPie(ds, fields)
	case ChartTypeScatter:
		return b.buildScatter(ds, fields, summary)
	case ChartTypeMap:
		return b.buildMap(ds, fields)
	case ChartTypeTable:
		return b.buildTable(ds, structure)
	default:
		return b.buildTable(ds, structure)
	}
}

func (b *ChartConfigBuilder) buildBar(ds Dataset, f Fields) ChartConfig {
	data := b.cartesian(ds, f)
	for i := range data.Series {
		data.Series[i].FillColor = translucent(data.Series[i].Color, 0.85)
	}
	return ChartConfig{
		Type: ChartTypeBar,
		Data: data,
		Options: Options{
			Title:      fmt.Sprintf("%s by %s", displayName(f.Value, "Value"), displayName(f.Category, "Category")),
			ShowLegend: len(data.Series) > 1,
			XAxis:      Axis{Title: f.Category},
			YAxis:      Axis{Title: f.Value, BeginAtZero: true},
			Tooltip:    Tooltip{Format: "plain", Decimals: 2},
		},
	}
}

func (b *ChartConfigBuilder) buildHorizontalBar(ds Dataset, f Fields) ChartConfig {
	labels, values := b.aggregate(ds, f.Category, f.Value)
	order := make([]int, len(labels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return values[order[i]] > values[order[j]] })

	sortedLabels := make([]string, len(order))
	sortedValues := make([]float64, len(order))
	for i, idx := range order {
		sortedLabels[i] = labels[idx]
		sortedValues[i] = values[idx]
	}

	color := PaletteColor(0)
	data := &CartesianData{
		Labels: sortedLabels,
		Series: []Series{{
			Name:      displayName(f.Value, "Value"),
			Values:    floatPtrs(sortedValues),
			Color:     color,
			FillColor: translucent(color, 0.85),
		}},
	}
	return ChartConfig{
		Type: ChartTypeHorizontalBar,
		Data: data,
		Options: Options{
			Title:      fmt.Sprintf("%s ranked by %s", displayName(f.Category, "Category"), displayName(f.Value, "Value")),
			Horizontal: true,
			XAxis:      Axis{Title: f.Value, BeginAtZero: true},
			YAxis:      Axis{Title: f.Category},
			Tooltip:    Tooltip{Format: "plain", Decimals: 2},
		},
	}
}

func (b *ChartConfigBuilder) buildLine(ds Dataset, f Fields, structure DataStructure) ChartConfig {
	data := b.cartesian(ds, f)
	return ChartConfig{
		Type: ChartTypeLine,
		Data: data,
		Options: Options{
			Title:      b.overTitle(f, structure),
			ShowLegend: len(data.Series) > 1,
			XAxis:      Axis{Title: f.Category},
			YAxis:      Axis{Title: f.Value},
			Tooltip:    Tooltip{Format: "plain", Decimals: 2},
		},
	}
}

func (b *ChartConfigBuilder) buildArea(ds Dataset, f Fields, structure DataStructure) ChartConfig {
	data := b.cartesian(ds, f)
	for i := range data.Series {
		data.Series[i].FillColor = translucent(data.Series[i].Color, 0.3)
	}
	return ChartConfig{
		Type: ChartTypeArea,
		Data: data,
		Options: Options{
			Title:      b.overTitle(f, structure),
			ShowLegend: len(data.Series) > 1,
			Stacked:    len(data.Series) > 1,
			XAxis:      Axis{Title: f.Category},
			YAxis:      Axis{Title: f.Value, BeginAtZero: true},
			Tooltip:    Tooltip{Format: "plain", Decimals: 2},
		},
	}
}

func (b *ChartConfigBuilder) buildPie(ds Dataset, f Fields) ChartConfig {
	labels, values := b.aggregate(ds, f.Category, f.Value)
	colors := make([]string, len(labels))
	for i := range labels {
		colors[i] = PaletteColor(i)
	}
	return ChartConfig{
		Type: ChartTypePie,
		Data: &PieData{
			Labels: labels,
			Series: Series{
				Name:   displayName(f.Value, "Value"),
				Values: floatPtrs(values),
				Color:  PaletteColor(0),
				Colors: colors,
			},
		},
		Options: Options{
			Title:      fmt.Sprintf("%s share by %s", displayName(f.Value, "Value"), displayName(f.Category, "Category")),
			ShowLegend: true,
			Tooltip:    Tooltip{Format: "plain", Decimals: 2},
		},
	}
}

func (b *ChartConfigBuilder) buildScatter(ds Dataset, f Fields, summary ColumnSummary) ChartConfig {
	data := &ScatterData{}
	color := PaletteColor(0)

	if len(summary.NumberColumns) >= 2 {
		x, y := summary.NumberColumns[0], summary.NumberColumns[1]
		labelCol := f.Category
		if labelCol == x || labelCol == y {
			labelCol = ""
		}
		points := make([]Point, 0, len(ds))
		for _, row := range ds {
			p := Point{X: row.Get(x).Float(), Y: row.Get(y).Float()}
			if labelCol != "" {
				p.Label = row.Get(labelCol).Text()
			}
			points = append(points, p)
		}
		data.XField, data.YField = x, y
		data.Series = []PointSeries{{Name: fmt.Sprintf("%s vs %s", y, x), Points: points, Color: color}}
	} else {
		labels, values := b.aggregate(ds, f.Category, f.Value)
		points := make([]Point, len(labels))
		for i := range labels {
			points[i] = Point{X: float64(i), Y: values[i], Label: labels[i]}
		}
		data.XField, data.YField = "index", f.Value
		data.Series = []PointSeries{{Name: displayName(f.Value, "Value"), Points: points, Color: color}}
	}

	return ChartConfig{
		Type: ChartTypeScatter,
		Data: data,
		Options: Options{
			Title:   fmt.Sprintf("%s vs %s", displayName(data.YField, "Value"), displayName(data.XField, "Index")),
			XAxis:   Axis{Title: data.XField},
			YAxis:   Axis{Title: data.YField},
			Tooltip: Tooltip{Format: "plain", Decimals: 2},
		},
	}
}

func (b *ChartConfigBuilder) buildMap(ds Dataset, f Fields) ChartConfig {
	labels, values := b.aggregate(ds, f.Category, f.Value)
	return ChartConfig{
		Type: ChartTypeMap,
		Data: &MapData{
			RegionField: f.Category,
			Labels:      labels,
			Series: Series{
				Name:   displayName(f.Value, "Value"),
				Values: floatPtrs(values),
				Color:  PaletteColor(0),
			},
		},
		Options: Options{
			Title:   fmt.Sprintf("%s by %s", displayName(f.Value, "Value"), displayName(f.Category, "Region")),
			Tooltip: Tooltip{Format: "plain", Decimals: 2},
		},
	}
}

func (b *ChartConfigBuilder) buildTable(ds Dataset, structure DataStructure) ChartConfig {
	columns := append([]string{}, structure.Columns...)
	rows := make([][]Value, 0, len(ds))
	for _, row := range ds {
		cells := make([]Value, len(columns))
		for i, c := range columns {
			cells[i] = row.Get(c)
		}
		rows = append(rows, cells)
	}
	return ChartConfig{
		Type: ChartTypeTable,
		Data: &TableData{Columns: columns, Rows: rows},
		Options: Options{
			Title:   "Data table",
			Tooltip: Tooltip{Format: "plain"},
		},
	}
}

func (b *ChartConfigBuilder) overTitle(f Fields, structure DataStructure) string {
	if structure.TypeOf(f.Category) == ColumnDate || NameMatches(f.Category, b.lexicon.TimeColumns) {
		return fmt.Sprintf("%s over %s", displayName(f.Value, "Value"), displayName(f.Category, "Time"))
	}
	return fmt.Sprintf("%s by %s", displayName(f.Value, "Value"), displayName(f.Category, "Category"))
}

// cartesian aggregates the value column by category, pivoting into one
// series per distinct series-column value when a series column is set.
func (b *ChartConfigBuilder) cartesian(ds Dataset, f Fields) *CartesianData {
	if f.Series == "" {
		labels, values := b.aggregate(ds, f.Category, f.Value)
		return &CartesianData{
			Labels: labels,
			Series: []Series{{
				Name:   displayName(f.Value, "Value"),
				Values: floatPtrs(values),
				Color:  PaletteColor(0),
			}},
		}
	}

	labels, names, matrix := b.pivot(ds, f.Category, f.Series, f.Value)
	series := make([]Series, len(names))
	for i, name := range names {
		series[i] = Series{
			Name:   name,
			Values: floatPtrs(matrix[i]),
			Color:  PaletteColor(i),
		}
	}
	return &CartesianData{Labels: labels, Series: series}
}

// aggregate sums value per category in first-seen order, then reorders
// chronologically when every label is a month name.
func (b *ChartConfigBuilder) aggregate(ds Dataset, category, value string) ([]string, []float64) {
	labels := []string{}
	var sums []float64
	index := make(map[string]int)

	for _, row := range ds {
		key := row.Get(category).Text()
		i, ok := index[key]
		if !ok {
			i = len(labels)
			index[key] = i
			labels = append(labels, key)
			sums = append(sums, 0)
		}
		sums[i] += row.Get(value).Float()
	}
	if sums == nil {
		sums = []float64{}
	}

	if order := b.monthOrder(labels); order != nil {
		labels = permuteStrings(labels, order)
		sums = permuteFloats(sums, order)
	}
	return labels, sums
}

// pivot sums value per (series, category) cell. Categories and series names
// keep first-seen order; missing cells are 0.
func (b *ChartConfigBuilder) pivot(ds Dataset, category, seriesCol, value string) ([]string, []string, [][]float64) {
	labels := []string{}
	names := []string{}
	labelIdx := make(map[string]int)
	nameIdx := make(map[string]int)
	cells := make(map[[2]int]float64)

	for _, row := range ds {
		lk := row.Get(category).Text()
		li, ok := labelIdx[lk]
		if !ok {
			li = len(labels)
			labelIdx[lk] = li
			labels = append(labels, lk)
		}
		sk := row.Get(seriesCol).Text()
		si, ok := nameIdx[sk]
		if !ok {
			si = len(names)
			nameIdx[sk] = si
			names = append(names, sk)
		}
		cells[[2]int{si, li}] += row.Get(value).Float()
	}

	matrix := make([][]float64, len(names))
	for si := range names {
		matrix[si] = make([]float64, len(labels))
		for li := range labels {
			matrix[si][li] = cells[[2]int{si, li}]
		}
	}

	if order := b.monthOrder(labels); order != nil {
		labels = permuteStrings(labels, order)
		for si := range matrix {
			matrix[si] = permuteFloats(matrix[si], order)
		}
	}
	return labels, names, matrix
}

// monthOrder returns the chronological permutation of labels, or nil when
// any label is not a month name.
func (b *ChartConfigBuilder) monthOrder(labels []string) []int {
	if len(labels) == 0 {
		return nil
	}
	months := make([]int, len(labels))
	for i, l := range labels {
		m := b.lexicon.MonthIndex(l)
		if m < 0 {
			return nil
		}
		months[i] = m
	}
	order := make([]int, len(labels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return months[order[i]] < months[order[j]] })
	return order
}

func permuteStrings(in []string, order []int) []string {
	out := make([]string, len(order))
	for i, idx := range order {
		out[i] = in[idx]
	}
	return out
}

func permuteFloats(in []float64, order []int) []float64 {
	out := make([]float64, len(order))
	for i, idx := range order {
		out[i] = in[idx]
	}
	return out
}

func floatPtrs(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		v := values[i]
		out[i] = &v
	}
	return out
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
