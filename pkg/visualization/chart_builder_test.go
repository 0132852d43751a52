// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, chartType ChartType, ds Dataset) ChartConfig {
	t.Helper()
	structure := NewDataStructureAnalyzer(nil).Analyze(ds)
	summary := NewColumnSummarizer(nil).Summarize(ds, structure)
	return NewChartConfigBuilder(nil).Build(chartType, ds, structure, summary)
}

func values(s Series) []float64 {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}

func TestChartConfigBuilder_ResolveFields(t *testing.T) {
	tests := []struct {
		name string
		ds   Dataset
		want Fields
	}{
		{
			name: "geo category and value-named measure",
			ds: Dataset{
				NewRow("product", "A", "country", "BR", "units", 1, "amount", 2),
				NewRow("product", "B", "country", "US", "units", 3, "amount", 4),
			},
			want: Fields{Category: "country", Value: "amount", Series: "product"},
		},
		{
			name: "time category",
			ds:   monthlySales(),
			want: Fields{Category: "month", Value: "total"},
		},
		{
			name: "first number when none is value-named",
			ds: Dataset{
				NewRow("name", "x", "score", 1, "rank", 2),
				NewRow("name", "y", "score", 3, "rank", 4),
			},
			want: Fields{Category: "name", Value: "score"},
		},
		{
			name: "no numbers uses second column",
			ds: Dataset{
				NewRow("a", "x", "b", "y"),
				NewRow("a", "z", "b", "w"),
			},
			want: Fields{Category: "a", Value: "b", Series: ""},
		},
		{
			name: "empty",
			ds:   Dataset{},
			want: Fields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			structure := NewDataStructureAnalyzer(nil).Analyze(tt.ds)
			summary := NewColumnSummarizer(nil).Summarize(tt.ds, structure)
			assert.Equal(t, tt.want, NewChartConfigBuilder(nil).ResolveFields(structure, summary))
		})
	}
}

func TestChartConfigBuilder_Aggregation(t *testing.T) {
	ds := Dataset{
		NewRow("region", "South", "total", 5),
		NewRow("region", "North", "total", 10),
		NewRow("region", "South", "total", "7"),
		NewRow("region", "East", "total", "n/a"),
		NewRow("region", "North", "total", nil),
	}

	cfg := build(t, ChartTypeBar, ds)
	data, ok := cfg.Cartesian()
	require.True(t, ok)

	assert.Equal(t, []string{"South", "North", "East"}, data.Labels)
	require.Len(t, data.Series, 1)
	assert.Equal(t, []float64{12, 10, 0}, values(data.Series[0]))
	assert.Equal(t, "total by region", cfg.Options.Title)
	assert.True(t, cfg.Options.YAxis.BeginAtZero)
	assert.False(t, cfg.Options.ShowLegend)
	assert.Equal(t, SeriesPalette[0], data.Series[0].Color)
}

func TestChartConfigBuilder_MonthOrdering(t *testing.T) {
	ds := Dataset{
		NewRow("month", "Mar", "total", 3),
		NewRow("month", "Jan", "total", 1),
		NewRow("month", "Fev", "total", 2),
	}

	data, ok := build(t, ChartTypeLine, ds).Cartesian()
	require.True(t, ok)
	assert.Equal(t, []string{"Jan", "Fev", "Mar"}, data.Labels)
	assert.Equal(t, []float64{1, 2, 3}, values(data.Series[0]))
}

func TestChartConfigBuilder_MonthOrderingFullYear(t *testing.T) {
	shuffled := []string{
		"DEZEMBRO", "março", "Jul", "fevereiro", "NOV", "Abril",
		"june", "Setembro", "AGOSTO", "outubro", "Maio", "Janeiro",
	}
	ds := make(Dataset, 0, len(shuffled))
	for _, label := range shuffled {
		ds = append(ds, NewRow("month", label, "total", DefaultLexicon().MonthIndex(label)+1))
	}

	data, ok := build(t, ChartTypeLine, ds).Cartesian()
	require.True(t, ok)
	assert.Equal(t, []string{
		"Janeiro", "fevereiro", "março", "Abril", "Maio", "june",
		"Jul", "AGOSTO", "Setembro", "outubro", "NOV", "DEZEMBRO",
	}, data.Labels)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, values(data.Series[0]))
}

func TestChartConfigBuilder_NoReorderWithNonMonthLabel(t *testing.T) {
	ds := Dataset{
		NewRow("month", "Mar", "total", 3),
		NewRow("month", "Jan", "total", 1),
		NewRow("month", "Total", "total", 4),
	}

	data, ok := build(t, ChartTypeLine, ds).Cartesian()
	require.True(t, ok)
	assert.Equal(t, []string{"Mar", "Jan", "Total"}, data.Labels)
}

func TestChartConfigBuilder_MultiSeriesPivot(t *testing.T) {
	ds := Dataset{
		NewRow("region", "North", "product", "A", "sales", 1),
		NewRow("region", "North", "product", "B", "sales", 2),
		NewRow("region", "South", "product", "A", "sales", 3),
		NewRow("region", "North", "product", "A", "sales", 4),
	}

	cfg := build(t, ChartTypeBar, ds)
	data, ok := cfg.Cartesian()
	require.True(t, ok)

	assert.Equal(t, []string{"North", "South"}, data.Labels)
	require.Len(t, data.Series, 2)
	assert.Equal(t, "A", data.Series[0].Name)
	assert.Equal(t, []float64{5, 3}, values(data.Series[0]))
	assert.Equal(t, "B", data.Series[1].Name)
	assert.Equal(t, []float64{2, 0}, values(data.Series[1]))
	assert.Equal(t, SeriesPalette[1], data.Series[1].Color)
	assert.True(t, cfg.Options.ShowLegend)
}

func TestChartConfigBuilder_HorizontalBarSortsDescending(t *testing.T) {
	ds := Dataset{
		NewRow("product", "A", "sales", 5),
		NewRow("product", "B", "sales", 20),
		NewRow("product", "C", "sales", 12),
	}

	cfg := build(t, ChartTypeHorizontalBar, ds)
	data, ok := cfg.Cartesian()
	require.True(t, ok)
	assert.Equal(t, []string{"B", "C", "A"}, data.Labels)
	assert.Equal(t, []float64{20, 12, 5}, values(data.Series[0]))
	assert.True(t, cfg.Options.Horizontal)
}

func TestChartConfigBuilder_Pie(t *testing.T) {
	cfg := build(t, ChartTypePie, regionSales())
	data, ok := cfg.Pie()
	require.True(t, ok)
	assert.Equal(t, []string{"North", "South"}, data.Labels)
	assert.Equal(t, []float64{10, 12}, values(data.Series))
	assert.Equal(t, []string{SeriesPalette[0], SeriesPalette[1]}, data.Series.Colors)
	assert.True(t, cfg.Options.ShowLegend)
}

func TestChartConfigBuilder_PaletteWraps(t *testing.T) {
	var ds Dataset
	labels := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10", "a11", "a12"}
	for _, l := range labels {
		ds = append(ds, NewRow("segment", l, "v", 1))
	}
	data, ok := build(t, ChartTypePie, ds).Pie()
	require.True(t, ok)
	require.Len(t, data.Series.Colors, 12)
	assert.Equal(t, data.Series.Colors[0], data.Series.Colors[10])
	assert.Equal(t, data.Series.Colors[1], data.Series.Colors[11])
}

func TestChartConfigBuilder_Scatter(t *testing.T) {
	ds := Dataset{
		NewRow("name", "x", "price", 1.5, "volume", 10),
		NewRow("name", "y", "price", 2.5, "volume", 7),
	}

	cfg := build(t, ChartTypeScatter, ds)
	data, ok := cfg.Scatter()
	require.True(t, ok)
	assert.Equal(t, "price", data.XField)
	assert.Equal(t, "volume", data.YField)
	require.Len(t, data.Series, 1)
	assert.Equal(t, []Point{{X: 1.5, Y: 10, Label: "x"}, {X: 2.5, Y: 7, Label: "y"}}, data.Series[0].Points)
}

func TestChartConfigBuilder_ScatterFallback(t *testing.T) {
	data, ok := build(t, ChartTypeScatter, regionSales()).Scatter()
	require.True(t, ok)
	assert.Equal(t, "index", data.XField)
	assert.Equal(t, []Point{{X: 0, Y: 10, Label: "North"}, {X: 1, Y: 12, Label: "South"}}, data.Series[0].Points)
}

func TestChartConfigBuilder_Table(t *testing.T) {
	ds := Dataset{
		NewRow("region", "North", "total", 10),
		NewRow("total", 12, "region", "South"),
	}

	data, ok := build(t, ChartTypeTable, ds).Table()
	require.True(t, ok)
	assert.Equal(t, []string{"region", "total"}, data.Columns)
	assert.Equal(t, [][]Value{
		{String("North"), Number(10)},
		{String("South"), Number(12)},
	}, data.Rows)
}

func TestChartConfigBuilder_Map(t *testing.T) {
	data, ok := build(t, ChartTypeMap, regionSales()).Map()
	require.True(t, ok)
	assert.Equal(t, "region", data.RegionField)
	assert.Equal(t, []string{"North", "South"}, data.Labels)
	assert.Equal(t, []float64{10, 12}, values(data.Series))
}

func TestChartConfigBuilder_EmptyDataset(t *testing.T) {
	for _, ct := range AllChartTypes {
		t.Run(string(ct), func(t *testing.T) {
			cfg := build(t, ct, Dataset{})
			assert.Equal(t, ct, cfg.Type)
			assert.NotNil(t, cfg.Data)
		})
	}
}
