// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEChartsGenerator_Generate(t *testing.T) {
	gen := NewEChartsGenerator(nil)
	engine := NewEngine(nil)

	tests := []struct {
		name       string
		chartType  ChartType
		ds         Dataset
		seriesType string
	}{
		{"bar", ChartTypeBar, regionSales(), "bar"},
		{"horizontal bar", ChartTypeHorizontalBar, regionSales(), "bar"},
		{"line", ChartTypeLine, monthlySales(), "line"},
		{"area", ChartTypeArea, monthlySales(), "line"},
		{"pie", ChartTypePie, regionSales(), "pie"},
		{"scatter", ChartTypeScatter, regionSales(), "scatter"},
		{"map", ChartTypeMap, regionSales(), "map"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := engine.Explain(tt.ds, "")
			cfg := engine.builder.Build(tt.chartType, tt.ds, analysis.Structure, analysis.Summary)

			out, err := gen.Generate(cfg)
			require.NoError(t, err)

			var option map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(out), &option))

			series, ok := option["series"].([]interface{})
			require.True(t, ok)
			require.NotEmpty(t, series)
			first := series[0].(map[string]interface{})
			assert.Equal(t, tt.seriesType, first["type"])

			title := option["title"].(map[string]interface{})
			assert.Equal(t, cfg.Options.Title, title["text"])
		})
	}
}

func TestEChartsGenerator_HorizontalSwapsAxes(t *testing.T) {
	cfg := build(t, ChartTypeHorizontalBar, regionSales())
	option, err := NewEChartsGenerator(nil).Option(cfg)
	require.NoError(t, err)

	yAxis, ok := option["yAxis"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "category", yAxis["type"])
	assert.Equal(t, []string{"South", "North"}, yAxis["data"])
}

func TestEChartsGenerator_GrowthUsesSecondaryAxis(t *testing.T) {
	cfg := ApplyGrowth(build(t, ChartTypeLine, monthlySales()))
	option, err := NewEChartsGenerator(nil).Option(cfg)
	require.NoError(t, err)

	axes, ok := option["yAxis"].([]interface{})
	require.True(t, ok)
	assert.Len(t, axes, 2)

	series := option["series"].([]interface{})
	require.Len(t, series, 2)
	growth := series[1].(map[string]interface{})
	assert.Equal(t, 1, growth["yAxisIndex"])
	assert.Nil(t, growth["data"].([]interface{})[0])
	assert.Contains(t, option, "legend")
}

func TestEChartsGenerator_PercentAxis(t *testing.T) {
	cfg := ApplyPercentOfTotal(build(t, ChartTypeBar, regionSales()))
	option, err := NewEChartsGenerator(nil).Option(cfg)
	require.NoError(t, err)

	tooltip := option["tooltip"].(map[string]interface{})
	assert.Equal(t, "%", tooltip["valueSuffix"])
}

func TestEChartsGenerator_TableAndNil(t *testing.T) {
	gen := NewEChartsGenerator(GetThemeVariant("light"))

	option, err := gen.Option(build(t, ChartTypeTable, regionSales()))
	require.NoError(t, err)
	dataset := option["dataset"].(map[string]interface{})
	source := dataset["source"].([]interface{})
	assert.Len(t, source, 3)
	assert.Equal(t, "#ffffff", option["backgroundColor"])

	_, err = gen.Option(ChartConfig{Type: ChartTypeBar})
	assert.Error(t, err)
}
