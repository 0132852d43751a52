// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"math"
)

// Value formats understood by renderers.
const (
	FormatPlain   = "plain"
	FormatPercent = "percent"
)

// Growth KPI directions and their indicators.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionFlat = "flat"
)

// GrowthSeriesName names the series appended by ApplyGrowth.
const GrowthSeriesName = "Growth %"

// ApplyPercentOfTotal rewrites values as percentages. Multi-series bar charts
// are normalized per label across series; single-series pie and bar charts are
// normalized against their own total. Other charts are returned unchanged.
// The input is never modified.
func ApplyPercentOfTotal(cfg ChartConfig) ChartConfig {
	out := cfg.Clone()

	switch data := out.Data.(type) {
	case *PieData:
		data.Series.Values = normalizeGroup(data.Series.Values)
		data.Series.ValueFormat = FormatPercent
	case *CartesianData:
		if out.Type != ChartTypeBar || len(data.Series) == 0 {
			return out
		}
		if len(data.Series) == 1 {
			data.Series[0].Values = normalizeGroup(data.Series[0].Values)
			data.Series[0].ValueFormat = FormatPercent
			out.Options.YAxis.Format = FormatPercent
			break
		}
		for i := range data.Labels {
			column := make([]*float64, len(data.Series))
			for s := range data.Series {
				column[s] = valueAt(data.Series[s].Values, i)
			}
			column = normalizeGroup(column)
			for s := range data.Series {
				if i < len(data.Series[s].Values) {
					data.Series[s].Values[i] = column[s]
				}
			}
		}
		for s := range data.Series {
			data.Series[s].ValueFormat = FormatPercent
		}
		hundred := 100.0
		out.Options.Stacked = true
		out.Options.YAxis.Max = &hundred
		out.Options.YAxis.Format = FormatPercent
	default:
		return out
	}

	out.Options.Tooltip.Format = FormatPercent
	out.Options.Tooltip.Suffix = "%"
	out.Options.Tooltip.Decimals = 2
	return out
}

// normalizeGroup converts values to shares of their sum, rounded to two
// decimals, giving the rounding remainder to the largest share so the group
// totals exactly 100. Nil entries stay nil; a zero total leaves zeros.
func normalizeGroup(values []*float64) []*float64 {
	total := 0.0
	for _, v := range values {
		if v != nil {
			total += *v
		}
	}

	out := make([]*float64, len(values))
	if total == 0 {
		for i, v := range values {
			if v != nil {
				zero := 0.0
				out[i] = &zero
			}
		}
		return out
	}

	largest := -1
	sum := 0.0
	for i, v := range values {
		if v == nil {
			continue
		}
		share := round2(*v / total * 100)
		out[i] = &share
		sum += share
		if largest < 0 || *v > *values[largest] {
			largest = i
		}
	}
	if largest >= 0 {
		adjusted := round2(*out[largest] + (100 - sum))
		out[largest] = &adjusted
	}
	return out
}

// ApplyGrowth appends a period-over-period growth series on a secondary
// axis and a KPI card for the last period. Only line and area charts
// change. The input is never modified.
func ApplyGrowth(cfg ChartConfig) ChartConfig {
	out := cfg.Clone()
	if out.Type != ChartTypeLine && out.Type != ChartTypeArea {
		return out
	}
	data, ok := out.Data.(*CartesianData)
	if !ok || len(data.Series) == 0 {
		return out
	}

	primary := data.Series[0]
	growth := GrowthRates(primary.Values)

	data.Series = append(data.Series, Series{
		Name:        GrowthSeriesName,
		Values:      growth,
		Color:       PaletteColor(len(data.Series)),
		YAxisIndex:  1,
		Dashed:      true,
		ValueFormat: FormatPercent,
	})
	out.Options.ShowLegend = true
	out.Options.SecondaryAxis = &Axis{Title: GrowthSeriesName, Format: FormatPercent}

	if card, ok := growthCard(primary.Name, data.Labels, primary.Values, growth); ok {
		cards := append(out.Metadata.KPIs(), card)
		out.Metadata = out.Metadata.With(MetaKPIs, cards)
	}
	return out
}

// GrowthRates returns round2((v[i]-v[i-1])/v[i-1]*100) for each point, nil
// for the first point and wherever the previous value is zero or missing.
func GrowthRates(values []*float64) []*float64 {
	out := make([]*float64, len(values))
	for i := 1; i < len(values); i++ {
		prev, cur := values[i-1], values[i]
		if prev == nil || cur == nil || *prev == 0 {
			continue
		}
		g := round2((*cur - *prev) / *prev * 100)
		out[i] = &g
	}
	return out
}

func growthCard(name string, labels []string, values, growth []*float64) (KPICard, bool) {
	n := len(values)
	if n < 2 || values[n-1] == nil || values[n-2] == nil {
		return KPICard{}, false
	}
	cur, prev := *values[n-1], *values[n-2]
	delta := round2(cur - prev)

	card := KPICard{
		Label:    name,
		Value:    cur,
		Previous: prev,
		Delta:    delta,
	}
	if n-1 < len(labels) {
		card.Period = labels[n-1]
	}
	if g := growth[n-1]; g != nil {
		pct := *g
		card.DeltaPercent = &pct
	}
	switch {
	case delta > 0:
		card.Direction, card.Indicator = DirectionUp, "▲"
	case delta < 0:
		card.Direction, card.Indicator = DirectionDown, "▼"
	default:
		card.Direction, card.Indicator = DirectionFlat, "■"
	}
	return card, true
}

func valueAt(values []*float64, i int) *float64 {
	if i < 0 || i >= len(values) {
		return nil
	}
	return values[i]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
