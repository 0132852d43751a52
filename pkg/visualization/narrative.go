// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	// ErrNoSeries is returned when a chart carries no data series.
	ErrNoSeries = errors.New("chart has no data series")
	// ErrNoNumericValues is returned when the primary series is empty.
	ErrNoNumericValues = errors.New("primary series has no numeric values")
)

// narrativeSource is the slice of a chart the narrative describes.
type narrativeSource struct {
	labels  []string
	primary Series
	second  *Series
	format  string
}

// ApplyNarrative returns a copy of cfg with a summary sentence stored under
// the narrative metadata key. On error cfg is returned unchanged with the error.
func ApplyNarrative(cfg ChartConfig, rowCount int) (ChartConfig, error) {
	text, err := BuildNarrative(cfg, rowCount)
	if err != nil {
		return cfg, err
	}
	out := cfg.Clone()
	out.Metadata = out.Metadata.With(MetaNarrative, text)
	return out, nil
}

// BuildNarrative summarizes the chart's primary series.
func BuildNarrative(cfg ChartConfig, rowCount int) (string, error) {
	src, err := narrativeSourceOf(cfg)
	if err != nil {
		return "", err
	}

	type point struct {
		label string
		value float64
	}
	var points []point
	for i, v := range src.primary.Values {
		if v == nil {
			continue
		}
		label := ""
		if i < len(src.labels) {
			label = src.labels[i]
		}
		points = append(points, point{label: label, value: *v})
	}
	if len(points) == 0 {
		return "", ErrNoNumericValues
	}

	maxP, minP := points[0], points[0]
	sum := 0.0
	for _, p := range points {
		sum += p.value
		if p.value > maxP.value {
			maxP = p
		}
		if p.value < minP.value {
			minP = p
		}
	}
	mean := sum / float64(len(points))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Across %d rows and %d labels, %s averages %s.",
		rowCount, len(src.labels), src.primary.Name, formatValue(mean, src.format))
	fmt.Fprintf(&sb, " The highest value is %s (%s) and the lowest is %s (%s).",
		formatValue(maxP.value, src.format), labelOrDash(maxP.label),
		formatValue(minP.value, src.format), labelOrDash(minP.label))

	if src.second != nil {
		a, b := src.primary.Sum(), src.second.Sum()
		fmt.Fprintf(&sb, " Comparing %s and %s, %s totals %s against %s.",
			src.primary.Name, src.second.Name, src.primary.Name,
			formatValue(a, src.format), formatValue(b, src.format))
	}

	for _, card := range cfg.Metadata.KPIs() {
		if card.DeltaPercent != nil {
			fmt.Fprintf(&sb, " %s %s %s%% in %s versus the previous period.",
				card.Indicator, card.Label, signed(*card.DeltaPercent), labelOrDash(card.Period))
		} else {
			fmt.Fprintf(&sb, " %s %s changed by %s in %s versus the previous period.",
				card.Indicator, card.Label, signed(card.Delta), labelOrDash(card.Period))
		}
	}

	return sb.String(), nil
}

func narrativeSourceOf(cfg ChartConfig) (narrativeSource, error) {
	switch data := cfg.Data.(type) {
	case *CartesianData:
		var primary []Series
		for _, s := range data.Series {
			if s.YAxisIndex == 0 {
				primary = append(primary, s)
			}
		}
		if len(primary) == 0 {
			return narrativeSource{}, ErrNoSeries
		}
		src := narrativeSource{labels: data.Labels, primary: primary[0], format: primary[0].ValueFormat}
		if len(primary) >= 2 {
			second := primary[1]
			src.second = &second
		}
		return src, nil
	case *PieData:
		return narrativeSource{labels: data.Labels, primary: data.Series, format: data.Series.ValueFormat}, nil
	case *MapData:
		return narrativeSource{labels: data.Labels, primary: data.Series, format: data.Series.ValueFormat}, nil
	case *ScatterData:
		if len(data.Series) == 0 {
			return narrativeSource{}, ErrNoSeries
		}
		ps := data.Series[0]
		labels := make([]string, len(ps.Points))
		ys := make([]float64, len(ps.Points))
		for i, p := range ps.Points {
			labels[i] = p.Label
			if labels[i] == "" {
				labels[i] = strconv.FormatFloat(p.X, 'f', -1, 64)
			}
			ys[i] = p.Y
		}
		name := data.YField
		if name == "" {
			name = ps.Name
		}
		return narrativeSource{labels: labels, primary: Series{Name: name, Values: floatPtrs(ys)}}, nil
	default:
		return narrativeSource{}, ErrNoSeries
	}
}

func formatValue(v float64, format string) string {
	s := humanize.CommafWithDigits(round2(v), 2)
	if format == FormatPercent {
		return s + "%"
	}
	return s
}

func signed(v float64) string {
	s := humanize.CommafWithDigits(round2(v), 2)
	if v > 0 {
		return "+" + s
	}
	return s
}

func labelOrDash(label string) string {
	if label == "" {
		return "-"
	}
	return label
}
