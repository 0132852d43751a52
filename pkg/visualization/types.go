// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ChartType represents the type of visualization
type ChartType string

const (
	ChartTypeBar           ChartType = "bar"
	ChartTypeLine          ChartType = "line"
	ChartTypePie           ChartType = "pie"
	ChartTypeArea          ChartType = "area"
	ChartTypeScatter       ChartType = "scatter"
	ChartTypeHorizontalBar ChartType = "horizontal_bar"
	ChartTypeTable         ChartType = "table"
	ChartTypeMap           ChartType = "map"
)

// AllChartTypes lists every supported chart type.
var AllChartTypes = []ChartType{
	ChartTypeBar,
	ChartTypeLine,
	ChartTypePie,
	ChartTypeArea,
	ChartTypeScatter,
	ChartTypeHorizontalBar,
	ChartTypeTable,
	ChartTypeMap,
}

// Valid reports whether t is one of the supported chart types.
func (t ChartType) Valid() bool {
	for _, known := range AllChartTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ChartData is the type-specific payload of a chart configuration.
// Implementations: *CartesianData, *PieData, *ScatterData, *TableData, *MapData.
type ChartData interface {
	dataKind() string
	clone() ChartData
}

// Series is a named sequence of values aligned with the chart labels.
// Nil entries are gaps (for example the first growth point).
type Series struct {
	Name        string     `json:"name"`
	Values      []*float64 `json:"values"`
	Color       string     `json:"color"`
	FillColor   string     `json:"fillColor,omitempty"`
	Colors      []string   `json:"colors,omitempty"`
	YAxisIndex  int        `json:"yAxisIndex"`
	Dashed      bool       `json:"dashed,omitempty"`
	ValueFormat string     `json:"valueFormat,omitempty"`
}

// Floats returns the non-nil values in order.
func (s Series) Floats() []float64 {
	out := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// Sum adds up the non-nil values.
func (s Series) Sum() float64 {
	total := 0.0
	for _, v := range s.Floats() {
		total += v
	}
	return total
}

func (s Series) clone() Series {
	out := s
	out.Values = make([]*float64, len(s.Values))
	for i, v := range s.Values {
		if v != nil {
			f := *v
			out.Values[i] = &f
		}
	}
	if s.Colors != nil {
		out.Colors = append([]string(nil), s.Colors...)
	}
	return out
}

// CartesianData backs bar, horizontal_bar, line, and area charts.
type CartesianData struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

func (d *CartesianData) dataKind() string { return "cartesian" }

func (d *CartesianData) clone() ChartData {
	out := &CartesianData{Labels: append([]string(nil), d.Labels...)}
	out.Series = make([]Series, len(d.Series))
	for i, s := range d.Series {
		out.Series[i] = s.clone()
	}
	return out
}

// PieData backs pie charts: one slice per label.
type PieData struct {
	Labels []string `json:"labels"`
	Series Series   `json:"series"`
}

func (d *PieData) dataKind() string { return "pie" }

func (d *PieData) clone() ChartData {
	return &PieData{
		Labels: append([]string(nil), d.Labels...),
		Series: d.Series.clone(),
	}
}

// Point is one scatter observation.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// PointSeries is a named set of scatter points.
type PointSeries struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
	Color  string  `json:"color"`
}

// ScatterData backs scatter charts.
type ScatterData struct {
	XField string        `json:"xField"`
	YField string        `json:"yField"`
	Series []PointSeries `json:"series"`
}

func (d *ScatterData) dataKind() string { return "scatter" }

func (d *ScatterData) clone() ChartData {
	out := &ScatterData{XField: d.XField, YField: d.YField}
	out.Series = make([]PointSeries, len(d.Series))
	for i, s := range d.Series {
		s.Points = append([]Point(nil), s.Points...)
		out.Series[i] = s
	}
	return out
}

// TableData backs table charts: the full row grid.
type TableData struct {
	Columns []string  `json:"columns"`
	Rows    [][]Value `json:"rows"`
}

func (d *TableData) dataKind() string { return "table" }

func (d *TableData) clone() ChartData {
	out := &TableData{Columns: append([]string(nil), d.Columns...)}
	out.Rows = make([][]Value, len(d.Rows))
	for i, r := range d.Rows {
		out.Rows[i] = append([]Value(nil), r...)
	}
	return out
}

// MapData backs map charts: one value per region.
type MapData struct {
	RegionField string   `json:"regionField"`
	Labels      []string `json:"labels"`
	Series      Series   `json:"series"`
}

func (d *MapData) dataKind() string { return "map" }

func (d *MapData) clone() ChartData {
	return &MapData{
		RegionField: d.RegionField,
		Labels:      append([]string(nil), d.Labels...),
		Series:      d.Series.clone(),
	}
}

// Axis describes one value or category axis.
type Axis struct {
	Title       string   `json:"title,omitempty"`
	BeginAtZero bool     `json:"beginAtZero"`
	Max         *float64 `json:"max,omitempty"`
	Format      string   `json:"format,omitempty"`
}

// Tooltip describes how the renderer formats hover values. It is data the
// renderer interprets, never a callback.
type Tooltip struct {
	Format   string `json:"format,omitempty"`
	Suffix   string `json:"suffix,omitempty"`
	Decimals int    `json:"decimals"`
}

// Options are display settings shared by every chart type.
type Options struct {
	Title         string  `json:"title"`
	ShowLegend    bool    `json:"showLegend"`
	Horizontal    bool    `json:"horizontal,omitempty"`
	Stacked       bool    `json:"stacked,omitempty"`
	XAxis         Axis    `json:"xAxis"`
	YAxis         Axis    `json:"yAxis"`
	SecondaryAxis *Axis   `json:"secondaryAxis,omitempty"`
	Tooltip       Tooltip `json:"tooltip"`
}

func (o Options) clone() Options {
	out := o
	out.XAxis = o.XAxis.clone()
	out.YAxis = o.YAxis.clone()
	if o.SecondaryAxis != nil {
		a := o.SecondaryAxis.clone()
		out.SecondaryAxis = &a
	}
	return out
}

func (a Axis) clone() Axis {
	out := a
	if a.Max != nil {
		m := *a.Max
		out.Max = &m
	}
	return out
}

// KPICard summarizes one computed metric.
type KPICard struct {
	Label        string   `json:"label"`
	Period       string   `json:"period"`
	Value        float64  `json:"value"`
	Previous     float64  `json:"previous"`
	Delta        float64  `json:"delta"`
	DeltaPercent *float64 `json:"deltaPercent"`
	Direction    string   `json:"direction"`
	Indicator    string   `json:"indicator"`
}

// Metadata keys written by the enrichment pipeline.
const (
	MetaKPIs      = "kpis"
	MetaNarrative = "narrative"
)

type metaEntry struct {
	key   string
	value interface{}
}

// Metadata is an ordered string-keyed bag. With returns a modified copy;
// the receiver is never changed.
type Metadata struct {
	entries []metaEntry
}

// With returns a copy with key set to value. Existing keys keep their position.
func (m Metadata) With(key string, value interface{}) Metadata {
	out := Metadata{entries: make([]metaEntry, 0, len(m.entries)+1)}
	replaced := false
	for _, e := range m.entries {
		if e.key == key {
			e.value = value
			replaced = true
		}
		out.entries = append(out.entries, e)
	}
	if !replaced {
		out.entries = append(out.entries, metaEntry{key: key, value: value})
	}
	return out
}

// Get returns the value stored at key.
func (m Metadata) Get(key string) (interface{}, bool) {
	for _, e := range m.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return nil, false
}

// Keys returns the keys in insertion order.
func (m Metadata) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// Len returns the number of entries.
func (m Metadata) Len() int { return len(m.entries) }

// KPIs returns the KPI cards, if any.
func (m Metadata) KPIs() []KPICard {
	v, ok := m.Get(MetaKPIs)
	if !ok {
		return nil
	}
	cards, _ := v.([]KPICard)
	return cards
}

// Narrative returns the narrative text, if any.
func (m Metadata) Narrative() (string, bool) {
	v, ok := m.Get(MetaNarrative)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (m Metadata) clone() Metadata {
	out := Metadata{entries: make([]metaEntry, len(m.entries))}
	copy(out.entries, m.entries)
	for i, e := range out.entries {
		if cards, ok := e.value.([]KPICard); ok {
			out.entries[i].value = append([]KPICard(nil), cards...)
		}
	}
	return out
}

// MarshalJSON encodes the bag as an object in insertion order.
func (m Metadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(e.value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata %q: %w", e.key, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ChartConfig is the declarative, renderer-agnostic description of one chart.
type ChartConfig struct {
	Type     ChartType
	Data     ChartData
	Options  Options
	Metadata Metadata
}

// Clone returns a deep copy.
func (c ChartConfig) Clone() ChartConfig {
	out := ChartConfig{
		Type:     c.Type,
		Options:  c.Options.clone(),
		Metadata: c.Metadata.clone(),
	}
	if c.Data != nil {
		out.Data = c.Data.clone()
	}
	return out
}

// Cartesian returns the cartesian payload, if that is the variant.
func (c ChartConfig) Cartesian() (*CartesianData, bool) {
	d, ok := c.Data.(*CartesianData)
	return d, ok
}

// Pie returns the pie payload, if that is the variant.
func (c ChartConfig) Pie() (*PieData, bool) {
	d, ok := c.Data.(*PieData)
	return d, ok
}

// Scatter returns the scatter payload, if that is the variant.
func (c ChartConfig) Scatter() (*ScatterData, bool) {
	d, ok := c.Data.(*ScatterData)
	return d, ok
}

// Table returns the table payload, if that is the variant.
func (c ChartConfig) Table() (*TableData, bool) {
	d, ok := c.Data.(*TableData)
	return d, ok
}

// Map returns the map payload, if that is the variant.
func (c ChartConfig) Map() (*MapData, bool) {
	d, ok := c.Data.(*MapData)
	return d, ok
}

// MarshalJSON encodes the config with a "kind" discriminator for the data.
func (c ChartConfig) MarshalJSON() ([]byte, error) {
	kind := ""
	if c.Data != nil {
		kind = c.Data.dataKind()
	}
	return json.Marshal(struct {
		Type     ChartType `json:"type"`
		Kind     string    `json:"kind"`
		Data     ChartData `json:"data"`
		Options  Options   `json:"options"`
		Metadata Metadata  `json:"metadata"`
	}{c.Type, kind, c.Data, c.Options, c.Metadata})
}

// ChartSuggestion is one ranked recommendation.
type ChartSuggestion struct {
	Type        ChartType   `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Confidence  float64     `json:"confidence"`
	Config      ChartConfig `json:"config"`
	Reasoning   string      `json:"reasoning"`
}
