// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"encoding/json"
	"fmt"
	"math"
)

// EChartsGenerator projects ChartConfigs onto ECharts options with Hawk StyleGuide
type EChartsGenerator struct {
	style *StyleConfig
}

// NewEChartsGenerator creates a new ECharts config generator
func NewEChartsGenerator(style *StyleConfig) *EChartsGenerator {
	if style == nil {
		style = DefaultStyleConfig()
	}
	return &EChartsGenerator{style: style}
}

// Generate returns the ECharts option JSON for cfg.
func (eg *EChartsGenerator) Generate(cfg ChartConfig) (string, error) {
	option, err := eg.Option(cfg)
	if err != nil {
		return "", err
	}
	jsonBytes, err := json.Marshal(option)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ECharts config: %w", err)
	}
	return string(jsonBytes), nil
}

// Option returns the ECharts option object for cfg.
func (eg *EChartsGenerator) Option(cfg ChartConfig) (map[string]interface{}, error) {
	if cfg.Data == nil {
		return nil, fmt.Errorf("chart %q has no data", cfg.Type)
	}

	var option map[string]interface{}
	switch data := cfg.Data.(type) {
	case *CartesianData:
		option = eg.cartesianOption(cfg, data)
	case *PieData:
		option = eg.pieOption(cfg, data)
	case *ScatterData:
		option = eg.scatterOption(cfg, data)
	case *MapData:
		option = eg.mapOption(cfg, data)
	case *TableData:
		option = eg.tableOption(data)
	default:
		return nil, fmt.Errorf("unsupported chart data %T", cfg.Data)
	}

	option["backgroundColor"] = eg.style.ColorBackground
	option["animation"] = true
	option["animationDuration"] = eg.style.AnimationDuration
	option["animationEasing"] = eg.style.AnimationEasing
	option["title"] = eg.titleConfig(cfg.Options.Title)
	if cfg.Options.ShowLegend {
		option["legend"] = eg.legendConfig()
	}
	return option, nil
}

func (eg *EChartsGenerator) cartesianOption(cfg ChartConfig, data *CartesianData) map[string]interface{} {
	opts := cfg.Options

	categoryAxis := map[string]interface{}{
		"type":      "category",
		"data":      data.Labels,
		"axisLine":  eg.axisLineStyle(),
		"axisLabel": eg.axisLabelStyle(),
	}
	if cfg.Type == ChartTypeLine || cfg.Type == ChartTypeArea {
		categoryAxis["boundaryGap"] = false
	}

	valueAxes := []interface{}{eg.valueAxis(opts.YAxis)}
	if opts.Horizontal {
		valueAxes = []interface{}{eg.valueAxis(opts.XAxis)}
	}
	if opts.SecondaryAxis != nil {
		secondary := eg.valueAxis(*opts.SecondaryAxis)
		secondary["splitLine"] = map[string]interface{}{"show": false}
		valueAxes = append(valueAxes, secondary)
	}

	series := make([]interface{}, 0, len(data.Series))
	for i, s := range data.Series {
		series = append(series, eg.cartesianSeries(cfg, s, i))
	}

	option := map[string]interface{}{
		"grid":    eg.gridConfig(),
		"tooltip": eg.tooltipConfig("axis", opts.Tooltip),
		"series":  series,
	}
	if opts.Horizontal {
		categoryAxis["inverse"] = true
		option["xAxis"] = valueAxes
		option["yAxis"] = categoryAxis
	} else {
		option["xAxis"] = categoryAxis
		option["yAxis"] = valueAxes
	}
	return option
}

func (eg *EChartsGenerator) cartesianSeries(cfg ChartConfig, s Series, index int) map[string]interface{} {
	color := s.Color
	if color == "" {
		color = eg.paletteColor(index)
	}

	out := map[string]interface{}{
		"name":       s.Name,
		"data":       nullableValues(s.Values),
		"yAxisIndex": s.YAxisIndex,
	}
	if cfg.Options.Horizontal {
		delete(out, "yAxisIndex")
		out["xAxisIndex"] = s.YAxisIndex
	}
	if cfg.Options.Stacked && s.YAxisIndex == 0 {
		out["stack"] = "total"
	}

	switch {
	case s.YAxisIndex > 0:
		// overlay series on the secondary axis always render as lines
		out["type"] = "line"
		out["smooth"] = true
		out["itemStyle"] = map[string]interface{}{"color": color}
		out["lineStyle"] = map[string]interface{}{"color": color, "width": 2, "type": lineType(s.Dashed)}
	case cfg.Type == ChartTypeBar || cfg.Type == ChartTypeHorizontalBar:
		radius := []int{4, 4, 0, 0}
		if cfg.Options.Horizontal {
			radius = []int{0, 4, 4, 0}
		}
		out["type"] = "bar"
		out["itemStyle"] = map[string]interface{}{
			"color":        eg.gradient(color, cfg.Options.Horizontal),
			"borderRadius": radius,
			"shadowBlur":   eg.style.ShadowBlur,
			"shadowColor":  translucent(color, 0.4),
		}
		out["emphasis"] = map[string]interface{}{
			"itemStyle": map[string]interface{}{
				"shadowBlur":  eg.style.ShadowBlur * 2,
				"shadowColor": translucent(color, 0.6),
			},
		}
	default:
		out["type"] = "line"
		out["smooth"] = true
		out["itemStyle"] = map[string]interface{}{"color": color}
		out["lineStyle"] = map[string]interface{}{
			"color":       color,
			"width":       2,
			"type":        lineType(s.Dashed),
			"shadowBlur":  eg.style.ShadowBlur,
			"shadowColor": translucent(color, 0.4),
		}
		if cfg.Type == ChartTypeArea {
			out["areaStyle"] = map[string]interface{}{
				"color": map[string]interface{}{
					"type": "linear",
					"x":    0,
					"y":    0,
					"x2":   0,
					"y2":   1,
					"colorStops": []interface{}{
						map[string]interface{}{"offset": 0, "color": translucent(color, 0.4)},
						map[string]interface{}{"offset": 1, "color": translucent(color, 0)},
					},
				},
			}
		}
	}

	if s.ValueFormat == FormatPercent {
		out["label"] = map[string]interface{}{
			"show":       cfg.Type == ChartTypeBar,
			"formatter":  "{c}%",
			"color":      eg.style.ColorTextMuted,
			"fontFamily": eg.style.FontFamily,
			"fontSize":   eg.style.FontSizeLabel,
		}
	}
	return out
}

func (eg *EChartsGenerator) pieOption(cfg ChartConfig, data *PieData) map[string]interface{} {
	items := make([]interface{}, 0, len(data.Labels))
	for i, label := range data.Labels {
		item := map[string]interface{}{
			"name":  label,
			"value": derefOrNil(valueAt(data.Series.Values, i)),
		}
		color := eg.paletteColor(i)
		if i < len(data.Series.Colors) {
			color = data.Series.Colors[i]
		}
		item["itemStyle"] = map[string]interface{}{"color": color}
		items = append(items, item)
	}

	formatter := "{b}: {c}"
	if data.Series.ValueFormat == FormatPercent {
		formatter = "{b}: {c}%"
	}

	return map[string]interface{}{
		"tooltip": eg.tooltipConfig("item", cfg.Options.Tooltip),
		"series": []interface{}{
			map[string]interface{}{
				"type":   "pie",
				"name":   data.Series.Name,
				"radius": []string{"35%", "60%"},
				"center": []string{"50%", "55%"},
				"data":   items,
				"emphasis": map[string]interface{}{
					"itemStyle": map[string]interface{}{
						"shadowBlur":  eg.style.ShadowBlur * 2,
						"shadowColor": translucent(eg.style.ColorPrimary, 0.6),
					},
				},
				"label": map[string]interface{}{
					"formatter":  formatter,
					"color":      eg.style.ColorText,
					"fontFamily": eg.style.FontFamily,
					"fontSize":   eg.style.FontSizeLabel,
				},
			},
		},
	}
}

func (eg *EChartsGenerator) scatterOption(cfg ChartConfig, data *ScatterData) map[string]interface{} {
	series := make([]interface{}, 0, len(data.Series))
	for i, ps := range data.Series {
		points := make([]interface{}, 0, len(ps.Points))
		for _, p := range ps.Points {
			points = append(points, map[string]interface{}{
				"name":  p.Label,
				"value": []float64{p.X, p.Y},
			})
		}
		color := ps.Color
		if color == "" {
			color = eg.paletteColor(i)
		}
		series = append(series, map[string]interface{}{
			"type":       "scatter",
			"name":       ps.Name,
			"data":       points,
			"symbolSize": 10,
			"itemStyle": map[string]interface{}{
				"color":       color,
				"shadowBlur":  eg.style.ShadowBlur,
				"shadowColor": translucent(color, 0.4),
			},
		})
	}

	return map[string]interface{}{
		"grid":    eg.gridConfig(),
		"tooltip": eg.tooltipConfig("item", cfg.Options.Tooltip),
		"xAxis": map[string]interface{}{
			"type":          "value",
			"name":          data.XField,
			"nameLocation":  "middle",
			"nameGap":       30,
			"nameTextStyle": eg.nameTextStyle(),
			"axisLine":      eg.axisLineStyle(),
			"axisLabel":     eg.axisLabelStyle(),
			"splitLine":     eg.splitLineStyle(),
			"scale":         true,
		},
		"yAxis": map[string]interface{}{
			"type":          "value",
			"name":          data.YField,
			"nameTextStyle": eg.nameTextStyle(),
			"axisLine":      eg.axisLineStyle(),
			"axisLabel":     eg.axisLabelStyle(),
			"splitLine":     eg.splitLineStyle(),
			"scale":         true,
		},
		"series": series,
	}
}

// mapOption targets the ECharts "world" geo map; region labels must match
// the names registered with the renderer.
func (eg *EChartsGenerator) mapOption(cfg ChartConfig, data *MapData) map[string]interface{} {
	items := make([]interface{}, 0, len(data.Labels))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, label := range data.Labels {
		v := valueAt(data.Series.Values, i)
		items = append(items, map[string]interface{}{"name": label, "value": derefOrNil(v)})
		if v != nil {
			lo, hi = math.Min(lo, *v), math.Max(hi, *v)
		}
	}
	if math.IsInf(lo, 0) {
		lo, hi = 0, 0
	}

	return map[string]interface{}{
		"tooltip": eg.tooltipConfig("item", cfg.Options.Tooltip),
		"visualMap": map[string]interface{}{
			"min":        lo,
			"max":        hi,
			"calculable": true,
			"inRange": map[string]interface{}{
				"color": []string{darkenColor(eg.style.ColorPrimary, 0.6), eg.style.ColorPrimary},
			},
			"textStyle": eg.axisLabelStyle(),
		},
		"series": []interface{}{
			map[string]interface{}{
				"type": "map",
				"map":  "world",
				"name": data.Series.Name,
				"roam": true,
				"data": items,
			},
		},
	}
}

// tableOption exposes the rows as an ECharts dataset; there is no series.
func (eg *EChartsGenerator) tableOption(data *TableData) map[string]interface{} {
	source := make([]interface{}, 0, len(data.Rows)+1)
	header := make([]interface{}, len(data.Columns))
	for i, c := range data.Columns {
		header[i] = c
	}
	source = append(source, header)
	for _, row := range data.Rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v.Interface()
		}
		source = append(source, cells)
	}
	return map[string]interface{}{
		"dataset": map[string]interface{}{"source": source},
		"series":  []interface{}{},
	}
}

func (eg *EChartsGenerator) valueAxis(axis Axis) map[string]interface{} {
	out := map[string]interface{}{
		"type":          "value",
		"name":          axis.Title,
		"nameTextStyle": eg.nameTextStyle(),
		"axisLine":      eg.axisLineStyle(),
		"axisLabel":     eg.axisLabelStyle(),
		"splitLine":     eg.splitLineStyle(),
		"scale":         !axis.BeginAtZero,
	}
	if axis.Max != nil {
		out["max"] = *axis.Max
	}
	if axis.Format == FormatPercent {
		label := eg.axisLabelStyle()
		label["formatter"] = "{value}%"
		out["axisLabel"] = label
	}
	return out
}

func (eg *EChartsGenerator) gradient(color string, horizontal bool) map[string]interface{} {
	x2, y2 := 0, 1
	if horizontal {
		x2, y2 = 1, 0
	}
	return map[string]interface{}{
		"type": "linear",
		"x":    0,
		"y":    0,
		"x2":   x2,
		"y2":   y2,
		"colorStops": []interface{}{
			map[string]interface{}{"offset": 0, "color": color},
			map[string]interface{}{"offset": 1, "color": darkenColor(color, 0.2)},
		},
	}
}

func (eg *EChartsGenerator) titleConfig(title string) map[string]interface{} {
	return map[string]interface{}{
		"text": title,
		"left": "center",
		"textStyle": map[string]interface{}{
			"color":      eg.style.ColorText,
			"fontFamily": eg.style.FontFamily,
			"fontSize":   eg.style.FontSizeTitle,
		},
	}
}

func (eg *EChartsGenerator) legendConfig() map[string]interface{} {
	return map[string]interface{}{
		"bottom": 0,
		"textStyle": map[string]interface{}{
			"color":      eg.style.ColorText,
			"fontFamily": eg.style.FontFamily,
			"fontSize":   eg.style.FontSizeLabel,
		},
	}
}

func (eg *EChartsGenerator) gridConfig() map[string]interface{} {
	return map[string]interface{}{
		"left":         "10%",
		"right":        "10%",
		"bottom":       "12%",
		"top":          "15%",
		"containLabel": true,
	}
}

func (eg *EChartsGenerator) tooltipConfig(trigger string, tooltip Tooltip) map[string]interface{} {
	out := map[string]interface{}{
		"trigger":         trigger,
		"backgroundColor": eg.style.ColorGlass,
		"borderColor":     eg.style.ColorPrimary,
		"borderWidth":     1,
		"textStyle": map[string]interface{}{
			"color":      eg.style.ColorText,
			"fontFamily": eg.style.FontFamily,
			"fontSize":   eg.style.FontSizeTooltip,
		},
	}
	if tooltip.Suffix != "" {
		// read by the preview page, which installs the JS valueFormatter
		out["valueSuffix"] = tooltip.Suffix
	}
	return out
}

func (eg *EChartsGenerator) axisLineStyle() map[string]interface{} {
	return map[string]interface{}{
		"lineStyle": map[string]interface{}{
			"color": eg.style.ColorBorder,
		},
	}
}

func (eg *EChartsGenerator) axisLabelStyle() map[string]interface{} {
	return map[string]interface{}{
		"color":      eg.style.ColorTextMuted,
		"fontFamily": eg.style.FontFamily,
		"fontSize":   eg.style.FontSizeLabel,
	}
}

func (eg *EChartsGenerator) nameTextStyle() map[string]interface{} {
	return map[string]interface{}{
		"color":      eg.style.ColorTextMuted,
		"fontFamily": eg.style.FontFamily,
		"fontSize":   eg.style.FontSizeLabel,
	}
}

func (eg *EChartsGenerator) splitLineStyle() map[string]interface{} {
	return map[string]interface{}{
		"lineStyle": map[string]interface{}{
			"color": translucent(eg.style.ColorTextMuted, 0.1),
			"type":  "dashed",
		},
	}
}

func (eg *EChartsGenerator) paletteColor(i int) string {
	if len(eg.style.ColorPalette) == 0 {
		return PaletteColor(i)
	}
	return eg.style.ColorPalette[i%len(eg.style.ColorPalette)]
}

func lineType(dashed bool) string {
	if dashed {
		return "dashed"
	}
	return "solid"
}

// nullableValues keeps gaps as JSON null so ECharts breaks the line there.
func nullableValues(values []*float64) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = derefOrNil(v)
	}
	return out
}

func derefOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
