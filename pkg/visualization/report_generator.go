// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"
)

// Report is a rendered set of suggestions ready for export.
type Report struct {
	Title          string          `json:"title"`
	Question       string          `json:"question,omitempty"`
	Summary        string          `json:"summary"`
	Visualizations []Visualization `json:"visualizations"`
	GeneratedAt    string          `json:"generated_at"`
	Metadata       ReportMetadata  `json:"metadata"`
}

// Visualization is one suggestion with its ECharts option.
type Visualization struct {
	Type          ChartType  `json:"type"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Reasoning     string     `json:"reasoning"`
	Confidence    float64    `json:"confidence"`
	EChartsConfig string     `json:"echarts_config,omitempty"`
	Narrative     string     `json:"narrative,omitempty"`
	KPIs          []KPICard  `json:"kpis,omitempty"`
	Table         *TableData `json:"table,omitempty"`
}

// ReportMetadata describes the analyzed dataset.
type ReportMetadata struct {
	DataSource string        `json:"data_source"`
	Rows       int           `json:"rows"`
	Columns    int           `json:"columns"`
	Structure  DataStructure `json:"structure"`
}

// ReportGenerator assembles complete HTML reports with embedded charts
type ReportGenerator struct {
	echartsGen *EChartsGenerator
	style      *StyleConfig
}

// NewReportGenerator creates a report generator with custom style
func NewReportGenerator(style *StyleConfig) *ReportGenerator {
	if style == nil {
		style = DefaultStyleConfig()
	}
	return &ReportGenerator{
		echartsGen: NewEChartsGenerator(style),
		style:      style,
	}
}

// GenerateReport builds a report from ranked suggestions.
func (rg *ReportGenerator) GenerateReport(source, question string, structure DataStructure, suggestions []ChartSuggestion) (*Report, error) {
	visualizations := make([]Visualization, 0, len(suggestions))
	for _, s := range suggestions {
		viz := Visualization{
			Type:        s.Type,
			Title:       s.Config.Options.Title,
			Description: s.Description,
			Reasoning:   s.Reasoning,
			Confidence:  s.Confidence,
			KPIs:        s.Config.Metadata.KPIs(),
		}
		if viz.Title == "" {
			viz.Title = s.Title
		}
		if narrative, ok := s.Config.Metadata.Narrative(); ok {
			viz.Narrative = narrative
		}

		if table, ok := s.Config.Table(); ok {
			viz.Table = table
		} else {
			echartsConfig, err := rg.echartsGen.Generate(s.Config)
			if err != nil {
				return nil, fmt.Errorf("failed to generate chart for %s: %w", s.Type, err)
			}
			viz.EChartsConfig = echartsConfig
		}
		visualizations = append(visualizations, viz)
	}

	return &Report{
		Title:          GenerateTitle(source),
		Question:       question,
		Summary:        GenerateSummary(structure, len(visualizations)),
		Visualizations: visualizations,
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		Metadata: ReportMetadata{
			DataSource: source,
			Rows:       structure.RowCount,
			Columns:    structure.ColumnCount,
			Structure:  structure,
		},
	}, nil
}

// ExportHTML generates self-contained HTML with embedded charts
func (rg *ReportGenerator) ExportHTML(report *Report) (string, error) {
	if report == nil {
		return "", fmt.Errorf("report is nil")
	}

	var sb strings.Builder

	// HTML header with ECharts CDN
	sb.WriteString(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <script src="https://cdn.jsdelivr.net/npm/echarts@5/dist/echarts.min.js"></script>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }
        body {
            font-family: %s;
            background: %s;
            color: %s;
            padding: 40px 20px;
            line-height: 1.6;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
        }
        h1 {
            color: %s;
            font-size: 32px;
            margin-bottom: 20px;
            font-weight: 600;
        }
        .summary {
            background: %s;
            border: 1px solid %s;
            border-radius: 8px;
            padding: 20px;
            margin-bottom: 40px;
            font-size: 14px;
            line-height: 1.8;
        }
        .metadata {
            color: %s;
            font-size: 12px;
            margin-bottom: 40px;
            padding: 10px;
            border-radius: 4px;
        }
        .visualization {
            margin-bottom: 60px;
        }
        .viz-title {
            color: %s;
            font-size: 20px;
            margin-bottom: 8px;
            font-weight: 500;
        }
        .viz-description {
            color: %s;
            font-size: 13px;
            margin-bottom: 8px;
        }
        .viz-insight {
            background: %s;
            border-left: 3px solid %s;
            padding: 12px 16px;
            margin-top: 15px;
            font-size: 13px;
            border-radius: 4px;
        }
        .kpi {
            display: inline-block;
            margin: 10px 16px 0 0;
            font-size: 13px;
        }
        .kpi.up { color: #10b981; }
        .kpi.down { color: #ef4444; }
        .chart-container {
            width: 100%%;
            height: 500px;
            border: 1px solid %s;
            border-radius: 8px;
            padding: 20px;
        }
        table {
            width: 100%%;
            border-collapse: collapse;
            font-size: 13px;
        }
        th, td {
            border-bottom: 1px solid %s;
            padding: 6px 10px;
            text-align: left;
        }
        @media print {
            body {
                background: white;
                color: black;
            }
            .chart-container {
                page-break-inside: avoid;
            }
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>%s</h1>

        <div class="summary">%s</div>

        <div class="metadata">
            Generated: %s |
            Data Source: %s |
            Rows: %d |
            Columns: %d
        </div>
`, html.EscapeString(report.Title),
		rg.style.FontFamily,
		pageBackground(rg.style.ColorBackground),
		rg.style.ColorText,
		rg.style.ColorPrimary,
		rg.style.ColorGlass,
		rg.style.ColorBorder,
		rg.style.ColorTextMuted,
		rg.style.ColorPrimary,
		rg.style.ColorTextMuted,
		translucent(rg.style.ColorPrimary, 0.1),
		rg.style.ColorPrimary,
		rg.style.ColorBorder,
		rg.style.ColorBorder,
		html.EscapeString(report.Title),
		html.EscapeString(report.Summary),
		report.GeneratedAt,
		html.EscapeString(report.Metadata.DataSource),
		report.Metadata.Rows,
		report.Metadata.Columns,
	))

	for i, viz := range report.Visualizations {
		sb.WriteString(fmt.Sprintf(`
        <div class="visualization">
            <h2 class="viz-title">%s</h2>
            <p class="viz-description">%s (confidence %.2f)</p>
`, html.EscapeString(viz.Title), html.EscapeString(viz.Description), viz.Confidence))

		if viz.Table != nil {
			sb.WriteString(renderTable(viz.Table))
		} else {
			sb.WriteString(fmt.Sprintf("            <div id=\"chart-%d\" class=\"chart-container\"></div>\n", i))
		}

		for _, kpi := range viz.KPIs {
			sb.WriteString(fmt.Sprintf("            <span class=\"kpi %s\">%s %s (%s): %s</span>\n",
				kpi.Direction, kpi.Indicator, html.EscapeString(kpi.Label),
				html.EscapeString(kpi.Period), formatKPIDelta(kpi)))
		}

		insight := viz.Narrative
		if insight == "" {
			insight = viz.Reasoning
		}
		sb.WriteString(fmt.Sprintf(`            <div class="viz-insight">
                <strong>Insight:</strong> %s
            </div>
        </div>
`, html.EscapeString(insight)))
	}

	// Add JavaScript to initialize charts
	sb.WriteString("\n        <script>\n")
	for i, viz := range report.Visualizations {
		if viz.EChartsConfig == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf(`
            (function() {
                var chartDom = document.getElementById('chart-%d');
                var myChart = echarts.init(chartDom);
                var option = %s;
                if (option.tooltip && option.tooltip.valueSuffix) {
                    var suffix = option.tooltip.valueSuffix;
                    option.tooltip.valueFormatter = function(v) { return v == null ? '-' : v + suffix; };
                }
                myChart.setOption(option);
                window.addEventListener('resize', function() {
                    myChart.resize();
                });
            })();
`, i, viz.EChartsConfig))
	}
	sb.WriteString("        </script>\n")

	// Close HTML
	sb.WriteString(`
    </div>
</body>
</html>`)

	return sb.String(), nil
}

// ExportJSON exports report as JSON
func (rg *ReportGenerator) ExportJSON(report *Report) (string, error) {
	if report == nil {
		return "", fmt.Errorf("report is nil")
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}

// GenerateTitle creates a title from the data source name
func GenerateTitle(source string) string {
	if source == "" {
		return "Chart Suggestions"
	}
	return fmt.Sprintf("Chart Suggestions for %s", source)
}

// GenerateSummary describes the dataset signals behind the suggestions
func GenerateSummary(structure DataStructure, suggestions int) string {
	var signals []string
	if structure.HasTimeSeries {
		signals = append(signals, "a time dimension")
	}
	if structure.HasCategories {
		signals = append(signals, "categorical columns")
	}
	if structure.HasNumericalComparison {
		signals = append(signals, "several numeric measures")
	}
	if structure.HasGeographicData {
		signals = append(signals, "geographic columns")
	}
	detected := "no strong structural signals"
	if len(signals) > 0 {
		detected = strings.Join(signals, ", ")
	}
	return fmt.Sprintf("Analyzed %d rows across %d columns and detected %s. %d chart(s) suggested.",
		structure.RowCount, structure.ColumnCount, detected, suggestions)
}

func renderTable(table *TableData) string {
	var sb strings.Builder
	sb.WriteString("            <table>\n                <tr>")
	for _, c := range table.Columns {
		sb.WriteString("<th>" + html.EscapeString(c) + "</th>")
	}
	sb.WriteString("</tr>\n")
	for _, row := range table.Rows {
		sb.WriteString("                <tr>")
		for _, v := range row {
			sb.WriteString("<td>" + html.EscapeString(v.Text()) + "</td>")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("            </table>\n")
	return sb.String()
}

func formatKPIDelta(kpi KPICard) string {
	if kpi.DeltaPercent != nil {
		return signed(*kpi.DeltaPercent) + "%"
	}
	return signed(kpi.Delta)
}

func pageBackground(color string) string {
	if color == "" || color == "transparent" {
		return "#0d0d0d"
	}
	return color
}
