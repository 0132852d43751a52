// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
	"golang.org/x/term"

	"github.com/teradata-labs/chartsense/pkg/visualization"
)

const barWidth = 20

// renderer prints suggestions for humans. Styling is dropped when the
// writer is not a color terminal.
type renderer struct {
	w      io.Writer
	styled bool

	title  lipgloss.Style
	kind   lipgloss.Style
	muted  lipgloss.Style
	accent lipgloss.Style
}

func newRenderer(w io.Writer, color bool) *renderer {
	r := &renderer{w: w, styled: color && colorTerminal(w)}
	if r.styled {
		r.title = lipgloss.NewStyle().Bold(true)
		r.kind = lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa"))
		r.muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
		r.accent = lipgloss.NewStyle().Foreground(lipgloss.Color(visualization.PaletteColor(0)))
	} else {
		r.title = lipgloss.NewStyle()
		r.kind = lipgloss.NewStyle()
		r.muted = lipgloss.NewStyle()
		r.accent = lipgloss.NewStyle()
	}
	return r
}

// colorTerminal reports whether w is a terminal that accepts color, honoring
// NO_COLOR and CLICOLOR through termenv.
func colorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
}

func (r *renderer) suggestions(question string, suggestions []visualization.ChartSuggestion) {
	if question != "" {
		fmt.Fprintf(r.w, "%s %s\n\n", r.muted.Render("Question:"), question)
	}
	if len(suggestions) == 0 {
		fmt.Fprintln(r.w, r.muted.Render("No suggestions."))
		return
	}

	width := 0
	for _, s := range suggestions {
		if w := uniseg.StringWidth(s.Title); w > width {
			width = w
		}
	}

	for i, s := range suggestions {
		pad := strings.Repeat(" ", width-uniseg.StringWidth(s.Title))
		fmt.Fprintf(r.w, "%d. %s%s  %s  %s %s\n",
			i+1,
			r.title.Render(s.Title), pad,
			r.accent.Render(confidenceBar(s.Confidence)),
			fmt.Sprintf("%3.0f%%", s.Confidence*100),
			r.kind.Render("["+string(s.Type)+"]"))
		fmt.Fprintf(r.w, "   %s\n", s.Config.Options.Title)
		fmt.Fprintf(r.w, "   %s\n", r.muted.Render(s.Reasoning))

		if narrative, ok := s.Config.Metadata.Narrative(); ok {
			fmt.Fprintf(r.w, "   %s\n", wrap(narrative, 76, "   "))
		}
		for _, kpi := range s.Config.Metadata.KPIs() {
			fmt.Fprintf(r.w, "   %s %s\n", r.accent.Render("KPI"), kpiLine(kpi))
		}
		fmt.Fprintln(r.w)
	}
}

func confidenceBar(confidence float64) string {
	filled := int(confidence*barWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func kpiLine(kpi visualization.KPICard) string {
	line := fmt.Sprintf("%s: %s", kpi.Label, kpi.Period)
	if kpi.DeltaPercent != nil {
		line += fmt.Sprintf(" %s %+.2f%%", kpi.Indicator, *kpi.DeltaPercent)
	} else {
		line += fmt.Sprintf(" %s %+.2f", kpi.Indicator, kpi.Delta)
	}
	return line
}

// wrap breaks text on spaces so no line exceeds width display cells.
func wrap(text string, width int, indent string) string {
	var b strings.Builder
	lineWidth := 0
	for i, word := range strings.Fields(text) {
		w := uniseg.StringWidth(word)
		if i > 0 {
			if lineWidth+1+w > width {
				b.WriteString("\n" + indent)
				lineWidth = 0
			} else {
				b.WriteByte(' ')
				lineWidth++
			}
		}
		b.WriteString(word)
		lineWidth += w
	}
	return b.String()
}

// writeJSON prints JSON, highlighted when w is a color terminal.
func writeJSON(w io.Writer, data []byte, color bool) error {
	if color && colorTerminal(w) {
		if err := quick.Highlight(w, string(data)+"\n", "json", "terminal256", "monokai"); err == nil {
			return nil
		}
	}
	_, err := fmt.Fprintln(w, string(data))
	return err
}
