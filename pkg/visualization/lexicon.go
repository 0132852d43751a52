// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Lexicon holds every keyword list the engine matches against questions and
// column names. It is plain data so new languages can be added from a YAML
// file without code changes.
type Lexicon struct {
	// Question intents
	Growth       []string `yaml:"growth"`
	Trend        []string `yaml:"trend"`
	Distribution []string `yaml:"distribution"`
	Ranking      []string `yaml:"ranking"`
	Correlation  []string `yaml:"correlation"`
	Comparison   []string `yaml:"comparison"`
	Map          []string `yaml:"map"`
	Region       []string `yaml:"region"`

	// Column name hints (substring match)
	TimeColumns  []string `yaml:"time_columns"`
	GeoColumns   []string `yaml:"geo_columns"`
	ValueColumns []string `yaml:"value_columns"`

	// Months lists the accepted names for each month, January first.
	Months [][]string `yaml:"months"`
}

// DefaultLexicon returns the built-in English/Portuguese keyword sets.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Growth: []string{
			"growth", "grow", "increase", "decrease", "variation", "change", "delta",
			"crescimento", "cresc", "aumento", "queda", "variação", "variacao", "evolução", "evolucao",
		},
		Trend: []string{
			"trend", "over time", "timeline", "history", "historical", "monthly", "per month",
			"tendência", "tendencia", "ao longo", "histórico", "historico", "mensal", "por mês", "por mes",
		},
		Distribution: []string{
			"distribution", "proportion", "percent", "percentage", "share", "composition", "breakdown",
			"distribuição", "distribuicao", "proporção", "proporcao", "percentual", "porcentagem",
			"participação", "participacao", "composição", "composicao",
		},
		Ranking: []string{
			"top", "ranking", "rank", "best", "worst", "largest", "highest", "lowest",
			"maiores", "menores", "melhores", "piores", "principais",
		},
		Correlation: []string{
			"correlation", "correlate", "relationship", "versus", "vs",
			"correlação", "correlacao", "relação", "relacao",
		},
		Comparison: []string{
			"compare", "comparison", "comparar", "comparação", "comparacao", "comparativo",
		},
		Map: []string{
			"map", "geographic", "geography", "mapa", "geográfico", "geografico",
		},
		Region: []string{
			"region", "regional", "região", "regiao", "regiões", "regioes",
		},
		TimeColumns:  []string{"month", "date", "time"},
		GeoColumns:   []string{"region", "country", "state", "city", "location"},
		ValueColumns: []string{"sales", "amount", "total", "value", "quantity"},
		Months: [][]string{
			{"january", "jan", "janeiro"},
			{"february", "feb", "fevereiro", "fev"},
			{"march", "mar", "março", "marco"},
			{"april", "apr", "abril", "abr"},
			{"may", "maio", "mai"},
			{"june", "jun", "junho"},
			{"july", "jul", "julho"},
			{"august", "aug", "agosto", "ago"},
			{"september", "sep", "sept", "setembro", "set"},
			{"october", "oct", "outubro", "out"},
			{"november", "nov", "novembro"},
			{"december", "dec", "dezembro", "dez"},
		},
	}
}

// LoadLexicon reads a YAML lexicon. Lists present in the file replace the
// defaults; omitted lists keep their default values.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied config path
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file: %w", err)
	}
	return ParseLexicon(data)
}

// ParseLexicon decodes YAML lexicon content over the defaults.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var custom Lexicon
	if err := yaml.Unmarshal(data, &custom); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	merged := MergeLexicon(&custom, DefaultLexicon())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// MergeLexicon overlays non-empty lists from custom onto defaults.
func MergeLexicon(custom, defaults *Lexicon) *Lexicon {
	if defaults == nil {
		defaults = DefaultLexicon()
	}
	if custom == nil {
		return defaults
	}
	merged := *defaults
	pick := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	pick(&merged.Growth, custom.Growth)
	pick(&merged.Trend, custom.Trend)
	pick(&merged.Distribution, custom.Distribution)
	pick(&merged.Ranking, custom.Ranking)
	pick(&merged.Correlation, custom.Correlation)
	pick(&merged.Comparison, custom.Comparison)
	pick(&merged.Map, custom.Map)
	pick(&merged.Region, custom.Region)
	pick(&merged.TimeColumns, custom.TimeColumns)
	pick(&merged.GeoColumns, custom.GeoColumns)
	pick(&merged.ValueColumns, custom.ValueColumns)
	if len(custom.Months) > 0 {
		merged.Months = custom.Months
	}
	return merged.normalized()
}

// Validate checks the lexicon is usable.
func (l *Lexicon) Validate() error {
	if l == nil {
		return fmt.Errorf("lexicon is nil")
	}
	if len(l.Months) != 12 {
		return fmt.Errorf("lexicon months must list 12 entries, got %d", len(l.Months))
	}
	for i, names := range l.Months {
		if len(names) == 0 {
			return fmt.Errorf("lexicon month %d has no names", i+1)
		}
	}
	return nil
}

// YAML encodes the lexicon for editing.
func (l *Lexicon) YAML() ([]byte, error) {
	return yaml.Marshal(l)
}

// normalized returns a copy with every keyword lower-cased.
func (l Lexicon) normalized() *Lexicon {
	lower := func(in []string) []string {
		out := make([]string, 0, len(in))
		for _, s := range in {
			if s = Normalize(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	out := Lexicon{
		Growth:       lower(l.Growth),
		Trend:        lower(l.Trend),
		Distribution: lower(l.Distribution),
		Ranking:      lower(l.Ranking),
		Correlation:  lower(l.Correlation),
		Comparison:   lower(l.Comparison),
		Map:          lower(l.Map),
		Region:       lower(l.Region),
		TimeColumns:  lower(l.TimeColumns),
		GeoColumns:   lower(l.GeoColumns),
		ValueColumns: lower(l.ValueColumns),
	}
	out.Months = make([][]string, len(l.Months))
	for i, names := range l.Months {
		out.Months[i] = lower(names)
	}
	return &out
}

// Normalize lower-cases and trims text for keyword matching.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Intent records which keyword groups a question mentions.
type Intent struct {
	Growth       bool
	Trend        bool
	Distribution bool
	Ranking      bool
	Correlation  bool
	Comparison   bool
	Map          bool
	Region       bool
	Month        bool
}

// DetectIntent matches a normalized question against every keyword group.
func (l *Lexicon) DetectIntent(question string) Intent {
	return Intent{
		Growth:       containsAny(question, l.Growth),
		Trend:        containsAny(question, l.Trend),
		Distribution: containsAny(question, l.Distribution),
		Ranking:      containsAny(question, l.Ranking),
		Correlation:  containsAny(question, l.Correlation),
		Comparison:   containsAny(question, l.Comparison),
		Map:          containsAny(question, l.Map),
		Region:       containsAny(question, l.Region),
		Month:        l.mentionsMonth(question),
	}
}

// MonthIndex returns the zero-based month for a label that is exactly a
// month name (any case), or -1.
func (l *Lexicon) MonthIndex(label string) int {
	label = Normalize(label)
	for i, names := range l.Months {
		for _, name := range names {
			if label == name {
				return i
			}
		}
	}
	return -1
}

// ContainsMonthName reports whether s contains any month name as a
// substring, so "Jan 2024" matches and so does "Marketing".
func (l *Lexicon) ContainsMonthName(s string) bool {
	return l.mentionsMonth(Normalize(s))
}

func (l *Lexicon) mentionsMonth(normalized string) bool {
	for _, names := range l.Months {
		if containsAny(normalized, names) {
			return true
		}
	}
	return false
}

// NameMatches reports whether a column name contains any of the hints.
func NameMatches(column string, hints []string) bool {
	name := Normalize(column)
	for _, h := range hints {
		if h != "" && strings.Contains(name, h) {
			return true
		}
	}
	return false
}

// containsAny reports whether text contains any keyword as a substring,
// so the stem "cresc" matches "decrescimento" too.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
