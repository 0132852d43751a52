// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicon_DetectIntent(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		question string
		check    func(Intent) bool
	}{
		{"Qual o crescimento mensal?", func(i Intent) bool { return i.Growth && i.Trend }},
		{"sales trend over time", func(i Intent) bool { return i.Trend && !i.Growth }},
		{"Top 5 products", func(i Intent) bool { return i.Ranking }},
		{"houve decrescimento?", func(i Intent) bool { return i.Growth }},
		{"laptop sales", func(i Intent) bool { return i.Ranking }},
		{"percentual por categoria", func(i Intent) bool { return i.Distribution }},
		{"correlation between price and volume", func(i Intent) bool { return i.Correlation }},
		{"vendas por região", func(i Intent) bool { return i.Region && !i.Month }},
		{"sales in january", func(i Intent) bool { return i.Month }},
		{"show on a map", func(i Intent) bool { return i.Map }},
		{"", func(i Intent) bool { return i == Intent{} }},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.True(t, tt.check(lex.DetectIntent(Normalize(tt.question))))
		})
	}
}

func TestLexicon_MonthIndex(t *testing.T) {
	lex := DefaultLexicon()
	assert.Equal(t, 0, lex.MonthIndex("Jan"))
	assert.Equal(t, 2, lex.MonthIndex("Março"))
	assert.Equal(t, 9, lex.MonthIndex("OUTUBRO"))
	assert.Equal(t, 11, lex.MonthIndex("dez"))
	assert.Equal(t, -1, lex.MonthIndex("Jan 2024"))
	assert.Equal(t, -1, lex.MonthIndex("North"))
}

func TestLexicon_ContainsMonthName(t *testing.T) {
	lex := DefaultLexicon()
	tests := []struct {
		value string
		want  bool
	}{
		{"Jan 2024", true},
		{"2024-fev", true},
		{"DEZEMBRO", true},
		{"Marketing", true},
		{"South", true},
		{"North", false},
		{"Lisbon", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, lex.ContainsMonthName(tt.value))
		})
	}
}

func TestNameMatches(t *testing.T) {
	assert.True(t, NameMatches("Sales_Region", []string{"region"}))
	assert.True(t, NameMatches("order_date", []string{"month", "date"}))
	assert.False(t, NameMatches("product", []string{"region"}))
}

func TestParseLexicon_MergesOverDefaults(t *testing.T) {
	lex, err := ParseLexicon([]byte(`
growth:
  - Wachstum
ranking:
  - Rangliste
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"wachstum"}, lex.Growth)
	assert.Equal(t, []string{"rangliste"}, lex.Ranking)
	assert.Equal(t, DefaultLexicon().Trend, lex.Trend)
	assert.True(t, lex.DetectIntent(Normalize("Wachstum pro Jahr")).Growth)
	assert.False(t, lex.DetectIntent(Normalize("growth per year")).Growth)
}

func TestParseLexicon_Invalid(t *testing.T) {
	_, err := ParseLexicon([]byte("months:\n  - [jan]\n"))
	assert.Error(t, err)

	_, err = ParseLexicon([]byte("growth: [unterminated"))
	assert.Error(t, err)
}

func TestLoadLexicon_RoundTrip(t *testing.T) {
	data, err := DefaultLexicon().YAML()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, data, 0600))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultLexicon(), lex)

	_, err = LoadLexicon(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
