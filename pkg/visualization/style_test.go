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

func TestGetThemeVariant(t *testing.T) {
	tests := []struct {
		variant    string
		background string
		primary    string
	}{
		{"dark", "transparent", "#f37021"},
		{"light", "#ffffff", "#f37021"},
		{"teradata", "transparent", "#f37021"},
		{"minimal", "transparent", "#6b7280"},
		{"unknown", "transparent", "#f37021"},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			style := GetThemeVariant(tt.variant)
			assert.Equal(t, tt.background, style.ColorBackground)
			assert.Equal(t, tt.primary, style.ColorPrimary)
			assert.NoError(t, ValidateStyle(style))
		})
	}
}

func TestMergeStyles(t *testing.T) {
	merged := MergeStyles(&StyleConfig{ColorPrimary: "#123456", FontSizeTitle: 20}, nil)
	assert.Equal(t, "#123456", merged.ColorPrimary)
	assert.Equal(t, 20, merged.FontSizeTitle)
	assert.Equal(t, DefaultStyleConfig().FontFamily, merged.FontFamily)

	defaults := DefaultStyleConfig()
	assert.Same(t, defaults, MergeStyles(nil, defaults))
}

func TestValidateStyle(t *testing.T) {
	assert.Error(t, ValidateStyle(nil))

	style := DefaultStyleConfig()
	style.ColorPrimary = "orange"
	assert.Error(t, ValidateStyle(style))

	style = DefaultStyleConfig()
	style.AnimationDuration = 0
	assert.Error(t, ValidateStyle(style))
}

func TestColorHelpers(t *testing.T) {
	assert.Equal(t, "#000000", darkenColor("#ffffff", 1))
	assert.Equal(t, "not-a-color", darkenColor("not-a-color", 0.5))
	assert.Equal(t, "rgba(243, 112, 33, 0.50)", translucent("#f37021", 0.5))

	require.Len(t, SeriesPalette, 10)
	assert.Equal(t, SeriesPalette[3], PaletteColor(13))
}
