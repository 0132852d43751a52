// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// SeriesPalette is the fixed palette chart configs cycle through.
var SeriesPalette = []string{
	"#f37021", // Teradata Orange
	"#60a5fa", // Blue
	"#8b5cf6", // Purple
	"#10b981", // Green
	"#f59e0b", // Amber
	"#ec4899", // Pink
	"#14b8a6", // Teal
	"#ef4444", // Red
	"#84cc16", // Lime
	"#6366f1", // Indigo
}

// PaletteColor returns the palette color for index i, wrapping modulo 10.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return SeriesPalette[i%len(SeriesPalette)]
}

// StyleConfig holds Hawk StyleGuide design tokens used by the ECharts
// projection and the HTML preview.
type StyleConfig struct {
	ColorPrimary    string   `yaml:"color_primary"`
	ColorBackground string   `yaml:"color_background"`
	ColorText       string   `yaml:"color_text"`
	ColorTextMuted  string   `yaml:"color_text_muted"`
	ColorBorder     string   `yaml:"color_border"`
	ColorGlass      string   `yaml:"color_glass"`
	ColorPalette    []string `yaml:"color_palette"`

	FontFamily      string `yaml:"font_family"`
	FontSizeTitle   int    `yaml:"font_size_title"`
	FontSizeLabel   int    `yaml:"font_size_label"`
	FontSizeTooltip int    `yaml:"font_size_tooltip"`

	AnimationDuration int    `yaml:"animation_duration"` // ms
	AnimationEasing   string `yaml:"animation_easing"`

	ShadowBlur    int     `yaml:"shadow_blur"`
	GlowIntensity float64 `yaml:"glow_intensity"` // 0.0-1.0
}

// DefaultStyleConfig returns Hawk StyleGuide defaults
func DefaultStyleConfig() *StyleConfig {
	return &StyleConfig{
		ColorPrimary:      "#f37021", // Teradata Orange
		ColorBackground:   "transparent",
		ColorText:         "#f5f5f5",
		ColorTextMuted:    "#b5b5b5",
		ColorBorder:       "#ffffff1a",
		ColorGlass:        "rgba(26, 26, 26, 0.8)",
		ColorPalette:      append([]string(nil), SeriesPalette...),
		FontFamily:        "IBM Plex Mono, monospace",
		FontSizeTitle:     14,
		FontSizeLabel:     11,
		FontSizeTooltip:   12,
		AnimationDuration: 1500,
		AnimationEasing:   "cubicOut",
		ShadowBlur:        15,
		GlowIntensity:     0.6,
	}
}

// ValidateStyle validates a StyleConfig has all required fields
func ValidateStyle(style *StyleConfig) error {
	if style == nil {
		return fmt.Errorf("style config is nil")
	}
	if style.ColorPrimary == "" {
		return fmt.Errorf("color_primary is required")
	}
	if _, err := colorful.Hex(style.ColorPrimary); err != nil {
		return fmt.Errorf("color_primary %q is not a hex color: %w", style.ColorPrimary, err)
	}
	if style.FontFamily == "" {
		return fmt.Errorf("font_family is required")
	}
	if style.AnimationDuration <= 0 {
		return fmt.Errorf("animation_duration must be positive")
	}
	return nil
}

// MergeStyles merges a custom style with defaults (custom overrides defaults)
func MergeStyles(custom, defaults *StyleConfig) *StyleConfig {
	if custom == nil {
		return defaults
	}
	if defaults == nil {
		defaults = DefaultStyleConfig()
	}

	merged := *defaults

	if custom.ColorPrimary != "" {
		merged.ColorPrimary = custom.ColorPrimary
	}
	if custom.ColorBackground != "" {
		merged.ColorBackground = custom.ColorBackground
	}
	if custom.ColorText != "" {
		merged.ColorText = custom.ColorText
	}
	if custom.ColorTextMuted != "" {
		merged.ColorTextMuted = custom.ColorTextMuted
	}
	if custom.ColorBorder != "" {
		merged.ColorBorder = custom.ColorBorder
	}
	if custom.ColorGlass != "" {
		merged.ColorGlass = custom.ColorGlass
	}
	if len(custom.ColorPalette) > 0 {
		merged.ColorPalette = custom.ColorPalette
	}
	if custom.FontFamily != "" {
		merged.FontFamily = custom.FontFamily
	}
	if custom.FontSizeTitle > 0 {
		merged.FontSizeTitle = custom.FontSizeTitle
	}
	if custom.FontSizeLabel > 0 {
		merged.FontSizeLabel = custom.FontSizeLabel
	}
	if custom.FontSizeTooltip > 0 {
		merged.FontSizeTooltip = custom.FontSizeTooltip
	}
	if custom.AnimationDuration > 0 {
		merged.AnimationDuration = custom.AnimationDuration
	}
	if custom.AnimationEasing != "" {
		merged.AnimationEasing = custom.AnimationEasing
	}
	if custom.ShadowBlur > 0 {
		merged.ShadowBlur = custom.ShadowBlur
	}
	if custom.GlowIntensity > 0 {
		merged.GlowIntensity = custom.GlowIntensity
	}

	return &merged
}

// ThemeVariants lists the names GetThemeVariant recognizes.
var ThemeVariants = []string{"dark", "light", "teradata", "minimal"}

// GetThemeVariant returns a style config for a specific theme variant
func GetThemeVariant(variant string) *StyleConfig {
	style := DefaultStyleConfig()

	switch variant {
	case "light":
		style.ColorBackground = "#ffffff"
		style.ColorText = "#1a1a1a"
		style.ColorTextMuted = "#6b7280"
		style.ColorBorder = "#e5e7eb"
		style.ColorGlass = "rgba(255, 255, 255, 0.8)"
	case "teradata":
		style.ColorPrimary = "#f37021"
		style.ColorPalette = []string{
			"#f37021", // Teradata Orange
			"#00233d", // Teradata Navy
			"#fbbf24", // Gold
			"#10b981", // Green
		}
	case "minimal":
		style.ColorPrimary = "#6b7280"
		style.ColorPalette = []string{
			"#1f2937",
			"#374151",
			"#4b5563",
			"#6b7280",
			"#9ca3af",
		}
		style.AnimationDuration = 800
	}

	return style
}

// darkenColor darkens a hex color by amount (0.0-1.0), blending toward
// black in Lab space. Unparseable colors are returned unchanged.
func darkenColor(hexColor string, amount float64) string {
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return hexColor
	}
	return c.BlendLab(colorful.Color{}, amount).Clamped().Hex()
}

// translucent returns an rgba() form of a hex color with the given alpha.
func translucent(hexColor string, alpha float64) string {
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return hexColor
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, alpha)
}
