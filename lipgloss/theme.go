// Package lipgloss provides terminal rendering for palettes and export
// previews using the Lipgloss styling library.
package lipgloss

import (
	"fmt"
	"strings"

	"github.com/fwojciec/lospec"
)

// Compile-time interface verification.
var _ lospec.Theme = (*Theme)(nil)

// Theme implements lospec.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles lospec.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() lospec.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeNames lists the names accepted by ThemeByName.
var ThemeNames = []string{"dark", "light"}

// ThemeByName returns the theme registered under name.
func ThemeByName(name string) (*Theme, error) {
	switch strings.ToLower(name) {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames, ", "))
	}
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: lospec.Styles{
			Title:  lospec.ColorPair{Foreground: "#cdd6f4"}, // Text
			Author: lospec.ColorPair{Foreground: "#6c7086"}, // Muted gray
			Slug:   lospec.ColorPair{Foreground: "#89b4fa"}, // Blue
			Tag: lospec.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright chip
				Background: "#cba6f7", // Mauve
			},
			Meta: lospec.ColorPair{Foreground: "#6c7086"},
			Selected: lospec.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			Path:   lospec.ColorPair{Foreground: "#89dceb"}, // Sky
			Key:    lospec.ColorPair{Foreground: "#cba6f7"},
			String: lospec.ColorPair{Foreground: "#a6e3a1"},
			Number: lospec.ColorPair{Foreground: "#fab387"},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: lospec.Styles{
			Title:  lospec.ColorPair{Foreground: "#4c4f69"},
			Author: lospec.ColorPair{Foreground: "#9ca0b0"},
			Slug:   lospec.ColorPair{Foreground: "#1e66f5"},
			Tag: lospec.ColorPair{
				Foreground: "#ffffff", // White text on dark chip
				Background: "#8839ef",
			},
			Meta: lospec.ColorPair{Foreground: "#9ca0b0"},
			Selected: lospec.ColorPair{
				Foreground: "#df8e1d",
				Background: "#e6e9ef", // Light surface
			},
			Path:   lospec.ColorPair{Foreground: "#04a5e5"},
			Key:    lospec.ColorPair{Foreground: "#8839ef"},
			String: lospec.ColorPair{Foreground: "#40a02b"},
			Number: lospec.ColorPair{Foreground: "#fe640b"},
		},
	}
}
