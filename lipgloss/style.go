package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/lospec"
)

// StyleFromColorPair builds a lipgloss style from a theme color pair.
// If renderer is nil, the default lipgloss renderer is used.
func StyleFromColorPair(cp lospec.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// RenderTokens renders highlighted tokens as a single styled string.
func RenderTokens(tokens []lospec.Token, renderer *lipgloss.Renderer) string {
	var sb strings.Builder
	for _, tok := range tokens {
		style := StyleFromColorPair(lospec.ColorPair{Foreground: tok.Style.Foreground}, renderer)
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		sb.WriteString(style.Render(tok.Text))
	}
	return sb.String()
}
