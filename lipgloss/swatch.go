package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/lospec"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Compile-time interface verification.
var _ lospec.Renderer = (*Renderer)(nil)

// swatch is the fill printed for each color when labels are off.
const swatch = "  "

// Renderer prints search results as a title line followed by a row of
// color swatches.
type Renderer struct {
	renderer *lipgloss.Renderer
	theme    lospec.Theme
	labels   bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRenderer sets the lipgloss renderer used for color output.
func WithRenderer(r *lipgloss.Renderer) RendererOption {
	return func(sr *Renderer) {
		sr.renderer = r
	}
}

// WithTheme sets the theme used for titles and authors.
func WithTheme(t lospec.Theme) RendererOption {
	return func(sr *Renderer) {
		sr.theme = t
	}
}

// WithHexLabels prints each color's hex value inside its swatch.
func WithHexLabels(on bool) RendererOption {
	return func(sr *Renderer) {
		sr.labels = on
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{theme: DefaultTheme()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes every palette in catalog order: its title (with " by <name>"
// when it has an author), one swatch per color, then a blank line.
func (r *Renderer) Render(w io.Writer, palettes lospec.PaletteList) error {
	styles := r.theme.Styles()
	titleStyle := StyleFromColorPair(styles.Title, r.renderer).Bold(true)
	authorStyle := StyleFromColorPair(styles.Author, r.renderer)

	for _, p := range palettes {
		header := titleStyle.Render(p.Title)
		if p.User != nil {
			header += authorStyle.Render(" by " + p.User.Name)
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", header, r.swatches(p.Colors)); err != nil {
			return err
		}
	}
	return nil
}

// swatches renders a row of background-filled cells for colors.
func (r *Renderer) swatches(colors []lospec.Color) string {
	var sb strings.Builder
	for _, c := range colors {
		style := r.newStyle().Background(lipgloss.Color(c.Hex()))
		if !r.labels {
			sb.WriteString(style.Render(swatch))
			continue
		}
		label := ContrastColor(c)
		style = style.Foreground(lipgloss.Color(label.Hex()))
		sb.WriteString(style.Render(" " + c.String() + " "))
	}
	return sb.String()
}

func (r *Renderer) newStyle() lipgloss.Style {
	if r.renderer != nil {
		return r.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

var (
	black = lospec.Color{}
	white = lospec.Color{R: 0xff, G: 0xff, B: 0xff}
)

// ContrastColor returns black or white, whichever reads better on c.
// The choice uses CIE L*a*b* lightness rather than raw channel sums.
func ContrastColor(c lospec.Color) lospec.Color {
	l, _, _ := toColorful(c).Lab()
	if l > 0.6 {
		return black
	}
	return white
}

func toColorful(c lospec.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
