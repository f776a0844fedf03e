// Package bubbletea provides an interactive terminal browser for palette
// search results using the Bubble Tea framework.
package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/lospec"
	lospeclipgloss "github.com/fwojciec/lospec/lipgloss"
)

// List pane width bounds, in cells.
const (
	minListWidth = 20
	maxListWidth = 40
)

// dateLayout formats catalog timestamps in the details pane.
const dateLayout = "2006-01-02"

// BrowseModel shows a page of palettes as a selectable list next to a
// scrollable details pane for the selected palette.
type BrowseModel struct {
	palettes lospec.PaletteList
	cursor   int
	offset   int // First visible list row

	details    viewport.Model
	keymap     KeyMap
	styles     lospec.Styles
	renderer   *lipgloss.Renderer
	clipboard  lospec.Clipboard
	status     string // Transient message replacing the key help
	width      int
	height     int
	ready      bool
	pendingKey string
}

// BrowseModelOption configures a BrowseModel.
type BrowseModelOption func(*browseModelConfig)

type browseModelConfig struct {
	renderer  *lipgloss.Renderer
	theme     lospec.Theme
	clipboard lospec.Clipboard
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) BrowseModelOption {
	return func(cfg *browseModelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t lospec.Theme) BrowseModelOption {
	return func(cfg *browseModelConfig) {
		cfg.theme = t
	}
}

// WithClipboard enables copying the selected palette's colors.
func WithClipboard(c lospec.Clipboard) BrowseModelOption {
	return func(cfg *browseModelConfig) {
		cfg.clipboard = c
	}
}

// NewBrowseModel creates a new BrowseModel for palettes.
func NewBrowseModel(palettes lospec.PaletteList, opts ...BrowseModelOption) BrowseModel {
	cfg := &browseModelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	theme := cfg.theme
	if theme == nil {
		theme = lospeclipgloss.DefaultTheme()
	}
	return BrowseModel{
		palettes:  palettes,
		keymap:    DefaultKeyMap(),
		styles:    theme.Styles(),
		renderer:  cfg.renderer,
		clipboard: cfg.clipboard,
	}
}

// Selected returns the highlighted palette, or false when the list is empty.
func (m BrowseModel) Selected() (lospec.Palette, bool) {
	if len(m.palettes) == 0 {
		return lospec.Palette{}, false
	}
	return m.palettes[m.cursor], true
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status = ""

		// Handle multi-key sequences (gg for first palette)
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = ""
			m.selectIndex(0)
			return m, nil
		}
		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}
		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Copy):
			m.copySelected()
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.selectIndex(m.cursor - 1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.selectIndex(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keymap.GotoBottom):
			m.selectIndex(len(m.palettes) - 1)
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.details.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.details.HalfPageDown()
			return m, nil
		}
	case tea.WindowSizeMsg:
		statusBarHeight := 1
		m.width = msg.Width
		m.height = max(msg.Height-statusBarHeight, 1)
		detailsWidth := max(m.width-m.listWidth()-1, 1)

		if !m.ready {
			m.details = viewport.New(detailsWidth, m.height)
			m.ready = true
		} else {
			m.details.Width = detailsWidth
			m.details.Height = m.height
		}
		m.details.SetContent(m.renderDetails())
		m.clampOffset()
	}

	var cmd tea.Cmd
	m.details, cmd = m.details.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	sep := m.styleFor(m.styles.Meta).Render(strings.TrimSuffix(strings.Repeat("│\n", m.height), "\n"))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), sep, m.details.View())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBarView())
}

// selectIndex moves the cursor to i, clamped to the list, and refreshes the
// details pane.
func (m *BrowseModel) selectIndex(i int) {
	if len(m.palettes) == 0 {
		return
	}
	i = max(0, min(i, len(m.palettes)-1))
	if i == m.cursor {
		return
	}
	m.cursor = i
	m.clampOffset()
	m.details.SetContent(m.renderDetails())
	m.details.GotoTop()
}

// copySelected copies the selected palette's colors, one "#rrggbb" per line,
// and reports the outcome in the status bar.
func (m *BrowseModel) copySelected() {
	p, ok := m.Selected()
	switch {
	case !ok:
		return
	case m.clipboard == nil:
		m.status = "clipboard unavailable"
		return
	}
	hexes := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexes[i] = c.Hex()
	}
	if err := m.clipboard.Copy(strings.Join(hexes, "\n")); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("copied %d colors from %s", len(p.Colors), p.Slug)
}

// clampOffset scrolls the list so the cursor stays visible.
func (m *BrowseModel) clampOffset() {
	rows := m.height
	if rows <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m BrowseModel) listWidth() int {
	return max(minListWidth, min(m.width/3, maxListWidth))
}

func (m BrowseModel) listView() string {
	width := m.listWidth()
	rowStyle := m.newStyle().Width(width).MaxWidth(width)
	selectedStyle := m.styleFor(m.styles.Selected).Bold(true).Width(width).MaxWidth(width)

	rows := make([]string, 0, m.height)
	for i := m.offset; i < len(m.palettes) && len(rows) < m.height; i++ {
		title := truncate(m.palettes[i].Title, width-2)
		if i == m.cursor {
			rows = append(rows, selectedStyle.Render("> "+title))
		} else {
			rows = append(rows, rowStyle.Render("  "+title))
		}
	}
	for len(rows) < m.height {
		rows = append(rows, rowStyle.Render(""))
	}
	return strings.Join(rows, "\n")
}

// renderDetails describes the selected palette.
func (m BrowseModel) renderDetails() string {
	p, ok := m.Selected()
	if !ok {
		return m.styleFor(m.styles.Meta).Render("No palettes found.")
	}

	titleStyle := m.styleFor(m.styles.Title).Bold(true)
	slugStyle := m.styleFor(m.styles.Slug)
	metaStyle := m.styleFor(m.styles.Meta)
	authorStyle := m.styleFor(m.styles.Author)
	tagStyle := m.styleFor(m.styles.Tag).Padding(0, 1)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(p.Title) + "\n")
	sb.WriteString(slugStyle.Render(p.Slug) + "\n")
	if p.User != nil {
		sb.WriteString(authorStyle.Render(fmt.Sprintf("by %s (@%s)", p.User.Name, p.User.Slug)) + "\n")
	} else {
		sb.WriteString(metaStyle.Render("no author") + "\n")
	}
	if len(p.Tags) > 0 {
		chips := make([]string, len(p.Tags))
		for i, tag := range p.Tags {
			chips[i] = tagStyle.Render(tag)
		}
		sb.WriteString(strings.Join(chips, " ") + "\n")
	}
	sb.WriteString(metaStyle.Render(fmt.Sprintf("published %s  created %s  id %s",
		p.PublishedAt.Format(dateLayout), p.CreatedAt.Format(dateLayout), p.ID)) + "\n")
	sb.WriteString("\n")
	sb.WriteString(metaStyle.Render(fmt.Sprintf("%d colors", len(p.Colors))) + "\n")
	for _, c := range p.Colors {
		swatch := m.newStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
		sb.WriteString(swatch + " " + c.Hex() + "\n")
	}
	return sb.String()
}

func (m BrowseModel) statusBarView() string {
	barStyle := m.styleFor(m.styles.Selected)
	dimStyle := m.styleFor(lospec.ColorPair{
		Foreground: m.styles.Meta.Foreground,
		Background: m.styles.Selected.Background,
	})

	pos := 0
	if len(m.palettes) > 0 {
		pos = m.cursor + 1
	}
	width := digitWidth(len(m.palettes))
	hint := "j/k:select  gg/G:first/last  ctrl+u/d:scroll  y:copy  q:quit"
	if m.status != "" {
		hint = m.status
	}
	content := barStyle.Render(fmt.Sprintf(" palette %*d/%-*d ", width, pos, width, len(m.palettes))) +
		dimStyle.Render("│ "+hint+" ")

	if pad := m.width - lipgloss.Width(content); pad > 0 {
		content += barStyle.Render(strings.Repeat(" ", pad))
	}
	return content
}

func (m BrowseModel) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

func (m BrowseModel) styleFor(cp lospec.ColorPair) lipgloss.Style {
	return lospeclipgloss.StyleFromColorPair(cp, m.renderer)
}

// truncate shortens s to at most width cells, marking the cut with "…".
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// digitWidth returns the number of decimal digits in n.
func digitWidth(n int) int {
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	return w
}
