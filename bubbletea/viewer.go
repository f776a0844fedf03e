package bubbletea

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/lospec"
)

// Compile-time interface verification.
var _ lospec.Viewer = (*Viewer)(nil)

// Viewer implements lospec.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []BrowseModelOption
}

// NewViewer creates a new Viewer. Options are applied to every model it
// starts.
func NewViewer(opts ...BrowseModelOption) *Viewer {
	return &Viewer{opts: opts}
}

// View displays palettes and blocks until the user exits or ctx is done.
func (v *Viewer) View(ctx context.Context, palettes lospec.PaletteList) error {
	m := NewBrowseModel(palettes, v.opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
