package mock

import (
	"context"
	"io"

	"github.com/fwojciec/lospec"
)

// Compile-time interface verification.
var (
	_ lospec.Viewer   = (*Viewer)(nil)
	_ lospec.Renderer = (*Renderer)(nil)
)

// Viewer is a mock implementation of lospec.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, palettes lospec.PaletteList) error
}

func (v *Viewer) View(ctx context.Context, palettes lospec.PaletteList) error {
	return v.ViewFn(ctx, palettes)
}

// Renderer is a mock implementation of lospec.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, palettes lospec.PaletteList) error
}

func (r *Renderer) Render(w io.Writer, palettes lospec.PaletteList) error {
	return r.RenderFn(w, palettes)
}
