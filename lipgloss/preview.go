package lipgloss

import (
	"fmt"
	"io"
	iofs "io/fs"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/lospec"
)

// Compile-time interface verification.
var _ lospec.FileSystem = (*Preview)(nil)

// manifestIndent prefixes highlighted file contents in the preview.
const manifestIndent = "    "

// Preview implements lospec.FileSystem by describing each operation
// instead of performing it. Text files with a known language are printed
// with syntax highlighting.
type Preview struct {
	mu        sync.Mutex
	w         io.Writer
	renderer  *lipgloss.Renderer
	theme     lospec.Theme
	tokenizer lospec.Tokenizer
	detector  lospec.LanguageDetector
}

// PreviewOption configures a Preview.
type PreviewOption func(*Preview)

// WithPreviewRenderer sets the lipgloss renderer used for color output.
func WithPreviewRenderer(r *lipgloss.Renderer) PreviewOption {
	return func(p *Preview) {
		p.renderer = r
	}
}

// WithPreviewTheme sets the theme used for operations and paths.
func WithPreviewTheme(t lospec.Theme) PreviewOption {
	return func(p *Preview) {
		p.theme = t
	}
}

// WithHighlighting enables syntax-highlighted file contents. Both the
// tokenizer and the detector are required.
func WithHighlighting(t lospec.Tokenizer, d lospec.LanguageDetector) PreviewOption {
	return func(p *Preview) {
		p.tokenizer = t
		p.detector = d
	}
}

// NewPreview creates a Preview that writes to w.
func NewPreview(w io.Writer, opts ...PreviewOption) *Preview {
	p := &Preview{w: w, theme: DefaultTheme()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MkdirAll prints the directory that would be created.
func (p *Preview) MkdirAll(path string) error {
	return p.print(p.operation("mkdir", path) + "\n")
}

// WriteFile prints the file that would be written and, if its language is
// known, its highlighted contents.
func (p *Preview) WriteFile(path string, data []byte) error {
	var sb strings.Builder
	sb.WriteString(p.operation("write", path))
	sb.WriteString(p.meta(fmt.Sprintf(" (%d bytes)", len(data))))
	sb.WriteString("\n")
	for _, line := range p.highlight(path, data) {
		sb.WriteString(manifestIndent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return p.print(sb.String())
}

// RemoveAll prints the path that would be removed.
func (p *Preview) RemoveAll(path string) error {
	return p.print(p.operation("remove", path) + "\n")
}

// ReadFile always fails with fs.ErrNotExist; nothing is ever written.
func (p *Preview) ReadFile(path string) ([]byte, error) {
	return nil, &lospec.IOError{Op: "read", Path: path, Err: iofs.ErrNotExist}
}

// Exists reports false for every path; a preview always starts from an
// empty destination.
func (p *Preview) Exists(string) (bool, error) {
	return false, nil
}

func (p *Preview) operation(op, path string) string {
	styles := p.theme.Styles()
	opStyle := StyleFromColorPair(styles.Meta, p.renderer)
	pathStyle := StyleFromColorPair(styles.Path, p.renderer)
	return opStyle.Render(fmt.Sprintf("%-6s", op)) + " " + pathStyle.Render(path)
}

func (p *Preview) meta(s string) string {
	return StyleFromColorPair(p.theme.Styles().Meta, p.renderer).Render(s)
}

// highlight returns the rendered lines of data, or nil when the file is not
// highlightable.
func (p *Preview) highlight(path string, data []byte) []string {
	if p.tokenizer == nil || p.detector == nil {
		return nil
	}
	language := p.detector.DetectFromPath(path)
	if language == "" {
		return nil
	}
	tokenLines := p.tokenizer.TokenizeLines(language, string(data))
	lines := make([]string, len(tokenLines))
	for i, tokens := range tokenLines {
		lines[i] = RenderTokens(tokens, p.renderer)
	}
	return lines
}

// print writes s as one unit so concurrent writers do not interleave.
func (p *Preview) print(s string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := io.WriteString(p.w, s)
	return err
}
