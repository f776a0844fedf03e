package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fwojciec/lospec"
)

// FormatsMarkdown describes the supported output formats as a markdown table.
func FormatsMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Output formats\n\n")
	sb.WriteString("| Format | Fetches | Output | Description |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, info := range lospec.Formats() {
		output := "file"
		if info.Kind == lospec.ExportStructured {
			output = "directory"
		}
		fetches := "." + info.Extension
		if info.Sized {
			fetches = fmt.Sprintf("-<size>x.%s", info.Extension)
		}
		fmt.Fprintf(&sb, "| `%s` | `%s` | %s | %s |\n", info.Format, fetches, output, info.Description)
	}
	sb.WriteString("\nUse `--size` to scale `png` output. The default size is 1.\n")
	return sb.String()
}

// renderMarkdown renders md for the terminal. Without a terminal the plain
// notty style is used.
func renderMarkdown(md string, width int, styled bool) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("notty")}
	if styled {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return r.Render(md)
}
