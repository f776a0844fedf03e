// Package lospec provides domain types for searching the Lospec palette
// catalog and exporting palettes to files.
package lospec

import (
	"context"
	"io"
)

// DefaultBaseURL is the catalog host used when no override is configured.
const DefaultBaseURL = "https://lospec.com"

// Fetcher retrieves raw response bodies from the catalog.
type Fetcher interface {
	// Fetch issues a GET to url with the given query appended and returns the
	// response body. Failures are reported as *TransportError.
	Fetch(ctx context.Context, url string, query Query) ([]byte, error)
}

// FileSystem is the subset of filesystem operations the export engine needs.
type FileSystem interface {
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
	// WriteFile writes data to path, replacing any existing file.
	WriteFile(path string, data []byte) error
	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)
	// RemoveAll removes path and everything below it.
	RemoveAll(path string) error
	// Exists reports whether path exists.
	Exists(path string) (bool, error)
}

// Renderer writes a page of search results to a terminal.
type Renderer interface {
	Render(w io.Writer, palettes PaletteList) error
}

// Viewer displays a page of search results interactively and blocks until
// the user exits.
type Viewer interface {
	View(ctx context.Context, palettes PaletteList) error
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}

// Exporter downloads a palette and writes it to disk in the requested format.
type Exporter interface {
	Export(ctx context.Context, req DownloadRequest) error
}

// SearchURL returns the catalog endpoint for palette searches.
func SearchURL(baseURL string) string {
	return trimSlash(baseURL) + "/palette-list/load"
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
