package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/lospec"
)

// ErrNoPalettes is returned when a browse search matches nothing.
var ErrNoPalettes = errors.New("no palettes match the search")

// SearchApp runs catalog searches and shows the results.
type SearchApp struct {
	BaseURL  string
	Fetcher  lospec.Fetcher
	Renderer lospec.Renderer
	Viewer   lospec.Viewer
	Stdout   io.Writer
}

// Search fetches and decodes one page of results.
func (a *SearchApp) Search(ctx context.Context, req lospec.SearchRequest) (lospec.PaletteList, error) {
	body, err := a.Fetcher.Fetch(ctx, lospec.SearchURL(a.BaseURL), req.Query())
	if err != nil {
		return nil, err
	}
	return lospec.DecodePalettes(body)
}

// Run searches and prints the results as swatches.
func (a *SearchApp) Run(ctx context.Context, req lospec.SearchRequest) error {
	palettes, err := a.Search(ctx, req)
	if err != nil {
		return err
	}
	return a.Renderer.Render(a.Stdout, palettes)
}

// Browse searches and opens the results in the interactive viewer.
func (a *SearchApp) Browse(ctx context.Context, req lospec.SearchRequest) error {
	palettes, err := a.Search(ctx, req)
	if err != nil {
		return err
	}
	if len(palettes) == 0 {
		return ErrNoPalettes
	}
	return a.Viewer.View(ctx, palettes)
}

// DownloadApp exports a single palette.
type DownloadApp struct {
	Exporter lospec.Exporter
	Stdout   io.Writer
	Quiet    bool // Suppress the summary line
}

// Run exports req and reports where the output went.
func (a *DownloadApp) Run(ctx context.Context, req lospec.DownloadRequest) error {
	if err := a.Exporter.Export(ctx, req); err != nil {
		return err
	}
	if a.Quiet {
		return nil
	}
	_, err := fmt.Fprintf(a.Stdout, "Saved %s as %s to %s\n", req.Slug, req.Format, req.Path)
	return err
}

// DefaultPath returns the output path used when none is given: a directory
// named after the slug for structured formats, <slug>.<ext> otherwise.
func DefaultPath(slug string, f lospec.Format) string {
	info, ok := lospec.LookupFormat(f)
	if !ok || info.Kind == lospec.ExportStructured {
		return slug
	}
	return slug + "." + info.Extension
}
