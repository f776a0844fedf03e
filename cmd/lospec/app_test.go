package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/fwojciec/lospec"
	main "github.com/fwojciec/lospec/cmd/lospec"
	"github.com/fwojciec/lospec/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const onePalette = `{"palettes":[{"_id":"1","tags":["retro"],"colors":["ff0000","00ff00"],
	"title":"Duo","slug":"duo","publishedAt":"2020-01-01T00:00:00Z",
	"createdAt":"2020-01-01T00:00:00Z","user":{"name":"Ann","slug":"ann"}}]}`

func fetcherReturning(body string, gotURL *string, gotQuery *lospec.Query) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string, query lospec.Query) ([]byte, error) {
			if gotURL != nil {
				*gotURL = url
			}
			if gotQuery != nil {
				*gotQuery = query
			}
			return []byte(body), nil
		},
	}
}

func TestSearchApp_Run(t *testing.T) {
	t.Parallel()

	t.Run("fetches, decodes and renders one page", func(t *testing.T) {
		t.Parallel()

		var url string
		var query lospec.Query
		var rendered lospec.PaletteList
		var out bytes.Buffer
		app := &main.SearchApp{
			BaseURL: "http://catalog.test",
			Fetcher: fetcherReturning(onePalette, &url, &query),
			Renderer: &mock.Renderer{
				RenderFn: func(w io.Writer, palettes lospec.PaletteList) error {
					rendered = palettes
					_, err := io.WriteString(w, "rendered")
					return err
				},
			},
			Stdout: &out,
		}

		err := app.Run(context.Background(), lospec.SearchRequest{Filter: lospec.ExactColors(2), Page: 3})

		require.NoError(t, err)
		assert.Equal(t, "http://catalog.test/palette-list/load", url)
		assert.Equal(t, "page=3&sortingType=default&tag=&colorNumberFilterType=exact&colorNumber=2", query.Encode())
		require.Len(t, rendered, 1)
		assert.Equal(t, "duo", rendered[0].Slug)
		assert.Equal(t, "rendered", out.String())
	})

	t.Run("transport errors are returned", func(t *testing.T) {
		t.Parallel()

		transportErr := &lospec.TransportError{URL: "u", StatusCode: 503}
		app := &main.SearchApp{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string, query lospec.Query) ([]byte, error) {
					return nil, transportErr
				},
			},
			Renderer: &mock.Renderer{},
		}

		err := app.Run(context.Background(), lospec.SearchRequest{})

		assert.Equal(t, transportErr, err)
	})

	t.Run("decode errors are returned before rendering", func(t *testing.T) {
		t.Parallel()

		app := &main.SearchApp{
			Fetcher:  fetcherReturning(`{"palettes":[{"colors":["zz"]}]}`, nil, nil),
			Renderer: &mock.Renderer{},
		}

		err := app.Run(context.Background(), lospec.SearchRequest{})

		var decodeErr *lospec.DecodeError
		require.ErrorAs(t, err, &decodeErr)
	})
}

func TestSearchApp_Browse(t *testing.T) {
	t.Parallel()

	t.Run("opens the viewer with the results", func(t *testing.T) {
		t.Parallel()

		var viewed lospec.PaletteList
		app := &main.SearchApp{
			Fetcher: fetcherReturning(onePalette, nil, nil),
			Viewer: &mock.Viewer{
				ViewFn: func(ctx context.Context, palettes lospec.PaletteList) error {
					viewed = palettes
					return nil
				},
			},
		}

		err := app.Browse(context.Background(), lospec.SearchRequest{})

		require.NoError(t, err)
		require.Len(t, viewed, 1)
		assert.Equal(t, "Duo", viewed[0].Title)
	})

	t.Run("empty results do not open the viewer", func(t *testing.T) {
		t.Parallel()

		app := &main.SearchApp{
			Fetcher: fetcherReturning(`{"palettes":[]}`, nil, nil),
			Viewer:  &mock.Viewer{},
		}

		err := app.Browse(context.Background(), lospec.SearchRequest{})

		assert.ErrorIs(t, err, main.ErrNoPalettes)
	})

	t.Run("viewer errors are returned", func(t *testing.T) {
		t.Parallel()

		viewErr := errors.New("terminal error")
		app := &main.SearchApp{
			Fetcher: fetcherReturning(onePalette, nil, nil),
			Viewer: &mock.Viewer{
				ViewFn: func(ctx context.Context, palettes lospec.PaletteList) error {
					return viewErr
				},
			},
		}

		err := app.Browse(context.Background(), lospec.SearchRequest{})

		assert.Equal(t, viewErr, err)
	})
}

func TestDownloadApp_Run(t *testing.T) {
	t.Parallel()

	req := lospec.DownloadRequest{Slug: "duo", Path: "duo.gpl", Format: lospec.FormatGPL}

	t.Run("exports and prints a summary", func(t *testing.T) {
		t.Parallel()

		var exported lospec.DownloadRequest
		var out bytes.Buffer
		app := &main.DownloadApp{
			Exporter: &mock.Exporter{
				ExportFn: func(ctx context.Context, r lospec.DownloadRequest) error {
					exported = r
					return nil
				},
			},
			Stdout: &out,
		}

		err := app.Run(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, req, exported)
		assert.Equal(t, "Saved duo as gpl to duo.gpl\n", out.String())
	})

	t.Run("quiet suppresses the summary", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		app := &main.DownloadApp{
			Exporter: &mock.Exporter{
				ExportFn: func(ctx context.Context, r lospec.DownloadRequest) error { return nil },
			},
			Stdout: &out,
			Quiet:  true,
		}

		require.NoError(t, app.Run(context.Background(), req))
		assert.Empty(t, out.String())
	})

	t.Run("export errors are returned without a summary", func(t *testing.T) {
		t.Parallel()

		ioErr := &lospec.IOError{Op: "write", Path: "duo.gpl", Err: errors.New("denied")}
		var out bytes.Buffer
		app := &main.DownloadApp{
			Exporter: &mock.Exporter{
				ExportFn: func(ctx context.Context, r lospec.DownloadRequest) error { return ioErr },
			},
			Stdout: &out,
		}

		err := app.Run(context.Background(), req)

		assert.Equal(t, ioErr, err)
		assert.Empty(t, out.String())
	})
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "duo", main.DefaultPath("duo", lospec.FormatColorset))
	assert.Equal(t, "duo.hex", main.DefaultPath("duo", lospec.FormatHex))
	assert.Equal(t, "duo.png", main.DefaultPath("duo", lospec.FormatPNG))
	assert.Equal(t, "duo.gpl", main.DefaultPath("duo", lospec.FormatGPL))
}

func TestFormatsMarkdown(t *testing.T) {
	t.Parallel()

	md := main.FormatsMarkdown()

	for _, name := range lospec.FormatNames() {
		assert.Contains(t, md, "`"+name+"`")
	}
	assert.Contains(t, md, "`-<size>x.png`")
	assert.Contains(t, md, "| `colorset` | `.hex` | directory |")
}
