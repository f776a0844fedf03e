// Package export downloads palettes from the catalog and writes them to disk
// in one of the formats listed by lospec.Formats.
package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/lospec"
	"github.com/fwojciec/lospec/logging"
	"github.com/rs/zerolog"
)

// Compile-time interface verification.
var _ lospec.Exporter = (*Exporter)(nil)

// DefaultWorkers bounds concurrent per-color writes in structured exports.
const DefaultWorkers = 8

// Exporter implements lospec.Exporter.
type Exporter struct {
	fetcher lospec.Fetcher
	fs      lospec.FileSystem
	baseURL string
	workers int
	logger  zerolog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithBaseURL sets the catalog host.
func WithBaseURL(url string) Option {
	return func(e *Exporter) {
		e.baseURL = url
	}
}

// WithWorkers sets how many per-color writes may run at once.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(e *Exporter) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// NewExporter creates a new Exporter.
func NewExporter(fetcher lospec.Fetcher, fs lospec.FileSystem, opts ...Option) *Exporter {
	e := &Exporter{
		fetcher: fetcher,
		fs:      fs,
		baseURL: lospec.DefaultBaseURL,
		workers: DefaultWorkers,
		logger:  logging.For("export"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// writeFunc turns a fetched payload into output at path.
type writeFunc func(ctx context.Context, e *Exporter, path string, body []byte) error

// writers dispatches on the format's export kind.
var writers = map[lospec.ExportKind]writeFunc{
	lospec.ExportPassthrough: writePassthrough,
	lospec.ExportStructured:  writeColorset,
}

// Export fetches the payload for req and writes it to req.Path.
// Invalid requests are rejected before anything is fetched.
func (e *Exporter) Export(ctx context.Context, req lospec.DownloadRequest) error {
	if errs := lospec.ValidateDownloadRequest(req); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, err := range errs {
			joined[i] = err
		}
		return errors.Join(joined...)
	}
	info, _ := lospec.LookupFormat(req.Format)
	write, ok := writers[info.Kind]
	if !ok {
		return fmt.Errorf("format %q has no writer", req.Format)
	}
	if req.Size != 0 && !info.Sized {
		e.logger.Debug().Str("format", string(req.Format)).Int("size", req.Size).Msg("Size hint ignored")
	}

	url, err := lospec.DownloadURL(e.baseURL, req)
	if err != nil {
		return err
	}

	logger := e.logger.With().Str("slug", req.Slug).Str("format", string(req.Format)).Str("path", req.Path).Logger()
	done := logging.LogOperationStart(logger, "export")
	defer done()

	body, err := e.fetcher.Fetch(ctx, url, nil)
	if err != nil {
		return err
	}
	return write(ctx, e, req.Path, body)
}

// writePassthrough writes the fetched bytes unchanged.
func writePassthrough(_ context.Context, e *Exporter, path string, body []byte) error {
	return asIOError("write", path, e.fs.WriteFile(path, body))
}

// asIOError wraps err in a *lospec.IOError unless it already is one.
func asIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var ioErr *lospec.IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &lospec.IOError{Op: op, Path: path, Err: err}
}
