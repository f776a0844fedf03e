package mock

import (
	"context"

	"github.com/fwojciec/lospec"
)

// Compile-time interface verification.
var _ lospec.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of lospec.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, req lospec.DownloadRequest) error
}

func (e *Exporter) Export(ctx context.Context, req lospec.DownloadRequest) error {
	return e.ExportFn(ctx, req)
}
