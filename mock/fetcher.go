// Package mock provides test doubles for lospec interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/lospec"
)

// Compile-time interface verification.
var _ lospec.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of lospec.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, query lospec.Query) ([]byte, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string, query lospec.Query) ([]byte, error) {
	return f.FetchFn(ctx, url, query)
}
