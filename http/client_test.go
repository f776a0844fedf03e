package http_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/lospec"
	lospechttp "github.com/fwojciec/lospec/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body and sends ordered query", func(t *testing.T) {
		t.Parallel()

		var gotQuery, gotPath, gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte(`{"palettes":[]}`))
		}))
		t.Cleanup(srv.Close)

		client := lospechttp.NewClient()
		query := lospec.SearchRequest{Filter: lospec.ExactColors(8), Page: 2}.Query()

		body, err := client.Fetch(context.Background(), lospec.SearchURL(srv.URL), query)

		require.NoError(t, err)
		assert.Equal(t, `{"palettes":[]}`, string(body))
		assert.Equal(t, "/palette-list/load", gotPath)
		assert.Equal(t, "page=2&sortingType=default&tag=&colorNumberFilterType=exact&colorNumber=8", gotQuery)
		assert.Equal(t, lospechttp.DefaultUserAgent, gotUA)
	})

	t.Run("returns binary bodies unchanged", func(t *testing.T) {
		t.Parallel()

		payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff, '\n'}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(payload)
		}))
		t.Cleanup(srv.Close)

		body, err := lospechttp.NewClient().Fetch(context.Background(), srv.URL+"/palette-list/x-1x.png", nil)

		require.NoError(t, err)
		assert.Equal(t, payload, body)
	})

	t.Run("body over the size limit is a transport error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("0123456789abcdefX"))
		}))
		t.Cleanup(srv.Close)

		client := lospechttp.NewClient(lospechttp.WithMaxBodySize(16))
		body, err := client.Fetch(context.Background(), srv.URL+"/palette-list/x.ase", nil)

		var transportErr *lospec.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Zero(t, transportErr.StatusCode)
		assert.ErrorContains(t, err, "response exceeds 16 bytes")
		assert.Nil(t, body)
	})

	t.Run("body at the size limit is returned whole", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("0123456789abcdef"))
		}))
		t.Cleanup(srv.Close)

		client := lospechttp.NewClient(lospechttp.WithMaxBodySize(16))
		body, err := client.Fetch(context.Background(), srv.URL+"/palette-list/x.ase", nil)

		require.NoError(t, err)
		assert.Equal(t, "0123456789abcdef", string(body))
	})

	t.Run("default limit rejects bodies past 32MB", func(t *testing.T) {
		t.Parallel()

		chunk := bytes.Repeat([]byte{0xAB}, 1<<20)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for i := 0; i < 33; i++ {
				if _, err := w.Write(chunk); err != nil {
					return
				}
			}
		}))
		t.Cleanup(srv.Close)

		body, err := lospechttp.NewClient().Fetch(context.Background(), srv.URL+"/palette-list/big-1x.png", nil)

		var transportErr *lospec.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Nil(t, body)
	})

	t.Run("non-2xx status is a transport error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		t.Cleanup(srv.Close)

		_, err := lospechttp.NewClient().Fetch(context.Background(), srv.URL+"/palette-list/missing.hex", nil)

		var transportErr *lospec.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
		assert.Equal(t, srv.URL+"/palette-list/missing.hex", transportErr.URL)
	})

	t.Run("connection failure is a transport error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := lospechttp.NewClient().Fetch(context.Background(), url, nil)

		var transportErr *lospec.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Zero(t, transportErr.StatusCode)
	})

	t.Run("honors timeout option", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(srv.Close)
		t.Cleanup(func() { close(release) })

		client := lospechttp.NewClient(lospechttp.WithTimeout(50 * time.Millisecond))

		_, err := client.Fetch(context.Background(), srv.URL, nil)

		var transportErr *lospec.TransportError
		require.ErrorAs(t, err, &transportErr)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		t.Cleanup(srv.Close)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := lospechttp.NewClient().Fetch(ctx, srv.URL, nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("uses custom user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		t.Cleanup(srv.Close)

		_, err := lospechttp.NewClient(lospechttp.WithUserAgent("test-agent")).Fetch(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, "test-agent", gotUA)
	})
}
