package company

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsignal/signkit/pkg/apiclient"
	"github.com/docsignal/signkit/pkg/async"
)

const companyPage = `{
	"count": 1,
	"next": null,
	"previous": null,
	"results": [{"id": 7, "name": "Acme Corp", "provider": 1, "provider_name": "ZapSign", "provider_code": "zapsign"}]
}`

const emptyPage = `{"count": 0, "next": null, "previous": null, "results": []}`

func newTestLoader(t *testing.T, handler http.Handler) *Loader {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	return NewLoader(client, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestLoader_EnsureLoaded(t *testing.T) {
	t.Parallel()

	t.Run("concurrent callers share one request", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		release := make(chan struct{})
		loader := newTestLoader(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			<-release
			w.Write([]byte(companyPage))
		}))

		ctx := context.Background()
		const callers = 8
		futures := make([]*async.Future[*Company], callers)
		for i := 0; i < callers; i++ {
			futures[i] = loader.EnsureLoaded(ctx)
		}

		close(release)

		results, err := async.WaitAll(ctx, futures...)
		require.NoError(t, err)
		for i, company := range results {
			require.NotNil(t, company, "caller %d", i)
			assert.EqualValues(t, 7, company.ID)
			assert.Same(t, results[0], company, "caller %d observed a different value", i)
		}
		assert.EqualValues(t, 1, requests.Load())
	})

	t.Run("cached company resolves without a request", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		loader := newTestLoader(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.Write([]byte(companyPage))
		}))

		ctx := context.Background()
		_, err := loader.Load(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, requests.Load())

		future := loader.EnsureLoaded(ctx)
		assert.True(t, future.IsComplete())

		company, err := future.Await(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 7, company.ID)
		assert.EqualValues(t, 1, requests.Load())
	})

	t.Run("failure normalizes to nil and allows retry", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		var failing atomic.Bool
		failing.Store(true)
		loader := newTestLoader(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			if failing.Load() {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(companyPage))
		}))

		ctx := context.Background()
		company, err := loader.EnsureLoaded(ctx).Await(ctx)
		require.NoError(t, err)
		assert.Nil(t, company)

		_, cached := loader.Cached()
		assert.False(t, cached)

		// The in-flight slot was cleared, so the next call retries.
		failing.Store(false)
		company, err = loader.EnsureLoaded(ctx).Await(ctx)
		require.NoError(t, err)
		require.NotNil(t, company)
		assert.EqualValues(t, 2, requests.Load())
	})

	t.Run("empty company list also normalizes to nil", func(t *testing.T) {
		t.Parallel()

		loader := newTestLoader(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(emptyPage))
		}))

		company, err := loader.EnsureLoaded(context.Background()).Await(context.Background())
		require.NoError(t, err)
		assert.Nil(t, company)
	})
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("stores the first company", func(t *testing.T) {
		t.Parallel()

		loader := newTestLoader(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/companies/", r.URL.Path)
			w.Write([]byte(companyPage))
		}))

		company, err := loader.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", company.Name)

		cached, ok := loader.Cached()
		require.True(t, ok)
		assert.Same(t, company, cached)
	})

	t.Run("empty result is ErrNoCompanyFound", func(t *testing.T) {
		t.Parallel()

		loader := newTestLoader(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(emptyPage))
		}))

		_, err := loader.Load(context.Background())
		assert.ErrorIs(t, err, ErrNoCompanyFound)

		_, cached := loader.Cached()
		assert.False(t, cached)
	})

	t.Run("transport failure is not ErrNoCompanyFound", func(t *testing.T) {
		t.Parallel()

		client, err := apiclient.New(apiclient.Config{
			BaseURL:        "http://127.0.0.1:1",
			RequestTimeout: time.Second,
		})
		require.NoError(t, err)
		loader := NewLoader(client, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

		_, err = loader.Load(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoCompanyFound)
	})

	t.Run("failed load leaves previous cache in place", func(t *testing.T) {
		t.Parallel()

		var failing atomic.Bool
		loader := newTestLoader(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if failing.Load() {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(companyPage))
		}))

		_, err := loader.Load(context.Background())
		require.NoError(t, err)

		failing.Store(true)
		_, err = loader.Load(context.Background())
		require.Error(t, err)

		cached, ok := loader.Cached()
		require.True(t, ok)
		assert.EqualValues(t, 7, cached.ID)
	})
}

func TestLoader_Invalidate(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	loader := newTestLoader(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(companyPage))
	}))

	ctx := context.Background()
	_, err := loader.Load(ctx)
	require.NoError(t, err)

	loader.Invalidate()
	_, ok := loader.Cached()
	assert.False(t, ok)

	// A fresh fetch is issued after invalidation.
	company, err := loader.EnsureLoaded(ctx).Await(ctx)
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.EqualValues(t, 2, requests.Load())
}

func TestLoader_ErrorDistinction(t *testing.T) {
	t.Parallel()

	// "No company" and "server broken" must stay distinguishable for
	// callers of Load, even though EnsureLoaded folds both into nil.
	loader := newTestLoader(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(emptyPage))
	}))

	_, err := loader.Load(context.Background())
	require.ErrorIs(t, err, ErrNoCompanyFound)

	var apiErr *apiclient.APIError
	assert.False(t, errors.As(err, &apiErr))
}
