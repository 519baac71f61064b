package pricecatalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"workorder/internal/adapters/out/pricecatalog"
	"workorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	server  *httptest.Server
	hits    atomic.Int32
	entries map[string]map[string]any
}

// newCatalogServer fakes the upstream price list service.
func newCatalogServer(t *testing.T) *catalogFixture {
	t.Helper()

	f := &catalogFixture{
		entries: map[string]map[string]any{
			"EM 1234": {"emNr": "EM 1234", "name": "Brake pad", "price": 129.50, "unit": "pcs"},
			"EM 2000": {"emNr": "EM 2000", "name": "Bolt", "price": 2.0, "unit": ""},
			"XM 9":    {"emNr": "XM 9", "name": "Grease", "price": 80.0, "unit": "kg"},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/pricelist", func(w http.ResponseWriter, _ *http.Request) {
		f.hits.Add(1)
		all := make([]map[string]any, 0, len(f.entries))
		for _, entry := range f.entries {
			all = append(all, entry)
		}
		_ = json.NewEncoder(w).Encode(all)
	})
	mux.HandleFunc("GET /api/pricelist/search", func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		prefix := r.URL.Query().Get("prefix")
		matches := make([]map[string]any, 0)
		for key, entry := range f.entries {
			if len(prefix) <= len(key) && key[:len(prefix)] == prefix {
				matches = append(matches, entry)
			}
		}
		_ = json.NewEncoder(w).Encode(matches)
	})
	mux.HandleFunc("GET /api/pricelist/{key}", func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		entry, ok := f.entries[r.PathValue("key")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(entry)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func newTestClient(t *testing.T, baseURL string) *pricecatalog.Client {
	t.Helper()
	client, err := pricecatalog.NewClient(baseURL, 2*time.Second)
	require.NoError(t, err)
	return client
}

func TestClient_Lookup(t *testing.T) {
	t.Run("should fetch and normalize an entry", func(t *testing.T) {
		f := newCatalogServer(t)
		client := newTestClient(t, f.server.URL)

		entry, err := client.Lookup(t.Context(), "  em 1234 ")

		require.NoError(t, err)
		assert.Equal(t, "EM 1234", entry.Key())
		assert.Equal(t, "Brake pad", entry.Name())
		assert.Equal(t, 129.50, entry.Price())
		assert.Equal(t, "pcs", entry.Unit())
	})

	t.Run("should default the unit when the catalog sends none", func(t *testing.T) {
		f := newCatalogServer(t)
		client := newTestClient(t, f.server.URL)

		entry, err := client.Lookup(t.Context(), "EM 2000")

		require.NoError(t, err)
		assert.Equal(t, "st", entry.Unit())
	})

	t.Run("should map 404 to object not found", func(t *testing.T) {
		f := newCatalogServer(t)
		client := newTestClient(t, f.server.URL)

		_, err := client.Lookup(t.Context(), "EM 9999")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.True(t, pricecatalog.IsNotFound(err))
	})

	t.Run("should reject a blank key without a request", func(t *testing.T) {
		f := newCatalogServer(t)
		client := newTestClient(t, f.server.URL)

		_, err := client.Lookup(t.Context(), "   ")

		require.Error(t, err)
		assert.Zero(t, f.hits.Load())
	})

	t.Run("should surface server errors", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(broken.Close)
		client := newTestClient(t, broken.URL)

		_, err := client.Lookup(t.Context(), "EM 1234")

		require.Error(t, err)
		assert.False(t, pricecatalog.IsNotFound(err))
	})
}

func TestClient_Search(t *testing.T) {
	t.Run("should return entries matching the prefix", func(t *testing.T) {
		f := newCatalogServer(t)
		client := newTestClient(t, f.server.URL)

		entries, err := client.Search(t.Context(), "em")

		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}
