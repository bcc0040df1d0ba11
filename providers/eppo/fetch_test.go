package eppo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"risk-hand/config"
)

func newTestFetcher(t *testing.T, handler http.HandlerFunc) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewFetcher(&config.Config{
		EPPOBaseURL:   srv.URL,
		EPPOAuthToken: "test-token",
	}, zap.NewNop())
}

func TestFetchTaxon(t *testing.T) {
	fetcher := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/taxon/TRZAX", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("authtoken"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"codeid":98340,"eppocode":"TRZAX","prefname":"Triticum aestivum","lang":"la"}`))
	})

	taxon, err := fetcher.FetchTaxon(context.Background(), "TRZAX")
	require.NoError(t, err)
	assert.Equal(t, "TRZAX", taxon.EPPOCode)
	assert.Equal(t, "Triticum aestivum", taxon.PreferredName)
}

func TestFetchTaxonNotFound(t *testing.T) {
	fetcher := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := fetcher.FetchTaxon(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerify(t *testing.T) {
	fetcher := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/taxon/TRZAX":
			w.Write([]byte(`{"eppocode":"TRZAX","prefname":"Triticum aestivum"}`))
		case "/taxon/ZEAMX":
			w.Write([]byte(`{"eppocode":"ZEAMX","prefname":"Zea mays"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	t.Run("matching name", func(t *testing.T) {
		result, err := fetcher.Verify(context.Background(), "TRZAX", "triticum aestivum")
		require.NoError(t, err)
		assert.Equal(t, VerifyOK, result.Status)
	})

	t.Run("mismatching name", func(t *testing.T) {
		result, err := fetcher.Verify(context.Background(), "ZEAMX", "Zea mays subsp. mexicana")
		require.NoError(t, err)
		assert.Equal(t, VerifyMismatch, result.Status)
		assert.Equal(t, "Zea mays", result.APIName)
	})

	t.Run("unknown code", func(t *testing.T) {
		result, err := fetcher.Verify(context.Background(), "XXXXX", "whatever")
		require.NoError(t, err)
		assert.Equal(t, VerifyMissing, result.Status)
	})
}
