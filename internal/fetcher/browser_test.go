package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireBrowser skips when no local Chromium is available.
func requireBrowser(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	if _, ok := launcher.LookPath(); !ok {
		t.Skip("no Chromium found")
	}
}

func newWikiServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/wiki/Kyoto", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != UserAgent {
			http.Error(w, "unexpected user agent", http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1 id="firstHeading">Kyoto</h1></body></html>`))
	})
	mux.HandleFunc("/wiki/Heian-kyo", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/wiki/Kyoto", http.StatusFound)
	})
	mux.HandleFunc("/wiki/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestBrowserFetcher_Success(t *testing.T) {
	requireBrowser(t)
	srv := newWikiServer(t)

	f := NewBrowserFetcher(Options{BaseURL: srv.URL + "/wiki/"})
	res, err := f.Fetch(context.Background(), "Kyoto")
	require.NoError(t, err)
	assert.Contains(t, res.Markup, `id="firstHeading"`)
	assert.Equal(t, srv.URL+"/wiki/Kyoto", res.URL)
}

func TestBrowserFetcher_FollowsRedirects(t *testing.T) {
	requireBrowser(t)
	srv := newWikiServer(t)

	f := NewBrowserFetcher(Options{BaseURL: srv.URL + "/wiki/"})
	res, err := f.Fetch(context.Background(), "Heian-kyo")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/wiki/Kyoto", res.URL)
}

func TestBrowserFetcher_StatusError(t *testing.T) {
	requireBrowser(t)
	srv := newWikiServer(t)

	f := NewBrowserFetcher(Options{BaseURL: srv.URL + "/wiki/"})
	_, err := f.Fetch(context.Background(), "Atlantis")

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, KindHTTPStatus, te.Kind)
	assert.Equal(t, http.StatusNotFound, te.StatusCode)
	assert.Equal(t, srv.URL+"/wiki/Atlantis", te.URL)
}
