package pfr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	mu    sync.Mutex
	pages map[string]string
}

func newMemCache() *memCache { return &memCache{pages: make(map[string]string)} }

func (m *memCache) Get(_ context.Context, url string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	html, ok := m.pages[url]
	return html, ok
}

func (m *memCache) Set(_ context.Context, url, html string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[url] = html
}

func TestSeasonFetchesAndParses(t *testing.T) {
	var gotPath, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(rushingPage))
	}))
	defer srv.Close()

	c := New(srv.URL)
	cols, rows, err := c.Season(context.Background(), 2018, "rushing")
	require.NoError(t, err)

	assert.Equal(t, "/years/2018/rushing.htm", gotPath)
	assert.Equal(t, UserAgent, gotUA)
	assert.Equal(t, "player", cols[0])
	assert.Len(t, rows, 2)
}

func TestSeasonUnknownCategoryDoesNotFetch(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, _, err := c.Season(context.Background(), 2018, "bowling")
	require.Error(t, err)
	assert.Zero(t, requests)
}

func TestFetchSeasonPageNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.FetchSeasonPage(context.Background(), 2018, "rushing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFetchSeasonPageUsesCache(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(rushingPage))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.UseCache(newMemCache())

	for i := 0; i < 3; i++ {
		html, err := c.FetchSeasonPage(context.Background(), 2018, "rushing")
		require.NoError(t, err)
		assert.Equal(t, rushingPage, html)
	}
	assert.Equal(t, 1, requests)
}
