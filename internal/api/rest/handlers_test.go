package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/assemble"
	"github.com/fortuna/gridiron/internal/dataset"
	"github.com/fortuna/gridiron/internal/fantasy"
	"github.com/fortuna/gridiron/internal/record"
	"github.com/fortuna/gridiron/internal/schema"
)

// stubSource serves one synthetic player row for any known category and year.
type stubSource struct{}

func (stubSource) Season(_ context.Context, year int, category string) ([]string, []record.RawRow, error) {
	cat, err := schema.Lookup(category)
	if err != nil {
		return nil, nil, err
	}
	cols := make([]string, len(cat.Fields))
	cells := make([]string, len(cat.Fields))
	for i, f := range cat.Fields {
		cols[i] = f.Name
		switch f.Name {
		case schema.NameField:
			cells[i] = "Test Player"
		case schema.IdentityField:
			cells[i] = "/p/test"
		}
	}
	return cols, []record.RawRow{{Cells: cells, PlayerURL: "/p/test", RawName: "Test Player"}}, nil
}

type stubSupplier struct{}

func (stubSupplier) Supplement(_ context.Context, _ int, _ string) (*dataset.Dataset, error) {
	return dataset.New("name", nil), nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	eng, err := fantasy.NewEngine(stubSupplier{}, nil)
	require.NoError(t, err)
	handler := NewHandler(assemble.New(stubSource{}), eng, nil)
	return NewServer("0", handler).Router()
}

func get(t *testing.T, router http.Handler, url string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	rec := get(t, newTestRouter(t), "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestGetCategories(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/v1/categories", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, schema.Categories(), payload.Categories)
}

func TestGetStatsJSON(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/v1/stats?category=rushing&year=2018", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Rows int                      `json:"rows"`
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, 1, payload.Rows)
	assert.Equal(t, "Test Player", payload.Data[0]["player"])
	assert.Equal(t, "/p/test2018", payload.Data[0]["key"])
}

func TestGetStatsCSV(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/v1/stats?category=rushing&year=2018&format=csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "key,player,"))

	// Accept header selects CSV too.
	rec = get(t, newTestRouter(t), "/api/v1/stats?category=rushing&year=2018",
		map[string]string{"Accept": "text/csv"})
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
}

func TestGetStatsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/stats?category=rushing&year=notayear", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, router, "/api/v1/stats?category=rushing", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, router, "/api/v1/stats?category=bowling&year=2018", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFantasyDefaultsToFantasyCategory(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/v1/fantasy?year=2018", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Columns []string                 `json:"columns"`
		Data    []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload.Columns, fantasy.PointsColumn)
	require.Len(t, payload.Data, 1)
	assert.Contains(t, payload.Data[0], fantasy.PointsColumn)
}
