package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/fortuna/gridiron/internal/assemble"
	"github.com/fortuna/gridiron/internal/dataset"
	"github.com/fortuna/gridiron/internal/fantasy"
	"github.com/fortuna/gridiron/internal/ingest/pfr"
	"github.com/fortuna/gridiron/internal/schema"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	assembler *assemble.Assembler
	engine    *fantasy.Engine
	reporter  assemble.Reporter
}

// NewHandler creates a new handler. The reporter receives progress events
// for every scrape triggered over HTTP and may be nil.
func NewHandler(asm *assemble.Assembler, eng *fantasy.Engine, rep assemble.Reporter) *Handler {
	return &Handler{
		assembler: asm,
		engine:    eng,
		reporter:  rep,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "gridiron",
	})
}

// GetCategories returns the supported stat categories
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": schema.Categories(),
	})
}

// GetStats assembles a dataset for the requested categories and seasons and
// returns it as JSON or CSV
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	opts, err := parseOptions(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	ds, err := h.assembler.SeasonPlayerStats(r.Context(), opts, h.reporter)
	if err != nil {
		respondAssembleError(w, err)
		return
	}

	respondDataset(w, r, ds)
}

// GetFantasy assembles a dataset and annotates it with fantasy points. The
// fantasy category is the default when none is requested.
func (h *Handler) GetFantasy(w http.ResponseWriter, r *http.Request) {
	opts, err := parseOptions(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	if opts.Category == "" && len(opts.Categories) == 0 {
		opts.Category = "fantasy"
	}

	ds, err := h.assembler.SeasonPlayerStats(r.Context(), opts, h.reporter)
	if err != nil {
		respondAssembleError(w, err)
		return
	}

	if err := h.engine.Score(r.Context(), ds); err != nil {
		respondError(w, http.StatusBadGateway, "Failed to compute fantasy points", err)
		return
	}

	respondDataset(w, r, ds)
}

// parseOptions builds assemble options from query parameters. Validation
// proper happens in the assembler; this only converts types.
func parseOptions(r *http.Request) (assemble.Options, error) {
	var opts assemble.Options
	var err error

	q := r.URL.Query()
	if opts.Year, err = intParam(q.Get("year")); err != nil {
		return opts, err
	}
	if opts.StartYear, err = intParam(q.Get("start")); err != nil {
		return opts, err
	}
	if opts.EndYear, err = intParam(q.Get("end")); err != nil {
		return opts, err
	}

	opts.Category = q.Get("category")
	if list := q.Get("categories"); list != "" {
		for _, c := range strings.Split(list, ",") {
			opts.Categories = append(opts.Categories, strings.TrimSpace(c))
		}
	}
	return opts, nil
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// respondDataset writes the dataset as CSV when the client asked for it and
// JSON otherwise
func respondDataset(w http.ResponseWriter, r *http.Request, ds *dataset.Dataset) {
	wantCSV := r.URL.Query().Get("format") == "csv" ||
		strings.Contains(r.Header.Get("Accept"), "text/csv")

	if wantCSV {
		w.Header().Set("Content-Type", "text/csv")
		if err := ds.WriteCSV(w); err != nil {
			log.Printf("[rest] write csv response: %v", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"rows":    ds.Len(),
		"columns": append([]string{ds.Index()}, ds.Columns()...),
		"data":    ds.Records(),
	})
}

// respondAssembleError maps pipeline errors onto HTTP statuses: caller
// mistakes are 400s, upstream scrape failures are 502s
func respondAssembleError(w http.ResponseWriter, err error) {
	var argErr *assemble.ArgumentError
	var ucErr *schema.UnknownCategoryError
	var emptyErr *pfr.EmptyTableError
	switch {
	case errors.As(err, &argErr), errors.As(err, &ucErr):
		respondError(w, http.StatusBadRequest, "Invalid stats request", err)
	case errors.As(err, &emptyErr):
		respondError(w, http.StatusNotFound, "No data for requested season", err)
	default:
		respondError(w, http.StatusBadGateway, "Failed to assemble stats", err)
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}
