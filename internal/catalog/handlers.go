package catalog

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/beanlog/cuppa/internal/plugin"
	"github.com/beanlog/cuppa/pkg/models"
)

// statusResponse is the body of GET /catalog/status.
type statusResponse struct {
	Path     string    `json:"path"`
	Loaded   bool      `json:"loaded"`
	Records  int       `json:"records,omitempty"`
	Encoding string    `json:"encoding,omitempty"`
	LoadedAt time.Time `json:"loaded_at,omitzero"`
	Reloads  int64     `json:"reloads"`
	Failures int64     `json:"failures"`
}

// countryStat is one row of GET /catalog/countries.
type countryStat struct {
	Country    string  `json:"country"`
	Records    int     `json:"records"`
	MeanRating float64 `json:"mean_rating"`
}

// Routes implements plugin.HTTPProvider.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "GET", Path: "/records", Handler: m.handleListRecords},
		{Method: "GET", Path: "/countries", Handler: m.handleCountries},
		{Method: "GET", Path: "/status", Handler: m.handleStatus},
		{Method: "POST", Path: "/reload", Handler: m.handleReload},
	}
}

// handleListRecords returns catalog records for inspection.
//
//	@Summary		List records
//	@Description	Returns catalog records, optionally filtered by resolved country.
//	@Tags			catalog
//	@Produce		json
//	@Param			country query string false "Filter by canonical country (or Other)"
//	@Param			limit query int false "Maximum records" default(100)
//	@Success		200 {array} models.Record
//	@Failure		503 {object} map[string]any
//	@Router			/catalog/records [get]
func (m *Module) handleListRecords(w http.ResponseWriter, r *http.Request) {
	snap, err := m.store.Snapshot()
	if err != nil {
		catalogWriteError(w, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}

	country := r.URL.Query().Get("country")
	limit := catalogParseLimit(r, 100)

	out := make([]models.Record, 0, limit)
	for i := range snap.Records {
		if country != "" && snap.Records[i].Country != country {
			continue
		}
		out = append(out, snap.Records[i])
		if len(out) >= limit {
			break
		}
	}
	catalogWriteJSON(w, http.StatusOK, out)
}

// handleCountries returns per-country aggregates.
//
//	@Summary		Country statistics
//	@Description	Returns record counts and mean ratings per resolved country, sorted by mean rating descending.
//	@Tags			catalog
//	@Produce		json
//	@Success		200 {array} countryStat
//	@Failure		503 {object} map[string]any
//	@Router			/catalog/countries [get]
func (m *Module) handleCountries(w http.ResponseWriter, r *http.Request) {
	snap, err := m.store.Snapshot()
	if err != nil {
		catalogWriteError(w, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}

	counts := make(map[string]int)
	sums := make(map[string]float64)
	order := make([]string, 0)
	for i := range snap.Records {
		c := snap.Records[i].Country
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
		sums[c] += snap.Records[i].Rating
	}

	stats := make([]countryStat, 0, len(order))
	for _, c := range order {
		stats = append(stats, countryStat{
			Country:    c,
			Records:    counts[c],
			MeanRating: sums[c] / float64(counts[c]),
		})
	}
	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].MeanRating > stats[b].MeanRating
	})

	catalogWriteJSON(w, http.StatusOK, stats)
}

// handleStatus reports the store's load state.
//
//	@Summary		Catalog status
//	@Description	Returns the catalog source path, load state and reload counters.
//	@Tags			catalog
//	@Produce		json
//	@Success		200 {object} statusResponse
//	@Router			/catalog/status [get]
func (m *Module) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Path:     m.store.Path(),
		Reloads:  m.store.Reloads(),
		Failures: m.store.Failures(),
	}
	if snap, err := m.store.Snapshot(); err == nil {
		resp.Loaded = true
		resp.Records = len(snap.Records)
		resp.Encoding = snap.Encoding
		resp.LoadedAt = snap.LoadedAt
	}
	catalogWriteJSON(w, http.StatusOK, resp)
}

// handleReload forces a catalog reload.
//
//	@Summary		Reload catalog
//	@Description	Re-reads the catalog file and atomically replaces the in-memory snapshot.
//	@Tags			catalog
//	@Produce		json
//	@Success		200 {object} statusResponse
//	@Failure		503 {object} map[string]any
//	@Router			/catalog/reload [post]
func (m *Module) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := m.store.Reload(r.Context())
	if err != nil {
		m.logger.Warn("reload request failed", zap.Error(err))
		catalogWriteError(w, http.StatusServiceUnavailable, "catalog source unavailable")
		return
	}
	catalogWriteJSON(w, http.StatusOK, statusResponse{
		Path:     m.store.Path(),
		Loaded:   true,
		Records:  len(snap.Records),
		Encoding: snap.Encoding,
		LoadedAt: snap.LoadedAt,
		Reloads:  m.store.Reloads(),
		Failures: m.store.Failures(),
	})
}

// -- helpers --

func catalogWriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func catalogWriteError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://beanlog.io/problems/" + http.StatusText(status),
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}

func catalogParseLimit(r *http.Request, defaultLimit int) int {
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 1000 {
			return n
		}
	}
	return defaultLimit
}
