package advisor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/beanlog/cuppa/internal/palate"
	"github.com/beanlog/cuppa/internal/plugin"
	"github.com/beanlog/cuppa/pkg/models"
)

// recommendRequest is the body of POST /advisor/recommendations.
type recommendRequest struct {
	Preference string `json:"preference"`
}

// Routes implements plugin.HTTPProvider.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "POST", Path: "/recommendations", Handler: m.handleRecommend},
		{Method: "GET", Path: "/criteria", Handler: m.handleCriteria},
	}
}

// handleRecommend runs one recommendation pass.
//
//	@Summary		Recommend coffees
//	@Description	Classifies a free-text taste preference and returns a ranked, country-grouped recommendation outcome.
//	@Tags			advisor
//	@Accept			json
//	@Produce		json
//	@Param			body body recommendRequest true "Taste preference"
//	@Success		200 {object} models.Outcome
//	@Failure		400 {object} map[string]any
//	@Failure		503 {object} map[string]any
//	@Failure		504 {object} map[string]any
//	@Router			/advisor/recommendations [post]
func (m *Module) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		advisorWriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Preference) == "" {
		advisorWriteError(w, http.StatusBadRequest, "preference is required")
		return
	}

	out := m.engine.Advise(r.Context(), req.Preference)

	// Unavailable data and abandoned passes are transport errors; the
	// domain outcomes (info, recommendation, guidance, no match) are
	// successful responses carrying the outcome envelope.
	switch out.Code {
	case models.CodeCatalogUnavailable:
		advisorWriteError(w, http.StatusServiceUnavailable, out.Content)
	case models.CodeTimeout:
		advisorWriteError(w, http.StatusGatewayTimeout, out.Content)
	default:
		advisorWriteJSON(w, http.StatusOK, out)
	}
}

// handleCriteria returns the static classification criteria.
//
//	@Summary		Classification criteria
//	@Description	Returns the static explanation of the taste classification rules.
//	@Tags			advisor
//	@Produce		json
//	@Success		200 {object} models.Outcome
//	@Router			/advisor/criteria [get]
func (m *Module) handleCriteria(w http.ResponseWriter, r *http.Request) {
	advisorWriteJSON(w, http.StatusOK, infoOutcome(palate.CriteriaText))
}

// -- helpers --

func advisorWriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func advisorWriteError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://beanlog.io/problems/" + http.StatusText(status),
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
