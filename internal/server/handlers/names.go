package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/qiminglab/qiming/internal/core"
	"github.com/qiminglab/qiming/internal/core/bazi"
	"github.com/qiminglab/qiming/internal/core/cache"
	"github.com/qiminglab/qiming/internal/core/engine"
	"github.com/qiminglab/qiming/internal/core/generator"
	apperrors "github.com/qiminglab/qiming/internal/errors"
	"github.com/qiminglab/qiming/internal/metrics"
)

// NameHandlers serves the scoring and generation API backed by one engine.
type NameHandlers struct {
	engine *engine.Engine
}

// NewNameHandlers creates the API handler set.
func NewNameHandlers(eng *engine.Engine) *NameHandlers {
	return &NameHandlers{engine: eng}
}

// ScoreRequest is the POST /api/v1/score body.
type ScoreRequest struct {
	Surname string            `json:"surname"`
	Given   string            `json:"given"`
	Birth   *core.BirthMoment `json:"birth,omitempty"`
}

// ScoreResponse wraps the composite score for one explicit name.
type ScoreResponse struct {
	Surname string          `json:"surname"`
	Given   string          `json:"given"`
	Score   *core.NameScore `json:"score"`
}

// Score handles POST /api/v1/score.
func (h *NameHandlers) Score(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordScore(false, false)
		respondWithError(w, r, apperrors.WrapInvalidInput(r.Context(), err, "Request body must be valid JSON"))
		return
	}

	score, err := h.engine.Score(r.Context(), req.Surname, req.Given, req.Birth)
	if err != nil {
		metrics.RecordScore(false, req.Birth != nil)
		respondWithError(w, r, classifyEngineError(r, err))
		return
	}

	metrics.RecordScore(true, req.Birth != nil)

	writeJSON(w, http.StatusOK, ScoreResponse{
		Surname: req.Surname,
		Given:   req.Given,
		Score:   score,
	})
}

// GenerateResponse wraps the ranked suggestions for one request.
type GenerateResponse struct {
	Results []*core.GeneratedName `json:"results"`
	Count   int                   `json:"count"`
	State   string                `json:"state"`
}

// Generate handles POST /api/v1/generate.
func (h *NameHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	var req core.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordGeneration(false, 0, 0)
		respondWithError(w, r, apperrors.WrapInvalidInput(r.Context(), err, "Request body must be valid JSON"))
		return
	}

	start := time.Now()
	results, err := h.engine.Generate(r.Context(), &req)
	if err != nil {
		metrics.RecordGeneration(false, time.Since(start), 0)
		respondWithError(w, r, classifyEngineError(r, err))
		return
	}

	metrics.RecordGeneration(true, time.Since(start), len(results))

	writeJSON(w, http.StatusOK, GenerateResponse{
		Results: results,
		Count:   len(results),
		State:   string(h.engine.GeneratorState()),
	})
}

// CacheStatsResponse reports per-cache counters and health.
type CacheStatsResponse struct {
	Stats  map[cache.Kind]cache.Stats  `json:"stats"`
	Health map[cache.Kind]cache.Health `json:"health"`
}

// CacheStats handles GET /api/v1/cache/stats.
func (h *NameHandlers) CacheStats(w http.ResponseWriter, r *http.Request) {
	registry := h.engine.Caches()
	stats := registry.StatsByKind()
	health := registry.HealthByKind()

	for kind, s := range stats {
		metrics.RecordCacheStats(kind, s)
	}

	writeJSON(w, http.StatusOK, CacheStatsResponse{
		Stats:  stats,
		Health: health,
	})
}

// classifyEngineError maps engine failures onto API error envelopes. Caller
// mistakes come back as 400s; everything else is internal.
func classifyEngineError(r *http.Request, err error) error {
	switch {
	case errors.Is(err, engine.ErrBadName),
		errors.Is(err, generator.ErrInvalidRequest),
		errors.Is(err, bazi.ErrInvalidChart):
		return apperrors.WrapValidationError(r.Context(), err, err.Error())
	default:
		return apperrors.WrapInternal(r.Context(), err, "Scoring engine failure")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
