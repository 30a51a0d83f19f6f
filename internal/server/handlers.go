package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/analysis"
)

// AnalysisHandlers serves the analysis pipeline endpoints.
type AnalysisHandlers struct {
	service      *analysis.Service
	defaultLimit int
	log          zerolog.Logger
}

// NewAnalysisHandlers creates the analysis endpoint handlers.
func NewAnalysisHandlers(service *analysis.Service, defaultLimit int, log zerolog.Logger) *AnalysisHandlers {
	return &AnalysisHandlers{
		service:      service,
		defaultLimit: defaultLimit,
		log:          log.With().Str("component", "analysis_handlers").Logger(),
	}
}

// HandleRunAnalysis runs the pipeline on the posted input.
// POST /api/analysis
func (h *AnalysisHandlers) HandleRunAnalysis(w http.ResponseWriter, r *http.Request) {
	var input domain.AnalysisInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(input.Holdings) == 0 {
		writeError(w, http.StatusBadRequest, "holdings are required")
		return
	}

	run, err := h.service.Run(r.Context(), input)
	if err != nil {
		h.log.Error().Err(err).Msg("Analysis run failed")
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// HandleGetRun loads a stored run by ID.
// GET /api/analysis/{id}
func (h *AnalysisHandlers) HandleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := h.service.GetRun(id)
	if err != nil {
		h.log.Error().Err(err).Str("run_id", id).Msg("Failed to load run")
		writeError(w, http.StatusInternalServerError, "failed to load run")
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// HandleListRuns lists stored run summaries, newest first.
// GET /api/analysis?limit=N
func (h *AnalysisHandlers) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	runs, err := h.service.ListRuns(limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list runs")
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"runs":  runs,
		"count": len(runs),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
