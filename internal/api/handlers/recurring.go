package handlers

import (
	"net/http"
	"time"

	"github.com/spendlens/spendlens-backend/internal/api/dto"
	"github.com/spendlens/spendlens-backend/internal/application/service"
	"github.com/spendlens/spendlens-backend/internal/domain/detector"
)

// RecurringHandler serves recurring-charge detection results.
type RecurringHandler struct {
	*Base
	service  *service.DetectionService
	defaults detector.Config
}

// NewRecurringHandler creates a new recurring handler. The defaults
// come from application config; query parameters can override them
// per request.
func NewRecurringHandler(svc *service.DetectionService, defaults detector.Config) *RecurringHandler {
	return &RecurringHandler{
		Base:     NewBase(nil),
		service:  svc,
		defaults: defaults,
	}
}

// Get handles GET /api/recurring - runs (or serves cached) detection.
//
// Supported query overrides: tolerance, min_occurrences, months,
// min_amount. Invalid values silently fall back, first to the
// configured defaults here, then to the engine's own defaults.
func (h *RecurringHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg := detector.Config{
		AmountTolerance: ParseFloatParam(r, "tolerance", h.defaults.AmountTolerance),
		MinOccurrences:  ParseIntParam(r, "min_occurrences", h.defaults.MinOccurrences),
		MonthsToAnalyze: ParseIntParam(r, "months", h.defaults.MonthsToAnalyze),
		MinAmount:       ParseFloatParam(r, "min_amount", h.defaults.MinAmount),
	}

	result, err := h.service.Detect(cfg, time.Now().UTC())
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.FromDetectorResult(result))
}
