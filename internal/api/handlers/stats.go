package handlers

import (
	"net/http"
	"time"

	"github.com/spendlens/spendlens-backend/internal/api/dto"
	"github.com/spendlens/spendlens-backend/internal/infrastructure/storage"
)

// StatsHandler serves aggregate ledger statistics.
type StatsHandler struct {
	*Base
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(repo storage.Repository) *StatsHandler {
	return &StatsHandler{
		Base: NewBase(repo),
	}
}

// Get handles GET /api/stats - returns aggregate statistics.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.Stats()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	response := dto.StatsResponse{
		TransactionCount: stats.TransactionCount,
		AccountCount:     stats.AccountCount,
		RunCount:         stats.RunCount,
	}
	if stats.LastRunAt != nil {
		response.LastRunAt = stats.LastRunAt.UTC().Format(time.RFC3339)
	}

	h.WriteJSON(w, http.StatusOK, response)
}
