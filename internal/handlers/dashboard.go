package handlers

import (
	"context"
	"net/http"
	"time"
)

type chatStats interface {
	TotalExchanges(ctx context.Context) (int, error)
	CountByIntent(ctx context.Context) (map[string]int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	DistinctSessions(ctx context.Context) (int, error)
}

type DashboardHandler struct {
	stats chatStats
}

func NewDashboardHandler(stats chatStats) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Stats returns the engagement counters shown on the portal dashboard.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.stats.TotalExchanges(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("Não foi possível carregar as estatísticas"))
		return
	}

	byIntent, err := h.stats.CountByIntent(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("Não foi possível carregar as estatísticas"))
		return
	}

	weekly, err := h.stats.CountSince(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("Não foi possível carregar as estatísticas"))
		return
	}

	sessions, err := h.stats.DistinctSessions(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("Não foi possível carregar as estatísticas"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_messages":    total,
		"messages_7d":       weekly,
		"distinct_sessions": sessions,
		"intents":           byIntent,
	})
}
