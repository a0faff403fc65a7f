package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-shop-sim.git/internal/collector"
)

// StatsHandler serves the collector's aggregate event counts.
type StatsHandler struct {
	Repo *collector.Repo
}

func (h *StatsHandler) Register(r *chi.Mux) {
	r.Get("/stats", h.stats)
}

func (h *StatsHandler) stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	counts, err := h.Repo.CountsByType(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
