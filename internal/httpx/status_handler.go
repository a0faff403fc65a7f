package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-shop-sim.git/internal/sim"
)

// StatusHandler exposes the simulator's live per-cycle snapshot.
type StatusHandler struct {
	Status *sim.Status
}

func (h *StatusHandler) Register(r *chi.Mux) {
	r.Get("/simulation/status", h.status)
}

func (h *StatusHandler) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Status.Snapshot())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
