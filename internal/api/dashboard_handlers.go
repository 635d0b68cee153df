package api

import (
	"net/http"

	"netbackup/internal/models"
)

// dashboardStats recomputes the aggregate snapshot on every call; there
// is no cache to invalidate.
func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.Stats(r.Context())
	if err != nil {
		fail(w, r, err, "Error fetching dashboard stats")
		return
	}
	models.WriteJSON(w, http.StatusOK, stats)
}
