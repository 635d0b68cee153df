package health

import (
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"netbackup/internal/models"
)

// RegisterRoutes serves the liveness surface: the root banner,
// /api/health, and a readiness probe that pings the database.
func RegisterRoutes(r *mux.Router, db *gorm.DB) {
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		models.WriteJSON(w, http.StatusOK, map[string]string{"message": "NetBackup API"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		models.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		sqlDB, err := db.DB()
		if err != nil {
			http.Error(w, "db handle error", http.StatusServiceUnavailable)
			return
		}
		if err := sqlDB.Ping(); err != nil {
			http.Error(w, "db unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}).Methods(http.MethodGet)
}
