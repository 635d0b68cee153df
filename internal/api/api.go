// Package api carries the REST surface of the inventory: one handler
// file per resource, routes registered in routes.go.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"netbackup/internal/auth"
	"netbackup/internal/logs"
	"netbackup/internal/middleware"
	"netbackup/internal/models"
	"netbackup/internal/repo"
)

type Handler struct {
	Auth        *auth.Service
	Admins      *repo.AdminStore
	Devices     *repo.DeviceStore
	Groups      *repo.GroupStore
	Sites       *repo.SiteStore
	Locations   *repo.LocationStore
	Credentials *repo.CredentialStore
	Passwords   *repo.PasswordStore
	Backups     *repo.BackupStore
	Dashboard   *repo.DashboardStore
}

// decodeJSON parses the body into v; a malformed body answers 422 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		models.WriteError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// page reads skip/limit query params, defaulting to 0/100.
func page(r *http.Request) (int, int) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit := repo.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	return skip, limit
}

// fail is the catch-all trap: the real error goes to the log keyed by
// request id, the caller gets a resource-generic 500.
func fail(w http.ResponseWriter, r *http.Request, err error, detail string) {
	logs.Logger.Errorf("%s: %v reqid=%s uri=%s", detail, err, middleware.GetRequestID(r), r.RequestURI)
	models.WriteError(w, http.StatusInternalServerError, detail)
}
