package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"netbackup/internal/auth"
	"netbackup/internal/models"
)

// Register wires every resource router. Auth endpoints are public;
// everything else sits behind the bearer middleware, with role gates on
// the admin-management routes.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/auth/login", h.login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/logout", h.logout).Methods(http.MethodPost)

	authed := h.Auth.Middleware(h.Admins)

	admins := r.PathPrefix("/api/admins").Subrouter()
	admins.Use(authed)
	admins.HandleFunc("", auth.RequireRole(models.RoleSuperAdmin, h.createAdmin)).Methods(http.MethodPost)
	admins.HandleFunc("", auth.RequireRole(models.RoleReadOnly, h.listAdmins)).Methods(http.MethodGet)
	admins.HandleFunc("/{admin_id}", auth.RequireRole(models.RoleReadOnly, h.getAdmin)).Methods(http.MethodGet)
	admins.HandleFunc("/{admin_id}", auth.RequireRole(models.RoleSuperAdmin, h.updateAdmin)).Methods(http.MethodPut)
	admins.HandleFunc("/{admin_id}", auth.RequireRole(models.RoleSuperAdmin, h.deleteAdmin)).Methods(http.MethodDelete)

	devices := r.PathPrefix("/api/devices").Subrouter()
	devices.Use(authed)
	devices.HandleFunc("", h.createDevice).Methods(http.MethodPost)
	devices.HandleFunc("", h.listDevices).Methods(http.MethodGet)
	devices.HandleFunc("/{device_id}", h.getDevice).Methods(http.MethodGet)
	devices.HandleFunc("/{device_id}", h.updateDevice).Methods(http.MethodPut)
	devices.HandleFunc("/{device_id}", h.deleteDevice).Methods(http.MethodDelete)

	groups := r.PathPrefix("/api/device-groups").Subrouter()
	groups.Use(authed)
	groups.HandleFunc("", h.createGroup).Methods(http.MethodPost)
	groups.HandleFunc("", h.listGroups).Methods(http.MethodGet)
	groups.HandleFunc("/{group_id}", h.getGroup).Methods(http.MethodGet)
	groups.HandleFunc("/{group_id}", h.updateGroup).Methods(http.MethodPut)
	groups.HandleFunc("/{group_id}", h.deleteGroup).Methods(http.MethodDelete)
	groups.HandleFunc("/{group_id}/devices", h.addDeviceToGroup).Methods(http.MethodPost)
	groups.HandleFunc("/{group_id}/devices/{device_id}", h.removeDeviceFromGroup).Methods(http.MethodDelete)

	sites := r.PathPrefix("/api/sites").Subrouter()
	sites.Use(authed)
	sites.HandleFunc("", h.createSite).Methods(http.MethodPost)
	sites.HandleFunc("", h.listSites).Methods(http.MethodGet)
	sites.HandleFunc("/{site_id}", h.getSite).Methods(http.MethodGet)
	sites.HandleFunc("/{site_id}", h.updateSite).Methods(http.MethodPut)
	sites.HandleFunc("/{site_id}", h.deleteSite).Methods(http.MethodDelete)

	locations := r.PathPrefix("/api/locations").Subrouter()
	locations.Use(authed)
	locations.HandleFunc("", h.createLocation).Methods(http.MethodPost)
	locations.HandleFunc("", h.listLocations).Methods(http.MethodGet)
	locations.HandleFunc("/site/{site_id}", h.listLocationsBySite).Methods(http.MethodGet)
	locations.HandleFunc("/{location_id}", h.getLocation).Methods(http.MethodGet)
	locations.HandleFunc("/{location_id}", h.updateLocation).Methods(http.MethodPut)
	locations.HandleFunc("/{location_id}", h.deleteLocation).Methods(http.MethodDelete)

	pool := r.PathPrefix("/api/credential-pool").Subrouter()
	pool.Use(authed)
	pool.HandleFunc("", h.createPoolCredential).Methods(http.MethodPost)
	pool.HandleFunc("", h.listPoolCredentials).Methods(http.MethodGet)
	pool.HandleFunc("/{credential_id}", h.getPoolCredential).Methods(http.MethodGet)
	pool.HandleFunc("/{credential_id}", h.updatePoolCredential).Methods(http.MethodPut)
	pool.HandleFunc("/{credential_id}", h.deletePoolCredential).Methods(http.MethodDelete)

	creds := r.PathPrefix("/api/device-credentials").Subrouter()
	creds.Use(authed)
	creds.HandleFunc("", h.createDevicePassword).Methods(http.MethodPost)
	creds.HandleFunc("", h.listDevicePasswords).Methods(http.MethodGet)
	creds.HandleFunc("/{device_id}", h.getDevicePassword).Methods(http.MethodGet)
	creds.HandleFunc("/{device_id}", h.updateDevicePassword).Methods(http.MethodPut)
	creds.HandleFunc("/{device_id}", h.deleteDevicePassword).Methods(http.MethodDelete)

	backups := r.PathPrefix("/api/backup-history").Subrouter()
	backups.Use(authed)
	backups.HandleFunc("", h.createBackup).Methods(http.MethodPost)
	backups.HandleFunc("", h.listBackups).Methods(http.MethodGet)
	backups.HandleFunc("/{backup_id}", h.getBackup).Methods(http.MethodGet)
	backups.HandleFunc("/{backup_id}", h.deleteBackup).Methods(http.MethodDelete)

	dashboard := r.PathPrefix("/api/dashboard").Subrouter()
	dashboard.Use(authed)
	dashboard.HandleFunc("/stats", h.dashboardStats).Methods(http.MethodGet)
}
