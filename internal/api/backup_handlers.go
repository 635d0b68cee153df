package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"netbackup/internal/models"
	"netbackup/internal/repo"
)

type backupCreateRequest struct {
	DeviceID       string              `json:"device_id"`
	Status         models.BackupStatus `json:"status"`
	Message        string              `json:"message"`
	ConfigFilePath string              `json:"config_file_path"`
}

func (q *backupCreateRequest) validate() string {
	if q.DeviceID == "" {
		return "device_id is required"
	}
	if !q.Status.Valid() {
		return "status must be one of success, failed, in_progress, pending"
	}
	return ""
}

// createBackup lets the external backup agent record an outcome.
func (h *Handler) createBackup(w http.ResponseWriter, r *http.Request) {
	var req backupCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	b, err := h.Backups.Create(r.Context(), repo.BackupCreateInput{
		DeviceID:       req.DeviceID,
		Status:         req.Status,
		Message:        req.Message,
		ConfigFilePath: req.ConfigFilePath,
	})
	switch {
	case errors.Is(err, repo.ErrDeviceNotFound):
		models.WriteError(w, http.StatusNotFound, "Device not found")
	case err != nil:
		fail(w, r, err, "Error creating backup record")
	default:
		models.WriteJSON(w, http.StatusOK, b)
	}
}

func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	skip, limit := page(r)
	history, err := h.Backups.List(r.Context(), skip, limit)
	if err != nil {
		fail(w, r, err, "Error fetching backup history")
		return
	}
	models.WriteJSON(w, http.StatusOK, history)
}

func (h *Handler) getBackup(w http.ResponseWriter, r *http.Request) {
	b, err := h.Backups.Get(r.Context(), mux.Vars(r)["backup_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Backup record not found")
	case err != nil:
		fail(w, r, err, "Error fetching backup record")
	default:
		models.WriteJSON(w, http.StatusOK, b)
	}
}

func (h *Handler) deleteBackup(w http.ResponseWriter, r *http.Request) {
	err := h.Backups.Delete(r.Context(), mux.Vars(r)["backup_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Backup record not found")
	case err != nil:
		fail(w, r, err, "Error deleting backup record")
	default:
		models.WriteMessage(w, http.StatusOK, "Backup record deleted successfully")
	}
}
