package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"netbackup/internal/models"
	"netbackup/internal/repo"
)

type deviceCreateRequest struct {
	Name         string              `json:"name"`
	IPAddress    string              `json:"ip_address"`
	Type         models.DeviceType   `json:"type"`
	Status       models.DeviceStatus `json:"status"`
	SiteID       *string             `json:"site_id"`
	LocationID   *string             `json:"location_id"`
	CredentialID *string             `json:"credential_id"`
	Config       map[string]any      `json:"config"`
	GroupIDs     []string            `json:"group_ids"`
}

func (q *deviceCreateRequest) validate() string {
	if q.Name == "" || q.IPAddress == "" {
		return "name and ip_address are required"
	}
	if !q.Type.Valid() {
		return "type must be one of Switch, Router, Firewall"
	}
	if q.Status != "" && !q.Status.Valid() {
		return "status must be one of active, inactive, pending, maintenance"
	}
	return ""
}

type deviceUpdateRequest struct {
	Name         *string              `json:"name"`
	IPAddress    *string              `json:"ip_address"`
	Type         *models.DeviceType   `json:"type"`
	Status       *models.DeviceStatus `json:"status"`
	SiteID       *string              `json:"site_id"`
	LocationID   *string              `json:"location_id"`
	CredentialID *string              `json:"credential_id"`
	Config       map[string]any       `json:"config"`
	GroupIDs     *[]string            `json:"group_ids"`
}

func (q *deviceUpdateRequest) validate() string {
	if q.Type != nil && !q.Type.Valid() {
		return "type must be one of Switch, Router, Firewall"
	}
	if q.Status != nil && !q.Status.Valid() {
		return "status must be one of active, inactive, pending, maintenance"
	}
	return ""
}

func (h *Handler) createDevice(w http.ResponseWriter, r *http.Request) {
	var req deviceCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	d, err := h.Devices.Create(r.Context(), repo.DeviceCreateInput{
		Name:         req.Name,
		IPAddress:    req.IPAddress,
		Type:         req.Type,
		Status:       req.Status,
		SiteID:       req.SiteID,
		LocationID:   req.LocationID,
		CredentialID: req.CredentialID,
		Config:       req.Config,
		GroupIDs:     req.GroupIDs,
	})
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusBadRequest, "Referenced credential not found")
	case err != nil:
		fail(w, r, err, "Error creating device")
	default:
		models.WriteJSON(w, http.StatusOK, d)
	}
}

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	skip, limit := page(r)
	devices, err := h.Devices.List(r.Context(), skip, limit)
	if err != nil {
		fail(w, r, err, "Error fetching devices")
		return
	}
	models.WriteJSON(w, http.StatusOK, devices)
}

func (h *Handler) getDevice(w http.ResponseWriter, r *http.Request) {
	d, err := h.Devices.Get(r.Context(), mux.Vars(r)["device_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Device not found")
	case err != nil:
		fail(w, r, err, "Error fetching device")
	default:
		models.WriteJSON(w, http.StatusOK, d)
	}
}

func (h *Handler) updateDevice(w http.ResponseWriter, r *http.Request) {
	var req deviceUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	d, err := h.Devices.Update(r.Context(), mux.Vars(r)["device_id"], repo.DeviceUpdateInput{
		Name:         req.Name,
		IPAddress:    req.IPAddress,
		Type:         req.Type,
		Status:       req.Status,
		SiteID:       req.SiteID,
		LocationID:   req.LocationID,
		CredentialID: req.CredentialID,
		Config:       req.Config,
		GroupIDs:     req.GroupIDs,
	})
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Device not found")
	case err != nil:
		fail(w, r, err, "Error updating device")
	default:
		models.WriteJSON(w, http.StatusOK, d)
	}
}

func (h *Handler) deleteDevice(w http.ResponseWriter, r *http.Request) {
	err := h.Devices.Delete(r.Context(), mux.Vars(r)["device_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Device not found")
	case err != nil:
		fail(w, r, err, "Error deleting device")
	default:
		models.WriteMessage(w, http.StatusOK, "Device deleted successfully")
	}
}
