package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"netbackup/internal/models"
	"netbackup/internal/repo"
)

type groupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (q *groupRequest) validate() string {
	if q.Name == "" {
		return "name is required"
	}
	return ""
}

type groupDeviceRequest struct {
	DeviceID string `json:"device_id"`
}

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	g, err := h.Groups.Create(r.Context(), repo.GroupInput(req))
	if err != nil {
		fail(w, r, err, "Error creating device group")
		return
	}
	models.WriteJSON(w, http.StatusOK, g)
}

func (h *Handler) listGroups(w http.ResponseWriter, r *http.Request) {
	skip, limit := page(r)
	groups, err := h.Groups.List(r.Context(), skip, limit)
	if err != nil {
		fail(w, r, err, "Error fetching device groups")
		return
	}
	models.WriteJSON(w, http.StatusOK, groups)
}

func (h *Handler) getGroup(w http.ResponseWriter, r *http.Request) {
	g, err := h.Groups.Get(r.Context(), mux.Vars(r)["group_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Device group not found")
	case err != nil:
		fail(w, r, err, "Error fetching device group")
	default:
		models.WriteJSON(w, http.StatusOK, g)
	}
}

func (h *Handler) updateGroup(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	g, err := h.Groups.Update(r.Context(), mux.Vars(r)["group_id"], repo.GroupInput(req))
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Device group not found")
	case err != nil:
		fail(w, r, err, "Error updating device group")
	default:
		models.WriteJSON(w, http.StatusOK, g)
	}
}

func (h *Handler) deleteGroup(w http.ResponseWriter, r *http.Request) {
	err := h.Groups.Delete(r.Context(), mux.Vars(r)["group_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Device group not found")
	case err != nil:
		fail(w, r, err, "Error deleting device group")
	default:
		models.WriteMessage(w, http.StatusOK, "Device group deleted successfully")
	}
}

func (h *Handler) addDeviceToGroup(w http.ResponseWriter, r *http.Request) {
	var req groupDeviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.DeviceID == "" {
		models.WriteError(w, http.StatusUnprocessableEntity, "device_id is required")
		return
	}
	g, err := h.Groups.AddDevice(r.Context(), mux.Vars(r)["group_id"], req.DeviceID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Device group not found")
	case errors.Is(err, repo.ErrDeviceNotFound):
		models.WriteError(w, http.StatusNotFound, "Device not found")
	case err != nil:
		fail(w, r, err, "Error adding device to group")
	default:
		models.WriteJSON(w, http.StatusOK, g)
	}
}

func (h *Handler) removeDeviceFromGroup(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	_, err := h.Groups.RemoveDevice(r.Context(), vars["group_id"], vars["device_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Device group not found")
	case errors.Is(err, repo.ErrDeviceNotFound):
		models.WriteError(w, http.StatusNotFound, "Device not found")
	case err != nil:
		fail(w, r, err, "Error removing device from group")
	default:
		models.WriteMessage(w, http.StatusOK, "Device removed from group successfully")
	}
}
