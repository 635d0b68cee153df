package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"netbackup/internal/models"
	"netbackup/internal/repo"
)

// Two credential surfaces coexist: /api/credential-pool serves the
// shared, reusable bundles devices point at via credential_id, and
// /api/device-credentials serves the one-per-device records keyed by
// device id.

type poolCredentialRequest struct {
	Name           string `json:"name"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	EnablePassword string `json:"enable_password"`
	Description    string `json:"description"`
}

func (q *poolCredentialRequest) validate() string {
	if q.Name == "" || q.Username == "" || q.Password == "" {
		return "name, username and password are required"
	}
	return ""
}

func (h *Handler) createPoolCredential(w http.ResponseWriter, r *http.Request) {
	var req poolCredentialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	c, err := h.Credentials.Create(r.Context(), repo.CredentialInput(req))
	if err != nil {
		fail(w, r, err, "Error creating credential")
		return
	}
	models.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) listPoolCredentials(w http.ResponseWriter, r *http.Request) {
	skip, limit := page(r)
	creds, err := h.Credentials.List(r.Context(), skip, limit)
	if err != nil {
		fail(w, r, err, "Error fetching credentials")
		return
	}
	models.WriteJSON(w, http.StatusOK, creds)
}

func (h *Handler) getPoolCredential(w http.ResponseWriter, r *http.Request) {
	c, err := h.Credentials.Get(r.Context(), mux.Vars(r)["credential_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Credential not found")
	case err != nil:
		fail(w, r, err, "Error fetching credential")
	default:
		models.WriteJSON(w, http.StatusOK, c)
	}
}

func (h *Handler) updatePoolCredential(w http.ResponseWriter, r *http.Request) {
	var req poolCredentialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	c, err := h.Credentials.Update(r.Context(), mux.Vars(r)["credential_id"], repo.CredentialInput(req))
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Credential not found")
	case err != nil:
		fail(w, r, err, "Error updating credential")
	default:
		models.WriteJSON(w, http.StatusOK, c)
	}
}

func (h *Handler) deletePoolCredential(w http.ResponseWriter, r *http.Request) {
	err := h.Credentials.Delete(r.Context(), mux.Vars(r)["credential_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Credential not found")
	case err != nil:
		fail(w, r, err, "Error deleting credential")
	default:
		models.WriteMessage(w, http.StatusOK, "Credential deleted successfully")
	}
}

type devicePasswordCreateRequest struct {
	DeviceID *string `json:"device_id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	SSHKey   string  `json:"ssh_key"`
}

func (q *devicePasswordCreateRequest) validate() string {
	if q.Name == "" {
		return "name is required"
	}
	return ""
}

type devicePasswordUpdateRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	SSHKey   *string `json:"ssh_key"`
}

func (h *Handler) createDevicePassword(w http.ResponseWriter, r *http.Request) {
	var req devicePasswordCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	p, err := h.Passwords.Create(r.Context(), repo.PasswordCreateInput{
		DeviceID: req.DeviceID,
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		SSHKey:   req.SSHKey,
	})
	switch {
	case errors.Is(err, repo.ErrDeviceNotFound):
		models.WriteError(w, http.StatusNotFound, "Device not found")
	case errors.Is(err, repo.ErrConflict):
		models.WriteError(w, http.StatusBadRequest, "Credentials already exist for this device")
	case err != nil:
		fail(w, r, err, "Error creating device credentials")
	default:
		models.WriteJSON(w, http.StatusOK, p)
	}
}

func (h *Handler) listDevicePasswords(w http.ResponseWriter, r *http.Request) {
	creds, err := h.Passwords.List(r.Context())
	if err != nil {
		fail(w, r, err, "Error fetching device credentials")
		return
	}
	models.WriteJSON(w, http.StatusOK, creds)
}

func (h *Handler) getDevicePassword(w http.ResponseWriter, r *http.Request) {
	p, err := h.Passwords.GetByDevice(r.Context(), mux.Vars(r)["device_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Credentials not found")
	case err != nil:
		fail(w, r, err, "Error fetching device credentials")
	default:
		models.WriteJSON(w, http.StatusOK, p)
	}
}

func (h *Handler) updateDevicePassword(w http.ResponseWriter, r *http.Request) {
	var req devicePasswordUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.Passwords.UpdateByDevice(r.Context(), mux.Vars(r)["device_id"], repo.PasswordUpdateInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		SSHKey:   req.SSHKey,
	})
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Credentials not found")
	case err != nil:
		fail(w, r, err, "Error updating device credentials")
	default:
		models.WriteJSON(w, http.StatusOK, p)
	}
}

func (h *Handler) deleteDevicePassword(w http.ResponseWriter, r *http.Request) {
	err := h.Passwords.DeleteByDevice(r.Context(), mux.Vars(r)["device_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Credentials not found")
	case err != nil:
		fail(w, r, err, "Error deleting device credentials")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
