package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"netbackup/internal/auth"
	"netbackup/internal/models"
	"netbackup/internal/repo"
)

type adminCreateRequest struct {
	Username string             `json:"username"`
	Email    string             `json:"email"`
	Password string             `json:"password"`
	Role     models.AdminRole   `json:"role"`
	Status   models.AdminStatus `json:"status"`
}

func (q *adminCreateRequest) validate() string {
	if q.Username == "" || q.Email == "" || q.Password == "" {
		return "username, email and password are required"
	}
	if !q.Role.Valid() {
		return "role must be one of read_only, admin, super_admin"
	}
	if q.Status != "" && !q.Status.Valid() {
		return "status must be active or inactive"
	}
	return ""
}

type adminUpdateRequest struct {
	Username *string             `json:"username"`
	Email    *string             `json:"email"`
	Password *string             `json:"password"`
	Role     *models.AdminRole   `json:"role"`
	Status   *models.AdminStatus `json:"status"`
}

func (h *Handler) createAdmin(w http.ResponseWriter, r *http.Request) {
	var req adminCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		fail(w, r, err, "Error creating admin")
		return
	}
	admin, err := h.Admins.Create(r.Context(), repo.AdminCreateInput{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       req.Status,
	})
	switch {
	case errors.Is(err, repo.ErrConflict):
		models.WriteError(w, http.StatusBadRequest, "Username already registered")
	case err != nil:
		fail(w, r, err, "Error creating admin")
	default:
		models.WriteJSON(w, http.StatusOK, admin)
	}
}

func (h *Handler) listAdmins(w http.ResponseWriter, r *http.Request) {
	skip, limit := page(r)
	admins, err := h.Admins.List(r.Context(), skip, limit)
	if err != nil {
		fail(w, r, err, "Error fetching admins")
		return
	}
	models.WriteJSON(w, http.StatusOK, admins)
}

func (h *Handler) getAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.Admins.Get(r.Context(), mux.Vars(r)["admin_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Admin not found")
	case err != nil:
		fail(w, r, err, "Error fetching admin")
	default:
		models.WriteJSON(w, http.StatusOK, admin)
	}
}

func (h *Handler) updateAdmin(w http.ResponseWriter, r *http.Request) {
	var req adminUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Role != nil && !req.Role.Valid() {
		models.WriteError(w, http.StatusUnprocessableEntity, "role must be one of read_only, admin, super_admin")
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		models.WriteError(w, http.StatusUnprocessableEntity, "status must be active or inactive")
		return
	}

	in := repo.AdminUpdateInput{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		Status:   req.Status,
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			fail(w, r, err, "Error updating admin")
			return
		}
		in.PasswordHash = &hash
	}

	admin, err := h.Admins.Update(r.Context(), mux.Vars(r)["admin_id"], in)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Admin not found")
	case err != nil:
		fail(w, r, err, "Error updating admin")
	default:
		models.WriteJSON(w, http.StatusOK, admin)
	}
}

func (h *Handler) deleteAdmin(w http.ResponseWriter, r *http.Request) {
	self := auth.IdentityFrom(r)
	selfID := ""
	if self != nil {
		selfID = self.ID
	}
	err := h.Admins.Delete(r.Context(), mux.Vars(r)["admin_id"], selfID)
	switch {
	case errors.Is(err, repo.ErrSelfDelete):
		models.WriteError(w, http.StatusBadRequest, "Cannot delete your own account")
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Admin not found")
	case err != nil:
		fail(w, r, err, "Error deleting admin")
	default:
		models.WriteMessage(w, http.StatusOK, "Admin deleted successfully")
	}
}
