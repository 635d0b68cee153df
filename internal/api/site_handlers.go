package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"netbackup/internal/models"
	"netbackup/internal/repo"
)

type siteRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

func (q *siteRequest) validate() string {
	if q.Name == "" || q.Code == "" {
		return "name and code are required"
	}
	return ""
}

func (h *Handler) createSite(w http.ResponseWriter, r *http.Request) {
	var req siteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	site, err := h.Sites.Create(r.Context(), repo.SiteInput(req))
	if err != nil {
		fail(w, r, err, "Error creating site")
		return
	}
	models.WriteJSON(w, http.StatusOK, site)
}

func (h *Handler) listSites(w http.ResponseWriter, r *http.Request) {
	skip, limit := page(r)
	sites, err := h.Sites.List(r.Context(), skip, limit)
	if err != nil {
		fail(w, r, err, "Error fetching sites")
		return
	}
	models.WriteJSON(w, http.StatusOK, sites)
}

func (h *Handler) getSite(w http.ResponseWriter, r *http.Request) {
	site, err := h.Sites.Get(r.Context(), mux.Vars(r)["site_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Site not found")
	case err != nil:
		fail(w, r, err, "Error fetching site")
	default:
		models.WriteJSON(w, http.StatusOK, site)
	}
}

func (h *Handler) updateSite(w http.ResponseWriter, r *http.Request) {
	var req siteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	site, err := h.Sites.Update(r.Context(), mux.Vars(r)["site_id"], repo.SiteInput(req))
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Site not found")
	case err != nil:
		fail(w, r, err, "Error updating site")
	default:
		models.WriteJSON(w, http.StatusOK, site)
	}
}

func (h *Handler) deleteSite(w http.ResponseWriter, r *http.Request) {
	err := h.Sites.Delete(r.Context(), mux.Vars(r)["site_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Site not found")
	case err != nil:
		fail(w, r, err, "Error deleting site")
	default:
		models.WriteMessage(w, http.StatusOK, "Site deleted successfully")
	}
}
