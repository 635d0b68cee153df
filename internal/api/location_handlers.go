package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"netbackup/internal/models"
	"netbackup/internal/repo"
)

type locationRequest struct {
	Name   string `json:"name"`
	SiteID string `json:"site_id"`
	Floor  string `json:"floor"`
	Room   string `json:"room"`
}

func (q *locationRequest) validate() string {
	if q.Name == "" || q.SiteID == "" {
		return "name and site_id are required"
	}
	return ""
}

func (h *Handler) createLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	loc, err := h.Locations.Create(r.Context(), repo.LocationInput(req))
	if err != nil {
		fail(w, r, err, "Error creating location")
		return
	}
	models.WriteJSON(w, http.StatusOK, loc)
}

func (h *Handler) listLocations(w http.ResponseWriter, r *http.Request) {
	skip, limit := page(r)
	locs, err := h.Locations.List(r.Context(), skip, limit)
	if err != nil {
		fail(w, r, err, "Error fetching locations")
		return
	}
	models.WriteJSON(w, http.StatusOK, locs)
}

func (h *Handler) listLocationsBySite(w http.ResponseWriter, r *http.Request) {
	locs, err := h.Locations.ListBySite(r.Context(), mux.Vars(r)["site_id"])
	if err != nil {
		fail(w, r, err, "Error fetching locations by site")
		return
	}
	models.WriteJSON(w, http.StatusOK, locs)
}

func (h *Handler) getLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := h.Locations.Get(r.Context(), mux.Vars(r)["location_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Location not found")
	case err != nil:
		fail(w, r, err, "Error fetching location")
	default:
		models.WriteJSON(w, http.StatusOK, loc)
	}
}

func (h *Handler) updateLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		models.WriteError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	loc, err := h.Locations.Update(r.Context(), mux.Vars(r)["location_id"], repo.LocationInput(req))
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Location not found")
	case err != nil:
		fail(w, r, err, "Error updating location")
	default:
		models.WriteJSON(w, http.StatusOK, loc)
	}
}

func (h *Handler) deleteLocation(w http.ResponseWriter, r *http.Request) {
	err := h.Locations.Delete(r.Context(), mux.Vars(r)["location_id"])
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, "Location not found")
	case err != nil:
		fail(w, r, err, "Error deleting location")
	default:
		models.WriteMessage(w, http.StatusOK, "Location deleted successfully")
	}
}
