package api

import (
	"net/http"

	"netbackup/internal/logs"
	"netbackup/internal/models"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

// login takes a form-encoded username/password pair and answers with a
// bearer token. Failures get 401 with the bearer challenge.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		models.WriteError(w, http.StatusUnprocessableEntity, "Invalid form body")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	logs.Logger.Infof("login attempt for username: %s", username)

	admin, ok := h.Auth.Authenticate(username, password)
	if !ok {
		models.WriteUnauthorized(w, "Incorrect username or password")
		return
	}

	token, err := h.Auth.IssueToken(admin.Username, string(admin.Role))
	if err != nil {
		fail(w, r, err, "Error issuing token")
		return
	}
	models.WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    admin.Username,
		Role:        string(admin.Role),
	})
}

// logout is a stateless acknowledgement; tokens stay valid until their
// embedded expiry.
func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	models.WriteMessage(w, http.StatusOK, "Successfully logged out")
}
