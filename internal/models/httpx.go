package models

import (
	"encoding/json"
	"net/http"
)

// errorBody is the error envelope the web front end consumes.
type errorBody struct {
	Detail string `json:"detail"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"detail": ...} with the given status.
func WriteError(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, errorBody{Detail: detail})
}

// WriteUnauthorized is WriteError plus the bearer challenge header.
func WriteUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	WriteError(w, http.StatusUnauthorized, detail)
}

// Message is the {"message": ...} acknowledgement body used by deletes
// and logout.
type Message struct {
	Text string `json:"message"`
}

func WriteMessage(w http.ResponseWriter, status int, text string) {
	WriteJSON(w, status, Message{Text: text})
}
