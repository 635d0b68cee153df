package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// CORS answers preflight requests and stamps the allow headers the web
// front end needs. origins is "*" or an exact origin.
func CORS(origins string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-Id")
			if origins != "*" {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Preflight registers a catch-all OPTIONS route. mux runs Use middleware
// only on matched routes and no resource route accepts OPTIONS, so
// without this a browser preflight dies with 405 before CORS ever sees
// it.
func Preflight(r *mux.Router) {
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}
