package api

import (
	"log"
	"net/http"
)

func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/advice", requireMethod(http.MethodPost, h.Advice))
	mux.HandleFunc("/v1/sessions/", requireMethod(http.MethodGet, h.Session))
	mux.HandleFunc("/healthz", requireMethod(http.MethodGet, h.Health))

	return recoverPanics(mux)
}

func requireMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
			return
		}
		next(w, r)
	}
}

// recoverPanics converts invariant-violation panics from the scoring
// layer into a 500 error response instead of tearing down the
// connection.
func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("api: panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				errorResponse(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
