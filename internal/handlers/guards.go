package handlers

import (
	"net/http"

	"github.com/shrimpsizemoose/anslagstavla/internal/app"
)

// RequireUser guards a route behind an active student session.
func RequireUser(service *app.Service, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session := service.Session(r)
		if session == nil || session.User == nil {
			writeError(w, http.StatusUnauthorized, "authorization required")
			return
		}
		next(w, r)
	}
}

// RequireAdmin guards a route behind an active admin session.
func RequireAdmin(service *app.Service, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session := service.Session(r)
		if session == nil || session.Admin == nil {
			writeError(w, http.StatusForbidden, "access denied")
			return
		}
		next(w, r)
	}
}
