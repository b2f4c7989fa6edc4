package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/anslagstavla/internal/app"
)

// NewRouter wires the full route surface: JSON API, auth, metrics and the two
// static web roots (public site at /, admin panel at /admin/).
func NewRouter(service *app.Service) http.Handler {
	newsHandler := NewNewsHandler(service)
	eventHandler := NewEventHandler(service)
	authHandler := NewAuthHandler(service)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/side-news", newsHandler.HandleList)
	mux.HandleFunc("POST /api/side-news", newsHandler.HandleCreate)
	mux.HandleFunc("DELETE /api/side-news/{id}", newsHandler.HandleDelete)

	mux.HandleFunc("GET /api/calendar-events", eventHandler.HandleList)
	mux.HandleFunc("POST /api/calendar-events", RequireAdmin(service, eventHandler.HandleCreate))
	mux.HandleFunc("PUT /api/calendar-events/{id}", RequireAdmin(service, eventHandler.HandleUpdate))
	mux.HandleFunc("DELETE /api/calendar-events/{id}", RequireAdmin(service, eventHandler.HandleDelete))

	mux.HandleFunc("POST /auth/login", authHandler.HandleStudentLogin)
	mux.HandleFunc("POST /auth/logout", authHandler.HandleLogout)
	mux.HandleFunc("GET /auth/user", authHandler.HandleCurrentUser)
	mux.HandleFunc("POST /api/admin/login", authHandler.HandleAdminLogin)
	mux.HandleFunc("POST /api/admin/logout", authHandler.HandleLogout)

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	mux.Handle("/admin/", http.StripPrefix("/admin/", http.FileServer(http.Dir(service.Config.Server.AdminDir))))
	mux.HandleFunc("GET /admin", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/", http.StatusMovedPermanently)
	})
	mux.Handle("/", http.FileServer(http.Dir(service.Config.Server.PublicDir)))

	return mux
}
