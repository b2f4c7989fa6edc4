package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/anslagstavla/internal/app"
	"github.com/shrimpsizemoose/anslagstavla/internal/auth"
	"github.com/shrimpsizemoose/anslagstavla/internal/metrics"
	"github.com/shrimpsizemoose/anslagstavla/internal/models"
)

type AuthHandler struct {
	service *app.Service
}

func NewAuthHandler(service *app.Service) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// HandleStudentLogin authenticates a student by login and password and puts
// the student identity into the user slot of the caller's session.
func (h *AuthHandler) HandleStudentLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	student, err := h.service.Store.GetStudentByLogin(req.Login)
	if err != nil {
		logger.Error.Printf("Student login lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if student == nil || bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(req.Password)) != nil {
		metrics.LoginsTotal.WithLabelValues("student", "failure").Inc()
		writeError(w, http.StatusUnauthorized, "invalid login or password")
		return
	}

	token, session := h.service.Session(r)
	if token == "" {
		token = auth.NewToken()
	}
	if session == nil {
		session = &models.Session{}
	}
	session.User = &models.SessionUser{
		ID:         student.ID,
		Login:      student.Login,
		LastName:   student.LastName,
		FirstName:  student.FirstName,
		MiddleName: student.MiddleName,
		FullName:   fmt.Sprintf("%s %s %s", student.LastName, student.FirstName, student.MiddleName),
	}

	if err := h.service.Sessions.Put(r.Context(), token, session); err != nil {
		logger.Error.Printf("Failed to save session: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	h.setSessionCookie(w, token)

	metrics.LoginsTotal.WithLabelValues("student", "success").Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user": map[string]string{
			"login":      student.Login,
			"lastName":   student.LastName,
			"firstName":  student.FirstName,
			"middleName": student.MiddleName,
		},
	})
}

// HandleAdminLogin authenticates the admin and fills the admin slot of the
// caller's session.
func (h *AuthHandler) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin, err := h.service.Store.GetAdminByUsername(req.Username)
	if err != nil {
		logger.Error.Printf("Admin login lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "failure").Inc()
		writeError(w, http.StatusUnauthorized, "invalid admin credentials")
		return
	}

	token, session := h.service.Session(r)
	if token == "" {
		token = auth.NewToken()
	}
	if session == nil {
		session = &models.Session{}
	}
	session.Admin = &models.SessionAdmin{
		ID:       admin.ID,
		Username: admin.Username,
	}

	if err := h.service.Sessions.Put(r.Context(), token, session); err != nil {
		logger.Error.Printf("Failed to save session: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	h.setSessionCookie(w, token)

	metrics.LoginsTotal.WithLabelValues("admin", "success").Inc()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleLogout destroys the whole session, both slots, and tells the client
// to drop the cookie. Bound to the student and the admin logout route alike.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token, _ := h.service.Session(r)
	if token != "" {
		if err := h.service.Sessions.Delete(r.Context(), token); err != nil {
			logger.Error.Printf("Failed to destroy session: %v", err)
			writeError(w, http.StatusInternalServerError, "server error")
			return
		}
	}

	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleCurrentUser returns the student identity of the current session.
func (h *AuthHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	_, session := h.service.Session(r)
	if session == nil || session.User == nil {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": session.User,
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.service.Config.Session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(auth.SessionTTL / time.Second),
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.service.Config.Session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
