package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/anslagstavla/internal/app"
	"github.com/shrimpsizemoose/anslagstavla/internal/metrics"
	"github.com/shrimpsizemoose/anslagstavla/internal/models"
)

type NewsHandler struct {
	service *app.Service
}

func NewNewsHandler(service *app.Service) *NewsHandler {
	return &NewsHandler{
		service: service,
	}
}

func (h *NewsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	news, err := h.service.Store.ListNews()
	if err != nil {
		logger.Error.Printf("Failed to list news: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if news == nil {
		news = []models.News{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"newsItems": news,
	})
}

func (h *NewsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := http.StatusCreated
	defer func() {
		duration := time.Since(start).Seconds()
		metrics.APIRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			strconv.Itoa(status),
		).Observe(duration)
	}()

	var item models.News
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		status = http.StatusBadRequest
		writeError(w, status, "invalid request body")
		return
	}
	if err := item.Validate(); err != nil {
		status = http.StatusBadRequest
		writeError(w, status, err.Error())
		return
	}

	if err := h.service.Store.CreateNews(&item); err != nil {
		logger.Error.Printf("Failed to create news: %v", err)
		status = http.StatusInternalServerError
		writeError(w, status, "server error")
		return
	}

	metrics.MutationsTotal.WithLabelValues("news", "create").Inc()
	writeJSON(w, status, item)
}

func (h *NewsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.service.Store.DeleteNews(id)
	if err != nil {
		logger.Error.Printf("Failed to delete news %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	if deleted {
		metrics.MutationsTotal.WithLabelValues("news", "delete").Inc()
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": deleted})
}
