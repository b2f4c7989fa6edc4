package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/anslagstavla/internal/app"
	"github.com/shrimpsizemoose/anslagstavla/internal/metrics"
	"github.com/shrimpsizemoose/anslagstavla/internal/models"
)

type EventHandler struct {
	service *app.Service
}

func NewEventHandler(service *app.Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

func (h *EventHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.Store.ListEvents()
	if err != nil {
		logger.Error.Printf("Failed to list events: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if events == nil {
		events = []models.CalendarEvent{}
	}

	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var event models.CalendarEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := event.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Store.CreateEvent(&event); err != nil {
		logger.Error.Printf("Failed to create event: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	metrics.MutationsTotal.WithLabelValues("calendar_event", "create").Inc()
	writeJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req struct {
		Date  *string `json:"date"`
		Title *string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.service.Store.GetEvent(id)
	if err != nil {
		logger.Error.Printf("Failed to get event %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if event == nil {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}

	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Title != nil {
		event.Title = *req.Title
	}
	if err := event.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Store.UpdateEvent(event); err != nil {
		logger.Error.Printf("Failed to update event %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	metrics.MutationsTotal.WithLabelValues("calendar_event", "update").Inc()
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.service.Store.DeleteEvent(id)
	if err != nil {
		logger.Error.Printf("Failed to delete event %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}

	metrics.MutationsTotal.WithLabelValues("calendar_event", "delete").Inc()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
