// Package httphandler is the HTTP driving adapter that serves the JSON API.
package httphandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/xsukax/sharetimer/internal/application"
	"github.com/xsukax/sharetimer/internal/domain/port/driven"
)

// Handler serves the REST API over the timer service.
type Handler struct {
	timerSvc *application.TimerService
	logger   *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(timerSvc *application.TimerService, logger *slog.Logger) *Handler {
	return &Handler{
		timerSvc: timerSvc,
		logger:   logger,
	}
}

// RegisterAPIRoutes registers all JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /api/v1/timers", h.CreateTimer)
	mux.HandleFunc("GET /api/v1/timers", h.ListTimers)
	mux.HandleFunc("GET /api/v1/timers/{id}", h.GetTimer)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// CreateTimer creates a new timer from a JSON body and returns it with 201.
func (h *Handler) CreateTimer(w http.ResponseWriter, r *http.Request) {
	var req CreateTimerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	timer, err := h.timerSvc.Create(r.Context(), application.CreateTimerInput{
		Days:      req.Days,
		Hours:     req.Hours,
		Minutes:   req.Minutes,
		Seconds:   req.Seconds,
		Title:     req.Title,
		CreatorIP: ClientIP(r),
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidDuration) || errors.Is(err, application.ErrDurationTooLong) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error("failed to create timer", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toTimerResponse(*timer, time.Now()))
}

// GetTimer returns a single timer by id together with its live countdown
// state.
func (h *Handler) GetTimer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid timer id")
		return
	}

	timer, err := h.timerSvc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, driven.ErrTimerNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("timer #%d not found", id))
			return
		}
		h.logger.Error("failed to get timer", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toTimerResponse(*timer, time.Now()))
}

// ListTimers returns the caller's most recent timers, newest first.
func (h *Handler) ListTimers(w http.ResponseWriter, r *http.Request) {
	timers, err := h.timerSvc.ListRecent(r.Context(), ClientIP(r))
	if err != nil {
		h.logger.Error("failed to list timers", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	now := time.Now()
	resp := make([]TimerResponse, 0, len(timers))
	for _, timer := range timers {
		resp = append(resp, toTimerResponse(timer, now))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
