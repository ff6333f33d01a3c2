package httphandler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xsukax/sharetimer/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and
// message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// CreateTimerRequest is the JSON body for the create timer endpoint.
// Negative time fields are clamped to zero by the service.
type CreateTimerRequest struct {
	Title   string `json:"title"`
	Days    int64  `json:"days"`
	Hours   int64  `json:"hours"`
	Minutes int64  `json:"minutes"`
	Seconds int64  `json:"seconds"`
}

// TimerResponse is the JSON representation of a timer together with its
// countdown state evaluated at response time.
type TimerResponse struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	StartTimestamp   int64  `json:"start_timestamp"`
	DurationSeconds  int64  `json:"duration_seconds"`
	EndTimestamp     int64  `json:"end_timestamp"`
	CreatedAt        string `json:"created_at"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	Status           string `json:"status"`
	URL              string `json:"url"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toTimerResponse converts a domain Timer to its JSON response
// representation, evaluating the countdown at the given instant.
func toTimerResponse(timer model.Timer, now time.Time) TimerResponse {
	snap := timer.Snapshot(now)

	return TimerResponse{
		ID:               timer.ID,
		Title:            timer.Title,
		StartTimestamp:   timer.StartTimestamp,
		DurationSeconds:  timer.DurationSeconds,
		EndTimestamp:     timer.EndTimestamp(),
		CreatedAt:        timer.CreatedAt.UTC().Format(time.RFC3339),
		RemainingSeconds: snap.Remaining,
		Status:           string(snap.Status),
		URL:              fmt.Sprintf("/t/%d", timer.ID),
	}
}
