package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchTimer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/timers/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 42,
			"title": "Break",
			"start_timestamp": 1770000000,
			"duration_seconds": 300,
			"remaining_seconds": 120,
			"status": "running",
			"url": "/t/42"
		}`))
	}))
	defer srv.Close()

	timer, err := fetchTimer(context.Background(), srv.URL, 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), timer.ID)
	assert.Equal(t, "Break", timer.Title)
	assert.Equal(t, int64(1770000000), timer.StartTimestamp)
	assert.Equal(t, int64(300), timer.DurationSeconds)
}

func TestFetchTimer_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"timer #7 not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := fetchTimer(context.Background(), srv.URL, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timer #7 not found")
}
