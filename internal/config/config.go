// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration loaded from environment
// variables.
type Config struct {
	ListenAddr  string
	DBPath      string
	AppTitle    string
	RecentLimit int
}

// Load reads configuration from environment variables and returns a
// validated Config. All variables are optional with defaults:
// SHARETIMER_LISTEN_ADDR (127.0.0.1:8080), SHARETIMER_DB_PATH
// (sharetimer.db), SHARETIMER_APP_TITLE (Shared Timers),
// SHARETIMER_RECENT_LIMIT (15).
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("SHARETIMER_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "sharetimer.db"
	if v, ok := os.LookupEnv("SHARETIMER_DB_PATH"); ok {
		dbPath = v
	}

	appTitle := "Shared Timers"
	if v, ok := os.LookupEnv("SHARETIMER_APP_TITLE"); ok && v != "" {
		appTitle = v
	}

	recentLimit := 15
	if v, ok := os.LookupEnv("SHARETIMER_RECENT_LIMIT"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("SHARETIMER_RECENT_LIMIT must be a positive integer, got %q", v)
		}
		recentLimit = parsed
	}

	return &Config{
		ListenAddr:  listenAddr,
		DBPath:      dbPath,
		AppTitle:    appTitle,
		RecentLimit: recentLimit,
	}, nil
}
