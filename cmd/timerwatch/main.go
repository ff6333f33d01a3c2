// timerwatch follows a shared timer's countdown in the terminal. It fetches
// the timer once from a running sharetimer server, then ticks locally from
// the absolute timestamps, exactly like the browser client: no further
// network calls are made.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/xsukax/sharetimer/internal/domain/model"
)

// timerPayload is the subset of the server's timer response we need. The
// derived fields (status, remaining) are recomputed locally on every tick, so
// only the absolute timestamps are decoded.
type timerPayload struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	StartTimestamp  int64  `json:"start_timestamp"`
	DurationSeconds int64  `json:"duration_seconds"`
}

func main() {
	var server string

	cmd := &cobra.Command{
		Use:   "timerwatch ID",
		Short: "Watch a shared timer count down in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid timer id %q", args[0])
			}
			return watch(cmd.Context(), server, id)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&server, "server", "http://127.0.0.1:8080", "Base URL of the sharetimer server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func watch(ctx context.Context, server string, id int64) error {
	timer, err := fetchTimer(ctx, server, id)
	if err != nil {
		return err
	}

	fmt.Printf("Timer #%d - %s (%s)\n", timer.ID, timer.Title, model.FormatDuration(timer.DurationSeconds))

	tracker := model.NewTracker(timer)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		snap, completed := tracker.Observe(time.Now())
		fmt.Printf("\r%s", snap.Display)
		if completed {
			fmt.Println("\nTimer completed.")
			return nil
		}

		select {
		case <-ctx.Done():
			fmt.Println()
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func fetchTimer(ctx context.Context, server string, id int64) (model.Timer, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	url := fmt.Sprintf("%s/api/v1/timers/%d", server, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Timer{}, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return model.Timer{}, fmt.Errorf("fetch timer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.Timer{}, fmt.Errorf("timer #%d not found", id)
	}
	if resp.StatusCode != http.StatusOK {
		return model.Timer{}, fmt.Errorf("fetch timer: unexpected status %d", resp.StatusCode)
	}

	var payload timerPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.Timer{}, fmt.Errorf("decode timer: %w", err)
	}

	return model.Timer{
		ID:              payload.ID,
		StartTimestamp:  payload.StartTimestamp,
		DurationSeconds: payload.DurationSeconds,
		Title:           payload.Title,
	}, nil
}
