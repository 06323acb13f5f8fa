package daemon

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"testing/synctest"
	"time"

	"foors"
	"foors/internal/sim"
	"foors/sdk"
)

// TestRunServesRPCsUntilCancelled exercises Run's tick-loop goroutine (a
// real time.Ticker) and its dial-retry client together inside a synctest
// bubble, so the test's wall-clock cost is the bubble's virtual advance
// rather than the real 10ms tick interval and retry backoff.
func TestRunServesRPCsUntilCancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		socketPath := filepath.Join(t.TempDir(), "foorsd.sock")
		model := sim.New()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- Run(ctx, model, socketPath, 10*time.Millisecond) }()

		var client *sdk.Client
		var err error
		for deadline := time.Now().Add(2 * time.Second); time.Now().Before(deadline); {
			client, err = sdk.Dial(context.Background(), socketPath)
			if err == nil {
				break
			}
			time.Sleep(20 * time.Millisecond)
		}
		if err != nil {
			cancel()
			t.Fatalf("dial daemon: %v", err)
		}
		defer client.Close()

		id, err := client.AddNode(context.Background(), foors.Source, foors.Position{X: 0, Y: 0})
		if err != nil {
			t.Fatalf("AddNode() error = %v", err)
		}
		if id == "" {
			t.Fatal("AddNode() returned empty id")
		}

		if _, found, err := client.GetNode(context.Background(), id); err != nil || !found {
			t.Fatalf("GetNode() = found=%v err=%v, want found", found, err)
		}

		stats, err := client.GetStats(context.Background())
		if err != nil {
			t.Fatalf("GetStats() error = %v", err)
		}
		if stats.NodeCount != 1 {
			t.Fatalf("NodeCount = %d, want 1", stats.NodeCount)
		}

		unknown := foors.NodeID("does-not-exist")
		if _, _, err := client.GetNode(context.Background(), unknown); err == nil {
			t.Fatal("GetNode() on unknown id: expected error")
		}

		if err := client.RemoveNode(context.Background(), id); err != nil {
			t.Fatalf("RemoveNode() error = %v", err)
		}

		cancel()
		select {
		case err := <-done:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Fatalf("Run() returned %v, want context.Canceled", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Run() did not return after cancellation")
		}
	})
}
