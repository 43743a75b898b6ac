// pkg/engine/run_test.go
package engine

import (
	"context"
	"testing"
	"time"

	"github.com/opd-ai/go-snowfall/pkg/config"
)

func TestRun_CancelStopsScheduling(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FlakeCount = 5
	sim := newTestSimulation(cfg)
	sim.Start()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	if sim.CurrentFrame == 0 {
		t.Error("Run scheduled no frames before cancellation")
	}
}

func TestRun_ReturnsWhenNotRunning(t *testing.T) {
	sim := newTestSimulation(config.DefaultConfig())
	// Never started: Run must return without scheduling anything.

	done := make(chan struct{})
	go func() {
		sim.Run(context.Background(), time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return for a stopped simulation")
	}
}

func TestSnapshot_CopiesState(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FlakeCount = 3
	sim := newTestSimulation(cfg)
	sim.Start()

	state := sim.Snapshot()

	if len(state.Flakes) != 3 {
		t.Fatalf("snapshot has %d flakes, expected 3", len(state.Flakes))
	}
	if state.Width != 800 || state.Height != 600 {
		t.Errorf("snapshot extent = %vx%v, expected 800x600", state.Width, state.Height)
	}

	// Mutating the snapshot must not touch the live flakes.
	state.Flakes[0].Position.X = -9999
	if sim.Flakes[0].Position.X == -9999 {
		t.Error("snapshot aliases live flake state")
	}

	for i, fs := range state.Flakes {
		if fs.Index != i {
			t.Errorf("flake %d: snapshot index = %d", i, fs.Index)
		}
		if fs.Z != sim.Flakes[i].Z {
			t.Errorf("flake %d: snapshot z = %v, live z = %v", i, fs.Z, sim.Flakes[i].Z)
		}
	}
}
