// pkg/engine/snapshot.go
package engine

import (
	"github.com/opd-ai/go-snowfall/pkg/entity"
	"github.com/opd-ai/go-snowfall/pkg/physics"
)

// FieldState is a value snapshot of the simulation, safe to hand to HUDs or
// diagnostics without exposing the live flake slots.
type FieldState struct {
	Frame     uint64
	Width     float64
	Height    float64
	Flakes    []FlakeState
	Obstacles []physics.Obstacle
}

// FlakeState is a value snapshot of one flake slot.
type FlakeState struct {
	Index       int
	Position    physics.Vector2D
	Velocity    physics.Vector2D
	Z           float64
	Size        float64
	MeltOpacity float64
	Landed      bool
}

// Snapshot returns a copy of the current field state. Must be called from the
// same goroutine that drives Step.
func (s *Simulation) Snapshot() *FieldState {
	state := &FieldState{
		Frame:     s.CurrentFrame,
		Width:     s.Width,
		Height:    s.Height,
		Flakes:    make([]FlakeState, len(s.Flakes)),
		Obstacles: append([]physics.Obstacle(nil), s.Obstacles...),
	}
	for i, f := range s.Flakes {
		state.Flakes[i] = flakeState(i, f)
	}
	return state
}

func flakeState(i int, f *entity.Flake) FlakeState {
	return FlakeState{
		Index:       i,
		Position:    f.Position,
		Velocity:    f.Velocity,
		Z:           f.Z,
		Size:        f.Size,
		MeltOpacity: f.MeltOpacity,
		Landed:      f.Landed,
	}
}
