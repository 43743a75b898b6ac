// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-snowfall/pkg/engine"
)

// PointerSystem feeds Engo's mouse state into the simulation: the cursor
// position becomes the repulsion point, and scrolling triggers an obstacle
// refresh since scrolled elements move on screen.
type PointerSystem struct {
	sim *engine.Simulation

	lastX, lastY float32
	baselined    bool
	seenInput    bool
}

// NewPointerSystem creates a new pointer input system.
func NewPointerSystem(sim *engine.Simulation) *PointerSystem {
	return &PointerSystem{sim: sim}
}

// New satisfies the ecs.System interface.
func (ps *PointerSystem) New(*ecs.World) {}

// Remove satisfies the ecs.System interface.
func (ps *PointerSystem) Remove(ecs.BasicEntity) {}

// Update feeds the current mouse state into the simulation.
func (ps *PointerSystem) Update(dt float32) {
	ps.handleInput(engo.Input.Mouse.X, engo.Input.Mouse.Y, engo.Input.Mouse.ScrollY)
}

// handleInput publishes the pointer position and reacts to scrolling. The
// repulsion point stays at its off-surface sentinel until the mouse first
// moves, so an untouched window has no repulsion effect; scrolling refreshes
// obstacles regardless, since elements move on screen even without pointer
// motion.
func (ps *PointerSystem) handleInput(x, y, scrollY float32) {
	if scrollY != 0 {
		ps.sim.RefreshObstacles()
	}

	if !ps.baselined {
		ps.baselined = true
		ps.lastX, ps.lastY = x, y
		return
	}
	if !ps.seenInput && x == ps.lastX && y == ps.lastY {
		return
	}
	ps.seenInput = true
	ps.lastX, ps.lastY = x, y
	ps.sim.SetPointer(float64(x), float64(y))
}
