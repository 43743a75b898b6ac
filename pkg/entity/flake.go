// pkg/entity/flake.go
package entity

import (
	"github.com/opd-ai/go-snowfall/pkg/physics"
)

// Flake represents a single snowflake in the field. A flake is either falling
// or landed on an obstacle; a landed flake melts away and is then reused as a
// fresh falling flake. Flakes are allocated once at simulation start and
// reinitialized in place, so their identity is stable for the whole run.
type Flake struct {
	Position physics.Vector2D
	Velocity physics.Vector2D

	// Z is the pseudo-3D depth in [0.1, 1.0). It scales size, fall speed,
	// drift amplitude, and repulsion strength, and gates collision checks.
	// Z and Size are reassigned together only at (re)spawn.
	Z    float64
	Size float64

	Opacity     float64
	MeltOpacity float64
	Landed      bool

	// StackOffset perturbs the landing line per flake, drawn from [0, 4)
	// at spawn.
	StackOffset float64
}

// RenderOpacity returns the alpha the surface should draw this flake with:
// the remaining melt opacity once landed, otherwise a depth-scaled constant
// so near flakes read brighter than far ones.
func (f *Flake) RenderOpacity() float64 {
	if f.Landed {
		if f.MeltOpacity < 0 {
			return 0
		}
		return f.MeltOpacity
	}
	return f.Z * 0.8
}

// Render hands the flake to the renderer.
func (f *Flake) Render(r Renderer) {
	r.RenderFlake(f)
}
