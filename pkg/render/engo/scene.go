// pkg/render/engo/scene.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-snowfall/pkg/engine"
)

// SnowScene hosts the simulation inside an Engo window. It wires the
// drawable surface, the pointer input, and the resize lifecycle to the
// simulation, and drives one Step per Engo update.
type SnowScene struct {
	world    *ecs.World
	sim      *engine.Simulation
	renderer *EngoRenderer
}

// NewSnowScene creates a scene around an existing simulation. The scene takes
// over the simulation's renderer, surface extent, and start.
func NewSnowScene(sim *engine.Simulation) *SnowScene {
	return &SnowScene{
		sim:   sim,
		world: &ecs.World{},
	}
}

// Type returns the scene type (required by Engo).
func (scene *SnowScene) Type() string {
	return "SnowScene"
}

// Preload is called before the scene starts (required by Engo).
func (scene *SnowScene) Preload() {}

// Setup is called when the scene starts (required by Engo).
func (scene *SnowScene) Setup(u engo.Updater) {
	if world, ok := u.(*ecs.World); ok {
		scene.world = world
	}

	scene.world.AddSystem(&common.MouseSystem{})

	scene.renderer = NewEngoRenderer(scene.world)
	if err := scene.renderer.Initialize(); err != nil {
		panic("Failed to initialize renderer: " + err.Error())
	}

	scene.sim.Renderer = scene.renderer
	scene.sim.Resize(float64(engo.GameWidth()), float64(engo.GameHeight()))

	// Input first, then the frame step, so each frame sees the pointer
	// position from the same update.
	scene.world.AddSystem(NewPointerSystem(scene.sim))
	scene.world.AddSystem(&frameSystem{sim: scene.sim})

	engo.Mailbox.Listen("WindowResizeMessage", func(engo.Message) {
		scene.sim.Resize(float64(engo.GameWidth()), float64(engo.GameHeight()))
		scene.sim.RefreshObstacles()
	})

	scene.sim.Start()
}

// frameSystem drives exactly one simulation pass per Engo update, giving the
// simulation its single-threaded cooperative frame tick.
type frameSystem struct {
	sim *engine.Simulation
}

// New satisfies the ecs.System interface.
func (f *frameSystem) New(*ecs.World) {}

// Remove satisfies the ecs.System interface.
func (f *frameSystem) Remove(ecs.BasicEntity) {}

// Update runs one simulation and render pass.
func (f *frameSystem) Update(dt float32) {
	f.sim.Step()
}
