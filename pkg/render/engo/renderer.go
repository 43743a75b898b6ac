// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-snowfall/pkg/entity"
)

// EngoRenderer implements entity.Renderer using the Engo game engine. Each
// flake gets one ECS entity with a circle drawable; flake identity is stable
// across frames, so the pool is keyed by flake pointer and only grows up to
// the configured flake count.
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem

	sprites map[*entity.Flake]*flakeSprite
}

// flakeSprite keeps the ECS components for one flake so per-frame updates
// mutate the same structs the render system holds.
type flakeSprite struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// NewEngoRenderer creates a new Engo-based renderer.
func NewEngoRenderer(world *ecs.World) *EngoRenderer {
	return &EngoRenderer{
		world:   world,
		sprites: make(map[*entity.Flake]*flakeSprite),
	}
}

// Initialize sets up the renderer's systems.
func (r *EngoRenderer) Initialize() error {
	r.renderSystem = &common.RenderSystem{}
	r.world.AddSystem(r.renderSystem)
	return nil
}

// RenderFlake implements entity.Renderer.
func (r *EngoRenderer) RenderFlake(flake *entity.Flake) {
	if flake == nil {
		return
	}
	sprite := r.getOrCreateSprite(flake)
	r.updateSprite(sprite, flake)
}

// Clear implements entity.Renderer. Engo clears the framebuffer itself each
// frame, so there is nothing to do here.
func (r *EngoRenderer) Clear() {}

// Present implements entity.Renderer. Presentation happens inside Engo's
// render system after all entities are updated.
func (r *EngoRenderer) Present() {}

// getOrCreateSprite returns the ECS entity for a flake, creating and
// registering it with the render system on first sight.
func (r *EngoRenderer) getOrCreateSprite(flake *entity.Flake) *flakeSprite {
	if sprite, exists := r.sprites[flake]; exists {
		return sprite
	}

	sprite := &flakeSprite{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: common.Circle{},
			Color:    color.RGBA{255, 255, 255, 255},
		},
		space: common.SpaceComponent{
			Position: engo.Point{X: 0, Y: 0},
			Width:    float32(flake.Size * 2),
			Height:   float32(flake.Size * 2),
		},
	}
	r.sprites[flake] = sprite
	r.renderSystem.Add(&sprite.basic, &sprite.render, &sprite.space)

	return sprite
}

// updateSprite moves and fades the flake's circle to match the simulation
// state. The space component holds the bounding box, so the drawn position is
// the flake center minus its radius.
func (r *EngoRenderer) updateSprite(sprite *flakeSprite, flake *entity.Flake) {
	sprite.space.Position = engo.Point{
		X: float32(flake.Position.X - flake.Size),
		Y: float32(flake.Position.Y - flake.Size),
	}
	sprite.space.Width = float32(flake.Size * 2)
	sprite.space.Height = float32(flake.Size * 2)

	alpha := flake.RenderOpacity()
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	sprite.render.Color = color.RGBA{255, 255, 255, uint8(alpha * 255)}
}

// Remove drops a flake's ECS entity from the render system. The simulation
// never destroys flakes, so this is only needed when tearing a scene down.
func (r *EngoRenderer) Remove(flake *entity.Flake) {
	if sprite, exists := r.sprites[flake]; exists {
		r.renderSystem.Remove(sprite.basic)
		delete(r.sprites, flake)
	}
}
