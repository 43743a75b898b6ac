// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-snowfall/pkg/entity"
	"github.com/opd-ai/go-snowfall/pkg/logging"
)

// NullRenderer is a simple implementation of entity.Renderer for headless
// runs and tests. It draws nothing and logs at debug level.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Present called")
}

// RenderFlake implements entity.Renderer.
func (d *NullRenderer) RenderFlake(flake *entity.Flake) {
	ctx := context.Background()
	if flake == nil {
		d.logger.Debug(ctx, "RenderFlake called with nil flake")
		return
	}
	d.logger.Debug(ctx, "RenderFlake called",
		"x", flake.Position.X,
		"y", flake.Position.Y,
		"size", flake.Size,
		"opacity", flake.RenderOpacity(),
		"landed", flake.Landed,
	)
}

// NullRendererInstance is a global instance of NullRenderer for convenience.
var NullRendererInstance entity.Renderer = NewNullRenderer()
