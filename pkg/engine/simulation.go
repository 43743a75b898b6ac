// pkg/engine/simulation.go
package engine

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/opd-ai/go-snowfall/pkg/config"
	"github.com/opd-ai/go-snowfall/pkg/entity"
	"github.com/opd-ai/go-snowfall/pkg/event"
	"github.com/opd-ai/go-snowfall/pkg/geometry"
	"github.com/opd-ai/go-snowfall/pkg/logging"
	"github.com/opd-ai/go-snowfall/pkg/physics"
)

const (
	// spawnHeight is the y coordinate of a fresh spawn, just above the top edge.
	spawnHeight = -20.0
	// wrapMargin is how far past a side edge a flake may drift before it is
	// carried over to the opposite edge.
	wrapMargin = 5.0
	// collisionMinDepth gates obstacle checks: far (small) flakes fall
	// through obstacles, which reads as background depth and skips most of
	// the per-obstacle work.
	collisionMinDepth = 0.4

	// Drift oscillation: sin(y*driftFreqY + t*driftFreqT) * driftAmplitude * z.
	driftFreqY     = 0.01
	driftFreqT     = 0.002
	driftAmplitude = 0.5

	// repulsionStrength scales the pointer push before depth scaling.
	repulsionStrength = 5.0

	// Spawn velocity ranges.
	fallSpeedJitter = 0.5
	sideSpeedRange  = 0.25
	// stackOffsetRange bounds the per-flake landing height perturbation.
	stackOffsetRange = 4.0
)

// Simulation owns the flake field and drives one update pass per frame.
//
// All methods other than Run must be called from a single goroutine: the
// frame tick, pointer updates, and obstacle refreshes are expected to arrive
// on the same execution context, so flakes always observe a frame-consistent
// snapshot of the obstacle set and pointer without locking.
type Simulation struct {
	Config *config.SnowConfig

	// Flakes are allocated once at Start and reinitialized in place, so
	// slot identity is stable across frames.
	Flakes []*entity.Flake

	// Obstacles is the current landing surface set, replaced wholesale by
	// RefreshObstacles and shared-read during a frame.
	Obstacles []physics.Obstacle

	// Pointer is the current repulsion point. It defaults to a sentinel far
	// outside any plausible surface so nothing is repelled until real input
	// arrives.
	Pointer physics.Vector2D

	// Width and Height are the extent of the drawable surface.
	Width  float64
	Height float64

	// Source resolves the configured obstacle selectors. A nil source
	// resolves everything to no rectangles.
	Source geometry.Source

	// Renderer receives the finished flake states once per frame. A nil
	// renderer skips the render pass.
	Renderer entity.Renderer

	EventBus     *event.Bus
	Running      bool
	CurrentFrame uint64
	StartTime    time.Time

	// Now supplies the drift time signal; replaceable in tests.
	Now func() time.Time

	rng    *rand.Rand
	logger *logging.Logger
}

// pointerSentinel places the default repulsion point far off-surface.
const pointerSentinel = -1e6

// NewSimulation creates a simulation with the given configuration. A nil
// config uses the defaults; out-of-range options are individually replaced by
// their defaults.
func NewSimulation(cfg *config.SnowConfig) *Simulation {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Simulation{
		Config:   cfg.Normalized(),
		Pointer:  physics.Vector2D{X: pointerSentinel, Y: pointerSentinel},
		EventBus: event.NewEventBus(),
		Now:      time.Now,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:   logging.NewLogger(),
	}
}

// SetRand replaces the simulation's randomness source. Tests supply a seeded
// source to make spawn draws and stickiness rolls reproducible.
func (s *Simulation) SetRand(rng *rand.Rand) {
	s.rng = rng
}

// Start spawns the flake population, performs the initial obstacle refresh,
// and marks the simulation running. Calling Start while already running is a
// no-op: existing flake state is never reset and flakes are never
// double-spawned.
func (s *Simulation) Start() {
	if s.Running {
		return
	}

	if s.Flakes == nil {
		s.Flakes = make([]*entity.Flake, s.Config.FlakeCount)
		for i := range s.Flakes {
			s.Flakes[i] = &entity.Flake{}
			// Initial population is spread over the full height so the
			// first frames don't show a single wave descending from the
			// top edge.
			s.spawnFlake(s.Flakes[i], true)
		}
	}

	s.RefreshObstacles()

	s.Running = true
	s.StartTime = s.Now()
	s.EventBus.Publish(&event.BaseEvent{
		EventType: event.SimulationStarted,
		Source:    s,
	})
	s.logger.Info(context.Background(), "simulation started",
		"flake_count", len(s.Flakes),
		"obstacle_count", len(s.Obstacles),
	)
}

// Stop marks the simulation stopped. The current frame, if one is executing,
// runs to completion; stopping only prevents further frames from being
// scheduled by Run.
func (s *Simulation) Stop() {
	if !s.Running {
		return
	}
	s.Running = false
	s.EventBus.Publish(&event.BaseEvent{
		EventType: event.SimulationStopped,
		Source:    s,
	})
	s.logger.Info(context.Background(), "simulation stopped",
		"frames", s.CurrentFrame,
	)
}

// Resize updates the surface extent. Obstacle visibility depends on the
// vertical extent, so callers should follow a resize with RefreshObstacles.
func (s *Simulation) Resize(width, height float64) {
	s.Width = width
	s.Height = height
}

// SetPointer moves the repulsion point to the given surface coordinates.
func (s *Simulation) SetPointer(x, y float64) {
	s.Pointer = physics.Vector2D{X: x, Y: y}
	s.EventBus.Publish(&event.BaseEvent{
		EventType: event.PointerMoved,
		Source:    s,
	})
}

// ClearPointer resets the repulsion point to the off-surface sentinel, so no
// flake is within the repulsion radius by construction.
func (s *Simulation) ClearPointer() {
	s.Pointer = physics.Vector2D{X: pointerSentinel, Y: pointerSentinel}
}

// RefreshObstacles rebuilds the obstacle set wholesale from the configured
// selectors. Selectors the source cannot parse are logged and skipped;
// unmatched selectors contribute nothing. Rectangles entirely above or below
// the visible vertical extent are dropped.
func (s *Simulation) RefreshObstacles() {
	obstacles := make([]physics.Obstacle, 0, len(s.Obstacles))

	if s.Source != nil {
		for _, selector := range s.Config.ObstacleSelectors {
			rects, err := s.Source.Resolve(selector)
			if err != nil {
				s.logger.Warn(context.Background(), "skipping obstacle selector",
					"selector", selector,
					"error", err.Error(),
				)
				continue
			}
			for _, r := range rects {
				if r.Bottom() < 0 || r.Y > s.Height {
					continue
				}
				obstacles = append(obstacles, physics.NewObstacle(r.X, r.Y, r.Width))
			}
		}
	}

	s.Obstacles = obstacles
	s.EventBus.Publish(event.NewObstacleEvent(s, len(obstacles)))
}

// Step executes exactly one simulation and render pass. It is the unit the
// frame scheduler repeats; Run calls it until stopped.
func (s *Simulation) Step() {
	if !s.Running {
		return
	}

	t := float64(s.Now().Sub(s.StartTime).Milliseconds())

	for i, flake := range s.Flakes {
		if flake.Landed {
			s.meltFlake(i, flake)
		} else {
			s.advanceFlake(i, flake, t)
		}
	}
	s.CurrentFrame++

	s.renderFrame()
}

// Run drives Step at the given frame interval until the context is canceled
// or the simulation is stopped. It replaces a self-rescheduling frame
// callback with an explicit loop; the unit of cancellation is "do not
// schedule the next frame", never interrupting a frame mid-pass.
func (s *Simulation) Run(ctx context.Context, frameInterval time.Duration) {
	if frameInterval <= 0 {
		frameInterval = time.Second / 60
	}
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for s.Running {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step()
		}
	}
}

// advanceFlake applies one frame of falling physics: depth-scaled wind and
// oscillating drift, the pointer repulsion field, integration, horizontal
// wrap, bottom respawn, and the obstacle landing check.
func (s *Simulation) advanceFlake(i int, f *entity.Flake, t float64) {
	drift := physics.Vector2D{
		X: s.Config.Wind*f.Z +
			math.Sin(f.Position.Y*driftFreqY+t*driftFreqT)*driftAmplitude*f.Z,
	}
	delta := f.Velocity.Add(drift)

	if s.Config.MouseInteraction {
		field := physics.RepulsionField{
			Center: s.Pointer,
			Radius: s.Config.MouseRepulsionRadius,
		}
		delta = delta.Add(field.Force(f.Position).Scale(repulsionStrength * f.Z))
	}

	f.Position = f.Position.Add(delta)

	s.wrapHorizontal(f)

	if f.Position.Y > s.Height {
		s.spawnFlake(f, false)
		s.EventBus.Publish(event.NewFlakeEvent(event.FlakeRespawned, s, i))
		return
	}

	s.tryLand(i, f)
}

// wrapHorizontal carries a flake that drifted past a side edge by more than
// the margin over to the opposite edge. Toroidal wrap, not clamping.
func (s *Simulation) wrapHorizontal(f *entity.Flake) {
	if f.Position.X > s.Width+wrapMargin {
		f.Position.X = -wrapMargin
	} else if f.Position.X < -wrapMargin {
		f.Position.X = s.Width + wrapMargin
	}
}

// tryLand checks the flake against the current obstacle set. Only near flakes
// (z above collisionMinDepth) are eligible. Each qualifying obstacle gets one
// stickiness roll; the first successful roll lands the flake, snapping it to
// the landing line and freezing further motion.
func (s *Simulation) tryLand(i int, f *entity.Flake) {
	if f.Z <= collisionMinDepth {
		return
	}
	for _, o := range s.Obstacles {
		if !o.SpansX(f.Position.X) {
			continue
		}
		if !o.InLandingWindow(f.Position.Y, f.Size, f.StackOffset) {
			continue
		}
		if s.rng.Float64() < s.Config.Stickiness {
			f.Position.Y = o.LandingY(f.Size, f.StackOffset)
			f.Landed = true
			s.EventBus.Publish(event.NewFlakeEvent(event.FlakeLanded, s, i))
			return
		}
	}
}

// meltFlake decays a landed flake's opacity and respawns it once fully
// melted. Position stays frozen for the whole landed phase.
func (s *Simulation) meltFlake(i int, f *entity.Flake) {
	f.MeltOpacity -= s.Config.MeltSpeed
	if f.MeltOpacity <= 0 {
		s.EventBus.Publish(event.NewFlakeEvent(event.FlakeMelted, s, i))
		s.spawnFlake(f, false)
	}
}

// spawnFlake reinitializes a flake slot in place. A new spawn starts just
// above the top edge; the mid-field variant, used only for the initial
// population, spreads starting heights over the full vertical extent.
// Depth and size are redrawn together, keeping size == sizeBase*z.
func (s *Simulation) spawnFlake(f *entity.Flake, midField bool) {
	f.Z = 0.1 + s.rng.Float64()*0.9
	f.Size = s.Config.SizeBase * f.Z

	f.Position.X = s.rng.Float64() * s.Width
	if midField {
		f.Position.Y = s.rng.Float64() * s.Height
	} else {
		f.Position.Y = spawnHeight
	}

	f.Velocity.X = s.rng.Float64()*2*sideSpeedRange - sideSpeedRange
	f.Velocity.Y = s.Config.Gravity*f.Z + s.rng.Float64()*fallSpeedJitter

	f.Opacity = 1
	f.MeltOpacity = 1
	f.Landed = false
	f.StackOffset = s.rng.Float64() * stackOffsetRange
}

// renderFrame hands the finished flake states to the renderer.
func (s *Simulation) renderFrame() {
	if s.Renderer == nil {
		return
	}
	s.Renderer.Clear()
	for _, flake := range s.Flakes {
		flake.Render(s.Renderer)
	}
	s.Renderer.Present()
}
