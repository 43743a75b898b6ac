// pkg/physics/obstacle.go
package physics

// LandingWindow is the vertical span below the landing line within which a
// flake can still stick. Flakes move in discrete per-frame steps, so a single
// line would be skipped over at higher fall speeds.
const LandingWindow = 10.0

// Obstacle is an axis-aligned rectangle whose top edge flakes can land on.
type Obstacle struct {
	Left  float64
	Right float64
	Top   float64
	Width float64
}

// NewObstacle creates an obstacle from the left edge, top edge, and width of
// a screen rectangle.
func NewObstacle(left, top, width float64) Obstacle {
	return Obstacle{
		Left:  left,
		Right: left + width,
		Top:   top,
		Width: width,
	}
}

// SpansX reports whether x lies strictly inside the obstacle's horizontal extent.
func (o Obstacle) SpansX(x float64) bool {
	return x > o.Left && x < o.Right
}

// LandingY returns the resting y coordinate for a flake of the given size and
// stack offset. The offset perturbs the line per flake so landed flakes don't
// form a perfectly flat row.
func (o Obstacle) LandingY(size, stackOffset float64) float64 {
	return o.Top - size*0.5 + stackOffset
}

// InLandingWindow reports whether y is within the capture window for a flake
// of the given size and stack offset.
func (o Obstacle) InLandingWindow(y, size, stackOffset float64) bool {
	landY := o.LandingY(size, stackOffset)
	return y >= landY && y <= landY+LandingWindow
}
