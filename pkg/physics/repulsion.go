// pkg/physics/repulsion.go
package physics

// RepulsionField pushes points away from a single center, with strength
// falling off linearly from 1.0 at the center to 0.0 at the radius.
type RepulsionField struct {
	Center Vector2D
	Radius float64
}

// Force returns the displacement direction away from the field center scaled
// by the falloff strength. Points at or beyond the radius, or a disabled
// field (non-positive radius), yield a zero vector.
func (f RepulsionField) Force(p Vector2D) Vector2D {
	if f.Radius <= 0 {
		return Vector2D{}
	}
	offset := p.Sub(f.Center)
	if offset.LengthSquared() >= f.Radius*f.Radius {
		return Vector2D{}
	}
	strength := (f.Radius - offset.Length()) / f.Radius
	return FromAngle(offset.Angle(), strength)
}
