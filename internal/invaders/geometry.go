// Package invaders is the Space Invaders simulation core.
//
// A Manager owns one game session: the player, the alien formation, the
// projectiles in flight and two notification slots (shoot and kill). The host
// drives it from its frame loop by calling Update once per frame, pushes
// commands (MovePlayer, SpawnProjectile, SetPlayerName) and reads back value
// snapshots for rendering. The package performs no I/O and no locking; a
// Manager must be used from a single goroutine.
//
// World coordinates are y-up. A GameObject is anchored at its bottom-left
// corner: it covers [Position, Position+Size].
package invaders

import "math"

// Vector2 is a 2D vector in world units.
type Vector2 struct {
	X, Y float64
}

// Vec creates a Vector2.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * k.
func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// finite reports whether both components are real numbers.
func (v Vector2) finite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// GameObject is the axis-aligned bounding box of a simulated actor.
type GameObject struct {
	Position Vector2
	Size     Vector2
}

// Max returns the top-right corner of the box.
func (o GameObject) Max() Vector2 {
	return o.Position.Add(o.Size)
}

// Center returns the middle of the box.
func (o GameObject) Center() Vector2 {
	return o.Position.Add(o.Size.Scale(0.5))
}

// Overlaps reports whether two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (o GameObject) Overlaps(other GameObject) bool {
	a, b := o.Max(), other.Max()
	return o.Position.X < b.X && a.X > other.Position.X &&
		o.Position.Y < b.Y && a.Y > other.Position.Y
}

func (o *GameObject) translate(d Vector2) {
	o.Position = o.Position.Add(d)
}

func (o GameObject) valid() bool {
	return o.Position.finite() && o.Size.finite() && o.Size.X >= 0 && o.Size.Y >= 0
}
