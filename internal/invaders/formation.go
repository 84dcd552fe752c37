package invaders

import "math"

// formation moves the alien group: a horizontal sweep that reverses at the
// playfield edges plus a periodic downward step.
type formation struct {
	speed    float64
	interval float64
	step     float64

	direction float64 // +1 right, -1 left
	timer     float64 // seconds since the last descent
}

func newFormation(f FormationSettings) formation {
	return formation{
		speed:     f.Speed,
		interval:  f.DescentInterval,
		step:      f.DescentStep,
		direction: -1,
	}
}

// advance moves every alien in the container by dt seconds of formation
// movement within a playfield of the given width.
func (f *formation) advance(aliens *Container[*Alien], dt, width float64) {
	if dt <= 0 || aliens.Len() == 0 {
		return
	}

	if f.interval > 0 {
		f.timer += dt
		if f.timer >= f.interval {
			f.timer = 0
			shift(aliens, Vec(0, -f.step))
		}
	}

	dx := f.direction * f.speed * dt
	if dx == 0 {
		return
	}
	left, right := groupSpan(aliens)
	if left+dx < 0 || right+dx > width {
		// Turn around this tick instead of crossing the edge.
		f.direction = -f.direction
		return
	}
	shift(aliens, Vec(dx, 0))
}

func shift(aliens *Container[*Alien], d Vector2) {
	for a := range aliens.Live() {
		a.translate(d)
	}
}

// groupSpan returns the horizontal extent of the live aliens.
func groupSpan(aliens *Container[*Alien]) (left, right float64) {
	left, right = math.Inf(1), math.Inf(-1)
	for a := range aliens.Live() {
		left = math.Min(left, a.Position.X)
		right = math.Max(right, a.Max().X)
	}
	return left, right
}
