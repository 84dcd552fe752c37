package invaders

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Player is the single ship controlled by the host.
type Player struct {
	body    GameObject
	name    string
	speed   float64
	maxName int
}

func newPlayer(s Settings) *Player {
	return &Player{
		body: GameObject{
			Position: Vec((s.Playfield.X-s.Player.Size.X)/2, s.Player.Y),
			Size:     s.Player.Size,
		},
		name:    s.Player.Name,
		speed:   s.Player.Speed,
		maxName: s.MaxNameLength,
	}
}

// Bounds returns the player's box.
func (p *Player) Bounds() GameObject {
	return p.body
}

// Name returns the display name.
func (p *Player) Name() string {
	return p.name
}

// Rename replaces the display name unless it is too long.
func (p *Player) Rename(name string) error {
	if n := utf8.RuneCountInString(name); n > p.maxName {
		return fmt.Errorf("%w: %d code points, limit is %d", ErrNameTooLong, n, p.maxName)
	}
	p.name = name
	return nil
}

// Move shifts the ship horizontally by direction.X*speed*dt and clamps it so
// the box stays within [0, width]. The vertical component is ignored.
func (p *Player) Move(direction Vector2, dt, width float64) {
	if !isFinite(dt) || dt <= 0 || math.IsNaN(direction.X) {
		return
	}
	x := p.body.Position.X + direction.X*p.speed*dt
	if math.IsNaN(x) {
		// Inf*0 when speed is zero.
		return
	}
	p.body.Position.X = math.Max(0, math.Min(x, width-p.body.Size.X))
}
