package invaders

import (
	"fmt"
	"unicode/utf8"
)

// Settings configures a session. Use DefaultSettings as a starting point.
type Settings struct {
	// Playfield is the world size: X is the width, Y the height.
	Playfield Vector2

	Player     PlayerSettings
	Projectile ProjectileSettings
	Formation  FormationSettings

	// Aliens, when non-empty, is the exact starting formation and replaces
	// the grid described by Formation.
	Aliens []GameObject

	// MaxProjectiles caps the number of shots in flight.
	MaxProjectiles int

	// MaxNameLength bounds the player name, in Unicode code points.
	MaxNameLength int
}

// PlayerSettings describes the player ship.
type PlayerSettings struct {
	Size  Vector2
	Y     float64 // bottom edge of the ship
	Speed float64 // world units per second at full deflection
	Name  string  // initial display name
}

// ProjectileSettings describes player shots.
type ProjectileSettings struct {
	Size  Vector2
	Speed float64 // upward speed in world units per second
}

// FormationSettings describes the starting alien grid and how it moves.
type FormationSettings struct {
	Columns   int
	Rows      int
	AlienSize Vector2
	Gap       Vector2 // space between neighbouring aliens
	Top       float64 // top edge of the highest row

	Speed           float64 // horizontal speed in world units per second
	DescentInterval float64 // seconds between downward steps, 0 disables descent
	DescentStep     float64 // world units per downward step
}

// DefaultSettings returns a 480x800 playfield with a 7x5 formation.
func DefaultSettings() Settings {
	return Settings{
		Playfield: Vec(480, 800),
		Player: PlayerSettings{
			Size:  Vec(32, 16),
			Y:     24,
			Speed: 240,
			Name:  "Player",
		},
		Projectile: ProjectileSettings{
			Size:  Vec(4, 12),
			Speed: 480,
		},
		Formation: FormationSettings{
			Columns:         7,
			Rows:            5,
			AlienSize:       Vec(32, 24),
			Gap:             Vec(24, 24),
			Top:             760,
			Speed:           60,
			DescentInterval: 3,
			DescentStep:     24,
		},
		MaxProjectiles: 3,
		MaxNameLength:  64,
	}
}

// Validate reports the first problem that would make a session unusable.
func (s Settings) Validate() error {
	if !s.Playfield.finite() || s.Playfield.X <= 0 || s.Playfield.Y <= 0 {
		return fmt.Errorf("%w: playfield must be positive, got %gx%g", ErrInvalidSettings, s.Playfield.X, s.Playfield.Y)
	}
	player := GameObject{Position: Vec(0, s.Player.Y), Size: s.Player.Size}
	if !player.valid() {
		return fmt.Errorf("%w: bad player box %+v", ErrInvalidSettings, player)
	}
	if s.Player.Size.X > s.Playfield.X {
		return fmt.Errorf("%w: player width %g exceeds playfield width %g", ErrInvalidSettings, s.Player.Size.X, s.Playfield.X)
	}
	if !isFinite(s.Player.Speed) || s.Player.Speed < 0 {
		return fmt.Errorf("%w: player speed must be >= 0", ErrInvalidSettings)
	}
	if !(GameObject{Size: s.Projectile.Size}).valid() {
		return fmt.Errorf("%w: bad projectile size %+v", ErrInvalidSettings, s.Projectile.Size)
	}
	if !isFinite(s.Projectile.Speed) || s.Projectile.Speed < 0 {
		return fmt.Errorf("%w: projectile speed must be >= 0", ErrInvalidSettings)
	}
	if s.MaxProjectiles <= 0 {
		return fmt.Errorf("%w: max projectiles must be positive", ErrInvalidSettings)
	}
	if s.MaxNameLength <= 0 {
		return fmt.Errorf("%w: max name length must be positive", ErrInvalidSettings)
	}
	if utf8.RuneCountInString(s.Player.Name) > s.MaxNameLength {
		return fmt.Errorf("%w: default name longer than %d", ErrInvalidSettings, s.MaxNameLength)
	}
	for i, a := range s.Aliens {
		if !a.valid() {
			return fmt.Errorf("%w: bad alien #%d %+v", ErrInvalidSettings, i, a)
		}
	}
	return s.Formation.validate()
}

func (f FormationSettings) validate() error {
	if f.Columns < 0 || f.Rows < 0 {
		return fmt.Errorf("%w: negative formation dimensions", ErrInvalidSettings)
	}
	if !(GameObject{Size: f.AlienSize}).valid() || !f.Gap.finite() {
		return fmt.Errorf("%w: bad formation geometry", ErrInvalidSettings)
	}
	if !isFinite(f.Speed) || f.Speed < 0 {
		return fmt.Errorf("%w: formation speed must be >= 0", ErrInvalidSettings)
	}
	if !isFinite(f.DescentInterval) || f.DescentInterval < 0 || !isFinite(f.DescentStep) || f.DescentStep < 0 {
		return fmt.Errorf("%w: bad descent settings", ErrInvalidSettings)
	}
	return nil
}

// startingAliens returns the explicit alien list or lays out the grid,
// horizontally centred, top row first and left to right within a row.
func (s Settings) startingAliens() []GameObject {
	if len(s.Aliens) > 0 {
		out := make([]GameObject, len(s.Aliens))
		copy(out, s.Aliens)
		return out
	}

	f := s.Formation
	if f.Columns == 0 || f.Rows == 0 {
		return nil
	}
	stride := f.AlienSize.Add(f.Gap)
	width := float64(f.Columns)*stride.X - f.Gap.X
	left := (s.Playfield.X - width) / 2

	out := make([]GameObject, 0, f.Columns*f.Rows)
	for r := range f.Rows {
		y := f.Top - f.AlienSize.Y - float64(r)*stride.Y
		for c := range f.Columns {
			out = append(out, GameObject{
				Position: Vec(left+float64(c)*stride.X, y),
				Size:     f.AlienSize,
			})
		}
	}
	return out
}
