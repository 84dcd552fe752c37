package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
// It mirrors defaults/invaders.yaml and is used when that fails to parse.
func DefaultInvadersConfig() InvadersConfig {
	s := invaders.DefaultSettings()
	return InvadersConfig{
		Playfield: PlayfieldConfig{
			Width:  s.Playfield.X,
			Height: s.Playfield.Y,
		},
		Player: PlayerConfig{
			Width:  s.Player.Size.X,
			Height: s.Player.Size.Y,
			Y:      s.Player.Y,
			Speed:  s.Player.Speed,
			Name:   s.Player.Name,
		},
		Projectile: ProjectileConfig{
			Width:       s.Projectile.Size.X,
			Height:      s.Projectile.Size.Y,
			Speed:       s.Projectile.Speed,
			MaxInFlight: s.MaxProjectiles,
		},
		Formation: FormationConfig{
			Columns:         s.Formation.Columns,
			Rows:            s.Formation.Rows,
			AlienWidth:      s.Formation.AlienSize.X,
			AlienHeight:     s.Formation.AlienSize.Y,
			GapX:            s.Formation.Gap.X,
			GapY:            s.Formation.Gap.Y,
			Top:             s.Formation.Top,
			Speed:           s.Formation.Speed,
			DescentInterval: s.Formation.DescentInterval,
			DescentStep:     s.Formation.DescentStep,
		},
		Gameplay: GameplayConfig{
			PointsPerAlien: 10,
			MaxNameLength:  s.MaxNameLength,
			MoveHoldTicks:  8,
			FireCooldown:   15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.5,
				DescentReduction: 0.5,
			},
		},
	}
}

// Settings converts the configuration into session settings for the
// simulation core.
func (c InvadersConfig) Settings() invaders.Settings {
	return invaders.Settings{
		Playfield: invaders.Vec(c.Playfield.Width, c.Playfield.Height),
		Player: invaders.PlayerSettings{
			Size:  invaders.Vec(c.Player.Width, c.Player.Height),
			Y:     c.Player.Y,
			Speed: c.Player.Speed,
			Name:  c.Player.Name,
		},
		Projectile: invaders.ProjectileSettings{
			Size:  invaders.Vec(c.Projectile.Width, c.Projectile.Height),
			Speed: c.Projectile.Speed,
		},
		Formation: invaders.FormationSettings{
			Columns:         c.Formation.Columns,
			Rows:            c.Formation.Rows,
			AlienSize:       invaders.Vec(c.Formation.AlienWidth, c.Formation.AlienHeight),
			Gap:             invaders.Vec(c.Formation.GapX, c.Formation.GapY),
			Top:             c.Formation.Top,
			Speed:           c.Formation.Speed,
			DescentInterval: c.Formation.DescentInterval,
			DescentStep:     c.Formation.DescentStep,
		},
		MaxProjectiles: c.Projectile.MaxInFlight,
		MaxNameLength:  c.Gameplay.MaxNameLength,
	}
}
