// Package invaders adapts the invaders simulation to the registry.Game
// interface: it turns platform actions into session commands, steps the
// session at the fixed tick rate and draws it into a character screen.
package invaders

import (
	"errors"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	sim "github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/session"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeSingle  GameMode = iota // One wave, the game ends when it is cleared
	ModeEndless                 // A new, faster wave follows every cleared one
)

// Minimum terminal size for a playable field.
const (
	minScreenW = 30
	minScreenH = 12
)

// Game implements registry.Game on top of a session table.
type Game struct {
	mode GameMode

	table  *session.Table
	handle session.Handle
	err    error // set when a wave could not be started

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager

	// Game state
	status    sim.Status
	paused    bool
	wave      int
	banked    int // score from cleared waves
	score     int
	tickCount int

	// Input latch: terminals report key presses, not key holds.
	moveDir  float64
	moveHold int
	cooldown int

	screenTooSmall bool
}

// New creates a single-wave game.
func New() *Game {
	return &Game{mode: ModeSingle}
}

// NewEndless creates an endless-waves game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "invaders_endless"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Space Invaders (Endless)"
	}
	return "Space Invaders"
}

// Reset loads the configuration and starts the first wave.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.Resize(runtime)

	if g.table == nil {
		g.table = session.NewTable(logger)
	}
	g.release()

	g.status = sim.StatusRunning
	g.paused = false
	g.wave = 0
	g.banked = 0
	g.score = 0
	g.tickCount = 0
	g.moveDir = 0
	g.moveHold = 0
	g.cooldown = 0

	g.startWave()
}

// Resize adopts a new screen size. The world rescales to any size, so the
// running wave is kept.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// startWave creates a fresh session scaled to the current difficulty.
func (g *Game) startWave() {
	g.release()
	g.wave++

	s := g.cfg.Settings()
	s.Formation.Speed = g.difficulty.Speed(s.Formation.Speed, g.score, g.tickCount)
	s.Formation.DescentInterval = g.difficulty.DescentInterval(s.Formation.DescentInterval, g.score, g.tickCount)

	h, err := g.table.Create(s)
	if err != nil {
		g.err = err
		return
	}
	g.handle = h
	g.err = nil

	// The handle is fresh, so registration cannot fail.
	_ = g.table.OnShoot(h, func() { sounds.PlayShoot() })
	_ = g.table.OnKill(h, func() { sounds.PlayKill() })

	if playerName != "" {
		if err := g.table.SetPlayerName(h, playerName); errors.Is(err, sim.ErrNameTooLong) {
			logger.Warn("player name too long, keeping configured name",
				"name", playerName, "max", s.MaxNameLength)
		}
	}

	logger.Debug("wave started", "game", g.ID(), "wave", g.wave,
		"speed", s.Formation.Speed, "descent", s.Formation.DescentInterval)
}

// release destroys the current session, if any.
func (g *Game) release() {
	if g.handle == "" {
		return
	}
	_ = g.table.Destroy(g.handle)
	g.handle = ""
}

// Close releases the session. The game can be Reset again afterwards.
func (g *Game) Close() {
	if g.table != nil {
		g.release()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.err != nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.over() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}

	if g.paused || g.over() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.TickSeconds()

	g.updatePlayer(in, dt)
	g.updateFire(in)

	_ = g.table.Update(g.handle, dt)
	g.refresh()

	if g.status == sim.StatusWon && g.mode == ModeEndless {
		g.banked = g.score
		g.startWave()
		g.status = sim.StatusRunning
	}

	return core.StepResult{State: g.State()}
}

// updatePlayer keeps the ship moving for a few ticks after each key press.
func (g *Game) updatePlayer(in core.InputFrame, dt float64) {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		g.moveDir, g.moveHold = -1, g.cfg.Gameplay.MoveHoldTicks
	case right && !left:
		g.moveDir, g.moveHold = 1, g.cfg.Gameplay.MoveHoldTicks
	}

	if g.moveHold <= 0 {
		return
	}
	g.moveHold--
	_ = g.table.MovePlayer(g.handle, sim.Vec(g.moveDir, 0), dt)
}

// updateFire launches a shot from the top centre of the ship.
func (g *Game) updateFire(in core.InputFrame) {
	if g.cooldown > 0 {
		g.cooldown--
	}
	if !in.Has(core.ActionFire) || g.cooldown > 0 {
		return
	}

	p, err := g.table.Player(g.handle)
	if err != nil {
		return
	}
	pos := sim.Vec(p.Center().X-g.cfg.Projectile.Width/2, p.Max().Y)
	err = g.table.SpawnProjectile(g.handle, pos)
	switch {
	case err == nil:
		g.cooldown = g.cfg.Gameplay.FireCooldown
	case errors.Is(err, sim.ErrCapacityExceeded):
		// Too many shots in flight: the press is dropped.
	default:
		logger.Warn("spawn projectile", "error", err)
	}
}

// refresh pulls status and score from the session.
func (g *Game) refresh() {
	if status, err := g.table.Status(g.handle); err == nil {
		g.status = status
	}
	if st, err := g.table.Stats(g.handle); err == nil {
		g.score = g.banked + st.AliensKilled*g.cfg.Gameplay.PointsPerAlien
	}
}

func (g *Game) over() bool {
	return g.status.Ended()
}

// Wave returns the 1-based wave number.
func (g *Game) Wave() int {
	return g.wave
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.over() || g.err != nil,
		Won:      g.status == sim.StatusWon,
		Paused:   g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_endless", func() registry.Game {
		return NewEndless()
	})
}
