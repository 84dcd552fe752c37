package invaders

import (
	"fmt"
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusRunning Status = iota
	StatusWon            // every alien destroyed
	StatusLost           // player destroyed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Ended reports whether the session has finished.
func (s Status) Ended() bool {
	return s != StatusRunning
}

// Stats are running totals for a session.
type Stats struct {
	AliensKilled int
	ShotsFired   int
	Elapsed      float64 // simulated seconds
}

// Callback is a zero-argument event notification.
type Callback func()

// Manager owns the state of one game session.
type Manager struct {
	settings    Settings
	player      *Player
	aliens      Container[*Alien]
	projectiles Container[*Projectile]
	formation   formation

	onShoot Callback
	onKill  Callback

	status Status
	stats  Stats
}

// New creates a session with the starting formation, no projectiles, the
// player at its spawn point and no callbacks registered.
func New(s Settings) (*Manager, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		settings:  s,
		player:    newPlayer(s),
		formation: newFormation(s.Formation),
	}
	for _, box := range s.startingAliens() {
		m.aliens.Append(&Alien{GameObject: box})
	}
	return m, nil
}

// Settings returns the settings the session was created with.
func (m *Manager) Settings() Settings {
	return m.settings
}

// Update advances the simulation by dt seconds: projectiles move, the
// formation moves, collisions are resolved, destroyed entities are removed
// and the kill callback fires once per alien destroyed plus once if the
// player was destroyed. Non-finite or negative dt counts as zero. Update does
// nothing once the session has ended.
func (m *Manager) Update(dt float64) {
	if m.status.Ended() {
		return
	}
	if !isFinite(dt) || dt < 0 {
		dt = 0
	}
	m.stats.Elapsed += dt

	m.advanceProjectiles(dt)
	m.formation.advance(&m.aliens, dt, m.settings.Playfield.X)

	res := collide(&m.aliens, &m.projectiles, m.player.Bounds())
	m.aliens.Compact()
	m.projectiles.Compact()
	m.stats.AliensKilled += res.aliensKilled

	switch {
	case res.playerDestroyed:
		m.status = StatusLost
	case m.aliens.Len() == 0:
		m.status = StatusWon
	}

	for range res.aliensKilled {
		m.notify(m.onKill)
	}
	if res.playerDestroyed {
		m.notify(m.onKill)
	}
}

// advanceProjectiles moves shots and retires those that left the playfield.
func (m *Manager) advanceProjectiles(dt float64) {
	top := m.settings.Playfield.Y
	for p := range m.projectiles.Live() {
		p.translate(p.Velocity.Scale(dt))
		if p.Position.Y >= top {
			p.destroy()
		}
	}
}

// Objects returns a copy of the live entities of the given kind in
// container order. Unknown kinds yield nil.
func (m *Manager) Objects(kind ObjectKind) []GameObject {
	switch kind {
	case KindAlien:
		return m.aliens.Snapshot()
	case KindProjectile:
		return m.projectiles.Snapshot()
	default:
		return nil
	}
}

// Player returns a copy of the player's box.
func (m *Manager) Player() GameObject {
	return m.player.Bounds()
}

// PlayerName returns the player's display name.
func (m *Manager) PlayerName() string {
	return m.player.Name()
}

// SetPlayerName renames the player. Names longer than the configured bound
// are rejected with ErrNameTooLong and the old name is kept.
func (m *Manager) SetPlayerName(name string) error {
	return m.player.Rename(name)
}

// MovePlayer moves the ship horizontally, clamped to the playfield.
func (m *Manager) MovePlayer(direction Vector2, dt float64) error {
	if m.status.Ended() {
		return ErrSessionEnded
	}
	m.player.Move(direction, dt, m.settings.Playfield.X)
	return nil
}

// SpawnProjectile launches a shot whose box starts at position and fires the
// shoot callback. With MaxProjectiles shots already in flight it returns
// ErrCapacityExceeded and changes nothing.
func (m *Manager) SpawnProjectile(position Vector2) error {
	if m.status.Ended() {
		return ErrSessionEnded
	}
	if !position.finite() {
		return fmt.Errorf("invaders: spawn position %+v is not finite", position)
	}
	if n := m.projectiles.Len(); n >= m.settings.MaxProjectiles {
		return fmt.Errorf("%w: %d of %d in flight", ErrCapacityExceeded, n, m.settings.MaxProjectiles)
	}

	m.projectiles.Append(&Projectile{
		GameObject: GameObject{Position: position, Size: m.settings.Projectile.Size},
		Velocity:   Vec(0, m.settings.Projectile.Speed),
	})
	m.stats.ShotsFired++
	m.notify(m.onShoot)
	return nil
}

// SetShootCallback registers the shoot notification, replacing any previous
// one. A nil fn clears it.
func (m *Manager) SetShootCallback(fn Callback) {
	m.onShoot = fn
}

// SetKillCallback registers the kill notification, replacing any previous
// one. A nil fn clears it.
func (m *Manager) SetKillCallback(fn Callback) {
	m.onKill = fn
}

// Status returns the lifecycle state.
func (m *Manager) Status() Status {
	return m.status
}

// Stats returns the running totals.
func (m *Manager) Stats() Stats {
	return m.stats
}

func (m *Manager) notify(fn Callback) {
	if fn != nil {
		fn()
	}
}
