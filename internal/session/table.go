// Package session exposes game sessions through opaque handles.
//
// A Table maps handles to invaders.Manager instances so a host can hold a
// session without a Go pointer to it. Every operation validates its handle;
// unknown or destroyed handles yield ErrInvalidHandle and an error log line.
// The table lock guards the handle map only: calls into one session must
// still come from a single goroutine.
package session

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// ErrInvalidHandle is returned for handles that were never created or were
// already destroyed.
var ErrInvalidHandle = errors.New("session: invalid handle")

// Handle identifies one session in a Table.
type Handle string

// String returns the handle value.
func (h Handle) String() string {
	return string(h)
}

// Table tracks live sessions.
type Table struct {
	mu       sync.RWMutex
	sessions map[Handle]*invaders.Manager
	logger   *log.Logger
}

// NewTable creates an empty table. A nil logger discards output.
func NewTable(logger *log.Logger) *Table {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Table{
		sessions: make(map[Handle]*invaders.Manager),
		logger:   logger,
	}
}

// Create starts a session with the given settings and returns its handle.
func (t *Table) Create(s invaders.Settings) (Handle, error) {
	m, err := invaders.New(s)
	if err != nil {
		t.logger.Error("create session", "error", err)
		return "", fmt.Errorf("session: create: %w", err)
	}

	h := Handle(uuid.NewString())

	t.mu.Lock()
	t.sessions[h] = m
	n := len(t.sessions)
	t.mu.Unlock()

	t.logger.Debug("session created", "handle", h, "aliens", len(m.Objects(invaders.KindAlien)), "live", n)
	return h, nil
}

// Destroy releases a session. A handle can be destroyed once.
func (t *Table) Destroy(h Handle) error {
	t.mu.Lock()
	m, ok := t.sessions[h]
	delete(t.sessions, h)
	t.mu.Unlock()

	if !ok {
		return t.invalid("destroy", h)
	}
	// Drop callbacks so host closures are not retained by a stale manager.
	m.SetShootCallback(nil)
	m.SetKillCallback(nil)
	t.logger.Debug("session destroyed", "handle", h, "status", m.Status())
	return nil
}

// Len returns the number of live sessions.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sessions)
}

// Update advances the session by dt seconds.
func (t *Table) Update(h Handle, dt float64) error {
	m, err := t.lookup("update", h)
	if err != nil {
		return err
	}
	before := m.Status()
	m.Update(dt)
	if after := m.Status(); after != before {
		st := m.Stats()
		t.logger.Info("session ended", "handle", h, "status", after, "kills", st.AliensKilled, "shots", st.ShotsFired)
	}
	return nil
}

// Objects returns a snapshot of the live entities of the given kind.
func (t *Table) Objects(h Handle, kind invaders.ObjectKind) ([]invaders.GameObject, error) {
	m, err := t.lookup("objects", h)
	if err != nil {
		return nil, err
	}
	return m.Objects(kind), nil
}

// Player returns the player's box.
func (t *Table) Player(h Handle) (invaders.GameObject, error) {
	m, err := t.lookup("player", h)
	if err != nil {
		return invaders.GameObject{}, err
	}
	return m.Player(), nil
}

// PlayerName returns the player's display name.
func (t *Table) PlayerName(h Handle) (string, error) {
	m, err := t.lookup("player name", h)
	if err != nil {
		return "", err
	}
	return m.PlayerName(), nil
}

// SetPlayerName renames the player.
func (t *Table) SetPlayerName(h Handle, name string) error {
	m, err := t.lookup("set player name", h)
	if err != nil {
		return err
	}
	if err := m.SetPlayerName(name); err != nil {
		t.logger.Warn("rename rejected", "handle", h, "error", err)
		return err
	}
	return nil
}

// MovePlayer moves the player horizontally.
func (t *Table) MovePlayer(h Handle, direction invaders.Vector2, dt float64) error {
	m, err := t.lookup("move player", h)
	if err != nil {
		return err
	}
	return m.MovePlayer(direction, dt)
}

// SpawnProjectile launches a shot at position.
func (t *Table) SpawnProjectile(h Handle, position invaders.Vector2) error {
	m, err := t.lookup("spawn projectile", h)
	if err != nil {
		return err
	}
	return m.SpawnProjectile(position)
}

// OnShoot registers the shoot callback. A nil fn clears it.
func (t *Table) OnShoot(h Handle, fn func()) error {
	m, err := t.lookup("on shoot", h)
	if err != nil {
		return err
	}
	m.SetShootCallback(fn)
	return nil
}

// OnKill registers the kill callback. A nil fn clears it.
func (t *Table) OnKill(h Handle, fn func()) error {
	m, err := t.lookup("on kill", h)
	if err != nil {
		return err
	}
	m.SetKillCallback(fn)
	return nil
}

// Status returns the session lifecycle state.
func (t *Table) Status(h Handle) (invaders.Status, error) {
	m, err := t.lookup("status", h)
	if err != nil {
		return invaders.StatusRunning, err
	}
	return m.Status(), nil
}

// Stats returns the session totals.
func (t *Table) Stats(h Handle) (invaders.Stats, error) {
	m, err := t.lookup("stats", h)
	if err != nil {
		return invaders.Stats{}, err
	}
	return m.Stats(), nil
}

func (t *Table) lookup(op string, h Handle) (*invaders.Manager, error) {
	t.mu.RLock()
	m, ok := t.sessions[h]
	t.mu.RUnlock()
	if !ok {
		return nil, t.invalid(op, h)
	}
	return m, nil
}

func (t *Table) invalid(op string, h Handle) error {
	t.logger.Error("invalid session handle", "op", op, "handle", h)
	return fmt.Errorf("%w: %s %q", ErrInvalidHandle, op, h)
}
