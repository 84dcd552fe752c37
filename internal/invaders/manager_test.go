package invaders

import (
	"errors"
	"math"
	"testing"

	"pgregory.net/rapid"
)

// sandbox returns settings with a still formation made of the given aliens
// and the player parked at the bottom left, well below them.
func sandbox(aliens ...GameObject) Settings {
	s := DefaultSettings()
	s.Playfield = Vec(200, 200)
	s.Player.Y = 0
	s.Player.Size = Vec(4, 2)
	s.Formation.Speed = 0
	s.Formation.DescentInterval = 0
	s.Aliens = aliens
	return s
}

func box(x, y, w, h float64) GameObject {
	return GameObject{Position: Vec(x, y), Size: Vec(w, h)}
}

func mustNew(t *testing.T, s Settings) *Manager {
	t.Helper()
	m, err := New(s)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return m
}

func TestNewDefaultSession(t *testing.T) {
	s := DefaultSettings()
	m := mustNew(t, s)

	aliens := m.Objects(KindAlien)
	if len(aliens) != s.Formation.Columns*s.Formation.Rows {
		t.Errorf("alien count = %d, expected %d", len(aliens), s.Formation.Columns*s.Formation.Rows)
	}
	if n := len(m.Objects(KindProjectile)); n != 0 {
		t.Errorf("projectile count = %d, expected 0", n)
	}
	if m.PlayerName() != s.Player.Name {
		t.Errorf("PlayerName() = %q, expected %q", m.PlayerName(), s.Player.Name)
	}
	if m.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected running", m.Status())
	}
	if p := m.Player(); p.Size.X < 0 || p.Size.Y < 0 {
		t.Errorf("player has negative size %+v", p.Size)
	}

	for i, a := range aliens {
		if a.Size.X < 0 || a.Size.Y < 0 {
			t.Errorf("alien %d has negative size %+v", i, a.Size)
		}
		if a.Position.X < 0 || a.Max().X > s.Playfield.X {
			t.Errorf("alien %d outside the playfield: %+v", i, a)
		}
	}

	// Top row first, left to right.
	if aliens[0].Position.Y <= aliens[len(aliens)-1].Position.Y {
		t.Error("first alien should be in the top row")
	}
	if aliens[0].Position.X >= aliens[1].Position.X {
		t.Error("aliens within a row should be ordered left to right")
	}
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"zero playfield", func(s *Settings) { s.Playfield = Vec(0, 100) }},
		{"nan playfield", func(s *Settings) { s.Playfield.Y = math.NaN() }},
		{"negative player size", func(s *Settings) { s.Player.Size.X = -1 }},
		{"player wider than playfield", func(s *Settings) { s.Player.Size.X = s.Playfield.X + 1 }},
		{"negative projectile size", func(s *Settings) { s.Projectile.Size.Y = -1 }},
		{"no projectile capacity", func(s *Settings) { s.MaxProjectiles = 0 }},
		{"default name too long", func(s *Settings) { s.MaxNameLength = 2 }},
		{"negative alien size", func(s *Settings) { s.Aliens = []GameObject{box(0, 0, -1, 1)} }},
		{"negative formation rows", func(s *Settings) { s.Formation.Rows = -1 }},
		{"negative descent", func(s *Settings) { s.Formation.DescentStep = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.modify(&s)
			if _, err := New(s); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("New() error = %v, expected ErrInvalidSettings", err)
			}
		})
	}
}

func TestNewCopiesExplicitAliens(t *testing.T) {
	aliens := []GameObject{box(10, 100, 5, 5)}
	m := mustNew(t, sandbox(aliens...))

	aliens[0].Position.X = 99
	if got := m.Objects(KindAlien)[0].Position.X; got != 10 {
		t.Errorf("alien X = %v, settings slice must not alias the container", got)
	}
}

func TestProjectileHitsAlien(t *testing.T) {
	s := sandbox(box(10, 10, 5, 5))
	s.Player.Size = Vec(1, 1)
	s.Projectile.Size = Vec(1, 1)
	s.Projectile.Speed = 0
	m := mustNew(t, s)

	kills := 0
	m.SetKillCallback(func() { kills++ })

	if err := m.SpawnProjectile(Vec(10, 10)); err != nil {
		t.Fatalf("SpawnProjectile() error: %v", err)
	}
	m.Update(0.01)

	if n := len(m.Objects(KindAlien)); n != 0 {
		t.Errorf("alien count = %d, expected 0", n)
	}
	if n := len(m.Objects(KindProjectile)); n != 0 {
		t.Errorf("projectile count = %d, expected 0", n)
	}
	if kills != 1 {
		t.Errorf("kill callback fired %d times, expected 1", kills)
	}
	if m.Status() != StatusWon {
		t.Errorf("Status() = %v, expected won", m.Status())
	}
	if st := m.Stats(); st.AliensKilled != 1 || st.ShotsFired != 1 {
		t.Errorf("Stats() = %+v, expected 1 kill and 1 shot", st)
	}
}

func TestProjectileKillsOnlyFirstOverlap(t *testing.T) {
	// Two stacked aliens under one projectile; a third keeps the session running.
	s := sandbox(box(50, 50, 10, 10), box(52, 52, 10, 10), box(150, 150, 5, 5))
	s.Projectile.Speed = 0
	m := mustNew(t, s)

	kills := 0
	m.SetKillCallback(func() { kills++ })

	if err := m.SpawnProjectile(Vec(55, 55)); err != nil {
		t.Fatalf("SpawnProjectile() error: %v", err)
	}
	m.Update(0)

	aliens := m.Objects(KindAlien)
	if len(aliens) != 2 {
		t.Fatalf("alien count = %d, expected 2", len(aliens))
	}
	if aliens[0].Position != Vec(52, 52) || aliens[1].Position != Vec(150, 150) {
		t.Errorf("survivors = %+v, expected the second and third aliens in order", aliens)
	}
	if kills != 1 {
		t.Errorf("kill callback fired %d times, expected 1", kills)
	}
}

func TestKillCallbackPerAlien(t *testing.T) {
	s := sandbox(box(10, 100, 5, 5), box(40, 100, 5, 5), box(150, 150, 5, 5))
	s.Projectile.Speed = 0
	m := mustNew(t, s)

	kills := 0
	m.SetKillCallback(func() { kills++ })

	for _, pos := range []Vector2{Vec(11, 101), Vec(41, 101)} {
		if err := m.SpawnProjectile(pos); err != nil {
			t.Fatalf("SpawnProjectile(%+v) error: %v", pos, err)
		}
	}
	m.Update(0.016)

	if kills != 2 {
		t.Errorf("kill callback fired %d times, expected 2", kills)
	}
	if n := len(m.Objects(KindAlien)); n != 1 {
		t.Errorf("alien count = %d, expected 1", n)
	}
	if m.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected running", m.Status())
	}
}

func TestSpawnProjectileFiresShootOnce(t *testing.T) {
	m := mustNew(t, sandbox(box(150, 150, 5, 5)))

	shots := 0
	m.SetShootCallback(func() {
		shots++
		// Synchronous: the projectile is already visible to the callback.
		if n := len(m.Objects(KindProjectile)); n != 1 {
			t.Errorf("projectiles inside callback = %d, expected 1", n)
		}
	})

	if err := m.SpawnProjectile(Vec(20, 5)); err != nil {
		t.Fatalf("SpawnProjectile() error: %v", err)
	}

	if shots != 1 {
		t.Errorf("shoot callback fired %d times, expected 1", shots)
	}
	got := m.Objects(KindProjectile)
	if len(got) != 1 || got[0].Position != Vec(20, 5) {
		t.Errorf("projectiles = %+v, expected one at (20, 5)", got)
	}
	if got[0].Size != m.Settings().Projectile.Size {
		t.Errorf("projectile size = %+v, expected %+v", got[0].Size, m.Settings().Projectile.Size)
	}
}

func TestSpawnProjectileCapacity(t *testing.T) {
	s := sandbox(box(150, 150, 5, 5))
	s.MaxProjectiles = 2
	m := mustNew(t, s)

	shots := 0
	m.SetShootCallback(func() { shots++ })

	for i := range 2 {
		if err := m.SpawnProjectile(Vec(float64(i*10), 5)); err != nil {
			t.Fatalf("SpawnProjectile() #%d error: %v", i, err)
		}
	}

	err := m.SpawnProjectile(Vec(50, 5))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("third SpawnProjectile() error = %v, expected ErrCapacityExceeded", err)
	}
	if n := len(m.Objects(KindProjectile)); n != 2 {
		t.Errorf("projectile count = %d, expected 2", n)
	}
	if shots != 2 {
		t.Errorf("shoot callback fired %d times, expected 2", shots)
	}
}

func TestSpawnProjectileRejectsNonFinite(t *testing.T) {
	m := mustNew(t, sandbox(box(150, 150, 5, 5)))
	if err := m.SpawnProjectile(Vec(math.Inf(1), 0)); err == nil {
		t.Error("SpawnProjectile() with infinite position should fail")
	}
	if n := len(m.Objects(KindProjectile)); n != 0 {
		t.Errorf("projectile count = %d, expected 0", n)
	}
}

func TestProjectileLeavesPlayfield(t *testing.T) {
	s := sandbox(box(150, 150, 5, 5))
	s.Projectile.Speed = 100
	m := mustNew(t, s)

	if err := m.SpawnProjectile(Vec(10, 150)); err != nil {
		t.Fatalf("SpawnProjectile() error: %v", err)
	}
	m.Update(0.25)
	if got := m.Objects(KindProjectile); len(got) != 1 || got[0].Position.Y != 175 {
		t.Fatalf("projectiles = %+v, expected one at y=175", got)
	}

	m.Update(0.25)
	if n := len(m.Objects(KindProjectile)); n != 0 {
		t.Errorf("projectile count = %d after leaving the playfield, expected 0", n)
	}
}

func TestReplacingCallbacks(t *testing.T) {
	m := mustNew(t, sandbox(box(150, 150, 5, 5)))

	first, second := 0, 0
	m.SetShootCallback(func() { first++ })
	m.SetShootCallback(func() { second++ })
	_ = m.SpawnProjectile(Vec(0, 5))

	if first != 0 || second != 1 {
		t.Errorf("first=%d second=%d, expected only the latest callback", first, second)
	}

	m.SetShootCallback(nil)
	if err := m.SpawnProjectile(Vec(10, 5)); err != nil {
		t.Errorf("SpawnProjectile() with no callback error: %v", err)
	}
}

func TestSetPlayerNameTooLong(t *testing.T) {
	s := sandbox(box(150, 150, 5, 5))
	s.MaxNameLength = 8
	m := mustNew(t, s)

	if err := m.SetPlayerName("Ripley"); err != nil {
		t.Fatalf("SetPlayerName() error: %v", err)
	}
	if err := m.SetPlayerName("Dallas-and-Kane"); !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("SetPlayerName() error = %v, expected ErrNameTooLong", err)
	}
	if m.PlayerName() != "Ripley" {
		t.Errorf("PlayerName() = %q, expected the previous name", m.PlayerName())
	}
}

func TestMovePlayerThroughManager(t *testing.T) {
	m := mustNew(t, sandbox(box(150, 150, 5, 5)))
	start := m.Player().Position

	if err := m.MovePlayer(Vec(1, 5), 0.1); err != nil {
		t.Fatalf("MovePlayer() error: %v", err)
	}
	got := m.Player().Position
	want := Vec(start.X+m.Settings().Player.Speed*0.1, start.Y)
	if math.Abs(got.X-want.X) > 1e-9 || got.Y != want.Y {
		t.Errorf("player at %+v, expected %+v", got, want)
	}
}

func TestPlayerAlienCollisionLosesSession(t *testing.T) {
	s := sandbox(box(0, 0, 200, 1), box(150, 150, 5, 5))
	m := mustNew(t, s)

	kills := 0
	m.SetKillCallback(func() { kills++ })
	m.Update(0.016)

	if m.Status() != StatusLost {
		t.Fatalf("Status() = %v, expected lost", m.Status())
	}
	// One for the alien, one for the ship.
	if kills != 2 {
		t.Errorf("kill callback fired %d times, expected 2", kills)
	}
	if n := len(m.Objects(KindAlien)); n != 1 {
		t.Errorf("alien count = %d, expected the colliding alien removed", n)
	}
}

func TestInvasionLineLosesSession(t *testing.T) {
	s := sandbox(box(150, 40, 5, 5))
	s.Formation.DescentInterval = 1
	s.Formation.DescentStep = 38
	m := mustNew(t, s)

	m.Update(0.5)
	if m.Status() != StatusRunning {
		t.Fatalf("Status() = %v before the descent, expected running", m.Status())
	}

	// 40 - 38 = 2, level with the top of the 2-unit tall ship.
	m.Update(0.5)
	if m.Status() != StatusLost {
		t.Errorf("Status() = %v, expected lost", m.Status())
	}
}

func TestEndedSessionIsFrozen(t *testing.T) {
	s := sandbox(box(10, 100, 5, 5))
	s.Projectile.Speed = 0
	m := mustNew(t, s)
	_ = m.SpawnProjectile(Vec(10, 100))
	m.Update(0.01)
	if m.Status() != StatusWon {
		t.Fatalf("Status() = %v, expected won", m.Status())
	}

	before := m.Stats()
	m.Update(1)
	if m.Stats() != before {
		t.Errorf("Update after the end changed stats: %+v -> %+v", before, m.Stats())
	}
	if err := m.SpawnProjectile(Vec(0, 5)); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("SpawnProjectile() error = %v, expected ErrSessionEnded", err)
	}
	if err := m.MovePlayer(Vec(1, 0), 1); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("MovePlayer() error = %v, expected ErrSessionEnded", err)
	}
	if err := m.SetPlayerName("after"); err != nil {
		t.Errorf("SetPlayerName() after the end error: %v", err)
	}
}

func TestUpdateNonFiniteDt(t *testing.T) {
	m := mustNew(t, DefaultSettings())
	before := m.Objects(KindAlien)

	for _, dt := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		m.Update(dt)
	}

	after := m.Objects(KindAlien)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("alien %d moved from %+v to %+v", i, before[i], after[i])
		}
	}
	if m.Stats().Elapsed != 0 {
		t.Errorf("Elapsed = %v, expected 0", m.Stats().Elapsed)
	}
}

func TestUpdateZeroIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m, err := New(DefaultSettings())
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}

		// Reach an arbitrary mid-game state.
		steps := rapid.IntRange(0, 30).Draw(t, "steps")
		for range steps {
			switch rapid.IntRange(0, 2).Draw(t, "command") {
			case 0:
				dir := rapid.Float64Range(-1, 1).Draw(t, "dir")
				_ = m.MovePlayer(Vec(dir, 0), 1.0/60)
			case 1:
				p := m.Player()
				_ = m.SpawnProjectile(Vec(p.Center().X, p.Max().Y))
			case 2:
				m.Update(rapid.Float64Range(0, 0.1).Draw(t, "dt"))
			}
		}

		aliens := m.Objects(KindAlien)
		shots := m.Objects(KindProjectile)
		player := m.Player()
		status := m.Status()

		kills := 0
		m.SetKillCallback(func() { kills++ })
		m.Update(0)

		if !sameObjects(aliens, m.Objects(KindAlien)) {
			t.Fatalf("Update(0) changed aliens")
		}
		if !sameObjects(shots, m.Objects(KindProjectile)) {
			t.Fatalf("Update(0) changed projectiles")
		}
		if m.Player() != player || m.Status() != status || kills != 0 {
			t.Fatalf("Update(0) changed the session: kills=%d status %v -> %v", kills, status, m.Status())
		}
	})
}

func sameObjects(a, b []GameObject) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestObjectsUnknownKind(t *testing.T) {
	m := mustNew(t, DefaultSettings())
	if got := m.Objects(ObjectKind(42)); got != nil {
		t.Errorf("Objects(unknown) = %+v, expected nil", got)
	}
}
