package invaders

// Entity is anything a Container can hold.
type Entity interface {
	Bounds() GameObject
	Alive() bool
}

// Alien is one member of the invading formation.
type Alien struct {
	GameObject
	dead bool
}

// Bounds returns the alien's box.
func (a *Alien) Bounds() GameObject { return a.GameObject }

// Alive reports whether the alien has not been destroyed.
func (a *Alien) Alive() bool { return !a.dead }

func (a *Alien) destroy() { a.dead = true }

// Projectile is a player shot travelling up the playfield.
type Projectile struct {
	GameObject
	Velocity Vector2
	dead     bool
}

// Bounds returns the projectile's box.
func (p *Projectile) Bounds() GameObject { return p.GameObject }

// Alive reports whether the projectile is still in flight.
func (p *Projectile) Alive() bool { return !p.dead }

func (p *Projectile) destroy() { p.dead = true }

// ObjectKind selects one of the manager's containers.
type ObjectKind int

const (
	KindAlien ObjectKind = iota
	KindProjectile
)

// String returns the kind name.
func (k ObjectKind) String() string {
	switch k {
	case KindAlien:
		return "alien"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}
