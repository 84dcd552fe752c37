package invaders

import "errors"

var (
	// ErrNameTooLong is returned by SetPlayerName when the name exceeds
	// Settings.MaxNameLength code points. The previous name is kept.
	ErrNameTooLong = errors.New("invaders: player name too long")

	// ErrCapacityExceeded is returned by SpawnProjectile when
	// Settings.MaxProjectiles shots are already in flight.
	ErrCapacityExceeded = errors.New("invaders: projectile capacity exceeded")

	// ErrSessionEnded is returned by commands issued after the session was
	// won or lost.
	ErrSessionEnded = errors.New("invaders: session has ended")

	// ErrInvalidSettings is returned by New for unusable settings.
	ErrInvalidSettings = errors.New("invaders: invalid settings")
)
