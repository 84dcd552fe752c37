package invaders

// collisionResult summarizes one collision pass.
type collisionResult struct {
	aliensKilled    int
	playerDestroyed bool
}

// collide runs the overlap tests for one tick and marks destroyed entities.
// Nothing is removed here; the caller compacts the containers afterwards.
//
// Each projectile destroys at most one alien, the first overlapping one in
// container order. The player is destroyed by touching an alien, which dies
// with it, or by any alien reaching the top of the ship.
func collide(aliens *Container[*Alien], projectiles *Container[*Projectile], player GameObject) collisionResult {
	var res collisionResult

	for p := range projectiles.Live() {
		for a := range aliens.Live() {
			if p.Overlaps(a.GameObject) {
				p.destroy()
				a.destroy()
				res.aliensKilled++
				break
			}
		}
	}

	invasionLine := player.Max().Y
	for a := range aliens.Live() {
		switch {
		case a.Overlaps(player):
			a.destroy()
			res.aliensKilled++
			res.playerDestroyed = true
		case a.Position.Y <= invasionLine:
			res.playerDestroyed = true
		}
	}

	return res
}
