package sim

// MovePlayer advances the player along the summed input intent.
// A non-zero intent is renormalized first, so diagonals are no faster than axes.
// Does nothing when the player is absent or the intent is zero.
func MovePlayer(s *Store, intent Vec2, dt float64) {
	p, ok := s.Player()
	if !ok {
		return
	}
	dir, ok := intent.Normalize()
	if !ok {
		return
	}
	p.Pos.Vec2 = p.Pos.Add(dir.Scale(p.Body.Speed * dt))
}

// MoveEnemies advances every enemy along its stored direction.
func MoveEnemies(s *Store, dt float64) {
	s.EachEnemy(func(e EnemyActor) bool {
		e.Pos.Vec2 = e.Pos.Add(e.Dir.Scale(e.Body.Speed * dt))
		return true
	})
}

// IntentFromAxis turns summed direction inputs into an intent vector.
func IntentFromAxis(x, y int) Vec2 {
	return Vec2{X: float64(x), Y: float64(y)}
}
