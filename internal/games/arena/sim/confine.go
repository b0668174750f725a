package sim

// Confine clamps a center so a circle of the given radius stays inside the playfield.
// Idempotent; the axes are independent.
func Confine(pf Playfield, pos Vec2, radius float64) Vec2 {
	return pf.Bounds(radius).Clamp(pos)
}

// ConfinePlayer clamps the player, if present.
func ConfinePlayer(s *Store) {
	p, ok := s.Player()
	if !ok {
		return
	}
	p.Pos.Vec2 = Confine(s.Playfield(), p.Pos.Vec2, p.Body.Radius)
}

// ConfineEnemies clamps every enemy.
func ConfineEnemies(s *Store) {
	pf := s.Playfield()
	s.EachEnemy(func(e EnemyActor) bool {
		e.Pos.Vec2 = Confine(pf, e.Pos.Vec2, e.Body.Radius)
		return true
	})
}
