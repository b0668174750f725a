package sim

// Overlaps reports whether two circles intersect.
// Touching circles (distance exactly ra+rb) do not overlap.
func Overlaps(a Vec2, ra float64, b Vec2, rb float64) bool {
	reach := ra + rb
	return a.DistSq(b) < reach*reach
}

// DetectCollision tests the player against every enemy. On the first overlap
// it removes the player and returns the elimination event. With no player
// present it reports nothing.
func DetectCollision(s *Store) (Event, bool) {
	p, ok := s.Player()
	if !ok {
		return Event{}, false
	}

	var (
		hit   Event
		found bool
	)
	s.EachEnemy(func(e EnemyActor) bool {
		if !Overlaps(p.Pos.Vec2, p.Body.Radius, e.Pos.Vec2, e.Body.Radius) {
			return true
		}
		hit = Event{Kind: EventPlayerEliminated, Enemy: e.ID, Position: p.Pos.Vec2}
		found = true
		return false
	})
	if !found {
		return Event{}, false
	}

	s.DespawnPlayer()
	return hit, true
}
