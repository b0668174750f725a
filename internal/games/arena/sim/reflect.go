package sim

// ReflectEnemies negates each direction axis on which an enemy's unclamped
// position left its allowed range. It runs after MoveEnemies and before
// ConfineEnemies, so each axis flips at most once per tick. One bounce event
// is returned per enemy that reflected on either axis.
func ReflectEnemies(s *Store) []Event {
	var events []Event
	pf := s.Playfield()
	s.EachEnemy(func(e EnemyActor) bool {
		b := pf.Bounds(e.Body.Radius)
		flipX := b.OutsideX(e.Pos.X)
		flipY := b.OutsideY(e.Pos.Y)
		if flipX {
			e.Dir.X = -e.Dir.X
		}
		if flipY {
			e.Dir.Y = -e.Dir.Y
		}
		if flipX || flipY {
			events = append(events, Event{
				Kind:     EventBounced,
				Enemy:    e.ID,
				Position: e.Pos.Vec2,
				FlipX:    flipX,
				FlipY:    flipY,
			})
		}
		return true
	})
	return events
}
