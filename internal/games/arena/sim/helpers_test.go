package sim_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/ball-arena/internal/games/arena/sim"
)

const eps = 1e-9

// scripted replays a fixed list of draws, cycling when exhausted.
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func refPlayfield(t *testing.T) sim.Playfield {
	t.Helper()
	pf, err := sim.NewPlayfield(800, 600)
	if err != nil {
		t.Fatalf("NewPlayfield: %v", err)
	}
	return pf
}

func ball(radius, speed float64) sim.Body {
	return sim.Body{Radius: radius, Speed: speed}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b sim.Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

// enemyByID returns a copy of one enemy's state.
func enemyByID(t *testing.T, s *sim.Store, id int) (pos, dir sim.Vec2) {
	t.Helper()
	found := false
	s.EachEnemy(func(e sim.EnemyActor) bool {
		if e.ID != id {
			return true
		}
		pos, dir, found = e.Pos.Vec2, e.Dir.Vec2, true
		return false
	})
	if !found {
		t.Fatalf("enemy %d not found", id)
	}
	return pos, dir
}
