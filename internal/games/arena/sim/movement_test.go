package sim_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/ball-arena/internal/games/arena/sim"
)

func playerStore(t *testing.T, at sim.Vec2) *sim.Store {
	t.Helper()
	s := sim.NewStore(refPlayfield(t))
	if err := s.SpawnPlayer(at, ball(32, 500)); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestMovePlayer(t *testing.T) {
	diag := 500 * 0.1 / math.Sqrt2

	tests := []struct {
		name   string
		intent sim.Vec2
		dt     float64
		want   sim.Vec2
	}{
		{"right", sim.IntentFromAxis(1, 0), 0.1, sim.V(50, 0)},
		{"up", sim.IntentFromAxis(0, 1), 0.1, sim.V(0, 50)},
		{"diagonal capped", sim.IntentFromAxis(-1, 1), 0.1, sim.V(-diag, diag)},
		{"zero intent", sim.IntentFromAxis(0, 0), 0.1, sim.V(0, 0)},
		{"zero dt", sim.IntentFromAxis(1, 1), 0, sim.V(0, 0)},
		{"long intent renormalized", sim.V(0, -7), 0.2, sim.V(0, -100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := playerStore(t, sim.V(0, 0))
			sim.MovePlayer(s, tc.intent, tc.dt)
			p, _ := s.Player()
			if !nearVec(p.Pos.Vec2, tc.want) {
				t.Errorf("position = %v, expected %v", p.Pos.Vec2, tc.want)
			}
		})
	}
}

func TestMovePlayerDiagonalSpeedMatchesAxis(t *testing.T) {
	axis := playerStore(t, sim.V(0, 0))
	diag := playerStore(t, sim.V(0, 0))

	sim.MovePlayer(axis, sim.IntentFromAxis(1, 0), 0.05)
	sim.MovePlayer(diag, sim.IntentFromAxis(1, -1), 0.05)

	a, _ := axis.Player()
	d, _ := diag.Player()
	if !near(a.Pos.Len(), d.Pos.Len()) {
		t.Errorf("diagonal travelled %v, axis travelled %v", d.Pos.Len(), a.Pos.Len())
	}
}

func TestMovePlayerAbsentIsNoop(t *testing.T) {
	s := sim.NewStore(refPlayfield(t))
	sim.MovePlayer(s, sim.IntentFromAxis(1, 0), 1) // must not panic
	if _, ok := s.Player(); ok {
		t.Error("no player should appear")
	}
}

func TestMoveEnemies(t *testing.T) {
	s := sim.NewStore(refPlayfield(t))
	d, _ := sim.V(3, 4).Normalize()
	a := s.SpawnEnemy(sim.V(0, 0), d, ball(32, 200))
	b := s.SpawnEnemy(sim.V(10, 10), sim.V(-1, 0), ball(32, 200))

	sim.MoveEnemies(s, 0.5)

	if pos, _ := enemyByID(t, s, a); !nearVec(pos, sim.V(60, 80)) {
		t.Errorf("enemy a at %v, expected (60, 80)", pos)
	}
	if pos, _ := enemyByID(t, s, b); !nearVec(pos, sim.V(-90, 10)) {
		t.Errorf("enemy b at %v, expected (-90, 10)", pos)
	}

	sim.MoveEnemies(s, 0)
	if pos, _ := enemyByID(t, s, b); !nearVec(pos, sim.V(-90, 10)) {
		t.Errorf("dt=0 moved enemy b to %v", pos)
	}
}
