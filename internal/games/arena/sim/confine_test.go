package sim_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/ball-arena/internal/games/arena/sim"
)

func TestNewPlayfieldRejectsMissingDimensions(t *testing.T) {
	for _, dims := range [][2]float64{{0, 600}, {800, 0}, {-1, 10}, {0, 0}} {
		if _, err := sim.NewPlayfield(dims[0], dims[1]); !errors.Is(err, sim.ErrPlayfieldUnavailable) {
			t.Errorf("NewPlayfield(%v, %v) err = %v, expected ErrPlayfieldUnavailable", dims[0], dims[1], err)
		}
	}
}

func TestPlayfieldBounds(t *testing.T) {
	b := refPlayfield(t).Bounds(32)
	want := sim.Bounds{MinX: -368, MaxX: 368, MinY: -268, MaxY: 268}
	if b != want {
		t.Errorf("Bounds(32) = %+v, expected %+v", b, want)
	}
}

func TestConfineSafetyAndIdempotence(t *testing.T) {
	pf := refPlayfield(t)
	radii := []float64{1, 32, 100, 300}
	coords := []float64{-1e6, -401, -400, -368, -10, 0, 10, 368, 369, 400, 1e6}

	for _, r := range radii {
		b := pf.Bounds(r)
		for _, x := range coords {
			for _, y := range coords {
				in := sim.V(x, y)
				once := sim.Confine(pf, in, r)
				if once.X < b.MinX || once.X > b.MaxX || once.Y < b.MinY || once.Y > b.MaxY {
					t.Fatalf("Confine(%v, r=%v) = %v escapes %+v", in, r, once, b)
				}
				if twice := sim.Confine(pf, once, r); twice != once {
					t.Fatalf("Confine not idempotent for %v r=%v: %v then %v", in, r, once, twice)
				}
				if b.Contains(in) && once != in {
					t.Fatalf("Confine moved in-range point %v to %v", in, once)
				}
			}
		}
	}
}

func TestConfineAxesIndependent(t *testing.T) {
	pf := refPlayfield(t)
	got := sim.Confine(pf, sim.V(1000, 12.5), 32)
	if got != sim.V(368, 12.5) {
		t.Errorf("clamping x should leave y alone, got %v", got)
	}
	got = sim.Confine(pf, sim.V(-7, -1000), 32)
	if got != sim.V(-7, -268) {
		t.Errorf("clamping y should leave x alone, got %v", got)
	}
}

func TestConfinePlayerAndEnemies(t *testing.T) {
	s := sim.NewStore(refPlayfield(t))
	if err := s.SpawnPlayer(sim.V(-900, 900), ball(32, 500)); err != nil {
		t.Fatal(err)
	}
	s.SpawnEnemy(sim.V(900, -900), sim.V(1, 0), ball(32, 200))

	sim.ConfinePlayer(s)
	sim.ConfineEnemies(s)

	p, _ := s.Player()
	if p.Pos.Vec2 != sim.V(-368, 268) {
		t.Errorf("player confined to %v, expected (-368, 268)", p.Pos.Vec2)
	}
	pos, _ := enemyByID(t, s, 0)
	if pos != sim.V(368, -268) {
		t.Errorf("enemy confined to %v, expected (368, -268)", pos)
	}
}

func TestConfinePlayerAbsentIsNoop(t *testing.T) {
	s := sim.NewStore(refPlayfield(t))
	sim.ConfinePlayer(s) // must not panic
	if s.HasPlayer() {
		t.Error("confinement must not create a player")
	}
}
