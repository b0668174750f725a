package sim_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/ball-arena/internal/games/arena/sim"
)

func TestStoreSinglePlayerSlot(t *testing.T) {
	s := sim.NewStore(refPlayfield(t))

	if _, ok := s.Player(); ok {
		t.Fatal("empty store should have no player")
	}
	if err := s.SpawnPlayer(sim.V(1, 2), ball(32, 500)); err != nil {
		t.Fatal(err)
	}
	if err := s.SpawnPlayer(sim.V(0, 0), ball(32, 500)); !errors.Is(err, sim.ErrPlayerExists) {
		t.Errorf("second SpawnPlayer err = %v, expected ErrPlayerExists", err)
	}

	p, ok := s.Player()
	if !ok || p.Pos.Vec2 != sim.V(1, 2) || p.Body.Radius != 32 {
		t.Fatalf("Player() = %+v, %v", p, ok)
	}

	if !s.DespawnPlayer() {
		t.Error("DespawnPlayer should report removal")
	}
	if s.DespawnPlayer() {
		t.Error("second DespawnPlayer should report nothing removed")
	}
	if _, ok := s.Player(); ok {
		t.Error("player should be absent after despawn")
	}
}

func TestStoreEnemiesAreNotPlayer(t *testing.T) {
	s := sim.NewStore(refPlayfield(t))
	_ = s.SpawnPlayer(sim.V(0, 0), ball(32, 500))
	s.SpawnEnemy(sim.V(50, 0), sim.V(0, 1), ball(16, 200))
	s.SpawnEnemy(sim.V(-50, 0), sim.V(0, -1), ball(16, 200))

	ids := map[int]bool{}
	s.EachEnemy(func(e sim.EnemyActor) bool {
		ids[e.ID] = true
		return true
	})
	if len(ids) != 2 || !ids[0] || !ids[1] {
		t.Errorf("EachEnemy visited %v, expected enemies 0 and 1 only", ids)
	}
}

func TestStoreEachEnemyStopsEarly(t *testing.T) {
	s := sim.NewStore(refPlayfield(t))
	for i := range 5 {
		s.SpawnEnemy(sim.V(float64(i), 0), sim.V(1, 0), ball(8, 200))
	}

	visits := 0
	s.EachEnemy(func(e sim.EnemyActor) bool {
		visits++
		return visits < 2
	})
	if visits != 2 {
		t.Errorf("visited %d enemies, expected to stop after 2", visits)
	}

	// The store must be usable after an early stop.
	if err := s.SpawnPlayer(sim.V(0, 0), ball(8, 500)); err != nil {
		t.Fatalf("SpawnPlayer after early stop: %v", err)
	}
	s.DespawnPlayer()
}

func TestStoreSprites(t *testing.T) {
	s := sim.NewStore(refPlayfield(t))
	_ = s.SpawnPlayer(sim.V(3, 4), ball(32, 500))
	s.SpawnEnemy(sim.V(-3, -4), sim.V(1, 0), ball(20, 200))

	sprites := s.Sprites()
	if len(sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d", len(sprites))
	}
	if sprites[0].Kind != sim.SpritePlayer || sprites[0].Pos != sim.V(3, 4) || sprites[0].Radius != 32 {
		t.Errorf("player sprite = %+v", sprites[0])
	}
	if sprites[1].Kind != sim.SpriteEnemy || sprites[1].Radius != 20 {
		t.Errorf("enemy sprite = %+v", sprites[1])
	}

	s.DespawnPlayer()
	if got := s.Sprites(); len(got) != 1 || got[0].Kind != sim.SpriteEnemy {
		t.Errorf("after despawn sprites = %+v", got)
	}
}
