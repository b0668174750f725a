package arena

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/ball-arena/internal/config"
	"github.com/vovakirdan/ball-arena/internal/core"
	"github.com/vovakirdan/ball-arena/internal/games/arena/sim"
	"github.com/vovakirdan/ball-arena/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// withEnemies swaps the package config for the duration of a test.
func withEnemies(t *testing.T, n int) {
	t.Helper()
	prev := activeConfig
	cfg := config.DefaultArenaConfig()
	cfg.Enemies.Count = n
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(prev) })
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"arena", "arena_classic"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestResetSizesPlayfield(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntime(1)); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	pf := g.session.Store().Playfield()
	if pf.Width != 800 || pf.Height != 460 {
		t.Errorf("playfield = %gx%g, expected 800x460", pf.Width, pf.Height)
	}
	state := g.State()
	if state.GameOver || state.Paused || state.Tick != 0 {
		t.Errorf("fresh state = %+v", state)
	}
	if state.Enemies != 20 {
		t.Errorf("Enemies = %d, expected 20", state.Enemies)
	}
}

func TestClassicEnemyCount(t *testing.T) {
	g := NewClassic()
	if err := g.Reset(testRuntime(1)); err != nil {
		t.Fatal(err)
	}
	if g.State().Enemies != ClassicEnemyCount {
		t.Errorf("Enemies = %d, expected %d", g.State().Enemies, ClassicEnemyCount)
	}
}

func TestResetErrors(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want error
	}{
		{"no width", 0, 24, sim.ErrPlayfieldUnavailable},
		{"only HUD row", 80, 1, sim.ErrPlayfieldUnavailable},
		{"negative", -5, -5, sim.ErrPlayfieldUnavailable},
		{"narrower than a ball", 5, 24, sim.ErrPlayfieldTooSmall},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			err := g.Reset(core.RuntimeConfig{ScreenW: tc.w, ScreenH: tc.h, TickRate: 60})
			if !errors.Is(err, tc.want) {
				t.Errorf("Reset err = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestFailedResetKeepsSession(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntime(1)); err != nil {
		t.Fatal(err)
	}
	before := g.session

	if err := g.Reset(core.RuntimeConfig{ScreenW: 0, ScreenH: 0}); err == nil {
		t.Fatal("expected error")
	}
	if g.session != before {
		t.Error("failed reset should keep the running session")
	}
}

func TestStepWithoutSession(t *testing.T) {
	g := New()
	res := g.Step(core.NewInputFrame(), 0.016)
	if res.State.GameOver || len(res.Events) != 0 {
		t.Errorf("unexpected result without session: %+v", res)
	}
}

func TestStepMovesPlayer(t *testing.T) {
	withEnemies(t, 0)
	g := New()
	if err := g.Reset(testRuntime(1)); err != nil {
		t.Fatal(err)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionUp)
	g.Step(in, 0.1)

	p, ok := g.session.Store().Player()
	if !ok {
		t.Fatal("player missing")
	}
	// Diagonal is normalized: 500 * 0.1 / sqrt(2) on each axis.
	want := 50 / 1.4142135623730951
	if d := p.Pos.X - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("x = %v, expected %v", p.Pos.X, want)
	}
	if p.Pos.Y <= 0 {
		t.Errorf("up should increase y, got %v", p.Pos.Y)
	}
}

func TestPauseToggle(t *testing.T) {
	withEnemies(t, 0)
	g := New()
	_ = g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, 0.1)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right, 0.1)
	p, _ := g.session.Store().Player()
	if p.Pos.X != 0 {
		t.Errorf("player moved while paused: x=%v", p.Pos.X)
	}
	if g.State().Tick != 0 {
		t.Errorf("ticks advanced while paused: %d", g.State().Tick)
	}

	g.Step(pause, 0.1)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestEliminationEvent(t *testing.T) {
	withEnemies(t, 0)
	g := New()
	_ = g.Reset(testRuntime(1))
	g.session.Store().SpawnEnemy(sim.V(10, 0), sim.V(1, 0), sim.Body{Radius: 32, Speed: 200})

	res := g.Step(core.NewInputFrame(), 0)
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventEliminated {
		t.Fatalf("events = %+v", res.Events)
	}
	if res.Events[0].Entity != 0 {
		t.Errorf("eliminating enemy = %d, expected 0", res.Events[0].Entity)
	}

	// Enemies keep bouncing after elimination.
	bounced := false
	for range 400 {
		for _, ev := range g.Step(core.NewInputFrame(), 1.0/30).Events {
			if ev.Kind == core.EventEliminated {
				t.Fatal("second elimination event")
			}
			bounced = bounced || ev.Kind == core.EventBounce
		}
	}
	if !bounced {
		t.Error("expected the enemy to bounce after game over")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() []sim.Sprite {
		g := New()
		if err := g.Reset(testRuntime(12345)); err != nil {
			t.Fatal(err)
		}
		for i := range 300 {
			in := core.NewInputFrame()
			if i%40 < 20 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionDown)
			}
			g.Step(in, 1.0/60)
		}
		return g.session.Store().Sprites()
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("sprite counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("sprite %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRenderBalls(t *testing.T) {
	withEnemies(t, 0)
	g := New()
	_ = g.Reset(testRuntime(1))
	g.session.Store().SpawnEnemy(sim.V(200, 0), sim.V(1, 0), sim.Body{Radius: 32, Speed: 200})

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// Origin is the middle of the 80x23 playfield.
	if cell := scr.GetCell(40, 11); cell.Rune != BallChar || cell.Color != PlayerColor {
		t.Errorf("player cell = %+v", cell)
	}
	if cell := scr.GetCell(60, 11); cell.Rune != BallChar || cell.Color != EnemyColor {
		t.Errorf("enemy cell = %+v", cell)
	}
	if cell := scr.GetCell(0, 0); cell.Rune == BallChar {
		t.Error("corner should be empty")
	}

	hud := scr.Row(23)
	if !strings.Contains(hud, "enemies: 1") {
		t.Errorf("HUD = %q", hud)
	}
}

func TestRenderBallShape(t *testing.T) {
	withEnemies(t, 0)
	g := New()
	_ = g.Reset(testRuntime(1))

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// r=32 with 10x20 cells: about 6 columns wide and 3 rows tall.
	width := 0
	for x := range 80 {
		if scr.Get(x, 11) == BallChar {
			width++
		}
	}
	height := 0
	for y := range 23 {
		if scr.Get(40, y) == BallChar {
			height++
		}
	}
	if width != 6 {
		t.Errorf("ball width = %d cells, expected 6", width)
	}
	if height != 3 {
		t.Errorf("ball height = %d cells, expected 3", height)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	withEnemies(t, 0)
	g := New()
	_ = g.Reset(testRuntime(1))
	g.session.Store().SpawnEnemy(sim.V(0, 0), sim.V(1, 0), sim.Body{Radius: 32, Speed: 200})
	g.Step(core.NewInputFrame(), 0)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("expected game over overlay")
	}
	if !strings.Contains(scr.Row(23), "eliminated") {
		t.Errorf("HUD = %q", scr.Row(23))
	}
}

func TestRenderWithoutSession(t *testing.T) {
	scr := core.NewScreen(40, 10)
	New().Render(scr)
	if !strings.Contains(scr.String(), "No playfield") {
		t.Error("expected placeholder text")
	}
}
