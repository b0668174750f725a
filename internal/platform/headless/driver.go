// Package headless runs an arena session without a terminal, at a fixed
// frame length, with scripted input. The simulate command uses it for
// reproducible runs and logs.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/ball-arena/internal/core"
	"github.com/vovakirdan/ball-arena/internal/registry"
)

// ErrUnknownScript is returned for an input script name that does not exist.
var ErrUnknownScript = errors.New("unknown input script")

// Input script names
const (
	ScriptIdle   = "idle"   // Player never moves
	ScriptWander = "wander" // Player picks a random heading every few frames
)

// wanderEvery is how many frames the wander script keeps one heading.
const wanderEvery = 30

// Options configures a headless run.
type Options struct {
	Ticks      int     // Frames to run
	DT         float64 // Seconds per frame
	Script     string
	InputSeed  int64
	StopOnOver bool // Stop at elimination instead of running all frames
	Logger     *log.Logger
}

// Summary describes a finished run.
type Summary struct {
	SessionID    string
	Ticks        int
	Bounces      int
	Eliminated   bool
	EliminatedAt uint64 // Tick of the elimination
	EliminatedBy int    // Enemy that touched the player
}

// Run resets game with cfg and steps it opts.Ticks times.
// It returns early with ctx.Err() when ctx is cancelled.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, opts Options) (Summary, error) {
	next, err := newScript(opts.Script, opts.InputSeed)
	if err != nil {
		return Summary{}, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := game.Reset(cfg); err != nil {
		return Summary{}, fmt.Errorf("start session: %w", err)
	}

	sum := Summary{SessionID: uuid.NewString()}
	logger.Info("session started",
		"session", sum.SessionID,
		"game", game.ID(),
		"seed", cfg.Seed,
		"enemies", game.State().Enemies,
		"script", opts.Script,
	)

	for i := 0; i < opts.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		res := game.Step(next(i), opts.DT)
		sum.Ticks++

		for _, ev := range res.Events {
			switch ev.Kind {
			case core.EventBounce:
				sum.Bounces++
				logger.Debug("enemy bounced", "session", sum.SessionID, "tick", res.State.Tick, "enemy", ev.Entity)
			case core.EventEliminated:
				sum.Eliminated = true
				sum.EliminatedAt = res.State.Tick
				sum.EliminatedBy = ev.Entity
				logger.Info("player eliminated", "session", sum.SessionID, "tick", res.State.Tick,
					"enemy", ev.Entity, "x", ev.X, "y", ev.Y)
			}
		}

		if sum.Eliminated && opts.StopOnOver {
			break
		}
	}

	logger.Info("session finished",
		"session", sum.SessionID,
		"ticks", sum.Ticks,
		"bounces", sum.Bounces,
		"eliminated", sum.Eliminated,
	)
	return sum, nil
}

// newScript returns the input frame generator for a script name.
func newScript(name string, seed int64) (func(frame int) core.InputFrame, error) {
	switch name {
	case "", ScriptIdle:
		return func(int) core.InputFrame { return core.NewInputFrame() }, nil

	case ScriptWander:
		rng := rand.New(rand.NewSource(seed))
		var heading core.InputFrame
		return func(frame int) core.InputFrame {
			if frame%wanderEvery == 0 {
				heading = randomHeading(rng)
			}
			return heading.Clone()
		}, nil

	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownScript, name, ScriptIdle, ScriptWander)
	}
}

// randomHeading holds zero, one or two perpendicular directions.
func randomHeading(rng *rand.Rand) core.InputFrame {
	in := core.NewInputFrame()
	switch rng.Intn(3) {
	case 1:
		in.Set(core.ActionLeft)
	case 2:
		in.Set(core.ActionRight)
	}
	switch rng.Intn(3) {
	case 1:
		in.Set(core.ActionDown)
	case 2:
		in.Set(core.ActionUp)
	}
	return in
}
