package sim

import (
	"errors"
	"fmt"
	"math/rand"
)

// maxDirectionDraws bounds re-sampling of degenerate enemy directions.
const maxDirectionDraws = 8

// fallbackDirection is used when every draw was too short to normalize.
var fallbackDirection = Vec2{X: 1}

// ErrInvalidSpawn is returned for spawn settings that cannot produce a session.
var ErrInvalidSpawn = errors.New("invalid spawn config")

// Source yields uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded pseudorandom Source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Uniform draws a float in [lo, hi) from src.
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// SpawnConfig holds the fixed values of one session.
type SpawnConfig struct {
	PlayerStart    Vec2
	Player         Body
	Enemy          Body
	EnemyCount     int
	DirectionRange float64 // Direction components are drawn from [-r, r)
}

// Validate checks values the spawner cannot work with.
func (c SpawnConfig) Validate() error {
	switch {
	case c.Player.Radius <= 0 || c.Enemy.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive", ErrInvalidSpawn)
	case c.Player.Speed < 0 || c.Enemy.Speed < 0:
		return fmt.Errorf("%w: speed must not be negative", ErrInvalidSpawn)
	case c.EnemyCount < 0:
		return fmt.Errorf("%w: enemy count must not be negative", ErrInvalidSpawn)
	case c.DirectionRange <= 0:
		return fmt.Errorf("%w: direction range must be positive", ErrInvalidSpawn)
	}
	return nil
}

// Spawn builds a populated store: the player at PlayerStart and EnemyCount
// enemies at uniform positions over the whole playfield.
//
// Per enemy, src is read in this order: x, y, then direction x, y (repeated
// while the direction draw is degenerate).
func Spawn(pf Playfield, cfg SpawnConfig, src Source) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !pf.Fits(cfg.Player.Radius) || !pf.Fits(cfg.Enemy.Radius) {
		return nil, fmt.Errorf("%w: %gx%g", ErrPlayfieldTooSmall, pf.Width, pf.Height)
	}

	s := NewStore(pf)
	if err := s.SpawnPlayer(cfg.PlayerStart, cfg.Player); err != nil {
		return nil, err
	}

	hw, hh := pf.Width/2, pf.Height/2
	for range cfg.EnemyCount {
		pos := Vec2{X: Uniform(src, -hw, hw), Y: Uniform(src, -hh, hh)}
		s.SpawnEnemy(pos, sampleDirection(src, cfg.DirectionRange), cfg.Enemy)
	}
	return s, nil
}

// sampleDirection draws a unit vector from two uniform components.
// Zero-length draws are re-sampled; after maxDirectionDraws it falls back to +X.
func sampleDirection(src Source, spread float64) Vec2 {
	for range maxDirectionDraws {
		d := Vec2{X: Uniform(src, -spread, spread), Y: Uniform(src, -spread, spread)}
		if n, ok := d.Normalize(); ok {
			return n
		}
	}
	return fallbackDirection
}
