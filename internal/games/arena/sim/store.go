package sim

import (
	"errors"

	"github.com/mlange-42/ark/ecs"
)

// ErrPlayerExists is returned when a second player is spawned into a store.
var ErrPlayerExists = errors.New("player already spawned")

// Position is the center of an entity's bounding circle.
type Position struct{ Vec2 }

// Body holds the per-class size and speed of an entity.
type Body struct {
	Radius float64
	Speed  float64 // World units per second
}

// Heading is an enemy's unit travel direction.
type Heading struct{ Vec2 }

// Enemy tags an autonomously moving entity with its spawn index.
type Enemy struct {
	ID int
}

// Actor is a live view of the player's components.
// The pointers are valid until the store's entity set changes.
type Actor struct {
	Pos  *Position
	Body *Body
}

// EnemyActor is a live view of one enemy's components.
type EnemyActor struct {
	ID   int
	Pos  *Position
	Body *Body
	Dir  *Heading
}

// SpriteKind tells the renderer which class an entity belongs to.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
)

// Sprite is a copied entity state for collaborators that only read.
type Sprite struct {
	Kind   SpriteKind
	ID     int
	Pos    Vec2
	Radius float64
}

// Store holds every live entity of one session.
//
// The player is kept in a single optional slot; enemies are the entities
// carrying Position, Body, Heading and Enemy. Store is not safe for
// concurrent use: the frame driver is its only mutator.
type Store struct {
	world     ecs.World
	playfield Playfield

	playerMap *ecs.Map2[Position, Body]
	enemyMap  *ecs.Map4[Position, Body, Heading, Enemy]
	enemies   *ecs.Filter4[Position, Body, Heading, Enemy]
	positions *ecs.Map[Position]
	bodies    *ecs.Map[Body]

	player     ecs.Entity
	hasPlayer  bool
	enemyCount int
}

// NewStore creates an empty store for the given playfield.
func NewStore(pf Playfield) *Store {
	s := &Store{
		world:     ecs.NewWorld(),
		playfield: pf,
	}
	s.playerMap = ecs.NewMap2[Position, Body](&s.world)
	s.enemyMap = ecs.NewMap4[Position, Body, Heading, Enemy](&s.world)
	s.enemies = ecs.NewFilter4[Position, Body, Heading, Enemy](&s.world)
	s.positions = ecs.NewMap[Position](&s.world)
	s.bodies = ecs.NewMap[Body](&s.world)
	return s
}

// Playfield returns the session rectangle.
func (s *Store) Playfield() Playfield {
	return s.playfield
}

// SpawnPlayer fills the player slot.
func (s *Store) SpawnPlayer(pos Vec2, body Body) error {
	if s.hasPlayer {
		return ErrPlayerExists
	}
	s.player = s.playerMap.NewEntity(&Position{pos}, &body)
	s.hasPlayer = true
	return nil
}

// SpawnEnemy adds an enemy and returns its ID.
// The direction is stored as given; callers pass a unit vector.
func (s *Store) SpawnEnemy(pos, dir Vec2, body Body) int {
	id := s.enemyCount
	s.enemyMap.NewEntity(&Position{pos}, &body, &Heading{dir}, &Enemy{ID: id})
	s.enemyCount++
	return id
}

// Player returns the live player, or false once it has been removed.
func (s *Store) Player() (Actor, bool) {
	if !s.hasPlayer || !s.world.Alive(s.player) {
		return Actor{}, false
	}
	return Actor{
		Pos:  s.positions.Get(s.player),
		Body: s.bodies.Get(s.player),
	}, true
}

// HasPlayer reports whether the player slot is filled.
func (s *Store) HasPlayer() bool {
	return s.hasPlayer
}

// DespawnPlayer removes the player. Returns false if there was none.
func (s *Store) DespawnPlayer() bool {
	if !s.hasPlayer {
		return false
	}
	s.world.RemoveEntity(s.player)
	s.player = ecs.Entity{}
	s.hasPlayer = false
	return true
}

// EnemyCount returns the number of enemies spawned into the store.
func (s *Store) EnemyCount() int {
	return s.enemyCount
}

// EachEnemy calls fn for every enemy until fn returns false.
// fn must not spawn or despawn entities.
func (s *Store) EachEnemy(fn func(e EnemyActor) bool) {
	query := s.enemies.Query()
	for query.Next() {
		pos, body, dir, enemy := query.Get()
		if !fn(EnemyActor{ID: enemy.ID, Pos: pos, Body: body, Dir: dir}) {
			query.Close()
			return
		}
	}
}

// Sprites copies position and radius of every live entity, player first.
func (s *Store) Sprites() []Sprite {
	out := make([]Sprite, 0, s.enemyCount+1)
	if p, ok := s.Player(); ok {
		out = append(out, Sprite{Kind: SpritePlayer, Pos: p.Pos.Vec2, Radius: p.Body.Radius})
	}
	s.EachEnemy(func(e EnemyActor) bool {
		out = append(out, Sprite{Kind: SpriteEnemy, ID: e.ID, Pos: e.Pos.Vec2, Radius: e.Body.Radius})
		return true
	})
	return out
}
