package sim

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/destroyer/internal/core"
)

// Game owns the board, the roster of players and the result of the last tick.
// Players are shared with Board.Items once a level has started.
type Game struct {
	board      *Board
	players    []*Entity
	collisions []Collision
	nextID     EntityID
	index      map[EntityID]*Entity
	ticks      int // Ticks since the current level started

	rules  Rules
	rng    *rand.Rand
	logger *log.Logger
}

// Option configures a Game at construction.
type Option func(*Game)

// WithSeed seeds the game's random source.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes the game draw from r.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithRules overrides the default tuning.
func WithRules(r Rules) Option {
	return func(g *Game) {
		g.rules = r
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGame creates a game with no players and an empty, zero-sized board.
// Call StartLevel after adding players.
func NewGame(opts ...Option) *Game {
	g := &Game{
		board:  NewBoard(0, core.FRect{}),
		index:  make(map[EntityID]*Entity),
		rules:  DefaultRules(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(0))
	}
	return g
}

// Board returns the current board.
func (g *Game) Board() *Board {
	return g.board
}

// Players returns the roster in creation order.
func (g *Game) Players() []*Entity {
	return g.players
}

// Collisions returns the collisions detected by the last tick.
func (g *Game) Collisions() []Collision {
	return g.collisions
}

// Ticks returns how many ticks ran since the current level started.
func (g *Game) Ticks() int {
	return g.ticks
}

// Rules returns the tuning the game was built with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Entity looks up a live entity by id.
func (g *Game) Entity(id EntityID) (*Entity, bool) {
	e, ok := g.index[id]
	return e, ok
}

// MustEntity looks up a live entity and panics if it does not exist.
func (g *Game) MustEntity(id EntityID) *Entity {
	e, ok := g.index[id]
	if !ok {
		panic(fmt.Sprintf("sim: no entity with id %d", id))
	}
	return e
}

func (g *Game) allocID() EntityID {
	id := g.nextID
	g.nextID++
	return id
}

// AddPlayer creates a player and appends it to the roster. It joins the
// board when the next level starts.
func (g *Game) AddPlayer(name string) *Entity {
	p := &Entity{
		ID:       g.allocID(),
		Kind:     KindPlayer,
		Status:   StatusAlive,
		Name:     name,
		Geometry: cloneGeometry(g.rules.PlayerGeometry),
	}
	g.players = append(g.players, p)
	g.index[p.ID] = p

	g.logger.Debug("player added", "id", p.ID, "name", name)
	return p
}

// AddObstacle places a stationary entity on the current board. Obstacles
// belong to the board and are discarded by the next StartLevel.
func (g *Game) AddObstacle(center core.Point, geometry []core.Point) *Entity {
	o := NewObstacle(g.allocID(), center, geometry)
	g.board.Obstacles = append(g.board.Obstacles, o)
	g.board.Add(o)
	g.index[o.ID] = o

	g.logger.Debug("obstacle added", "id", o.ID, "x", center.X, "y", center.Y)
	return o
}

// ShootProjectile fires a projectile from origin's center along its rotation
// and places it on the board immediately.
func (g *Game) ShootProjectile(origin *Entity) *Entity {
	if origin == nil || !origin.Motile() {
		panic("sim: projectile origin must be a motile entity")
	}

	rot := origin.Rotation
	speed := g.rules.MuzzleFactor * g.rules.ProjectileSpeed
	vy := math.Sin(rot)
	if g.rules.Compat.ProjectileCosBothAxes {
		vy = math.Cos(rot)
	}

	p := &Entity{
		ID:       g.allocID(),
		Kind:     KindProjectile,
		Status:   StatusAlive,
		Center:   origin.Center,
		Rotation: rot,
		Geometry: cloneGeometry(g.rules.ProjectileGeometry),
		Velocity: core.Vector{
			X: math.Cos(rot) * speed,
			Y: vy * speed,
		},
	}
	g.board.Add(p)
	g.index[p.ID] = p

	g.logger.Debug("projectile shot", "id", p.ID, "origin", origin.ID, "vx", p.Velocity.X, "vy", p.Velocity.Y)
	return p
}

// StartLevel replaces the board with a fresh one, puts every player on it and
// gives each a random position and velocity. Entities of the previous board
// other than players are discarded.
func (g *Game) StartLevel(level int) *Board {
	g.board = NewBoard(level, g.rules.BoardSize)
	g.collisions = nil
	g.ticks = 0

	g.index = make(map[EntityID]*Entity, len(g.players))
	size := g.board.Size
	maxVY := size.Height()
	if g.rules.Compat.VelocityFromWidthOnly {
		maxVY = size.Width()
	}
	for _, p := range g.players {
		g.board.Add(p)
		g.index[p.ID] = p
		p.Center = randomPoint(g.rng, size)
		p.Velocity = randomVector(g.rng, size.Width(), maxVY)
	}

	g.logger.Debug("level started", "level", level, "players", len(g.players))
	return g.board
}

// RunOne advances the simulation by one tick of timer.Elapsed() seconds.
func (g *Game) RunOne(t Timer) {
	g.Step(t.Elapsed())
}

// Step advances the simulation by elapsed seconds.
//
// Bounding boxes are refreshed before physics moves the entities, so the
// collision pass sees the positions the tick started with.
func (g *Game) Step(elapsed float64) {
	c := g.rules.Compat
	items := g.board.Items

	for _, e := range items {
		e.UpdateBoundingBox(c)
	}
	for _, e := range items {
		e.UpdatePhysics(elapsed, g.board, c)
	}

	g.collisions = DetectCollisions(g.board)
	for _, col := range g.collisions {
		g.logger.Debug("collision", "a", col.A.ID, "b", col.B.ID)
	}

	g.reap()
	g.ticks++
}

// reap drops dead entities from the board in two passes so the sequence is
// never mutated while it is being scanned.
func (g *Game) reap() {
	var dead map[EntityID]struct{}
	for _, e := range g.board.Items {
		if e.Status == StatusDead {
			if dead == nil {
				dead = make(map[EntityID]struct{})
			}
			dead[e.ID] = struct{}{}
		}
	}
	if len(dead) == 0 {
		return
	}

	kept := make([]*Entity, 0, len(g.board.Items)-len(dead))
	for _, e := range g.board.Items {
		if _, ok := dead[e.ID]; ok {
			delete(g.index, e.ID)
			g.logger.Debug("entity reaped", "id", e.ID, "kind", e.Kind)
			continue
		}
		kept = append(kept, e)
	}
	g.board.Items = kept
}

func randomPoint(r *rand.Rand, bounds core.FRect) core.Point {
	return core.Point{
		X: r.Float64()*bounds.Width() + bounds.TopLeft.X,
		Y: r.Float64()*bounds.Height() + bounds.TopLeft.Y,
	}
}

func randomVector(r *rand.Rand, maxX, maxY float64) core.Vector {
	return core.Vector{
		X: r.Float64() * maxX,
		Y: r.Float64() * maxY,
	}
}
