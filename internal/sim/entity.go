// Package sim implements the destroyer simulation core: entities on a bounded
// board, per-tick physics integration, bounding-box maintenance and pairwise
// collision detection. It is single-threaded and deterministic for a given
// seed and elapsed-time sequence; callers own the goroutine that drives it.
package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/destroyer/internal/core"
)

// EntityID identifies an entity within one Game. IDs are assigned in creation
// order and never reused.
type EntityID int

// Kind is the variant tag of an Entity.
type Kind uint8

const (
	KindObstacle   Kind = iota // Stationary, never moves
	KindPlayer                 // Motile, wraps at the board edges
	KindProjectile             // Motile, dies when it leaves the board
)

// String returns the variant name used by renderers.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "Obstacle"
	case KindPlayer:
		return "Player"
	case KindProjectile:
		return "Projectile"
	default:
		return "Unknown"
	}
}

// Motile reports whether entities of this kind carry a velocity.
func (k Kind) Motile() bool {
	return k == KindPlayer || k == KindProjectile
}

// Status is the lifecycle state of an entity.
type Status int

const (
	StatusImmobile Status = 1
	StatusAlive    Status = 2
	StatusDead     Status = 3
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusImmobile:
		return "Immobile"
	case StatusAlive:
		return "Alive"
	case StatusDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Entity is a board object. The Kind selects which of the payload fields are
// meaningful: Velocity and Rotation for motile kinds, Name for players.
type Entity struct {
	ID          EntityID
	Kind        Kind
	Status      Status
	Center      core.Point
	Geometry    []core.Point // Vertices relative to Center, fixed at creation
	BoundingBox core.FRect   // Derived from Center + Geometry by UpdateBoundingBox

	Velocity core.Vector
	Rotation float64 // Radians
	Name     string
}

// NewObstacle creates a stationary entity with a caller-chosen id. It does
// not touch any Game's id counter, so an entity meant for a Game's board
// should come from Game.AddObstacle instead.
func NewObstacle(id EntityID, center core.Point, geometry []core.Point) *Entity {
	return &Entity{
		ID:       id,
		Kind:     KindObstacle,
		Status:   StatusImmobile,
		Center:   center,
		Geometry: cloneGeometry(geometry),
	}
}

// Motile reports whether the entity can move on its own.
func (e *Entity) Motile() bool {
	return e.Kind.Motile()
}

// UpdateBoundingBox recomputes BoundingBox as the componentwise min/max of
// every vertex offset by Center. An entity without geometry gets a zero-area
// box at its center.
func (e *Entity) UpdateBoundingBox(c Compat) {
	if len(e.Geometry) == 0 {
		e.BoundingBox = core.FRect{TopLeft: e.Center, BottomRight: e.Center}
		return
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, v := range e.Geometry {
		p := e.Center.Add(v)
		y := p.Y
		if c.BBoxYFromX {
			y = p.X
		}
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	e.BoundingBox = core.NewFRect(minX, minY, maxX, maxY)
}

// String implements fmt.Stringer for debug output.
func (e *Entity) String() string {
	return fmt.Sprintf("%s#%d", e.Kind, e.ID)
}

func cloneGeometry(g []core.Point) []core.Point {
	if g == nil {
		return nil
	}
	out := make([]core.Point, len(g))
	copy(out, g)
	return out
}
