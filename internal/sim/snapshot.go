package sim

import (
	"math"

	"github.com/vovakirdan/destroyer/internal/core"
)

// ItemSnapshot is a copy of the render-relevant state of one entity.
type ItemSnapshot struct {
	ID          EntityID
	Kind        Kind
	Status      Status
	Name        string
	Center      core.Point
	Rotation    float64
	BoundingBox core.FRect
}

// CollisionSnapshot names the two entities of a collision.
type CollisionSnapshot struct {
	A, B EntityID
}

// Snapshot is a read-only copy of the game state after a tick. Renderers
// consume it instead of touching live entities.
type Snapshot struct {
	Tick       int
	Level      int
	Size       core.FRect
	Items      []ItemSnapshot
	Collisions []CollisionSnapshot
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.ticks,
		Level:      g.board.Level,
		Size:       g.board.Size,
		Items:      make([]ItemSnapshot, 0, len(g.board.Items)),
		Collisions: make([]CollisionSnapshot, 0, len(g.collisions)),
	}
	for _, e := range g.board.Items {
		snap.Items = append(snap.Items, ItemSnapshot{
			ID:          e.ID,
			Kind:        e.Kind,
			Status:      e.Status,
			Name:        e.Name,
			Center:      e.Center,
			Rotation:    e.Rotation,
			BoundingBox: e.BoundingBox,
		})
	}
	for _, c := range g.collisions {
		snap.Collisions = append(snap.Collisions, CollisionSnapshot{A: c.A.ID, B: c.B.ID})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = hashRect(h, snap.Size)

	for _, it := range snap.Items {
		h = h*31 + uint64(it.ID)     //#nosec G115 -- hash computation
		h = h*31 + uint64(it.Kind)   //#nosec G115 -- hash computation
		h = h*31 + uint64(it.Status) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(it.Center.X)
		h = h*31 + math.Float64bits(it.Center.Y)
		h = h*31 + math.Float64bits(it.Rotation)
		h = hashRect(h, it.BoundingBox)
	}

	for _, c := range snap.Collisions {
		h = h*31 + uint64(c.A) //#nosec G115 -- hash computation
		h = h*31 + uint64(c.B) //#nosec G115 -- hash computation
	}

	return h
}

func hashRect(h uint64, r core.FRect) uint64 {
	h = h*31 + math.Float64bits(r.TopLeft.X)
	h = h*31 + math.Float64bits(r.TopLeft.Y)
	h = h*31 + math.Float64bits(r.BottomRight.X)
	h = h*31 + math.Float64bits(r.BottomRight.Y)
	return h
}
