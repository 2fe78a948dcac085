package sim

import (
	"fmt"

	"github.com/vovakirdan/destroyer/internal/core"
)

// UpdatePhysics advances the entity by elapsed seconds on board b.
//
//	Obstacle:   no-op
//	Player:     integrate velocity, wrap around the board edges
//	Projectile: integrate velocity, become Dead once outside the board
func (e *Entity) UpdatePhysics(elapsed float64, b *Board, c Compat) {
	switch e.Kind {
	case KindObstacle:
		return
	case KindPlayer:
		e.Center = wrapPlayer(e.Center.Move(e.Velocity, elapsed), b.Size, c)
	case KindProjectile:
		next := e.Center.Move(e.Velocity, elapsed)
		if outside(next, b.Size) {
			e.Status = StatusDead
		}
		e.Center = next
	default:
		panic(fmt.Sprintf("sim: unknown entity kind %d", e.Kind))
	}
}

// wrapPlayer folds a position that left the board back onto the opposite edge.
// Bounds are measured by width and height from the origin.
func wrapPlayer(p core.Point, size core.FRect, c Compat) core.Point {
	w, h := size.Width(), size.Height()

	if p.X > w {
		p.X -= w
	}
	if p.Y > h {
		p.Y -= h
	}

	if c.PlayerLegacyWrap {
		if p.X < 0 {
			p.X = w - p.X
		}
		if p.Y < 0 {
			p.X = w - p.Y
		}
		return p
	}

	if p.X < 0 {
		p.X += w
	}
	if p.Y < 0 {
		p.Y += h
	}
	return p
}

func outside(p core.Point, size core.FRect) bool {
	return p.X > size.Width() || p.Y > size.Height() || p.X < 0 || p.Y < 0
}
