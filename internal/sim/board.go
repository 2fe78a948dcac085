package sim

import "github.com/vovakirdan/destroyer/internal/core"

// Board is the arena of one level.
type Board struct {
	Size      core.FRect
	Level     int
	Obstacles []*Entity // Reserved for level content
	Items     []*Entity // Every entity on the board, in render order
}

// NewBoard creates an empty board.
func NewBoard(level int, size core.FRect) *Board {
	return &Board{
		Size:      size,
		Level:     level,
		Obstacles: []*Entity{},
		Items:     []*Entity{},
	}
}

// Add appends an entity to the board.
func (b *Board) Add(e *Entity) {
	b.Items = append(b.Items, e)
}
