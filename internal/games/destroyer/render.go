package destroyer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/destroyer/internal/core"
	"github.com/vovakirdan/destroyer/internal/sim"
)

// Frame layout constants
const (
	minWidthForSidebar = 60 // Below this the item list is hidden
	sidebarWidth       = 26
	itemBlockLines     = 4
	separatorWidth     = 38
)

var banner = []string{
	` ___  ___ ___ _____ ___  _____   _____ ___ `,
	`|   \| __/ __|_   _| _ \/ _ \ \ / / __| _ \`,
	`| |) | _|\__ \ | | |   / (_) \ V /| _||   /`,
	`|___/|___|___/ |_| |_|_\\___/ |_| |___|_|_\`,
}

// HUD carries the values shown in the header that are not part of the sim.
type HUD struct {
	Ticks  int
	Paused bool
}

// RenderFrame draws the full destroyer frame: banner, status line, the board
// scene, the item list and the collisions of the last tick.
func RenderFrame(dst *core.Screen, snap sim.Snapshot, hud HUD) {
	y := 0
	for _, line := range banner {
		dst.DrawTextColored(0, y, line, core.ColorOrange)
		y++
	}
	y++

	status := fmt.Sprintf("Level: %d, Run %d", snap.Level, hud.Ticks)
	if hud.Paused {
		status += "  [PAUSED]"
	}
	dst.DrawTextColored(0, y, status, core.ColorBrightWhite)
	y++
	dst.DrawHLine(0, y, separatorWidth, '=')
	y++

	sidebar := dst.Width() >= minWidthForSidebar
	sceneW := dst.Width()
	if sidebar {
		sceneW -= sidebarWidth + 1
	}

	// Reserve room below the scene for at least a couple of collision lines.
	sceneH := dst.Height() - y - 3
	bottom := y
	if sceneH >= 3 && sceneW >= 3 {
		bottom = drawScene(dst, snap, core.NewRect(0, y, sceneW, sceneH))
	}

	if sidebar {
		drawItems(dst, snap, core.NewRect(sceneW+1, y, sidebarWidth, dst.Height()-y))
	}

	drawCollisions(dst, snap, bottom, sceneW)
}

// drawScene draws the board inside a frame within area and returns the row
// below the frame. The board is scaled down to fit; each entity fills the
// cells its bounding box covers with the first digit of its id.
func drawScene(dst *core.Screen, snap sim.Snapshot, area core.Rect) int {
	boardW, boardH := snap.Size.Width(), snap.Size.Height()
	cols := core.Clamp(area.W-2, 1, max(1, int(math.Ceil(boardW))))
	rows := core.Clamp(area.H-2, 1, max(1, int(math.Ceil(boardH))))

	drawFrame(dst, core.NewRect(area.X, area.Y, cols+2, rows+2))
	if boardW <= 0 || boardH <= 0 {
		return area.Y + rows + 2
	}

	sx := boardW / float64(cols)
	sy := boardH / float64(rows)
	colliding := collidingIDs(snap)

	for _, it := range snap.Items {
		box := it.BoundingBox
		c0, c1, okX := cellSpan(box.TopLeft.X, box.BottomRight.X, snap.Size.TopLeft.X, sx, cols)
		r0, r1, okY := cellSpan(box.TopLeft.Y, box.BottomRight.Y, snap.Size.TopLeft.Y, sy, rows)
		if !okX || !okY {
			continue
		}

		glyph := rune(strconv.Itoa(int(it.ID))[0])
		color := kindColor(it.Kind)
		if _, hit := colliding[it.ID]; hit {
			color = core.ColorRed
		}
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				dst.SetColored(area.X+1+c, area.Y+1+r, glyph, color)
			}
		}
	}

	return area.Y + rows + 2
}

// cellSpan maps the interval [lo, hi] to the inclusive cell range it covers
// on an axis of n cells. ok is false when the interval misses the axis.
func cellSpan(lo, hi, origin, scale float64, n int) (first, last int, ok bool) {
	first = int(math.Floor((lo - origin) / scale))
	last = int(math.Ceil((hi-origin)/scale)) - 1
	if last < first {
		last = first
	}
	if last < 0 || first >= n {
		return 0, 0, false
	}
	return max(first, 0), min(last, n-1), true
}

func drawFrame(dst *core.Screen, r core.Rect) {
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, r.Y, '-', core.ColorGray)
		dst.SetColored(x, r.Bottom()-1, '-', core.ColorGray)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		dst.SetColored(r.X, y, '|', core.ColorGray)
		dst.SetColored(r.Right()-1, y, '|', core.ColorGray)
	}
	for _, p := range [][2]int{{r.X, r.Y}, {r.Right() - 1, r.Y}, {r.X, r.Bottom() - 1}, {r.Right() - 1, r.Bottom() - 1}} {
		dst.SetColored(p[0], p[1], '+', core.ColorGray)
	}
}

// drawItems lists every entity with its position and bounding box.
func drawItems(dst *core.Screen, snap sim.Snapshot, area core.Rect) {
	y := area.Y
	for i, it := range snap.Items {
		if y+itemBlockLines > area.Bottom() {
			dst.DrawTextColored(area.X, y, fmt.Sprintf("... %d more", len(snap.Items)-i), core.ColorGray)
			return
		}
		bb := it.BoundingBox
		dst.DrawTextColored(area.X, y, fmt.Sprintf("Item: %d [%s]", it.ID, it.Kind), kindColor(it.Kind))
		dst.DrawText(area.X, y+1, fmt.Sprintf("Pos: %.1f %.1f", it.Center.X, it.Center.Y))
		dst.DrawText(area.X, y+2, fmt.Sprintf("BB:  %.1f %.1f - %.1f %.1f", bb.TopLeft.X, bb.TopLeft.Y, bb.BottomRight.X, bb.BottomRight.Y))
		dst.DrawTextColored(area.X, y+3, "------------------------", core.ColorGray)
		y += itemBlockLines
	}
}

// drawCollisions lists the collisions of the last tick starting at row y.
func drawCollisions(dst *core.Screen, snap sim.Snapshot, y, width int) {
	for i, c := range snap.Collisions {
		if y >= dst.Height() {
			return
		}
		if y == dst.Height()-1 && i < len(snap.Collisions)-1 {
			dst.DrawTextColored(0, y, fmt.Sprintf("... %d more collisions", len(snap.Collisions)-i), core.ColorGray)
			return
		}
		line := fmt.Sprintf("Collision %d %d", c.A, c.B)
		if len(line) > width {
			line = line[:width]
		}
		dst.DrawTextColored(0, y, line, core.ColorRed)
		y++
	}
}

func collidingIDs(snap sim.Snapshot) map[sim.EntityID]struct{} {
	ids := make(map[sim.EntityID]struct{}, len(snap.Collisions)*2)
	for _, c := range snap.Collisions {
		ids[c.A] = struct{}{}
		ids[c.B] = struct{}{}
	}
	return ids
}

func kindColor(k sim.Kind) core.Color {
	switch k {
	case sim.KindPlayer:
		return core.ColorCyan
	case sim.KindProjectile:
		return core.ColorYellow
	default:
		return core.ColorGray
	}
}
