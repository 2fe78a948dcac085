package sim

import "github.com/vovakirdan/destroyer/internal/core"

// Default tuning values.
const (
	DefaultBoardWidth      = 100.0
	DefaultBoardHeight     = 100.0
	DefaultProjectileSpeed = 50.0
	DefaultMuzzleFactor    = 10.0
)

// Compat selects legacy behaviors. Each flag reproduces
// one known defect; the zero value is the corrected behavior.
type Compat struct {
	// BBoxYFromX computes the vertical bounding-box extents from X offsets.
	BBoxYFromX bool
	// ProjectileCosBothAxes uses cos(rotation) for the Y velocity as well.
	ProjectileCosBothAxes bool
	// PlayerLegacyWrap wraps the low edges as width-x, and writes the
	// low-y wrap into x.
	PlayerLegacyWrap bool
	// VelocityFromWidthOnly draws both start velocity components from the
	// board width.
	VelocityFromWidthOnly bool
}

// LegacyCompat returns the flag set that reproduces every legacy behavior.
func LegacyCompat() Compat {
	return Compat{
		BBoxYFromX:            true,
		ProjectileCosBothAxes: true,
		PlayerLegacyWrap:      true,
		VelocityFromWidthOnly: true,
	}
}

// Rules holds the tunable parameters of a Game.
type Rules struct {
	BoardSize          core.FRect
	PlayerGeometry     []core.Point
	ProjectileGeometry []core.Point
	ProjectileSpeed    float64
	MuzzleFactor       float64
	Compat             Compat
}

// DefaultRules returns the standard destroyer tuning.
func DefaultRules() Rules {
	return Rules{
		BoardSize: core.NewFRect(0, 0, DefaultBoardWidth, DefaultBoardHeight),
		PlayerGeometry: []core.Point{
			{X: -5, Y: -5},
			{X: 5, Y: 0},
			{X: -5, Y: 5},
		},
		ProjectileGeometry: []core.Point{
			{X: -0.5, Y: -0.5},
			{X: 0.5, Y: 0},
			{X: -0.5, Y: 0.5},
		},
		ProjectileSpeed: DefaultProjectileSpeed,
		MuzzleFactor:    DefaultMuzzleFactor,
	}
}
