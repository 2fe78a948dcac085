package config

import (
	_ "embed"

	"github.com/vovakirdan/destroyer/internal/sim"
)

//go:embed defaults/destroyer.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/destroyer.yaml.
func Default() Config {
	rules := sim.DefaultRules()
	return Config{
		Board: BoardConfig{
			Width:      rules.BoardSize.Width(),
			Height:     rules.BoardSize.Height(),
			StartLevel: 1,
		},
		Player: PlayerConfig{
			Names:    []string{"Bongo", "Rolly", "Tyrion"},
			Geometry: fromPoints(rules.PlayerGeometry),
		},
		Projectile: ProjectileConfig{
			Speed:    rules.ProjectileSpeed,
			Muzzle:   rules.MuzzleFactor,
			Geometry: fromPoints(rules.ProjectileGeometry),
		},
		Timer: TimerConfig{
			Kind: sim.TimerStatic,
			Step: sim.DefaultStep,
		},
		Controls: ControlsConfig{
			TurnStep: 0.2617993877991494, // pi/12
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
