// Package config provides YAML-based configuration loading for destroyer:
// board and spawn tuning, timer selection and legacy compatibility flags.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/destroyer/internal/core"
	"github.com/vovakirdan/destroyer/internal/sim"
)

// Config contains all configuration for a destroyer session.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Timer      TimerConfig      `yaml:"timer"`
	Controls   ControlsConfig   `yaml:"controls"`
	Compat     CompatConfig     `yaml:"compat"`
}

// BoardConfig defines the arena.
type BoardConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	StartLevel int     `yaml:"start_level"`
}

// Vertex is a shape point relative to an entity's center.
type Vertex struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerConfig defines the roster and the player shape.
type PlayerConfig struct {
	Names    []string `yaml:"names"`
	Geometry []Vertex `yaml:"geometry"`
}

// ProjectileConfig defines projectile shape and launch speed.
// Launch velocity is muzzle * speed along the shooter's rotation.
type ProjectileConfig struct {
	Speed    float64  `yaml:"speed"`
	Muzzle   float64  `yaml:"muzzle"`
	Geometry []Vertex `yaml:"geometry"`
}

// TimerConfig selects the tick timer.
type TimerConfig struct {
	Kind string  `yaml:"kind"` // "static" or "real"
	Step float64 `yaml:"step"` // Seconds per tick for the static timer
}

// ControlsConfig tunes input handling.
type ControlsConfig struct {
	TurnStep float64 `yaml:"turn_step"` // Radians per turn key press
}

// CompatConfig toggles reproduction of known legacy defects.
type CompatConfig struct {
	BBoxYFromX            bool `yaml:"bbox_y_from_x"`
	ProjectileCosBothAxes bool `yaml:"projectile_cos_both_axes"`
	PlayerLegacyWrap      bool `yaml:"player_legacy_wrap"`
	VelocityFromWidthOnly bool `yaml:"velocity_from_width_only"`
}

// CompatPreset is a named set of compatibility flags.
type CompatPreset string

const (
	CompatCorrected CompatPreset = "corrected"
	CompatLegacy    CompatPreset = "legacy"
)

// ApplyCompatPreset overwrites the compat flags with a preset.
// An empty preset keeps the configured flags.
func ApplyCompatPreset(cfg *Config, preset CompatPreset) error {
	switch preset {
	case "":
		return nil
	case CompatCorrected:
		cfg.Compat = CompatConfig{}
	case CompatLegacy:
		cfg.Compat = CompatConfig{
			BBoxYFromX:            true,
			ProjectileCosBothAxes: true,
			PlayerLegacyWrap:      true,
			VelocityFromWidthOnly: true,
		}
	default:
		return fmt.Errorf("config: unknown compat preset %q", preset)
	}
	return nil
}

// Validate reports every problem in the configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: board size %vx%v must be positive", c.Board.Width, c.Board.Height))
	}
	if len(c.Player.Names) == 0 {
		errs = append(errs, errors.New("config: player.names must list at least one player"))
	}
	switch c.Timer.Kind {
	case sim.TimerStatic, sim.TimerReal:
	default:
		errs = append(errs, fmt.Errorf("config: unknown timer kind %q", c.Timer.Kind))
	}
	if c.Timer.Kind == sim.TimerStatic && c.Timer.Step <= 0 {
		errs = append(errs, fmt.Errorf("config: timer.step %v must be positive", c.Timer.Step))
	}
	return errors.Join(errs...)
}

// Rules converts the configuration into simulation tuning.
func (c Config) Rules() sim.Rules {
	return sim.Rules{
		BoardSize:          core.NewFRect(0, 0, c.Board.Width, c.Board.Height),
		PlayerGeometry:     toPoints(c.Player.Geometry),
		ProjectileGeometry: toPoints(c.Projectile.Geometry),
		ProjectileSpeed:    c.Projectile.Speed,
		MuzzleFactor:       c.Projectile.Muzzle,
		Compat: sim.Compat{
			BBoxYFromX:            c.Compat.BBoxYFromX,
			ProjectileCosBothAxes: c.Compat.ProjectileCosBothAxes,
			PlayerLegacyWrap:      c.Compat.PlayerLegacyWrap,
			VelocityFromWidthOnly: c.Compat.VelocityFromWidthOnly,
		},
	}
}

// NewTimer builds the configured timer.
func (c Config) NewTimer() (sim.Timer, error) {
	return sim.NewTimer(c.Timer.Kind, c.Timer.Step)
}

func toPoints(vs []Vertex) []core.Point {
	out := make([]core.Point, len(vs))
	for i, v := range vs {
		out[i] = core.Point{X: v.X, Y: v.Y}
	}
	return out
}

func fromPoints(ps []core.Point) []Vertex {
	out := make([]Vertex, len(ps))
	for i, p := range ps {
		out[i] = Vertex{X: p.X, Y: p.Y}
	}
	return out
}
