// Package destroyer adapts the simulation core to the arcade platform: it maps
// input actions to spawns and rotations, drives the sim once per tick with
// the configured timer and renders the ASCII frame.
package destroyer

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/destroyer/internal/config"
	"github.com/vovakirdan/destroyer/internal/core"
	"github.com/vovakirdan/destroyer/internal/registry"
	"github.com/vovakirdan/destroyer/internal/sim"
)

// ID is the registry id of the game.
const ID = "destroyer"

var (
	defaultConfig = config.Default()
	defaultLogger = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.Config) {
	defaultConfig = cfg
}

// SetLogger sets the logger used by games created through the registry.
func SetLogger(l *log.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Game implements registry.Game on top of sim.Game.
type Game struct {
	cfg     config.Config
	logger  *log.Logger
	runtime core.RuntimeConfig

	sim    *sim.Game
	timer  sim.Timer
	paused bool
}

// New creates a game with the package-level configuration.
func New() *Game {
	return NewWithConfig(defaultConfig, defaultLogger)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Destroyer"
}

// Reset builds a new simulation, adds the configured roster and starts the
// first level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	g.sim = sim.NewGame(
		sim.WithSeed(runtime.Seed),
		sim.WithRules(g.cfg.Rules()),
		sim.WithLogger(g.logger),
	)
	for _, name := range g.cfg.Player.Names {
		g.sim.AddPlayer(name)
	}
	g.sim.StartLevel(g.cfg.Board.StartLevel)

	timer, err := g.cfg.NewTimer()
	if err != nil {
		g.logger.Warn("falling back to static timer", "error", err)
		timer = sim.NewStaticTimer(sim.DefaultStep)
	}
	g.timer = timer
	g.timer.Start()

	g.logger.Info("game reset", "seed", runtime.Seed, "level", g.cfg.Board.StartLevel, "timer", g.cfg.Timer.Kind)
}

// Step applies the input gathered since the last tick and runs one tick.
// Spawns requested by input enter the board before the tick's physics pass.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Count(core.ActionPause)%2 == 1 {
		g.paused = !g.paused
		if !g.paused {
			g.timer.Resume()
		}
		g.logger.Debug("pause toggled", "paused", g.paused, "tick", g.timer.Ticks())
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.sim.StartLevel(g.sim.Board().Level)
		g.logger.Info("level restarted", "level", g.sim.Board().Level)
	case in.Has(core.ActionNextLevel):
		g.sim.StartLevel(g.sim.Board().Level + 1)
		g.logger.Info("level advanced", "level", g.sim.Board().Level)
	}

	if lead := g.lead(); lead != nil {
		turn := float64(in.Count(core.ActionTurnRight)-in.Count(core.ActionTurnLeft)) * g.cfg.Controls.TurnStep
		lead.Rotation += turn
		for i := 0; i < in.Count(core.ActionShoot); i++ {
			g.sim.ShootProjectile(lead)
		}
	}

	g.timer.Update()
	g.sim.RunOne(g.timer)

	return core.StepResult{State: g.State()}
}

// lead returns the player controlled by the keyboard, if any.
func (g *Game) lead() *sim.Entity {
	players := g.sim.Players()
	if len(players) == 0 {
		return nil
	}
	return players[0]
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Level:      g.sim.Board().Level,
		Tick:       g.timer.Ticks(),
		Items:      len(g.sim.Board().Items),
		Collisions: len(g.sim.Collisions()),
		Paused:     g.paused,
	}
}

// Snapshot returns a read-only copy of the simulation state. It is empty
// before Reset.
func (g *Game) Snapshot() sim.Snapshot {
	if g.sim == nil {
		return sim.Snapshot{}
	}
	return g.sim.Snapshot()
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *sim.Game {
	return g.sim
}

// Render draws the ASCII frame.
func (g *Game) Render(dst *core.Screen) {
	if g.sim == nil {
		return
	}
	RenderFrame(dst, g.sim.Snapshot(), HUD{Ticks: g.timer.Ticks(), Paused: g.paused})
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
