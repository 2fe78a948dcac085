package destroyer

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/destroyer/internal/config"
	"github.com/vovakirdan/destroyer/internal/core"
	"github.com/vovakirdan/destroyer/internal/registry"
	"github.com/vovakirdan/destroyer/internal/sim"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.Default(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestReset(t *testing.T) {
	g := newTestGame(t)
	state := g.State()

	if state.Level != 1 {
		t.Errorf("Level = %d, expected 1", state.Level)
	}
	if state.Items != 3 {
		t.Errorf("Items = %d, expected the 3 default players", state.Items)
	}
	names := []string{}
	for _, p := range g.Sim().Players() {
		names = append(names, p.Name)
	}
	if strings.Join(names, ",") != "Bongo,Rolly,Tyrion" {
		t.Errorf("players = %v", names)
	}
}

func TestShootSpawnsBeforeTick(t *testing.T) {
	g := newTestGame(t)
	lead := g.Sim().Players()[0]
	lead.Center = core.Point{X: 50, Y: 50}

	g.Step(frame(core.ActionShoot, core.ActionShoot))

	var projectiles []*sim.Entity
	for _, e := range g.Sim().Board().Items {
		if e.Kind == sim.KindProjectile {
			projectiles = append(projectiles, e)
		}
	}
	if len(projectiles) != 2 {
		t.Fatalf("projectiles = %d, expected 2", len(projectiles))
	}
	// Spawned at (50,50) then moved by one tick at 500 units/s along rotation 0.
	if projectiles[0].Center.X <= 50 || projectiles[0].Center.Y != 50 {
		t.Errorf("projectile center = %+v, expected moved right from 50,50", projectiles[0].Center)
	}
	if g.State().Tick != 1 {
		t.Errorf("Tick = %d, expected 1", g.State().Tick)
	}
}

func TestTurn(t *testing.T) {
	g := newTestGame(t)
	step := config.Default().Controls.TurnStep

	g.Step(frame(core.ActionTurnRight, core.ActionTurnRight))
	if got := g.Sim().Players()[0].Rotation; got != 2*step {
		t.Errorf("Rotation = %v, expected %v", got, 2*step)
	}

	g.Step(frame(core.ActionTurnLeft))
	if got := g.Sim().Players()[0].Rotation; got != step {
		t.Errorf("Rotation = %v, expected %v", got, step)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused after pause action")
	}
	before := g.Snapshot()
	g.Step(frame())
	g.Step(frame(core.ActionShoot))
	after := g.Snapshot()
	if before.Hash() != after.Hash() || g.State().Tick != 0 {
		t.Error("simulation advanced while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused || g.State().Tick != 1 {
		t.Errorf("state after unpause = %+v, expected running at tick 1", g.State())
	}
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time           { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPauseWithRealTimerSkipsPausedTime(t *testing.T) {
	g := newTestGame(t)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	timer := sim.NewRealTimerWithClock(clock.now)
	timer.Start()
	g.timer = timer

	clock.advance(16 * time.Millisecond)
	g.Step(frame())
	g.Step(frame(core.ActionPause))

	clock.advance(10 * time.Second)
	g.Step(frame())
	lead := g.Sim().Players()[0]
	before := lead.Center

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("expected running after second pause action")
	}
	if timer.Elapsed() != 0 {
		t.Errorf("Elapsed() of first tick after unpause = %v, expected 0", timer.Elapsed())
	}
	if lead.Center != before {
		t.Errorf("lead moved from %+v to %+v across the pause", before, lead.Center)
	}
	if timer.Ticks() != 2 {
		t.Errorf("Ticks() = %d, expected 2", timer.Ticks())
	}

	clock.advance(16 * time.Millisecond)
	g.Step(frame())
	if got := timer.Elapsed(); got < 0.015 || got > 0.017 {
		t.Errorf("Elapsed() = %v, expected about one frame", got)
	}
}

func TestDoublePauseInOneTickCancels(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionPause, core.ActionPause))
	if g.State().Paused {
		t.Error("two pause presses before a tick should leave the game running")
	}
	if g.State().Tick != 1 {
		t.Errorf("Tick = %d, expected 1", g.State().Tick)
	}

	g.Step(frame(core.ActionPause, core.ActionPause, core.ActionPause))
	if !g.State().Paused {
		t.Error("three pause presses before a tick should pause")
	}
}

func TestSnapshotBeforeReset(t *testing.T) {
	g := NewWithConfig(config.Default(), nil)

	snap := g.Snapshot()
	if len(snap.Items) != 0 || snap.Tick != 0 {
		t.Errorf("Snapshot() before Reset = %+v, expected empty", snap)
	}
}

func TestLevelControls(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionNextLevel))
	if g.State().Level != 2 {
		t.Errorf("Level = %d, expected 2", g.State().Level)
	}

	g.Step(frame())
	g.Step(frame(core.ActionRestart))
	if g.State().Level != 2 {
		t.Errorf("Level after restart = %d, expected 2", g.State().Level)
	}
	if g.Sim().Ticks() != 1 {
		t.Errorf("sim ticks after restart = %d, expected 1", g.Sim().Ticks())
	}
}

func TestDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 200)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%15 == 0:
			inputs[i].Set(core.ActionShoot)
		case i%4 == 0:
			inputs[i].Set(core.ActionTurnLeft)
		}
	}

	run := func() uint64 {
		g := newTestGame(t)
		for _, in := range inputs {
			g.Step(in)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())

	s := core.NewScreen(80, 40)
	g.Render(s)
	if !strings.Contains(s.String(), "Level: 1, Run 1") {
		t.Errorf("rendered frame missing status line:\n%s", s.String())
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Destroyer" {
		t.Errorf("Title() = %q", g.Title())
	}
}
