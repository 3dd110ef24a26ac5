package game

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

const frame = 16 * time.Millisecond

func newTestGame(mutate func(*config.Config)) *Game {
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24})
	return g
}

func step(g *Game, dt time.Duration, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in, dt)
}

func dotOnly(cfg *config.Config) { cfg.Rules.DotOnly = true }

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(nil)
	g2 := newTestGame(nil)

	script := []core.Action{core.ActionLeft, core.ActionRotateCW, core.ActionRight, core.ActionHardDrop, core.ActionSoftDrop}
	for i := 0; i < 600; i++ {
		var actions []core.Action
		if i%9 == 0 {
			actions = append(actions, script[(i/9)%len(script)])
		}
		step(g1, frame, actions...)
		step(g2, frame, actions...)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestPauseFreezesBoard(t *testing.T) {
	g := newTestGame(nil)
	step(g, 0)

	step(g, 0, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("Expected paused")
	}
	before := g.Snapshot()
	for i := 0; i < 100; i++ {
		step(g, 100*time.Millisecond, core.ActionHardDrop)
	}
	after := g.Snapshot()
	if before.Turns != after.Turns || before.Occupied != after.Occupied {
		t.Errorf("Board changed while paused: %+v -> %+v", before, after)
	}

	step(g, 0, core.ActionPause)
	if g.State().Paused {
		t.Error("Second pause should resume")
	}
}

// topOut hard-drops DOT pieces into one column until the stack reaches the spawn row.
func topOut(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	for i := 0; i < 100; i++ {
		if res := step(g, frame, core.ActionHardDrop); res.Ended {
			return res
		}
	}
	t.Fatal("Game never ended")
	return core.StepResult{}
}

func TestGameOverLatchesUntilRestart(t *testing.T) {
	g := newTestGame(dotOnly)
	res := topOut(t, g)

	if !res.State.GameOver {
		t.Fatal("Expected game over state")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot state = %s, expected %s", g.Snapshot().State, StateGameOver)
	}

	before := g.Snapshot()
	step(g, time.Second, core.ActionHardDrop)
	if g.Snapshot().Occupied != before.Occupied || !g.State().GameOver {
		t.Error("Board should stay frozen on the game-over screen")
	}

	step(g, 0, core.ActionRestart)
	if g.State().GameOver {
		t.Error("Restart should clear game over")
	}
	if s := g.Snapshot(); s.Occupied != 0 || s.Score != 0 || s.Active == "" {
		t.Errorf("Restart should start a fresh board, got %+v", s)
	}
}

func TestAutoRestart(t *testing.T) {
	g := newTestGame(func(cfg *config.Config) {
		cfg.Rules.DotOnly = true
		cfg.Rules.AutoRestart = true
	})
	res := topOut(t, g)
	if res.State.GameOver {
		t.Error("Auto restart should never show the game-over state")
	}

	step(g, 0)
	if s := g.Snapshot(); s.Occupied != 0 || s.Played != 1 {
		t.Errorf("Expected a fresh board after one game, got %+v", s)
	}
}

func TestLineClearScores(t *testing.T) {
	g := newTestGame(dotOnly)
	step(g, 0)
	spawnCol := g.Board().Active().Cells()[0].X

	for col := 0; col < 10; col++ {
		step(g, 0)
		for moves := col - spawnCol; moves != 0; {
			if moves < 0 {
				step(g, 0, core.ActionLeft)
				moves++
			} else {
				step(g, 0, core.ActionRight)
				moves--
			}
		}
		step(g, 0, core.ActionHardDrop)
	}

	if !g.Board().RowsPendingRemoval() {
		t.Fatal("Full row should be marked")
	}
	res := step(g, 650*time.Millisecond)
	if res.RowsCleared != 1 || res.State.Score != 1 {
		t.Errorf("Expected one line, got cleared=%d score=%d", res.RowsCleared, res.State.Score)
	}
}

func TestFixedPresetKeepsInterval(t *testing.T) {
	g := newTestGame(func(cfg *config.Config) {
		config.ApplyPreset(cfg, config.DifficultyFixed)
	})
	for i := 0; i < 300; i++ {
		step(g, frame, core.ActionHardDrop)
	}
	if ms := g.Snapshot().TickMS; ms != 650 {
		t.Errorf("TickMS = %d, expected 650 with fixed difficulty", ms)
	}
}

func TestHardPresetSpeedsUp(t *testing.T) {
	g := newTestGame(func(cfg *config.Config) {
		config.ApplyPreset(cfg, config.DifficultyHard)
	})
	step(g, 0)
	if ms := g.Snapshot().TickMS; ms >= 650 {
		t.Errorf("TickMS = %d, expected faster than base on hard", ms)
	}
}

func TestCycleDifficulty(t *testing.T) {
	g := newTestGame(nil)
	if g.Preset() != config.DifficultyEasy {
		t.Fatalf("Default preset = %q, expected easy", g.Preset())
	}

	want := []config.DifficultyPreset{
		config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed, config.DifficultyEasy,
	}
	for _, p := range want {
		step(g, 0, core.ActionDifficulty)
		if g.Preset() != p {
			t.Errorf("Preset = %q, expected %q", g.Preset(), p)
		}
	}

	step(g, 0, core.ActionDifficulty)
	step(g, 0, core.ActionDifficulty)
	if ms := g.Snapshot().TickMS; ms >= 650 {
		t.Errorf("TickMS = %d, expected faster than base on hard", ms)
	}
	step(g, 0, core.ActionDifficulty)
	if ms := g.Snapshot().TickMS; ms != 650 {
		t.Errorf("TickMS = %d, expected 650 once fixed", ms)
	}
	if g.Level() != 0 {
		t.Errorf("Level = %v, expected 0 on fixed", g.Level())
	}
}

func TestFixedPresetIgnoresInitialLevel(t *testing.T) {
	g := newTestGame(func(cfg *config.Config) {
		cfg.Difficulty.InitialLevel = 0.5
		config.ApplyPreset(cfg, config.DifficultyFixed)
	})
	step(g, 0)
	if ms := g.Snapshot().TickMS; ms != 650 {
		t.Errorf("TickMS = %d, expected 650 with fixed difficulty", ms)
	}
}

func TestTooSmall(t *testing.T) {
	g := newTestGame(nil)
	g.Resize(20, 10)
	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("Expected small-window state, got %s", g.Snapshot().State)
	}

	before := g.Snapshot()
	step(g, time.Second)
	if g.Snapshot().Turns != before.Turns {
		t.Error("Board should not advance in a small window")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("Expected too-small notice, got:\n%s", screen.String())
	}

	w, h := g.MinSize()
	g.Resize(w, h)
	if g.Snapshot().State != StatePlaying {
		t.Error("Resizing to the minimum should resume play")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(nil)
	step(g, 0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"NEXT", "LINES 0", "TURNS 0", "SPEED 650ms", string(blockRune), string(ghostRune)} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q", want)
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(nil)
	step(g, 0)
	step(g, 0, core.ActionPause)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("Expected pause overlay")
	}
}
