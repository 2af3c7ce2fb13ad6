package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gunsnake/internal/config"
	"github.com/vovakirdan/gunsnake/internal/core"
	"github.com/vovakirdan/gunsnake/internal/engine"
	"github.com/vovakirdan/gunsnake/internal/registry"
)

// testLevel is a w×h empty level with the snake at (2,2)/(2,1) heading down.
func testLevel(w, h int) engine.Level {
	l := engine.NewEmptyLevel("test", w, h)
	l.Head = engine.Point{X: 2, Y: 2}
	l.Tail = engine.Point{X: 2, Y: 1}
	l.Direction = engine.DirDown
	return l
}

type recordingSink struct{ events []engine.Event }

func (s *recordingSink) HandleEvent(e engine.Event) { s.events = append(s.events, e) }

func (s *recordingSink) count(kind engine.EventKind) int {
	n := 0
	for _, e := range s.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

type recordingReporter struct{ results []Result }

func (r *recordingReporter) ReportScore(res Result) error {
	r.results = append(r.results, res)
	return nil
}

func newTestGame(t *testing.T, mode config.Mode, l engine.Level, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithSettings(config.Default()), WithLevel(l)}, opts...)
	g := New(mode, opts...)
	g.Reset(core.RuntimeConfig{ScreenW: 200, ScreenH: 100, TickRate: core.FastTickRate, Seed: 7})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestModesRegistered(t *testing.T) {
	for _, m := range config.Modes {
		if !registry.Exists(string(m)) {
			t.Errorf("mode %q not registered", m)
		}
	}
	g, err := registry.Create("gun")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "GunSnake "+config.ModeGun.Title() {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestRegistryGamesUseDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.TickSpeedMS = 200
	SetDefaults(Env{Settings: cfg})
	t.Cleanup(func() { SetDefaults(Env{Settings: config.Default()}) })

	rg, err := registry.Create(string(config.ModeClassic))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g := rg.(*Game)
	g.Reset(core.RuntimeConfig{ScreenW: 200, ScreenH: 100, TickRate: core.FastTickRate, Seed: 7})
	if g.moveEveryTicks != 20 {
		t.Errorf("moveEveryTicks = %d, want 20 from the 200 ms default", g.moveEveryTicks)
	}
}

func TestInvalidLevelFallbackKeepsSettings(t *testing.T) {
	bad := testLevel(5, 5)
	bad.Tail = bad.Head
	cfg := config.Default()
	cfg.StagnationThreshold = 2
	g := newTestGame(t, config.ModeClassic, bad, WithSettings(cfg))

	w, h := cfg.Dimensions()
	if g.level.Name != "Empty" || g.level.Width != w || g.level.Height != h {
		t.Fatalf("level = %q %dx%d, want the empty %dx%d field", g.level.Name, g.level.Width, g.level.Height, w, h)
	}
	for range 2 * g.moveEveryTicks {
		g.Step(core.NewInputFrame())
	}
	if g.board.Stagnation() != 2 {
		t.Fatalf("stagnation = %d after 2 moves, want 2", g.board.Stagnation())
	}
	for range g.moveEveryTicks {
		g.Step(core.NewInputFrame())
	}
	if g.board.Stagnation() != 0 {
		t.Errorf("stagnation = %d, want food relocated past the threshold of 2", g.board.Stagnation())
	}
}

func TestMoveCadence(t *testing.T) {
	g := newTestGame(t, config.ModeClassic, testLevel(20, 20))

	// 160 ms moves at 10 ms per step.
	if g.moveEveryTicks != 16 {
		t.Fatalf("moveEveryTicks = %d, want 16", g.moveEveryTicks)
	}
	for i := 1; i <= 32; i++ {
		res := g.Step(core.NewInputFrame())
		if want := i%16 == 0; res.Moved != want {
			t.Fatalf("step %d: Moved = %v, want %v", i, res.Moved, want)
		}
	}
	if got := g.board.Snake().Head(); got != (engine.Point{X: 2, Y: 4}) {
		t.Errorf("head = %v, want (2,4)", got)
	}
}

func TestReversalIgnored(t *testing.T) {
	g := newTestGame(t, config.ModeClassic, testLevel(20, 20))

	for range 16 {
		g.Step(input(core.ActionUp))
	}
	if g.direction != engine.DirDown {
		t.Errorf("direction = %v, want down", g.direction)
	}
	if g.State().GameOver {
		t.Error("reversal must not kill the snake")
	}
}

func TestOneTurnPerMove(t *testing.T) {
	g := newTestGame(t, config.ModeClassic, testLevel(20, 20))

	g.Step(input(core.ActionLeft))
	g.Step(input(core.ActionUp)) // would reverse after the left turn
	for range 14 {
		g.Step(core.NewInputFrame())
	}
	if g.direction != engine.DirLeft {
		t.Fatalf("direction = %v, want left", g.direction)
	}
	if got := g.board.Snake().Head(); got != (engine.Point{X: 1, Y: 2}) {
		t.Errorf("head = %v, want (1,2)", got)
	}
}

func TestDeterminism(t *testing.T) {
	script := []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionFire, core.ActionUp}
	run := func() Snapshot {
		g := newTestGame(t, config.ModeGun, testLevel(16, 12))
		for i := range 3000 {
			a := script[(i/37)%len(script)]
			g.Step(input(a, core.ActionFire))
		}
		return g.Snapshot()
	}
	a, b := run(), run()
	if !a.Equal(b) {
		t.Error("equal seeds and inputs produced different snapshots")
	}
}

func TestGunFireCadence(t *testing.T) {
	sink := &recordingSink{}
	g := newTestGame(t, config.ModeGun, testLevel(20, 20), WithEventSink(sink))

	// Fire interval is 80 ms, i.e. one shot every 8 steps.
	for range 16 {
		g.Step(input(core.ActionFire))
	}
	if got := sink.count(engine.EventProjectileFired); got != 2 {
		t.Errorf("fired %d shots in 160 ms, want 2", got)
	}
}

func TestClassicIgnoresFire(t *testing.T) {
	sink := &recordingSink{}
	g := newTestGame(t, config.ModeClassic, testLevel(20, 20), WithEventSink(sink))
	for range 16 {
		g.Step(input(core.ActionFire))
	}
	if got := sink.count(engine.EventProjectileFired); got != 0 {
		t.Errorf("classic mode fired %d shots", got)
	}
}

func TestProjectileClearsWall(t *testing.T) {
	l := testLevel(5, 8)
	l.Cells[5][2] = engine.CellWall
	l.Cells[0][0] = engine.CellFood
	sink := &recordingSink{}
	g := newTestGame(t, config.ModeGun, l, WithEventSink(sink))

	// Origin is the bottom edge of the head cell, i.e. cell (2,3). The
	// projectile crosses one cell per step and reaches row 5 on step 3.
	g.Step(input(core.ActionFire))
	g.Step(core.NewInputFrame())
	if g.board.CellAt(2, 5) != engine.CellWall {
		t.Fatal("wall cleared too early")
	}
	g.Step(core.NewInputFrame())
	if g.board.CellAt(2, 5) != engine.CellEmpty {
		t.Fatal("wall still present after the projectile reached it")
	}
	if got := sink.count(engine.EventProjectileImpact); got != 1 {
		t.Errorf("impacts = %d, want 1", got)
	}
	if len(g.Projectiles()) != 0 {
		t.Error("projectile should be destroyed on impact")
	}
}

func TestSmallCellSizeDoesNotSkipCells(t *testing.T) {
	l := testLevel(20, 10)
	l.Head = engine.Point{X: 5, Y: 5}
	l.Tail = engine.Point{X: 4, Y: 5}
	l.Direction = engine.DirRight
	l.Cells[5][7] = engine.CellWall
	l.Cells[0][0] = engine.CellFood
	cfg := config.Default()
	cfg.CellSize = 10
	sink := &recordingSink{}
	g := newTestGame(t, config.ModeGun, l, WithSettings(cfg), WithEventSink(sink))

	g.Step(input(core.ActionFire))
	for range 4 {
		g.Step(core.NewInputFrame())
	}
	if g.board.CellAt(7, 5) != engine.CellEmpty {
		t.Error("projectile jumped over the wall at (7,5)")
	}
	if got := sink.count(engine.EventProjectileImpact); got != 1 {
		t.Errorf("impacts = %d, want 1", got)
	}
}

func TestEventsForwarded(t *testing.T) {
	l := testLevel(10, 10)
	l.Cells[3][2] = engine.CellFood
	sink := &recordingSink{}
	g := newTestGame(t, config.ModeClassic, l, WithEventSink(sink))

	for range 16 {
		g.Step(core.NewInputFrame())
	}
	if sink.count(engine.EventGrew) != 1 {
		t.Errorf("events = %v, want one grew", sink.events)
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, want 1", g.State().Score)
	}
}

func deadlyLevel() engine.Level {
	l := testLevel(6, 6)
	l.Cells[3][2] = engine.CellWall
	return l
}

func TestScoreReportedOnce(t *testing.T) {
	rep := &recordingReporter{}
	g := newTestGame(t, config.ModeClassic, deadlyLevel(), WithReporter(rep), WithPlayer("alice"))

	for range 100 {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("snake should have hit the wall")
	}
	if len(rep.results) != 1 {
		t.Fatalf("reported %d results, want 1", len(rep.results))
	}
	r := rep.results[0]
	if r.Player != "alice" || r.Mode != config.ModeClassic || r.Level != "test" || r.Score != 0 {
		t.Errorf("unexpected result %+v", r)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	rep := &recordingReporter{}
	g := newTestGame(t, config.ModeClassic, deadlyLevel(), WithReporter(rep))
	for range 16 {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Step(input(core.ActionRestart))
	if g.State().GameOver {
		t.Fatal("restart should clear game over")
	}
	if got := g.board.Snake().Len(); got != 2 {
		t.Errorf("snake length after restart = %d, want 2", got)
	}

	for range 16 {
		g.Step(core.NewInputFrame())
	}
	if len(rep.results) != 2 {
		t.Errorf("reported %d results over two runs, want 2", len(rep.results))
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, config.ModeClassic, testLevel(20, 20))
	for range 16 {
		g.Step(core.NewInputFrame())
	}
	g.Step(input(core.ActionRestart))
	if g.board.Steps() != 1 {
		t.Errorf("steps = %d, restart should be ignored while playing", g.board.Steps())
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, config.ModeClassic, testLevel(20, 20))

	g.Step(input(core.ActionPause))
	for range 50 {
		g.Step(core.NewInputFrame())
	}
	if !g.State().Paused || g.board.Steps() != 0 {
		t.Fatalf("paused game moved: paused=%v steps=%d", g.State().Paused, g.board.Steps())
	}
	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestSpeedModeInterval(t *testing.T) {
	g := newTestGame(t, config.ModeSpeed, testLevel(20, 20))
	if g.moveEveryTicks != 16 {
		t.Fatalf("moveEveryTicks = %d, want 16", g.moveEveryTicks)
	}
	if !g.speed.Update(5) {
		t.Fatal("score 5 should change the interval")
	}
	g.updateMoveEvery()
	if g.moveEveryTicks != 15 {
		t.Errorf("moveEveryTicks = %d, want 15", g.moveEveryTicks)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := newTestGame(t, config.ModeClassic, testLevel(20, 20))
	g.Resize(20, 5)
	for range 32 {
		g.Step(core.NewInputFrame())
	}
	if g.board.Steps() != 0 {
		t.Error("game advanced on a too small screen")
	}
	scr := core.NewScreen(20, 5)
	g.Render(scr)
	if !strings.Contains(scr.String(), "small") {
		t.Errorf("expected too small notice, got:\n%s", scr)
	}

	g.Resize(200, 100)
	for range 16 {
		g.Step(core.NewInputFrame())
	}
	if g.board.Steps() != 1 {
		t.Error("game should resume once the screen is big enough")
	}
}

func TestRenderGlyphs(t *testing.T) {
	l := testLevel(5, 5)
	l.Cells[0][0] = engine.CellFood
	l.Cells[4][4] = engine.CellWall
	g := newTestGame(t, config.ModeClassic, l)

	scr := core.NewScreen(80, 20)
	g.Resize(80, 20)
	g.Render(scr)

	ox, oy := g.fieldOrigin(scr)
	cell := func(x, y int) rune { return scr.Get(ox+x*cellChars, oy+y) }

	if got := cell(2, 2); got != '▼' {
		t.Errorf("head glyph = %q, want ▼", got)
	}
	if got := cell(2, 1); got != '╻' {
		t.Errorf("tail glyph = %q, want ╻", got)
	}
	if got := cell(0, 0); got != '●' {
		t.Errorf("food glyph = %q, want ●", got)
	}
	if got := cell(4, 4); got != '█' {
		t.Errorf("wall glyph = %q, want █", got)
	}
	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD = %q", scr.Row(0))
	}
	if g.Err() != nil {
		t.Errorf("unexpected fault: %v", g.Err())
	}
}
