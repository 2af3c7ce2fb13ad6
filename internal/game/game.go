// Package game runs a snake session on top of the engine: it owns the
// board, schedules snake moves and projectiles on a single fast tick,
// applies the rules of each mode and reports finished runs.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"github.com/vovakirdan/gunsnake/internal/config"
	"github.com/vovakirdan/gunsnake/internal/core"
	"github.com/vovakirdan/gunsnake/internal/engine"
	"github.com/vovakirdan/gunsnake/internal/levels"
	"github.com/vovakirdan/gunsnake/internal/registry"
)

// Game implements registry.Game for the three snake modes.
type Game struct {
	mode  config.Mode
	env   Env
	level engine.Level

	rng      *rand.Rand
	board    *engine.Board
	resolver engine.Resolver
	field    engine.Field
	shots    []*engine.Projectile

	speed          *config.SpeedManager
	fireLimiter    *rate.Limiter
	tickRate       int
	tick           uint64
	moveEveryTicks int
	moveTicker     int

	direction engine.Direction
	nextDir   engine.Direction
	turned    bool // a direction change is buffered for the next move

	screenW, screenH int
	tooSmall         bool
	paused           bool
	gameOver         bool
	reported         bool
	fault            error
}

// Epoch anchors the simulated clock used for rate limiting.
var epoch = time.Unix(0, 0)

func init() {
	for _, m := range config.Modes {
		registry.Register(string(m), func() registry.Game {
			return New(m)
		})
	}
}

// New creates a game for the mode. Options override the registry defaults.
func New(mode config.Mode, opts ...Option) *Game {
	env := currentDefaults()
	for _, opt := range opts {
		opt(&env)
	}
	if env.Logger == nil {
		env.Logger = discardLogger()
	}
	return &Game{mode: mode, env: env}
}

// ID returns the game identifier.
func (g *Game) ID() string { return string(g.mode) }

// Title returns the display name.
func (g *Game) Title() string { return "GunSnake " + g.mode.Title() }

// Mode returns the rules the game runs with.
func (g *Game) Mode() config.Mode { return g.mode }

// Reset builds a fresh board from the level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	s := g.env.Settings
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.FastTickRate
	}

	g.level = g.pickLevel()
	opts := []engine.Option{
		engine.WithRand(g.rng),
		engine.WithStagnationThreshold(s.StagnationThreshold),
	}
	board, err := engine.NewBoard(g.level, opts...)
	if err != nil {
		g.env.Logger.Error("invalid level, using empty field", "level", g.level.Name, "err", err)
		g.level = g.emptyLevel()
		if board, err = engine.NewBoard(g.level, opts...); err != nil {
			panic(fmt.Sprintf("game: built-in empty level rejected: %v", err))
		}
	}
	g.board = board
	g.board.Events()
	g.field = engine.Field{Width: g.level.Width, Height: g.level.Height, CellSize: max(s.CellSize, engine.ProjectileStep)}
	g.shots = nil

	g.speed = config.NewSpeedManager(g.mode, s.TickSpeedMS)
	g.fireLimiter = rate.NewLimiter(rate.Every(g.speed.FireInterval()), 1)
	g.tick = 0
	g.moveTicker = 0
	g.updateMoveEvery()

	g.direction = g.level.Direction
	g.nextDir = g.level.Direction
	g.turned = false
	g.paused = false
	g.gameOver = false
	g.reported = false
	g.fault = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.env.Logger.Debug("game reset", "mode", g.mode, "level", g.level.Name,
		"size", fmt.Sprintf("%dx%d", g.level.Width, g.level.Height), "seed", cfg.Seed)
}

// pickLevel returns the configured level or the named built-in.
func (g *Game) pickLevel() engine.Level {
	if g.env.Level != nil {
		return g.env.Level.Clone()
	}
	w, h := g.env.Settings.Dimensions()
	if l, ok := levels.Builtin(g.env.Settings.Level, w, h); ok {
		return l
	}
	return g.emptyLevel()
}

// emptyLevel is the fallback field sized from the settings.
func (g *Game) emptyLevel() engine.Level {
	w, h := g.env.Settings.Dimensions()
	l, ok := levels.Builtin(levels.Empty, w, h)
	if !ok {
		panic("game: empty level is not built in")
	}
	return l
}

// Resize records the screen size. Too small a screen pauses the game.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	rw, rh := requiredSize(g.level.Width, g.level.Height)
	g.tooSmall = w < rw || h < rh
}

// Step advances the game by one fast tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && (g.gameOver || g.paused) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			TickRate: g.tickRate,
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	moved := false
	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.moveSnake()
		moved = true
	}

	if g.mode == config.ModeGun && input.Has(core.ActionFire) && g.board.State() == engine.Alive {
		g.fire()
	}
	g.stepProjectiles()
	g.dispatchEvents()
	g.checkDeath()

	return core.StepResult{State: g.State(), Moved: moved}
}

// processInput buffers one direction change per move. Reversals are dropped.
func (g *Game) processInput(input core.InputFrame) {
	if g.turned {
		return
	}
	newDir := g.nextDir
	switch {
	case input.Has(core.ActionUp):
		newDir = engine.DirUp
	case input.Has(core.ActionDown):
		newDir = engine.DirDown
	case input.Has(core.ActionLeft):
		newDir = engine.DirLeft
	case input.Has(core.ActionRight):
		newDir = engine.DirRight
	}
	if newDir != g.direction && newDir != g.direction.Opposite() {
		g.nextDir = newDir
		g.turned = true
	}
}

func (g *Game) moveSnake() {
	g.direction = g.nextDir
	g.turned = false
	if g.board.Advance(g.direction) == engine.MovedAndGrew && g.speed.Update(g.board.Score()) {
		g.updateMoveEvery()
		g.env.Logger.Debug("speed changed", "interval", g.speed.Interval(), "score", g.board.Score())
	}
}

// fire launches a projectile if the cadence limit allows it.
func (g *Game) fire() {
	if !g.fireLimiter.AllowN(g.now(), 1) {
		return
	}
	g.shots = append(g.shots, g.board.Fire(g.field))
}

// stepProjectiles resolves hits at the current positions, then moves the
// survivors. Each fast tick a projectile crosses exactly one cell.
func (g *Game) stepProjectiles() {
	if len(g.shots) == 0 {
		return
	}
	live, impacts := g.resolver.Resolve(g.board, g.shots)
	for _, im := range impacts {
		g.env.Logger.Debug("projectile impact", "cell", im.Cell, "kind", im.Tag)
	}
	g.shots = engine.Advance(live)
}

func (g *Game) dispatchEvents() {
	for _, e := range g.board.Events() {
		switch e.Kind {
		case engine.EventFoodRelocated:
			g.env.Logger.Debug("food relocated", "cell", e.Cell, "tick", g.tick)
		case engine.EventFoodSpawnSkipped:
			g.env.Logger.Warn("no space for food", "tick", g.tick)
		case engine.EventCollided:
			g.env.Logger.Info("snake collided", "cell", e.Cell, "with", e.Tag, "score", g.board.Score())
		}
		if g.env.Sink != nil {
			g.env.Sink.HandleEvent(e)
		}
	}
}

// checkDeath ends the run and reports it exactly once.
func (g *Game) checkDeath() {
	if g.board.State() != engine.Dead || g.reported {
		return
	}
	g.gameOver = true
	g.reported = true
	g.shots = nil
	if g.env.Reporter == nil {
		return
	}
	res := Result{
		Player: g.env.Settings.Player,
		Score:  g.board.Score(),
		Steps:  g.board.Steps(),
		Level:  g.level.Name,
		Mode:   g.mode,
		Speed:  g.env.Settings.SpeedLevel(),
		Ended:  time.Now(),
	}
	if err := g.env.Reporter.ReportScore(res); err != nil {
		g.env.Logger.Error("failed to report score", "err", err)
	}
}

func (g *Game) updateMoveEvery() {
	per := time.Second / time.Duration(g.tickRate)
	g.moveEveryTicks = max(1, int(g.speed.Interval()/per))
}

func (g *Game) now() time.Time {
	return epoch.Add(time.Duration(g.tick) * (time.Second / time.Duration(g.tickRate)))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.board != nil {
		score = g.board.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver || g.fault != nil,
		Paused:   g.paused,
	}
}

// Err returns the fault that aborted the game, if any.
func (g *Game) Err() error { return g.fault }

// Projectiles returns the live projectiles for drawing.
func (g *Game) Projectiles() []engine.Projectile {
	out := make([]engine.Projectile, len(g.shots))
	for i, p := range g.shots {
		out[i] = *p
	}
	return out
}
