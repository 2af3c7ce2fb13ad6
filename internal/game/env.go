package game

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gunsnake/internal/config"
	"github.com/vovakirdan/gunsnake/internal/engine"
)

// EventSink receives simulation events, e.g. to play sounds.
type EventSink interface {
	HandleEvent(e engine.Event)
}

// Result is reported once when a run ends.
type Result struct {
	Player string
	Score  int
	Steps  int
	Level  string
	Mode   config.Mode
	Speed  int // 1..10 slider value
	Ended  time.Time
}

// ScoreReporter persists finished runs.
type ScoreReporter interface {
	ReportScore(r Result) error
}

// Env carries the settings and collaborators a game is built with.
type Env struct {
	Settings config.Config
	Level    *engine.Level // nil selects the built-in named by Settings.Level
	Logger   *log.Logger
	Sink     EventSink
	Reporter ScoreReporter
}

// Option customises a game created with New.
type Option func(*Env)

// WithSettings overrides the settings.
func WithSettings(cfg config.Config) Option {
	return func(e *Env) { e.Settings = cfg }
}

// WithLevel starts the game on a specific level.
func WithLevel(l engine.Level) Option {
	return func(e *Env) {
		c := l.Clone()
		e.Level = &c
	}
}

// WithPlayer sets the name results are reported under.
func WithPlayer(name string) Option {
	return func(e *Env) { e.Settings.Player = name }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Env) { e.Logger = l }
}

// WithEventSink sets the event receiver.
func WithEventSink(s EventSink) Option {
	return func(e *Env) { e.Sink = s }
}

// WithReporter sets where finished runs are reported.
func WithReporter(r ScoreReporter) Option {
	return func(e *Env) { e.Reporter = r }
}

var (
	defaultsMu sync.RWMutex
	defaults   = Env{Settings: config.Default()}
)

// SetDefaults replaces the environment used by games created through the
// registry. Call it before the platform starts creating games.
func SetDefaults(env Env) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = env
}

func currentDefaults() Env {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	env := defaults
	if env.Level != nil {
		c := env.Level.Clone()
		env.Level = &c
	}
	return env
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
