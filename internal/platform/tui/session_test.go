package tui

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gunsnake/internal/core"
	"github.com/vovakirdan/gunsnake/internal/registry"
)

type fakeGame struct {
	steps  int
	resets int
	w, h   int
	last   core.InputFrame
	fault  error
	state  core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Resize(w, h int) { g.w, g.h = w, h }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Err() error { return g.fault }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.state}
}

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: core.FastTickRate, Seed: 1}
}

func TestModelForwardsInput(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())
	m.Init()
	if g.resets != 1 || g.h != 23 {
		t.Fatalf("reset %d times with height %d; want 1, 23", g.resets, g.h)
	}

	next, _ := m.Update(runeKey('f'))
	next, cmd := next.Update(TickMsg{})
	if !g.last.Has(core.ActionFire) {
		t.Error("fire action not forwarded")
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	next.Update(TickMsg{})
	if g.last.Has(core.ActionFire) {
		t.Error("input should be cleared after a step")
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.w != 100 || g.h != 39 {
		t.Errorf("game size = %dx%d, want 100x39", g.w, g.h)
	}
	if g.resets != 1 {
		t.Error("resize must not reset the game")
	}
}

func TestModelQuitsOnFault(t *testing.T) {
	fault := errors.New("broken body")
	g := &fakeGame{fault: fault}
	m := NewModel(g, testConfig())
	m.Init()

	next, _ := m.Update(TickMsg{})
	if !errors.Is(next.(Model).Err(), fault) {
		t.Errorf("Err() = %v, want fault", next.(Model).Err())
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should quit on a game fault")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	var created []string
	factory := func(mode, player string) (registry.Game, error) {
		created = append(created, mode+"/"+player)
		return &fakeGame{state: core.GameState{GameOver: true}}, nil
	}
	var m tea.Model = NewSessionModel(nil, factory, testConfig(), "bob", log.New(io.Discard))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := m.(SessionModel)
	if s.current != screenGame {
		t.Fatalf("screen = %v, want game", s.current)
	}
	if len(created) != 1 || created[0] != "fake/bob" {
		t.Errorf("created = %v", created)
	}

	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(runeKey('b'))
	if m.(SessionModel).current != screenMenu {
		t.Error("b after game over should return to the menu")
	}
}

func TestSessionScoreboardWithoutStore(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, nil, testConfig(), "bob", log.New(io.Discard))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).current != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard view should not be empty")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).current != screenMenu {
		t.Error("esc should return to the menu")
	}
}
