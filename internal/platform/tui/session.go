package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gunsnake/internal/config"
	"github.com/vovakirdan/gunsnake/internal/core"
	"github.com/vovakirdan/gunsnake/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel drives menu, game and scoreboard for one SSH connection.
type SessionModel struct {
	store    *storage.Store
	newGame  GameFactory
	config   core.RuntimeConfig
	username string
	logger   *log.Logger

	current  sessionScreen
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	lastMode config.Mode
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, newGame GameFactory, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	return SessionModel{
		store:    store,
		newGame:  newGame,
		config:   cfg,
		username: username,
		logger:   logger,
		menu:     NewMenuModel(cfg.ScreenW, cfg.ScreenH),
		lastMode: config.ModeClassic,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}
	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.lastMode, m.config.ScreenW, m.config.ScreenH)
		m.current = screenScores
		return m, m.scores.Init()
	case m.menu.Selected() != nil:
		mode := m.menu.Selected().ID
		g, err := m.newGame(mode, m.username)
		if err != nil {
			m.logger.Error("cannot create game", "mode", mode, "err", err)
			m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}
		m.lastMode = config.Mode(mode)
		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		m.game = NewModel(g, cfg)
		m.game.embedded = true
		m.current = screenGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	if err := m.game.Err(); err != nil {
		m.logger.Error("game aborted", "user", m.username, "err", err)
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.showMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.showMenu()
	}
	return m, cmd
}

func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession runs the menu, game and scoreboard flow in the current terminal.
func RunSession(store *storage.Store, newGame GameFactory, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	p := tea.NewProgram(NewSessionModel(store, newGame, cfg, player, logger), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(SessionModel); ok && m.current == screenGame {
		return m.game.Err()
	}
	return nil
}
