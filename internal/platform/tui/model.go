package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// helpBarHeight is the row kept free under the board for the key help.
const helpBarHeight = 1

// resizer is implemented by games that can follow a terminal resize without
// starting over.
type resizer interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	sessionID  string
	player     string
	embedded   bool // hosted by SessionModel: Back returns to the menu instead of quitting
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for the current game
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     log.New(io.Discard),
		sessionID:  storage.NewSessionID(),
	}
}

// WithLogger sets the logger used for score-save failures and session events.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// WithPlayer sets the name stored with scores.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// WithSessionID groups the scores of this model with other games of the same
// play session.
func (m Model) WithSessionID(id string) Model {
	if id != "" {
		m.sessionID = id
	}
	return m
}

// SessionID returns the play session identifier stored with every score.
func (m Model) SessionID() string {
	return m.sessionID
}

func boardHeight(screenH int) int {
	return core.Max(screenH-helpBarHeight, 1)
}

// gameConfig is the runtime config as seen by the game: the help bar is not
// part of its screen.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = boardHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Debug("game started", "game", m.game.ID(), "session", m.sessionID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Quit):
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Back) && (m.gameState.GameOver || m.gameState.Paused):
		m.saveScore()
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, boardHeight(msg.Height))
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the current result once per game. Empty games are not
// recorded.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	state := m.game.State()
	if state.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	entry := storage.ScoreEntry{
		SessionID: m.sessionID,
		GameID:    m.game.ID(),
		Player:    m.player,
		Score:     state.Score,
		Moves:     state.Moves,
		Level:     state.Level,
		Won:       state.Won,
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Error("could not save score", "game", entry.GameID, "score", entry.Score, "error", err)
		return
	}
	m.logger.Info("score saved", "game", entry.GameID, "player", entry.Player, "score", entry.Score, "moves", entry.Moves)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".match3", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	board := RenderScreen(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpView := helpStyle.Render(m.help.View(m.keyMapper.Keys()))

	// Full help grows upwards over the bottom rows of the board.
	if extra := strings.Count(helpView, "\n"); extra > 0 {
		lines := strings.Split(board, "\n")
		if extra < len(lines) {
			lines = lines[:len(lines)-extra]
		}
		board = strings.Join(lines, "\n")
	}

	return board + "\n" + helpView
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// RunOptions carries the per-session settings of a local game.
type RunOptions struct {
	Logger    *log.Logger
	SessionID string
	Player    string // defaults to the OS user
}

// Run starts the Bubble Tea program for one game. It reports whether the
// player asked to go back to the menu rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts RunOptions) (bool, error) {
	if opts.Player == "" {
		opts.Player = localPlayer()
	}
	model := NewModel(game, store, cfg).
		WithLogger(opts.Logger).
		WithPlayer(opts.Player).
		WithSessionID(opts.SessionID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}

// localPlayer returns the OS user name for locally stored scores.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}
