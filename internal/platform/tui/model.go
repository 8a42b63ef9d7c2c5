package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarpushin/twinstep/internal/config"
	"github.com/mkarpushin/twinstep/internal/core"
	"github.com/mkarpushin/twinstep/internal/game"
	"github.com/mkarpushin/twinstep/internal/storage"
)

// Model is the Bubble Tea model driving a play session.
type Model struct {
	session     *game.Session
	screen      *core.Screen
	store       *storage.Store
	cfg         config.Config
	keys        KeyMap
	help        help.Model
	catalogSize int

	levelStart time.Time
	winTicks   int // Countdown before the win auto-acknowledges
	winMoves   int
	bestMoves  int
	hasBest    bool
	quitting   bool
	err        error
}

// NewModel creates a play model over the given catalog. The session starts
// on the level at startIndex (wrapped modulo catalog size).
func NewModel(catalog []game.Definition, startIndex int, store *storage.Store, cfg config.Config, width, height int) (Model, error) {
	session, err := game.NewSession(catalog)
	if err != nil {
		return Model{}, err
	}
	session.SetInputLock(cfg.Input.Lock)

	m := Model{
		session:     session,
		screen:      core.NewScreen(width, height),
		store:       store,
		cfg:         cfg,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		catalogSize: len(catalog),
	}

	events, err := session.Load(startIndex)
	if err != nil {
		return Model{}, err
	}
	m.processEvents(events)

	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Timing.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		events, err := m.session.Load(m.session.Index())
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.processEvents(events)
		return m, nil
	}

	cmd := m.keys.Command(msg)
	if cmd == core.CmdNone {
		return m, nil
	}

	events, err := m.session.Apply(cmd)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.processEvents(events)

	return m, nil
}

// handleTick runs timed transitions: releasing the input lock after a move
// and auto-acknowledging the win banner after the configured delay.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.State() == game.StateAnimating {
		m.session.AnimationDone()
	}

	if m.session.State() == game.StateWinning && m.winTicks > 0 {
		m.winTicks--
		if m.winTicks == 0 {
			events, err := m.session.Apply(core.CmdAckWin)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.processEvents(events)
		}
	}

	return m, tickCmd(m.cfg.Timing.TickRate)
}

// processEvents reacts to engine events: resetting per-level bookkeeping on
// load and persisting completions on a win.
func (m *Model) processEvents(events []core.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case core.LevelLoaded:
			m.levelStart = time.Now()
			m.winTicks = 0
			m.loadBest(ev.ID)

		case core.WinTriggered:
			m.winMoves = ev.Moves
			m.winTicks = m.cfg.Timing.WinDelayTicks
			m.saveCompletion(ev.Moves)
		}
	}
}

func (m *Model) loadBest(levelID string) {
	m.bestMoves, m.hasBest = 0, false
	if m.store == nil {
		return
	}
	if best, ok, err := m.store.BestMoves(levelID); err == nil {
		m.bestMoves, m.hasBest = best, ok
	}
}

func (m *Model) saveCompletion(moves int) {
	if m.store == nil {
		return
	}
	duration := int(time.Since(m.levelStart).Seconds())
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveCompletion(m.session.Definition().ID, moves, duration)
	if !m.hasBest || moves < m.bestMoves {
		m.bestMoves, m.hasBest = moves, true
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.err != nil {
		return ""
	}

	m.screen.Clear()

	def := m.session.Definition()
	header := fmt.Sprintf("%s (%d/%d)  moves: %d", def.Name, m.session.Index()+1, m.catalogSize, m.session.Moves())
	if m.hasBest {
		header += fmt.Sprintf("  best: %d", m.bestMoves)
	}
	m.screen.DrawTextCentered(1, header)

	drawBoard(m.screen, m.session.Board(), m.session.Pair(), m.cfg.Render.ShowHazards, m.cfg.Render.CellSpacing)

	if m.session.State() == game.StateWinning {
		banner := fmt.Sprintf("*** LEVEL COMPLETE in %d moves ***", m.winMoves)
		m.screen.DrawTextCentered(m.screen.Height()-4, banner)
	}

	view := RenderScreen(m.screen)
	return view + "\n" + m.help.View(m.keys)
}

// Err returns the fatal error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program with the given model.
func Run(catalog []game.Definition, startIndex int, store *storage.Store, cfg config.Config, width, height int) error {
	model, err := NewModel(catalog, startIndex, store, cfg, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
