// Package app contains the Bubbletea model that wires the VT interpreter,
// the PTY session and the chrome renderer into a running program (spec §5
// concurrency contract, §6 rendering/input contract).
package app

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justy989/cursedterm/internal/config"
	"github.com/justy989/cursedterm/internal/pty"
	"github.com/justy989/cursedterm/internal/ui"
	"github.com/justy989/cursedterm/internal/vt"
)

// frameInterval is the renderer task's tick period: 60fps, the ceiling
// spec §5 describes ("sleeps until >= 16,666 µs since last tick").
const frameInterval = 16666 * time.Microsecond

// tickMsg drives the renderer's bounded-rate repaint.
type tickMsg time.Time

// outputMsg marks new PTY output. Update accepts it as a no-op; no command
// in this package produces it, so repaints follow the frameInterval tick.
type outputMsg struct{}

// Model is the root Bubbletea model: one fixed-size grid, one child shell.
type Model struct {
	cfg  config.Config
	term *vt.Terminal
	sess *pty.Session

	width, height int
	quitting      bool

	renderer *ui.Renderer
	logger   *log.Logger
}

// New creates the Model and starts the child shell immediately, since the
// grid is created once at startup at a fixed size (spec §3 Lifecycle) and
// there is no separate "launch" step in a single-session terminal.
func New(cfg config.Config, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.Default()
	}

	ui.SetTheme(cfg.Theme)
	m := Model{cfg: cfg, logger: logger, renderer: ui.NewRenderer()}
	m.term = vt.New(vt.DefaultRows, vt.DefaultCols, nil, logger)
	m.sess = pty.New(m.term, logger)
	m.term.SetResponder(m.sess)

	if err := m.sess.Start(cfg.Shell); err != nil {
		return Model{}, err
	}

	return m, nil
}

// Init starts the renderer task's tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update processes Bubbletea messages: window resize, the render tick, and
// keyboard input (spec §5/§6).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.sess.IsRunning() && m.quitting {
			return m, tea.Quit
		}
		return m, tickCmd()

	case outputMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey implements spec §6's input contract: Ctrl+Q sets the shutdown
// flag (code 17), everything else is translated to raw bytes and written
// to the PTY (with local echo handled inside Session.WriteKey).
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isKey(msg, tea.KeyCtrlQ) {
		m.quitting = true
		m.sess.Close()
		return m, tea.Quit
	}

	data := keyToBytes(msg)
	if len(data) > 0 {
		if _, err := m.sess.WriteKey(data); err != nil {
			m.logger.Printf("[app] key write failed: %v", err)
		}
	}
	return m, nil
}

// View renders the bordered grid and status footer (spec §6 rendering
// contract).
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "initializing..."
	}

	footer := ui.FooterData{
		Shell:     m.cfg.Shell,
		Running:   m.sess.IsRunning(),
		ExitCode:  m.sess.ExitCode,
		ThemeName: m.cfg.Theme,
	}
	return ui.RenderFrame(m.renderer, m.term, footer)
}
