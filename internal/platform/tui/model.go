package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridtris/internal/config"
	"github.com/vovakirdan/gridtris/internal/core"
	"github.com/vovakirdan/gridtris/internal/games/tetris"
	"github.com/vovakirdan/gridtris/internal/grid"
)

// Options configures a Model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Source  Source
	Logger  *log.Logger

	// SnapshotDir is where ctrl+s writes. Defaults to ~/.gridtris/snapshots.
	SnapshotDir string
}

// Model is the Bubble Tea model hosting one game session at a time.
type Model struct {
	opts     Options
	keys     GameKeyMap
	help     help.Model
	screen   *core.Screen
	renderer grid.Renderer
	session  *tetris.Session
	gen      int  // Bumped on reload; ticks from older sessions are dropped
	flashing bool // Whether a flash tick is scheduled
	status   string
	quitting bool
}

// NewModel creates a model and starts its first session.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	keys, err := NewGameKeyMap(opts.Config)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		opts:   opts,
		keys:   keys,
		help:   help.New(),
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
	m.help.Width = opts.Runtime.ScreenW

	if err := m.startSession(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startSession opens the source and starts a fresh session on it.
func (m *Model) startSession() error {
	r, err := m.opts.Source.Open()
	if err != nil {
		return err
	}

	m.renderer = r
	m.session = tetris.NewSession(r, m.opts.Config, m.opts.Runtime, m.opts.Logger)
	m.session.Start()
	m.gen++
	m.flashing = false
	return nil
}

// Session returns the running session.
func (m Model) Session() *tetris.Session {
	return m.session
}

// Init starts the advance timer.
func (m Model) Init() tea.Cmd {
	return advanceCmd(m.opts.Config.Timing.AdvanceInterval, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case AdvanceMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.session.Advance()
		return m, tea.Batch(
			advanceCmd(m.opts.Config.Timing.AdvanceInterval, m.gen),
			m.startFlash(),
		)

	case FlashMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		if m.session.Flash() {
			return m, flashCmd(m.opts.Config.Timing.FlashInterval, m.gen)
		}
		m.flashing = false
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Every key is consumed here; keys
// without a binding do nothing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		path, err := m.saveSnapshot()
		if err != nil {
			m.status = "snapshot failed: " + err.Error()
			m.opts.Logger.Warn("snapshot failed", "error", err)
		} else {
			m.status = "saved " + path
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if err := m.startSession(); err != nil {
			m.status = "reload failed: " + err.Error()
			m.opts.Logger.Error("reload failed", "error", err)
			return m, nil
		}
		m.status = ""
		return m, advanceCmd(m.opts.Config.Timing.AdvanceInterval, m.gen)
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.session.Apply(a)
		return m, m.startFlash()
	}
	return m, nil
}

// startFlash starts the flash timer if the session has columns to flash
// and the timer is not already running.
func (m *Model) startFlash() tea.Cmd {
	if m.flashing || !m.session.Animating() {
		return nil
	}
	m.flashing = true
	return flashCmd(m.opts.Config.Timing.FlashInterval, m.gen)
}

// WriteSnapshot writes the board as the host would show it: the page HTML
// when playing on a page, the screen text otherwise.
func (m Model) WriteSnapshot(w io.Writer) error {
	if p, ok := m.renderer.(*grid.Page); ok {
		return p.Render(w)
	}
	m.draw()
	_, err := io.WriteString(w, m.screen.String())
	return err
}

func (m Model) snapshotExt() string {
	if _, ok := m.renderer.(*grid.Page); ok {
		return "html"
	}
	return "txt"
}

// saveSnapshot writes a snapshot into the snapshot directory.
func (m Model) saveSnapshot() (string, error) {
	dir := m.opts.SnapshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".gridtris", "snapshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create snapshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_%s.%s", m.session.ID()[:8], timestamp, m.snapshotExt())
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("tui: cannot create snapshot: %w", err)
	}
	defer f.Close()

	if err := m.WriteSnapshot(f); err != nil {
		return "", err
	}
	return path, nil
}

// draw renders the session into the screen buffer.
func (m Model) draw() {
	scr := m.screen
	scr.Clear()

	layout := m.session.Board().Layout()
	w, h := boardSize(layout)
	if scr.Width() < w || scr.Height() < h+3 {
		scr.DrawTextCentered(scr.Height()/2, "Terminal too small", core.ColorAlert)
		scr.DrawTextCentered(scr.Height()/2+1, fmt.Sprintf("need %dx%d", w, h+3), core.ColorMuted)
		return
	}

	x := (scr.Width() - w) / 2
	y := max(0, (scr.Height()-h-3)/2)

	snap := m.session.Snapshot()
	scr.DrawTextColored(x, y, "gridtris", core.ColorAccent)
	header := fmt.Sprintf("%s · %s", m.opts.Config.Variant, m.opts.Source.Name)
	scr.DrawTextColored(x+w-len([]rune(header)), y, header, core.ColorMuted)

	drawBoard(scr, m.session.Board(), core.Point{X: x, Y: y + 1})

	status := fmt.Sprintf("pieces %d  landed %d  cleared %d", snap.Spawned, snap.Landed, snap.Cleared)
	if m.status != "" {
		status = m.status
	}
	scr.DrawTextColored(x, y+h+1, status, core.ColorMuted)

	if m.session.Over() {
		drawModal(scr, "Game Over!", "ctrl+r reload   esc quit")
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until it exits. When
// savePath is set, the final board is written there.
func Run(opts Options, savePath string) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if savePath == "" {
		return nil
	}
	m, ok := final.(Model)
	if !ok {
		return nil
	}
	f, err := os.Create(savePath)
	if err != nil {
		return fmt.Errorf("tui: cannot create %s: %w", savePath, err)
	}
	defer f.Close()
	return m.WriteSnapshot(f)
}
