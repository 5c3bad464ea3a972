// Package tui provides the Bubble Tea drawing surface.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verte-zerg/tuircle/internal/canvas"
	"github.com/verte-zerg/tuircle/internal/capture"
	"github.com/verte-zerg/tuircle/internal/engine"
	"github.com/verte-zerg/tuircle/internal/i18n"
	"github.com/verte-zerg/tuircle/internal/model"
	"github.com/verte-zerg/tuircle/internal/share"
	"github.com/verte-zerg/tuircle/internal/snapshot"
)

const (
	// DefaultGridSize is the grid spacing in braille dots.
	DefaultGridSize = 8

	// headerRows is the number of rows above the drawing surface.
	headerRows = 1
	// footerRows is the number of rows below the drawing surface.
	footerRows = 1
	// dotPixels is the snapshot size of one braille dot in logical pixels.
	dotPixels = 5
)

// Options configure the drawing UI.
type Options struct {
	Localizer   *i18n.Localizer
	Logger      *zap.Logger
	Clipboard   share.Clipboard
	ShowGrid    bool
	GridSize    int
	ShareLink   string
	SnapshotDir string
	// Stats is the session stats value handed to the engine. It may be nil.
	Stats *model.SessionStats
}

// Model implements the Bubble Tea drawing UI. It is the engine's renderer:
// the engine pushes a frame after every change and View paints the last one.
type Model struct {
	machine     *engine.Machine
	frame       engine.Frame
	loc         *i18n.Localizer
	log         *zap.Logger
	clipboard   share.Clipboard
	gridSize    int
	snapshotDir string

	keys keyMap
	help help.Model

	width  int
	height int

	sharing bool
	status  string
	failed  bool
}

// NewModel constructs the drawing UI and its engine.
func NewModel(opts Options) *Model {
	if opts.Localizer == nil {
		opts.Localizer = i18n.New(i18n.DefaultLocale)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = share.SystemClipboard{}
	}
	if opts.GridSize <= 0 {
		opts.GridSize = DefaultGridSize
	}
	m := &Model{
		loc:         opts.Localizer,
		log:         opts.Logger,
		clipboard:   opts.Clipboard,
		gridSize:    opts.GridSize,
		snapshotDir: opts.SnapshotDir,
		keys:        newKeyMap(opts.Localizer),
		help:        help.New(),
	}
	m.machine = engine.New(
		engine.WithRenderer(m),
		engine.WithLogger(opts.Logger),
		engine.WithStats(opts.Stats),
		engine.WithGrid(opts.ShowGrid),
		engine.WithShareLink(opts.ShareLink),
	)
	m.Render(m.machine.Frame())
	return m
}

// Render implements engine.Renderer.
func (m *Model) Render(f engine.Frame) {
	m.frame = f
	m.syncKeys()
}

// Stats returns the session stats collected so far.
func (m *Model) Stats() model.SessionStats {
	return m.machine.Stats()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.MouseMsg:
		if ev, ok := m.pointerEvent(msg); ok {
			if m.machine.Handle(ev) && ev.Kind == engine.PointerDown {
				m.status = ""
			}
		}
		return m, nil
	case tea.BlurMsg:
		m.machine.Handle(engine.Event{Kind: engine.PointerCancel, Contact: capture.AnyContact})
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.sharing = false
		m.syncKeys()
	case key.Matches(msg, m.keys.Clear):
		m.status = ""
		m.machine.Clear()
	case key.Matches(msg, m.keys.Grid):
		m.machine.ToggleGrid()
	case key.Matches(msg, m.keys.Share):
		m.sharing = true
		m.syncKeys()
	case key.Matches(msg, m.keys.Copy):
		m.copyLink()
	case key.Matches(msg, m.keys.Snapshot):
		m.saveSnapshot()
	}
	return nil
}

// pointerEvent maps a terminal mouse event to an engine event. Mouse buttons
// are separate contacts and the wheel is ignored.
func (m *Model) pointerEvent(msg tea.MouseMsg) (engine.Event, bool) {
	if tea.MouseEvent(msg).IsWheel() {
		return engine.Event{}, false
	}
	contact, known := buttonContact(msg.Button)
	pos, inside := m.surfacePoint(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if !known || !inside {
			return engine.Event{}, false
		}
		return engine.Event{Kind: engine.PointerDown, Contact: contact, Pos: pos, HasPos: true}, true
	case tea.MouseActionMotion:
		if !known {
			contact = capture.AnyContact
		}
		return engine.Event{Kind: engine.PointerMove, Contact: contact, Pos: pos, HasPos: inside}, true
	case tea.MouseActionRelease:
		if !known {
			contact = capture.AnyContact
		}
		return engine.Event{Kind: engine.PointerUp, Contact: contact}, true
	default:
		return engine.Event{}, false
	}
}

func buttonContact(b tea.MouseButton) (capture.Contact, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return capture.Primary, true
	case tea.MouseButtonMiddle:
		return capture.Primary + 1, true
	case tea.MouseButtonRight:
		return capture.Primary + 2, true
	default:
		return capture.AnyContact, false
	}
}

// surfacePoint maps a terminal cell to the center of its braille dot block,
// in dot units. Dots are roughly square so circles keep their shape.
func (m *Model) surfacePoint(col, row int) (model.Point, bool) {
	cols, rows := m.surfaceSize()
	row -= headerRows
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return model.Point{}, false
	}
	return model.Pt(
		float64(col*canvas.DotsPerCellX)+float64(canvas.DotsPerCellX-1)/2,
		float64(row*canvas.DotsPerCellY)+float64(canvas.DotsPerCellY-1)/2,
	), true
}

// surfaceSize returns the drawing surface size in cells.
func (m *Model) surfaceSize() (int, int) {
	rows := m.height - headerRows - footerRows
	if rows < 1 {
		rows = 1
	}
	cols := m.width
	if cols < 1 {
		cols = 1
	}
	return cols, rows
}

func (m *Model) copyLink() {
	payload, ok := m.machine.Share()
	if !ok {
		return
	}
	if err := share.CopyLink(m.clipboard, payload); err != nil {
		m.log.Warn("copy link failed", zap.Error(err))
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(m.loc.T(i18n.KeyCopied), false)
}

func (m *Model) saveSnapshot() {
	if m.snapshotDir == "" {
		m.setStatus(m.loc.T(i18n.KeyNoSnapshotDir), true)
		return
	}
	cols, rows := m.surfaceSize()
	f := m.frame
	f.Points = make([]model.Point, len(m.frame.Points))
	for i, p := range m.frame.Points {
		f.Points[i] = p.Scale(dotPixels)
	}
	opts := snapshot.Options{
		Width:       cols * canvas.DotsPerCellX * dotPixels,
		Height:      rows * canvas.DotsPerCellY * dotPixels,
		Scale:       1,
		GridSpacing: m.gridSize * dotPixels,
	}
	path, err := snapshot.Save(m.snapshotDir, f, m.loc, opts)
	if err != nil {
		m.log.Warn("snapshot failed", zap.Error(err))
		m.setStatus(err.Error(), true)
		return
	}
	m.log.Info("snapshot saved", zap.String("path", path))
	m.setStatus(path, false)
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

// syncKeys enables the bindings that make sense for the current frame.
func (m *Model) syncKeys() {
	evaluated := m.frame.Result != nil
	if !evaluated {
		m.sharing = false
	}
	m.keys.Share.SetEnabled(evaluated && !m.sharing)
	m.keys.Copy.SetEnabled(evaluated)
	m.keys.Close.SetEnabled(m.sharing)
	m.keys.Clear.SetEnabled(!m.sharing)

	clearKey := i18n.KeyClear
	if evaluated {
		clearKey = i18n.KeyTryAgain
	}
	m.keys.Clear.SetHelp("c", m.loc.T(clearKey))
	gridKey := i18n.KeyShowGrid
	if m.frame.ShowGrid {
		gridKey = i18n.KeyHideGrid
	}
	m.keys.Grid.SetHelp("g", m.loc.T(gridKey))
}
