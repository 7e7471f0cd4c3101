package toggle

import (
	"context"

	"github.com/go-errors/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/abdullathedruid/termwidget/internal/canvas"
	"github.com/abdullathedruid/termwidget/internal/logging"
	"github.com/abdullathedruid/termwidget/internal/ui"
)

var (
	// ErrEmptyMenu is returned when a menu is built without toggles.
	ErrEmptyMenu = errors.New("toggle menu has no toggles")
	// ErrDestroyed is returned by operations on a destroyed menu.
	ErrDestroyed = errors.New("toggle menu already destroyed")
	// ErrNilMenu is returned by operations on a nil *ToggleMenu.
	ErrNilMenu = errors.New("toggle menu is nil")
	// ErrNilCanvas is returned when a menu is built without a canvas.
	ErrNilCanvas = errors.New("canvas is nil")
)

// MenuConfig configures a ToggleMenu. Zero bindings fall back to the
// defaults of DefaultMenuConfig.
type MenuConfig struct {
	X     int
	Y     int
	Boxed bool

	Quit  canvas.Binding
	Up    canvas.Binding
	Down  canvas.Binding
	Left  canvas.Binding
	Right canvas.Binding

	Panel PanelConfig

	// Logger defaults to the package logger.
	Logger *zap.Logger
}

// DefaultMenuConfig returns a boxed menu at the origin, quit on F1, arrow
// keys for navigation and no state panel.
func DefaultMenuConfig() MenuConfig {
	return MenuConfig{
		Boxed: true,
		Quit:  canvas.KeyBinding(canvas.KeyF1),
		Up:    canvas.KeyBinding(canvas.KeyUp),
		Down:  canvas.KeyBinding(canvas.KeyDown),
		Left:  canvas.KeyBinding(canvas.KeyLeft),
		Right: canvas.KeyBinding(canvas.KeyRight),
	}
}

func (c *MenuConfig) applyDefaults() {
	def := DefaultMenuConfig()
	if c.Quit.IsZero() {
		c.Quit = def.Quit
	}
	if c.Up.IsZero() {
		c.Up = def.Up
	}
	if c.Down.IsZero() {
		c.Down = def.Down
	}
	if c.Left.IsZero() {
		c.Left = def.Left
	}
	if c.Right.IsZero() {
		c.Right = def.Right
	}
	if c.Logger == nil {
		c.Logger = logging.Named("toggle")
	}
}

// ToggleMenu lists toggles in a window and lets the user select and change
// them. It owns the text fields of its field toggles.
type ToggleMenu struct {
	canvas  canvas.Canvas
	toggles []*Toggle
	cfg     MenuConfig
	log     *zap.Logger

	height int
	width  int

	selected int
	menu     *canvas.Menu
	menuWin  canvas.Window
	panel    *Panel

	destroyed bool
}

// NewMenu builds a menu over toggles. The menu is Height = len(toggles)+1
// rows by Width = widest label + 1 columns; the size is fixed at
// construction.
func NewMenu(c canvas.Canvas, toggles []*Toggle, cfg MenuConfig) (*ToggleMenu, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	if len(toggles) == 0 {
		return nil, ErrEmptyMenu
	}
	labels := make([]string, len(toggles))
	for i, t := range toggles {
		if err := t.validate(); err != nil {
			return nil, err
		}
		labels[i] = t.Label
	}
	cfg.applyDefaults()

	return &ToggleMenu{
		canvas:  c,
		toggles: toggles,
		cfg:     cfg,
		log:     cfg.Logger,
		height:  len(toggles) + 1,
		width:   ui.WidestLabel(labels) + 1,
	}, nil
}

// NewDefaultMenu builds a menu with DefaultMenuConfig.
func NewDefaultMenu(c canvas.Canvas, toggles []*Toggle) (*ToggleMenu, error) {
	return NewMenu(c, toggles, DefaultMenuConfig())
}

// Height returns the menu height.
func (m *ToggleMenu) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

// Width returns the menu width.
func (m *ToggleMenu) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

// Config returns the effective configuration.
func (m *ToggleMenu) Config() MenuConfig {
	if m == nil {
		return MenuConfig{}
	}
	return m.cfg
}

// Toggles returns the menu's toggles.
func (m *ToggleMenu) Toggles() []*Toggle {
	if m == nil {
		return nil
	}
	return m.toggles
}

// SelectedIndex returns the index of the selected toggle.
func (m *ToggleMenu) SelectedIndex() int {
	if m == nil {
		return 0
	}
	return m.selected
}

// Selected returns the selected toggle, or nil for a nil menu.
func (m *ToggleMenu) Selected() *Toggle {
	if m == nil {
		return nil
	}
	return m.toggles[m.selected]
}

func (m *ToggleMenu) check() error {
	if m == nil {
		return ErrNilMenu
	}
	if m.destroyed {
		return ErrDestroyed
	}
	return nil
}

// MoveDown selects the next toggle, wrapping from the last to the first.
func (m *ToggleMenu) MoveDown() error {
	return m.move(canvas.ReqDownItem, canvas.ReqFirstItem)
}

// MoveUp selects the previous toggle, wrapping from the first to the last.
func (m *ToggleMenu) MoveUp() error {
	return m.move(canvas.ReqUpItem, canvas.ReqLastItem)
}

func (m *ToggleMenu) move(req, wrap canvas.MenuRequest) error {
	if err := m.check(); err != nil {
		return err
	}
	if m.menu == nil {
		m.selected = step(m.selected, len(m.toggles), req)
		return nil
	}

	err := m.menu.Drive(req)
	if errors.Is(err, canvas.ErrRequestDenied) {
		err = m.menu.Drive(wrap)
	}
	if err != nil {
		return err
	}
	m.selected = m.menu.Current()
	m.log.Debug("selection moved", zap.Stringer("request", req), zap.Int("selected", m.selected))
	return nil
}

// step moves within [0, n) with wraparound, for menus not on screen.
func step(current, n int, req canvas.MenuRequest) int {
	switch req {
	case canvas.ReqDownItem:
		return (current + 1) % n
	case canvas.ReqUpItem:
		return (current - 1 + n) % n
	case canvas.ReqFirstItem:
		return 0
	case canvas.ReqLastItem:
		return n - 1
	}
	return current
}

// CycleSelected advances the selected toggle if it is an unlocked
// multi-state toggle and redraws the panel.
func (m *ToggleMenu) CycleSelected() error {
	if err := m.check(); err != nil {
		return err
	}
	t := m.Selected()
	if !t.Cycle() {
		return nil
	}
	m.log.Debug("toggle cycled", zap.String("label", t.Label), zap.String("value", t.Value()))
	return m.RenderPanel()
}

// Activate acts on the selected toggle: an unlocked boolean flips, an
// unlocked field runs its input loop until done. Other toggles are left
// alone.
func (m *ToggleMenu) Activate(ctx context.Context) error {
	if err := m.check(); err != nil {
		return err
	}
	t := m.Selected()
	if t.Locked {
		return nil
	}

	switch s := t.State.(type) {
	case *BoolState:
		t.Flip()
		m.log.Debug("toggle flipped", zap.String("label", t.Label), zap.Bool("on", s.On))
		return m.RenderPanel()
	case *FieldState:
		m.log.Debug("editing field", zap.String("label", t.Label))
		if err := s.Field.Use(ctx); err != nil {
			return errors.WrapPrefix(err, t.Label, 0)
		}
		if err := m.redrawMenu(); err != nil {
			return err
		}
		return m.RenderPanel()
	}
	return nil
}

// RenderPanel redraws the state panel. It does nothing while the menu is
// not running or has no panel.
func (m *ToggleMenu) RenderPanel() error {
	if m == nil || m.panel == nil {
		return nil
	}
	return m.panel.Render(m.toggles)
}

func (m *ToggleMenu) redrawMenu() error {
	if m.menu == nil {
		return nil
	}
	if m.cfg.Boxed {
		if err := m.canvas.DrawBox(m.menuWin); err != nil {
			return err
		}
	}
	return m.menu.Post()
}

// Run shows the menu, and the panel when configured, and handles keys
// until the quit key is read. Windows are destroyed on every return path.
// Read failures are returned wrapped; match them with the go-errors
// errors.Is, since *errors.Error has no Unwrap for the standard library's
// errors.Is. When closing the windows also fails, the errors are combined
// with multierr; use multierr.Errors to inspect each one.
func (m *ToggleMenu) Run(ctx context.Context) (err error) {
	if err := m.check(); err != nil {
		return err
	}

	if m.cfg.Panel.Enabled() {
		panel, err := OpenPanel(m.canvas, m.cfg.Panel)
		if err != nil {
			return errors.WrapPrefix(err, "creating state panel", 0)
		}
		m.panel = panel
		defer func() {
			err = multierr.Append(err, m.panel.Close())
			m.panel = nil
		}()
	}

	if err := m.open(); err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, m.close())
	}()

	if err := m.RenderPanel(); err != nil {
		return err
	}

	m.log.Debug("menu running", zap.Int("toggles", len(m.toggles)))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := m.canvas.ReadKey(m.menuWin)
		if err != nil {
			return errors.WrapPrefix(err, "toggle menu input", 0)
		}

		switch {
		case m.cfg.Quit.Matches(ev):
			m.log.Debug("menu quit", zap.Int("selected", m.selected))
			return nil
		case m.cfg.Down.Matches(ev):
			err = m.MoveDown()
		case m.cfg.Up.Matches(ev):
			err = m.MoveUp()
		case m.cfg.Left.Matches(ev), m.cfg.Right.Matches(ev):
			err = m.CycleSelected()
		case ev.IsTerminator():
			err = m.Activate(ctx)
		}
		if err != nil {
			return err
		}
	}
}

// menuGeometry returns the window size and item origin. An unboxed menu
// window is Height x Width. A boxed one grows by one cell each way so the
// border surrounds every item: len(toggles) rows of the widest label.
func (m *ToggleMenu) menuGeometry() (height, width, origin int) {
	if m.cfg.Boxed {
		return m.height + 1, m.width + 1, 1
	}
	return m.height, m.width, 0
}

func (m *ToggleMenu) open() error {
	height, width, origin := m.menuGeometry()
	win, err := m.canvas.CreateWindow(height, width, m.cfg.Y, m.cfg.X)
	if err != nil {
		return errors.WrapPrefix(err, "creating menu window", 0)
	}

	labels := make([]string, len(m.toggles))
	for i, t := range m.toggles {
		labels[i] = t.Label
	}
	rows := height - 2*origin
	cols := width - 2*origin
	menu, err := canvas.NewMenu(m.canvas, win, labels, rows, cols)
	if err != nil {
		_ = m.canvas.DestroyWindow(win)
		return err
	}
	menu.SetOrigin(origin, origin)
	if err := menu.SetCurrent(m.selected); err != nil {
		_ = m.canvas.DestroyWindow(win)
		return err
	}

	m.menuWin = win
	m.menu = menu
	if err := m.redrawMenu(); err != nil {
		return multierr.Append(err, m.close())
	}
	return nil
}

func (m *ToggleMenu) close() error {
	if m.menu == nil {
		return nil
	}
	err := m.menu.Unpost()
	err = multierr.Append(err, m.canvas.DestroyWindow(m.menuWin))
	m.menu = nil
	m.menuWin = canvas.NoWindow
	return err
}

// Destroy destroys the text fields of all field toggles. Every field is
// attempted; failures are combined.
func (m *ToggleMenu) Destroy() error {
	if err := m.check(); err != nil {
		return err
	}
	m.destroyed = true

	var err error
	for _, t := range m.toggles {
		s, ok := t.State.(*FieldState)
		if !ok || s.Field.Destroyed() {
			continue
		}
		if ferr := s.Field.Destroy(); ferr != nil {
			err = multierr.Append(err, errors.WrapPrefix(ferr, t.Label, 0))
		}
	}
	m.log.Debug("menu destroyed")
	return err
}
