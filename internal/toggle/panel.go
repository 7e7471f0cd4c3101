package toggle

import (
	"github.com/abdullathedruid/termwidget/internal/canvas"
	"github.com/abdullathedruid/termwidget/internal/ui"
)

// Panel layout columns.
const (
	panelLabelColumn = 1
	panelValueColumn = 20
	panelLockColumn  = 30

	// labels keep one blank cell before the value column
	panelLabelWidth = panelValueColumn - panelLabelColumn - 1
)

// LockedMarker is drawn after the value of a locked toggle.
const LockedMarker = "(LOCKED)"

// PanelConfig places the optional state panel. The panel is shown only
// when both Height and Width are positive.
type PanelConfig struct {
	Height int
	Width  int
	X      int
	Y      int
	Boxed  bool
	Label  string
}

// Enabled reports whether the configuration describes a panel.
func (p PanelConfig) Enabled() bool {
	return p.Height > 0 && p.Width > 0
}

// Panel is a window listing every toggle with its current value.
type Panel struct {
	canvas canvas.Canvas
	win    canvas.Window
	cfg    PanelConfig
}

// OpenPanel creates the panel window and draws its frame.
func OpenPanel(c canvas.Canvas, cfg PanelConfig) (*Panel, error) {
	win, err := c.CreateWindow(cfg.Height, cfg.Width, cfg.Y, cfg.X)
	if err != nil {
		return nil, err
	}
	p := &Panel{canvas: c, win: win, cfg: cfg}
	if err := p.frame(); err != nil {
		_ = c.DestroyWindow(win)
		return nil, err
	}
	if err := c.Refresh(win); err != nil {
		_ = c.DestroyWindow(win)
		return nil, err
	}
	return p, nil
}

// Window returns the panel window.
func (p *Panel) Window() canvas.Window {
	return p.win
}

func (p *Panel) frame() error {
	if p.cfg.Boxed {
		if err := p.canvas.DrawBox(p.win); err != nil {
			return err
		}
	}
	if p.cfg.Label != "" {
		return p.canvas.WriteAt(p.win, 0, panelLabelColumn, p.cfg.Label)
	}
	return nil
}

// Render redraws the whole panel: one row per toggle with its label, its
// value and the lock marker. Labels too wide for their column are
// truncated with an ellipsis.
func (p *Panel) Render(toggles []*Toggle) error {
	if err := p.canvas.Clear(p.win); err != nil {
		return err
	}
	if err := p.frame(); err != nil {
		return err
	}
	for i, t := range toggles {
		row := i + 1
		if err := p.canvas.WriteAt(p.win, row, panelLabelColumn, ui.Truncate(t.Label+":", panelLabelWidth)); err != nil {
			return err
		}
		if err := p.canvas.WriteAt(p.win, row, panelValueColumn, t.PanelValue()); err != nil {
			return err
		}
		if t.Locked {
			if err := p.canvas.WriteAt(p.win, row, panelLockColumn, LockedMarker); err != nil {
				return err
			}
		}
	}
	return p.canvas.Refresh(p.win)
}

// Close destroys the panel window.
func (p *Panel) Close() error {
	return p.canvas.DestroyWindow(p.win)
}
