package canvas

import "github.com/abdullathedruid/termwidget/internal/ui"

// MenuRequest is a navigation request passed to Menu.Drive.
type MenuRequest int

const (
	ReqUpItem MenuRequest = iota
	ReqDownItem
	ReqFirstItem
	ReqLastItem
)

// String returns the request name.
func (r MenuRequest) String() string {
	switch r {
	case ReqUpItem:
		return "up"
	case ReqDownItem:
		return "down"
	case ReqFirstItem:
		return "first"
	case ReqLastItem:
		return "last"
	default:
		return "unknown"
	}
}

// Menu lists selectable items inside a window and tracks the current one.
// Items are drawn one per row starting at the menu origin; the current item
// is drawn reverse-video. When there are more items than rows the list
// scrolls to keep the current item visible.
type Menu struct {
	canvas  Canvas
	win     Window
	items   []string
	current int
	top     int
	originY int
	originX int
	rows    int
	cols    int
	posted  bool
}

// NewMenu creates a menu over items drawn in win, occupying rows x cols
// cells from the window's top-left corner.
func NewMenu(c Canvas, win Window, items []string, rows, cols int) (*Menu, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return &Menu{
		canvas: c,
		win:    win,
		items:  items,
		rows:   max(rows, 1),
		cols:   cols,
	}, nil
}

// SetOrigin moves the menu's first row and column within the window, for
// example to sit inside a border.
func (m *Menu) SetOrigin(y, x int) {
	m.originY = y
	m.originX = x
}

// Current returns the index of the current item.
func (m *Menu) Current() int {
	return m.current
}

// Len returns the number of items.
func (m *Menu) Len() int {
	return len(m.items)
}

// SetCurrent selects item i, scrolling it into view. An index outside the
// item list returns ErrRequestDenied.
func (m *Menu) SetCurrent(i int) error {
	if i < 0 || i >= len(m.items) {
		return ErrRequestDenied
	}
	m.current = i
	m.scroll()
	if !m.posted {
		return nil
	}
	return m.draw()
}

// Post draws the menu and refreshes the window.
func (m *Menu) Post() error {
	m.posted = true
	return m.draw()
}

// Unpost blanks the menu area.
func (m *Menu) Unpost() error {
	if !m.posted {
		return nil
	}
	m.posted = false
	blank := ui.PadRight("", m.cols)
	for row := 0; row < m.rows; row++ {
		if err := m.canvas.WriteAt(m.win, m.originY+row, m.originX, blank); err != nil {
			return err
		}
	}
	return m.canvas.Refresh(m.win)
}

// Drive applies a navigation request. Moving up from the first item or
// down from the last returns ErrRequestDenied and leaves the selection
// unchanged.
func (m *Menu) Drive(req MenuRequest) error {
	next := m.current
	switch req {
	case ReqUpItem:
		if m.current == 0 {
			return ErrRequestDenied
		}
		next--
	case ReqDownItem:
		if m.current == len(m.items)-1 {
			return ErrRequestDenied
		}
		next++
	case ReqFirstItem:
		next = 0
	case ReqLastItem:
		next = len(m.items) - 1
	default:
		return ErrRequestDenied
	}
	m.current = next
	m.scroll()
	if !m.posted {
		return nil
	}
	return m.draw()
}

func (m *Menu) scroll() {
	if m.current < m.top {
		m.top = m.current
	}
	if m.current >= m.top+m.rows {
		m.top = m.current - m.rows + 1
	}
}

func (m *Menu) draw() error {
	for row := 0; row < m.rows; row++ {
		idx := m.top + row
		text := ""
		if idx < len(m.items) {
			text = m.items[idx]
		}
		text = ui.PadRight(text, m.cols)
		style := StyleNormal
		if idx == m.current {
			style = StyleReverse
		}
		if err := m.canvas.WriteStyled(m.win, m.originY+row, m.originX, text, style); err != nil {
			return err
		}
	}
	return m.canvas.Refresh(m.win)
}
