package canvas

import (
	"strings"
	"time"
)

type memCell struct {
	ch    rune
	style Style
}

// Memory is a Canvas backed by an in-process cell grid. Key events come
// from a queue filled with Feed or Type; once the queue is empty ReadKey
// returns ErrClosed. Pause records the duration without sleeping.
type Memory struct {
	width, height int
	cells         [][]memCell
	windows       windowTable
	keys          []KeyEvent
	pauses        []time.Duration
	refreshes     int
}

// NewMemory creates a blank memory canvas of the given size.
func NewMemory(width, height int) *Memory {
	m := &Memory{
		width:   width,
		height:  height,
		windows: newWindowTable(),
	}
	m.cells = make([][]memCell, height)
	for y := range m.cells {
		m.cells[y] = make([]memCell, width)
		for x := range m.cells[y] {
			m.cells[y][x] = memCell{ch: ' '}
		}
	}
	return m
}

// Feed appends key events to the input queue.
func (m *Memory) Feed(events ...KeyEvent) {
	m.keys = append(m.keys, events...)
}

// Type queues one rune event per character of s. A newline is queued as
// KeyEnter.
func (m *Memory) Type(s string) {
	for _, r := range s {
		if r == '\n' {
			m.Feed(KeyPress(KeyEnter))
			continue
		}
		m.Feed(RuneEvent(r))
	}
}

// Pending returns the number of queued key events not yet read.
func (m *Memory) Pending() int {
	return len(m.keys)
}

// Pauses returns the durations passed to Pause, in call order.
func (m *Memory) Pauses() []time.Duration {
	return append([]time.Duration(nil), m.pauses...)
}

// Refreshes returns how many times Refresh succeeded.
func (m *Memory) Refreshes() int {
	return m.refreshes
}

// OpenWindows returns the number of windows not yet destroyed.
func (m *Memory) OpenWindows() int {
	return m.windows.open()
}

// Row returns surface row y with trailing blanks removed.
func (m *Memory) Row(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	return rowString(m.cells[y], 0, m.width)
}

// WindowRow returns row y of a window, relative to the window, with
// trailing blanks removed.
func (m *Memory) WindowRow(w Window, y int) (string, error) {
	r, err := m.windows.lookup(w)
	if err != nil {
		return "", err
	}
	ay := r.y + y
	if y < 0 || y >= r.height || ay >= m.height {
		return "", nil
	}
	end := min(r.x+r.width, m.width)
	return rowString(m.cells[ay], r.x, end), nil
}

// StyleAt returns the style of the cell at absolute (x, y).
func (m *Memory) StyleAt(x, y int) Style {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return StyleNormal
	}
	return m.cells[y][x].style
}

// String returns the whole surface, one line per row.
func (m *Memory) String() string {
	lines := make([]string, m.height)
	for y := range lines {
		lines[y] = m.Row(y)
	}
	return strings.Join(lines, "\n")
}

func rowString(row []memCell, start, end int) string {
	var sb strings.Builder
	for x := start; x < end; x++ {
		if row[x].ch == 0 {
			continue
		}
		sb.WriteRune(row[x].ch)
	}
	return strings.TrimRight(sb.String(), " ")
}

func (m *Memory) set(x, y int, r rune, style Style) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.cells[y][x] = memCell{ch: r, style: style}
}

func (m *Memory) Size() (int, int) {
	return m.width, m.height
}

func (m *Memory) CreateWindow(height, width, y, x int) (Window, error) {
	return m.windows.create(height, width, y, x)
}

func (m *Memory) DestroyWindow(w Window) error {
	r, err := m.windows.remove(w)
	if err != nil {
		return err
	}
	fillRect(r, m.set)
	return nil
}

func (m *Memory) Clear(w Window) error {
	r, err := m.windows.lookup(w)
	if err != nil {
		return err
	}
	fillRect(r, m.set)
	return nil
}

func (m *Memory) DrawBox(w Window) error {
	r, err := m.windows.lookup(w)
	if err != nil {
		return err
	}
	drawBox(r, m.set)
	return nil
}

func (m *Memory) WriteAt(w Window, y, x int, text string) error {
	return m.WriteStyled(w, y, x, text, StyleNormal)
}

func (m *Memory) WriteStyled(w Window, y, x int, text string, style Style) error {
	r, err := m.windows.lookup(w)
	if err != nil {
		return err
	}
	writeText(r, y, x, text, style, m.set)
	return nil
}

func (m *Memory) Refresh(w Window) error {
	if _, err := m.windows.lookup(w); err != nil {
		return err
	}
	m.refreshes++
	return nil
}

func (m *Memory) ReadKey(w Window) (KeyEvent, error) {
	if _, err := m.windows.lookup(w); err != nil {
		return KeyEvent{}, err
	}
	if len(m.keys) == 0 {
		return KeyEvent{}, ErrClosed
	}
	ev := m.keys[0]
	m.keys = m.keys[1:]
	return ev, nil
}

func (m *Memory) Pause(d time.Duration) {
	m.pauses = append(m.pauses, d)
}
