package canvas

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-errors/errors"
)

// Terminal implements Canvas on top of a tcell screen.
type Terminal struct {
	mu      sync.Mutex
	screen  tcell.Screen
	windows windowTable
}

// NewTerminal opens the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.WrapPrefix(err, "creating screen", 0)
	}
	return NewTerminalWithScreen(screen)
}

// NewTerminalWithScreen initializes and wraps an existing screen, such as
// a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.WrapPrefix(err, "initializing screen", 0)
	}
	screen.HideCursor()
	screen.Clear()
	return &Terminal{
		screen:  screen,
		windows: newWindowTable(),
	}, nil
}

// Close restores the terminal. A ReadKey blocked on the screen returns
// ErrClosed.
func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) set(x, y int, r rune, style Style) {
	if r == 0 {
		// continuation cell of a wide rune; tcell owns it
		return
	}
	t.screen.SetContent(x, y, r, nil, convertStyle(style))
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) CreateWindow(height, width, y, x int) (Window, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.windows.create(height, width, y, x)
}

func (t *Terminal) DestroyWindow(w Window) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, err := t.windows.remove(w)
	if err != nil {
		return err
	}
	fillRect(r, t.set)
	t.screen.Show()
	return nil
}

func (t *Terminal) Clear(w Window) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, err := t.windows.lookup(w)
	if err != nil {
		return err
	}
	fillRect(r, t.set)
	return nil
}

func (t *Terminal) DrawBox(w Window) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, err := t.windows.lookup(w)
	if err != nil {
		return err
	}
	drawBox(r, t.set)
	return nil
}

func (t *Terminal) WriteAt(w Window, y, x int, text string) error {
	return t.WriteStyled(w, y, x, text, StyleNormal)
}

func (t *Terminal) WriteStyled(w Window, y, x int, text string, style Style) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, err := t.windows.lookup(w)
	if err != nil {
		return err
	}
	writeText(r, y, x, text, style, t.set)
	return nil
}

func (t *Terminal) Refresh(w Window) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.windows.lookup(w); err != nil {
		return err
	}
	t.screen.Show()
	return nil
}

// ReadKey blocks on the screen's event queue, skipping non-key events.
// Resize events trigger a full redraw.
func (t *Terminal) ReadKey(w Window) (KeyEvent, error) {
	t.mu.Lock()
	_, err := t.windows.lookup(w)
	t.mu.Unlock()
	if err != nil {
		return KeyEvent{}, err
	}

	for {
		ev := t.screen.PollEvent()
		switch e := ev.(type) {
		case nil:
			return KeyEvent{}, ErrClosed
		case *tcell.EventKey:
			return convertEvent(e), nil
		case *tcell.EventResize:
			t.mu.Lock()
			t.screen.Sync()
			t.mu.Unlock()
		}
	}
}

func (t *Terminal) Pause(d time.Duration) {
	time.Sleep(d)
}

func convertStyle(s Style) tcell.Style {
	switch s {
	case StyleReverse:
		return tcell.StyleDefault.Reverse(true)
	case StyleBold:
		return tcell.StyleDefault.Bold(true)
	default:
		return tcell.StyleDefault
	}
}

func convertEvent(e *tcell.EventKey) KeyEvent {
	ev := KeyEvent{
		Key: convertKey(e.Key()),
		Mod: convertMod(e.Modifiers()),
	}
	if ev.Key == KeyRune {
		ev.Rune = e.Rune()
	}
	return ev
}

// convertKey maps tcell keys onto canvas keys. Enter, Tab and Backspace
// share codes with ctrl+M, ctrl+I and ctrl+H in tcell, so they are matched
// before the control-key range.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEnter, tcell.KeyLF:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyInsert:
		return KeyInsert
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPgUp
	case tcell.KeyPgDn:
		return KeyPgDn
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return KeyF1 + Key(k-tcell.KeyF1)
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyCtrlA + Key(k-tcell.KeyCtrlA)
	}
	return KeyNone
}

func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}
