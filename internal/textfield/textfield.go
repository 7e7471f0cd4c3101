// Package textfield implements a bounded single-line input field drawn in
// its own boxed canvas window.
//
// A field captures keys until a terminator is read. Content is validated
// separately by running the field's linter chain with Lint.
package textfield

import (
	"context"
	"strings"
	"time"

	"github.com/go-errors/errors"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/abdullathedruid/termwidget/internal/canvas"
	"github.com/abdullathedruid/termwidget/internal/logging"
	"github.com/abdullathedruid/termwidget/internal/ui"
)

var (
	// ErrNilField is returned by operations on a nil *TextField.
	ErrNilField = errors.New("text field is nil")
	// ErrDestroyed is returned by operations on a destroyed field.
	ErrDestroyed = errors.New("text field already destroyed")
	// ErrInvalidGeometry is returned for negative sizes, positions or
	// lengths.
	ErrInvalidGeometry = canvas.ErrInvalidGeometry
	// ErrNilCanvas is returned when a field is built without a canvas.
	ErrNilCanvas = errors.New("canvas is nil")
)

// WarnPause is how long Warn leaves its message on screen.
const WarnPause = 500 * time.Millisecond

// Text drawn by Warn.
const (
	FullMessage = "Input is full."
	HintMessage = "Press Enter or Backspace."
)

// OverflowHandler is called when a printable key arrives while the field
// is full. The buffer is not modified before or after the call.
type OverflowHandler func(*TextField) error

// Options configures a field built with New.
type Options struct {
	MaxLength int
	Height    int
	Width     int
	X         int
	Y         int

	// Linters is the validation chain. Nil selects DefaultLinters; an
	// empty non-nil slice is an empty chain.
	Linters []Linter
	// OnFull defaults to Warn.
	OnFull OverflowHandler
	// Allocator defaults to HeapAllocator.
	Allocator Allocator
	// Logger defaults to the package logger.
	Logger *zap.Logger
}

// TextField is a bounded input field. It owns its buffer and window until
// Destroy is called.
type TextField struct {
	canvas canvas.Canvas
	win    canvas.Window

	buffer    []rune
	length    int
	maxLength int

	height, width int
	x, y          int

	linters   []Linter
	onFull    OverflowHandler
	allocator Allocator
	state     State
	log       *zap.Logger
	destroyed bool
}

// New builds a field, allocating its buffer and creating its window. Every
// other constructor funnels into New.
func New(c canvas.Canvas, opts Options) (*TextField, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	if opts.MaxLength < 0 || opts.Height < 0 || opts.Width < 0 || opts.X < 0 || opts.Y < 0 {
		return nil, ErrInvalidGeometry
	}

	f := &TextField{
		canvas:    c,
		maxLength: opts.MaxLength,
		height:    opts.Height,
		width:     opts.Width,
		x:         opts.X,
		y:         opts.Y,
		linters:   opts.Linters,
		onFull:    opts.OnFull,
		allocator: opts.Allocator,
		log:       opts.Logger,
	}
	if f.linters == nil {
		f.linters = DefaultLinters()
	}
	if f.onFull == nil {
		f.onFull = Warn
	}
	if f.allocator == nil {
		f.allocator = HeapAllocator{}
	}
	if f.log == nil {
		f.log = logging.Named("textfield")
	}

	buf, err := f.allocator.Alloc(f.maxLength + 1)
	if err != nil {
		return nil, errors.WrapPrefix(err, "allocating text field buffer", 0)
	}
	f.buffer = buf

	win, err := c.CreateWindow(f.height, f.width, f.y, f.x)
	if err != nil {
		_ = f.allocator.Free(f.buffer)
		return nil, errors.WrapPrefix(err, "creating text field window", 0)
	}
	f.win = win

	f.log.Debug("text field created",
		zap.Int("max_length", f.maxLength),
		zap.Int("height", f.height),
		zap.Int("width", f.width),
		zap.Int("x", f.x),
		zap.Int("y", f.y))
	return f, nil
}

// NewDefault builds a field with the default linter chain, the Warn
// overflow handler and heap storage.
func NewDefault(c canvas.Canvas, maxLength, height, width, x, y int) (*TextField, error) {
	return New(c, Options{
		MaxLength: maxLength,
		Height:    height,
		Width:     width,
		X:         x,
		Y:         y,
	})
}

// NewCentered builds a default field centred in a boundWidth x boundHeight
// area.
func NewCentered(c canvas.Canvas, maxLength, height, width, boundWidth, boundHeight int) (*TextField, error) {
	x, y := ui.CenteredOrigin(boundWidth, boundHeight, width, height)
	return NewDefault(c, maxLength, height, width, x, y)
}

// NewLinted builds a field with a caller-supplied linter chain.
func NewLinted(c canvas.Canvas, linters []Linter, maxLength, height, width, x, y int) (*TextField, error) {
	if linters == nil {
		linters = []Linter{}
	}
	return New(c, Options{
		MaxLength: maxLength,
		Height:    height,
		Width:     width,
		X:         x,
		Y:         y,
		Linters:   linters,
	})
}

// NewWithAllocator builds a default field whose buffer comes from alloc.
func NewWithAllocator(c canvas.Canvas, alloc Allocator, maxLength, height, width, x, y int) (*TextField, error) {
	return New(c, Options{
		MaxLength: maxLength,
		Height:    height,
		Width:     width,
		X:         x,
		Y:         y,
		Allocator: alloc,
	})
}

func (f *TextField) check() error {
	if f == nil {
		return ErrNilField
	}
	if f.destroyed {
		return ErrDestroyed
	}
	return nil
}

// Value returns the captured content.
func (f *TextField) Value() string {
	if f == nil || f.destroyed {
		return ""
	}
	return string(f.buffer[:f.length])
}

func (f *TextField) runes() []rune {
	if f == nil || f.destroyed {
		return nil
	}
	return f.buffer[:f.length]
}

// Len returns the number of runes held.
func (f *TextField) Len() int {
	if f == nil {
		return 0
	}
	return f.length
}

// MaxLength returns the capacity in runes.
func (f *TextField) MaxLength() int {
	if f == nil {
		return 0
	}
	return f.maxLength
}

// State returns the capture state.
func (f *TextField) State() State {
	if f == nil {
		return StateActive
	}
	return f.state
}

// Window returns the field's canvas window.
func (f *TextField) Window() canvas.Window {
	if f == nil {
		return canvas.NoWindow
	}
	return f.win
}

// Canvas returns the canvas the field draws on.
func (f *TextField) Canvas() canvas.Canvas {
	if f == nil {
		return nil
	}
	return f.canvas
}

// Destroyed reports whether Destroy has run.
func (f *TextField) Destroyed() bool {
	return f != nil && f.destroyed
}

// Clear empties the buffer. The window is left as drawn.
func (f *TextField) Clear() error {
	if err := f.check(); err != nil {
		return err
	}
	clear(f.buffer)
	f.length = 0
	f.state = f.stateForLength()
	return nil
}

// Draw boxes the window, writes the current content and refreshes.
func (f *TextField) Draw() error {
	if err := f.check(); err != nil {
		return err
	}
	if err := f.canvas.Clear(f.win); err != nil {
		return err
	}
	if err := f.canvas.DrawBox(f.win); err != nil {
		return err
	}
	if err := f.canvas.WriteAt(f.win, 1, 1, f.Value()); err != nil {
		return err
	}
	return f.canvas.Refresh(f.win)
}

// Capture reads keys from the field's window until a terminator is read.
// Printable runes are stored and echoed while there is room; further
// printable runes go to the overflow handler. Backspace removes the last
// rune. Other keys are ignored.
//
// A read failure ends the capture and is returned wrapped; match it with
// the go-errors errors.Is, since *errors.Error has no Unwrap for the
// standard library's errors.Is. ctx is checked between keys.
func (f *TextField) Capture(ctx context.Context) error {
	if err := f.check(); err != nil {
		return err
	}
	f.state = f.stateForLength()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := f.canvas.ReadKey(f.win)
		if err != nil {
			return errors.WrapPrefix(err, "text field input", 0)
		}

		switch {
		case ev.IsTerminator():
			f.state = StateDone
			f.log.Debug("capture done", zap.Int("length", f.length))
			return nil
		case ev.IsErase():
			if err := f.erase(); err != nil {
				return err
			}
		case ev.IsPrintable():
			if f.length < f.maxLength {
				if err := f.insert(ev.Rune); err != nil {
					return err
				}
				continue
			}
			f.state = StateFull
			f.log.Debug("input overflow", zap.Int("max_length", f.maxLength))
			if err := f.onFull(f); err != nil {
				return errors.WrapPrefix(err, "overflow handler", 0)
			}
		}
	}
}

func (f *TextField) insert(r rune) error {
	if err := f.canvas.WriteAt(f.win, 1, f.echoColumn(), string(r)); err != nil {
		return err
	}
	if err := f.canvas.Refresh(f.win); err != nil {
		return err
	}
	f.buffer[f.length] = r
	f.length++
	f.state = f.stateForLength()
	return nil
}

func (f *TextField) erase() error {
	if f.length == 0 {
		return nil
	}
	last := f.buffer[f.length-1]
	f.length--
	blank := strings.Repeat(" ", runewidth.RuneWidth(last))
	if err := f.canvas.WriteAt(f.win, 1, f.echoColumn(), blank); err != nil {
		f.length++
		return err
	}
	if err := f.canvas.Refresh(f.win); err != nil {
		return err
	}
	f.buffer[f.length] = 0
	f.state = f.stateForLength()
	return nil
}

// echoColumn is the window column just past the stored runes.
func (f *TextField) echoColumn() int {
	return 1 + ui.Width(string(f.buffer[:f.length]))
}

func (f *TextField) stateForLength() State {
	if f.length >= f.maxLength {
		return StateFull
	}
	return StateActive
}

// Use empties the field, draws it, captures input and then blanks the
// window.
func (f *TextField) Use(ctx context.Context) error {
	if err := f.Clear(); err != nil {
		return err
	}
	if err := f.Draw(); err != nil {
		return err
	}
	if err := f.Capture(ctx); err != nil {
		return err
	}
	if err := f.canvas.Clear(f.win); err != nil {
		return err
	}
	return f.canvas.Refresh(f.win)
}

// Lint runs the linter chain in order and stops at the first failure. A
// nil linter passes. An empty chain passes.
func (f *TextField) Lint() bool {
	if f.check() != nil {
		return false
	}
	for _, lint := range f.linters {
		if lint == nil {
			continue
		}
		if !lint(f) {
			return false
		}
	}
	return true
}

// Destroy releases the buffer through the field's allocator and destroys
// its window. Both are attempted; a second Destroy returns ErrDestroyed.
func (f *TextField) Destroy() error {
	if err := f.check(); err != nil {
		return err
	}
	f.destroyed = true

	var firstErr error
	if err := f.allocator.Free(f.buffer); err != nil {
		firstErr = errors.WrapPrefix(err, "releasing text field buffer", 0)
	}
	f.buffer = nil
	f.length = 0
	if err := f.canvas.DestroyWindow(f.win); err != nil && firstErr == nil {
		firstErr = errors.WrapPrefix(err, "destroying text field window", 0)
	}
	f.log.Debug("text field destroyed")
	return firstErr
}

// Warn is the default overflow handler. It replaces the field's content
// with a short notice, pauses, then redraws the content.
func Warn(f *TextField) error {
	if err := f.check(); err != nil {
		return err
	}
	c, w := f.canvas, f.win
	if err := c.Clear(w); err != nil {
		return err
	}
	if err := c.DrawBox(w); err != nil {
		return err
	}
	if err := c.WriteAt(w, 1, 1, FullMessage); err != nil {
		return err
	}
	if err := c.WriteAt(w, 2, 1, HintMessage); err != nil {
		return err
	}
	if err := c.Refresh(w); err != nil {
		return err
	}
	c.Pause(WarnPause)
	return f.Draw()
}

// IgnoreOverflow drops overflowing keys silently.
func IgnoreOverflow(*TextField) error {
	return nil
}
