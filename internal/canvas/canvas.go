// Package canvas provides the terminal surface the widgets draw on.
//
// A Canvas hands out rectangular windows, draws boxes and text into them,
// flushes them to the display and performs a blocking read of the next key
// event. Two implementations are provided: Terminal, backed by a tcell
// screen, and Memory, an in-process cell grid fed from a scripted key queue.
package canvas

import (
	"time"

	"github.com/go-errors/errors"
)

var (
	// ErrClosed is returned by ReadKey when the input stream has ended.
	ErrClosed = errors.New("canvas: input closed")
	// ErrUnknownWindow is returned for operations on a handle the canvas
	// did not create or has already destroyed.
	ErrUnknownWindow = errors.New("canvas: unknown window")
	// ErrInvalidGeometry is returned when a window would have a negative
	// size or origin.
	ErrInvalidGeometry = errors.New("canvas: invalid window geometry")
	// ErrRequestDenied is returned by Menu.Drive when the request would
	// move past the first or last item.
	ErrRequestDenied = errors.New("canvas: request denied")
	// ErrNoItems is returned when a menu is created without items.
	ErrNoItems = errors.New("canvas: menu has no items")
)

// Window is an opaque handle to a rectangular region of a canvas.
type Window uint32

// NoWindow is the zero handle. It never refers to a live window.
const NoWindow Window = 0

// Style selects how text is rendered.
type Style int

const (
	StyleNormal Style = iota
	StyleReverse
	StyleBold
)

// Canvas is the rendering and input surface consumed by the widgets.
// Coordinates passed to window operations are relative to the window.
type Canvas interface {
	// Size returns the dimensions of the whole surface.
	Size() (width, height int)

	// CreateWindow allocates a window of the given size at (y, x).
	CreateWindow(height, width, y, x int) (Window, error)

	// DestroyWindow blanks the window's region and releases the handle.
	DestroyWindow(w Window) error

	// Clear blanks every cell of the window.
	Clear(w Window) error

	// DrawBox draws a single-line border on the window's edge cells.
	DrawBox(w Window) error

	// WriteAt writes text starting at (y, x). Text is clipped to the window.
	WriteAt(w Window, y, x int, text string) error

	// WriteStyled is WriteAt with an explicit style.
	WriteStyled(w Window, y, x int, text string, style Style) error

	// Refresh flushes pending changes to the display.
	Refresh(w Window) error

	// ReadKey blocks until the next key event is available.
	ReadKey(w Window) (KeyEvent, error)

	// Pause suspends drawing for d, used for transient feedback.
	Pause(d time.Duration)
}
