package canvas

import (
	"fmt"

	"github.com/go-errors/errors"
	"github.com/mattn/go-runewidth"
)

// Box-drawing runes for window borders.
const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
)

// rect is a window's placement in surface coordinates.
type rect struct {
	y, x          int
	height, width int
}

// setCell writes one rune at absolute surface coordinates.
type setCell func(x, y int, r rune, style Style)

// windowTable tracks the windows handed out by a canvas backend and
// implements the drawing operations both backends share.
type windowTable struct {
	next  Window
	rects map[Window]rect
}

func newWindowTable() windowTable {
	return windowTable{rects: make(map[Window]rect)}
}

func (t *windowTable) create(height, width, y, x int) (Window, error) {
	if height < 0 || width < 0 || y < 0 || x < 0 {
		return NoWindow, errors.WrapPrefix(ErrInvalidGeometry,
			formatGeometry(height, width, y, x), 0)
	}
	t.next++
	t.rects[t.next] = rect{y: y, x: x, height: height, width: width}
	return t.next, nil
}

func (t *windowTable) lookup(w Window) (rect, error) {
	r, ok := t.rects[w]
	if !ok {
		return rect{}, ErrUnknownWindow
	}
	return r, nil
}

func (t *windowTable) remove(w Window) (rect, error) {
	r, err := t.lookup(w)
	if err != nil {
		return rect{}, err
	}
	delete(t.rects, w)
	return r, nil
}

func (t *windowTable) open() int {
	return len(t.rects)
}

func formatGeometry(height, width, y, x int) string {
	return fmt.Sprintf("%dx%d at y=%d x=%d", height, width, y, x)
}

func fillRect(r rect, set setCell) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			set(r.x+x, r.y+y, ' ', StyleNormal)
		}
	}
}

func drawBox(r rect, set setCell) {
	if r.height < 2 || r.width < 2 {
		return
	}
	right := r.x + r.width - 1
	bottom := r.y + r.height - 1
	for x := r.x + 1; x < right; x++ {
		set(x, r.y, boxHorizontal, StyleNormal)
		set(x, bottom, boxHorizontal, StyleNormal)
	}
	for y := r.y + 1; y < bottom; y++ {
		set(r.x, y, boxVertical, StyleNormal)
		set(right, y, boxVertical, StyleNormal)
	}
	set(r.x, r.y, boxTopLeft, StyleNormal)
	set(right, r.y, boxTopRight, StyleNormal)
	set(r.x, bottom, boxBottomLeft, StyleNormal)
	set(right, bottom, boxBottomRight, StyleNormal)
}

// writeText writes text at window-relative (y, x), clipping to r.
// Wide runes occupy two columns and are dropped if they would straddle
// the right edge.
func writeText(r rect, y, x int, text string, style Style, set setCell) {
	if y < 0 || y >= r.height {
		return
	}
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col >= r.width {
			return
		}
		if col >= 0 {
			if col+w > r.width {
				return
			}
			set(r.x+col, r.y+y, ch, style)
			if w == 2 {
				set(r.x+col+1, r.y+y, 0, style)
			}
		}
		col += w
	}
}
