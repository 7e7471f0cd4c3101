package canvas

import (
	"testing"

	"github.com/go-errors/errors"
)

func newTestMenu(t *testing.T, items []string, rows int) (*Memory, Window, *Menu) {
	t.Helper()
	m := NewMemory(20, 10)
	w, err := m.CreateWindow(rows, 8, 0, 0)
	if err != nil {
		t.Fatalf("CreateWindow error = %v", err)
	}
	menu, err := NewMenu(m, w, items, rows, 8)
	if err != nil {
		t.Fatalf("NewMenu error = %v", err)
	}
	return m, w, menu
}

func TestMenuDriveBoundaries(t *testing.T) {
	_, _, menu := newTestMenu(t, []string{"a", "b", "c"}, 3)

	if err := menu.Drive(ReqUpItem); !errors.Is(err, ErrRequestDenied) {
		t.Errorf("Drive(up) at first item error = %v, want ErrRequestDenied", err)
	}
	if menu.Current() != 0 {
		t.Errorf("Current() = %d after denied request, want 0", menu.Current())
	}

	tests := []struct {
		req  MenuRequest
		want int
	}{
		{ReqDownItem, 1},
		{ReqDownItem, 2},
		{ReqUpItem, 1},
		{ReqLastItem, 2},
		{ReqFirstItem, 0},
	}
	for _, tt := range tests {
		if err := menu.Drive(tt.req); err != nil {
			t.Fatalf("Drive(%v) error = %v", tt.req, err)
		}
		if menu.Current() != tt.want {
			t.Errorf("Drive(%v): Current() = %d, want %d", tt.req, menu.Current(), tt.want)
		}
	}

	_ = menu.Drive(ReqLastItem)
	if err := menu.Drive(ReqDownItem); !errors.Is(err, ErrRequestDenied) {
		t.Errorf("Drive(down) at last item error = %v, want ErrRequestDenied", err)
	}
	if menu.Current() != 2 {
		t.Errorf("Current() = %d after denied request, want 2", menu.Current())
	}
}

func TestMenuPostHighlightsCurrent(t *testing.T) {
	m, _, menu := newTestMenu(t, []string{"one", "two"}, 2)

	if err := menu.Post(); err != nil {
		t.Fatalf("Post error = %v", err)
	}
	if got := m.Row(0); got != "one" {
		t.Errorf("Row(0) = %q, want %q", got, "one")
	}
	if m.StyleAt(0, 0) != StyleReverse {
		t.Error("current item should be drawn reverse-video")
	}
	if m.StyleAt(0, 1) != StyleNormal {
		t.Error("other items should be drawn normally")
	}

	if err := menu.Drive(ReqDownItem); err != nil {
		t.Fatalf("Drive error = %v", err)
	}
	if m.StyleAt(0, 1) != StyleReverse || m.StyleAt(0, 0) != StyleNormal {
		t.Error("highlight should follow the current item")
	}

	if err := menu.Unpost(); err != nil {
		t.Fatalf("Unpost error = %v", err)
	}
	if got := m.Row(1); got != "" {
		t.Errorf("Row(1) = %q after Unpost, want blank", got)
	}
}

func TestMenuScrolls(t *testing.T) {
	m, _, menu := newTestMenu(t, []string{"a", "b", "c", "d"}, 2)
	if err := menu.Post(); err != nil {
		t.Fatalf("Post error = %v", err)
	}

	if err := menu.Drive(ReqLastItem); err != nil {
		t.Fatalf("Drive error = %v", err)
	}
	if m.Row(0) != "c" || m.Row(1) != "d" {
		t.Errorf("rows = %q, %q, want %q, %q", m.Row(0), m.Row(1), "c", "d")
	}

	if err := menu.Drive(ReqFirstItem); err != nil {
		t.Fatalf("Drive error = %v", err)
	}
	if m.Row(0) != "a" || m.Row(1) != "b" {
		t.Errorf("rows = %q, %q, want %q, %q", m.Row(0), m.Row(1), "a", "b")
	}
}

func TestMenuOrigin(t *testing.T) {
	m := NewMemory(10, 4)
	w, _ := m.CreateWindow(4, 6, 0, 0)
	menu, err := NewMenu(m, w, []string{"x", "y"}, 2, 4)
	if err != nil {
		t.Fatalf("NewMenu error = %v", err)
	}
	menu.SetOrigin(1, 1)
	if err := menu.Post(); err != nil {
		t.Fatalf("Post error = %v", err)
	}
	if got := m.Row(1); got != " x" {
		t.Errorf("Row(1) = %q, want %q", got, " x")
	}
	if got := m.Row(2); got != " y" {
		t.Errorf("Row(2) = %q, want %q", got, " y")
	}
}

func TestNewMenuNoItems(t *testing.T) {
	m := NewMemory(4, 4)
	w, _ := m.CreateWindow(1, 1, 0, 0)
	if _, err := NewMenu(m, w, nil, 1, 1); !errors.Is(err, ErrNoItems) {
		t.Errorf("NewMenu(nil) error = %v, want ErrNoItems", err)
	}
}

func TestMenuSetCurrent(t *testing.T) {
	_, _, menu := newTestMenu(t, []string{"a", "b", "c", "d"}, 2)

	if err := menu.SetCurrent(3); err != nil {
		t.Fatalf("SetCurrent(3) error = %v", err)
	}
	if menu.Current() != 3 {
		t.Errorf("Current() = %d, want 3", menu.Current())
	}
	if err := menu.SetCurrent(4); !errors.Is(err, ErrRequestDenied) {
		t.Errorf("SetCurrent(4) error = %v, want ErrRequestDenied", err)
	}
	if err := menu.SetCurrent(-1); !errors.Is(err, ErrRequestDenied) {
		t.Errorf("SetCurrent(-1) error = %v, want ErrRequestDenied", err)
	}
	if menu.Current() != 3 {
		t.Errorf("Current() = %d after denied request, want 3", menu.Current())
	}
}
