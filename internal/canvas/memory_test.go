package canvas

import (
	"testing"
	"time"

	"github.com/go-errors/errors"
)

func TestMemoryWindowLifecycle(t *testing.T) {
	m := NewMemory(20, 5)

	w, err := m.CreateWindow(3, 6, 1, 2)
	if err != nil {
		t.Fatalf("CreateWindow error = %v", err)
	}
	if m.OpenWindows() != 1 {
		t.Errorf("OpenWindows() = %d, want 1", m.OpenWindows())
	}

	if err := m.DrawBox(w); err != nil {
		t.Fatalf("DrawBox error = %v", err)
	}
	if err := m.WriteAt(w, 1, 1, "hi"); err != nil {
		t.Fatalf("WriteAt error = %v", err)
	}

	wantRows := []string{"", "  ┌────┐", "  │hi  │", "  └────┘", ""}
	for y, want := range wantRows {
		if got := m.Row(y); got != want {
			t.Errorf("Row(%d) = %q, want %q", y, got, want)
		}
	}

	if err := m.DestroyWindow(w); err != nil {
		t.Fatalf("DestroyWindow error = %v", err)
	}
	if m.OpenWindows() != 0 {
		t.Errorf("OpenWindows() = %d after destroy, want 0", m.OpenWindows())
	}
	if got := m.Row(2); got != "" {
		t.Errorf("Row(2) = %q after destroy, want blank", got)
	}
	if err := m.DestroyWindow(w); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("second DestroyWindow error = %v, want ErrUnknownWindow", err)
	}
}

func TestMemoryWriteClipsToWindow(t *testing.T) {
	m := NewMemory(20, 3)
	w, _ := m.CreateWindow(1, 4, 0, 0)

	if err := m.WriteAt(w, 0, 2, "abcdef"); err != nil {
		t.Fatalf("WriteAt error = %v", err)
	}
	if got := m.Row(0); got != "  ab" {
		t.Errorf("Row(0) = %q, want %q", got, "  ab")
	}

	// rows outside the window are dropped
	if err := m.WriteAt(w, 1, 0, "zzz"); err != nil {
		t.Fatalf("WriteAt error = %v", err)
	}
	if got := m.Row(1); got != "" {
		t.Errorf("Row(1) = %q, want blank", got)
	}
}

func TestMemoryInvalidGeometry(t *testing.T) {
	m := NewMemory(10, 10)
	if _, err := m.CreateWindow(-1, 3, 0, 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("CreateWindow(-1, ...) error = %v, want ErrInvalidGeometry", err)
	}
	if err := m.WriteAt(NoWindow, 0, 0, "x"); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("WriteAt(NoWindow) error = %v, want ErrUnknownWindow", err)
	}
}

func TestMemoryReadKey(t *testing.T) {
	m := NewMemory(10, 2)
	w, _ := m.CreateWindow(1, 10, 0, 0)

	m.Type("a\n")
	m.Feed(KeyPress(KeyUp))

	want := []KeyEvent{RuneEvent('a'), KeyPress(KeyEnter), KeyPress(KeyUp)}
	for i, ev := range want {
		got, err := m.ReadKey(w)
		if err != nil {
			t.Fatalf("ReadKey #%d error = %v", i, err)
		}
		if got != ev {
			t.Errorf("ReadKey #%d = %v, want %v", i, got, ev)
		}
	}

	if _, err := m.ReadKey(w); !errors.Is(err, ErrClosed) {
		t.Errorf("ReadKey on empty queue error = %v, want ErrClosed", err)
	}
}

func TestMemoryPauseRecorded(t *testing.T) {
	m := NewMemory(1, 1)
	m.Pause(500 * time.Millisecond)
	got := m.Pauses()
	if len(got) != 1 || got[0] != 500*time.Millisecond {
		t.Errorf("Pauses() = %v, want [500ms]", got)
	}
}

func TestMemoryWideRunes(t *testing.T) {
	m := NewMemory(10, 1)
	w, _ := m.CreateWindow(1, 5, 0, 0)

	if err := m.WriteAt(w, 0, 0, "名前x"); err != nil {
		t.Fatalf("WriteAt error = %v", err)
	}
	if got := m.Row(0); got != "名前x" {
		t.Errorf("Row(0) = %q, want %q", got, "名前x")
	}

	// a wide rune that would straddle the edge is dropped
	if err := m.WriteAt(w, 0, 0, "abcd名"); err != nil {
		t.Fatalf("WriteAt error = %v", err)
	}
	if got := m.Row(0); got != "abcdx" {
		t.Errorf("Row(0) = %q, want %q", got, "abcdx")
	}
}
