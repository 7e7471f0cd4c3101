package canvas

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-errors/errors"
)

func newSimTerminal(t *testing.T) (tcell.SimulationScreen, *Terminal) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	term, err := NewTerminalWithScreen(screen)
	if err != nil {
		t.Fatalf("NewTerminalWithScreen error = %v", err)
	}
	screen.SetSize(40, 10)
	return screen, term
}

func screenRow(screen tcell.SimulationScreen, y, width int) string {
	row := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x, y) //nolint:staticcheck // simulation screen inspection
		if mainc == 0 {
			mainc = ' '
		}
		row = append(row, mainc)
	}
	return string(row)
}

func TestTerminalDrawsIntoScreen(t *testing.T) {
	screen, term := newSimTerminal(t)
	defer term.Close()

	w, err := term.CreateWindow(3, 6, 1, 2)
	if err != nil {
		t.Fatalf("CreateWindow error = %v", err)
	}
	if err := term.DrawBox(w); err != nil {
		t.Fatalf("DrawBox error = %v", err)
	}
	if err := term.WriteAt(w, 1, 1, "ok"); err != nil {
		t.Fatalf("WriteAt error = %v", err)
	}
	if err := term.Refresh(w); err != nil {
		t.Fatalf("Refresh error = %v", err)
	}

	if got, want := screenRow(screen, 1, 8), "  ┌────┐"; got != want {
		t.Errorf("row 1 = %q, want %q", got, want)
	}
	if got, want := screenRow(screen, 2, 8), "  │ok  │"; got != want {
		t.Errorf("row 2 = %q, want %q", got, want)
	}

	if err := term.DestroyWindow(w); err != nil {
		t.Fatalf("DestroyWindow error = %v", err)
	}
	if got, want := screenRow(screen, 2, 8), "        "; got != want {
		t.Errorf("row 2 after destroy = %q, want blank", got)
	}
}

func TestTerminalReadKey(t *testing.T) {
	screen, term := newSimTerminal(t)
	defer term.Close()

	w, _ := term.CreateWindow(1, 1, 0, 0)

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyF1, 0, tcell.ModNone)

	want := []KeyEvent{
		RuneEvent('x'),
		KeyPress(KeyEnter),
		KeyPress(KeyBackspace),
		KeyPress(KeyF1),
	}
	for i, ev := range want {
		got, err := term.ReadKey(w)
		if err != nil {
			t.Fatalf("ReadKey #%d error = %v", i, err)
		}
		if got != ev {
			t.Errorf("ReadKey #%d = %v, want %v", i, got, ev)
		}
	}
}

func TestTerminalReadKeyAfterClose(t *testing.T) {
	_, term := newSimTerminal(t)
	w, _ := term.CreateWindow(1, 1, 0, 0)

	term.Close()
	if _, err := term.ReadKey(w); !errors.Is(err, ErrClosed) {
		t.Errorf("ReadKey after Close error = %v, want ErrClosed", err)
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		in   tcell.Key
		want Key
	}{
		{tcell.KeyEnter, KeyEnter},
		{tcell.KeyLF, KeyEnter},
		{tcell.KeyTab, KeyTab},
		{tcell.KeyBackspace, KeyBackspace},
		{tcell.KeyBackspace2, KeyBackspace},
		{tcell.KeyDelete, KeyDelete},
		{tcell.KeyUp, KeyUp},
		{tcell.KeyF5, KeyF5},
		{tcell.KeyCtrlX, KeyCtrlX},
	}

	for _, tt := range tests {
		if got := convertKey(tt.in); got != tt.want {
			t.Errorf("convertKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
