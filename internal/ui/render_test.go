package ui

import (
	"strings"
	"testing"
)

func TestSummaryLines(t *testing.T) {
	s := &Summary{Title: "Text field"}
	s.AddDetail("You entered", "ciao").AddDetail("len", "4")

	got := s.Lines()
	want := []string{
		"You entered: ciao",
		"len:         4",
	}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSummaryRender(t *testing.T) {
	s := &Summary{Title: "Toggle menu", Pass: true}
	s.AddDetail("Light", "ON")

	out := s.Render()
	for _, want := range []string{"Toggle menu", "Light:", "ON", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() = %q, want it to contain %q", out, want)
		}
	}
}
