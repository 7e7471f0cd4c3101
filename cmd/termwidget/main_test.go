package main

import (
	"context"
	"testing"

	"github.com/abdullathedruid/termwidget/internal/canvas"
	"github.com/abdullathedruid/termwidget/internal/config"
)

func TestCaptureLine(t *testing.T) {
	tests := []struct {
		input    string
		want     string
		wantPass bool
	}{
		{"ciao\n", "ciao", true},
		{"hello\n", "hello", false},
		{"\n", "", false},
	}

	expectedText = "ciao"
	for _, tt := range tests {
		c := canvas.NewMemory(80, 24)
		c.Type(tt.input)

		res, err := captureLine(context.Background(), c, 10, 5, 30)
		if err != nil {
			t.Fatalf("captureLine(%q) error = %v", tt.input, err)
		}
		if res.value != tt.want || res.pass != tt.wantPass {
			t.Errorf("captureLine(%q) = %+v, want value %q pass %v", tt.input, res, tt.want, tt.wantPass)
		}
		if c.OpenWindows() != 0 {
			t.Errorf("OpenWindows() = %d, want 0", c.OpenWindows())
		}
	}
}

func TestRunDemoMenu(t *testing.T) {
	c := canvas.NewMemory(80, 24)
	showPanel = true

	key := canvas.KeyPress
	c.Feed(key(canvas.KeyEnter))
	c.Feed(key(canvas.KeyDown), key(canvas.KeyDown), key(canvas.KeyDown), key(canvas.KeyRight))
	c.Feed(key(canvas.KeyDown), key(canvas.KeyDown), key(canvas.KeyEnter))
	c.Type("bob\n")
	c.Feed(key(canvas.KeyF1))

	details, err := runDemoMenu(context.Background(), c, config.Default())
	if err != nil {
		t.Fatalf("runDemoMenu() error = %v", err)
	}

	want := []string{"OFF", "1/3", "OFF", "mid", "", "bob"}
	if len(details) != len(want) {
		t.Fatalf("details = %+v, want %d entries", details, len(want))
	}
	for i, w := range want {
		if details[i].Value != w {
			t.Errorf("%s = %q, want %q", details[i].Key, details[i].Value, w)
		}
	}
	if c.OpenWindows() != 0 {
		t.Errorf("OpenWindows() = %d, want 0", c.OpenWindows())
	}
}

func TestPassFail(t *testing.T) {
	if passFail(true) != "pass" || passFail(false) != "fail" {
		t.Error("passFail() should render pass and fail")
	}
}
