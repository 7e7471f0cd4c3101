package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abdullathedruid/termwidget/internal/canvas"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.LogLevel != "" {
		t.Errorf("LogLevel = %q, want empty (logging off)", cfg.LogLevel)
	}
	if cfg.Keys.Quit != "f1" {
		t.Errorf("Keys.Quit = %q, want %q", cfg.Keys.Quit, "f1")
	}
	if cfg.Menu.Boxed == nil || !*cfg.Menu.Boxed {
		t.Error("Menu.Boxed should default to true")
	}
	if cfg.Panel.Height != 0 || cfg.Panel.Width != 0 {
		t.Error("panel should be disabled by default")
	}
	if cfg.TextField.MaxLength != 10 || cfg.TextField.Height != 5 || cfg.TextField.Width != 30 {
		t.Errorf("TextField = %+v, want 10/5/30", cfg.TextField)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.Keys.Quit != "f1" {
		t.Errorf("cfg.Keys.Quit = %q, want %q", cfg.Keys.Quit, "f1")
	}

	cfg, err = Load("")
	if err != nil || cfg == nil {
		t.Fatalf("Load(\"\") = %v, %v, want defaults", cfg, err)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	path := writeConfig(t, `log_level: debug
keys:
  quit: "q"
  down: "j"
menu:
  x: 4
  boxed: false
panel:
  height: 9
  width: 42
  x: 30
  label: "States"
textfield:
  max_length: 15
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Keys.Quit != "q" || cfg.Keys.Down != "j" {
		t.Errorf("Keys = %+v, want quit q and down j", cfg.Keys)
	}
	if cfg.Keys.Up != "up" {
		t.Errorf("Keys.Up = %q, want %q (default)", cfg.Keys.Up, "up")
	}
	if cfg.Menu.X != 4 || *cfg.Menu.Boxed {
		t.Errorf("Menu = x %d boxed %v, want x 4 unboxed", cfg.Menu.X, *cfg.Menu.Boxed)
	}
	if cfg.Panel.Height != 9 || cfg.Panel.Width != 42 || cfg.Panel.X != 30 || cfg.Panel.Label != "States" {
		t.Errorf("Panel = %+v", cfg.Panel)
	}
	if cfg.Panel.Boxed == nil || !*cfg.Panel.Boxed {
		t.Error("Panel.Boxed should keep its default")
	}
	if cfg.TextField.MaxLength != 15 || cfg.TextField.Width != 30 {
		t.Errorf("TextField = %+v, want max_length 15 and default width", cfg.TextField)
	}
	if cfg.LogFile != "termwidget.log" {
		t.Errorf("LogFile = %q, want default", cfg.LogFile)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"duplicate keys", "keys:\n  quit: \"x\"\n  up: \"x\"\n", "duplicate"},
		{"case-insensitive duplicate", "keys:\n  quit: \"UP\"\n", "duplicate"},
		{"unknown key", "keys:\n  quit: \"hyper+q\"\n", "invalid key for Quit"},
		{"quit on enter", "keys:\n  quit: \"enter\"\n", "reserved"},
		{"bad log level", "log_level: loud\n", "invalid log level"},
		{"negative panel", "panel:\n  x: -1\n", "panel geometry"},
		{"bad yaml", "keys: [\n", "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %q, want it to mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestMenuConfig(t *testing.T) {
	path := writeConfig(t, `keys:
  quit: "q"
  left: "h"
menu:
  y: 2
panel:
  height: 8
  width: 40
  boxed: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	mc := cfg.MenuConfig()
	if mc.Quit != canvas.RuneBinding('q') || mc.Left != canvas.RuneBinding('h') {
		t.Errorf("Quit/Left = %v/%v, want q/h", mc.Quit, mc.Left)
	}
	if mc.Up != canvas.KeyBinding(canvas.KeyUp) {
		t.Errorf("Up = %v, want up", mc.Up)
	}
	if mc.Y != 2 || !mc.Boxed {
		t.Errorf("menu y %d boxed %v, want 2 and boxed", mc.Y, mc.Boxed)
	}
	if !mc.Panel.Enabled() || mc.Panel.Boxed {
		t.Errorf("Panel = %+v, want enabled and unboxed", mc.Panel)
	}

	def := Default().MenuConfig()
	if def.Quit != canvas.KeyBinding(canvas.KeyF1) || def.Panel.Enabled() {
		t.Errorf("Default().MenuConfig() = %+v, want F1 quit and no panel", def)
	}
}
