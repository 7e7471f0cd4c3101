package config

import (
	"strings"

	"github.com/go-errors/errors"

	"github.com/abdullathedruid/termwidget/internal/canvas"
)

// ParseKey parses a key string into a binding, preserving the case of
// single characters so that "N" and "n" stay distinct.
// Supported formats:
//   - Single character: "q", "N", "?", "/"
//   - Special keys: "enter", "space", "esc", "tab", "backspace"
//   - Arrow keys: "up", "down", "left", "right"
//   - Function keys: "f1" .. "f12"
//   - Ctrl combinations: "ctrl+c", "ctrl+s"
func ParseKey(s string) (canvas.Binding, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return canvas.Binding{}, errors.New("empty key string")
	}
	lower := strings.ToLower(trimmed)

	// Check for ctrl combinations
	if char, found := strings.CutPrefix(lower, "ctrl+"); found {
		if len(char) == 1 {
			if key := canvas.CtrlKey(rune(char[0])); key != canvas.KeyNone {
				return canvas.KeyBinding(key), nil
			}
		}
		return canvas.Binding{}, errors.Errorf("invalid ctrl combination: %s", s)
	}

	// Check for special keys (case insensitive)
	if key, ok := specialKeyMap[lower]; ok {
		return canvas.KeyBinding(key), nil
	}
	if lower == "space" {
		return canvas.RuneBinding(' '), nil
	}

	// Function keys
	if n, found := strings.CutPrefix(lower, "f"); found && n != "" {
		if key := functionKey(n); key != canvas.KeyNone {
			return canvas.KeyBinding(key), nil
		}
	}

	// Single character (preserve original case)
	if runes := []rune(trimmed); len(runes) == 1 {
		return canvas.RuneBinding(runes[0]), nil
	}

	return canvas.Binding{}, errors.Errorf("unknown key: %s", s)
}

func functionKey(digits string) canvas.Key {
	n := 0
	for _, d := range digits {
		if d < '0' || d > '9' {
			return canvas.KeyNone
		}
		n = n*10 + int(d-'0')
	}
	return canvas.FunctionKey(n)
}

// specialKeyMap maps string names to named keys.
var specialKeyMap = map[string]canvas.Key{
	"enter":     canvas.KeyEnter,
	"return":    canvas.KeyEnter,
	"esc":       canvas.KeyEscape,
	"escape":    canvas.KeyEscape,
	"tab":       canvas.KeyTab,
	"backspace": canvas.KeyBackspace,
	"delete":    canvas.KeyDelete,
	"insert":    canvas.KeyInsert,
	"home":      canvas.KeyHome,
	"end":       canvas.KeyEnd,
	"pgup":      canvas.KeyPgUp,
	"pageup":    canvas.KeyPgUp,
	"pgdn":      canvas.KeyPgDn,
	"pagedown":  canvas.KeyPgDn,
	"up":        canvas.KeyUp,
	"down":      canvas.KeyDown,
	"left":      canvas.KeyLeft,
	"right":     canvas.KeyRight,
}

// KeyToString converts a binding back to its configuration form.
func KeyToString(b canvas.Binding) string {
	if b.IsZero() {
		return ""
	}
	if b.Key == canvas.KeyRune && b.Rune == ' ' {
		return "space"
	}
	return b.String()
}
