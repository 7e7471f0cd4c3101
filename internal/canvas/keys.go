package canvas

import (
	"fmt"
	"unicode"
)

// Key identifies a keyboard key. Printable input uses KeyRune together
// with the Rune field of KeyEvent.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyTab
	KeyInsert
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyEscape:    "esc",
	KeyTab:       "tab",
	KeyInsert:    "insert",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDn:      "pgdn",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
}

// String returns the lower-case key name used in configuration files.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyF1 && k <= KeyF12 {
		return fmt.Sprintf("f%d", int(k-KeyF1)+1)
	}
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return fmt.Sprintf("ctrl+%c", 'a'+rune(k-KeyCtrlA))
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// FunctionKey returns the key for F<n>, or KeyNone when n is out of range.
func FunctionKey(n int) Key {
	if n < 1 || n > 12 {
		return KeyNone
	}
	return KeyF1 + Key(n-1)
}

// CtrlKey returns the key for ctrl+<letter>, or KeyNone for non-letters.
func CtrlKey(letter rune) Key {
	letter = unicode.ToLower(letter)
	if letter < 'a' || letter > 'z' {
		return KeyNone
	}
	return KeyCtrlA + Key(letter-'a')
}

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// KeyEvent is a single key press read from a canvas.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  ModMask
}

// RuneEvent returns the event for typing r.
func RuneEvent(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// KeyPress returns the event for pressing a special key.
func KeyPress(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

// IsTerminator reports whether the event ends a line of input.
func (e KeyEvent) IsTerminator() bool {
	if e.Key == KeyEnter {
		return true
	}
	return e.Key == KeyRune && (e.Rune == '\n' || e.Rune == '\r')
}

// IsErase reports whether the event removes the previous character.
// Literal BS and DEL runes count as erase keys.
func (e KeyEvent) IsErase() bool {
	switch e.Key {
	case KeyBackspace, KeyDelete:
		return true
	case KeyRune:
		return e.Rune == '\b' || e.Rune == 0x7f
	}
	return false
}

// IsPrintable reports whether the event carries a printable rune.
func (e KeyEvent) IsPrintable() bool {
	return e.Key == KeyRune && unicode.IsPrint(e.Rune)
}

// String returns a readable description of the event.
func (e KeyEvent) String() string {
	if e.Key == KeyRune {
		return fmt.Sprintf("%q", e.Rune)
	}
	return e.Key.String()
}

// Binding describes the key a widget action is bound to.
type Binding struct {
	Key  Key
	Rune rune
}

// KeyBinding returns a binding for a special key.
func KeyBinding(k Key) Binding {
	return Binding{Key: k}
}

// RuneBinding returns a binding for a single character.
func RuneBinding(r rune) Binding {
	return Binding{Key: KeyRune, Rune: r}
}

// IsZero reports whether the binding is unset.
func (b Binding) IsZero() bool {
	return b.Key == KeyNone
}

// Matches reports whether ev is a press of the bound key.
func (b Binding) Matches(ev KeyEvent) bool {
	if b.Key != ev.Key {
		return false
	}
	if b.Key == KeyRune {
		return b.Rune == ev.Rune
	}
	return true
}

// String returns the configuration-file form of the binding.
func (b Binding) String() string {
	if b.Key == KeyRune {
		return string(b.Rune)
	}
	return b.Key.String()
}
