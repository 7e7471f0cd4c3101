// Package toggle implements toggles and a keyboard-driven menu of them.
//
// A toggle is a boolean switch, a switch cycling through a fixed number of
// states, or a nested text field. Locked toggles are shown and can be
// selected but never change.
package toggle

import (
	"fmt"

	"github.com/go-errors/errors"

	"github.com/abdullathedruid/termwidget/internal/textfield"
)

var (
	// ErrInvalidState is returned for a multi-state toggle whose current
	// index is outside [0, total).
	ErrInvalidState = errors.New("invalid toggle state")
	// ErrNilToggle is returned when a menu is built with a nil toggle or a
	// field toggle without a field.
	ErrNilToggle = errors.New("toggle is nil")
)

// Kind identifies the variant held by a toggle.
type Kind int

const (
	KindBool Kind = iota
	KindMulti
	KindField
)

// String returns the human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "BOOL"
	case KindMulti:
		return "MULTI"
	case KindField:
		return "FIELD"
	default:
		return "UNKNOWN"
	}
}

// State is the variant payload of a toggle.
type State interface {
	Kind() Kind
}

// BoolState is an on/off switch.
type BoolState struct {
	On bool
}

func (*BoolState) Kind() Kind { return KindBool }

// MultiState cycles through Total states. 0 <= Current < Total.
type MultiState struct {
	Current int
	Total   int
}

func (*MultiState) Kind() Kind { return KindMulti }

// FieldState wraps a text field edited from the menu.
type FieldState struct {
	Field *textfield.TextField
}

func (*FieldState) Kind() Kind { return KindField }

// Formatter renders the current index of a multi-state toggle.
type Formatter func(current int) string

// Toggle is one menu entry.
type Toggle struct {
	Label  string
	Locked bool
	State  State
	// Formatter is only used by multi-state toggles. Nil renders
	// "current+1/total".
	Formatter Formatter
}

// NewBool returns a boolean toggle.
func NewBool(label string, on, locked bool) *Toggle {
	return &Toggle{
		Label:  label,
		Locked: locked,
		State:  &BoolState{On: on},
	}
}

// NewMulti returns a toggle cycling through total states, starting at
// current.
func NewMulti(label string, current, total int, locked bool) (*Toggle, error) {
	if total <= 0 || current < 0 || current >= total {
		return nil, errors.WrapPrefix(ErrInvalidState,
			fmt.Sprintf("%s: current %d of %d", label, current, total), 0)
	}
	return &Toggle{
		Label:  label,
		Locked: locked,
		State:  &MultiState{Current: current, Total: total},
	}, nil
}

// NewField returns a toggle editing f. A menu holding the toggle owns f
// and destroys it with the menu.
func NewField(label string, f *textfield.TextField, locked bool) *Toggle {
	return &Toggle{
		Label:  label,
		Locked: locked,
		State:  &FieldState{Field: f},
	}
}

// Kind returns the variant kind.
func (t *Toggle) Kind() Kind {
	return t.State.Kind()
}

// Flip switches an unlocked boolean toggle. It reports whether the toggle
// changed.
func (t *Toggle) Flip() bool {
	s, ok := t.State.(*BoolState)
	if !ok || t.Locked {
		return false
	}
	s.On = !s.On
	return true
}

// Cycle advances an unlocked multi-state toggle, wrapping to 0 after the
// last state. It reports whether the toggle changed.
func (t *Toggle) Cycle() bool {
	s, ok := t.State.(*MultiState)
	if !ok || t.Locked {
		return false
	}
	s.Current = (s.Current + 1) % s.Total
	return true
}

// Value renders the toggle's state.
func (t *Toggle) Value() string {
	switch s := t.State.(type) {
	case *BoolState:
		if s.On {
			return "ON"
		}
		return "OFF"
	case *MultiState:
		if t.Formatter != nil {
			return t.Formatter(s.Current)
		}
		return fmt.Sprintf("%d/%d", s.Current+1, s.Total)
	case *FieldState:
		return s.Field.Value()
	default:
		return ""
	}
}

// PanelValue renders the state as shown in the state panel: switches in
// brackets, field content as is.
func (t *Toggle) PanelValue() string {
	if t.Kind() == KindField {
		return t.Value()
	}
	return "[" + t.Value() + "]"
}

func (t *Toggle) validate() error {
	if t == nil || t.State == nil {
		return ErrNilToggle
	}
	switch s := t.State.(type) {
	case *MultiState:
		if s.Total <= 0 || s.Current < 0 || s.Current >= s.Total {
			return errors.WrapPrefix(ErrInvalidState, t.Label, 0)
		}
	case *FieldState:
		if s.Field == nil {
			return errors.WrapPrefix(ErrNilToggle, t.Label+": no field", 0)
		}
	}
	return nil
}
