package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-errors/errors"

	"github.com/abdullathedruid/termwidget/internal/canvas"
)

// ErrReservedKey is returned when an action is bound to a key that ends
// input, which the menu keeps for activating the selected toggle.
var ErrReservedKey = errors.New("key is reserved for activation")

// ValidateKeys checks for duplicate keybindings, invalid key strings and
// bindings to the reserved terminator keys.
func ValidateKeys(keys *KeyBindings) error {
	// Build a map of binding -> action names for duplicate detection
	keyMap := make(map[canvas.Binding][]string)

	v := reflect.ValueOf(keys).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldName := t.Field(i).Name

		if field.Kind() != reflect.String {
			continue
		}

		keyStr := field.String()
		if keyStr == "" {
			continue
		}

		binding, err := ParseKey(keyStr)
		if err != nil {
			return errors.WrapPrefix(err, "invalid key for "+fieldName, 0)
		}
		if isTerminator(binding) {
			return errors.WrapPrefix(ErrReservedKey, fmt.Sprintf("%s bound to %q", fieldName, keyStr), 0)
		}
		keyMap[binding] = append(keyMap[binding], fieldName)
	}

	// Check for duplicates
	var duplicates []string
	for binding, actions := range keyMap {
		if len(actions) > 1 {
			duplicates = append(duplicates, fmt.Sprintf("key %q is used by: %s", KeyToString(binding), strings.Join(actions, ", ")))
		}
	}

	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		return errors.Errorf("duplicate keybindings found:\n  %s", strings.Join(duplicates, "\n  "))
	}

	return nil
}

func isTerminator(b canvas.Binding) bool {
	return canvas.KeyEvent{Key: b.Key, Rune: b.Rune}.IsTerminator()
}

// ValidateLogLevel checks that level is empty or a level name the logger
// understands.
func ValidateLogLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "error":
		return nil
	}
	return errors.Errorf("invalid log level: %q", level)
}
