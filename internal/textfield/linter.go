package textfield

import "strings"

// Linter validates the content of a field. Linters are closures that carry
// their own arguments.
type Linter func(*TextField) bool

// NotEmpty passes when the field holds at least one rune. It is the default
// chain of a field built without explicit linters.
func NotEmpty() Linter {
	return func(f *TextField) bool {
		return f.Len() > 0
	}
}

// Equals passes when the content is exactly s.
func Equals(s string) Linter {
	return func(f *TextField) bool {
		return f.Value() == s
	}
}

// Whitelist passes when every rune of the content appears in chars.
func Whitelist(chars string) Linter {
	return func(f *TextField) bool {
		for _, r := range f.runes() {
			if !strings.ContainsRune(chars, r) {
				return false
			}
		}
		return true
	}
}

// Blacklist passes when no rune of the content appears in chars.
func Blacklist(chars string) Linter {
	return func(f *TextField) bool {
		for _, r := range f.runes() {
			if strings.ContainsRune(chars, r) {
				return false
			}
		}
		return true
	}
}

// CharRange passes when every rune r of the content has lo <= r <= hi.
func CharRange(lo, hi rune) Linter {
	return func(f *TextField) bool {
		for _, r := range f.runes() {
			if r < lo || r > hi {
				return false
			}
		}
		return true
	}
}

// DigitsOnly passes when the content holds only ASCII digits.
func DigitsOnly() Linter {
	return CharRange('0', '9')
}

// PrintableOnly passes when the content holds only printable ASCII.
func PrintableOnly() Linter {
	return CharRange(' ', '~')
}

// DefaultLinters returns the chain used when none is supplied.
func DefaultLinters() []Linter {
	return []Linter{NotEmpty()}
}
