// Package ui provides display-width aware text helpers shared by the widgets.
package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most width cells, ending it with "..." when
// there is room for one.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// PadRight pads a string to the right.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-sw)
}

// CenterOffset returns the start coordinate that centers size within bound.
// The result is negative when size exceeds bound.
func CenterOffset(bound, size int) int {
	return (bound - size) / 2
}

// CenteredOrigin returns the top-left corner of a height x width rectangle
// centered in a boundW x boundH area.
func CenteredOrigin(boundW, boundH, width, height int) (x, y int) {
	return CenterOffset(boundW, width), CenterOffset(boundH, height)
}

// WidestLabel returns the largest display width among labels.
func WidestLabel(labels []string) int {
	widest := 0
	for _, l := range labels {
		if w := runewidth.StringWidth(l); w > widest {
			widest = w
		}
	}
	return widest
}
