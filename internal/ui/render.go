package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Summary colours.
var (
	PassColor  = lipgloss.Color("#43BF6D")
	FailColor  = lipgloss.Color("#FF5555")
	MutedColor = lipgloss.Color("#626262")
)

var (
	summaryKeyStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	summaryValueStyle = lipgloss.NewStyle().Bold(true)
)

// Detail is one labelled line of a summary.
type Detail struct {
	Key   string
	Value string
}

// Summary is the boxed report printed after a widget demo exits.
type Summary struct {
	Title   string
	Pass    bool
	Details []Detail
}

// AddDetail appends a key-value line.
func (s *Summary) AddDetail(key, value string) *Summary {
	s.Details = append(s.Details, Detail{Key: key, Value: value})
	return s
}

func (s *Summary) paddedKeys() []string {
	keys := make([]string, len(s.Details))
	for i, d := range s.Details {
		keys[i] = d.Key + ":"
	}
	width := WidestLabel(keys)
	for i := range keys {
		keys[i] = PadRight(keys[i], width)
	}
	return keys
}

// Lines returns the unstyled summary body, keys padded to a common width.
func (s *Summary) Lines() []string {
	keys := s.paddedKeys()
	lines := make([]string, len(s.Details))
	for i, d := range s.Details {
		lines[i] = keys[i] + " " + d.Value
	}
	return lines
}

// Render returns the summary in a rounded border, green when it passed and
// red otherwise.
func (s *Summary) Render() string {
	color := PassColor
	if !s.Pass {
		color = FailColor
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(color).Bold(true).Render(s.Title), "")
	keys := s.paddedKeys()
	for i, d := range s.Details {
		lines = append(lines, summaryKeyStyle.Render(keys[i])+" "+summaryValueStyle.Render(d.Value))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}
