// Package styles provides the shared lipgloss palette for supgit output.
//
// Styles render full ANSI sequences; the stdout writer set up by the
// CLI downsamples them for pipes, dumb terminals and NO_COLOR.
package styles

import (
	"fmt"
	"image/color"
	"slices"
	"sort"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for UI components
type Theme struct {
	Primary color.Color // prompt titles
	Accent  color.Color // selected items
	Success color.Color // confirmation marks
	Error   color.Color // error messages
	Muted   color.Color // annotations like "(current)"
	Warning color.Color // warnings and cancellations
}

var themes = map[string]Theme{
	"default": {
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
		Warning: lipgloss.Color("214"), // orange
	},
	"dracula": {
		Primary: lipgloss.Color("#bd93f9"),
		Accent:  lipgloss.Color("#ff79c6"),
		Success: lipgloss.Color("#50fa7b"),
		Error:   lipgloss.Color("#ff5555"),
		Muted:   lipgloss.Color("#6272a4"),
		Warning: lipgloss.Color("#ffb86c"),
	},
	"nord": {
		Primary: lipgloss.Color("#88c0d0"),
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Muted:   lipgloss.Color("#4c566a"),
		Warning: lipgloss.Color("#ebcb8b"),
	},
	// none keeps formatting (bold) but leaves colors to the terminal
	"none": {
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
	},
}

// Common styles, rebuilt by Init.
var (
	current Theme

	// AccentStyle highlights the selected list entry
	AccentStyle lipgloss.Style
	// TitleStyle renders prompt titles
	TitleStyle lipgloss.Style
	// SuccessStyle renders the confirmation mark
	SuccessStyle lipgloss.Style
	// ErrorStyle renders error prefixes
	ErrorStyle lipgloss.Style
	// MutedStyle renders annotations
	MutedStyle lipgloss.Style
	// WarningStyle renders warnings and cancellations
	WarningStyle lipgloss.Style
)

func init() {
	apply(themes["default"])
}

// ThemeNames returns the names accepted by Init, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Init switches the active palette. An empty name selects "default".
func Init(name string) error {
	if name == "" {
		name = "default"
	}
	theme, ok := themes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, ThemeNames())
	}
	apply(theme)
	return nil
}

// ValidTheme reports whether name is a known theme (or empty).
func ValidTheme(name string) bool {
	return name == "" || slices.Contains(ThemeNames(), name)
}

// Current returns the active palette.
func Current() Theme {
	return current
}

func apply(t Theme) {
	current = t
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	TitleStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
}

// CheckMark returns the styled success mark.
func CheckMark() string {
	return SuccessStyle.Render("✓")
}
