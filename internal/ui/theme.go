// Package ui provides terminal presentation for the volt CLI: the lipgloss
// theme, summary cards, and spinner/progress indicators with a headless
// fallback for non-TTY and CI environments.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Colors groups the theme's color values (lipgloss-compatible hex strings).
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme controls styling across all CLI output.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// DefaultTheme returns the standard volt theme. Color is disabled when
// NO_COLOR is set or stdout is not a terminal.
func DefaultTheme() *Theme {
	noColor := os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stdout.Fd())
	return &Theme{
		Colors: Colors{
			Primary:   "#7C3AED",
			Secondary: "#06B6D4",
			Success:   "#22C55E",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
		NoColor: noColor,
	}
}
