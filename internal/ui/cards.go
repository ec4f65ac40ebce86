package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#22C55E")).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22C55E"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Width(14)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))
)

// KV is one key/value row in a summary card.
type KV struct {
	Key   string
	Value string
}

// SuccessCard renders a bordered card with a title line and detail lines.
func SuccessCard(title string, details ...string) string {
	lines := []string{titleStyle.Render("✓ " + title)}
	lines = append(lines, details...)
	return successStyle.Render(strings.Join(lines, "\n"))
}

// Warn renders a warning line.
func Warn(msg string) string {
	return warnStyle.Render("Warning: " + msg)
}

// KeyValueLines renders aligned key/value rows.
func KeyValueLines(pairs []KV) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(keyStyle.Render(p.Key) + " " + p.Value)
	}
	return b.String()
}

// Banner renders the startup banner shown before the init wizard.
func Banner(version string) string {
	return bannerStyle.Render(fmt.Sprintf("⚡ volt %s — Volt framework scaffolding", version))
}
