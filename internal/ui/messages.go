// Package ui styles the CLI's user-facing status messages.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))
)

// Messenger writes styled status messages to a single writer. All output
// the user sees outside verbose mode goes through here.
type Messenger struct {
	out io.Writer
}

// NewMessenger creates a Messenger writing to out.
func NewMessenger(out io.Writer) *Messenger {
	return &Messenger{out: out}
}

// line writes a single finished line
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (m *Messenger) line(s string) {
	fmt.Fprintln(m.out, s)
}

// Successf prints a green checkmarked message.
func (m *Messenger) Successf(format string, args ...any) {
	m.line(successStyle.Render("✅ " + fmt.Sprintf(format, args...)))
}

// Errorf prints a red error message.
func (m *Messenger) Errorf(format string, args ...any) {
	m.line(errorStyle.Render("❌ " + fmt.Sprintf(format, args...)))
}

// Warnf prints a yellow warning message.
func (m *Messenger) Warnf(format string, args ...any) {
	m.line(warningStyle.Render("⚠️  " + fmt.Sprintf(format, args...)))
}

// Hintf prints a dim suggestion line.
func (m *Messenger) Hintf(format string, args ...any) {
	m.line(hintStyle.Render("💡 " + fmt.Sprintf(format, args...)))
}

// Infof prints an unstyled line.
func (m *Messenger) Infof(format string, args ...any) {
	m.line(fmt.Sprintf(format, args...))
}

// Pathf prints a labeled file path.
func (m *Messenger) Pathf(label, path string) {
	m.line("📄 " + label + ": " + pathStyle.Render(path))
}

// List prints indented items under a preceding message.
func (m *Messenger) List(items []string) {
	for _, item := range items {
		m.line("   - " + item)
	}
}

// Blank prints an empty line.
func (m *Messenger) Blank() {
	m.line("")
}
