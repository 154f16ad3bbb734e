// Package output provides styled terminal output for the plugsmith CLI.
//
// Functions use lipgloss for styling but abstract away the details from
// callers.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// The CLI calls this when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a completed-operation message in bold green.
func Success(msg string) {
	fmt.Println(successStyle.Render("✨ " + msg))
}

// Error prints a failure message in bold red.
func Error(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

// Info prints a status or explanation message in cyan.
func Info(msg string) {
	fmt.Println(infoStyle.Render(msg))
}

// Step prints an indented step message in gray. Use this for actionable
// next steps, sub-items, or error remedies.
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("· " + msg))
	}
}
