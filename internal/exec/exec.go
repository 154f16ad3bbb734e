// Package exec runs external commands for the scaffolder, currently just
// git. Output is captured rather than streamed, and long-running
// commands can show a spinner while they work.
package exec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Runner executes external commands.
type Runner struct {
	stderr io.Writer
	dir    string

	// for stubbing in tests
	commandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// Options configures a Runner.
type Options struct {
	Stderr io.Writer // spinner and diagnostics (defaults to os.Stderr)
	Dir    string    // working directory
}

// NewRunner creates a runner with sensible defaults.
func NewRunner(opts *Options) *Runner {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Runner{
		stderr:      opts.Stderr,
		dir:         opts.Dir,
		commandFunc: exec.CommandContext,
	}
}

// Run executes a command and waits for it. On failure the command's
// stderr is folded into the returned error.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	cmd := r.commandFunc(ctx, name, args...)
	if r.dir != "" {
		cmd.Dir = r.dir
	}

	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if isCommandNotFound(err) {
			return fmt.Errorf("command %q not found: %w", name, err)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %s", name, msg)
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// RunWithSpinner runs a command while showing a spinner with the given
// message on the runner's stderr stream.
func (r *Runner) RunWithSpinner(ctx context.Context, message, name string, args ...string) error {
	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx, name, args...)
	}()

	m := newSpinnerModel(message)
	p := tea.NewProgram(m, tea.WithOutput(r.stderr))

	go func() {
		// spinner render errors are cosmetic only
		_, _ = p.Run()
	}()

	err := <-done
	p.Send(spinnerDoneMsg{err: err})

	// give the spinner time to render its final frame
	time.Sleep(50 * time.Millisecond)
	p.Quit()

	return err
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("✗ %s\n", m.message)
		}
		return fmt.Sprintf("✓ %s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}

func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	return err == exec.ErrNotFound ||
		strings.Contains(err.Error(), "executable file not found") ||
		strings.Contains(err.Error(), "command not found")
}
