// Package notify is the user-facing notification capability. Stores
// take a Notifier instead of printing, so they stay testable and the
// rendering (a styled terminal line here, toasts in the original web
// client) is swappable.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Kind is the notification severity.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

// Notifier shows one transient message to the user.
type Notifier interface {
	Notify(message string, kind Kind)
}

// State colors, matching the TUI theme.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))
)

// Terminal renders notifications as styled lines.
type Terminal struct {
	out io.Writer
}

// NewTerminal returns a Notifier writing to stderr so command output
// stays clean for piping.
func NewTerminal() *Terminal {
	return &Terminal{out: os.Stderr}
}

func (t *Terminal) Notify(message string, kind Kind) {
	switch kind {
	case Success:
		fmt.Fprintln(t.out, successStyle.Render("✔ "+message))
	case Error:
		fmt.Fprintln(t.out, errorStyle.Render("✘ "+message))
	default:
		fmt.Fprintln(t.out, infoStyle.Render("• "+message))
	}
}

// Recorder captures notifications for tests.
type Recorder struct {
	mu       sync.Mutex
	Messages []string
	Kinds    []Kind
}

func (r *Recorder) Notify(message string, kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, message)
	r.Kinds = append(r.Kinds, kind)
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(string, Kind) {}
