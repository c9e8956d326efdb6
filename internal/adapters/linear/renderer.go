// Package linear provides a synchronous, line-oriented renderer for the text menu.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports"
	"go.trai.ch/todo/internal/ui/output"
	"go.trai.ch/todo/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for pipes, CI and plain terminals.
// Every call writes complete text immediately; nothing is buffered between calls.
type Renderer struct {
	mu     sync.Mutex
	w      io.Writer
	output *termenv.Output
}

// NewRenderer creates a new Renderer writing to w. A nil w means os.Stdout.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}

	return &Renderer{
		w:      w,
		output: output.NewWithProfile(w, output.ColorProfileANSI),
	}
}

// Menu prints the numbered list of options.
func (r *Renderer) Menu(options []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.w)
	_, _ = fmt.Fprintln(r.w, r.output.String("Options:").Bold())
	for i, opt := range options {
		_, _ = fmt.Fprintf(r.w, "%d. %s\n", i+1, opt)
	}
}

// Prompt prints label without a trailing newline.
func (r *Renderer) Prompt(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprint(r.w, label)
}

// Message prints an informational line.
func (r *Renderer) Message(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.w, msg)
}

// Warn prints a rejected-input line in yellow.
func (r *Renderer) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.w, r.color(msg, style.Yellow))
}

// Tasks prints a 1-based task listing, or a notice when tasks is empty.
func (r *Renderer) Tasks(tasks []*domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(r.w, "No tasks found.")
		return
	}

	_, _ = fmt.Fprintln(r.w)
	_, _ = fmt.Fprintln(r.w, r.output.String("Task List:").Bold())
	for i, t := range tasks {
		line := t.String()
		if t.Completed {
			line = r.color(line, style.Green)
		}
		_, _ = fmt.Fprintf(r.w, "%d. %s\n", i+1, line)
	}
}

// History prints one line per snapshot. The current snapshot is marked with an arrow.
func (r *Renderer) History(entries []domain.HistoryEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.w)
	_, _ = fmt.Fprintln(r.w, r.output.String("History:").Bold())
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(r.w, "No changes recorded.")
		return
	}
	for _, e := range entries {
		marker := " "
		if e.Current {
			marker = r.color(style.Arrow, style.Iris)
		}
		_, _ = fmt.Fprintf(r.w, "%s %d. %s %s\n", marker, e.Index, e.Digest, taskCount(e.Tasks))
	}
}

func (r *Renderer) color(s string, c lipgloss.Color) string {
	return r.output.String(s).Foreground(r.output.Color(string(c))).String()
}

func taskCount(n int) string {
	if n == 1 {
		return "(1 task)"
	}
	return fmt.Sprintf("(%d tasks)", n)
}
