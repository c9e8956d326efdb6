// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/todo/internal/core/domain"

// Renderer is the abstraction for menu output.
// It decouples the menu engine from presentation, so the same session can
// write plain lines to a pipe or styled lines to a terminal.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Menu prints the numbered list of options.
	Menu(options []string)

	// Prompt asks the user for a value. It does not end the line.
	Prompt(label string)

	// Message prints an informational line.
	Message(msg string)

	// Warn prints a line reporting a rejected input.
	Warn(msg string)

	// Tasks prints a titled, 1-based listing of the given tasks.
	Tasks(tasks []*domain.Task)

	// History prints one line per snapshot.
	History(entries []domain.HistoryEntry)
}
