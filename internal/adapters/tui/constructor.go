package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports"
)

// Option configures a Model.
type Option func(*Model)

// WithSessionID tags every operation span with id.
func WithSessionID(id string) Option {
	return func(m *Model) {
		m.sessionID = id
	}
}

// WithFilter sets the initial filter.
func WithFilter(f domain.Filter) Option {
	return func(m *Model) {
		m.Filter = f
	}
}

// NewModel creates a new TUI model over list.
func NewModel(ctx context.Context, list *domain.TaskList, tracer ports.Tracer, opts ...Option) *Model {
	m := &Model{
		List:   list,
		Filter: domain.FilterAll,
		tracer: tracer,
		ctx:    ctx,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run starts a Bubble Tea program for model and blocks until the user quits or ctx is done.
func Run(ctx context.Context, model *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(model, opts...)

	if _, err := program.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return ctxErr
		}
		return err
	}
	return nil
}
