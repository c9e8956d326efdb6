// Package menu implements the line-oriented task menu.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports"
)

// Choice is a menu option number as typed by the user.
type Choice string

// Menu choices.
const (
	ChoiceAdd      Choice = "1"
	ChoiceComplete Choice = "2"
	ChoiceDelete   Choice = "3"
	ChoiceView     Choice = "4"
	ChoiceUndo     Choice = "5"
	ChoiceRedo     Choice = "6"
	ChoiceHistory  Choice = "7"
	ChoiceExit     Choice = "8"
)

// Options lists the menu labels in choice order.
var Options = []string{
	"Add Task",
	"Mark Completed",
	"Delete Task",
	"View Tasks",
	"Undo",
	"Redo",
	"History",
	"Exit",
}

// Prompts.
const (
	PromptChoice      = "Enter your choice: "
	PromptDescription = "Enter task description: "
	PromptDueDate     = "Enter due date (optional): "
	PromptTags        = "Enter tags (optional, comma-separated): "
	PromptComplete    = "Enter task description to mark as completed: "
	PromptDelete      = "Enter task details to delete: "
	PromptFilter      = "Enter filter type ('all', 'completed', 'pending'): "
)

// MsgInvalidChoice is printed for any unrecognized choice.
const MsgInvalidChoice = "Invalid choice. Kindly try again."

// Menu drives a TaskList from line input and reports through a Renderer.
// A Menu is used by one goroutine at a time.
type Menu struct {
	list          *domain.TaskList
	renderer      ports.Renderer
	tracer        ports.Tracer
	sessionID     string
	defaultFilter domain.Filter
}

// Option configures a Menu.
type Option func(*Menu)

// WithSessionID tags every operation span with id.
func WithSessionID(id string) Option {
	return func(m *Menu) {
		m.sessionID = id
	}
}

// WithDefaultFilter sets the filter used when the filter prompt is left empty.
func WithDefaultFilter(f domain.Filter) Option {
	return func(m *Menu) {
		m.defaultFilter = f
	}
}

// New creates a Menu over list.
func New(list *domain.TaskList, renderer ports.Renderer, tracer ports.Tracer, opts ...Option) *Menu {
	m := &Menu{
		list:          list,
		renderer:      renderer,
		tracer:        tracer,
		defaultFilter: domain.FilterAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu and handles choices until Exit or the end of in.
// It returns ctx.Err() when the context is cancelled and a wrapped
// domain.ErrInputReadFailed when in fails.
func (m *Menu) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	input := newLineReader(ctx, in)

	for {
		m.renderer.Menu(Options)
		m.renderer.Prompt(PromptChoice)

		choice, ok, err := input.next(ctx)
		if err != nil {
			return err
		}
		choice = strings.TrimSpace(choice)
		if !ok || Choice(choice) == ChoiceExit {
			return nil
		}

		if err := m.dispatch(ctx, input, Choice(choice)); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, input *lineReader, choice Choice) error {
	switch choice {
	case ChoiceAdd:
		return m.add(ctx, input)
	case ChoiceComplete:
		return m.complete(ctx, input)
	case ChoiceDelete:
		return m.delete(ctx, input)
	case ChoiceView:
		return m.view(ctx, input)
	case ChoiceUndo:
		m.undo(ctx)
	case ChoiceRedo:
		m.redo(ctx)
	case ChoiceHistory:
		m.history(ctx)
	default:
		m.renderer.Warn(MsgInvalidChoice)
	}
	return nil
}

// ask prompts for one answer. It returns io.EOF when the input ends first,
// which abandons the current operation.
func (m *Menu) ask(ctx context.Context, input *lineReader, prompt string) (string, error) {
	m.renderer.Prompt(prompt)
	answer, ok, err := input.next(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", io.EOF
	}
	return answer, nil
}

func (m *Menu) add(ctx context.Context, input *lineReader) error {
	description, err := m.ask(ctx, input, PromptDescription)
	if err != nil {
		return err
	}
	dueDate, err := m.ask(ctx, input, PromptDueDate)
	if err != nil {
		return err
	}
	tags, err := m.ask(ctx, input, PromptTags)
	if err != nil {
		return err
	}

	_, span := m.start(ctx, "todo.add")
	defer span.End()

	// Descriptions are kept as typed; only the due date is trimmed.
	task := domain.NewTaskBuilder(description).
		WithDueDate(strings.TrimSpace(dueDate)).
		AddTags(domain.ParseTags(tags)...).
		Build()
	m.list.AddTask(task)

	span.SetAttribute("task.description", description)
	span.SetAttribute("task.tags", len(task.Tags))
	m.renderer.Message(fmt.Sprintf("Task '%s' added.", description))
	return nil
}

func (m *Menu) complete(ctx context.Context, input *lineReader) error {
	description, err := m.ask(ctx, input, PromptComplete)
	if err != nil {
		return err
	}

	_, span := m.start(ctx, "todo.complete")
	defer span.End()
	span.SetAttribute("task.description", description)

	found := m.list.MarkCompleted(description)
	span.SetAttribute("task.found", found)
	if !found {
		m.renderer.Message(fmt.Sprintf("Task '%s' not found.", description))
		return nil
	}
	m.renderer.Message(fmt.Sprintf("Task '%s' marked as completed.", description))
	return nil
}

func (m *Menu) delete(ctx context.Context, input *lineReader) error {
	description, err := m.ask(ctx, input, PromptDelete)
	if err != nil {
		return err
	}

	_, span := m.start(ctx, "todo.delete")
	defer span.End()
	span.SetAttribute("task.description", description)

	removed := m.list.DeleteTask(description)
	span.SetAttribute("task.removed", removed)
	m.renderer.Message(fmt.Sprintf("Task '%s' deleted.", description))
	return nil
}

func (m *Menu) view(ctx context.Context, input *lineReader) error {
	answer, err := m.ask(ctx, input, PromptFilter)
	if err != nil {
		return err
	}

	filter := m.defaultFilter
	if answer = strings.TrimSpace(answer); answer != "" {
		filter = domain.ParseFilter(answer)
	}

	_, span := m.start(ctx, "todo.view")
	defer span.End()
	span.SetAttribute("filter", string(filter))

	tasks := slices.Collect(m.list.ViewTasks(filter))
	span.SetAttribute("tasks", len(tasks))
	m.renderer.Tasks(tasks)
	return nil
}

func (m *Menu) undo(ctx context.Context) {
	_, span := m.start(ctx, "todo.undo")
	defer span.End()

	span.SetAttribute("applied", m.list.Undo())
	m.renderer.Message("Undo Finished.")
}

func (m *Menu) redo(ctx context.Context) {
	_, span := m.start(ctx, "todo.redo")
	defer span.End()

	span.SetAttribute("applied", m.list.Redo())
	m.renderer.Message("Redo Finished.")
}

func (m *Menu) history(ctx context.Context) {
	_, span := m.start(ctx, "todo.history")
	defer span.End()

	entries := m.list.History()
	span.SetAttribute("snapshots", len(entries))
	m.renderer.History(entries)
}

func (m *Menu) start(ctx context.Context, name string) (context.Context, ports.Span) {
	return m.tracer.Start(ctx, name, ports.WithAttribute("session.id", m.sessionID))
}
