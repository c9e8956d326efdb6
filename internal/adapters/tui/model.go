// Package tui provides a full-screen task list session built on Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports"
)

// chromeHeight is the number of rows used by the title, status, input and help lines.
const chromeHeight = 7

type inputStep int

const (
	stepDescription inputStep = iota
	stepDueDate
	stepTags
)

var stepLabels = map[inputStep]string{
	stepDescription: "Description",
	stepDueDate:     "Due date (optional)",
	stepTags:        "Tags (optional, comma-separated)",
}

// inputState holds the answers of an in-progress add.
type inputState struct {
	active      bool
	step        inputStep
	buf         []rune
	description string
	dueDate     string
}

// Model is the Bubble Tea model of an interactive session over a TaskList.
type Model struct {
	List        *domain.TaskList
	Filter      domain.Filter
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	Width       int
	ShowHistory bool
	Status      string

	tracer    ports.Tracer
	sessionID string
	ctx       context.Context
	input     inputState
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Visible returns the tasks shown under the current filter.
func (m *Model) Visible() []*domain.Task {
	return slices.Collect(m.List.ViewTasks(m.Filter))
}

// Editing reports whether the add form is open.
func (m *Model) Editing() bool {
	return m.input.active
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.ListHeight = max(msg.Height-chromeHeight, 1)
		m.ensureVisible()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.input.active {
			m.updateInput(msg)
			return m, nil
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

//nolint:cyclop // key dispatch
func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "k", "up":
		if m.SelectedIdx > 0 {
			m.SelectedIdx--
			m.ensureVisible()
		}
	case "j", "down":
		if m.SelectedIdx < len(m.Visible())-1 {
			m.SelectedIdx++
			m.ensureVisible()
		}
	case "a":
		m.input = inputState{active: true, step: stepDescription}
		m.Status = ""
	case " ", "c":
		m.completeSelected()
	case "d":
		m.deleteSelected()
	case "u":
		m.undo()
	case "r":
		m.redo()
	case "f":
		m.Filter = m.Filter.Next()
		m.Status = "Filter: " + string(m.Filter)
		m.clampSelection()
	case "h":
		m.ShowHistory = !m.ShowHistory
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input = inputState{}
		m.Status = "Add cancelled."
	case tea.KeyEnter:
		m.advanceInput()
	case tea.KeyBackspace:
		if n := len(m.input.buf); n > 0 {
			m.input.buf = m.input.buf[:n-1]
		}
	case tea.KeySpace:
		m.input.buf = append(m.input.buf, ' ')
	case tea.KeyRunes:
		m.input.buf = append(m.input.buf, msg.Runes...)
	}
}

func (m *Model) advanceInput() {
	answer := string(m.input.buf)
	m.input.buf = nil

	switch m.input.step {
	case stepDescription:
		m.input.description = answer
		m.input.step = stepDueDate
	case stepDueDate:
		m.input.dueDate = answer
		m.input.step = stepTags
	case stepTags:
		m.add(m.input.description, m.input.dueDate, answer)
		m.input = inputState{}
	}
}

func (m *Model) selected() *domain.Task {
	visible := m.Visible()
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(visible) {
		return visible[m.SelectedIdx]
	}
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

// clampSelection keeps the cursor on an existing row after the list shrinks.
func (m *Model) clampSelection() {
	n := len(m.Visible())
	if m.SelectedIdx >= n {
		m.SelectedIdx = n - 1
	}
	if m.SelectedIdx < 0 {
		m.SelectedIdx = 0
	}
	if m.ListOffset > m.SelectedIdx {
		m.ListOffset = m.SelectedIdx
	}
	m.ensureVisible()
}

func (m *Model) add(description, dueDate, tags string) {
	_, span := m.start("todo.add")
	defer span.End()

	task := domain.NewTaskBuilder(description).
		WithDueDate(dueDate).
		AddTags(domain.ParseTags(tags)...).
		Build()
	m.List.AddTask(task)

	span.SetAttribute("task.description", description)
	span.SetAttribute("task.tags", len(task.Tags))
	m.Status = fmt.Sprintf("Task '%s' added.", description)
}

func (m *Model) completeSelected() {
	task := m.selected()
	if task == nil {
		return
	}

	_, span := m.start("todo.complete")
	defer span.End()
	span.SetAttribute("task.description", task.Description)

	// Completion matches by description, so the first task with this
	// description is the one that would change.
	if first := m.firstMatch(task.Description); first != nil && first.Completed {
		span.SetAttribute("task.found", false)
		m.Status = fmt.Sprintf("Task '%s' is already completed.", task.Description)
		return
	}

	found := m.List.MarkCompleted(task.Description)
	span.SetAttribute("task.found", found)
	m.Status = fmt.Sprintf("Task '%s' marked as completed.", task.Description)
	m.clampSelection()
}

func (m *Model) firstMatch(description string) *domain.Task {
	for t := range m.List.ViewTasks(domain.FilterAll) {
		if t.Description == description {
			return t
		}
	}
	return nil
}

func (m *Model) deleteSelected() {
	task := m.selected()
	if task == nil {
		return
	}

	_, span := m.start("todo.delete")
	defer span.End()
	span.SetAttribute("task.description", task.Description)

	span.SetAttribute("task.removed", m.List.DeleteTask(task.Description))
	m.Status = fmt.Sprintf("Task '%s' deleted.", task.Description)
	m.clampSelection()
}

func (m *Model) undo() {
	_, span := m.start("todo.undo")
	defer span.End()

	applied := m.List.Undo()
	span.SetAttribute("applied", applied)
	if applied {
		m.Status = "Undo Finished."
	} else {
		m.Status = "Nothing to undo."
	}
	m.clampSelection()
}

func (m *Model) redo() {
	_, span := m.start("todo.redo")
	defer span.End()

	applied := m.List.Redo()
	span.SetAttribute("applied", applied)
	if applied {
		m.Status = "Redo Finished."
	} else {
		m.Status = "Nothing to redo."
	}
	m.clampSelection()
}

func (m *Model) start(name string) (context.Context, ports.Span) {
	return m.tracer.Start(m.ctx, name, ports.WithAttribute("session.id", m.sessionID))
}
