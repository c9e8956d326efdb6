// Package domain contains the core domain models and business logic for the task list.
package domain

import (
	"slices"
	"strings"
)

// TaskStatus is the display status of a task.
type TaskStatus string

const (
	// StatusPending indicates the task has not been completed yet.
	StatusPending TaskStatus = "Pending"
	// StatusCompleted indicates the task has been marked as completed.
	StatusCompleted TaskStatus = "Completed"
)

// Task represents a single to-do item.
// Description identifies the task within a list; lookups match the first task with an equal description.
type Task struct {
	Description string
	Completed   bool
	DueDate     string
	Tags        []string
}

// NewTask creates a pending task with no due date and no tags.
func NewTask(description string) *Task {
	return &Task{Description: description}
}

// MarkCompleted transitions the task to completed. Calling it again has no effect.
func (t *Task) MarkCompleted() {
	t.Completed = true
}

// Status returns the display status of the task.
func (t *Task) Status() TaskStatus {
	if t.Completed {
		return StatusCompleted
	}
	return StatusPending
}

// HasDueDate reports whether a due date was set.
func (t *Task) HasDueDate() bool {
	return t.DueDate != ""
}

// String renders the task as "<description> - <status>[, Due: <due date>]".
func (t *Task) String() string {
	var b strings.Builder
	b.WriteString(t.Description)
	b.WriteString(" - ")
	b.WriteString(string(t.Status()))
	if t.HasDueDate() {
		b.WriteString(", Due: ")
		b.WriteString(t.DueDate)
	}
	return b.String()
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	c.Tags = slices.Clone(t.Tags)
	return &c
}

// TaskBuilder accumulates task fields before producing a Task with Build.
type TaskBuilder struct {
	description string
	dueDate     string
	tags        []string
}

// NewTaskBuilder starts building a task with the given description.
func NewTaskBuilder(description string) *TaskBuilder {
	return &TaskBuilder{description: description}
}

// WithDueDate sets the due date. Any string is accepted.
func (b *TaskBuilder) WithDueDate(dueDate string) *TaskBuilder {
	b.dueDate = dueDate
	return b
}

// AddTags appends tags to the ones already collected.
func (b *TaskBuilder) AddTags(tags ...string) *TaskBuilder {
	b.tags = append(b.tags, tags...)
	return b
}

// Build returns a new pending Task. The builder's tag slice is copied, so later
// AddTags calls do not affect tasks that were already built.
func (b *TaskBuilder) Build() *Task {
	return &Task{
		Description: b.description,
		DueDate:     b.dueDate,
		Tags:        slices.Clone(b.tags),
	}
}

// ParseTags splits a comma-separated list into trimmed, non-empty tags.
func ParseTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
