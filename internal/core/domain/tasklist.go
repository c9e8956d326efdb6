package domain

import (
	"iter"
	"slices"
)

// DefaultHistoryLimit is the number of snapshots a TaskList keeps unless configured otherwise.
const DefaultHistoryLimit = 1000

// TaskList holds an ordered sequence of tasks and a linear snapshot history.
//
// Every mutation records a snapshot and history[cursor] matches the visible tasks.
// The history starts empty, so the first snapshot is the floor: Undo never goes
// behind it. A mutation made while the cursor is behind the newest snapshot
// discards the undone snapshots first.
//
// A TaskList is not safe for concurrent use.
type TaskList struct {
	tasks   []*Task
	history []Snapshot
	cursor  int
	limit   int
}

// TaskListOption configures a TaskList.
type TaskListOption func(*TaskList)

// WithHistoryLimit caps the number of retained snapshots. Zero or a negative
// value means the history is unbounded. Limits below two are raised to two so
// that the latest mutation can always be undone.
func WithHistoryLimit(limit int) TaskListOption {
	return func(l *TaskList) {
		switch {
		case limit <= 0:
			l.limit = 0
		case limit < 2:
			l.limit = 2
		default:
			l.limit = limit
		}
	}
}

// NewTaskList creates an empty TaskList with no recorded history.
func NewTaskList(opts ...TaskListOption) *TaskList {
	l := &TaskList{limit: DefaultHistoryLimit, cursor: -1}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddTask appends a copy of the task and records a snapshot. Duplicate descriptions are allowed.
// Later changes to t do not affect the list.
func (l *TaskList) AddTask(t *Task) {
	l.tasks = append(l.tasks, t.Clone())
	l.saveState()
}

// MarkCompleted completes the first task whose description matches.
// It returns false, without recording a snapshot, when no task matches.
func (l *TaskList) MarkCompleted(description string) bool {
	for _, t := range l.tasks {
		if t.Description == description {
			t.MarkCompleted()
			l.saveState()
			return true
		}
	}
	return false
}

// DeleteTask removes every task whose description matches and returns how many were removed.
// A snapshot is recorded even when nothing matched.
func (l *TaskList) DeleteTask(description string) int {
	kept := make([]*Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if t.Description != description {
			kept = append(kept, t)
		}
	}
	removed := len(l.tasks) - len(kept)
	l.tasks = kept
	l.saveState()
	return removed
}

// ViewTasks returns an iterator over the tasks matching the filter, in insertion order.
// The yielded tasks belong to the list and must not be modified.
func (l *TaskList) ViewTasks(filter Filter) iter.Seq[*Task] {
	return func(yield func(*Task) bool) {
		for _, t := range l.tasks {
			if !filter.Match(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the number of visible tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Undo restores the previous snapshot.
// It returns false when fewer than two snapshots lie at or behind the cursor.
func (l *TaskList) Undo() bool {
	if !l.CanUndo() {
		return false
	}
	l.cursor--
	l.restore()
	return true
}

// Redo re-applies the most recently undone mutation.
// It returns false when there is nothing to redo.
func (l *TaskList) Redo() bool {
	if !l.CanRedo() {
		return false
	}
	l.cursor++
	l.restore()
	return true
}

// CanUndo reports whether an earlier snapshot exists to move back to.
func (l *TaskList) CanUndo() bool {
	return l.cursor > 0
}

// CanRedo reports whether Redo would change the state.
func (l *TaskList) CanRedo() bool {
	return l.cursor < len(l.history)-1
}

// History describes every retained snapshot, oldest first.
func (l *TaskList) History() []HistoryEntry {
	entries := make([]HistoryEntry, len(l.history))
	for i, s := range l.history {
		entries[i] = HistoryEntry{
			Index:   i,
			Digest:  s.Digest(),
			Tasks:   s.Len(),
			Current: i == l.cursor,
		}
	}
	return entries
}

// Current returns the snapshot matching the visible tasks.
// Before the first mutation it is an empty snapshot.
func (l *TaskList) Current() Snapshot {
	if l.cursor < 0 {
		return Snapshot{}
	}
	return l.history[l.cursor]
}

// saveState records the visible tasks as the newest snapshot.
func (l *TaskList) saveState() {
	l.history = append(l.history[:l.cursor+1], newSnapshot(l.tasks))
	l.cursor = len(l.history) - 1

	if l.limit > 0 && len(l.history) > l.limit {
		excess := len(l.history) - l.limit
		l.history = slices.Delete(l.history, 0, excess)
		l.cursor -= excess
	}
}

func (l *TaskList) restore() {
	l.tasks = l.history[l.cursor].Tasks()
}
