package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a recorded copy of the task sequence at one point in history.
// Tasks are stored by value so that later changes to live tasks never leak into it.
type Snapshot struct {
	tasks []Task
}

func newSnapshot(tasks []*Task) Snapshot {
	s := Snapshot{tasks: make([]Task, len(tasks))}
	for i, t := range tasks {
		s.tasks[i] = *t.Clone()
	}
	return s
}

// Len returns the number of tasks in the snapshot.
func (s Snapshot) Len() int {
	return len(s.tasks)
}

// Tasks returns fresh copies of the recorded tasks.
func (s Snapshot) Tasks() []*Task {
	out := make([]*Task, len(s.tasks))
	for i := range s.tasks {
		out[i] = s.tasks[i].Clone()
	}
	return out
}

// Digest returns a stable hash of the snapshot contents as 16 hex digits.
// Snapshots with equal task sequences share a digest.
func (s Snapshot) Digest() string {
	hasher := xxhash.New()
	for i := range s.tasks {
		t := &s.tasks[i]
		_, _ = hasher.WriteString(t.Description)
		_, _ = hasher.Write([]byte{0})
		if t.Completed {
			_, _ = hasher.Write([]byte{1})
		} else {
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.WriteString(t.DueDate)
		_, _ = hasher.Write([]byte{0})
		for _, tag := range t.Tags {
			_, _ = hasher.WriteString(tag)
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0}) // Task separator
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

// HistoryEntry describes one snapshot of a TaskList history for display.
type HistoryEntry struct {
	Index   int
	Digest  string
	Tasks   int
	Current bool
}
