package tui

import (
	"fmt"
	"strings"

	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/ui/style"
)

const helpText = "a add • space complete • d delete • u undo • r redo • f filter • h history • q quit"

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("TODO"))
	fmt.Fprintf(&s, " %s · %d task(s)\n\n", m.Filter, m.List.Len())

	if m.ShowHistory {
		m.renderHistory(&s)
	} else {
		m.renderTasks(&s)
	}

	s.WriteString("\n")
	if m.Status != "" {
		s.WriteString(statusStyle.Render(m.Status))
	}
	s.WriteString("\n")

	if m.input.active {
		fmt.Fprintf(&s, "%s: %s█\n", stepLabels[m.input.step], string(m.input.buf))
		s.WriteString(helpStyle.Render("enter confirm • esc cancel"))
	} else {
		s.WriteString("\n")
		s.WriteString(helpStyle.Render(helpText))
	}
	s.WriteString("\n")

	return s.String()
}

func (m *Model) renderTasks(s *strings.Builder) {
	visible := m.Visible()
	if len(visible) == 0 {
		s.WriteString(taskPendingStyle.Render("No tasks found.") + "\n")
		return
	}

	start := m.ListOffset
	end := len(visible)
	if m.ListHeight > 0 {
		end = min(m.ListOffset+m.ListHeight, len(visible))
	}
	start = min(start, end)

	for i := start; i < end; i++ {
		s.WriteString(m.renderTaskRow(i, visible[i]) + "\n")
	}
}

func (m *Model) renderTaskRow(index int, task *domain.Task) string {
	icon := style.Circle
	rowStyle := taskPendingStyle
	if task.Completed {
		icon = style.Check
		rowStyle = taskDoneStyle
	}

	cursor := "  "
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		if !task.Completed {
			rowStyle = selectedStyle
		}
	}

	row := cursor + rowStyle.Render(fmt.Sprintf("%s %d. %s", icon, index+1, task))
	if len(task.Tags) > 0 {
		row += " " + tagStyle.Render("#"+strings.Join(task.Tags, " #"))
	}
	return row
}

func (m *Model) renderHistory(s *strings.Builder) {
	entries := m.List.History()
	if len(entries) == 0 {
		s.WriteString(taskPendingStyle.Render("No changes recorded.") + "\n")
		return
	}
	for _, e := range entries {
		marker := "  "
		line := fmt.Sprintf("%d. %s (%d tasks)", e.Index, e.Digest, e.Tasks)
		if e.Current {
			marker = selectedStyle.Render(style.Arrow + " ")
			line = selectedStyle.Render(line)
		}
		s.WriteString(marker + line + "\n")
	}
}
