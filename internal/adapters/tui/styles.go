package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/todo/internal/ui/style"
)

var (
	taskPendingStyle = lipgloss.NewStyle().
				Foreground(style.Slate)

	taskDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	tagStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate)
)
