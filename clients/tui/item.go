package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dohr-michael/taskman/internal/tasks"
	"github.com/dohr-michael/taskman/internal/theme"
)

// ItemProps is everything a task row's rendering depends on.
type ItemProps struct {
	Task     tasks.Task
	Theme    theme.Theme
	Selected bool
}

// TaskItem renders one task row. It keeps the last props and output and
// skips rendering when the new props are equal.
type TaskItem struct {
	task     tasks.Task
	last     ItemProps
	out      string
	rendered bool
	renders  int
}

// NewTaskItem creates the row for task.
func NewTaskItem(task tasks.Task) *TaskItem {
	return &TaskItem{task: task}
}

// Bind points the row's intents at task.
func (it *TaskItem) Bind(task tasks.Task) {
	it.task = task
}

// Render returns the row for p.
func (it *TaskItem) Render(p ItemProps) string {
	it.task = p.Task
	if it.rendered && it.last == p {
		return it.out
	}
	it.last = p
	it.out = renderRow(p)
	it.rendered = true
	it.renders++
	return it.out
}

// Renders returns how many times the row was actually rebuilt.
func (it *TaskItem) Renders() int { return it.renders }

// Toggle reports the toggle intent for the bound task.
func (it *TaskItem) Toggle() tea.Cmd {
	id := it.task.ID
	return func() tea.Msg { return ToggleTaskMsg{ID: id} }
}

// Delete reports the delete intent for the bound task.
func (it *TaskItem) Delete() tea.Cmd {
	id := it.task.ID
	return func() tea.Msg { return DeleteTaskMsg{ID: id} }
}

func renderRow(p ItemProps) string {
	pal := PaletteFor(p.Theme)

	var b strings.Builder
	if p.Selected {
		b.WriteString(pal.Cursor.Render("❯ "))
	} else {
		b.WriteString("  ")
	}

	if p.Task.Completed {
		b.WriteString(pal.CheckboxDone.Render("[x]"))
		b.WriteString(" ")
		b.WriteString(pal.TitleDone.Render(p.Task.Title))
	} else {
		b.WriteString(pal.Checkbox.Render("[ ]"))
		b.WriteString(" ")
		b.WriteString(pal.Title.Render(p.Task.Title))
	}

	b.WriteString("  ")
	b.WriteString(pal.Delete.Render("✕ Delete"))
	return b.String()
}
