package tui

import (
	"strings"
	"testing"

	"github.com/dohr-michael/taskman/internal/tasks"
	"github.com/dohr-michael/taskman/internal/theme"
)

func TestTaskItemMemoizes(t *testing.T) {
	it := NewTaskItem(tasks.Task{ID: 1, Title: "A"})
	props := ItemProps{Task: tasks.Task{ID: 1, Title: "A"}, Theme: theme.Light}

	first := it.Render(props)
	second := it.Render(props)
	if first != second {
		t.Fatal("equal props rendered differently")
	}
	if it.Renders() != 1 {
		t.Errorf("expected 1 render, got %d", it.Renders())
	}

	changes := []ItemProps{
		{Task: tasks.Task{ID: 1, Title: "A", Completed: true}, Theme: theme.Light},
		{Task: tasks.Task{ID: 1, Title: "A", Completed: true}, Theme: theme.Dark},
		{Task: tasks.Task{ID: 1, Title: "A", Completed: true}, Theme: theme.Dark, Selected: true},
	}
	for i, p := range changes {
		it.Render(p)
		if it.Renders() != i+2 {
			t.Errorf("change %d: expected %d renders, got %d", i, i+2, it.Renders())
		}
	}
}

func TestTaskItemRow(t *testing.T) {
	open := NewTaskItem(tasks.Task{}).Render(ItemProps{Task: tasks.Task{ID: 1, Title: "Open"}, Theme: theme.Light})
	if !strings.Contains(open, "[ ] Open") || !strings.Contains(open, "Delete") {
		t.Errorf("unexpected open row %q", open)
	}

	done := NewTaskItem(tasks.Task{}).Render(ItemProps{Task: tasks.Task{ID: 2, Title: "Done", Completed: true}, Theme: theme.Dark, Selected: true})
	if !strings.Contains(done, "❯ [x] Done") {
		t.Errorf("unexpected done row %q", done)
	}
}

func TestTaskItemIntents(t *testing.T) {
	it := NewTaskItem(tasks.Task{ID: 7, Title: "x"})

	if msg, ok := it.Toggle()().(ToggleTaskMsg); !ok || msg.ID != 7 {
		t.Errorf("toggle intent: got %#v", msg)
	}
	if msg, ok := it.Delete()().(DeleteTaskMsg); !ok || msg.ID != 7 {
		t.Errorf("delete intent: got %#v", msg)
	}

	it.Bind(tasks.Task{ID: 8, Title: "y"})
	if msg, ok := it.Toggle()().(ToggleTaskMsg); !ok || msg.ID != 8 {
		t.Errorf("rebound toggle intent: got %#v", msg)
	}
}
