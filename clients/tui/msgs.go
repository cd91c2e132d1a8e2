package tui

// ToggleTaskMsg is the intent to flip a task's completion.
type ToggleTaskMsg struct {
	ID int64
}

// DeleteTaskMsg is the intent to remove a task.
type DeleteTaskMsg struct {
	ID int64
}
