// Package tasks holds the task list model: the Task type, the reducer that
// produces new lists from actions, and the Store that dispatches them.
package tasks

import "strings"

// Task is a single unit of work in the list.
type Task struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// ActionKind tags an Action.
type ActionKind string

const (
	ActionAdd    ActionKind = "ADD_TASK"
	ActionToggle ActionKind = "TOGGLE_TASK"
	ActionDelete ActionKind = "DELETE_TASK"
)

// Action is a request to change the list.
type Action struct {
	Kind    ActionKind
	Payload Task  // ActionAdd
	ID      int64 // ActionToggle, ActionDelete
}

// Add returns an ADD_TASK action for t.
func Add(t Task) Action {
	return Action{Kind: ActionAdd, Payload: t}
}

// Toggle returns a TOGGLE_TASK action for id.
func Toggle(id int64) Action {
	return Action{Kind: ActionToggle, ID: id}
}

// Delete returns a DELETE_TASK action for id.
func Delete(id int64) Action {
	return Action{Kind: ActionDelete, ID: id}
}

// ValidTitle reports whether title has any non-whitespace content.
// The title itself is stored untrimmed.
func ValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

// ActiveCount returns the number of tasks not yet completed.
func ActiveCount(list []Task) int {
	n := 0
	for _, t := range list {
		if !t.Completed {
			n++
		}
	}
	return n
}

// Find returns the task with the given id.
func Find(list []Task, id int64) (Task, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Clone returns a fresh copy of list. A nil list clones to an empty one.
func Clone(list []Task) []Task {
	out := make([]Task, len(list))
	copy(out, list)
	return out
}
