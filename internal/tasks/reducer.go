package tasks

// Reduce applies a to list and returns the resulting list.
// It never mutates list and always returns a freshly allocated slice, even
// when the action is a no-op or of an unknown kind.
func Reduce(list []Task, a Action) []Task {
	switch a.Kind {
	case ActionAdd:
		out := make([]Task, len(list), len(list)+1)
		copy(out, list)
		return append(out, a.Payload)

	case ActionToggle:
		out := make([]Task, len(list))
		for i, t := range list {
			if t.ID == a.ID {
				t.Completed = !t.Completed
			}
			out[i] = t
		}
		return out

	case ActionDelete:
		out := make([]Task, 0, len(list))
		for _, t := range list {
			if t.ID != a.ID {
				out = append(out, t)
			}
		}
		return out

	default:
		return Clone(list)
	}
}
