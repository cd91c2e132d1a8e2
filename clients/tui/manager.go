package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/taskman/internal/storage"
	"github.com/dohr-michael/taskman/internal/tasks"
	"github.com/dohr-michael/taskman/internal/theme"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// ManagerDeps wires the Manager to its collaborators.
type ManagerDeps struct {
	Store       *tasks.Store
	Persister   *storage.Persister
	IDs         *tasks.IDGenerator
	Theme       *theme.Context
	Placeholder string
}

// Manager is the task list screen: theme button, active counter, draft input
// and the task rows.
type Manager struct {
	ctx       context.Context
	store     *tasks.Store
	persister *storage.Persister
	ids       *tasks.IDGenerator
	theme     *theme.Context

	input  textinput.Model
	focus  focusArea
	cursor int
	width  int

	list   []tasks.Task
	active int
	items  map[int64]*TaskItem

	unsubscribe func()
}

// NewManager creates the Manager. Every dispatch on deps.Store is mirrored to
// deps.Persister until Close is called.
func NewManager(ctx context.Context, deps ManagerDeps) *Manager {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = deps.Placeholder
	if ti.Placeholder == "" {
		ti.Placeholder = "Add new task"
	}
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	m := &Manager{
		ctx:       ctx,
		store:     deps.Store,
		persister: deps.Persister,
		ids:       deps.IDs,
		theme:     deps.Theme,
		input:     ti,
		items:     make(map[int64]*TaskItem),
	}

	initial := deps.Store.Tasks()
	m.ids.Observe(initial)
	_ = m.setList(initial)

	m.unsubscribe = deps.Store.Subscribe(m.persist)
	return m
}

// Close stops mirroring dispatches to storage.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Init starts the input cursor blink.
func (m *Manager) Init() tea.Cmd {
	return textinput.Blink
}

// Tasks returns the list as last rendered.
func (m *Manager) Tasks() []tasks.Task { return tasks.Clone(m.list) }

// ActiveCount returns the number of tasks not completed.
func (m *Manager) ActiveCount() int { return m.active }

// Draft returns the current input text.
func (m *Manager) Draft() string { return m.input.Value() }

// InputFocused reports whether key presses go to the draft input.
func (m *Manager) InputFocused() bool { return m.focus == focusInput }

// SetWidth resizes the input to the terminal width.
func (m *Manager) SetWidth(width int) {
	m.width = width
	w := width - 20
	if w < 10 {
		w = 10
	}
	m.input.Width = w
}

// Update handles messages.
func (m *Manager) Update(msg tea.Msg) (*Manager, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleTaskMsg:
		return m, m.dispatch(tasks.Toggle(msg.ID))

	case DeleteTaskMsg:
		return m, m.dispatch(tasks.Delete(msg.ID))

	case tea.KeyMsg:
		if msg.String() == "ctrl+t" {
			t := m.theme.Toggle()
			slog.Debug("theme toggled", "theme", t)
			return m, nil
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateInput(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Manager) updateInput(msg tea.KeyMsg) (*Manager, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.submit()
	case "tab", "down":
		if len(m.list) > 0 {
			m.focus = focusList
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Manager) updateList(msg tea.KeyMsg) (*Manager, tea.Cmd) {
	switch msg.String() {
	case "tab", "esc":
		m.focus = focusInput
		return m, m.input.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.list)-1 {
			m.cursor++
		}
	case " ", "space", "x", "enter":
		if item := m.selectedItem(); item != nil {
			return m, item.Toggle()
		}
	case "d", "delete", "backspace":
		if item := m.selectedItem(); item != nil {
			return m, item.Delete()
		}
	}
	return m, nil
}

// submit adds the draft as a new task. Whitespace-only drafts are ignored and
// left in place.
func (m *Manager) submit() tea.Cmd {
	draft := m.input.Value()
	if !tasks.ValidTitle(draft) {
		return nil
	}

	cmd := m.dispatch(tasks.Add(tasks.Task{ID: m.ids.Next(), Title: draft}))
	m.input.SetValue("")
	m.focus = focusInput
	return tea.Batch(cmd, m.input.Focus())
}

func (m *Manager) dispatch(a tasks.Action) tea.Cmd {
	slog.Debug("dispatch", "action", a.Kind, "id", actionID(a))
	return m.setList(m.store.Dispatch(a))
}

func (m *Manager) persist(list []tasks.Task) {
	if err := m.persister.Save(m.ctx, list); err != nil {
		slog.Error("save tasks", "key", m.persister.Key(), "error", err)
	}
}

// setList installs list as the rendered state, recomputes the active count
// and drops rows for tasks that no longer exist. When the list empties while
// the rows have focus, focus moves to the input and its blink command is
// returned.
func (m *Manager) setList(list []tasks.Task) tea.Cmd {
	m.list = list
	m.active = tasks.ActiveCount(list)

	alive := make(map[int64]bool, len(list))
	for _, t := range list {
		alive[t.ID] = true
	}
	for id := range m.items {
		if !alive[id] {
			delete(m.items, id)
		}
	}

	if m.cursor >= len(list) {
		m.cursor = len(list) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(list) == 0 && m.focus == focusList {
		m.focus = focusInput
		return m.input.Focus()
	}
	return nil
}

func (m *Manager) selectedItem() *TaskItem {
	if m.cursor < 0 || m.cursor >= len(m.list) {
		return nil
	}
	return m.item(m.list[m.cursor])
}

func (m *Manager) item(t tasks.Task) *TaskItem {
	it, ok := m.items[t.ID]
	if !ok {
		it = NewTaskItem(t)
		m.items[t.ID] = it
		return it
	}
	it.Bind(t)
	return it
}

// View renders the screen.
func (m *Manager) View() string {
	current := m.theme.Current()
	pal := PaletteFor(current)

	header := pal.Button.Render(fmt.Sprintf("Toggle Theme (%s)", current))
	counter := pal.Counter.Render(fmt.Sprintf("Active Tasks: %d", m.active))
	form := lipgloss.JoinHorizontal(lipgloss.Center,
		pal.InputBorder.Render(m.input.View()),
		" ",
		pal.Button.Render("Add Task"),
	)

	rows := make([]string, 0, len(m.list))
	for i, t := range m.list {
		rows = append(rows, m.item(t).Render(ItemProps{
			Task:     t,
			Theme:    current,
			Selected: m.focus == focusList && i == m.cursor,
		}))
	}

	hint := "enter add • tab list • ctrl+t theme • ctrl+c quit"
	if m.focus == focusList {
		hint = "↑/↓ move • space toggle • d delete • tab input • ctrl+t theme"
	}

	sections := []string{header, counter, form}
	if len(rows) > 0 {
		sections = append(sections, strings.Join(rows, "\n"))
	}
	sections = append(sections, pal.Hint.Render(hint))

	container := pal.Container
	if m.width > 0 {
		container = container.Width(m.width)
	}
	return container.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func actionID(a tasks.Action) int64 {
	if a.Kind == tasks.ActionAdd {
		return a.Payload.ID
	}
	return a.ID
}
