// Package tui provides the terminal user interface for taskman.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/taskman/internal/theme"
)

// colors is the raw palette of one theme.
type colors struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Accent     lipgloss.Color
	Done       lipgloss.Color
	Danger     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
}

var (
	lightColors = colors{
		Background: lipgloss.Color("#FFFFFF"),
		Text:       lipgloss.Color("#1F2937"),
		Accent:     lipgloss.Color("#0070F3"),
		Done:       lipgloss.Color("#065F46"),
		Danger:     lipgloss.Color("#DC2626"),
		Muted:      lipgloss.Color("#6B7280"),
		Border:     lipgloss.Color("#E5E7EB"),
	}
	darkColors = colors{
		Background: lipgloss.Color("#1F2937"),
		Text:       lipgloss.Color("#E5E7EB"),
		Accent:     lipgloss.Color("#79C0FF"),
		Done:       lipgloss.Color("#7EE2B8"),
		Danger:     lipgloss.Color("#FF6B6B"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Border:     lipgloss.Color("#374151"),
	}
)

// Palette holds the component styles for one theme.
type Palette struct {
	Container    lipgloss.Style
	Button       lipgloss.Style
	Counter      lipgloss.Style
	InputBorder  lipgloss.Style
	Cursor       lipgloss.Style
	Title        lipgloss.Style
	TitleDone    lipgloss.Style
	Checkbox     lipgloss.Style
	CheckboxDone lipgloss.Style
	Delete       lipgloss.Style
	Hint         lipgloss.Style
}

func newPalette(c colors) Palette {
	return Palette{
		Container: lipgloss.NewStyle().
			Background(c.Background).
			Foreground(c.Text).
			Padding(1, 2),

		Button: lipgloss.NewStyle().
			Foreground(c.Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Accent).
			Padding(0, 1),

		Counter: lipgloss.NewStyle().
			Foreground(c.Text).
			Bold(true),

		InputBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),

		Cursor:       lipgloss.NewStyle().Foreground(c.Accent).Bold(true),
		Title:        lipgloss.NewStyle().Foreground(c.Text),
		TitleDone:    lipgloss.NewStyle().Foreground(c.Muted).Strikethrough(true),
		Checkbox:     lipgloss.NewStyle().Foreground(c.Accent),
		CheckboxDone: lipgloss.NewStyle().Foreground(c.Done),
		Delete:       lipgloss.NewStyle().Foreground(c.Danger),
		Hint:         lipgloss.NewStyle().Foreground(c.Muted).Italic(true),
	}
}

var palettes = map[theme.Theme]Palette{
	theme.Light: newPalette(lightColors),
	theme.Dark:  newPalette(darkColors),
}

// PaletteFor returns the styles for t, falling back to light.
func PaletteFor(t theme.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[theme.Light]
}
