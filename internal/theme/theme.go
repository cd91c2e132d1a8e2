// Package theme holds the session's light/dark theme state.
package theme

import (
	"fmt"
	"strings"
	"sync"
)

// Theme is the UI color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// Parse converts a config value to a Theme. Empty input means Light.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case "", Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q", s)
	}
}

// Context is the theme state shared by the views of one session. It is created
// at the composition root and handed to every consumer; it is never persisted.
type Context struct {
	mu      sync.RWMutex
	current Theme
}

// NewContext creates a Context starting at initial.
func NewContext(initial Theme) *Context {
	if initial != Dark {
		initial = Light
	}
	return &Context{current: initial}
}

// Current returns the active theme.
func (c *Context) Current() Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Toggle flips the theme and returns the new value.
func (c *Context) Toggle() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Toggle()
	return c.current
}
