package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Item is one choice in the picker.
type Item[T any] struct {
	Label string
	Value T
}

// RenderFunc renders an item. The selected parameter marks the cursor row.
type RenderFunc[T any] func(item Item[T], selected bool) string

// ChosenMsg is emitted when the user confirms the item under the cursor.
type ChosenMsg[T any] struct {
	Index int
	Item  Item[T]
}

// CanceledMsg is emitted when the user closes the picker without choosing.
type CanceledMsg struct{}

// Model is a small vertical list that lets the user choose one item.
type Model[T any] struct {
	title      string
	items      []Item[T]
	renderFunc RenderFunc[T]
	keys       KeyMap

	// selected is the cursor index (0-based)
	selected int

	// done is set once an item was chosen or the picker was canceled
	done bool
}

// New creates a picker with the cursor on index, capped to valid bounds.
// A nil renderFunc renders "> label" for the cursor row.
func New[T any](title string, items []Item[T], index int, renderFunc RenderFunc[T]) *Model[T] {
	if renderFunc == nil {
		renderFunc = defaultRender[T]
	}
	m := &Model[T]{
		title:      title,
		items:      items,
		renderFunc: renderFunc,
		keys:       DefaultKeyMap(),
	}
	m.SetSelected(index)
	return m
}

func defaultRender[T any](item Item[T], selected bool) string {
	if selected {
		return "> " + item.Label
	}
	return "  " + item.Label
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys. Enter emits ChosenMsg, esc and q emit CanceledMsg.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, m.keys.Top):
		m.selected = 0
	case key.Matches(keyMsg, m.keys.Bottom):
		if len(m.items) > 0 {
			m.selected = len(m.items) - 1
		}
	case key.Matches(keyMsg, m.keys.Choose):
		if len(m.items) == 0 {
			return m, nil
		}
		m.done = true
		chosen := ChosenMsg[T]{Index: m.selected, Item: m.items[m.selected]}
		return m, func() tea.Msg { return chosen }
	case key.Matches(keyMsg, m.keys.Cancel):
		m.done = true
		return m, func() tea.Msg { return CanceledMsg{} }
	}

	return m, nil
}

// View renders the title followed by one line per item.
func (m *Model[T]) View() string {
	var sb strings.Builder
	if m.title != "" {
		sb.WriteString(m.title)
		sb.WriteString("\n")
	}
	for i, item := range m.items {
		sb.WriteString(m.renderFunc(item, i == m.selected))
		if i < len(m.items)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Selected returns the cursor index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SetSelected moves the cursor to index, capping to valid bounds.
func (m *Model[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0, index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
}

// SelectedItem returns the item under the cursor, or nil if the picker is empty.
func (m *Model[T]) SelectedItem() *Item[T] {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}

// Done reports whether the picker has been closed.
func (m *Model[T]) Done() bool {
	return m.done
}

// KeyMap returns the picker bindings, for rendering with bubbles/help.
func (m *Model[T]) KeyMap() KeyMap {
	return m.keys
}

// ItemCount returns the number of items.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}
