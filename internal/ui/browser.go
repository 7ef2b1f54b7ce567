package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// BrowserItem is one generated stub shown in the interactive browser.
type BrowserItem struct {
	Label    string // method name, e.g. "add_int24_array"
	SubLabel string // Solidity type shown dimmed, e.g. "int24[]"
	Body     string // full rendered stub text
}

// visibleRows is the size of the scrolling window over the item list.
const visibleRows = 12

// browserModel is the Bubble Tea model for the stub browser: a scrolling
// list of method names with the selected stub rendered below it.
type browserModel struct {
	title    string
	items    []BrowserItem
	cursor   int
	offset   int // first visible item index
	quitting bool
}

func (m browserModel) Init() tea.Cmd { return nil }

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "pgup":
			m.cursor -= visibleRows
			if m.cursor < 0 {
				m.cursor = 0
			}
		case "pgdown":
			m.cursor += visibleRows
			if m.cursor > len(m.items)-1 {
				m.cursor = len(m.items) - 1
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.items) - 1
		}
		// Keep the cursor inside the visible window.
		if m.cursor < m.offset {
			m.offset = m.cursor
		}
		if m.cursor >= m.offset+visibleRows {
			m.offset = m.cursor - visibleRows + 1
		}
	}
	return m, nil
}

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(StyleTitle.Render("  "+m.title) + "\n\n")

	end := m.offset + visibleRows
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := m.offset; i < end; i++ {
		item := m.items[i]
		prefix := "    "
		if i == m.cursor {
			prefix = "  ▸ "
		}

		line := prefix + StyleValue.Render(item.Label)
		if item.SubLabel != "" {
			line += "  " + StyleMeta.Render(item.SubLabel)
		}

		if i == m.cursor {
			sb.WriteString(StyleSelected.Render(line) + "\n")
		} else {
			sb.WriteString(line + "\n")
		}
	}

	if len(m.items) > 0 {
		sb.WriteString("\n")
		sb.WriteString(StyleBorder.Render(StyleCode.Render(strings.TrimRight(m.items[m.cursor].Body, "\n"))) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(StyleMeta.Render("  [ ↑↓ / jk ] navigate   [ g / G ] top / bottom   [ q ] quit") + "\n")
	return sb.String()
}

// BrowseItems runs the interactive stub browser until the user quits.
func BrowseItems(title string, items []BrowserItem) error {
	m := browserModel{title: title, items: items}
	_, err := tea.NewProgram(m).Run()
	return err
}
