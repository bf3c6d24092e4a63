package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbw/roadmap/internal/domain"
)

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollIntoView()
		return m, nil

	case MsgTasksLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			m.logger.Error("tui", "load failed: "+msg.Err.Error())
			return m, nil
		}
		m.err = nil
		m.tasks = msg.Tasks
		m.clampCursor()
		m.scrollIntoView()
		return m, nil

	case MsgStatusCycled:
		if msg.Err != nil {
			m.err = msg.Err
			m.logger.Error("tui", "cycle failed: "+msg.Err.Error())
			return m, nil
		}
		m.err = nil
		return m, m.loadTasks()
	}

	return m, nil
}

// handleKey handles key events.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.scrollIntoView()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		m.scrollIntoView()
		return m, nil

	case key.Matches(msg, m.keys.CycleStatus):
		return m, m.cycleSelected()

	case key.Matches(msg, m.keys.ToggleView):
		if m.mode == ViewSplit {
			m.mode = ViewList
		} else {
			m.mode = ViewSplit
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.filter = domain.TaskFilter{}
		m.cursor = 0
		m.offset = 0
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// clampCursor keeps the selection inside the list bounds after a reload.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// scrollIntoView adjusts the scroll offset only when the selection has
// left the visible window.
func (m *Model) scrollIntoView() {
	visible := m.listHeight()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// listHeight returns the number of task rows that fit on screen.
func (m *Model) listHeight() int {
	h := m.height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}
