// Package tui implements the full-screen panel browser.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbw/roadmap/internal/domain"
	"github.com/jbw/roadmap/internal/usecase"
)

// ViewMode selects between the split layout and the list-only layout.
type ViewMode int

const (
	ViewSplit ViewMode = iota
	ViewList
)

const (
	minSplitWidth  = 100
	maxListPane    = 45
	minDetailPane  = 20
	chromeHeight   = 4 // header + footer + padding
	wrapLinesShort = 2
	wrapLinesLong  = 3
)

// Model is the panel TUI model.
type Model struct {
	// Dependencies
	listTasks   *usecase.ListTasks
	cycleStatus *usecase.CycleStatus
	logger      domain.Logger

	// State
	tasks  []*domain.Task
	filter domain.TaskFilter
	err    error

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model

	// Numeric state
	cursor int
	offset int
	width  int
	height int
	mode   ViewMode

	loading bool
}

// New creates a new panel TUI model. The initial filter comes from the
// CLI flags and can be cleared with the clear-filters key.
func New(listTasks *usecase.ListTasks, cycleStatus *usecase.CycleStatus, logger domain.Logger, filter domain.TaskFilter) *Model {
	return &Model{
		listTasks:   listTasks,
		cycleStatus: cycleStatus,
		logger:      logger,
		filter:      filter,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		mode:        ViewSplit,
		loading:     true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks reloads the filtered task list from the store.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.listTasks.Execute(context.Background(), usecase.ListTasksInput{Filter: m.filter})
		if err != nil {
			return MsgTasksLoaded{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// cycleSelected persists the next status for the selected task.
func (m *Model) cycleSelected() tea.Cmd {
	if len(m.tasks) == 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	id := m.tasks[m.cursor].ID
	return func() tea.Msg {
		_, err := m.cycleStatus.Execute(context.Background(), usecase.CycleStatusInput{TaskID: id})
		return MsgStatusCycled{TaskID: id, Err: err}
	}
}

// selected returns the task under the cursor, or nil.
func (m *Model) selected() *domain.Task {
	if len(m.tasks) == 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}
