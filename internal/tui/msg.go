package tui

import "github.com/jbw/roadmap/internal/domain"

// Msg is the interface for all panel TUI messages.
// All message types implement this sealed interface.
//
//sumtype:decl
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task list is (re)loaded from the store.
type MsgTasksLoaded struct {
	Err   error
	Tasks []*domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgStatusCycled is sent after a status cycle has been persisted.
type MsgStatusCycled struct {
	Err    error
	TaskID string
}

func (MsgStatusCycled) sealed() {}
