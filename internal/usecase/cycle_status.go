package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jbw/roadmap/internal/domain"
)

// CycleStatusInput contains the parameters for cycling a task's status.
type CycleStatusInput struct {
	TaskID string // Task ID (required)
}

// CycleStatusOutput contains the result of cycling a task's status.
type CycleStatusOutput struct {
	Task      *domain.Task
	OldStatus domain.Status
	NewStatus domain.Status
}

// CycleStatus advances a task through todo → in_progress → done → todo
// and persists the collection immediately.
type CycleStatus struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewCycleStatus creates a new CycleStatus use case.
func NewCycleStatus(tasks domain.TaskRepository, clock domain.Clock) *CycleStatus {
	return &CycleStatus{tasks: tasks, clock: clock}
}

// Execute cycles the task's status, stamps Updated, and saves. A save
// failure is returned to the caller; the stored file is left intact so
// the action can be retried.
func (uc *CycleStatus) Execute(_ context.Context, in CycleStatusInput) (*CycleStatusOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	old := task.Status
	task.Status = old.Next()
	task.Updated = uc.clock.Now().Format(time.RFC3339)

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	return &CycleStatusOutput{Task: task, OldStatus: old, NewStatus: task.Status}, nil
}
