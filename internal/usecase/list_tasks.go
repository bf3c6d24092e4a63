// Package usecase contains the application operations, one per file.
package usecase

import (
	"context"
	"fmt"

	"github.com/jbw/roadmap/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter domain.TaskFilter // Optional constraints (AND-combined)
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []*domain.Task // Ordered by (priority rank, milestone, id)
	Total int            // Size of the unfiltered collection
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists tasks matching the given filter.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.tasks.List(in.Filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	all, err := uc.tasks.All()
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}

	return &ListTasksOutput{Tasks: tasks, Total: len(all)}, nil
}
