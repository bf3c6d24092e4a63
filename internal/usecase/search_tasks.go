package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jbw/roadmap/internal/domain"
)

// SearchTasksInput contains the parameters for searching tasks.
type SearchTasksInput struct {
	Query string // Case-insensitive substring (required)
}

// SearchTasksOutput contains the result of searching tasks.
type SearchTasksOutput struct {
	Tasks []*domain.Task // Matches in standard order
}

// SearchTasks is the use case for free-text search over title,
// description, and implementation notes.
type SearchTasks struct {
	tasks domain.TaskRepository
}

// NewSearchTasks creates a new SearchTasks use case.
func NewSearchTasks(tasks domain.TaskRepository) *SearchTasks {
	return &SearchTasks{tasks: tasks}
}

// Execute returns tasks containing the query in any searchable field.
func (uc *SearchTasks) Execute(_ context.Context, in SearchTasksInput) (*SearchTasksOutput, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	tasks, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	var matched []*domain.Task
	for _, t := range tasks {
		if t.MatchesQuery(query) {
			matched = append(matched, t)
		}
	}

	return &SearchTasksOutput{Tasks: matched}, nil
}
