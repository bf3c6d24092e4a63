package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jbw/roadmap/internal/domain"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportTasksInput contains the parameters for exporting the
// collection.
type ExportTasksInput struct {
	Writer io.Writer // Destination (required)
	Format string    // "json" or "yaml"
}

// ExportTasksOutput contains the result of exporting.
type ExportTasksOutput struct {
	Count int // Number of exported tasks
}

// ExportTasks serializes the whole collection to a writer.
type ExportTasks struct {
	tasks domain.TaskRepository
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskRepository) *ExportTasks {
	return &ExportTasks{tasks: tasks}
}

// Execute writes the collection in the requested format.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	all, err := uc.tasks.All()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	switch in.Format {
	case FormatJSON:
		enc := json.NewEncoder(in.Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(all); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(in.Writer)
		if err := enc.Encode(all); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("close yaml encoder: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidFormat, in.Format)
	}

	return &ExportTasksOutput{Count: len(all)}, nil
}
