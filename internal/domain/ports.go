package domain

import "time"

// TaskRepository abstracts access to the persisted task collection.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns (nil, nil) when absent.
	Get(id string) (*Task, error)

	// List retrieves tasks matching the filter, ordered by
	// (priority rank, milestone, id).
	List(filter TaskFilter) ([]*Task, error)

	// All returns the full id → task mapping.
	All() (map[string]*Task, error)

	// Save persists the task, overwriting the stored collection.
	Save(task *Task) error

	// SaveAll persists the given mapping as the whole collection,
	// replacing whatever was stored. An empty map is valid and
	// persists an empty collection.
	SaveAll(tasks map[string]*Task) error
}

// DocReader reads linked external documents by their declared URL.
type DocReader interface {
	// Read returns the document contents. URLs are resolved against
	// the workspace root's parent directory.
	Read(url string) (string, error)
}

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger is the logging port used across the application.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
