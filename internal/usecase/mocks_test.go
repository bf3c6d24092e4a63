package usecase

import (
	"time"

	"github.com/jbw/roadmap/internal/domain"
)

// mockTaskRepository is an in-memory TaskRepository for tests.
type mockTaskRepository struct {
	tasks   map[string]*domain.Task
	getErr  error
	listErr error
	saveErr error
	saved   []*domain.Task
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{tasks: make(map[string]*domain.Task)}
}

func (m *mockTaskRepository) Get(id string) (*domain.Task, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.tasks[id], nil
}

func (m *mockTaskRepository) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var tasks []*domain.Task
	for _, t := range m.tasks {
		if filter.Matches(t) {
			tasks = append(tasks, t)
		}
	}
	domain.SortTasks(tasks)
	return tasks, nil
}

func (m *mockTaskRepository) All() (map[string]*domain.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.tasks, nil
}

func (m *mockTaskRepository) Save(task *domain.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tasks[task.ID] = task
	m.saved = append(m.saved, task)
	return nil
}

func (m *mockTaskRepository) SaveAll(tasks map[string]*domain.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tasks = tasks
	return nil
}

// mockDocReader serves documents from a map keyed by URL.
type mockDocReader struct {
	docs map[string]string
}

func (m *mockDocReader) Read(url string) (string, error) {
	if content, ok := m.docs[url]; ok {
		return content, nil
	}
	return "", domain.ErrDocNotFound
}

// fixedClock always returns the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
