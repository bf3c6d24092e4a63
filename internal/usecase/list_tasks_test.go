package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/jbw/roadmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks_Execute_AllTasksOrdered(t *testing.T) {
	repo := newMockTaskRepository()
	repo.tasks["T1"] = &domain.Task{ID: "T1", Priority: domain.PriorityHigh, Milestone: "M1"}
	repo.tasks["T2"] = &domain.Task{ID: "T2", Priority: domain.PriorityCritical, Milestone: "M1"}
	repo.tasks["T3"] = &domain.Task{ID: "T3", Priority: domain.PriorityLow}
	uc := NewListTasks(repo)

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, "T2", out.Tasks[0].ID)
	assert.Equal(t, "T1", out.Tasks[1].ID)
	assert.Equal(t, "T3", out.Tasks[2].ID)
	assert.Equal(t, 3, out.Total)
}

func TestListTasks_Execute_FilterSubset(t *testing.T) {
	repo := newMockTaskRepository()
	repo.tasks["T1"] = &domain.Task{ID: "T1", Status: domain.StatusTodo, Priority: domain.PriorityHigh, Milestone: "M1"}
	repo.tasks["T2"] = &domain.Task{ID: "T2", Status: domain.StatusDone, Priority: domain.PriorityCritical, Milestone: "M1"}
	repo.tasks["T3"] = &domain.Task{ID: "T3", Status: domain.StatusTodo, Priority: domain.PriorityHigh, Milestone: "M2"}
	uc := NewListTasks(repo)

	out, err := uc.Execute(context.Background(), ListTasksInput{
		Filter: domain.TaskFilter{Status: domain.StatusTodo, Milestone: "M1"},
	})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "T1", out.Tasks[0].ID)
	// Total reflects the unfiltered collection.
	assert.Equal(t, 3, out.Total)
}

func TestListTasks_Execute_CriticalSortsBeforeHigh(t *testing.T) {
	repo := newMockTaskRepository()
	repo.tasks["T1"] = &domain.Task{ID: "T1", Title: "A", Status: domain.StatusTodo, Priority: domain.PriorityHigh, Milestone: "M1"}
	repo.tasks["T2"] = &domain.Task{ID: "T2", Title: "B", Status: domain.StatusDone, Priority: domain.PriorityCritical, Milestone: "M1"}
	uc := NewListTasks(repo)

	out, err := uc.Execute(context.Background(), ListTasksInput{
		Filter: domain.TaskFilter{Milestone: "M1"},
	})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, []string{"T2", "T1"}, []string{out.Tasks[0].ID, out.Tasks[1].ID})
}

func TestListTasks_Execute_RepositoryError(t *testing.T) {
	repo := newMockTaskRepository()
	repo.listErr = errors.New("disk error")
	uc := NewListTasks(repo)

	_, err := uc.Execute(context.Background(), ListTasksInput{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "list tasks")
}
