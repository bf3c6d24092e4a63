package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskFilter_Matches(t *testing.T) {
	task := &Task{
		ID:        "T1",
		Status:    StatusTodo,
		Priority:  PriorityHigh,
		Milestone: "M1",
	}

	tests := []struct {
		name   string
		filter TaskFilter
		want   bool
	}{
		{"no constraints", TaskFilter{}, true},
		{"status match", TaskFilter{Status: StatusTodo}, true},
		{"status mismatch", TaskFilter{Status: StatusDone}, false},
		{"priority match", TaskFilter{Priority: PriorityHigh}, true},
		{"priority mismatch", TaskFilter{Priority: PriorityLow}, false},
		{"milestone match", TaskFilter{Milestone: "M1"}, true},
		{"milestone mismatch", TaskFilter{Milestone: "M2"}, false},
		{"all constraints match", TaskFilter{Status: StatusTodo, Priority: PriorityHigh, Milestone: "M1"}, true},
		{"one of three mismatches", TaskFilter{Status: StatusTodo, Priority: PriorityHigh, Milestone: "M2"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(task))
		})
	}
}

func TestSortTasks_PriorityThenMilestoneThenID(t *testing.T) {
	tasks := []*Task{
		{ID: "T1", Priority: PriorityHigh, Milestone: "M1"},
		{ID: "T2", Priority: PriorityCritical, Milestone: "M1"},
	}

	SortTasks(tasks)

	assert.Equal(t, "T2", tasks[0].ID) // critical before high
	assert.Equal(t, "T1", tasks[1].ID)
}

func TestSortTasks_UnknownPrioritySortsLast(t *testing.T) {
	tasks := []*Task{
		{ID: "A", Priority: Priority("urgent-ish")},
		{ID: "B", Priority: PriorityLow},
	}

	SortTasks(tasks)

	assert.Equal(t, "B", tasks[0].ID)
	assert.Equal(t, "A", tasks[1].ID)
}

func TestSortTasks_MilestoneBreaksTies(t *testing.T) {
	tasks := []*Task{
		{ID: "T3", Priority: PriorityHigh, Milestone: "M2"},
		{ID: "T2", Priority: PriorityHigh, Milestone: "M1"},
		{ID: "T1", Priority: PriorityHigh, Milestone: "M1"},
	}

	SortTasks(tasks)

	assert.Equal(t, []string{tasks[0].ID, tasks[1].ID, tasks[2].ID}, []string{"T1", "T2", "T3"})
}

func TestSortTasks_Deterministic(t *testing.T) {
	tasks := []*Task{
		{ID: "C", Priority: PriorityMedium, Milestone: "M2"},
		{ID: "A", Priority: PriorityLow},
		{ID: "B", Priority: PriorityMedium, Milestone: "M1"},
	}

	SortTasks(tasks)
	first := []string{tasks[0].ID, tasks[1].ID, tasks[2].ID}
	SortTasks(tasks)
	second := []string{tasks[0].ID, tasks[1].ID, tasks[2].ID}

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"B", "C", "A"}, first)
}

func TestTask_MatchesQuery(t *testing.T) {
	task := &Task{
		ID:          "T1",
		Title:       "Provision clusters",
		Description: "Stand up the staging environment",
		Details:     "Use terraform modules under infra/",
	}

	assert.True(t, task.MatchesQuery("provision"))
	assert.True(t, task.MatchesQuery("STAGING"))
	// Match in details only still counts.
	assert.True(t, task.MatchesQuery("terraform"))
	assert.False(t, task.MatchesQuery("kubernetes"))
}

func TestTaskFilter_Describe(t *testing.T) {
	f := TaskFilter{Status: StatusTodo, Milestone: "M1"}
	assert.Equal(t, []string{"Status:todo", "Milestone:M1"}, f.Describe())
	assert.Empty(t, TaskFilter{}.Describe())
}
