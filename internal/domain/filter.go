package domain

import (
	"sort"
	"strings"
)

// TaskFilter holds optional exact-match constraints for listing tasks.
// Zero-valued fields match everything; set fields combine with AND.
type TaskFilter struct {
	Status    Status
	Priority  Priority
	Milestone string
}

// IsZero returns true if no constraint is set.
func (f TaskFilter) IsZero() bool {
	return f.Status == "" && f.Priority == "" && f.Milestone == ""
}

// Matches returns true if the task satisfies every set constraint.
func (f TaskFilter) Matches(t *Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Milestone != "" && t.Milestone != f.Milestone {
		return false
	}
	return true
}

// Describe returns short indicator strings for the active constraints,
// in a fixed order. Empty when no filter is set.
func (f TaskFilter) Describe() []string {
	var parts []string
	if f.Status != "" {
		parts = append(parts, "Status:"+string(f.Status))
	}
	if f.Priority != "" {
		parts = append(parts, "Priority:"+string(f.Priority))
	}
	if f.Milestone != "" {
		parts = append(parts, "Milestone:"+f.Milestone)
	}
	return parts
}

// SortTasks orders tasks in place by (priority rank, milestone, id)
// ascending. This is the one render order used everywhere; it is never
// persisted.
func SortTasks(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := tasks[i].Priority.Rank(), tasks[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		if tasks[i].Milestone != tasks[j].Milestone {
			return tasks[i].Milestone < tasks[j].Milestone
		}
		return tasks[i].ID < tasks[j].ID
	})
}

// MatchesQuery returns true if the query occurs (case-insensitively) in
// the task's title, description, or implementation notes.
func (t *Task) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{t.Title, t.Description, t.Details} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
