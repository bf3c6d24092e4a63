// Package domain contains core business entities and interfaces.
package domain

// DefaultProject is the grouping label assigned to tasks that do not
// declare one.
const DefaultProject = "workspace"

// UnassignedMilestone is the bucket label for tasks without a milestone.
const UnassignedMilestone = "Unassigned"

// Link is a named reference to an external document.
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Task represents one roadmap item. Tasks are stored as a JSON object
// keyed by ID; the ID is kept redundantly in the value and re-derived
// from the map key on load.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	Project     string   `json:"project"`
	Milestone   string   `json:"milestone,omitempty"`
	Description string   `json:"description,omitempty"`
	Created     string   `json:"created"`
	Updated     string   `json:"updated"`
	Details     string   `json:"details,omitempty"`
	Links       []Link   `json:"links"`
	Subtasks    []string `json:"subtasks"`
}

// Normalize fills in defaults for optional fields. It is applied on
// load so callers never see zero-valued enums or nil sequences.
func (t *Task) Normalize() {
	if t.Status == "" {
		t.Status = StatusTodo
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Project == "" {
		t.Project = DefaultProject
	}
	if t.Links == nil {
		t.Links = []Link{}
	}
	if t.Subtasks == nil {
		t.Subtasks = []string{}
	}
}

// HasMilestone returns true if the task is assigned to a milestone.
func (t *Task) HasMilestone() bool {
	return t.Milestone != ""
}

// MilestoneLabel returns the milestone name, or the sentinel bucket
// name for tasks without one.
func (t *Task) MilestoneLabel() string {
	if t.Milestone == "" {
		return UnassignedMilestone
	}
	return t.Milestone
}
