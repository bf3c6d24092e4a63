package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jbw/roadmap/internal/domain"
	"github.com/jbw/roadmap/internal/prd"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID string // Task ID (required)
}

// DocExcerpt is a task-specific block captured from a linked document.
type DocExcerpt struct {
	LinkName string // The link's declared name
	Content  string // Extracted block, ready for cosmetic formatting
}

// ShowTaskOutput contains the result of showing a task.
type ShowTaskOutput struct {
	Task     *domain.Task   // The task details
	Subtasks []*domain.Task // Resolved subtask references (dangling ids skipped)
	Excerpts []DocExcerpt   // Best-effort excerpts from linked documents
}

// ShowTask is the use case for displaying task details, enriched from
// linked planning documents.
type ShowTask struct {
	tasks domain.TaskRepository
	docs  domain.DocReader
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskRepository, docs domain.DocReader) *ShowTask {
	return &ShowTask{tasks: tasks, docs: docs}
}

// Execute retrieves the task, resolves subtasks, and collects document
// excerpts. Enrichment is best-effort: unreadable documents and blocks
// without a match are silently skipped.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	subtasks := uc.resolveSubtasks(task)

	return &ShowTaskOutput{
		Task:     task,
		Subtasks: subtasks,
		Excerpts: uc.collectExcerpts(task),
	}, nil
}

// resolveSubtasks looks up subtask references, skipping dangling ids.
func (uc *ShowTask) resolveSubtasks(task *domain.Task) []*domain.Task {
	var subtasks []*domain.Task
	for _, id := range task.Subtasks {
		sub, err := uc.tasks.Get(id)
		if err != nil || sub == nil {
			continue
		}
		subtasks = append(subtasks, sub)
	}
	return subtasks
}

// collectExcerpts scans linked documents for the task's block.
// Technical references are scanned first so implementation details
// lead the detail view.
func (uc *ShowTask) collectExcerpts(task *domain.Task) []DocExcerpt {
	if uc.docs == nil {
		return nil
	}

	var excerpts []DocExcerpt
	for _, link := range orderLinks(task.Links) {
		content, err := uc.docs.Read(link.URL)
		if err != nil {
			continue
		}
		block := prd.Extract(content, task.ID)
		if block == "" {
			continue
		}
		excerpts = append(excerpts, DocExcerpt{LinkName: link.Name, Content: block})
	}
	return excerpts
}

// orderLinks puts technical references ahead of the rest, preserving
// relative order within each group.
func orderLinks(links []domain.Link) []domain.Link {
	ordered := make([]domain.Link, 0, len(links))
	for _, l := range links {
		if isTechnical(l) {
			ordered = append(ordered, l)
		}
	}
	for _, l := range links {
		if !isTechnical(l) {
			ordered = append(ordered, l)
		}
	}
	return ordered
}

// isTechnical reports whether the link's name suggests a technical
// reference document.
func isTechnical(l domain.Link) bool {
	return strings.Contains(strings.ToLower(l.Name), "technical")
}
