package usecase

import (
	"context"
	"testing"

	"github.com/jbw/roadmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowTask_Execute_Success(t *testing.T) {
	repo := newMockTaskRepository()
	repo.tasks["T1"] = &domain.Task{
		ID:          "T1",
		Title:       "Provision clusters",
		Status:      domain.StatusTodo,
		Priority:    domain.PriorityHigh,
		Description: "Stand up staging",
	}
	uc := NewShowTask(repo, &mockDocReader{})

	out, err := uc.Execute(context.Background(), ShowTaskInput{TaskID: "T1"})

	require.NoError(t, err)
	assert.Equal(t, "T1", out.Task.ID)
	assert.Empty(t, out.Subtasks)
	assert.Empty(t, out.Excerpts)
}

func TestShowTask_Execute_NotFound(t *testing.T) {
	uc := NewShowTask(newMockTaskRepository(), &mockDocReader{})

	_, err := uc.Execute(context.Background(), ShowTaskInput{TaskID: "T99"})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestShowTask_Execute_ResolvesSubtasks(t *testing.T) {
	repo := newMockTaskRepository()
	repo.tasks["T1"] = &domain.Task{ID: "T1", Title: "Parent", Subtasks: []string{"T2", "GHOST", "T3"}}
	repo.tasks["T2"] = &domain.Task{ID: "T2", Title: "Child A"}
	repo.tasks["T3"] = &domain.Task{ID: "T3", Title: "Child B"}
	uc := NewShowTask(repo, &mockDocReader{})

	out, err := uc.Execute(context.Background(), ShowTaskInput{TaskID: "T1"})

	require.NoError(t, err)
	// Dangling reference is skipped, order preserved.
	require.Len(t, out.Subtasks, 2)
	assert.Equal(t, "T2", out.Subtasks[0].ID)
	assert.Equal(t, "T3", out.Subtasks[1].ID)
}

func TestShowTask_Execute_Enrichment(t *testing.T) {
	repo := newMockTaskRepository()
	repo.tasks["T1"] = &domain.Task{
		ID:    "T1",
		Title: "Provision clusters",
		Links: []domain.Link{
			{Name: "Design Notes", URL: "../docs/notes.md"},
			{Name: "Technical PRD", URL: "../docs/prd.md"},
		},
	}
	docs := &mockDocReader{docs: map[string]string{
		"../docs/prd.md":   "## Provisioning [task-id: T1]\nuse terraform\n## Other [task-id: T2]\nskip",
		"../docs/notes.md": "## Notes [task-id: T1]\ncontext here\n## Unrelated\nskip",
	}}
	uc := NewShowTask(repo, docs)

	out, err := uc.Execute(context.Background(), ShowTaskInput{TaskID: "T1"})

	require.NoError(t, err)
	require.Len(t, out.Excerpts, 2)
	// Technical reference leads even though it is listed second.
	assert.Equal(t, "Technical PRD", out.Excerpts[0].LinkName)
	assert.Contains(t, out.Excerpts[0].Content, "use terraform")
	assert.NotContains(t, out.Excerpts[0].Content, "skip")
	assert.Equal(t, "Design Notes", out.Excerpts[1].LinkName)
}

func TestShowTask_Execute_MissingDocumentIsSilent(t *testing.T) {
	repo := newMockTaskRepository()
	repo.tasks["T1"] = &domain.Task{
		ID:    "T1",
		Title: "A",
		Links: []domain.Link{{Name: "Technical PRD", URL: "../gone.md"}},
	}
	uc := NewShowTask(repo, &mockDocReader{})

	out, err := uc.Execute(context.Background(), ShowTaskInput{TaskID: "T1"})

	require.NoError(t, err)
	assert.Empty(t, out.Excerpts)
}

func TestShowTask_Execute_NoMatchingBlockIsSilent(t *testing.T) {
	repo := newMockTaskRepository()
	repo.tasks["T1"] = &domain.Task{
		ID:    "T1",
		Title: "A",
		Links: []domain.Link{{Name: "Technical PRD", URL: "../docs/prd.md"}},
	}
	docs := &mockDocReader{docs: map[string]string{
		"../docs/prd.md": "## Something about T2 only\nbody",
	}}
	uc := NewShowTask(repo, docs)

	out, err := uc.Execute(context.Background(), ShowTaskInput{TaskID: "T1"})

	require.NoError(t, err)
	assert.Empty(t, out.Excerpts)
}
