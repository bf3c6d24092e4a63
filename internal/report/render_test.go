package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbw/roadmap/internal/domain"
)

func testTasks() []*domain.Task {
	return []*domain.Task{
		{ID: "T1", Title: "Set up ingestion", Status: domain.StatusDone, Priority: domain.PriorityHigh, Milestone: "M1"},
		{ID: "T2", Title: "Design schema", Status: domain.StatusInProgress, Priority: domain.PriorityCritical, Milestone: "M1"},
		{ID: "T3", Title: "Write docs", Status: domain.StatusTodo, Priority: domain.PriorityLow},
	}
}

func TestBannerContainsTitleAndSubtitle(t *testing.T) {
	r := New(Options{Width: 80, Title: "Workspace Roadmap", Subtitle: "Task Management System"})

	out := r.Banner()

	assert.Contains(t, out, "Workspace Roadmap")
	assert.Contains(t, out, "Task Management System")
	assert.Contains(t, out, "╭")
}

func TestStatsCountsAndProgress(t *testing.T) {
	r := New(Options{Width: 80, Title: "t"})

	out := r.Stats(testTasks())

	assert.Contains(t, out, "Total tasks: 3")
	assert.Contains(t, out, "33.3%")
	// 1 done of 3 over 30 cells.
	assert.Contains(t, out, strings.Repeat("█", 10))
	assert.Contains(t, out, strings.Repeat("░", 20))
}

func TestStatsEmptyDoesNotDivideByZero(t *testing.T) {
	r := New(Options{Width: 80, Title: "t"})

	out := r.Stats(nil)

	assert.Contains(t, out, "Total tasks: 0")
	assert.Contains(t, out, "0.0%")
}

func TestCardShowsIdentityAndMilestone(t *testing.T) {
	r := New(Options{Width: 80, Title: "t"})
	task := testTasks()[0]

	out := r.Card(task, false)

	assert.Contains(t, out, "T1 - Set up ingestion")
	assert.Contains(t, out, "🎯 M1")
	assert.Contains(t, out, "High priority")
}

func TestCardDetailedIncludesDescriptionAndLinks(t *testing.T) {
	r := New(Options{Width: 80, Title: "t"})
	task := &domain.Task{
		ID: "T9", Title: "Enrich", Status: domain.StatusTodo, Priority: domain.PriorityMedium,
		Description: "Pull structured excerpts from linked documents.",
		Links: []domain.Link{
			{Name: "Technical Spec", URL: "spec.md"},
			{Name: "Design Doc", URL: "design.md"},
			{Name: "Runbook", URL: "run.md"},
			{Name: "Overflow", URL: "x.md"},
		},
	}

	out := r.Card(task, true)

	assert.Contains(t, out, "Related Documents")
	assert.Contains(t, out, "📄 Technical Spec")
	assert.Contains(t, out, "📄 Runbook")
	assert.NotContains(t, out, "Overflow")
}

func TestGroupedListingBucketsAndIndex(t *testing.T) {
	r := New(Options{Width: 80, Title: "t"})

	out, index := r.GroupedListing(testTasks(), true)

	assert.Contains(t, out, "🎯 M1")
	assert.Contains(t, out, "🎯 Unassigned")
	require.Len(t, index, 3)
	// M1 sorts before Unassigned; within the bucket the input order holds.
	assert.Equal(t, "T1", index[1])
	assert.Equal(t, "T2", index[2])
	assert.Equal(t, "T3", index[3])

	// M1 header must come before the Unassigned header.
	assert.Less(t, strings.Index(out, "M1"), strings.Index(out, "Unassigned"))
}

func TestGroupedListingRendersCardPerTask(t *testing.T) {
	r := New(Options{Width: 80, Title: "t"})

	out, _ := r.GroupedListing(testTasks(), true)

	// Every task gets a bordered card, not a one-line row.
	assert.Equal(t, 3, strings.Count(out, "╭"))
	assert.Contains(t, out, "T1 - Set up ingestion")
	assert.Contains(t, out, "High priority")
	// The index line precedes its card.
	assert.Less(t, strings.Index(out, "[1]"), strings.Index(out, "╭"))
}

func TestGroupedListingUnnumbered(t *testing.T) {
	r := New(Options{Width: 80, Title: "t"})

	out, index := r.GroupedListing(testTasks(), false)

	assert.Empty(t, index)
	assert.NotContains(t, out, "[1]")
}

func TestCardHeaderTruncatesPlainTextOnly(t *testing.T) {
	r := New(Options{Width: 48, Title: "t"})
	task := &domain.Task{
		ID:        "T1",
		Title:     strings.Repeat("a very long title ", 10),
		Status:    domain.StatusDone,
		Priority:  domain.PriorityHigh,
		Milestone: "M1",
	}

	head := r.cardHeader(task, 40)

	assert.Contains(t, head, "...")
	assert.Contains(t, head, "🎯 M1")
	// The status icon survives truncation intact.
	assert.Contains(t, head, domain.StatusDone.Icon())
	assert.NotContains(t, head, "\n")
}

func TestFlatListingEmpty(t *testing.T) {
	r := New(Options{Width: 80, Title: "t"})

	assert.Contains(t, r.FlatListing(nil), "No tasks found")
}

func TestDetailAdditionalNotesThreshold(t *testing.T) {
	r := New(Options{Width: 80, Title: "t"})

	short := &domain.Task{ID: "T1", Title: "x", Details: "short note"}
	long := &domain.Task{ID: "T2", Title: "y", Details: strings.Repeat("detail ", 20)}

	assert.NotContains(t, r.Detail(short, nil, nil), "Additional Notes")
	assert.Contains(t, r.Detail(long, nil, nil), "Additional Notes")
}

func TestDetailRendersSubtasksAndExcerpts(t *testing.T) {
	r := New(Options{Width: 80, Title: "t"})
	task := testTasks()[0]
	subs := []*domain.Task{{ID: "T5", Title: "Child", Status: domain.StatusDone}}
	excerpts := []Excerpt{{Name: "Technical Spec", Content: "## T1 Details\nBody line."}}

	out := r.Detail(task, subs, excerpts)

	assert.Contains(t, out, "Subtasks")
	assert.Contains(t, out, "T5 - Child")
	assert.Contains(t, out, "📖 Technical Spec")
	assert.Contains(t, out, "Body line.")
}
