package prd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleDoc = `# Platform PRD

Intro text that belongs to no task.

## Provisioning [task-id: T1]

Stand up the base infrastructure.

- VPC layout
- IAM roles

## Deployment (T2)

Ship the service.

### T2 rollout notes

Gradual rollout via canary.

## Observability

Dashboards and alerts.
`

func TestExtract_TagMatch(t *testing.T) {
	got := Extract(sampleDoc, "T1")

	assert.Contains(t, got, "Provisioning")
	assert.Contains(t, got, "VPC layout")
	// Stops at the next same-level heading for another task.
	assert.NotContains(t, got, "Deployment")
}

func TestExtract_HeadingMatch(t *testing.T) {
	got := Extract(sampleDoc, "T2")

	assert.Contains(t, got, "Ship the service.")
	// Deeper headings mentioning the same task stay in the block.
	assert.Contains(t, got, "rollout notes")
	assert.Contains(t, got, "canary")
	assert.NotContains(t, got, "Observability")
}

func TestExtract_CaseInsensitive(t *testing.T) {
	doc := "## Work [TASK-ID: t9]\nbody\n## Other\nrest\n"
	got := Extract(doc, "T9")

	assert.Contains(t, got, "body")
	assert.NotContains(t, got, "rest")
}

func TestExtract_NoMatch(t *testing.T) {
	assert.Empty(t, Extract(sampleDoc, "T99"))
	assert.Empty(t, Extract("", "T1"))
	assert.Empty(t, Extract(sampleDoc, ""))
}

func TestExtract_RunsToEndOfDocument(t *testing.T) {
	doc := "## Final [task-id: T5]\nlast block line"
	got := Extract(doc, "T5")

	assert.True(t, strings.HasSuffix(got, "last block line"))
}

func TestExtract_InlineTagWithoutHeading(t *testing.T) {
	doc := "some text\nrelevant [task-id: T3] here\nmore of the block\n# Next section\nafter"
	got := Extract(doc, "T3")

	// No heading level was established, so capture continues through
	// subsequent headings.
	assert.Contains(t, got, "relevant")
	assert.Contains(t, got, "more of the block")
	assert.Contains(t, got, "after")
	assert.NotContains(t, got, "some text")
}
