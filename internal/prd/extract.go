// Package prd extracts and styles task-specific excerpts from linked
// planning documents (markdown-ish text files).
package prd

import (
	"regexp"
	"strings"
)

// Extract returns the block of doc that belongs to taskID: the lines
// from a `[task-id: X]` tag or a heading mentioning X, up to (not
// including) the next same-or-higher-level heading that belongs to a
// different task, or end of document. Returns "" when the document has
// no block for the task.
func Extract(doc, taskID string) string {
	if doc == "" || taskID == "" {
		return ""
	}

	tagPattern := regexp.MustCompile(`(?i)\[task-id:\s*` + regexp.QuoteMeta(taskID) + `\]`)
	headingPattern := regexp.MustCompile(`(?i)^#{1,3}\s+.*` + regexp.QuoteMeta(taskID))
	idPattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(taskID))

	var captured []string
	capturing := false
	sectionLevel := 0

	for _, line := range strings.Split(doc, "\n") {
		if tagPattern.MatchString(line) || headingPattern.MatchString(line) {
			capturing = true
			if strings.HasPrefix(line, "#") {
				sectionLevel = headingLevel(line)
			}
			captured = append(captured, line)
			continue
		}
		if !capturing {
			continue
		}
		if strings.HasPrefix(line, "#") && sectionLevel > 0 {
			if headingLevel(line) <= sectionLevel && !idPattern.MatchString(line) {
				break
			}
		}
		captured = append(captured, line)
	}

	return strings.Join(captured, "\n")
}

// headingLevel counts the leading # characters of a heading line.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	return n
}
