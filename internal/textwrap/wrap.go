// Package textwrap provides greedy word wrapping for terminal display.
package textwrap

import "strings"

// Wrap breaks text into lines no wider than width, splitting only at
// whitespace. A single word longer than width gets its own line,
// untruncated; clipping is the caller's concern at draw time. Empty or
// whitespace-only input yields one empty line so callers can always
// index line 0.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current []string
	length := 0

	for _, word := range words {
		if length+len(word)+1 <= width || len(current) == 0 {
			current = append(current, word)
			length += len(word) + 1
		} else {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
			length = len(word)
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	return lines
}
