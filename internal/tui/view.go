package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jbw/roadmap/internal/domain"
	"github.com/jbw/roadmap/internal/textwrap"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	listWidth, detailWidth := m.paneWidths()
	list := m.viewList(listWidth)
	if detailWidth > 0 {
		detail := m.viewDetail(detailWidth)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detail))
	} else {
		b.WriteString(list)
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))
	return b.String()
}

// paneWidths computes the list and detail widths for this frame.
// Detail width 0 means the detail pane is omitted.
func (m *Model) paneWidths() (int, int) {
	if m.mode == ViewList || m.width < minSplitWidth {
		return m.width, 0
	}
	list := m.width / 2
	if list > maxListPane {
		list = maxListPane
	}
	detail := m.width - list
	if detail < minDetailPane {
		return m.width, 0
	}
	return list, detail
}

// viewHeader renders the title line with the task count and any active
// filter description.
func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("Roadmap")
	count := m.styles.HeaderCount.Render(fmt.Sprintf(" %d tasks", len(m.tasks)))
	line := title + count
	if !m.filter.IsZero() {
		line += "  " + m.styles.FilterBadge.Render("filters: "+strings.Join(m.filter.Describe(), ", "))
	}
	return line
}

// viewList renders the scrollable task rows.
func (m *Model) viewList(width int) string {
	if m.loading {
		return m.styles.Muted.Render("Loading tasks...")
	}
	if len(m.tasks) == 0 {
		return m.styles.Muted.Render("No tasks match. Press 'f' to clear filters.")
	}

	visible := m.listHeight()
	end := m.offset + visible
	if end > len(m.tasks) {
		end = len(m.tasks)
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.tasks[i], i == m.cursor, width))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderRow renders one list row, truncated to the pane width.
func (m *Model) renderRow(t *domain.Task, selected bool, width int) string {
	cursor := " "
	if selected {
		cursor = m.styles.Cursor.Render("▸")
	}

	milestone := t.Milestone
	if milestone == "" {
		milestone = "-"
	}

	// Fixed-width columns ahead of the title, title takes the rest.
	prefix := fmt.Sprintf("%s %-8s %s %-3s %-10s ",
		cursor,
		t.ID,
		m.styles.StatusStyle(t.Status).Render(t.Status.Icon()),
		t.Priority.Marker(),
		runewidth.Truncate(milestone, 10, "..."),
	)

	titleWidth := width - lipgloss.Width(prefix) - 1
	if titleWidth < 4 {
		titleWidth = 4
	}
	title := runewidth.Truncate(t.Title, titleWidth, "...")

	line := prefix + title
	if selected {
		return m.styles.Selected.Render(stripAnsiPad(line, width))
	}
	return line
}

// viewDetail renders the bordered detail pane for the selected task.
func (m *Model) viewDetail(width int) string {
	inner := width - 4 // border + padding
	if inner < 1 {
		inner = 1
	}

	t := m.selected()
	if t == nil {
		return m.styles.PaneBorder.Width(width - 2).Render(m.styles.Muted.Render("Nothing selected"))
	}

	var lines []string
	add := func(label, value string, maxLines int) {
		if value == "" {
			return
		}
		lines = append(lines, m.styles.FieldLabel.Render(label))
		wrapped := textwrap.Wrap(value, inner)
		if len(wrapped) > maxLines {
			wrapped = wrapped[:maxLines]
		}
		lines = append(lines, wrapped...)
	}

	add("Title", t.Title, wrapLinesShort)
	lines = append(lines,
		m.styles.FieldLabel.Render("Status"),
		m.styles.StatusStyle(t.Status).Render(t.Status.Icon()+" "+t.Status.Display()),
		m.styles.FieldLabel.Render("Priority"),
		m.styles.Priority.Render(t.Priority.Marker()+" "+t.Priority.Display()),
		m.styles.FieldLabel.Render("Milestone"),
	)
	if t.Milestone == "" {
		lines = append(lines, m.styles.Muted.Render("None"))
	} else {
		lines = append(lines, m.styles.Milestone.Render(t.Milestone))
	}
	add("Description", t.Description, wrapLinesLong)
	add("Details", t.Details, wrapLinesLong)

	if len(t.Links) > 0 {
		lines = append(lines, m.styles.FieldLabel.Render("Documents"))
		for i, link := range t.Links {
			if i >= 3 {
				break
			}
			lines = append(lines, "📄 "+runewidth.Truncate(link.Name, inner-3, "..."))
		}
	}

	return m.styles.PaneBorder.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// stripAnsiPad pads a line with spaces to the given display width so a
// selection background covers the full row.
func stripAnsiPad(line string, width int) string {
	w := lipgloss.Width(line)
	if w >= width {
		return line
	}
	return line + strings.Repeat(" ", width-w)
}
