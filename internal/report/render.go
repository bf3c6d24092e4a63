package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jbw/roadmap/internal/domain"
	"github.com/jbw/roadmap/internal/prd"
	"github.com/jbw/roadmap/internal/textwrap"
)

const (
	maxCardWidth     = 100
	progressBarCells = 30
)

// Excerpt is a formatted block captured from a linked document,
// rendered below a task's detail card.
type Excerpt struct {
	Name    string
	Content string
}

// Renderer draws the report-mode output: banner, stats, cards and
// listings. All methods return strings; callers decide where they go.
type Renderer struct {
	styles    Styles
	formatter *prd.Formatter
	width     int
	title     string
	subtitle  string
}

// Options configures a Renderer.
type Options struct {
	Width    int // terminal width; values below 40 are clamped
	Title    string
	Subtitle string
}

// New returns a report renderer for the given terminal width.
func New(opts Options) *Renderer {
	if opts.Width < 40 {
		opts.Width = 40
	}
	return &Renderer{
		styles:    DefaultStyles(),
		formatter: prd.NewFormatter(),
		width:     opts.Width,
		title:     opts.Title,
		subtitle:  opts.Subtitle,
	}
}

func (r *Renderer) cardWidth() int {
	w := r.width - 4
	if w > maxCardWidth {
		w = maxCardWidth
	}
	return w
}

// Banner renders the boxed report header.
func (r *Renderer) Banner() string {
	body := r.styles.BannerTitle.Render(r.title)
	if r.subtitle != "" {
		body += "\n" + r.styles.BannerSubtitle.Render(r.subtitle)
	}
	return r.styles.Banner.Width(r.width - 2).Render(body)
}

// Stats renders per-status counts and the completion progress bar.
func (r *Renderer) Stats(tasks []*domain.Task) string {
	counts := map[domain.Status]int{}
	for _, t := range tasks {
		counts[t.Status]++
	}

	var b strings.Builder
	b.WriteString(r.styles.SectionTitle.Render(fmt.Sprintf("📊 Total tasks: %d", len(tasks))) + "\n")
	for _, s := range domain.AllStatuses() {
		line := fmt.Sprintf("  %s %-12s %d", s.Icon(), s.Display(), counts[s])
		b.WriteString(r.styles.StatusStyle(s).Render(line) + "\n")
	}

	done := counts[domain.StatusDone]
	total := len(tasks)
	var pct float64
	filled := 0
	if total > 0 {
		pct = float64(done) / float64(total) * 100
		filled = done * progressBarCells / total
	}
	bar := r.styles.ProgressFilled.Render(strings.Repeat("█", filled)) +
		r.styles.ProgressEmpty.Render(strings.Repeat("░", progressBarCells-filled))
	b.WriteString(fmt.Sprintf("\n  Progress: %s %.1f%%\n", bar, pct))
	return b.String()
}

// Card renders a single bordered task card. When detailed is true the
// card includes the wrapped description and document links.
func (r *Renderer) Card(t *domain.Task, detailed bool) string {
	w := r.cardWidth()
	inner := w - 4 // border + padding

	lines := []string{
		r.cardHeader(t, inner),
		r.styles.CardPriority.Render(fmt.Sprintf("%s %s priority", PriorityIcon(t.Priority), t.Priority.Display())),
	}

	if detailed {
		if t.Description != "" {
			lines = append(lines, r.styles.Separator.Render(strings.Repeat("─", inner)))
			desc := textwrap.Wrap(t.Description, inner)
			if len(desc) > 3 {
				desc = desc[:3]
			}
			lines = append(lines, desc...)
		}
		if len(t.Links) > 0 {
			lines = append(lines, r.styles.Separator.Render(strings.Repeat("─", inner)))
			lines = append(lines, r.styles.CardLink.Render("🔗 Related Documents:"))
			for i, link := range t.Links {
				if i >= 3 {
					break
				}
				lines = append(lines, "  📄 "+link.Name)
			}
		}
	}

	return r.styles.CardBorder.Width(w - 2).Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// FlatListing renders compact cards for tasks in their given order.
func (r *Renderer) FlatListing(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return r.styles.Muted.Render("  No tasks found.") + "\n"
	}
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(r.Card(t, false) + "\n")
	}
	return b.String()
}

// GroupedListing renders one compact card per task, bucketed by
// milestone in alphabetical order, tasks lacking a milestone under
// "Unassigned". With numbered set, an [N] index line precedes each
// card and the returned map resolves N back to the task id for
// drill-in prompts.
func (r *Renderer) GroupedListing(tasks []*domain.Task, numbered bool) (string, map[int]string) {
	buckets := map[string][]*domain.Task{}
	for _, t := range tasks {
		label := t.MilestoneLabel()
		buckets[label] = append(buckets[label], t)
	}
	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	index := map[int]string{}
	n := 0
	var b strings.Builder
	for _, label := range labels {
		b.WriteString(r.styles.MilestoneHeader.Render("🎯 "+label) + "\n")
		for _, t := range buckets[label] {
			if numbered {
				n++
				index[n] = t.ID
				b.WriteString(r.styles.Index.Render(fmt.Sprintf("[%d]", n)) + "\n")
			}
			b.WriteString(r.Card(t, false) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String(), index
}

// Detail renders the full view for a single task: detailed card,
// formatted document excerpts, additional notes and subtasks.
func (r *Renderer) Detail(task *domain.Task, subtasks []*domain.Task, excerpts []Excerpt) string {
	var b strings.Builder
	b.WriteString(r.Card(task, true) + "\n")

	for _, ex := range excerpts {
		b.WriteString("\n" + r.styles.SectionTitle.Render("📖 "+ex.Name) + "\n")
		b.WriteString(r.styles.Separator.Render(strings.Repeat("─", r.cardWidth())) + "\n")
		for _, line := range r.formatter.Format(ex.Content) {
			b.WriteString(line + "\n")
		}
	}

	if len(task.Details) > 100 {
		b.WriteString("\n" + r.styles.SectionTitle.Render("📝 Additional Notes") + "\n")
		for _, line := range textwrap.Wrap(task.Details, r.cardWidth()) {
			b.WriteString("  " + line + "\n")
		}
	}

	if len(subtasks) > 0 {
		b.WriteString("\n" + r.styles.SectionTitle.Render("📋 Subtasks") + "\n")
		for _, st := range subtasks {
			icon := r.styles.StatusStyle(st.Status).Render(st.Status.Icon())
			b.WriteString(fmt.Sprintf("  %s %s - %s\n", icon, st.ID, st.Title))
		}
	}
	return b.String()
}

// cardHeader renders the "icon id - title ... milestone" line padded
// to width. The id/title text is truncated while still plain, before
// the styled icon and badge are attached, so ANSI sequences are never
// cut mid-escape.
func (r *Renderer) cardHeader(t *domain.Task, width int) string {
	icon := r.styles.StatusStyle(t.Status).Render(t.Status.Icon())
	badge := r.styles.CardMilestone.Render("🎯 " + t.MilestoneLabel())
	text := fmt.Sprintf("%s - %s", t.ID, t.Title)

	used := lipgloss.Width(icon) + 1 + lipgloss.Width(badge)
	avail := width - used - 1
	if avail < 4 {
		avail = 4
	}
	if runewidth.StringWidth(text) > avail {
		text = runewidth.Truncate(text, avail, "...")
	}

	gap := width - used - runewidth.StringWidth(text)
	if gap < 1 {
		gap = 1
	}
	return icon + " " + text + strings.Repeat(" ", gap) + badge
}
