package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jbw/roadmap/internal/app"
	"github.com/jbw/roadmap/internal/domain"
	"github.com/jbw/roadmap/internal/report"
	"github.com/jbw/roadmap/internal/usecase"
)

// Menu drives report mode: one-shot listings for the CLI flags and the
// interactive menu loop. Input and output are injected so tests can
// script a session.
type Menu struct {
	container *app.Container
	renderer  *report.Renderer
	in        *bufio.Scanner
	out       io.Writer
}

// NewMenu creates a report menu.
func NewMenu(c *app.Container, r *report.Renderer, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		container: c,
		renderer:  r,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run prints the banner and stats, then loops on the option menu until
// the user quits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	if err := m.printHeader(ctx); err != nil {
		return err
	}

	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "  [1] List tasks by milestone")
		fmt.Fprintln(m.out, "  [2] View task details")
		fmt.Fprintln(m.out, "  [3] Filter by status")
		fmt.Fprintln(m.out, "  [4] Filter by priority")
		fmt.Fprintln(m.out, "  [5] Search tasks")
		fmt.Fprintln(m.out, "  [q] Quit")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			if err := m.ListByMilestone(ctx, true); err != nil {
				m.warn(err)
			}
		case "2":
			m.promptTask(ctx)
		case "3":
			m.promptStatus(ctx)
		case "4":
			m.promptPriority(ctx)
		case "5":
			m.promptSearch(ctx)
		case "q", "Q":
			fmt.Fprintln(m.out, "Bye!")
			return nil
		default:
			fmt.Fprintf(m.out, "Invalid option: %q\n", choice)
		}
	}
}

// ListByMilestone prints the milestone-grouped listing. When
// interactive, rows are numbered and the user may pick one to drill
// into its detail view.
func (m *Menu) ListByMilestone(ctx context.Context, interactive bool) error {
	out, err := m.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{})
	if err != nil {
		return err
	}

	listing, index := m.renderer.GroupedListing(out.Tasks, interactive)
	fmt.Fprint(m.out, listing)

	if !interactive || len(index) == 0 {
		return nil
	}

	choice, ok := m.prompt("Enter a task number for details (or press Enter to skip): ")
	if !ok || choice == "" {
		return nil
	}
	n, err := strconv.Atoi(choice)
	if err != nil {
		fmt.Fprintf(m.out, "Not a number: %q\n", choice)
		return nil
	}
	id, found := index[n]
	if !found {
		fmt.Fprintf(m.out, "No task numbered %d\n", n)
		return nil
	}
	return m.ShowTask(ctx, id)
}

// ShowTask prints the detail view for one task.
func (m *Menu) ShowTask(ctx context.Context, id string) error {
	out, err := m.container.ShowTaskUseCase().Execute(ctx, usecase.ShowTaskInput{TaskID: id})
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return fmt.Errorf("task %s not found", id)
		}
		return err
	}

	excerpts := make([]report.Excerpt, 0, len(out.Excerpts))
	for _, ex := range out.Excerpts {
		excerpts = append(excerpts, report.Excerpt{Name: ex.LinkName, Content: ex.Content})
	}
	fmt.Fprint(m.out, m.renderer.Detail(out.Task, out.Subtasks, excerpts))
	return nil
}

// ListFiltered prints a flat listing restricted by the given filter.
func (m *Menu) ListFiltered(ctx context.Context, filter domain.TaskFilter) error {
	out, err := m.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{Filter: filter})
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, m.renderer.FlatListing(out.Tasks))
	return nil
}

func (m *Menu) printHeader(ctx context.Context) error {
	out, err := m.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{})
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, m.renderer.Banner())
	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, m.renderer.Stats(out.Tasks))
	return nil
}

// promptTask asks for a task id and shows its detail view.
func (m *Menu) promptTask(ctx context.Context) {
	id, ok := m.prompt("Enter task id: ")
	if !ok || id == "" {
		return
	}
	if err := m.ShowTask(ctx, strings.ToUpper(id)); err != nil {
		m.warn(err)
	}
}

// promptStatus offers the status values and prints a filtered listing.
func (m *Menu) promptStatus(ctx context.Context) {
	statuses := domain.AllStatuses()
	for i, s := range statuses {
		fmt.Fprintf(m.out, "  [%d] %s %s\n", i+1, s.Icon(), s.Display())
	}
	choice, ok := m.prompt("Select a status: ")
	if !ok {
		return
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(statuses) {
		fmt.Fprintf(m.out, "Invalid selection: %q\n", choice)
		return
	}
	if err := m.ListFiltered(ctx, domain.TaskFilter{Status: statuses[n-1]}); err != nil {
		m.warn(err)
	}
}

// promptPriority offers the priority values and prints a filtered listing.
func (m *Menu) promptPriority(ctx context.Context) {
	priorities := domain.AllPriorities()
	for i, p := range priorities {
		fmt.Fprintf(m.out, "  [%d] %s %s\n", i+1, p.Marker(), p.Display())
	}
	choice, ok := m.prompt("Select a priority: ")
	if !ok {
		return
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(priorities) {
		fmt.Fprintf(m.out, "Invalid selection: %q\n", choice)
		return
	}
	if err := m.ListFiltered(ctx, domain.TaskFilter{Priority: priorities[n-1]}); err != nil {
		m.warn(err)
	}
}

// promptSearch runs a free-text search over title, description and
// details.
func (m *Menu) promptSearch(ctx context.Context) {
	query, ok := m.prompt("Search: ")
	if !ok {
		return
	}
	out, err := m.container.SearchTasksUseCase().Execute(ctx, usecase.SearchTasksInput{Query: query})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			fmt.Fprintln(m.out, "Empty query.")
			return
		}
		m.warn(err)
		return
	}
	fmt.Fprintf(m.out, "%d match(es)\n", len(out.Tasks))
	fmt.Fprint(m.out, m.renderer.FlatListing(out.Tasks))
}

// prompt prints the given text and reads one trimmed line. ok is false
// when input has ended.
func (m *Menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) warn(err error) {
	fmt.Fprintf(m.out, "Error: %v\n", err)
}
