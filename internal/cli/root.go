// Package cli provides the command-line interface for roadmap.
package cli

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jbw/roadmap/internal/app"
	"github.com/jbw/roadmap/internal/domain"
	"github.com/jbw/roadmap/internal/report"
)

const fallbackWidth = 100

// NewRootCommand creates the root command. Without flags it enters the
// interactive report menu; flags short-circuit to a single report and
// exit.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts struct {
		List     bool
		Task     string
		Status   string
		Priority string
	}

	root := &cobra.Command{
		Use:   "roadmap",
		Short: "Terminal roadmap viewer",
		Long: `roadmap is a terminal viewer and light editor for a workspace
task roadmap stored as a single JSON file.

Without flags it opens an interactive menu. Use --list, --task,
--status or --priority for one-shot reports, or the 'panel'
subcommand for the full-screen browser.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			menu := NewMenu(c, newRenderer(c), cmd.InOrStdin(), cmd.OutOrStdout())

			switch {
			case opts.Task != "":
				// Ids are stored upper case.
				return menu.ShowTask(cmd.Context(), strings.ToUpper(opts.Task))

			case opts.Status != "" || opts.Priority != "":
				filter := domain.TaskFilter{
					Status:   domain.Status(opts.Status),
					Priority: domain.Priority(opts.Priority),
				}
				return menu.ListFiltered(cmd.Context(), filter)

			case opts.List:
				return menu.ListByMilestone(cmd.Context(), true)

			default:
				return menu.Run(cmd.Context())
			}
		},
	}

	root.Flags().BoolVar(&opts.List, "list", false, "print the milestone-grouped listing")
	root.Flags().StringVar(&opts.Task, "task", "", "print one task's detail view")
	root.Flags().StringVar(&opts.Status, "status", "", "filter by status (todo|in_progress|done|blocked)")
	root.Flags().StringVar(&opts.Priority, "priority", "", "filter by priority (critical|high|medium|low)")

	root.AddCommand(
		newPanelCommand(c),
		newExportCommand(c),
	)

	return root
}

// newRenderer builds a report renderer sized to the current terminal.
func newRenderer(c *app.Container) *report.Renderer {
	return report.New(report.Options{
		Width:    terminalWidth(),
		Title:    c.Config.Banner.Title,
		Subtitle: c.Config.Banner.Subtitle,
	})
}

// terminalWidth returns the stdout width, or a fixed fallback when
// stdout is not a terminal (pipes, tests).
func terminalWidth() int {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fallbackWidth
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}
