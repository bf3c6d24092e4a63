package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jbw/roadmap/internal/app"
	"github.com/jbw/roadmap/internal/domain"
	"github.com/jbw/roadmap/internal/tui"
)

// runProgramFunc runs a bubbletea program, replaceable in tests.
var runProgramFunc = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// newPanelCommand creates the panel command for the full-screen
// split-pane browser.
func newPanelCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status    string
		Priority  string
		Milestone string
	}

	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Open the full-screen task browser",
		Long: `Open the full-screen split-pane browser.

Keys: ↑/↓ move, space cycles the selected task's status (persisted
immediately), v toggles the split/list layout, f clears filters,
q quits.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			filter := domain.TaskFilter{
				Status:    domain.Status(opts.Status),
				Priority:  domain.Priority(opts.Priority),
				Milestone: opts.Milestone,
			}
			model := tui.New(c.ListTasksUseCase(), c.CycleStatusUseCase(), c.Logger, filter)
			if err := runProgramFunc(model); err != nil {
				return fmt.Errorf("panel: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "initial status filter")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "initial priority filter")
	cmd.Flags().StringVar(&opts.Milestone, "milestone", "", "initial milestone filter")

	return cmd
}
