package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbw/roadmap/internal/app"
	"github.com/jbw/roadmap/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole task collection to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ExportTasksUseCase().Execute(cmd.Context(), usecase.ExportTasksInput{
				Writer: cmd.OutOrStdout(),
				Format: format,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d task(s)\n", out.Count)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", usecase.FormatJSON, "output format (json|yaml)")

	return cmd
}
