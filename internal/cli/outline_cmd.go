package cli

import (
	"fmt"

	"github.com/alexanderramin/rncourse/internal/cli/formatter"
	"github.com/alexanderramin/rncourse/internal/curriculum"
	"github.com/alexanderramin/rncourse/internal/domain"
	"github.com/spf13/cobra"
)

func newOutlineCmd(app *App) *cobra.Command {
	var current string

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Print the course outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var active *domain.SessionID
			if current != "" {
				id, ok := curriculum.ResolvePath(current)
				if !ok {
					return fmt.Errorf("page not found: %s", current)
				}
				active = &id
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOutline(app.Navigation.Outline(commandContext(cmd)), active))
			return err
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Highlight the session at this path")
	return cmd
}
