package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/rncourse/internal/cli/formatter"
	"github.com/alexanderramin/rncourse/internal/domain"
	"github.com/spf13/cobra"
)

func newResolveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve PATH",
		Short: "Resolve a course URL path to its session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := app.Navigation.Resolve(commandContext(cmd), args[0])
			if err != nil {
				return notFound(err, args[0])
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPage(page))
			return err
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PATH",
		Short: "Render a session page in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := app.Navigation.Resolve(commandContext(cmd), args[0])
			if err != nil {
				return notFound(err, args[0])
			}
			out, err := formatter.RenderMarkdown(
				formatter.PageMarkdown(page, app.Gate.Unlocked()),
				app.Config.Style, app.Config.Width,
			)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

// notFound turns an unresolved route into the user-facing not-found error.
func notFound(err error, path string) error {
	if errors.Is(err, domain.ErrRouteNotFound) {
		return fmt.Errorf("page not found: %s (try `rncourse routes`)", path)
	}
	return err
}
