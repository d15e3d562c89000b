package cli

import (
	"context"

	"github.com/spf13/cobra"
)

const defaultStartPath = "/day1/session-1"

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [PATH]",
		Short: "Browse the course interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := defaultStartPath
			if len(args) == 1 {
				start = args[0]
			}
			return runBrowse(commandContext(cmd), app, start)
		},
	}
}

func runBrowse(ctx context.Context, app *App, start string) error {
	page, err := app.Navigation.Resolve(ctx, start)
	if err != nil {
		return notFound(err, start)
	}
	m := newBrowseModel(ctx, app, page)
	return app.RunProgram(m)
}
