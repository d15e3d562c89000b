package cli

import (
	"context"
	"os"

	"github.com/alexanderramin/rncourse/internal/config"
	"github.com/alexanderramin/rncourse/internal/gate"
	"github.com/alexanderramin/rncourse/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by all commands. Nil
// services are built from Config when the first command runs.
type App struct {
	Config     *config.Config
	Navigation service.NavigationService
	Gate       *gate.Gate

	// IsInteractive reports whether stdin is a terminal; when true, running
	// without a subcommand opens the browser.
	IsInteractive func() bool

	// RunProgram runs a TUI model. Tests replace it to avoid a real terminal.
	RunProgram func(m tea.Model) error
}

// NewRootCmd creates the top-level "rncourse" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Config == nil {
		cfg := config.DefaultConfig()
		app.Config = &cfg
	}

	root := &cobra.Command{
		Use:           "rncourse",
		Short:         "Navigate the seven-day React Native course",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.Validate(); err != nil {
				return err
			}
			app.wire(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runBrowse(cmd.Context(), app, defaultStartPath)
			}
			return cmd.Help()
		},
	}
	app.Config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newRoutesCmd(app),
		newSitemapCmd(app),
		newResolveCmd(app),
		newShowCmd(app),
		newNextCmd(app),
		newPrevCmd(app),
		newTitleCmd(app),
		newOutlineCmd(app),
		newBrowseCmd(app),
	)

	return root
}

func (a *App) wire(cmd *cobra.Command) {
	if a.Navigation == nil {
		var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
		if a.Config.LogCalls {
			observer = service.NewLogUseCaseObserver(cmd.ErrOrStderr())
		}
		a.Navigation = service.NewNavigationService(observer)
	}
	if a.Gate == nil {
		a.Gate = gate.New(a.Config.SolutionPassword)
	}
	if a.RunProgram == nil {
		a.RunProgram = func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(os.Stdin)).Run()
			return err
		}
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
