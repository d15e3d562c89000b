package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/rncourse/internal/contract"
	"github.com/alexanderramin/rncourse/internal/curriculum"
	"github.com/alexanderramin/rncourse/internal/domain"
	"github.com/spf13/cobra"
)

func newNextCmd(app *App) *cobra.Command {
	return newStepCmd(app, contract.Forward, "next", "Show the session after DAY SESSION", "No next session: end of the course.")
}

func newPrevCmd(app *App) *cobra.Command {
	return newStepCmd(app, contract.Backward, "prev", "Show the session before DAY SESSION", "No previous session: start of the course.")
}

func newStepCmd(app *App, dir contract.Direction, use, short, none string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " DAY SESSION",
		Short: short,
		Long:  short + ". The challenge is session 5.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDaySession(args)
			if err != nil {
				return err
			}
			if !curriculum.IsValidSession(id.Day, id.Session) {
				return fmt.Errorf("day %d session %d is not part of the course", id.Day, id.Session)
			}

			page, err := app.Navigation.Step(commandContext(cmd), id, dir)
			if errors.Is(err, domain.ErrRouteNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), none)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", page.Path, page.Title)
			return nil
		},
	}
}

func newTitleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "title DAY SESSION",
		Short: "Print the display title for DAY SESSION",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDaySession(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), curriculum.SessionTitle(id.Day, id.Session))
			return nil
		},
	}
}

func parseDaySession(args []string) (domain.SessionID, error) {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return domain.SessionID{}, fmt.Errorf("invalid day %q: must be a number", args[0])
	}
	session, err := strconv.Atoi(args[1])
	if err != nil {
		return domain.SessionID{}, fmt.Errorf("invalid session %q: must be a number", args[1])
	}
	return domain.SessionID{Day: day, Session: session}, nil
}
