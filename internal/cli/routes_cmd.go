package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/rncourse/internal/cli/formatter"
	"github.com/alexanderramin/rncourse/internal/sitemap"
	"github.com/spf13/cobra"
)

func newRoutesCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List every valid course route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			routes := app.Navigation.Routes(commandContext(cmd))
			out := cmd.OutOrStdout()
			if plain {
				_, err := fmt.Fprintln(out, strings.Join(routes, "\n"))
				return err
			}
			_, err := fmt.Fprint(out, formatter.FormatRoutes(routes))
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print bare paths, one per line")
	return cmd
}

func newSitemapCmd(app *App) *cobra.Command {
	var outPath, format string

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Generate a sitemap of all course routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			routes := app.Navigation.Routes(commandContext(cmd))

			var buf bytes.Buffer
			var err error
			switch format {
			case "xml":
				err = sitemap.WriteXML(&buf, app.Config.BaseURL, routes)
			case "text":
				err = sitemap.WriteText(&buf, app.Config.BaseURL, routes)
			default:
				return fmt.Errorf("unknown sitemap format %q (want xml or text)", format)
			}
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing sitemap: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d routes to %s\n", len(routes), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout")
	cmd.Flags().StringVar(&format, "format", "xml", "Output format: xml or text")
	return cmd
}
