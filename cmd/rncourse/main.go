package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/rncourse/internal/cli"
	"github.com/alexanderramin/rncourse/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file: RNCOURSE_CONFIG or ~/.rncourse/config.yaml
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := &cli.App{Config: &cfg}

	// Detect interactive terminal so a bare `rncourse` opens the browser.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
