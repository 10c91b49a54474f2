// Package commands implements the CLI commands for the jw workflow tool.
package commands

import (
	"context"
	"io"

	"github.com/agragregra/jw/internal/adapters/telemetry/progrock"
	"github.com/agragregra/jw/internal/app"
	"github.com/agragregra/jw/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for jw.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	// Keep the usage listing in registration order rather than alphabetical.
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "jw",
		Short:         "A workflow tool for Jekyll sites",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Reached with no arguments or with one that matches no command:
		// show the usage and fail.
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			if len(args) == 0 {
				return zerr.New("no command specified")
			}
			return zerr.With(domain.ErrUnknownCommand, "command", args[0])
		},
	}

	rootCmd.PersistentFlags().Bool("progress", false, "Display per-invocation progress")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		progress, err := cmd.Flags().GetBool("progress")
		if err != nil {
			return err
		}
		if progress {
			a.SetTelemetry(progrock.New(cmd.ErrOrStderr()))
		}
		return nil
	}

	for _, taskCmd := range c.newTaskCmds() {
		rootCmd.AddCommand(taskCmd)
	}
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetErr redirects the root command's error stream, which also carries the
// progress rendering. Used for testing.
func (c *CLI) SetErr(w io.Writer) {
	c.rootCmd.SetErr(w)
}
