package commands

import (
	"github.com/spf13/cobra"
)

// taskCommands lists every task command in the canonical order shown in the
// usage output.
var taskCommands = []struct {
	name    string
	summary string
}{
	{"dev", "Serve the site with live reload and bundle JS in watch mode"},
	{"build", "Bundle JS and build the production site"},
	{"deploy", "Build the site and sync it to the remote host"},
	{"backup", "Archive the project into a dated zip file"},
	{"preview", "Build the site and serve it without watching"},
	{"watch", "Rebuild the site and the JS bundle as sources change"},
	{"clean", "Remove generated build artifacts"},
	{"up", "Start the container environment"},
	{"down", "Stop the container environment"},
	{"bash", "Open a shell inside the app container"},
	{"prune", "Remove unused container data"},
}

func (c *CLI) newTaskCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(taskCommands))
	for _, tc := range taskCommands {
		name := tc.name
		cmds = append(cmds, &cobra.Command{
			Use:   name,
			Short: tc.summary,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.Run(cmd.Context(), name)
			},
		})
	}
	return cmds
}
