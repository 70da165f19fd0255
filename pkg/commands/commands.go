package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/life/pkg/app"
	"tableflip.dev/life/pkg/commands/options"
	"tableflip.dev/life/pkg/store"
)

var (
	oo = &options.OutputOptions{}
	lo = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:           "life",
		Short:         options.Wrap80("Contacts, tasks, expenses, workouts and habits on the command line."),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddLogArgs(cmd, lo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addExec(topLevel)
	addShell(topLevel)
	addInfo(topLevel)
	addWatch(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// openService loads the config, builds the logger and opens the data
// directory.
func openService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := lo.Logger(os.Stderr, cfg.Level)
	if err != nil {
		return nil, err
	}
	return app.Open(cfg, logger)
}
