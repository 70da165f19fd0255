package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/life/pkg/runner/shell"
)

func addShell(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Enter commands interactively, one per line.",
		Example: `
life shell
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			s := shell.Shell{Service: svc, Out: cmd.OutOrStdout()}
			return oo.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
