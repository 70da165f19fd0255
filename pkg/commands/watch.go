package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/life/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print changes made to the collections by other life processes.",
		Example: `
life watch
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			w := watch.Watch{Service: svc, Out: cmd.OutOrStdout()}
			return oo.HandleError(w.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
