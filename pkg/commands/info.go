package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/life/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the collections and where they are stored.",
		Example: `
life info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			s := info.Info{Service: svc, Out: cmd.OutOrStdout()}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
