package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/life/pkg/runner/exec"
)

func addExec(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run one command, e.g. add task n/Buy milk d/2024-01-01",
		Example: `
life exec add contact n/Alex Yeoh p/87438807 e/alexyeoh@example.com
life exec delete task 2
life exec find habit read
life exec tick 1
`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: commandCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			e := exec.Exec{
				Service: svc,
				Text:    strings.Join(args, " "),
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = e.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
