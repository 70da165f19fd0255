package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/parser"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(life completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(life completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// commandCompletions offers verbs first, then collection kinds.
func commandCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var candidates []string
	switch len(args) {
	case 0:
		candidates = parser.Verbs()
	case 1:
		for _, k := range collection.AllKinds() {
			candidates = append(candidates, string(k))
		}
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	out := candidates[:0]
	for _, c := range candidates {
		if strings.HasPrefix(c, toComplete) {
			out = append(out, c)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
