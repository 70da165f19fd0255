package commands

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/life/pkg/commands/options"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	*oo = options.OutputOptions{}
	lo.Level = ""

	var buf bytes.Buffer
	cmd := New()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestExecAcrossInvocations(t *testing.T) {
	color.NoColor = true
	t.Setenv("LIFE_CONFIG_PATH", t.TempDir())
	t.Setenv("LIFE_PATH", t.TempDir())

	out, err := run(t, "exec", "add", "habit", "n/Read")
	require.NoError(t, err)
	assert.Contains(t, out, "New habit added: Read")

	out, err = run(t, "exec", "list", "habits")
	require.NoError(t, err)
	assert.Contains(t, out, "1. ○ Read Streak: 0")

	_, err = run(t, "exec", "delete", "habit", "4")
	assert.EqualError(t, err, "The habit index provided is invalid")

	out, err = run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Config.backend: diskv")
}

func TestExecNeedsArgs(t *testing.T) {
	_, err := run(t, "exec")
	assert.Error(t, err)
}

func TestUnknownLogLevel(t *testing.T) {
	t.Setenv("LIFE_CONFIG_PATH", t.TempDir())
	t.Setenv("LIFE_PATH", t.TempDir())
	_, err := run(t, "--log-level", "loud", "exec", "help")
	assert.EqualError(t, err, "invalid log level: loud")
}

func TestCommandCompletions(t *testing.T) {
	got, _ := commandCompletions(nil, nil, "re")
	assert.Equal(t, []string{"redo", "recent"}, got)

	got, _ = commandCompletions(nil, []string{"add"}, "t")
	assert.Equal(t, []string{"tasks", "ticked"}, got)

	got, directive := commandCompletions(nil, []string{"add", "task"}, "")
	assert.Empty(t, got)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
