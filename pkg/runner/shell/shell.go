// Package shell is the interactive loop: one dispatch cycle per line, with
// the changed collections redrawn after each.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/life/pkg/app"
	"tableflip.dev/life/pkg/command"
	"tableflip.dev/life/pkg/logic"
	"tableflip.dev/life/pkg/printers"
)

type Shell struct {
	Service *app.Service
	Out     io.Writer
	// Read returns the next line. Defaults to a promptui prompt on stdin.
	Read func() (string, error)
}

func (s *Shell) Do(ctx context.Context) error {
	out := s.Out
	if out == nil {
		out = color.Output
	}
	read := s.Read
	if read == nil {
		read = prompt
	}

	pp := printers.New()
	pp.Out = out
	tracker := printers.NewTracker(s.Service.Model())
	defer tracker.Close()

	_, _ = fmt.Fprintln(out, `Type "help" for the list of commands, "exit" to quit.`)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line, err := read()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		res, err := s.Service.Execute(line)
		changed := tracker.Changed()
		if err != nil {
			pp.Error(err)
			if !logic.IsRecoverable(err) {
				_, _ = fmt.Fprintln(out, `Changes are kept in memory; enter "save" to try again.`)
			}
		} else {
			pp.Message(res)
		}

		if k, ok := res.View.Kind(); ok && !slices.Contains(changed, k) {
			changed = append(changed, k)
		}
		for _, k := range changed {
			pp.NewLine()
			pp.View(s.Service.Model(), k)
		}

		if res.View == command.ViewExit {
			return nil
		}
	}
}

func prompt() (string, error) {
	p := promptui.Prompt{
		Label:  "life",
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
	return p.Run()
}
