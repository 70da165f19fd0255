// Package exec runs a single command and prints its result.
package exec

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/life/pkg/app"
	"tableflip.dev/life/pkg/printers"
)

type Exec struct {
	Service *app.Service
	Text    string
	JSON    bool
	Out     io.Writer
}

func (e *Exec) Do(ctx context.Context) error {
	out := e.Out
	if out == nil {
		out = color.Output
	}

	res, err := e.Service.Execute(e.Text)
	if err != nil {
		return err
	}

	if e.JSON {
		b, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.New()
	pp.Out = out
	pp.Result(e.Service.Model(), res)
	return nil
}
