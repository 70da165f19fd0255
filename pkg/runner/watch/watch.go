// Package watch prints storage change events as other processes write.
package watch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/life/pkg/app"
	"tableflip.dev/life/pkg/store"
)

type Watch struct {
	Service *app.Service
	Out     io.Writer
}

// Do blocks until ctx is cancelled. Each event reloads the collections and
// prints the new item count.
func (w *Watch) Do(ctx context.Context) error {
	out := w.Out
	if out == nil {
		out = color.Output
	}

	events, err := w.Service.Watch(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "watching %s\n", w.Service.Config.BasePath())

	faint := color.New(color.Faint)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := w.Service.Reload(); err != nil {
				return err
			}
			_, _ = faint.Fprintf(out, "%s ", time.Now().Format(time.TimeOnly))
			if ev.Type == store.EventInvalidated {
				_, _ = fmt.Fprintln(out, "storage changed, reloaded all collections")
				continue
			}
			_, _ = fmt.Fprintf(out, "%s changed: %d items\n", ev.Kind.Label(), w.Service.Counts()[ev.Kind])
		}
	}
}
