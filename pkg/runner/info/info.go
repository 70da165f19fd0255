package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/life/pkg/app"
	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/glyph"
)

type Info struct {
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.Service == nil {
		return fmt.Errorf("info: no service opened")
	}

	if override := os.Getenv("LIFE_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "LIFE_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "LIFE_CONFIG_PATH env var not set")
	}

	cfg := n.Service.Config
	_, _ = fmt.Fprintln(out, "Config.path:", cfg.BasePath())
	_, _ = fmt.Fprintln(out, "Config.backend:", cfg.Backend())

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Collection"), bold.Sprint("Items"))
	counts := n.Service.Counts()
	for _, k := range collection.AllKinds() {
		tbl.AddRow(glyph.For(k).Symbol, k.Label(), counts[k])
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
