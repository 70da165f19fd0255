// Package printers renders command results and collection views to a
// terminal.
package printers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/command"
	"tableflip.dev/life/pkg/glyph"
	"tableflip.dev/life/pkg/model"
)

type PrettyPrint struct {
	Out io.Writer
	// MaxWidth wraps long rows. Zero leaves rows as they are.
	MaxWidth uint
}

// New writes to color.Output, which handles Windows consoles and NO_COLOR.
func New() *PrettyPrint {
	return &PrettyPrint{Out: color.Output, MaxWidth: 80}
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count, total int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	if count != total {
		_, _ = c.Fprintf(pp.out(), " - %d of %d", count, total)
	} else {
		_, _ = c.Fprintf(pp.out(), " - %d", count)
	}

	switch total {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// Message prints the feedback of a command.
func (pp *PrettyPrint) Message(res command.Result) {
	if res.Message == "" {
		return
	}
	_, _ = fmt.Fprintln(pp.out(), res.Message)
}

// Error prints err in red.
func (pp *PrettyPrint) Error(err error) {
	_, _ = color.New(color.FgRed).Fprintln(pp.out(), err.Error())
}

// Result prints the message and, when the result hints at a collection, that
// collection's filtered view.
func (pp *PrettyPrint) Result(m *model.Model, res command.Result) {
	pp.Message(res)
	if k, ok := res.View.Kind(); ok && m != nil {
		pp.NewLine()
		pp.View(m, k)
	}
}

// View prints the filtered view of collection k.
func (pp *PrettyPrint) View(m *model.Model, k collection.Kind) {
	switch k {
	case collection.KindContacts:
		printView(pp, m.Contacts)
	case collection.KindTasks:
		printView(pp, m.Tasks)
	case collection.KindTicked:
		printView(pp, m.Ticked)
	case collection.KindPurchases:
		printView(pp, m.Purchases)
	case collection.KindWorkouts:
		printView(pp, m.Workouts)
	case collection.KindHabits:
		printView(pp, m.Habits)
	}
}

func printView[E command.Item[E]](pp *PrettyPrint, c *collection.Versioned[E]) {
	view := c.Filtered()
	title := c.Kind().Label()
	if c.Filtering() {
		title += " (filtered)"
	}
	pp.TitleWithCount(title, len(view), c.Len())

	if len(view) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	selected, hasSelected := c.Selected()
	g := glyph.For(c.Kind())
	idx := color.New(color.FgHiYellow, color.Faint)
	sel := color.New(color.FgCyan, color.Bold)

	tbl := uitable.New()
	tbl.Separator = " "
	tbl.MaxColWidth = pp.MaxWidth
	tbl.Wrap = pp.MaxWidth > 0
	for i, item := range view {
		marker := " "
		text := item.String()
		if hasSelected && item.Equal(selected) {
			marker = sel.Sprint(glyph.Selected.Symbol)
			text = sel.Sprint(text)
		}
		if c.Kind() == collection.KindTicked {
			text = glyph.Strike(text)
		}
		tbl.AddRow(marker, idx.Sprint(strconv.Itoa(i+1)+"."), g.Symbol, text)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl.String())
	pp.NewLine()
}
