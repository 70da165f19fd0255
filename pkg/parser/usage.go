package parser

import (
	"slices"
	"strings"
)

var usages = map[string]string{
	"add": `add KIND FIELDS
  contacts:  add contact n/NAME p/PHONE e/EMAIL [a/ADDRESS] [t/TAG]...
  tasks:     add task n/NAME d/YYYY-MM-DD [h/HH:MM] [t/TAG]...
  purchases: add purchase n/NAME $/PRICE d/YYYY-MM-DD [t/TAG]...
  workouts:  add workout n/EXERCISE s/SETS r/REPS l/DURATION d/YYYY-MM-DD
  habits:    add habit n/TITLE [k/STREAK] [t/TAG]...`,
	"delete": `delete KIND INDEX
  INDEX is the 1-based position in the displayed list. Example: delete task 2`,
	"edit": `edit KIND INDEX FIELDS
  At least one field must be given. Works on contacts, tasks, purchases and habits.
  Example: edit contact 1 p/91234567 e/alex@example.com`,
	"list": `list KIND`,
	"find": `find KIND KEYWORD [MORE_KEYWORDS]...
  Works on contacts, tasks, purchases and habits. Example: find contact alex bernice`,
	"sort": `sort KIND [price]
  contacts sort by name, tasks by deadline, purchases by date (or by price).`,
	"select":  `select KIND INDEX`,
	"clear":   `clear KIND`,
	"undo":    `undo KIND`,
	"redo":    `redo KIND`,
	"tick":    `tick [tasks] INDEX`,
	"recent":  `recent [workouts] [COUNT]`,
	"total":   `total [purchases]`,
	"history": `history`,
	"help":    `help`,
	"save":    `save`,
	"exit":    `exit`,
}

var verbOrder = []string{
	"add", "delete", "edit", "list", "find", "sort", "select", "clear",
	"undo", "redo", "tick", "recent", "total", "history", "help", "save", "exit",
}

// Verbs returns every command verb in help order.
func Verbs() []string {
	return slices.Clone(verbOrder)
}

// Usage returns the usage text for verb.
func Usage(verb string) string {
	return usages[verb]
}

// HelpText summarizes every command.
func HelpText() string {
	var b strings.Builder
	b.WriteString("Commands take the form VERB KIND [ARGS]. KIND is one of contacts, tasks, ticked, purchases, workouts, habits.\n\n")
	for _, verb := range verbOrder {
		b.WriteString(usages[verb])
		b.WriteString("\n")
	}
	return b.String()
}
