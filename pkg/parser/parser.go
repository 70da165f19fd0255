// Package parser turns command text into commands.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/command"
)

const (
	msgUnknownCommand = "Unknown command"
	msgInvalidFormat  = "Invalid command format!"
)

// Parser is stateless; the zero value is ready to use.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

// Parse reads text of the form "VERB KIND [ARGS]".
func (p *Parser) Parse(text string) (command.Command, error) {
	verb, rest := splitWord(text)
	verb = strings.ToLower(verb)
	if verb == "" {
		return nil, &command.ParseError{Msg: msgInvalidFormat, Usage: HelpText()}
	}

	switch verb {
	case "help":
		return command.Help{Text: HelpText()}, nil
	case "history":
		return command.History{}, nil
	case "save":
		return command.Save{}, nil
	case "exit":
		return command.Exit{}, nil
	case "tick":
		return parseTick(optionalKind(rest, collection.KindTasks))
	case "recent":
		return parseRecent(optionalKind(rest, collection.KindWorkouts))
	case "total":
		k, args := optionalKind(rest, collection.KindPurchases)
		if k != collection.KindPurchases || args != "" {
			return nil, invalid("total")
		}
		return command.Total{}, nil
	}

	if _, ok := usages[verb]; !ok {
		return nil, &command.ParseError{Msg: msgUnknownCommand, Usage: HelpText()}
	}

	kindWord, args := splitWord(rest)
	if kindWord == "" {
		return nil, invalid(verb)
	}
	kind, err := collection.ParseKind(kindWord)
	if err != nil {
		return nil, &command.ParseError{Msg: fmt.Sprintf("Unknown collection %q", kindWord), Usage: Usage(verb)}
	}

	switch kind {
	case collection.KindContacts:
		return parseContacts(verb, args)
	case collection.KindTasks:
		return parseTasks(verb, args)
	case collection.KindTicked:
		return parseTicked(verb, args)
	case collection.KindPurchases:
		return parsePurchases(verb, args)
	case collection.KindWorkouts:
		return parseWorkouts(verb, args)
	case collection.KindHabits:
		return parseHabits(verb, args)
	}
	return nil, invalid(verb)
}

// common handles the verbs every kind supports.
func common[E command.Item[E]](of command.Binding[E], verb, args string) (command.Command, bool, error) {
	switch verb {
	case "list", "clear", "undo", "redo":
		if args != "" {
			return nil, true, invalid(verb)
		}
	}
	switch verb {
	case "list":
		return command.List[E]{Of: of}, true, nil
	case "clear":
		return command.Clear[E]{Of: of}, true, nil
	case "undo":
		return command.Undo[E]{Of: of}, true, nil
	case "redo":
		return command.Redo[E]{Of: of}, true, nil
	case "delete":
		i, err := parseIndex(verb, args)
		if err != nil {
			return nil, true, err
		}
		return command.Delete[E]{Of: of, Index: i}, true, nil
	case "select":
		i, err := parseIndex(verb, args)
		if err != nil {
			return nil, true, err
		}
		return command.Select[E]{Of: of, Index: i}, true, nil
	}
	return nil, false, nil
}

func parseTick(kind collection.Kind, args string) (command.Command, error) {
	if kind != collection.KindTasks {
		return nil, invalid("tick")
	}
	i, err := parseIndex("tick", args)
	if err != nil {
		return nil, err
	}
	return command.Tick{Index: i}, nil
}

func parseRecent(kind collection.Kind, args string) (command.Command, error) {
	if kind != collection.KindWorkouts {
		return nil, invalid("recent")
	}
	if args == "" {
		return command.Recent{N: command.DefaultRecent}, nil
	}
	n, err := strconv.Atoi(args)
	if err != nil || n < 1 {
		return nil, &command.ParseError{Msg: "The workout count should be a positive integer", Usage: Usage("recent")}
	}
	return command.Recent{N: n}, nil
}

func parseIndex(verb, args string) (command.Index, error) {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return 0, invalid(verb)
	}
	i, err := command.IndexFromOneBased(n)
	if err != nil {
		return 0, &command.ParseError{Msg: "Index is not a non-zero unsigned integer.", Usage: Usage(verb)}
	}
	return i, nil
}

// optionalKind reads a leading kind word if there is one; otherwise the kind
// defaults to def and rest is returned whole.
func optionalKind(rest string, def collection.Kind) (collection.Kind, string) {
	word, args := splitWord(rest)
	if k, err := collection.ParseKind(word); err == nil {
		return k, args
	}
	return def, strings.TrimSpace(rest)
}

func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool { return r == ' ' || r == '\t' })
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

func invalid(verb string) error {
	return &command.ParseError{Msg: msgInvalidFormat, Usage: Usage(verb)}
}

func fieldError(verb string, err error) error {
	return &command.ParseError{Msg: err.Error(), Usage: Usage(verb)}
}

func unsupported(verb string, kind collection.Kind) error {
	return &command.ParseError{
		Msg:   fmt.Sprintf("%s is not supported for the %s", verb, kind.Label()),
		Usage: Usage(verb),
	}
}
