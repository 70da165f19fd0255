package command

import (
	"errors"
	"fmt"

	"tableflip.dev/life/pkg/collection"
)

var (
	ErrInvalidIndex = errors.New("command: invalid index")
)

// ValidationError is a business rule violation. The collection it names was
// left untouched. Err is one of ErrInvalidIndex or the collection sentinels.
type ValidationError struct {
	Kind collection.Kind
	Msg  string
	Err  error
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ParseError reports command text that could not be understood.
type ParseError struct {
	Msg   string
	Usage string
}

func (e *ParseError) Error() string {
	if e.Usage == "" {
		return e.Msg
	}
	return e.Msg + "\n" + e.Usage
}

func invalidIndex(k collection.Kind, noun string) error {
	return &ValidationError{
		Kind: k,
		Msg:  fmt.Sprintf("The %s index provided is invalid", noun),
		Err:  ErrInvalidIndex,
	}
}

func validation(k collection.Kind, err error, msg string, args ...any) error {
	return &ValidationError{Kind: k, Msg: fmt.Sprintf(msg, args...), Err: err}
}
