package logic

import (
	"errors"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/command"
)

const msgPersistence = "could not save data to file: "

// PersistenceError reports a failed save. The in-memory state has already
// changed; the collection stays dirty so a later cycle can retry.
type PersistenceError struct {
	Kind collection.Kind
	Err  error
}

func (e *PersistenceError) Error() string {
	return msgPersistence + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsRecoverable reports whether err is a parse or validation error, which
// left the collection it names untouched and only needs showing to the user.
func IsRecoverable(err error) bool {
	var (
		perr *command.ParseError
		verr *command.ValidationError
	)
	return errors.As(err, &perr) || errors.As(err, &verr)
}
