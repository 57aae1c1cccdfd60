package engine

import (
	"errors"
	"fmt"
)

// UserInputError rejects an intent the current state cannot honor. The turn
// is not consumed and no game state changes; the text is meant for the
// player, not the log.
type UserInputError struct {
	Msg string
}

func (e *UserInputError) Error() string { return e.Msg }

// IsUserInputError reports whether err is an intent rejection.
func IsUserInputError(err error) bool {
	var uie *UserInputError
	return errors.As(err, &uie)
}

func reject(format string, args ...any) error {
	return &UserInputError{Msg: fmt.Sprintf(format, args...)}
}
