package dimse

import (
	"errors"
	"fmt"
)

// ErrElementNotFound is wrapped by element getters when a required command
// element is absent from the stream.
var ErrElementNotFound = errors.New("element not found")

// UnknownCommandError is returned by decoding when the command field is
// absent or its value matches no registered message kind.
type UnknownCommandError struct {
	CommandField uint16
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown DIMSE command 0x%04x", e.CommandField)
}

// MissingRequiredFieldError is returned by decoding when a required field of
// a recognized message kind is absent from the stream.
type MissingRequiredFieldError struct {
	Kind  string
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("%s: required field %s not found during DIMSE decoding", e.Kind, e.Field)
}
