package backend

import (
	"errors"
	"fmt"
)

// Kind classifies why a backend call did not produce a result
type Kind string

const (
	// KindNetwork means the request could not be sent or the response could not be read
	KindNetwork Kind = "network"
	// KindServer means the backend answered with a non-2xx status
	KindServer Kind = "server"
	// KindDecode means a 2xx body could not be parsed into the expected shape
	KindDecode Kind = "decode"
	// KindValidation means the user input was rejected before any request was sent
	KindValidation Kind = "validation"
)

// User-facing fallback messages
const (
	MessageNetwork = "Could not reach the processing service"
	MessageDecode  = "Received an invalid response from the server"
)

// Error is returned by every Client call that does not succeed
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or an empty Kind when err is not a backend error
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// MessageOf returns the user-facing message for err
func MessageOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func serverMessage(status int) string {
	return fmt.Sprintf("Request failed with status %d", status)
}
