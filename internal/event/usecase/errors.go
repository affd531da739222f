package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrParseFailure  = errors.New("Failed to parse AI response")
)

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ChatErrorKind classifies why a chat-to-event request failed.
type ChatErrorKind int

const (
	// KindUnexpected covers conversion and persistence failures.
	KindUnexpected ChatErrorKind = iota
	KindValidation
	KindConfiguration
	KindExternalService
	KindParseFailure
)

func (k ChatErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindExternalService:
		return "external_service"
	case KindParseFailure:
		return "parse_failure"
	default:
		return "unexpected"
	}
}

// ChatError is the only error type CreateEventFromQuery returns.
// Msg is safe to show to the caller.
type ChatError struct {
	Kind ChatErrorKind
	Msg  string
	Err  error
}

func (e *ChatError) Error() string {
	return e.Msg
}

func (e *ChatError) Unwrap() error {
	return e.Err
}

func newChatError(kind ChatErrorKind, err error) *ChatError {
	return &ChatError{Kind: kind, Msg: err.Error(), Err: err}
}
