package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoStoredCredential   = errors.New("no stored credential, run `etrade login` first")
	ErrIncompleteCredential = errors.New("credential is incomplete")
	// ErrExitRequested is returned when the user picks "Exit" before a session
	// exists. It is a clean shutdown, not a failure.
	ErrExitRequested = errors.New("exit requested")
)

type ErrorKind string

const (
	KindAuth      ErrorKind = "auth"
	KindTransport ErrorKind = "transport"
	KindAPI       ErrorKind = "api"
	KindSchema    ErrorKind = "schema"
	KindStorage   ErrorKind = "storage"
	KindUsage     ErrorKind = "usage"
)

// Error is a classified failure. API and schema errors carry no cause so that
// Error() is exactly the message reported by the service.
type Error struct {
	Kind    ErrorKind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

func NewAuthError(message string, cause error) *Error {
	return &Error{Kind: KindAuth, Message: message, Cause: cause}
}

func NewTransportError(op string, cause error) *Error {
	return &Error{Kind: KindTransport, Op: op, Message: op + " request failed", Cause: cause}
}

func NewAPIError(op string, message string) *Error {
	return &Error{Kind: KindAPI, Op: op, Message: message}
}

func NewSchemaError(op string) *Error {
	return &Error{Kind: KindSchema, Op: op, Message: ServiceErrorMessage(op)}
}

func NewStorageError(message string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: message, Cause: cause}
}

// NewUsageError reports bad input from the caller, such as an unknown tool
// name or malformed tool arguments.
func NewUsageError(op string, message string) *Error {
	return &Error{Kind: KindUsage, Op: op, Message: message}
}

// NewInvalidArgumentError classifies a rejected argument as a usage error
// while keeping cause reachable through errors.Is.
func NewInvalidArgumentError(op string, cause error) *Error {
	return &Error{Kind: KindUsage, Op: op, Cause: cause}
}

// ServiceErrorMessage is the generic failure text for an endpoint.
func ServiceErrorMessage(op string) string {
	return op + " API service error"
}

func AsError(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// KindOf returns the classification of err, or "" when err is unclassified.
func KindOf(err error) ErrorKind {
	if classified, ok := AsError(err); ok {
		return classified.Kind
	}
	return ""
}

const (
	ExitSuccess   = 0
	ExitInternal  = 1
	ExitUsage     = 2
	ExitAuth      = 10
	ExitTransport = 12
	ExitAPI       = 13
	ExitStorage   = 14
)

func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrExitRequested) {
		return ExitSuccess
	}
	switch KindOf(err) {
	case KindAuth:
		return ExitAuth
	case KindTransport:
		return ExitTransport
	case KindAPI, KindSchema:
		return ExitAPI
	case KindStorage:
		return ExitStorage
	case KindUsage:
		return ExitUsage
	default:
		return ExitInternal
	}
}
