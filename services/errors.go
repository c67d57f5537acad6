package services

import (
	"errors"
	"fmt"
	"net/url"
)

const (
	// FallbackServerMessage is shown when the endpoint fails without an error field.
	FallbackServerMessage = "Unexpected server error"
	// FallbackNetworkMessage is shown when a transport failure carries no message.
	FallbackNetworkMessage = "Network error"
)

var (
	ErrEmptyContent       = errors.New("content is empty")
	ErrSubmissionInFlight = errors.New("an analysis is already in progress")
)

// ServerError is a failure reported by the analysis endpoint itself.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("analysis endpoint returned %d: %s", e.StatusCode, e.UserMessage())
}

func (e *ServerError) UserMessage() string {
	if e.Message == "" {
		return FallbackServerMessage
	}
	return e.Message
}

// TransportError covers unreachable endpoints, timeouts and malformed replies.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return "transport error"
	}
	return "transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage is the message of the underlying cause, without the
// `Post "url":` prefix net/http adds.
func (e *TransportError) UserMessage() string {
	cause := e.Err
	var urlErr *url.Error
	if errors.As(cause, &urlErr) {
		cause = urlErr.Err
	}
	if cause == nil || cause.Error() == "" {
		return FallbackNetworkMessage
	}
	return cause.Error()
}

// ErrorMessage converts any submission error into the text shown to the user.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.UserMessage()
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.UserMessage()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackNetworkMessage
}
