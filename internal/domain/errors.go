package domain

import "errors"

var ErrNotLoggedIn = errors.New("not logged in")

// FallbackRequestMessage is surfaced when the remote error envelope is
// missing or cannot be decoded.
const FallbackRequestMessage = "Request failed"

// ValidationError is a local, pre-network rejection of an operation request.
// It is deterministic from the input alone and never reaches the wire.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// RequestError is a remote rejection or transport failure. Message is the
// ledger's error-envelope text, opaque to the client.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func NewRequestError(message string) *RequestError {
	if message == "" {
		message = FallbackRequestMessage
	}
	return &RequestError{Message: message}
}
