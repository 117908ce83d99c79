package errors

import "errors"

// Client registry errors
var (
	// ErrClientNotFound is returned when a client is not currently registered
	ErrClientNotFound = errors.New("client not found")

	// ErrDuplicateClient is returned when a client ID is already registered
	ErrDuplicateClient = errors.New("client id already registered")

	// ErrClientClosed is returned when sending to a closed client
	ErrClientClosed = errors.New("client is closed")

	// ErrSendBufferFull is returned when a client's send buffer is full
	ErrSendBufferFull = errors.New("send buffer full")
)

// Message and protocol errors
var (
	// ErrInvalidMessage is returned when a message cannot be parsed
	ErrInvalidMessage = errors.New("invalid message")

	// ErrUnknownMessageType is returned for an unrecognized message type
	ErrUnknownMessageType = errors.New("unknown message type")

	// ErrMissingField is returned when a required message field is absent
	ErrMissingField = errors.New("missing required field")
)

// Configuration errors
var (
	// ErrInvalidConfig is returned when configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")
)
