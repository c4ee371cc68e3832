package api

import "fmt"

// DecodeError means the response body could not be decoded as the
// {message, data} envelope
type DecodeError struct {
	Status int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Invalid response format. Status: %d", e.Status)
}

// ServerError is a non-2xx response. Message carries the envelope's
// message when the server supplied one.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// TimeoutError means the request exceeded the client-enforced deadline
// and was cancelled
type TimeoutError struct {
	After string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timeout after %s", e.After)
}

// NetworkError wraps transport-level failures: unreachable host, refused
// connection, DNS failure
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
