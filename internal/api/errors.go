package api

import (
	"errors"
	"fmt"
)

// ErrNoPrayers is returned by callers that treat a structurally valid but
// empty response as a failure. FetchPrayers itself never returns it.
var ErrNoPrayers = errors.New("no prayers returned")

// RequestError is a non-2xx response from the backend.
type RequestError struct {
	Status  int
	Message string // backend "detail", or "Request failed: <status>"
}

func (e *RequestError) Error() string {
	return e.Message
}

// NetworkError is a transport-level failure: the backend could not be
// reached or the connection broke before a response arrived.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
