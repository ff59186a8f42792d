// Package errors carries transport-level error values shared by delivery
// layers.
package errors

// HTTPError is an error with an HTTP status code attached. Delivery layers
// build these in their mapError translations; pkg/response knows how to
// render them.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}
