package canvas

import "fmt"

// HTTPError is returned when Canvas answers with a status outside 200-299.
// It carries the status code and the raw response body so callers can surface
// the upstream message.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("canvas: HTTP %d: %s", e.StatusCode, e.Body)
}

// UnavailableError is returned when the request never produced a response:
// connection failure, DNS failure, or the client timeout expiring.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("canvas: upstream unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// DecodeError is returned when a 2xx response body is not valid JSON for the
// requested shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("canvas: decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
