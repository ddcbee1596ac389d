package wire

import "fmt"

// ServerError is a failure the automation server reported in a
// well-formed response body, e.g. "no such element" or
// "move target out of bounds". It is propagated to callers unmodified;
// this layer never retries.
type ServerError struct {
	Code    string
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
