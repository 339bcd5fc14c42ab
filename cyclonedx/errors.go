package cyclonedx

import (
	"errors"
	"fmt"
)

// ErrUnsupportedSpecVersion is returned when a caller requests a schema
// revision this library does not implement.
var ErrUnsupportedSpecVersion = errors.New("unsupported spec version")

func unsupportedSpecVersion(version fmt.Stringer) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedSpecVersion, version.String())
}

// JSONReadError wraps a failure to decode a JSON document.
type JSONReadError struct {
	Err error
}

func (e *JSONReadError) Error() string {
	return fmt.Sprintf("failed to read JSON document: %v", e.Err)
}

func (e *JSONReadError) Unwrap() error {
	return e.Err
}

// JSONWriteError wraps a failure to encode or emit a JSON document.
type JSONWriteError struct {
	Err error
}

func (e *JSONWriteError) Error() string {
	return fmt.Sprintf("failed to write JSON document: %v", e.Err)
}

func (e *JSONWriteError) Unwrap() error {
	return e.Err
}
