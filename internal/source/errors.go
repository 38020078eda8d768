package source

import (
	"errors"
	"fmt"
)

// Input errors.
// Callers match them with errors.Is to pick the console message;
// the concrete value returned by Read is always an *Error.
var (
	// ErrInputNotFound is returned when the requested source does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrInputRead is returned for every other failure while obtaining the
	// text: permissions, I/O errors, directories, or invalid UTF-8.
	ErrInputRead = errors.New("input read failure")

	// ErrInvalidUTF8 is wrapped by a read failure when the source is not
	// valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 text")
)

// Kind classifies an input failure.
type Kind int

const (
	// KindNotFound indicates the source does not exist.
	KindNotFound Kind = iota

	// KindReadFailure indicates the source exists but could not be read as text.
	KindReadFailure
)

// String returns a human-readable description of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindReadFailure:
		return "read failure"
	default:
		return "unknown"
	}
}

// Error describes a failure to obtain text from a source.
type Error struct {
	// Kind is the failure class.
	Kind Kind

	// Name is the path (or "-") that was requested.
	Name string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == KindNotFound {
		return fmt.Sprintf("file '%s' not found", e.Name)
	}
	return fmt.Sprintf("reading %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInputNotFound:
		return e.Kind == KindNotFound
	case ErrInputRead:
		return e.Kind == KindReadFailure
	default:
		return false
	}
}
