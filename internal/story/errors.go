package story

import (
	"errors"
	"fmt"

	"github.com/arcanaland/adventurer/internal/card"
)

var (
	ErrNotFound        = errors.New("game file not found")
	ErrMalformed       = errors.New("malformed game file")
	ErrCardNotFound    = card.ErrCardNotFound
	ErrIndexOutOfRange = errors.New("card index out of range")
)

// ErrorKind discriminates load failures
type ErrorKind int

const (
	NotFound ErrorKind = iota
	Malformed
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Malformed:
		return "malformed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// LoadError is returned by Load, LoadDir, LoadFile and Parse. It matches
// ErrNotFound or ErrMalformed with errors.Is.
type LoadError struct {
	Kind   ErrorKind
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == NotFound
	case ErrMalformed:
		return e.Kind == Malformed
	}
	return false
}

func malformed(source string, format string, args ...any) *LoadError {
	return &LoadError{Kind: Malformed, Source: source, Err: fmt.Errorf(format, args...)}
}
