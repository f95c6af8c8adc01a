package fehtpl

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// ErrorKind classifies the failures reported by the builder, the merger and the CLI.
type ErrorKind int

const (
	KindMissingFile ErrorKind = iota + 1
	KindMalformedInput
	KindTargetExists
	KindUsage
	KindCollision
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingFile:
		return "missing file"
	case KindMalformedInput:
		return "malformed input"
	case KindTargetExists:
		return "target exists"
	case KindUsage:
		return "usage"
	case KindCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Error is implemented by every error type in this package.
type Error interface {
	error
	Kind() ErrorKind
}

// MissingFileError reports a required file that does not exist.
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing file %s", e.Path)
}

func (e *MissingFileError) Unwrap() error { return e.Err }

func (e *MissingFileError) Kind() ErrorKind { return KindMissingFile }

// MalformedInputError reports a file that is not valid JSON or not a JSON object where
// one is required.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed input %s", e.Path)
	}
	return fmt.Sprintf("malformed input %s: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

func (e *MalformedInputError) Kind() ErrorKind { return KindMalformedInput }

// TargetExistsError reports a blank template path that is already taken and was not
// cleared for overwriting.
type TargetExistsError struct {
	Path string
}

func (e *TargetExistsError) Error() string {
	return fmt.Sprintf("a blank template already exists at %s, rename or remove it first", e.Path)
}

func (e *TargetExistsError) Kind() ErrorKind { return KindTargetExists }

// UsageError reports an invalid invocation.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func (e *UsageError) Kind() ErrorKind { return KindUsage }

// CollisionError reports an entry key emitted by two sections of a flat template.
type CollisionError struct {
	Key    string
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("entry %q appears in both %s and %s", e.Key, e.First, e.Second)
}

func (e *CollisionError) Kind() ErrorKind { return KindCollision }

// Usagef builds a UsageError.
func Usagef(format string, args ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// traced attaches the caller's stack to err, for debug output. errors.As and errors.Is
// still see the wrapped error.
func traced(err error) error {
	return goerrors.Wrap(err, 1)
}
