package domain

import "fmt"

// InitErrorKind classifies instantiation failures. All are local and
// non-retryable; every kind except the precondition errors implies the
// target tree was rolled back.
type InitErrorKind string

const (
	ErrInvalidName            InitErrorKind = "invalid_name"
	ErrUnknownBoilerplateType InitErrorKind = "unknown_boilerplate_type"
	ErrAlreadyExists          InitErrorKind = "already_exists"
	ErrCopyFailed             InitErrorKind = "copy_failed"
	ErrSubstitutionFailed     InitErrorKind = "substitution_failed"
)

// InitError carries the failure kind and the triggering path.
type InitError struct {
	Kind InitErrorKind
	Path string
	Err  error
}

func (e *InitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *InitError) Unwrap() error { return e.Err }

// NewInitError builds an InitError; err may be nil for precondition
// failures.
func NewInitError(kind InitErrorKind, path string, err error) *InitError {
	return &InitError{Kind: kind, Path: path, Err: err}
}
