package veloxui

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for bundle lookups.
var (
	// ErrMissingKey is returned when a bundle does not hold the requested key.
	ErrMissingKey = errors.New("veloxui: key not found in bundle")

	// ErrTypeMismatch is returned when a bundle value does not have the
	// requested type.
	ErrTypeMismatch = errors.New("veloxui: bundle value has unexpected type")
)

// MissingKeyError represents a lookup of a key that a bundle does not hold.
type MissingKeyError struct {
	key string
}

// Error returns the error string.
func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("veloxui: key %q not found in bundle", e.key)
}

// Is reports whether the target error matches MissingKeyError.
// This allows errors.Is(missingErr, ErrMissingKey) to return true.
func (e *MissingKeyError) Is(err error) bool {
	return err == ErrMissingKey
}

// Key returns the key that was looked up.
func (e *MissingKeyError) Key() string {
	return e.key
}

// NewMissingKeyError returns a new MissingKeyError for the given key.
func NewMissingKeyError(key string) *MissingKeyError {
	return &MissingKeyError{key: key}
}

// IsMissingKey returns true if the error is a MissingKeyError.
func IsMissingKey(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingKeyError
	return errors.As(err, &e) || errors.Is(err, ErrMissingKey)
}

// TypeMismatchError represents a bundle value whose dynamic type differs
// from the requested one.
type TypeMismatchError struct {
	key  string
	want string
	got  string
}

// Error returns the error string.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("veloxui: bundle value %q is %s, not %s", e.key, e.got, e.want)
}

// Is reports whether the target error matches TypeMismatchError.
func (e *TypeMismatchError) Is(err error) bool {
	return err == ErrTypeMismatch
}

// Key returns the key that was looked up.
func (e *TypeMismatchError) Key() string {
	return e.key
}

// NewTypeMismatchError returns a new TypeMismatchError.
func NewTypeMismatchError(key string, want, got any) *TypeMismatchError {
	return &TypeMismatchError{
		key:  key,
		want: fmt.Sprintf("%T", want),
		got:  fmt.Sprintf("%T", got),
	}
}

// IsTypeMismatch returns true if the error is a TypeMismatchError.
func IsTypeMismatch(err error) bool {
	if err == nil {
		return false
	}
	var e *TypeMismatchError
	return errors.As(err, &e) || errors.Is(err, ErrTypeMismatch)
}
