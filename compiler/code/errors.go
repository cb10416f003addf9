package code

import (
	"errors"
	"strings"
)

// Sentinel errors for construction failures.
var (
	// ErrConstruction indicates an element was built out of order or from
	// an invalid state.
	ErrConstruction = errors.New("veloxui: construction failed")
	// ErrDuplicateName indicates two distinct elements resolve to the same
	// name in the same scope.
	ErrDuplicateName = errors.New("veloxui: duplicate name")
)

// ConstructionError represents a construction-order defect.
type ConstructionError struct {
	Element string // element being built, e.g. "OnCreateView"
	Message string
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	var b strings.Builder
	b.WriteString("veloxui: construction error")
	if e.Element != "" {
		b.WriteString(" on ")
		b.WriteString(e.Element)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ConstructionError.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}

// NewConstructionError creates a new ConstructionError.
func NewConstructionError(element, message string) *ConstructionError {
	return &ConstructionError{Element: element, Message: message}
}

// DuplicateNameError represents a name declared twice in one scope.
type DuplicateNameError struct {
	Kind  string // "field", "method", "parameter", "variable", "type"
	Name  string
	Scope string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	var b strings.Builder
	b.WriteString("veloxui: duplicate ")
	if e.Kind != "" {
		b.WriteString(e.Kind)
		b.WriteString(" ")
	}
	b.WriteString("name ")
	b.WriteString(`"` + e.Name + `"`)
	if e.Scope != "" {
		b.WriteString(" in ")
		b.WriteString(e.Scope)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for DuplicateNameError.
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// NewDuplicateNameError creates a new DuplicateNameError.
func NewDuplicateNameError(kind, name, scope string) *DuplicateNameError {
	return &DuplicateNameError{Kind: kind, Name: name, Scope: scope}
}

// IsConstructionError reports whether the error is a ConstructionError.
func IsConstructionError(err error) bool {
	var e *ConstructionError
	return errors.As(err, &e)
}

// IsDuplicateName reports whether the error is a DuplicateNameError.
func IsDuplicateName(err error) bool {
	var e *DuplicateNameError
	return errors.As(err, &e)
}

// aborted carries an error raised by Abort through a panic.
type aborted struct {
	err error
}

// Abort stops the construction of the current unit with err. It must be
// recovered by a deferred Catch.
func Abort(err error) {
	panic(aborted{err: err})
}

// Catch recovers a construction failure raised by Abort and stores it in
// errp. Other panics are propagated. It must be deferred directly.
func Catch(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	a, ok := r.(aborted)
	if !ok {
		panic(r)
	}
	*errp = a.err
}
