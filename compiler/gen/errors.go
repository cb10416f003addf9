package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidDefinition indicates a component definition error.
	ErrInvalidDefinition = errors.New("veloxui: invalid definition")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("veloxui: missing configuration")
	// ErrUnsupportedFeature indicates a feature requested a capability the
	// component variant does not provide.
	ErrUnsupportedFeature = errors.New("veloxui: unsupported feature")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("veloxui: code generation failed")
)

// DefinitionError represents a component definition error.
type DefinitionError struct {
	Definition string // Definition name
	Section    string // Section of the definition (if applicable), e.g. "args[0]"
	Message    string
	Cause      error
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	var b strings.Builder
	b.WriteString("veloxui: definition error")
	if e.Definition != "" {
		b.WriteString(" on ")
		b.WriteString(e.Definition)
	}
	if e.Section != "" {
		b.WriteString(" in ")
		b.WriteString(e.Section)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *DefinitionError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for DefinitionError.
func (e *DefinitionError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// NewDefinitionError creates a new DefinitionError.
func NewDefinitionError(definition, section, message string, cause error) *DefinitionError {
	return &DefinitionError{
		Definition: definition,
		Section:    section,
		Message:    message,
		Cause:      cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("veloxui: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("veloxui: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// UnsupportedFeatureError represents a feature applied to a component
// variant that lacks the capability the feature needs.
type UnsupportedFeatureError struct {
	Feature    string
	Definition string
	Variant    string // "fragment", "bean"
	Capability string
}

// Error implements the error interface.
func (e *UnsupportedFeatureError) Error() string {
	var b strings.Builder
	b.WriteString("veloxui: feature ")
	b.WriteString(e.Feature)
	b.WriteString(" is not supported")
	if e.Variant != "" {
		b.WriteString(" by ")
		b.WriteString(e.Variant)
	}
	if e.Definition != "" {
		b.WriteString(" ")
		b.WriteString(e.Definition)
	}
	if e.Capability != "" {
		b.WriteString(" (missing ")
		b.WriteString(e.Capability)
		b.WriteString(")")
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for UnsupportedFeatureError.
func (e *UnsupportedFeatureError) Is(target error) bool {
	return target == ErrUnsupportedFeature
}

// NewUnsupportedFeatureError creates a new UnsupportedFeatureError.
func NewUnsupportedFeatureError(feature, definition, variant, capability string) *UnsupportedFeatureError {
	return &UnsupportedFeatureError{
		Feature:    feature,
		Definition: definition,
		Variant:    variant,
		Capability: capability,
	}
}

// GenerationError represents a code generation error of one definition.
type GenerationError struct {
	Definition string
	Phase      string // "validate", "assemble", "write"
	File       string
	Message    string
	Cause      error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("veloxui: generation error")
	if e.Definition != "" {
		b.WriteString(" for ")
		b.WriteString(e.Definition)
	}
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(definition, phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Definition: definition,
		Phase:      phase,
		File:       file,
		Message:    message,
		Cause:      cause,
	}
}

// IsDefinitionError reports whether the error is a DefinitionError.
func IsDefinitionError(err error) bool {
	var defErr *DefinitionError
	return errors.As(err, &defErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsUnsupportedFeature reports whether the error is an UnsupportedFeatureError.
func IsUnsupportedFeature(err error) bool {
	var featErr *UnsupportedFeatureError
	return errors.As(err, &featErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
