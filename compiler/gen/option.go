package gen

import (
	"errors"
	"go/token"
	"strings"

	"github.com/rs/zerolog"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithSuffix sets the suffix of generated names.
// The suffix must keep names valid identifiers, e.g. "_" or "Gen".
func WithSuffix(suffix string) Option {
	return func(c *Config) error {
		if suffix == "" || !token.IsIdentifier("X"+suffix) {
			return NewConfigError("Suffix", suffix, "suffix must be a non-empty identifier tail")
		}
		c.Suffix = suffix
		return nil
	}
}

// WithWorkers sets the number of units generated in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithRuntime sets the import path of the runtime package.
func WithRuntime(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Runtime", nil, "runtime package cannot be empty")
		}
		c.Runtime = pkg
		return nil
	}
}

// WithType overrides a well-known runtime type.
// For example: WithType("Bundle", "example.com/app/compat.Bundle").
func WithType(name, qualified string) Option {
	return func(c *Config) error {
		i := strings.LastIndex(qualified, ".")
		if name == "" || i <= 0 || !token.IsIdentifier(qualified[i+1:]) {
			return NewConfigError("Type", qualified, "want a qualified type name like example.com/pkg.Name")
		}
		if c.Types == nil {
			c.Types = make(map[string]string)
		}
		c.Types[name] = qualified
		return nil
	}
}

// WithFeatures enables specific features.
// Features control optional code generation capabilities.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithoutFeatures disables specific features, including ones enabled by
// default.
func WithoutFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Disabled = append(c.Disabled, features...)
		return nil
	}
}

// WithLogger sets the logger used during generation.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := defaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
