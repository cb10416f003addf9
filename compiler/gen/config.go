package gen

import (
	"runtime"
	"slices"

	"github.com/rs/zerolog"
)

// Defaults applied by NewConfig.
const (
	DefaultHeader  = "Code generated by veloxui. DO NOT EDIT."
	DefaultSuffix  = "_"
	DefaultRuntime = "github.com/syssam/veloxui"
)

// Config holds the global codegen configuration shared by every unit.
type Config struct {
	// Target is the directory generated files are written to.
	Target string

	// Header is the comment written at the top of each generated file.
	Header string

	// Suffix is appended to generated type and member names so that they do
	// not collide with user-authored ones.
	Suffix string

	// Workers bounds the number of units generated in parallel.
	Workers int

	// Runtime is the import path of the package generated code compiles
	// against.
	Runtime string

	// Types overrides well-known runtime types by name. Values are
	// qualified type names, e.g. "example.com/app/compat.Bundle".
	Types map[string]string

	// Features holds features explicitly enabled.
	Features []Feature

	// Disabled holds features explicitly disabled.
	Disabled []Feature

	// Logger receives per-unit progress and failures.
	Logger zerolog.Logger
}

// FeatureEnabled reports if the given feature name is enabled. Explicitly
// disabled features win over explicitly enabled ones; otherwise the
// feature default applies.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	f, ok := LookupFeature(name)
	if !ok {
		return false, NewConfigError("Feature", name, "unknown feature")
	}
	byName := func(x Feature) bool { return x.Name == name }
	switch {
	case slices.ContainsFunc(c.Disabled, byName):
		return false, nil
	case slices.ContainsFunc(c.Features, byName):
		return true, nil
	}
	return f.Default, nil
}

func defaultConfig() *Config {
	return &Config{
		Target:  ".",
		Header:  DefaultHeader,
		Suffix:  DefaultSuffix,
		Workers: runtime.GOMAXPROCS(0),
		Runtime: DefaultRuntime,
		Logger:  zerolog.Nop(),
	}
}
