package gen

import (
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/rs/zerolog"

	"github.com/syssam/veloxui/compiler/code"
	"github.com/syssam/veloxui/compiler/load"
)

// Receiver names of generated types.
const (
	receiver        = "f"
	builderReceiver = "b"
)

// Context is the per-unit generation state: the definition, the shared
// configuration and a reference to the class under synthesis. It owns
// nothing else.
type Context struct {
	config *Config
	def    *load.Definition
	class  *code.Class
}

// NewContext returns the context of one definition.
func NewContext(cfg *Config, def *load.Definition) *Context {
	if cfg == nil {
		cfg = defaultConfig()
	}
	return &Context{config: cfg, def: def}
}

// Config returns the codegen configuration.
func (c *Context) Config() *Config { return c.config }

// Definition returns the definition being generated.
func (c *Context) Definition() *load.Definition { return c.def }

// SetClass records the class under synthesis.
func (c *Context) SetClass(class *code.Class) { c.class = class }

// Class returns the class under synthesis, or nil before it exists.
func (c *Context) Class() *code.Class { return c.class }

// Suffix returns the suffix of generated names.
func (c *Context) Suffix() string { return c.config.Suffix }

// Named appends the generated suffix to base.
func (c *Context) Named(base string) string { return base + c.config.Suffix }

// BaseName returns the name of the user-authored type.
func (c *Context) BaseName() string { return c.def.Name }

// GeneratedName returns the name of the generated type.
func (c *Context) GeneratedName() string { return c.Named(c.def.Name) }

// ConstructorName returns the name of the generated constructor.
func (c *Context) ConstructorName() string { return "New" + c.GeneratedName() }

// BuilderName returns the name of the companion builder type.
func (c *Context) BuilderName() string { return c.Named(c.def.Name + "Builder") }

// BuilderConstructorName returns the name of the builder factory.
func (c *Context) BuilderConstructorName() string { return "New" + c.BuilderName() }

// Receiver returns the receiver name of the generated type.
func (c *Context) Receiver() string { return receiver }

// BuilderReceiver returns the receiver name of the builder type.
func (c *Context) BuilderReceiver() string { return builderReceiver }

// PkgPath returns the import path of the generated file.
func (c *Context) PkgPath() string { return c.def.Path }

// PkgName returns the package name of the generated file.
func (c *Context) PkgName() string { return c.def.Package }

// FileName returns the name of the generated file.
func (c *Context) FileName() string { return snake(c.def.Name) + "_gen.go" }

// Runtime returns the import path of the runtime package.
func (c *Context) Runtime() string { return c.config.Runtime }

// Qual returns a reference to an identifier of the runtime package.
func (c *Context) Qual(name string) *jen.Statement {
	return jen.Qual(c.config.Runtime, name)
}

// Type returns a well-known type by name, e.g. "Bundle" or "View". It
// resolves to the runtime package unless Config.Types overrides it.
func (c *Context) Type(name string) *jen.Statement {
	if q, ok := c.config.Types[name]; ok {
		i := strings.LastIndex(q, ".")
		return jen.Qual(q[:i], q[i+1:])
	}
	return c.Qual(name)
}

// Ptr returns a pointer to the well-known type name.
func (c *Context) Ptr(name string) *jen.Statement {
	return jen.Op("*").Add(c.Type(name))
}

// TypeOf converts a definition type to jennifer code.
func (c *Context) TypeOf(t *load.TypeRef) jen.Code {
	switch t.Form {
	case load.FormPointer:
		return jen.Op("*").Add(c.TypeOf(t.Elem))
	case load.FormSlice:
		return jen.Index().Add(c.TypeOf(t.Elem))
	case load.FormMap:
		return jen.Map(c.TypeOf(t.Key)).Add(c.TypeOf(t.Elem))
	}
	if t.PkgPath == "" {
		return jen.Id(t.Name)
	}
	return jen.Qual(t.PkgPath, t.Name)
}

// ForceLayoutInjection reports whether the content view ignores the view
// created by the base type.
func (c *Context) ForceLayoutInjection() bool { return c.def.Options.ForceLayoutInjection }

// CompatPreferences reports whether preferences use the compat variant.
func (c *Context) CompatPreferences() bool {
	return c.def.Options.Preferences == load.PreferencesCompat
}

// BundleKey returns key, or the default bundle key of field when key is
// empty.
func (c *Context) BundleKey(field, key string) string {
	if key != "" {
		return key
	}
	return bundleKey(field)
}

// SetterName returns the name of the builder setter of field.
func (c *Context) SetterName(field string) string { return pascal(field) }

// FeatureEnabled reports whether f is enabled. Unknown features are
// disabled.
func (c *Context) FeatureEnabled(f Feature) bool {
	enabled, err := c.config.FeatureEnabled(f.Name)
	return err == nil && enabled
}

// Logger returns the configured logger annotated with the definition.
func (c *Context) Logger() zerolog.Logger {
	return c.config.Logger.With().Str("definition", c.def.Name).Logger()
}
