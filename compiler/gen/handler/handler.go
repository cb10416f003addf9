// Package handler contains the feature contributors of the generator.
//
// A handler reads one section of a definition and appends statements to
// the locations of the unit it needs. Handlers are stateless; they never
// create class structure themselves.
package handler

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/gen/holder"
	"github.com/syssam/veloxui/compiler/load"
)

// Handler contributes one feature to a unit.
type Handler interface {
	// Name returns the name of the feature the handler implements.
	Name() string
	// Feature returns the feature flag of the handler.
	Feature() gen.Feature
	// Applies reports whether the definition uses the feature.
	Applies(def *load.Definition) bool
	// Handle contributes the feature to the unit of def.
	Handle(def *load.Definition, unit holder.Unit) error
}

// All returns every handler, in the order the assembler runs them.
func All() []Handler {
	return []Handler{
		Layout{},
		Views{},
		InstanceState{},
		FragmentArgs{},
		OptionsMenu{},
		ActivityResult{},
		Receivers{},
		Preferences{},
		Lifecycle{},
		Guards{},
		AfterInject{},
	}
}

// Lookup returns the handler of the named feature.
func Lookup(name string) (Handler, bool) {
	for _, h := range All() {
		if h.Name() == name {
			return h, true
		}
	}
	return nil, false
}

// capability returns unit as the capability T, or an UnsupportedFeatureError
// naming the missing capability.
func capability[T any](h Handler, def *load.Definition, unit holder.Unit, name string) (T, error) {
	c, ok := unit.(T)
	if !ok {
		var zero T
		return zero, gen.NewUnsupportedFeatureError(h.Name(), def.Name, unit.Variant(), name)
	}
	return c, nil
}

// self returns a selector on the receiver of the unit.
func self(unit holder.Unit, name string) *jen.Statement {
	return unit.Class().Self().Dot(name)
}

// bundleValue returns the typed lookup of key in bundle:
//
//	if v, ok := veloxui.BundleValue[T](bundle, key); ok { f.Field = v }
func bundleValue(ctx *gen.Context, unit holder.Unit, bundle jen.Code, key string, typ *load.TypeRef, field string) *jen.Statement {
	return jen.If(
		jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").
			Add(ctx.Qual("BundleValue")).Types(ctx.TypeOf(typ)).Call(bundle, jen.Lit(key)),
		jen.Id("ok"),
	).Block(
		self(unit, field).Op("=").Id("v"),
	)
}

// zero returns the zero value of t.
func zero(ctx *gen.Context, t *load.TypeRef) jen.Code {
	if t.Nillable() {
		return jen.Nil()
	}
	if t.PkgPath == "" {
		switch t.Name {
		case "bool":
			return jen.False()
		case "string":
			return jen.Lit("")
		case "int", "int8", "int16", "int32", "int64",
			"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
			"float32", "float64", "byte", "rune":
			return jen.Lit(0)
		}
	}
	return jen.Op("*").New(ctx.TypeOf(t))
}
