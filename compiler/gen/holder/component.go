package holder

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/code"
	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/load"
)

// Holder variants.
const (
	VariantFragment = "fragment"
	VariantBean     = "bean"
)

// ComponentHolder is the part shared by every variant: the generated
// class embedding the user type, its constructor and the startup routine.
type ComponentHolder struct {
	ctx        *gen.Context
	variant    string
	file       *code.File
	class      *code.Class
	ctor       *code.Method
	init       *code.Method
	injection  *code.Block
	body       *code.Block
	after      *code.Block
	contextRef func() jen.Code
	overrides  map[string]*code.Block
	building   map[string]bool
}

func newComponentHolder(ctx *gen.Context, variant string) ComponentHolder {
	file := code.NewFile(ctx.PkgPath(), ctx.PkgName())
	class := file.Class(ctx.GeneratedName(), ctx.Receiver())
	class.Doc(fmt.Sprintf("%s is the generated %s of %s.", class.Name(), variant, ctx.BaseName()))
	class.Embed(ctx.BaseName(), jen.Id(ctx.BaseName()))
	ctx.SetClass(class)

	ctor := class.Constructor(ctx.ConstructorName())
	ctor.Doc(fmt.Sprintf("%s returns a new %s.", ctor.Name(), class.Name()))
	startup := class.Method(ctx.Named("init"))
	h := ComponentHolder{
		ctx:       ctx,
		variant:   variant,
		file:      file,
		class:     class,
		ctor:      ctor,
		init:      startup,
		injection: startup.Body().Block(),
		body:      startup.Body().Block(),
		after:     startup.Body().Block(),
		overrides: make(map[string]*code.Block),
		building:  make(map[string]bool),
	}
	return h
}

// Context returns the generation context of the unit.
func (h *ComponentHolder) Context() *gen.Context { return h.ctx }

// Variant returns the name of the holder variant.
func (h *ComponentHolder) Variant() string { return h.variant }

// File returns the generated file.
func (h *ComponentHolder) File() *code.File { return h.file }

// Class returns the generated class.
func (h *ComponentHolder) Class() *code.Class { return h.class }

// Constructor returns the constructor of the generated class.
func (h *ComponentHolder) Constructor() *code.Method { return h.ctor }

// InitMethod returns the startup routine.
func (h *ComponentHolder) InitMethod() *code.Method { return h.init }

// InitBodyInjectionBlock returns the first block of the startup routine.
func (h *ComponentHolder) InitBodyInjectionBlock() *code.Block { return h.injection }

// InitBody returns the main block of the startup routine.
func (h *ComponentHolder) InitBody() *code.Block { return h.body }

// AfterInjectBlock returns the last block of the startup routine.
func (h *ComponentHolder) AfterInjectBlock() *code.Block { return h.after }

// ContextRef returns an expression of the host context.
func (h *ComponentHolder) ContextRef() jen.Code { return h.contextRef() }

// MethodOverride returns the before-base block of an override of the user
// method name. The override forwards its parameters to the base method and
// returns its results.
func (h *ComponentHolder) MethodOverride(name string, params []*load.Param, results []*load.TypeRef) *code.Block {
	if b, ok := h.overrides[name]; ok {
		return b
	}
	h.build("override "+name, func() {
		m := h.class.Method(name)
		for _, p := range params {
			m.Param(p.Name, h.ctx.TypeOf(p.Type))
		}
		if len(results) > 0 {
			types := make([]jen.Code, len(results))
			for i, r := range results {
				types[i] = h.ctx.TypeOf(r)
			}
			m.Returns(types...)
		}
		before := m.Body().Block()
		if len(results) > 0 {
			m.Body().Return(m.SuperCall())
		} else {
			m.Body().Add(m.SuperCall())
		}
		h.overrides[name] = before
	})
	return h.overrides[name]
}

// self returns a call of a method of the generated class.
func (h *ComponentHolder) self(method string, args ...jen.Code) *jen.Statement {
	return h.class.Self().Dot(method).Call(args...)
}

// build runs the construction routine of a lazy group. Accessing a group
// while it is being built is a construction-order defect.
func (h *ComponentHolder) build(group string, fn func()) {
	if h.building[group] {
		code.Abort(code.NewConstructionError(group, "group accessed while it is being built"))
	}
	h.building[group] = true
	defer delete(h.building, group)
	fn()
}
