package holder

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/code"
	"github.com/syssam/veloxui/compiler/gen"
)

// BeanHolder holds the structure of a generated bean: a context field set
// by the constructor and by Rebind, both of which run the startup
// routine. Beans have no views and no lifecycle.
type BeanHolder struct {
	ComponentHolder
	context *code.Field
	rebind  *code.Method
}

// NewBeanHolder creates the holder of a bean definition.
func NewBeanHolder(ctx *gen.Context) *BeanHolder {
	h := &BeanHolder{ComponentHolder: newComponentHolder(ctx, VariantBean)}
	param := h.ctor.Param("ctx", ctx.Type("Context"))
	h.context = h.class.Field(ctx.Named("context"), ctx.Type("Context")).Init(param.Ref())
	h.ctor.Body().Add(h.self(h.init.Name()))
	h.contextRef = func() jen.Code { return h.context.Ref() }

	h.rebind = h.class.Method("Rebind")
	h.rebind.Doc("Rebind injects the bean again with a new context.")
	rebindCtx := h.rebind.Param("ctx", ctx.Type("Context"))
	h.rebind.Body().Assign(h.context.Ref(), rebindCtx.Ref())
	h.rebind.Body().Add(h.self(h.init.Name()))
	return h
}

// ContextField returns the field holding the context of the bean.
func (h *BeanHolder) ContextField() *code.Field { return h.context }

// RebindMethod returns the Rebind method.
func (h *BeanHolder) RebindMethod() *code.Method { return h.rebind }
