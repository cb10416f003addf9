package holder

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/code"
	"github.com/syssam/veloxui/compiler/gen"
)

// ViewSupportHolder adds the view-change notifier to ComponentHolder.
// Units that register view listeners implement the runtime
// OnViewChangedListener through OnViewChanged.
type ViewSupportHolder struct {
	ComponentHolder
	notifier     *code.Field
	viewChanged  *code.Block
	hasViews     *code.Param
	findViewExpr func(id jen.Code) jen.Code
}

func newViewSupportHolder(ctx *gen.Context, variant string) ViewSupportHolder {
	h := ViewSupportHolder{ComponentHolder: newComponentHolder(ctx, variant)}
	h.notifier = h.class.Field(ctx.Named("viewNotifier"), ctx.Ptr("ViewNotifier")).
		Init(ctx.Qual("NewViewNotifier").Call())
	return h
}

// NotifierField returns the field holding the notifier of the unit.
func (h *ViewSupportHolder) NotifierField() *code.Field { return h.notifier }

// OnViewChangedBody returns the body of OnViewChanged.
func (h *ViewSupportHolder) OnViewChangedBody() *code.Block {
	if h.viewChanged == nil {
		h.setOnViewChanged()
	}
	return h.viewChanged
}

// OnViewChangedHasViewsParam returns the parameter of OnViewChanged.
func (h *ViewSupportHolder) OnViewChangedHasViewsParam() *code.Param {
	if h.hasViews == nil {
		h.setOnViewChanged()
	}
	return h.hasViews
}

// FindViewByIDExpression returns an expression resolving the view id.
func (h *ViewSupportHolder) FindViewByIDExpression(id jen.Code) jen.Code {
	return h.findViewExpr(id)
}

func (h *ViewSupportHolder) setOnViewChanged() {
	h.build("view changed", func() {
		ctx := h.ctx
		m := h.class.Method("OnViewChanged")
		hasViews := m.Param("hasViews", ctx.Type("HasViews"))
		h.InitBody().Add(ctx.Qual("RegisterOnViewChangedListener").Call(h.class.Self()))

		find := h.class.Method("InternalFindViewByID")
		id := find.Param("id", jen.String())
		find.Returns(ctx.Type("View"))
		find.Body().Return(h.FindViewByIDExpression(id.Ref()))

		h.hasViews = hasViews
		h.viewChanged = m.Body()
	})
}

// replacePreviousNotifier makes the notifier of the unit current and
// keeps the previous one in a local variable.
func (h *ViewSupportHolder) replacePreviousNotifier(b *code.Block) *code.Var {
	return b.Decl(h.ctx.Named("previousNotifier"), h.ctx.Qual("ReplaceNotifier").Call(h.notifier.Ref()))
}

func (h *ViewSupportHolder) resetPreviousNotifier(b *code.Block, previous *code.Var) {
	b.Add(h.ctx.Qual("ReplaceNotifier").Call(previous.Ref()))
}

func (h *ViewSupportHolder) invokeViewChanged(b *code.Block) {
	b.Add(h.notifier.Ref().Dot("NotifyViewChanged").Call(h.class.Self()))
}
