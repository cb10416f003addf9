package handler

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/gen/holder"
	"github.com/syssam/veloxui/compiler/load"
)

// Layout inflates the layout resource into the content view when the base
// type did not create one.
type Layout struct{}

// Name implements Handler.
func (Layout) Name() string { return gen.FeatureLayout.Name }

// Feature implements Handler.
func (Layout) Feature() gen.Feature { return gen.FeatureLayout }

// Applies implements Handler.
func (Layout) Applies(def *load.Definition) bool { return def.Layout != "" }

// Handle implements Handler.
//
//	if f.contentView_ == nil {
//		f.contentView_ = inflater.Inflate("home", container, false)
//	}
func (l Layout) Handle(def *load.Definition, unit holder.Unit) error {
	cv, err := capability[holder.ContentViewSupport](l, def, unit, "ContentViewSupport")
	if err != nil {
		return err
	}
	view := cv.ContentViewField()
	inflate := cv.InflaterParam().Ref().Dot("Inflate").Call(
		jen.Lit(def.Layout),
		cv.ContainerParam().Ref(),
		jen.False(),
	)
	cv.SetContentViewBlock().
		If(view.Ref().Op("==").Nil()).
		Assign(view.Ref(), inflate)
	return nil
}

// Views resolves view references each time the content view changes and
// clears them when it is destroyed.
type Views struct{}

// Name implements Handler.
func (Views) Name() string { return gen.FeatureViews.Name }

// Feature implements Handler.
func (Views) Feature() gen.Feature { return gen.FeatureViews }

// Applies implements Handler.
func (Views) Applies(def *load.Definition) bool { return len(def.Views) > 0 }

// Handle implements Handler.
func (v Views) Handle(def *load.Definition, unit holder.Unit) error {
	cv, err := capability[holder.ContentViewSupport](v, def, unit, "ContentViewSupport")
	if err != nil {
		return err
	}
	ctx := unit.Context()
	body := cv.OnViewChangedBody()
	hasViews := cv.OnViewChangedHasViewsParam()
	for _, view := range def.Views {
		lookup := hasViews.Ref().Dot("InternalFindViewByID").Call(jen.Lit(view.ID))
		if view.Type == nil {
			body.Assign(self(unit, view.Field), lookup)
		} else {
			body.If(
				jen.List(jen.Id("view"), jen.Id("ok")).Op(":=").Add(lookup).Assert(ctx.TypeOf(view.Type)),
				jen.Id("ok"),
			).Assign(self(unit, view.Field), jen.Id("view"))
		}
		if view.Type == nil || view.Type.Nillable() {
			cv.ClearInjectedView(self(unit, view.Field))
		}
	}
	return nil
}
