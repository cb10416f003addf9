package handler

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/gen/holder"
	"github.com/syssam/veloxui/compiler/load"
)

// Lifecycle calls user methods when the component enters a lifecycle
// phase.
type Lifecycle struct{}

// Name implements Handler.
func (Lifecycle) Name() string { return gen.FeatureLifecycle.Name }

// Feature implements Handler.
func (Lifecycle) Feature() gen.Feature { return gen.FeatureLifecycle }

// Applies implements Handler.
func (Lifecycle) Applies(def *load.Definition) bool { return len(def.Lifecycle) > 0 }

// Handle implements Handler.
func (l Lifecycle) Handle(def *load.Definition, unit holder.Unit) error {
	ls, err := capability[holder.LifecycleSupport](l, def, unit, "LifecycleSupport")
	if err != nil {
		return err
	}
	for _, call := range def.Lifecycle {
		ls.LifecycleBlock(call.Phase).Add(self(unit, call.Method).Call())
	}
	return nil
}

// Guards overrides user methods to return early, with zero results, when
// the view is destroyed or the component is detached.
type Guards struct{}

// Name implements Handler.
func (Guards) Name() string { return gen.FeatureGuards.Name }

// Feature implements Handler.
func (Guards) Feature() gen.Feature { return gen.FeatureGuards }

// Applies implements Handler.
func (Guards) Applies(def *load.Definition) bool { return len(def.Guards) > 0 }

// Handle implements Handler.
func (g Guards) Handle(def *load.Definition, unit holder.Unit) error {
	mo, err := capability[holder.MethodOverrideSupport](g, def, unit, "MethodOverrideSupport")
	if err != nil {
		return err
	}
	ctx := unit.Context()
	for _, guard := range def.Guards {
		var cond jen.Code
		switch guard.When {
		case load.WhenViewDestroyed:
			cv, err := capability[holder.ContentViewSupport](g, def, unit, "ContentViewSupport")
			if err != nil {
				return err
			}
			cond = cv.ViewDestroyedField().Ref()
		default:
			cond = jen.Add(unit.ContextRef()).Op("==").Nil()
		}
		results := make([]jen.Code, len(guard.Results))
		for i, r := range guard.Results {
			results[i] = zero(ctx, r)
		}
		mo.MethodOverride(guard.Method, guard.Params, guard.Results).
			If(cond).
			Return(results...)
	}
	return nil
}

// AfterInject calls user methods at the end of the startup routine, once
// every injection ran.
type AfterInject struct{}

// Name implements Handler.
func (AfterInject) Name() string { return gen.FeatureAfterInject.Name }

// Feature implements Handler.
func (AfterInject) Feature() gen.Feature { return gen.FeatureAfterInject }

// Applies implements Handler.
func (AfterInject) Applies(def *load.Definition) bool { return len(def.AfterInject) > 0 }

// Handle implements Handler.
func (a AfterInject) Handle(def *load.Definition, unit holder.Unit) error {
	block := unit.AfterInjectBlock()
	for _, m := range def.AfterInject {
		block.Add(self(unit, m).Call())
	}
	return nil
}
