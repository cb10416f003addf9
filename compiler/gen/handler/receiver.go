package handler

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/gen/holder"
	"github.com/syssam/veloxui/compiler/load"
)

// Receivers registers a broadcast receiver per receiver method for the
// lifetime of its lifecycle pair. The method is called with the intent.
type Receivers struct{}

// Name implements Handler.
func (Receivers) Name() string { return gen.FeatureReceivers.Name }

// Feature implements Handler.
func (Receivers) Feature() gen.Feature { return gen.FeatureReceivers }

// Applies implements Handler.
func (Receivers) Applies(def *load.Definition) bool { return len(def.Receivers) > 0 }

// Handle implements Handler.
func (r Receivers) Handle(def *load.Definition, unit holder.Unit) error {
	rr, err := capability[holder.ReceiverRegistrationSupport](r, def, unit, "ReceiverRegistrationSupport")
	if err != nil {
		return err
	}
	ctx := unit.Context()
	for _, recv := range def.Receivers {
		data := holder.NewIntentFilterData(recv)
		filter := rr.IntentFilterField(data)
		callback := jen.Func().Params(
			jen.Id("_").Add(ctx.Type("Context")),
			jen.Id("intent").Add(ctx.Ptr("Intent")),
		).Block(
			self(unit, recv.Method).Call(jen.Id("intent")),
		)
		field := rr.ReceiverField(recv.Method, data, ctx.Qual("NewReceiver").Call(callback))

		register, unregister := rr.RegistrationBlocks(recv.RegisterAt)
		register.Add(jen.Add(unit.ContextRef()).Dot("RegisterReceiver").Call(field.Ref(), filter.Ref()))
		unregister.Add(jen.Add(unit.ContextRef()).Dot("UnregisterReceiver").Call(field.Ref()))
	}
	return nil
}
