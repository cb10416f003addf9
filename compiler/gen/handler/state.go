package handler

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/gen/holder"
	"github.com/syssam/veloxui/compiler/load"
)

// InstanceState saves fields in OnSaveInstanceState and restores them
// from the saved state on creation.
type InstanceState struct{}

// Name implements Handler.
func (InstanceState) Name() string { return gen.FeatureInstanceState.Name }

// Feature implements Handler.
func (InstanceState) Feature() gen.Feature { return gen.FeatureInstanceState }

// Applies implements Handler.
func (InstanceState) Applies(def *load.Definition) bool { return len(def.State) > 0 }

// Handle implements Handler.
func (s InstanceState) Handle(def *load.Definition, unit holder.Unit) error {
	st, err := capability[holder.InstanceStateSupport](s, def, unit, "InstanceStateSupport")
	if err != nil {
		return err
	}
	ctx := unit.Context()
	save, bundle := st.SaveStateBody(), st.SaveStateBundleParam()
	restore, saved := st.RestoreStateBody(), st.RestoreStateBundleParam()
	for _, field := range def.State {
		key := ctx.BundleKey(field.Field, field.Key)
		save.Add(bundle.Ref().Dot("Put").Call(jen.Lit(key), self(unit, field.Field)))
		restore.Add(bundleValue(ctx, unit, saved.Ref(), key, field.Type, field.Field))
	}
	return nil
}

// FragmentArgs injects fields from the fragment arguments and adds a
// setter per argument to the companion builder.
type FragmentArgs struct{}

// Name implements Handler.
func (FragmentArgs) Name() string { return gen.FeatureFragmentArgs.Name }

// Feature implements Handler.
func (FragmentArgs) Feature() gen.Feature { return gen.FeatureFragmentArgs }

// Applies implements Handler.
func (FragmentArgs) Applies(def *load.Definition) bool { return len(def.Args) > 0 }

// Handle implements Handler.
func (a FragmentArgs) Handle(def *load.Definition, unit holder.Unit) error {
	fa, err := capability[holder.FragmentArgSupport](a, def, unit, "FragmentArgSupport")
	if err != nil {
		return err
	}
	ctx := unit.Context()
	inject := fa.InjectArgsBlock()
	args := fa.InjectBundleArgs()
	builder := fa.BuilderClass()
	for _, arg := range def.Args {
		key := ctx.BundleKey(arg.Field, arg.Key)
		inject.Add(bundleValue(ctx, unit, args.Ref(), key, arg.Type, arg.Field))

		setter := fa.BuilderSetter(arg.Field, ctx.TypeOf(arg.Type))
		value := setter.Method().Params()[0]
		setter.Add(builder.Self().Dot("Arg").Call(jen.Lit(key), value.Ref()))
	}
	return nil
}
