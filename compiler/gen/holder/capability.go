package holder

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/code"
	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/load"
)

// Unit is the structure every holder variant provides.
type Unit interface {
	// Context returns the generation context of the unit.
	Context() *gen.Context
	// Variant names the holder variant, e.g. "fragment".
	Variant() string
	// File returns the file the unit renders to.
	File() *code.File
	// Class returns the generated class.
	Class() *code.Class
	// InitMethod returns the startup routine.
	InitMethod() *code.Method
	// InitBody returns the main block of the startup routine.
	InitBody() *code.Block
	// InitBodyInjectionBlock returns the block that runs first in the
	// startup routine.
	InitBodyInjectionBlock() *code.Block
	// AfterInjectBlock returns the block that runs last in the startup
	// routine.
	AfterInjectBlock() *code.Block
	// ContextRef returns an expression of the host context.
	ContextRef() jen.Code
}

// ViewSupport is implemented by units notified once their views exist.
type ViewSupport interface {
	Unit
	OnViewChangedBody() *code.Block
	OnViewChangedHasViewsParam() *code.Param
	FindViewByIDExpression(id jen.Code) jen.Code
}

// ContentViewSupport is implemented by units that own a content view.
type ContentViewSupport interface {
	ViewSupport
	ContentViewField() *code.Field
	InflaterParam() *code.Param
	ContainerParam() *code.Param
	SetContentViewBlock() *code.Block
	DestroyViewAfterBase() *code.Block
	ViewDestroyedField() *code.Field
	ClearInjectedView(target jen.Code)
}

// LifecycleSupport is implemented by units with lifecycle overrides.
type LifecycleSupport interface {
	Unit
	// LifecycleBlock returns the block of phase, after the base call for
	// create, start, resume and attach and before it otherwise.
	LifecycleBlock(phase string) *code.Block
	StartLifecycleAfterBase() *code.Block
	EndLifecycleBeforeBase() *code.Block
}

// InstanceStateSupport is implemented by units that save and restore
// instance state.
type InstanceStateSupport interface {
	Unit
	SaveStateBody() *code.Block
	SaveStateBundleParam() *code.Param
	RestoreStateMethod() *code.Method
	RestoreStateBody() *code.Block
	RestoreStateBundleParam() *code.Param
}

// OptionsMenuSupport is implemented by units with an options menu.
type OptionsMenuSupport interface {
	Unit
	OptionsMenuInflateBody() *code.Block
	OptionsMenuBody() *code.Block
	OptionsMenuParam() *code.Param
	OptionsMenuInflaterParam() *code.Param
	ItemSelectedParam() *code.Param
	ItemSelectedID() *code.Var
	ItemSelectedMiddleBlock() *code.Block
}

// ActivityResultSupport is implemented by units receiving activity
// results.
type ActivityResultSupport interface {
	Unit
	ActivityResultMethod() *code.Method
	ActivityResultCaseBlock(requestCode int) *code.Block
	ActivityResultCodeParam() *code.Param
	ActivityResultDataParam() *code.Param
}

// ReceiverRegistrationSupport is implemented by units registering
// broadcast receivers.
type ReceiverRegistrationSupport interface {
	LifecycleSupport
	IntentFilterField(data IntentFilterData) *code.Field
	ReceiverField(method string, data IntentFilterData, init jen.Code) *code.Field
	RegistrationBlocks(at load.RegisterAt) (register, unregister *code.Block)
}

// FragmentArgSupport is implemented by units built from arguments.
type FragmentArgSupport interface {
	Unit
	InjectArgsMethod() *code.Method
	InjectArgsBlock() *code.Block
	InjectBundleArgs() *code.Var
	BuilderClass() *code.Class
	BuilderArgsField() jen.Code
	BuilderSetter(field string, typ jen.Code) *code.Block
}

// PreferenceSupport is implemented by units hosting a preference screen.
type PreferenceSupport interface {
	Unit
	PreferenceScreenInitializationBlock() *code.Block
	AddPreferencesInjectionBlock() *code.Block
	AddPreferencesAfterInjectionBlock() *code.Block
	FoundPreference(key string) *FoundPreference
	BasePreferenceType() jen.Code
	UsingCompatPreference() bool
}

// MethodOverrideSupport is implemented by units that can override user
// methods.
type MethodOverrideSupport interface {
	Unit
	// MethodOverride returns the block that runs before the base call of
	// the named method.
	MethodOverride(name string, params []*load.Param, results []*load.TypeRef) *code.Block
}

var (
	_ Unit                        = (*BeanHolder)(nil)
	_ MethodOverrideSupport       = (*BeanHolder)(nil)
	_ ViewSupport                 = (*FragmentHolder)(nil)
	_ ContentViewSupport          = (*FragmentHolder)(nil)
	_ LifecycleSupport            = (*FragmentHolder)(nil)
	_ InstanceStateSupport        = (*FragmentHolder)(nil)
	_ OptionsMenuSupport          = (*FragmentHolder)(nil)
	_ ActivityResultSupport       = (*FragmentHolder)(nil)
	_ ReceiverRegistrationSupport = (*FragmentHolder)(nil)
	_ FragmentArgSupport          = (*FragmentHolder)(nil)
	_ PreferenceSupport           = (*FragmentHolder)(nil)
	_ MethodOverrideSupport       = (*FragmentHolder)(nil)
)
