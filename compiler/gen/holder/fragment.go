package holder

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/code"
	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/load"
)

// FragmentHolder holds the structure of a generated fragment.
//
// OnCreate, OnViewCreated, the startup routine and the companion builder
// exist from construction. Everything else is built on first access.
type FragmentHolder struct {
	ViewSupportHolder

	savedState *code.Param

	builder     *code.Class
	builderCtor *code.Method
	setters     map[string]*code.Block

	// content view
	contentView    *code.Field
	inflater       *code.Param
	container      *code.Param
	setContentView *code.Block
	destroyView    *code.Block
	viewDestroyed  *code.Field

	phases map[string]*phase

	// options menu
	menu         *code.Param
	menuInflater *code.Param
	menuInflate  *code.Block
	menuBody     *code.Block
	item         *code.Param
	itemID       *code.Var
	itemMiddle   *code.Block

	// argument injection
	injectArgs      *code.Method
	injectArgsVar   *code.Var
	injectArgsBlock *code.Block

	state       *instanceState
	results     *activityResult
	receivers   *receiverRegistration
	preferences *preferences
}

// phase is a lifecycle override with its extension block.
type phase struct {
	method *code.Method
	block  *code.Block
}

// lifecycleMethods maps a phase to its override. Start phases get their
// block after the base call, end phases before it.
var lifecycleMethods = map[string]struct {
	method string
	after  bool
}{
	load.PhaseAttach:  {"OnAttach", true},
	load.PhaseCreate:  {"OnCreate", true},
	load.PhaseStart:   {"OnStart", true},
	load.PhaseResume:  {"OnResume", true},
	load.PhasePause:   {"OnPause", false},
	load.PhaseStop:    {"OnStop", false},
	load.PhaseDestroy: {"OnDestroy", false},
	load.PhaseDetach:  {"OnDetach", false},
}

// NewFragmentHolder creates the holder of a fragment definition.
func NewFragmentHolder(ctx *gen.Context) *FragmentHolder {
	h := &FragmentHolder{
		ViewSupportHolder: newViewSupportHolder(ctx, VariantFragment),
		setters:           make(map[string]*code.Block),
		phases:            make(map[string]*phase),
	}
	h.findViewExpr = h.findViewByIDExpression
	h.contextRef = func() jen.Code { return h.self("Activity") }
	h.savedState = h.init.Param("savedInstanceState", ctx.Ptr("Bundle"))
	h.state = &instanceState{h: &h.ComponentHolder}
	h.results = &activityResult{h: &h.ComponentHolder}
	h.receivers = &receiverRegistration{h: &h.ComponentHolder, lifecycle: h}
	h.preferences = &preferences{h: &h.ComponentHolder}
	h.setOnCreate()
	h.setOnViewCreated()
	h.setBuilder()
	return h
}

func (h *FragmentHolder) setOnCreate() {
	m := h.class.Method("OnCreate")
	saved := m.Param("savedInstanceState", h.ctx.Ptr("Bundle"))
	body := m.Body()
	previous := h.replacePreviousNotifier(body)
	body.Add(h.self(h.init.Name(), saved.Ref()))
	body.Add(m.SuperCall())
	h.phases[load.PhaseCreate] = &phase{method: m, block: body.Block()}
	h.resetPreviousNotifier(body, previous)
}

func (h *FragmentHolder) setOnViewCreated() {
	m := h.class.Method("OnViewCreated")
	m.Param("view", h.ctx.Type("View"))
	m.Param("savedInstanceState", h.ctx.Ptr("Bundle"))
	m.Body().Add(m.SuperCall())
	h.invokeViewChanged(m.Body())
}

func (h *FragmentHolder) setBuilder() {
	ctx := h.ctx
	b := h.file.Class(ctx.BuilderName(), ctx.BuilderReceiver())
	h.builder = b
	b.Doc(fmt.Sprintf("%s builds %s values from arguments.", b.Name(), h.class.Name()))
	b.Embed("FragmentBuilder", ctx.Type("FragmentBuilder")).Init(ctx.Qual("NewFragmentBuilder").Call())
	ctor := b.Constructor(ctx.BuilderConstructorName())
	ctor.Doc(fmt.Sprintf("%s returns a builder with empty arguments.", ctor.Name()))
	h.builderCtor = ctor

	build := b.Method("Build").Returns(jen.Op("*").Id(h.class.Name()))
	build.Doc(fmt.Sprintf("Build returns a new %s with the arguments of the builder.", h.class.Name()))
	body := build.Body()
	fragment := body.Decl("fragment", jen.Id(h.ctor.Name()).Call())
	body.Add(fragment.Ref().Dot("SetArguments").Call(h.BuilderArgsField()))
	body.Return(fragment.Ref())
}

// OnCreateMethod returns the OnCreate override.
func (h *FragmentHolder) OnCreateMethod() *code.Method { return h.phases[load.PhaseCreate].method }

// SavedStateParam returns the saved-state parameter of the startup routine.
func (h *FragmentHolder) SavedStateParam() *code.Param { return h.savedState }

// BuilderClass returns the companion builder type.
func (h *FragmentHolder) BuilderClass() *code.Class { return h.builder }

// BuilderConstructor returns the factory of the builder type.
func (h *FragmentHolder) BuilderConstructor() *code.Method { return h.builderCtor }

// BuilderArgsField returns a reference to the arguments held by the
// builder.
func (h *FragmentHolder) BuilderArgsField() jen.Code {
	return h.builder.Self().Dot("Args")
}

// BuilderSetter returns the body of the builder setter of field. The
// setter receives the value as its only parameter and returns the builder.
func (h *FragmentHolder) BuilderSetter(field string, typ jen.Code) *code.Block {
	if b, ok := h.setters[field]; ok {
		return b
	}
	h.build("builder setter "+field, func() {
		m := h.builder.Method(h.ctx.SetterName(field))
		m.Param("value", typ)
		m.Returns(jen.Op("*").Id(h.builder.Name()))
		block := m.Body().Block()
		m.Body().Return(h.builder.Self())
		h.setters[field] = block
	})
	return h.setters[field]
}

// ContentViewField returns the field holding the content view.
func (h *FragmentHolder) ContentViewField() *code.Field {
	if h.contentView == nil {
		h.setContentViewGroup()
	}
	return h.contentView
}

// InflaterParam returns the inflater parameter of OnCreateView.
func (h *FragmentHolder) InflaterParam() *code.Param {
	if h.inflater == nil {
		h.setContentViewGroup()
	}
	return h.inflater
}

// ContainerParam returns the container parameter of OnCreateView.
func (h *FragmentHolder) ContainerParam() *code.Param {
	if h.container == nil {
		h.setContentViewGroup()
	}
	return h.container
}

// SetContentViewBlock returns the block of OnCreateView that runs before
// the content view is returned.
func (h *FragmentHolder) SetContentViewBlock() *code.Block {
	if h.setContentView == nil {
		h.setContentViewGroup()
	}
	return h.setContentView
}

// DestroyViewAfterBase returns the block of OnDestroyView that runs after
// the content view is released.
func (h *FragmentHolder) DestroyViewAfterBase() *code.Block {
	if h.destroyView == nil {
		h.setContentViewGroup()
	}
	return h.destroyView
}

// ClearInjectedView resets target when the content view is released.
func (h *FragmentHolder) ClearInjectedView(target jen.Code) {
	h.DestroyViewAfterBase().Assign(target, jen.Nil())
}

func (h *FragmentHolder) setContentViewGroup() {
	h.build("content view", func() {
		ctx := h.ctx
		field := h.class.Field(ctx.Named("contentView"), ctx.Type("View"))

		create := h.class.Method("OnCreateView")
		inflater := create.Param("inflater", ctx.Type("LayoutInflater"))
		container := create.Param("container", ctx.Type("ViewGroup"))
		create.Param("savedInstanceState", ctx.Ptr("Bundle"))
		create.Returns(ctx.Type("View"))
		if !ctx.ForceLayoutInjection() {
			create.Body().Assign(field.Ref(), create.SuperCall())
		}
		setContentView := create.Body().Block()
		create.Body().Return(field.Ref())

		destroy := h.class.Method("OnDestroyView")
		destroy.Body().Add(destroy.SuperCall())
		destroy.Body().Assign(field.Ref(), jen.Nil())

		h.contentView = field
		h.inflater = inflater
		h.container = container
		h.setContentView = setContentView
		h.destroyView = destroy.Body().Block()
	})
}

// ViewDestroyedField returns the flag that is true while the fragment has
// no content view.
func (h *FragmentHolder) ViewDestroyedField() *code.Field {
	if h.viewDestroyed == nil {
		h.build("view destroyed", func() {
			f := h.class.Field(h.ctx.Named("viewDestroyed"), jen.Bool()).Init(jen.True())
			f.Doc(f.Name() + " is read and written on the main thread only.")
			h.SetContentViewBlock().Assign(f.Ref(), jen.False())
			h.DestroyViewAfterBase().Assign(f.Ref(), jen.True())
			h.viewDestroyed = f
		})
	}
	return h.viewDestroyed
}

func (h *FragmentHolder) findViewByIDExpression(id jen.Code) jen.Code {
	view := h.ContentViewField()
	return code.Cond(
		view.Ref().Op("==").Nil(),
		h.ctx.Type("View"),
		jen.Nil(),
		view.Ref().Dot("FindViewByID").Call(id),
	)
}

// LifecycleBlock returns the extension block of a lifecycle phase.
func (h *FragmentHolder) LifecycleBlock(name string) *code.Block {
	if p, ok := h.phases[name]; ok {
		return p.block
	}
	hook, ok := lifecycleMethods[name]
	if !ok {
		code.Abort(code.NewConstructionError(name, "unknown lifecycle phase"))
	}
	h.build("lifecycle "+name, func() {
		m := h.class.Method(hook.method)
		if name == load.PhaseAttach {
			m.Param("activity", h.ctx.Type("Activity"))
		}
		p := &phase{method: m}
		if hook.after {
			m.Body().Add(m.SuperCall())
			p.block = m.Body().Block()
		} else {
			p.block = m.Body().Block()
			m.Body().Add(m.SuperCall())
		}
		h.phases[name] = p
	})
	return h.phases[name].block
}

// LifecycleMethod returns the override of a lifecycle phase, building it
// when needed.
func (h *FragmentHolder) LifecycleMethod(name string) *code.Method {
	h.LifecycleBlock(name)
	return h.phases[name].method
}

// CreateAfterBase returns the block of OnCreate after the base call.
func (h *FragmentHolder) CreateAfterBase() *code.Block { return h.LifecycleBlock(load.PhaseCreate) }

// StartAfterBase returns the block of OnStart after the base call.
func (h *FragmentHolder) StartAfterBase() *code.Block { return h.LifecycleBlock(load.PhaseStart) }

// ResumeAfterBase returns the block of OnResume after the base call.
func (h *FragmentHolder) ResumeAfterBase() *code.Block { return h.LifecycleBlock(load.PhaseResume) }

// AttachAfterBase returns the block of OnAttach after the base call.
func (h *FragmentHolder) AttachAfterBase() *code.Block { return h.LifecycleBlock(load.PhaseAttach) }

// PauseBeforeBase returns the block of OnPause before the base call.
func (h *FragmentHolder) PauseBeforeBase() *code.Block { return h.LifecycleBlock(load.PhasePause) }

// StopBeforeBase returns the block of OnStop before the base call.
func (h *FragmentHolder) StopBeforeBase() *code.Block { return h.LifecycleBlock(load.PhaseStop) }

// DestroyBeforeBase returns the block of OnDestroy before the base call.
func (h *FragmentHolder) DestroyBeforeBase() *code.Block { return h.LifecycleBlock(load.PhaseDestroy) }

// DetachBeforeBase returns the block of OnDetach before the base call.
func (h *FragmentHolder) DetachBeforeBase() *code.Block { return h.LifecycleBlock(load.PhaseDetach) }

// StartLifecycleAfterBase returns the block that runs once the fragment
// is created.
func (h *FragmentHolder) StartLifecycleAfterBase() *code.Block { return h.CreateAfterBase() }

// EndLifecycleBeforeBase returns the block that runs before the fragment
// is destroyed.
func (h *FragmentHolder) EndLifecycleBeforeBase() *code.Block { return h.DestroyBeforeBase() }

// OptionsMenuInflateBody returns the block of OnCreateOptionsMenu that
// inflates menu resources.
func (h *FragmentHolder) OptionsMenuInflateBody() *code.Block {
	if h.menuInflate == nil {
		h.setOptionsMenu()
	}
	return h.menuInflate
}

// OptionsMenuBody returns the block of OnCreateOptionsMenu that runs
// after inflation.
func (h *FragmentHolder) OptionsMenuBody() *code.Block {
	if h.menuBody == nil {
		h.setOptionsMenu()
	}
	return h.menuBody
}

// OptionsMenuParam returns the menu parameter of OnCreateOptionsMenu.
func (h *FragmentHolder) OptionsMenuParam() *code.Param {
	if h.menu == nil {
		h.setOptionsMenu()
	}
	return h.menu
}

// OptionsMenuInflaterParam returns the inflater parameter of
// OnCreateOptionsMenu.
func (h *FragmentHolder) OptionsMenuInflaterParam() *code.Param {
	if h.menuInflater == nil {
		h.setOptionsMenu()
	}
	return h.menuInflater
}

func (h *FragmentHolder) setOptionsMenu() {
	h.build("options menu", func() {
		m := h.class.Method("OnCreateOptionsMenu")
		menu := m.Param("menu", h.ctx.Type("Menu"))
		inflater := m.Param("inflater", h.ctx.Type("MenuInflater"))
		inflate := m.Body().Block()
		body := m.Body().Block()
		m.Body().Add(m.SuperCall())
		h.InitBody().Add(h.self("SetHasOptionsMenu", jen.True()))

		h.menu = menu
		h.menuInflater = inflater
		h.menuInflate = inflate
		h.menuBody = body
	})
}

// ItemSelectedParam returns the item parameter of OnOptionsItemSelected.
func (h *FragmentHolder) ItemSelectedParam() *code.Param {
	if h.item == nil {
		h.setItemSelected()
	}
	return h.item
}

// ItemSelectedID returns the local variable holding the selected item id.
func (h *FragmentHolder) ItemSelectedID() *code.Var {
	if h.itemID == nil {
		h.setItemSelected()
	}
	return h.itemID
}

// ItemSelectedMiddleBlock returns the block of OnOptionsItemSelected that
// runs before the selection is passed to the base type.
func (h *FragmentHolder) ItemSelectedMiddleBlock() *code.Block {
	if h.itemMiddle == nil {
		h.setItemSelected()
	}
	return h.itemMiddle
}

func (h *FragmentHolder) setItemSelected() {
	h.build("item selected", func() {
		m := h.class.Method("OnOptionsItemSelected")
		item := m.Param("item", h.ctx.Type("MenuItem"))
		m.Returns(jen.Bool())
		id := m.Body().Decl(h.ctx.Named("itemID"), item.Ref().Dot("ItemID").Call())
		middle := m.Body().Block()
		m.Body().Return(m.SuperCall())

		h.item = item
		h.itemID = id
		h.itemMiddle = middle
	})
}

// InjectArgsMethod returns the routine injecting fragment arguments.
func (h *FragmentHolder) InjectArgsMethod() *code.Method {
	if h.injectArgs == nil {
		h.setInjectArgs()
	}
	return h.injectArgs
}

// InjectArgsBlock returns the block that runs when the fragment has
// arguments.
func (h *FragmentHolder) InjectArgsBlock() *code.Block {
	if h.injectArgsBlock == nil {
		h.setInjectArgs()
	}
	return h.injectArgsBlock
}

// InjectBundleArgs returns the local variable holding the arguments.
func (h *FragmentHolder) InjectBundleArgs() *code.Var {
	if h.injectArgsVar == nil {
		h.setInjectArgs()
	}
	return h.injectArgsVar
}

func (h *FragmentHolder) setInjectArgs() {
	h.build("inject arguments", func() {
		m := h.class.Method(h.ctx.Named("injectFragmentArguments"))
		args := m.Body().Decl(h.ctx.Named("args"), h.self("Arguments"))
		block := m.Body().If(args.Ref().Op("!=").Nil())
		h.InitBodyInjectionBlock().Add(h.self(m.Name()))

		h.injectArgs = m
		h.injectArgsVar = args
		h.injectArgsBlock = block
	})
}

// SaveStateBody returns the block of OnSaveInstanceState after the base
// call.
func (h *FragmentHolder) SaveStateBody() *code.Block { return h.state.saveBody() }

// SaveStateBundleParam returns the bundle parameter of
// OnSaveInstanceState.
func (h *FragmentHolder) SaveStateBundleParam() *code.Param { return h.state.saveBundle() }

// RestoreStateMethod returns the routine restoring the saved state.
func (h *FragmentHolder) RestoreStateMethod() *code.Method { return h.state.restoreMethod() }

// RestoreStateBody returns the block that runs when there is saved state.
func (h *FragmentHolder) RestoreStateBody() *code.Block { return h.state.restoreBody() }

// RestoreStateBundleParam returns the bundle parameter of the restore
// routine.
func (h *FragmentHolder) RestoreStateBundleParam() *code.Param { return h.state.restoreBundle() }

// ActivityResultMethod returns the OnActivityResult override.
func (h *FragmentHolder) ActivityResultMethod() *code.Method { return h.results.method() }

// ActivityResultCaseBlock returns the case block of requestCode.
func (h *FragmentHolder) ActivityResultCaseBlock(requestCode int) *code.Block {
	return h.results.caseBlock(requestCode)
}

// ActivityResultCodeParam returns the result code parameter of
// OnActivityResult.
func (h *FragmentHolder) ActivityResultCodeParam() *code.Param { return h.results.resultCodeParam() }

// ActivityResultDataParam returns the data parameter of OnActivityResult.
func (h *FragmentHolder) ActivityResultDataParam() *code.Param { return h.results.dataParam() }

// IntentFilterField returns the field holding the filter of data.
func (h *FragmentHolder) IntentFilterField(data IntentFilterData) *code.Field {
	return h.receivers.intentFilterField(data)
}

// ReceiverField returns the field holding the receiver that calls method
// for the filter of data.
func (h *FragmentHolder) ReceiverField(method string, data IntentFilterData, init jen.Code) *code.Field {
	return h.receivers.receiverField(method, data, init)
}

// RegistrationBlocks returns the blocks receivers registered at are
// registered and unregistered in.
func (h *FragmentHolder) RegistrationBlocks(at load.RegisterAt) (register, unregister *code.Block) {
	return h.receivers.registrationBlocks(at)
}

// PreferenceScreenInitializationBlock returns the block the preference
// screen is added in.
func (h *FragmentHolder) PreferenceScreenInitializationBlock() *code.Block {
	return h.CreateAfterBase()
}

// AddPreferencesInjectionBlock returns the block of
// AddPreferencesFromResource that looks up preferences.
func (h *FragmentHolder) AddPreferencesInjectionBlock() *code.Block {
	return h.preferences.injectionBlock()
}

// AddPreferencesAfterInjectionBlock returns the block of
// AddPreferencesFromResource that runs after the lookups.
func (h *FragmentHolder) AddPreferencesAfterInjectionBlock() *code.Block {
	return h.preferences.afterInjectionBlock()
}

// FoundPreference returns the lookup of the preference with key.
func (h *FragmentHolder) FoundPreference(key string) *FoundPreference {
	return h.preferences.found(key)
}

// BasePreferenceType returns the preference type of the unit.
func (h *FragmentHolder) BasePreferenceType() jen.Code { return h.preferences.baseType() }

// UsingCompatPreference reports whether the unit uses compat preferences.
func (h *FragmentHolder) UsingCompatPreference() bool { return h.ctx.CompatPreferences() }
