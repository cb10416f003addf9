package holder

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/stoewer/go-strcase"

	"github.com/syssam/veloxui/compiler/code"
	"github.com/syssam/veloxui/compiler/load"
)

// IntentFilterData identifies an intent filter. Two receivers with the
// same actions, schemes and registration anchor share one filter.
type IntentFilterData struct {
	Actions    []string
	Schemes    []string
	RegisterAt load.RegisterAt
}

// NewIntentFilterData returns the filter data of a receiver definition.
func NewIntentFilterData(r *load.Receiver) IntentFilterData {
	return IntentFilterData{
		Actions:    r.Actions,
		Schemes:    r.Schemes,
		RegisterAt: registerAt(r.RegisterAt),
	}
}

func (d IntentFilterData) key() string {
	actions := slices.Compact(slices.Sorted(slices.Values(d.Actions)))
	schemes := slices.Compact(slices.Sorted(slices.Values(d.Schemes)))
	return strings.Join(actions, ",") + "|" + strings.Join(schemes, ",") + "|" + string(registerAt(d.RegisterAt))
}

// registerAt returns at, or the default anchor when at is empty.
func registerAt(at load.RegisterAt) load.RegisterAt {
	if at == "" {
		return load.OnCreateOnDestroy
	}
	return at
}

// receiverRegistration declares intent filters and receivers and picks
// the lifecycle blocks they are registered in.
type receiverRegistration struct {
	h         *ComponentHolder
	lifecycle LifecycleSupport

	filters   map[string]*code.Field
	receivers map[string]*code.Field
	methods   map[string]int
}

func (d *receiverRegistration) intentFilterField(data IntentFilterData) *code.Field {
	key := data.key()
	if f, ok := d.filters[key]; ok {
		return f
	}
	h := d.h
	h.build("intent filter "+key, func() {
		if d.filters == nil {
			d.filters = make(map[string]*code.Field)
		}
		ctx := h.ctx
		f := h.class.Field(ctx.Named(fmt.Sprintf("intentFilter%d", len(d.filters)+1)), ctx.Ptr("IntentFilter"))
		b := d.initializationBlock(data.RegisterAt)
		b.Assign(f.Ref(), ctx.Qual("NewIntentFilter").Call())
		for _, a := range data.Actions {
			b.Add(f.Ref().Dot("AddAction").Call(jen.Lit(a)))
		}
		for _, s := range data.Schemes {
			b.Add(f.Ref().Dot("AddDataScheme").Call(jen.Lit(s)))
		}
		d.filters[key] = f
	})
	return d.filters[key]
}

// initializationBlock returns the block a filter is initialised in.
// Filters of receivers registered on attach are rebuilt on every attach.
func (d *receiverRegistration) initializationBlock(at load.RegisterAt) *code.Block {
	if registerAt(at) == load.OnAttachOnDetach {
		return d.lifecycle.LifecycleBlock(load.PhaseAttach)
	}
	return d.h.InitBodyInjectionBlock()
}

// receiverField returns the receiver calling method for the filter of
// data. A method receiving through several filters gets a numbered field
// per filter.
func (d *receiverRegistration) receiverField(method string, data IntentFilterData, init jen.Code) *code.Field {
	key := method + "|" + data.key()
	if f, ok := d.receivers[key]; ok {
		return f
	}
	h := d.h
	h.build("receiver "+key, func() {
		if d.receivers == nil {
			d.receivers = make(map[string]*code.Field)
			d.methods = make(map[string]int)
		}
		d.methods[method]++
		name := strcase.LowerCamelCase(method) + "Receiver"
		if n := d.methods[method]; n > 1 {
			name += strconv.Itoa(n)
		}
		d.receivers[key] = h.class.Field(h.ctx.Named(name), h.ctx.Ptr("FuncReceiver")).Init(init)
	})
	return d.receivers[key]
}

func (d *receiverRegistration) registrationBlocks(at load.RegisterAt) (register, unregister *code.Block) {
	lc := d.lifecycle
	switch registerAt(at) {
	case load.OnStartOnStop:
		return lc.LifecycleBlock(load.PhaseStart), lc.LifecycleBlock(load.PhaseStop)
	case load.OnResumeOnPause:
		return lc.LifecycleBlock(load.PhaseResume), lc.LifecycleBlock(load.PhasePause)
	case load.OnAttachOnDetach:
		return lc.LifecycleBlock(load.PhaseAttach), lc.LifecycleBlock(load.PhaseDetach)
	default:
		return lc.LifecycleBlock(load.PhaseCreate), lc.LifecycleBlock(load.PhaseDestroy)
	}
}
