package veloxui

import "slices"

// Context is the environment a component registers receivers with.
type Context interface {
	RegisterReceiver(r Receiver, filter *IntentFilter)
	UnregisterReceiver(r Receiver)
}

// Activity hosts fragments.
type Activity interface {
	Context
}

// Intent is a message delivered to receivers and result callbacks.
type Intent struct {
	Action string
	Scheme string
	Extras *Bundle
}

// NewIntent returns an intent for the given action with empty extras.
func NewIntent(action string) *Intent {
	return &Intent{Action: action, Extras: NewBundle()}
}

// IntentFilter selects the intents a receiver is interested in.
type IntentFilter struct {
	actions []string
	schemes []string
}

// NewIntentFilter returns a filter that matches nothing.
func NewIntentFilter() *IntentFilter {
	return &IntentFilter{}
}

// AddAction adds an action to match.
func (f *IntentFilter) AddAction(action string) {
	if !slices.Contains(f.actions, action) {
		f.actions = append(f.actions, action)
	}
}

// AddDataScheme adds a data scheme to match.
func (f *IntentFilter) AddDataScheme(scheme string) {
	if !slices.Contains(f.schemes, scheme) {
		f.schemes = append(f.schemes, scheme)
	}
}

// Actions returns the actions of the filter.
func (f *IntentFilter) Actions() []string {
	return slices.Clone(f.actions)
}

// Match reports whether the filter accepts intent. A filter without
// schemes accepts any scheme.
func (f *IntentFilter) Match(intent *Intent) bool {
	if f == nil || intent == nil || !slices.Contains(f.actions, intent.Action) {
		return false
	}
	return len(f.schemes) == 0 || slices.Contains(f.schemes, intent.Scheme)
}

// Receiver handles broadcast intents.
type Receiver interface {
	OnReceive(ctx Context, intent *Intent)
}

// FuncReceiver adapts a function to Receiver. It is used through a pointer
// so that registered receivers stay comparable.
type FuncReceiver struct {
	fn func(ctx Context, intent *Intent)
}

// NewReceiver returns a Receiver that calls fn.
func NewReceiver(fn func(ctx Context, intent *Intent)) *FuncReceiver {
	return &FuncReceiver{fn: fn}
}

// OnReceive calls the wrapped function.
func (r *FuncReceiver) OnReceive(ctx Context, intent *Intent) {
	if r.fn != nil {
		r.fn(ctx, intent)
	}
}
