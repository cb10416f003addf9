// Package load reads component definitions from YAML or JSON files.
package load

// Kind selects the holder variant a definition generates.
type Kind string

// Component kinds.
const (
	KindFragment Kind = "fragment"
	KindBean     Kind = "bean"
)

// Preference variants.
const (
	PreferencesPlatform = "platform"
	PreferencesCompat   = "compat"
)

// RegisterAt selects the lifecycle pair a receiver is registered and
// unregistered in.
type RegisterAt string

// Receiver registration anchors.
const (
	OnCreateOnDestroy RegisterAt = "OnCreateOnDestroy"
	OnStartOnStop     RegisterAt = "OnStartOnStop"
	OnResumeOnPause   RegisterAt = "OnResumeOnPause"
	OnAttachOnDetach  RegisterAt = "OnAttachOnDetach"
)

// Definition describes one generated component.
type Definition struct {
	Name        string            `json:"name" yaml:"name"`
	Package     string            `json:"package" yaml:"package"`
	Path        string            `json:"path" yaml:"path"`
	Kind        Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	Options     Options           `json:"options,omitempty" yaml:"options,omitempty"`
	Layout      string            `json:"layout,omitempty" yaml:"layout,omitempty"`
	Views       []*View           `json:"views,omitempty" yaml:"views,omitempty"`
	State       []*StateField     `json:"state,omitempty" yaml:"state,omitempty"`
	Args        []*Arg            `json:"args,omitempty" yaml:"args,omitempty"`
	Menu        *Menu             `json:"menu,omitempty" yaml:"menu,omitempty"`
	Results     []*Result         `json:"results,omitempty" yaml:"results,omitempty"`
	Receivers   []*Receiver       `json:"receivers,omitempty" yaml:"receivers,omitempty"`
	Preferences *Preferences      `json:"preferences,omitempty" yaml:"preferences,omitempty"`
	Lifecycle   []*LifecycleCall  `json:"lifecycle,omitempty" yaml:"lifecycle,omitempty"`
	Guards      []*Guard          `json:"guards,omitempty" yaml:"guards,omitempty"`
	AfterInject []string          `json:"afterInject,omitempty" yaml:"afterInject,omitempty"`
	File        string            `json:"-" yaml:"-"` // Source file, if loaded from disk.
}

// Options are the per-definition switches read by the holders.
type Options struct {
	// ForceLayoutInjection skips assigning the base OnCreateView result to
	// the content view.
	ForceLayoutInjection bool `json:"forceLayoutInjection,omitempty" yaml:"forceLayoutInjection,omitempty"`
	// Preferences is "platform" (default) or "compat".
	Preferences string `json:"preferences,omitempty" yaml:"preferences,omitempty"`
}

// IsFragment reports whether the definition generates a fragment.
func (d *Definition) IsFragment() bool {
	return d.Kind == "" || d.Kind == KindFragment
}

// View is a view reference resolved once the content view exists.
type View struct {
	Field string   `json:"field" yaml:"field"`
	ID    string   `json:"id" yaml:"id"`
	Type  *TypeRef `json:"type,omitempty" yaml:"type,omitempty"`
}

// StateField is a field saved to and restored from the instance state.
type StateField struct {
	Field string   `json:"field" yaml:"field"`
	Key   string   `json:"key,omitempty" yaml:"key,omitempty"`
	Type  *TypeRef `json:"type" yaml:"type"`
}

// Arg is a field injected from the fragment arguments.
type Arg struct {
	Field string   `json:"field" yaml:"field"`
	Key   string   `json:"key,omitempty" yaml:"key,omitempty"`
	Type  *TypeRef `json:"type" yaml:"type"`
}

// Menu describes the options menu of a fragment.
type Menu struct {
	Resources []string    `json:"resources,omitempty" yaml:"resources,omitempty"`
	Items     []*MenuItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// MenuItem binds a menu item id to a field, a selection handler, or both.
type MenuItem struct {
	ID     string `json:"id" yaml:"id"`
	Field  string `json:"field,omitempty" yaml:"field,omitempty"`
	Method string `json:"method,omitempty" yaml:"method,omitempty"`
	// Handled reports that Method returns a bool telling whether the
	// selection was consumed.
	Handled bool `json:"handled,omitempty" yaml:"handled,omitempty"`
}

// Result binds a request code to a result handler.
type Result struct {
	RequestCode int    `json:"requestCode" yaml:"requestCode"`
	Method      string `json:"method" yaml:"method"`
	// Params lists the callback arguments passed to Method, among
	// "resultCode" and "data".
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Receiver registers a broadcast receiver for the lifetime of a lifecycle
// pair.
type Receiver struct {
	Method     string     `json:"method" yaml:"method"`
	Actions    []string   `json:"actions" yaml:"actions"`
	Schemes    []string   `json:"schemes,omitempty" yaml:"schemes,omitempty"`
	RegisterAt RegisterAt `json:"registerAt,omitempty" yaml:"registerAt,omitempty"`
}

// Preferences wires a preference screen.
type Preferences struct {
	Screen  string              `json:"screen,omitempty" yaml:"screen,omitempty"`
	Fields  []*PreferenceField  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Clicks  []*PreferenceMethod `json:"clicks,omitempty" yaml:"clicks,omitempty"`
	Changes []*PreferenceMethod `json:"changes,omitempty" yaml:"changes,omitempty"`
}

// PreferenceField is a field bound to the preference with the given key.
type PreferenceField struct {
	Field string `json:"field" yaml:"field"`
	Key   string `json:"key" yaml:"key"`
}

// PreferenceMethod is a listener method bound to a preference key.
type PreferenceMethod struct {
	Key    string `json:"key" yaml:"key"`
	Method string `json:"method" yaml:"method"`
}

// LifecycleCall calls a user method during a lifecycle phase.
type LifecycleCall struct {
	Phase  string `json:"phase" yaml:"phase"`
	Method string `json:"method" yaml:"method"`
}

// Guard skips a user method when the fragment is not in the required state.
type Guard struct {
	Method  string     `json:"method" yaml:"method"`
	When    string     `json:"when" yaml:"when"` // "viewDestroyed" or "detached"
	Params  []*Param   `json:"params,omitempty" yaml:"params,omitempty"`
	Results []*TypeRef `json:"results,omitempty" yaml:"results,omitempty"`
}

// Param is a named parameter of a guarded method.
type Param struct {
	Name string   `json:"name" yaml:"name"`
	Type *TypeRef `json:"type" yaml:"type"`
}

// Guard conditions.
const (
	WhenViewDestroyed = "viewDestroyed"
	WhenDetached      = "detached"
)

// Lifecycle phases a LifecycleCall can name.
const (
	PhaseCreate  = "create"
	PhaseStart   = "start"
	PhaseResume  = "resume"
	PhasePause   = "pause"
	PhaseStop    = "stop"
	PhaseDestroy = "destroy"
	PhaseAttach  = "attach"
	PhaseDetach  = "detach"
)

// Phases lists the lifecycle phases in lifecycle order.
var Phases = []string{
	PhaseAttach,
	PhaseCreate,
	PhaseStart,
	PhaseResume,
	PhasePause,
	PhaseStop,
	PhaseDestroy,
	PhaseDetach,
}
