package veloxui

// Preference is an entry of a preference screen.
type Preference interface {
	Key() string
	SetOnPreferenceClickListener(l PreferenceClickListener)
	SetOnPreferenceChangeListener(l PreferenceChangeListener)
}

// CompatPreference is the preference type of the compatibility
// preference library. Components opt into it per definition.
type CompatPreference interface {
	Preference
	Compat()
}

// PreferenceClickListener is called when a preference is clicked.
type PreferenceClickListener interface {
	OnPreferenceClick(p Preference) bool
}

// PreferenceClickFunc adapts a function to PreferenceClickListener.
type PreferenceClickFunc func(p Preference) bool

// OnPreferenceClick calls fn(p).
func (fn PreferenceClickFunc) OnPreferenceClick(p Preference) bool { return fn(p) }

// PreferenceChangeListener is called when the value of a preference changes.
type PreferenceChangeListener interface {
	OnPreferenceChange(p Preference, newValue any) bool
}

// PreferenceChangeFunc adapts a function to PreferenceChangeListener.
type PreferenceChangeFunc func(p Preference, newValue any) bool

// OnPreferenceChange calls fn(p, newValue).
func (fn PreferenceChangeFunc) OnPreferenceChange(p Preference, newValue any) bool {
	return fn(p, newValue)
}

// PreferenceInflater is implemented by activities that can build a
// preference screen from a resource.
type PreferenceInflater interface {
	InflatePreferences(resID string) []Preference
}
