package veloxui

// Fragment is the base type user-authored fragments embed. Every method is
// a default implementation the generated subtype overrides and delegates to.
type Fragment struct {
	arguments      *Bundle
	activity       Activity
	hasOptionsMenu bool
	preferences    map[string]Preference
}

// Arguments returns the arguments the fragment was built with.
func (f *Fragment) Arguments() *Bundle { return f.arguments }

// SetArguments sets the arguments of the fragment.
func (f *Fragment) SetArguments(args *Bundle) { f.arguments = args }

// Activity returns the host activity, or nil when detached.
func (f *Fragment) Activity() Activity { return f.activity }

// SetHasOptionsMenu reports that the fragment contributes to the options menu.
func (f *Fragment) SetHasOptionsMenu(has bool) { f.hasOptionsMenu = has }

// HasOptionsMenu reports whether the fragment contributes to the options menu.
func (f *Fragment) HasOptionsMenu() bool { return f.hasOptionsMenu }

// OnAttach records the host activity.
func (f *Fragment) OnAttach(activity Activity) { f.activity = activity }

// OnDetach forgets the host activity.
func (f *Fragment) OnDetach() { f.activity = nil }

// OnCreate is called when the fragment is created.
func (f *Fragment) OnCreate(savedInstanceState *Bundle) {}

// OnCreateView returns the content view of the fragment. The default has no
// view.
func (f *Fragment) OnCreateView(inflater LayoutInflater, container ViewGroup, savedInstanceState *Bundle) View {
	return nil
}

// OnViewCreated is called once OnCreateView returned.
func (f *Fragment) OnViewCreated(view View, savedInstanceState *Bundle) {}

// OnDestroyView is called when the content view is released.
func (f *Fragment) OnDestroyView() {}

// InternalFindViewByID resolves a view of the content view. The default
// has no content. Generated fragments that inject views override it.
func (f *Fragment) InternalFindViewByID(id string) View { return nil }

// OnStart is called when the fragment becomes visible.
func (f *Fragment) OnStart() {}

// OnResume is called when the fragment starts interacting with the user.
func (f *Fragment) OnResume() {}

// OnPause is called when the fragment stops interacting with the user.
func (f *Fragment) OnPause() {}

// OnStop is called when the fragment is no longer visible.
func (f *Fragment) OnStop() {}

// OnDestroy is called when the fragment is destroyed.
func (f *Fragment) OnDestroy() {}

// OnSaveInstanceState stores state to be restored by OnCreate.
func (f *Fragment) OnSaveInstanceState(outState *Bundle) {}

// OnActivityResult receives the result of an activity started for a result.
func (f *Fragment) OnActivityResult(requestCode, resultCode int, data *Intent) {}

// OnCreateOptionsMenu populates the options menu.
func (f *Fragment) OnCreateOptionsMenu(menu Menu, inflater MenuInflater) {}

// OnOptionsItemSelected handles a menu selection. The default handles nothing.
func (f *Fragment) OnOptionsItemSelected(item MenuItem) bool { return false }

// AddPreferencesFromResource inflates the preferences of resID through the
// host activity.
func (f *Fragment) AddPreferencesFromResource(resID string) {
	inflater, ok := f.activity.(PreferenceInflater)
	if !ok {
		return
	}
	if f.preferences == nil {
		f.preferences = make(map[string]Preference)
	}
	for _, p := range inflater.InflatePreferences(resID) {
		f.preferences[p.Key()] = p
	}
}

// FindPreference returns the preference with the given key, or nil.
func (f *Fragment) FindPreference(key string) Preference {
	return f.preferences[key]
}

// FragmentBuilder holds the arguments of a fragment under construction.
// Generated builders embed it.
type FragmentBuilder struct {
	Args *Bundle
}

// NewFragmentBuilder returns a builder with empty arguments.
func NewFragmentBuilder() FragmentBuilder {
	return FragmentBuilder{Args: NewBundle()}
}

// Arg stores an argument.
func (b *FragmentBuilder) Arg(key string, value any) {
	b.Args.Put(key, value)
}

// Bean is the base type user-authored beans embed.
type Bean struct{}
