package gen

var (
	// FeatureLayout inflates the layout resource of a definition into the
	// content view.
	FeatureLayout = Feature{
		Name:        "layout",
		Stage:       Stable,
		Default:     true,
		Description: "Inflates the layout resource into the content view unless the base type created one",
	}

	// FeatureViews resolves view references once the content view exists.
	FeatureViews = Feature{
		Name:        "views",
		Stage:       Stable,
		Default:     true,
		Description: "Resolves view references when the content view changes and clears them when it is destroyed",
	}

	// FeatureInstanceState saves and restores fields through the instance
	// state bundle.
	FeatureInstanceState = Feature{
		Name:        "instancestate",
		Stage:       Stable,
		Default:     true,
		Description: "Saves fields in OnSaveInstanceState and restores them before OnCreate delegates to the base type",
	}

	// FeatureFragmentArgs injects fields from the fragment arguments and adds
	// setters to the builder.
	FeatureFragmentArgs = Feature{
		Name:        "fragmentarg",
		Stage:       Stable,
		Default:     true,
		Description: "Injects fields from the fragment arguments and adds typed setters to the companion builder",
	}

	// FeatureOptionsMenu inflates menu resources and dispatches item
	// selections.
	FeatureOptionsMenu = Feature{
		Name:        "optionsmenu",
		Stage:       Stable,
		Default:     true,
		Description: "Inflates menu resources, binds menu items and dispatches item selections by id",
	}

	// FeatureActivityResult dispatches activity results by request code.
	FeatureActivityResult = Feature{
		Name:        "activityresult",
		Stage:       Stable,
		Default:     true,
		Description: "Dispatches OnActivityResult to handler methods by request code",
	}

	// FeatureReceivers registers broadcast receivers for a lifecycle pair.
	FeatureReceivers = Feature{
		Name:        "receiver",
		Stage:       Beta,
		Default:     true,
		Description: "Registers broadcast receivers when a lifecycle phase starts and unregisters them when it ends",
	}

	// FeaturePreferences wires a preference screen.
	FeaturePreferences = Feature{
		Name:        "preference",
		Stage:       Beta,
		Default:     true,
		Description: "Adds preferences from a resource and binds preference fields and listeners",
	}

	// FeatureLifecycle calls user methods during lifecycle phases.
	FeatureLifecycle = Feature{
		Name:        "lifecycle",
		Stage:       Stable,
		Default:     true,
		Description: "Calls user methods when the component enters a lifecycle phase",
	}

	// FeatureGuards skips user methods when the view is destroyed or the
	// fragment is detached.
	FeatureGuards = Feature{
		Name:        "guard",
		Stage:       Alpha,
		Default:     false,
		Description: "Overrides user methods to return early when the view is destroyed or the fragment is detached",
	}

	// FeatureAfterInject calls user methods once every injection ran.
	FeatureAfterInject = Feature{
		Name:        "afterinject",
		Stage:       Stable,
		Default:     true,
		Description: "Calls user methods at the end of the init routine",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureLayout,
		FeatureViews,
		FeatureInstanceState,
		FeatureFragmentArgs,
		FeatureOptionsMenu,
		FeatureActivityResult,
		FeatureReceivers,
		FeaturePreferences,
		FeatureLifecycle,
		FeatureGuards,
		FeatureAfterInject,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development.
	Experimental

	// Alpha features are complete, but their generated code may still
	// change between releases.
	Alpha

	// Beta features are documented and no breaking changes are expected.
	Beta

	// Stable features have been in use for a while.
	Stable
)

// String returns the stage name.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	}
	return "unknown"
}

// A Feature of the veloxui codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// LookupFeature returns the feature with the given name.
func LookupFeature(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}
