package handler

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/gen/holder"
	"github.com/syssam/veloxui/compiler/load"
)

// Preferences adds the preference screen of a definition and binds its
// preference fields and listeners. Listener methods have the signatures of
// veloxui.PreferenceClickFunc and veloxui.PreferenceChangeFunc.
type Preferences struct{}

// Name implements Handler.
func (Preferences) Name() string { return gen.FeaturePreferences.Name }

// Feature implements Handler.
func (Preferences) Feature() gen.Feature { return gen.FeaturePreferences }

// Applies implements Handler.
func (Preferences) Applies(def *load.Definition) bool {
	p := def.Preferences
	return p != nil && (p.Screen != "" || len(p.Fields) > 0 || len(p.Clicks) > 0 || len(p.Changes) > 0)
}

// Handle implements Handler.
func (p Preferences) Handle(def *load.Definition, unit holder.Unit) error {
	ps, err := capability[holder.PreferenceSupport](p, def, unit, "PreferenceSupport")
	if err != nil {
		return err
	}
	ctx := unit.Context()
	prefs := def.Preferences
	if prefs.Screen != "" {
		ps.PreferenceScreenInitializationBlock().Add(self(unit, "AddPreferencesFromResource").Call(jen.Lit(prefs.Screen)))
	}
	for _, f := range prefs.Fields {
		found := ps.FoundPreference(f.Key)
		found.Block.Assign(self(unit, f.Field), found.Ref())
	}
	for _, m := range prefs.Clicks {
		found := ps.FoundPreference(m.Key)
		found.Block.Add(found.Ref().Dot("SetOnPreferenceClickListener").Call(
			ctx.Qual("PreferenceClickFunc").Call(self(unit, m.Method)),
		))
	}
	for _, m := range prefs.Changes {
		found := ps.FoundPreference(m.Key)
		found.Block.Add(found.Ref().Dot("SetOnPreferenceChangeListener").Call(
			ctx.Qual("PreferenceChangeFunc").Call(self(unit, m.Method)),
		))
	}
	return nil
}
