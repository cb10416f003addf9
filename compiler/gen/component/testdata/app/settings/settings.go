// Package settings is the user side of the Settings definition.
package settings

import "github.com/syssam/veloxui"

type Settings struct {
	veloxui.Fragment

	sync veloxui.CompatPreference
}

func (s *Settings) ShowAbout(p veloxui.Preference) bool { return p.Key() == "about" }

func (s *Settings) SyncChanged(p veloxui.Preference, newValue any) bool {
	_, ok := newValue.(bool)
	return ok && s.sync != nil
}
