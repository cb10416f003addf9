package gen

import (
	"errors"
	"fmt"
	"slices"

	"github.com/syssam/veloxui/compiler/load"
)

// Validate checks a definition before generation. It reports every
// problem found, joined.
func Validate(def *load.Definition) error {
	if def == nil {
		return NewDefinitionError("", "", "definition cannot be nil", nil)
	}
	v := &validator{def: def}
	v.header()
	v.views()
	v.state()
	v.args()
	v.menu()
	v.results()
	v.receivers()
	v.preferences()
	v.lifecycle()
	v.guards()
	for i, m := range def.AfterInject {
		v.ident(fmt.Sprintf("afterInject[%d]", i), "method", m)
	}
	return errors.Join(v.errs...)
}

type validator struct {
	def  *load.Definition
	errs []error
}

func (v *validator) fail(section, format string, args ...any) {
	v.errs = append(v.errs, NewDefinitionError(v.def.Name, section, fmt.Sprintf(format, args...), nil))
}

func (v *validator) ident(section, what, name string) {
	if !isIdent(name) {
		v.fail(section, "%s %q is not a valid identifier", what, name)
	}
}

func (v *validator) typ(section string, t *load.TypeRef) {
	if t == nil {
		v.fail(section, "missing type")
	}
}

func (v *validator) header() {
	d := v.def
	v.ident("name", "name", d.Name)
	if d.Path == "" {
		v.fail("path", "import path cannot be empty")
	}
	v.ident("package", "package", d.Package)
	switch d.Kind {
	case "", load.KindFragment, load.KindBean:
	default:
		v.fail("kind", "unknown kind %q", d.Kind)
	}
	switch d.Options.Preferences {
	case "", load.PreferencesPlatform, load.PreferencesCompat:
	default:
		v.fail("options.preferences", "unknown preference variant %q", d.Options.Preferences)
	}
}

func (v *validator) views() {
	for i, view := range v.def.Views {
		section := fmt.Sprintf("views[%d]", i)
		v.ident(section, "field", view.Field)
		if view.ID == "" {
			v.fail(section, "view id cannot be empty")
		}
	}
}

func (v *validator) state() {
	for i, s := range v.def.State {
		section := fmt.Sprintf("state[%d]", i)
		v.ident(section, "field", s.Field)
		v.typ(section, s.Type)
	}
}

func (v *validator) args() {
	keys := make(map[string]string)
	for i, a := range v.def.Args {
		section := fmt.Sprintf("args[%d]", i)
		v.ident(section, "field", a.Field)
		v.typ(section, a.Type)
		key := a.Key
		if key == "" {
			key = bundleKey(a.Field)
		}
		if prev, ok := keys[key]; ok {
			v.fail(section, "argument key %q already used by field %q", key, prev)
		}
		keys[key] = a.Field
	}
}

func (v *validator) menu() {
	if v.def.Menu == nil {
		return
	}
	for i, item := range v.def.Menu.Items {
		section := fmt.Sprintf("menu.items[%d]", i)
		if item.ID == "" {
			v.fail(section, "menu item id cannot be empty")
		}
		if item.Field == "" && item.Method == "" {
			v.fail(section, "menu item needs a field or a method")
		}
		if item.Field != "" {
			v.ident(section, "field", item.Field)
		}
		if item.Method != "" {
			v.ident(section, "method", item.Method)
		}
	}
}

func (v *validator) results() {
	for i, r := range v.def.Results {
		section := fmt.Sprintf("results[%d]", i)
		v.ident(section, "method", r.Method)
		for _, p := range r.Params {
			if p != "resultCode" && p != "data" {
				v.fail(section, "unknown result parameter %q", p)
			}
		}
	}
}

func (v *validator) receivers() {
	for i, r := range v.def.Receivers {
		section := fmt.Sprintf("receivers[%d]", i)
		v.ident(section, "method", r.Method)
		if len(r.Actions) == 0 {
			v.fail(section, "receiver needs at least one action")
		}
		switch r.RegisterAt {
		case "", load.OnCreateOnDestroy, load.OnStartOnStop, load.OnResumeOnPause, load.OnAttachOnDetach:
		default:
			v.fail(section, "unknown registerAt %q", r.RegisterAt)
		}
	}
}

func (v *validator) preferences() {
	p := v.def.Preferences
	if p == nil {
		return
	}
	for i, f := range p.Fields {
		section := fmt.Sprintf("preferences.fields[%d]", i)
		v.ident(section, "field", f.Field)
		if f.Key == "" {
			v.fail(section, "preference key cannot be empty")
		}
	}
	listeners := []struct {
		section string
		methods []*load.PreferenceMethod
	}{
		{"preferences.clicks", p.Clicks},
		{"preferences.changes", p.Changes},
	}
	for _, l := range listeners {
		for i, m := range l.methods {
			section := fmt.Sprintf("%s[%d]", l.section, i)
			v.ident(section, "method", m.Method)
			if m.Key == "" {
				v.fail(section, "preference key cannot be empty")
			}
		}
	}
}

func (v *validator) lifecycle() {
	for i, l := range v.def.Lifecycle {
		section := fmt.Sprintf("lifecycle[%d]", i)
		v.ident(section, "method", l.Method)
		if !slices.Contains(load.Phases, l.Phase) {
			v.fail(section, "unknown phase %q", l.Phase)
		}
	}
}

func (v *validator) guards() {
	for i, g := range v.def.Guards {
		section := fmt.Sprintf("guards[%d]", i)
		v.ident(section, "method", g.Method)
		if _, ok := reserved[g.Method]; ok {
			v.fail(section, "method %q is declared by the runtime base type", g.Method)
		}
		if g.When != load.WhenViewDestroyed && g.When != load.WhenDetached {
			v.fail(section, "unknown guard condition %q", g.When)
		}
		for j, p := range g.Params {
			v.ident(fmt.Sprintf("%s.params[%d]", section, j), "parameter", p.Name)
			v.typ(fmt.Sprintf("%s.params[%d]", section, j), p.Type)
		}
		for j, r := range g.Results {
			v.typ(fmt.Sprintf("%s.results[%d]", section, j), r)
		}
	}
}
