package holder

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/code"
)

// FoundPreference is the lookup of one preference by key. Block runs only
// when the preference exists; Ref refers to it inside Block.
type FoundPreference struct {
	Key   string
	Block *code.Block
}

// Ref returns a reference to the found preference. It is valid inside
// Block only.
func (p *FoundPreference) Ref() *jen.Statement { return jen.Id("pref") }

// preferences overrides AddPreferencesFromResource and looks up the
// preferences of the inflated screen.
type preferences struct {
	h *ComponentHolder

	injection *code.Block
	after     *code.Block
	lookups   map[string]*FoundPreference
}

func (d *preferences) injectionBlock() *code.Block {
	if d.injection == nil {
		d.set()
	}
	return d.injection
}

func (d *preferences) afterInjectionBlock() *code.Block {
	if d.after == nil {
		d.set()
	}
	return d.after
}

func (d *preferences) baseType() jen.Code {
	if d.h.ctx.CompatPreferences() {
		return d.h.ctx.Type("CompatPreference")
	}
	return d.h.ctx.Type("Preference")
}

func (d *preferences) found(key string) *FoundPreference {
	if p, ok := d.lookups[key]; ok {
		return p
	}
	h := d.h
	block := d.injectionBlock()
	h.build("preference "+key, func() {
		if d.lookups == nil {
			d.lookups = make(map[string]*FoundPreference)
		}
		lookup := h.self("FindPreference", jen.Lit(key))
		var then *code.Block
		if h.ctx.CompatPreferences() {
			then = block.If(
				jen.List(jen.Id("pref"), jen.Id("ok")).Op(":=").Add(lookup).Assert(d.baseType()),
				jen.Id("ok"),
			)
		} else {
			then = block.If(
				jen.Id("pref").Op(":=").Add(lookup),
				jen.Id("pref").Op("!=").Nil(),
			)
		}
		d.lookups[key] = &FoundPreference{Key: key, Block: then}
	})
	return d.lookups[key]
}

func (d *preferences) set() {
	h := d.h
	h.build("preferences", func() {
		m := h.class.Method("AddPreferencesFromResource")
		m.Param("resID", jen.String())
		m.Body().Add(m.SuperCall())
		injection := m.Body().Block()
		d.after = m.Body().Block()
		d.injection = injection
	})
}
