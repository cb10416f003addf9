package handler

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/gen/holder"
	"github.com/syssam/veloxui/compiler/load"
)

// OptionsMenu inflates the menu resources of a definition, binds menu item
// fields and dispatches item selections by id.
//
// A selection handler takes no parameters. When the item is marked as
// handled the method returns whether it consumed the selection; otherwise
// the selection is consumed once the method returns.
type OptionsMenu struct{}

// Name implements Handler.
func (OptionsMenu) Name() string { return gen.FeatureOptionsMenu.Name }

// Feature implements Handler.
func (OptionsMenu) Feature() gen.Feature { return gen.FeatureOptionsMenu }

// Applies implements Handler.
func (OptionsMenu) Applies(def *load.Definition) bool {
	return def.Menu != nil && (len(def.Menu.Resources) > 0 || len(def.Menu.Items) > 0)
}

// Handle implements Handler.
func (o OptionsMenu) Handle(def *load.Definition, unit holder.Unit) error {
	om, err := capability[holder.OptionsMenuSupport](o, def, unit, "OptionsMenuSupport")
	if err != nil {
		return err
	}
	if len(def.Menu.Resources) > 0 {
		inflate := om.OptionsMenuInflateBody()
		for _, res := range def.Menu.Resources {
			inflate.Add(om.OptionsMenuInflaterParam().Ref().Dot("Inflate").Call(jen.Lit(res), om.OptionsMenuParam().Ref()))
		}
	}
	for _, item := range def.Menu.Items {
		if item.Field != "" {
			om.OptionsMenuBody().Assign(
				self(unit, item.Field),
				om.OptionsMenuParam().Ref().Dot("FindItem").Call(jen.Lit(item.ID)),
			)
		}
		if item.Method == "" {
			continue
		}
		selected := om.ItemSelectedMiddleBlock().If(om.ItemSelectedID().Ref().Op("==").Lit(item.ID))
		if item.Handled {
			selected.Return(self(unit, item.Method).Call())
		} else {
			selected.Add(self(unit, item.Method).Call())
			selected.Return(jen.True())
		}
	}
	return nil
}
