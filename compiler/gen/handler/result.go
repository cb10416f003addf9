package handler

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/gen/holder"
	"github.com/syssam/veloxui/compiler/load"
)

// ActivityResult calls result handlers from OnActivityResult by request
// code.
type ActivityResult struct{}

// Name implements Handler.
func (ActivityResult) Name() string { return gen.FeatureActivityResult.Name }

// Feature implements Handler.
func (ActivityResult) Feature() gen.Feature { return gen.FeatureActivityResult }

// Applies implements Handler.
func (ActivityResult) Applies(def *load.Definition) bool { return len(def.Results) > 0 }

// Handle implements Handler.
func (a ActivityResult) Handle(def *load.Definition, unit holder.Unit) error {
	ar, err := capability[holder.ActivityResultSupport](a, def, unit, "ActivityResultSupport")
	if err != nil {
		return err
	}
	for _, r := range def.Results {
		args := make([]jen.Code, 0, len(r.Params))
		for _, p := range r.Params {
			switch p {
			case "resultCode":
				args = append(args, ar.ActivityResultCodeParam().Ref())
			case "data":
				args = append(args, ar.ActivityResultDataParam().Ref())
			}
		}
		ar.ActivityResultCaseBlock(r.RequestCode).Add(self(unit, r.Method).Call(args...))
	}
	return nil
}
