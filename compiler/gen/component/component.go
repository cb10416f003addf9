// Package component assembles generated components: it picks the holder
// variant of a definition and runs the enabled handlers on it.
package component

import (
	"context"

	"github.com/syssam/veloxui/compiler/code"
	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/gen/handler"
	"github.com/syssam/veloxui/compiler/gen/holder"
	"github.com/syssam/veloxui/compiler/load"
)

// Assembler builds the file of a unit. It implements gen.Assembler.
type Assembler struct {
	handlers []handler.Handler
}

var _ gen.Assembler = (*Assembler)(nil)

// Option configures an Assembler.
type Option func(*Assembler)

// WithHandlers replaces the handlers run by the assembler. Handlers run in
// the given order.
func WithHandlers(hs ...handler.Handler) Option {
	return func(a *Assembler) {
		a.handlers = hs
	}
}

// NewAssembler returns an assembler running every handler.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{handlers: handler.All()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble creates the holder of the unit and runs every handler whose
// feature is enabled and whose section the definition uses. Construction
// failures are returned as a *gen.GenerationError of the unit.
func (a *Assembler) Assemble(ctx *gen.Context) (f *code.File, err error) {
	def := ctx.Definition()
	defer func() {
		if err != nil {
			f = nil
			err = gen.NewGenerationError(def.Name, "assemble", ctx.FileName(), "", err)
		}
	}()
	defer code.Catch(&err)

	unit, err := NewUnit(ctx)
	if err != nil {
		return nil, err
	}
	log := ctx.Logger()
	for _, h := range a.handlers {
		if !h.Applies(def) {
			continue
		}
		if !ctx.FeatureEnabled(h.Feature()) {
			log.Debug().Str("feature", h.Name()).Msg("feature disabled, section ignored")
			continue
		}
		if err := h.Handle(def, unit); err != nil {
			return nil, err
		}
		log.Debug().Str("feature", h.Name()).Msg("feature applied")
	}
	return unit.File(), nil
}

// NewUnit returns the holder of the definition of ctx.
func NewUnit(ctx *gen.Context) (holder.Unit, error) {
	def := ctx.Definition()
	switch def.Kind {
	case "", load.KindFragment:
		return holder.NewFragmentHolder(ctx), nil
	case load.KindBean:
		return holder.NewBeanHolder(ctx), nil
	default:
		return nil, gen.NewDefinitionError(def.Name, "kind", "unknown kind "+string(def.Kind), nil)
	}
}

// Generate generates defs with the default assembler.
//
// Example:
//
//	defs, err := load.Load("ui/*.yaml")
//	if err != nil {
//		return err
//	}
//	err = component.Generate(ctx, gen.MustNewConfig(gen.WithTarget("ui")), defs)
func Generate(ctx context.Context, cfg *gen.Config, defs []*load.Definition) error {
	return gen.NewGenerator(cfg, NewAssembler()).Generate(ctx, defs)
}
