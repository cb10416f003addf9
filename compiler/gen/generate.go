package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/veloxui/compiler/code"
	"github.com/syssam/veloxui/compiler/load"
)

// Assembler builds the file of one unit.
type Assembler interface {
	Assemble(ctx *Context) (*code.File, error)
}

// AssemblerFunc adapts a function to Assembler.
type AssemblerFunc func(ctx *Context) (*code.File, error)

// Assemble calls fn(ctx).
func (fn AssemblerFunc) Assemble(ctx *Context) (*code.File, error) { return fn(ctx) }

// Generator generates one file per definition, in parallel.
type Generator struct {
	config    *Config
	assembler Assembler
}

// NewGenerator creates a generator that assembles units with a.
//
// Example:
//
//	g := gen.NewGenerator(cfg, component.NewAssembler())
//	err := g.Generate(ctx, defs)
func NewGenerator(cfg *Config, a Assembler) *Generator {
	if cfg == nil {
		cfg = defaultConfig()
	}
	return &Generator{config: cfg, assembler: a}
}

// Generate generates every definition. Units run in parallel, bounded by
// Config.Workers, and are isolated from each other: a failing unit does not
// stop the others. Failures of all units are joined. Units not started
// when ctx is done fail with the context error.
func (g *Generator) Generate(ctx context.Context, defs []*load.Definition) error {
	if g.assembler == nil {
		return NewConfigError("Assembler", nil, "no assembler set")
	}
	if err := os.MkdirAll(g.config.Target, 0o755); err != nil {
		return NewConfigError("Target", g.config.Target, err.Error())
	}

	results := make([]error, len(defs))
	owners := make(map[string]string)
	var errg errgroup.Group
	errg.SetLimit(max(g.config.Workers, 1))
	for i, def := range defs {
		if def == nil {
			results[i] = NewGenerationError("", "validate", "", "", NewDefinitionError("", "", "definition cannot be nil", nil))
			continue
		}
		name := NewContext(g.config, def).FileName()
		if owner, ok := owners[name]; ok {
			results[i] = NewGenerationError(def.Name, "plan", name, "output file already produced by "+owner, nil)
			continue
		}
		owners[name] = def.Name
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = NewGenerationError(def.Name, "plan", name, "", err)
				return nil
			}
			results[i] = g.generate(def)
			return nil
		})
	}
	_ = errg.Wait()
	return errors.Join(results...)
}

// generate runs one unit from validation to the written file. A panic in
// any phase fails the unit only.
func (g *Generator) generate(def *load.Definition) (err error) {
	uctx := NewContext(g.config, def)
	log := uctx.Logger()
	log.Debug().Str("file", def.File).Msg("generating")

	phase := "validate"
	defer func() {
		if r := recover(); r != nil {
			err = g.fail(uctx, NewGenerationError(def.Name, phase, uctx.FileName(), "", fmt.Errorf("panic: %v", r)))
		}
	}()
	if err := Validate(def); err != nil {
		return g.fail(uctx, NewGenerationError(def.Name, phase, uctx.FileName(), "", err))
	}
	phase = "assemble"
	f, err := g.assembler.Assemble(uctx)
	if err != nil {
		var genErr *GenerationError
		if !errors.As(err, &genErr) {
			err = NewGenerationError(def.Name, "assemble", uctx.FileName(), "", err)
		}
		return g.fail(uctx, err)
	}
	phase = "write"
	path, err := g.writeFile(f, uctx.FileName())
	if err != nil {
		return g.fail(uctx, NewGenerationError(def.Name, "write", uctx.FileName(), "", err))
	}
	log.Debug().Str("path", path).Msg("file written")
	return nil
}

func (g *Generator) fail(uctx *Context, err error) error {
	log := uctx.Logger()
	log.Error().Err(err).Msg("generation failed")
	return err
}

// writeFile renders f and writes it to the target directory. Nothing is
// written when rendering fails.
func (g *Generator) writeFile(f *code.File, filename string) (string, error) {
	if g.config.Header != "" {
		f.SetHeader(g.config.Header)
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	path := filepath.Join(g.config.Target, filename)
	return path, os.WriteFile(path, buf.Bytes(), 0o644)
}
