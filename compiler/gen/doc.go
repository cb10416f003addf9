// Package gen provides code generation for veloxui component definitions.
//
// This package turns a load.Definition into one generated Go file. The
// generated type embeds the user-authored type, overrides the lifecycle
// methods the enabled features need and always carries a constructor, an
// init routine and a companion builder.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Definition files (*.yaml, *.json)
//	        ↓
//	   load.Definition
//	        ↓
//	   Validate
//	        ↓
//	   Context (config, definition, class under synthesis)
//	        ↓
//	   Assembler (holder + feature handlers, see package component)
//	        ↓
//	   Generated code (<name>_gen.go)
//
// # Key Types
//
//   - Config: Global configuration for code generation
//   - Context: Per-unit state threaded through holders and handlers
//   - Feature: Feature-flags toggling handlers
//   - Generator: Parallel generation of many definitions
//
// # Error Handling
//
// The package uses structured error types for better error handling:
//
//   - DefinitionError: Definition validation errors
//   - ConfigError: Configuration errors
//   - UnsupportedFeatureError: Feature used with a component variant that
//     lacks the capability it needs
//   - GenerationError: Failure of one unit, naming its definition
//
// Example error handling:
//
//	if err := g.Generate(ctx, defs); err != nil {
//	    if gen.IsGenerationError(err) {
//	        // at least one definition failed; the others were written
//	    }
//	}
//
// # Configuration
//
// Use functional options to configure code generation:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./ui"),
//	    gen.WithWorkers(4),
//	    gen.WithFeatures(gen.FeatureGuards),
//	)
package gen
