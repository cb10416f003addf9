package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/gen/component"
	"github.com/syssam/veloxui/compiler/load"
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [globs...]",
		Short: "Generate one file per definition matching the globs",
		Example: `  veloxui generate ui/home.yaml
  veloxui generate --target ui --feature guard 'ui/**/*.yaml'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSettings(v)
			if err != nil {
				return err
			}
			patterns, err := s.patterns(args)
			if err != nil {
				return err
			}
			logger := s.logger(cmd.ErrOrStderr())
			cfg, err := s.config(logger)
			if err != nil {
				return err
			}
			return generate(cmd.Context(), cfg, logger, patterns)
		},
	}
}

// generate loads every definition matching patterns and generates them.
// Nothing is generated when a definition file cannot be loaded.
func generate(ctx context.Context, cfg *gen.Config, logger zerolog.Logger, patterns []string) error {
	defs, err := load.Load(patterns...)
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		return fmt.Errorf("no definitions match %s", strings.Join(patterns, " "))
	}
	if err := component.Generate(ctx, cfg, defs); err != nil {
		return err
	}
	logger.Info().Int("definitions", len(defs)).Str("target", cfg.Target).Msg("generated")
	return nil
}

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List the codegen features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTAGE\tDEFAULT\tDESCRIPTION")
			for _, f := range gen.AllFeatures {
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", f.Name, f.Stage, f.Default, f.Description)
			}
			return w.Flush()
		},
	}
}
