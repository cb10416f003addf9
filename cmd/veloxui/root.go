package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/syssam/veloxui/compiler/gen"
)

// settings holds the merged configuration of a command: defaults, then the
// config file, then VELOXUI_ environment variables, then flags.
type settings struct {
	Target      string            `mapstructure:"target"`
	Header      string            `mapstructure:"header"`
	Suffix      string            `mapstructure:"suffix"`
	Workers     int               `mapstructure:"workers"`
	Runtime     string            `mapstructure:"runtime"`
	Types       map[string]string `mapstructure:"types"`
	Features    []string          `mapstructure:"features"`
	Disabled    []string          `mapstructure:"disabledFeatures"`
	Definitions []string          `mapstructure:"definitions"`
	Pretty      bool              `mapstructure:"pretty"`
	Verbose     bool              `mapstructure:"verbose"`
}

// flagKeys maps flag names to their configuration keys.
var flagKeys = map[string]string{
	"target":          "target",
	"suffix":          "suffix",
	"workers":         "workers",
	"runtime":         "runtime",
	"feature":         "features",
	"disable-feature": "disabledFeatures",
	"pretty":          "pretty",
	"verbose":         "verbose",
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "veloxui",
		Short:         "Generate component wiring from veloxui definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is ./veloxui.yaml)")
	flags.String("target", ".", "directory generated files are written to")
	flags.String("suffix", gen.DefaultSuffix, "suffix of generated names")
	flags.Int("workers", 0, "units generated in parallel (default GOMAXPROCS)")
	flags.String("runtime", gen.DefaultRuntime, "import path of the runtime package")
	flags.StringSlice("feature", nil, "enable a codegen feature, may be repeated")
	flags.StringSlice("disable-feature", nil, "disable a codegen feature, may be repeated")
	flags.Bool("pretty", false, "use pretty console logging instead of structured JSON")
	flags.BoolP("verbose", "v", false, "log every generated unit")

	root.AddCommand(
		newGenerateCmd(v),
		newWatchCmd(v),
		newFeaturesCmd(),
	)
	return root
}

// loadConfig binds flags and environment variables to v and reads the
// config file. A missing default config file is not an error.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix("VELOXUI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	// Keys without a flag.
	for _, key := range []string{"header", "definitions"} {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}
	v.SetDefault("header", gen.DefaultHeader)

	file, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("veloxui")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func readSettings(v *viper.Viper) (*settings, error) {
	s := &settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}

// logger writes to w, as JSON or pretty printed.
func (s *settings) logger(w io.Writer) zerolog.Logger {
	if s.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	level := zerolog.InfoLevel
	if s.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// config returns the codegen configuration. Every invalid option is
// reported.
func (s *settings) config(logger zerolog.Logger) (*gen.Config, error) {
	opts := []gen.Option{
		gen.WithTarget(s.Target),
		gen.WithHeader(s.Header),
		gen.WithSuffix(s.Suffix),
		gen.WithRuntime(s.Runtime),
		gen.WithLogger(logger),
	}
	if s.Workers != 0 {
		opts = append(opts, gen.WithWorkers(s.Workers))
	}
	for name, qualified := range s.Types {
		opts = append(opts, gen.WithType(name, qualified))
	}
	enabled, err := features(s.Features)
	if err != nil {
		return nil, err
	}
	disabled, err := features(s.Disabled)
	if err != nil {
		return nil, err
	}
	opts = append(opts, gen.WithFeatures(enabled...), gen.WithoutFeatures(disabled...))

	cfg, err := gen.NewConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyAll(opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// patterns returns the definition globs of a command: its arguments, or the
// configured definitions.
func (s *settings) patterns(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(s.Definitions) > 0 {
		return s.Definitions, nil
	}
	return nil, errors.New("no definition patterns given")
}

func features(names []string) ([]gen.Feature, error) {
	fs := make([]gen.Feature, 0, len(names))
	for _, name := range names {
		f, ok := gen.LookupFeature(strings.TrimSpace(name))
		if !ok {
			return nil, gen.NewConfigError("Feature", name, "unknown feature")
		}
		fs = append(fs, f)
	}
	return fs, nil
}
