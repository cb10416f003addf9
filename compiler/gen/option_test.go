package gen

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHeader(t *testing.T) {
	cfg := &Config{}
	err := WithHeader("// custom header")(cfg)
	require.NoError(t, err)
	assert.Equal(t, "// custom header", cfg.Header)
}

func TestWithTarget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, WithTarget("./ui")(cfg))
		assert.Equal(t, "./ui", cfg.Target)
	})

	t.Run("empty", func(t *testing.T) {
		err := WithTarget("")(&Config{})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithSuffix(t *testing.T) {
	tests := []struct {
		suffix  string
		wantErr bool
	}{
		{"_", false},
		{"Gen", false},
		{"_x2", false},
		{"", true},
		{"-", true},
		{" ", true},
	}
	for _, tt := range tests {
		t.Run(tt.suffix, func(t *testing.T) {
			cfg := &Config{}
			err := WithSuffix(tt.suffix)(cfg)
			if tt.wantErr {
				assert.True(t, IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.suffix, cfg.Suffix)
		})
	}
}

func TestWithWorkers(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, WithWorkers(3)(cfg))
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, IsConfigError(WithWorkers(0)(cfg)))
	assert.Equal(t, 3, cfg.Workers)
}

func TestWithRuntime(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, WithRuntime("example.com/ui/runtime")(cfg))
	assert.Equal(t, "example.com/ui/runtime", cfg.Runtime)
	assert.True(t, IsConfigError(WithRuntime("")(cfg)))
}

func TestWithType(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, WithType("Bundle", "example.com/compat.Bundle")(cfg))
	assert.Equal(t, map[string]string{"Bundle": "example.com/compat.Bundle"}, cfg.Types)

	for _, bad := range []string{"Bundle", ".Bundle", "example.com/compat.", "example.com/compat.1x"} {
		assert.True(t, IsConfigError(WithType("Bundle", bad)(cfg)), bad)
	}
	assert.True(t, IsConfigError(WithType("", "example.com/compat.Bundle")(cfg)))
}

func TestWithFeatures(t *testing.T) {
	t.Run("single feature", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, WithFeatures(FeatureGuards)(cfg))
		require.Len(t, cfg.Features, 1)
		assert.Equal(t, FeatureGuards.Name, cfg.Features[0].Name)
	})

	t.Run("appends to existing", func(t *testing.T) {
		cfg := &Config{Features: []Feature{FeatureGuards}}
		require.NoError(t, WithFeatures(FeatureViews, FeatureLayout)(cfg))
		assert.Len(t, cfg.Features, 3)
	})

	t.Run("disabled wins", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, cfg.Apply(WithFeatures(FeatureGuards), WithoutFeatures(FeatureGuards, FeatureViews)))

		enabled, err := cfg.FeatureEnabled(FeatureGuards.Name)
		require.NoError(t, err)
		assert.False(t, enabled)

		enabled, err = cfg.FeatureEnabled(FeatureViews.Name)
		require.NoError(t, err)
		assert.False(t, enabled)
	})
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{}
	require.NoError(t, WithLogger(zerolog.New(&buf))(cfg))
	cfg.Logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestConfigApply(t *testing.T) {
	t.Run("stops at first error", func(t *testing.T) {
		cfg := &Config{}
		calls := 0
		count := func(*Config) error { calls++; return nil }
		err := cfg.Apply(count, WithTarget(""), count)
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("nil options", func(t *testing.T) {
		cfg := &Config{}
		assert.NoError(t, cfg.Apply())
	})
}

func TestConfigApplyAll(t *testing.T) {
	cfg := &Config{}
	err := cfg.ApplyAll(WithTarget(""), WithWorkers(-1), WithHeader("ok"))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "Target")
	assert.Contains(t, err.Error(), "Workers")
	assert.Equal(t, "ok", cfg.Header)
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultHeader, cfg.Header)
		assert.Equal(t, DefaultSuffix, cfg.Suffix)
		assert.Equal(t, DefaultRuntime, cfg.Runtime)
		assert.Equal(t, ".", cfg.Target)
		assert.Positive(t, cfg.Workers)
	})

	t.Run("with options", func(t *testing.T) {
		cfg, err := NewConfig(WithTarget("./out"), WithSuffix("Gen"))
		require.NoError(t, err)
		assert.Equal(t, "./out", cfg.Target)
		assert.Equal(t, "Gen", cfg.Suffix)
	})

	t.Run("error", func(t *testing.T) {
		cfg, err := NewConfig(WithWorkers(0))
		assert.Nil(t, cfg)
		assert.True(t, IsConfigError(err))
	})
}

func TestMustNewConfig(t *testing.T) {
	assert.NotPanics(t, func() { MustNewConfig(WithTarget("./out")) })
	assert.Panics(t, func() { MustNewConfig(WithTarget("")) })
}

func TestFeatureEnabled(t *testing.T) {
	cfg := MustNewConfig()
	for _, f := range AllFeatures {
		enabled, err := cfg.FeatureEnabled(f.Name)
		require.NoError(t, err)
		assert.Equal(t, f.Default, enabled, f.Name)
	}

	_, err := cfg.FeatureEnabled("unknown")
	assert.True(t, IsConfigError(err))

	f, ok := LookupFeature("guard")
	require.True(t, ok)
	assert.Equal(t, Alpha, f.Stage)
	assert.Equal(t, "alpha", f.Stage.String())
	assert.Equal(t, "unknown", FeatureStage(0).String())
}
