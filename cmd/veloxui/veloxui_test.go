package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/veloxui/compiler/gen"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateCmd(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "generate", "--target", dir, "--feature", "guard", "testdata/*.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `"definitions":1`)

	data, err := os.ReadFile(filepath.Join(dir, "home_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "// "+gen.DefaultHeader)
	assert.Contains(t, string(data), "func (b *HomeBuilder_) UserName(value string) *HomeBuilder_ {")
	assert.Contains(t, string(data), "f.Home.Render()")
}

func TestGenerateCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(t.TempDir(), "veloxui.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
target: `+dir+`
suffix: Gen
header: Code generated for tests. DO NOT EDIT.
definitions: [testdata/home.yaml]
disabledFeatures: [afterinject]
`), 0o644))

	_, err := execute(t, "generate", "--config", config)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "home_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "// Code generated for tests. DO NOT EDIT.")
	assert.Contains(t, string(data), "type HomeGen struct {")
	assert.NotContains(t, string(data), "f.Ready()")
	assert.NotContains(t, string(data), "Render", "guards are off by default")
}

func TestGenerateCmd_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VELOXUI_TARGET", dir)
	t.Setenv("VELOXUI_SUFFIX", "Impl")

	_, err := execute(t, "generate", "testdata/home.yaml")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "home_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "type HomeImpl struct {")
}

func TestGenerateCmd_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, err error)
	}{
		{
			name: "no patterns",
			args: []string{"generate"},
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "no definition patterns given")
			},
		},
		{
			name: "no match",
			args: []string{"generate", "testdata/*.json"},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "no definitions match testdata/*.json")
			},
		},
		{
			name: "unknown feature",
			args: []string{"generate", "--feature", "animations", "testdata/home.yaml"},
			check: func(t *testing.T, err error) {
				assert.True(t, gen.IsConfigError(err))
			},
		},
		{
			name: "invalid suffix",
			args: []string{"generate", "--suffix=a-b", "testdata/home.yaml"},
			check: func(t *testing.T, err error) {
				assert.True(t, gen.IsConfigError(err))
			},
		},
		{
			name: "missing config file",
			args: []string{"generate", "--config", "testdata/missing.yaml", "testdata/home.yaml"},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "read config")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--target", t.TempDir()}, tt.args...)
			_, err := execute(t, args...)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestFeaturesCmd(t *testing.T) {
	out, err := execute(t, "features")
	require.NoError(t, err)
	for _, f := range gen.AllFeatures {
		assert.Contains(t, out, f.Name)
	}
	assert.Contains(t, out, "alpha")
}

func TestWatcher(t *testing.T) {
	src := t.TempDir()
	target := t.TempDir()
	cfg := gen.MustNewConfig(gen.WithTarget(target))
	patterns := []string{filepath.Join(src, "*.yaml")}

	ctx, cancel := context.WithCancel(context.Background())
	w := &watcher{
		patterns: patterns,
		debounce: 20 * time.Millisecond,
		logger:   zerolog.Nop(),
		run: func(ctx context.Context) error {
			return generate(ctx, cfg, zerolog.Nop(), patterns)
		},
	}
	done := make(chan error, 1)
	go func() { done <- w.watch(ctx) }()

	def, err := os.ReadFile("testdata/home.yaml")
	require.NoError(t, err)
	// The first generation finds nothing; give the watcher time to start.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(src, "home.yaml"), def, 0o644))

	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(target, "home_gen.go"))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_Matches(t *testing.T) {
	w := &watcher{patterns: []string{"ui/**/*.yaml", "defs/home.json"}}
	assert.True(t, w.matches("ui/home.yaml"))
	assert.True(t, w.matches("ui/settings/screen.yaml"))
	assert.True(t, w.matches("./defs/home.json"))
	assert.False(t, w.matches("ui/home_gen.go"))
	assert.False(t, w.matches("defs/other.json"))
}
