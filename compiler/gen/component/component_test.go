package component

import (
	"context"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/syssam/veloxui/compiler/code"
	"github.com/syssam/veloxui/compiler/gen"
	"github.com/syssam/veloxui/compiler/gen/handler"
	"github.com/syssam/veloxui/compiler/load"
)

func generateTestdata(t *testing.T, opts ...gen.Option) string {
	t.Helper()
	defs, err := load.Load("testdata/*.yaml", "testdata/*.json")
	require.NoError(t, err)
	require.Len(t, defs, 3)

	dir := t.TempDir()
	cfg := gen.MustNewConfig(append([]gen.Option{gen.WithTarget(dir)}, opts...)...)
	require.NoError(t, Generate(context.Background(), cfg, defs))
	return dir
}

func readGenerated(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), path, data, parser.AllErrors)
	require.NoError(t, err, "generated file must parse")
	return string(data)
}

func TestGenerate(t *testing.T) {
	dir := generateTestdata(t, gen.WithFeatures(gen.FeatureGuards))

	home := readGenerated(t, dir, "home_gen.go")
	assert.Contains(t, home, "// "+gen.DefaultHeader)
	assert.Contains(t, home, "package ui")
	assert.Contains(t, home, "type Home_ struct {")
	assert.Contains(t, home, "func NewHome_() *Home_ {")
	assert.Contains(t, home, `f.contentView_ = inflater.Inflate("home_layout", container, false)`)
	assert.Contains(t, home, `if view, ok := hasViews.InternalFindViewByID("title_view").(*widget.Label); ok {`)
	assert.Contains(t, home, `bundle_.Put("counter", f.counter)`)
	assert.Contains(t, home, `if v, ok := veloxui.BundleValue[string](args_, "user_name"); ok {`)
	assert.Contains(t, home, "func (b *HomeBuilder_) UserName(value string) *HomeBuilder_ {")
	assert.Contains(t, home, `if itemID_ == "refresh" {`)
	assert.Contains(t, home, "f.OnPicked(resultCode, data)")
	assert.Contains(t, home, "f.Activity().RegisterReceiver(f.onBatteryLowReceiver_, f.intentFilter1_)")
	assert.Contains(t, home, "f.Track()")
	assert.Contains(t, home, "if f.viewDestroyed_ {\n\t\treturn\n\t}\n\tf.Home.Render()")
	assert.Contains(t, home, "f.Ready()")

	settings := readGenerated(t, dir, "settings_gen.go")
	assert.Contains(t, settings, "package settings")
	assert.Contains(t, settings, `f.AddPreferencesFromResource("settings_screen")`)
	assert.Contains(t, settings, `if pref, ok := f.FindPreference("sync_enabled").(veloxui.CompatPreference); ok {`)
	assert.Contains(t, settings, "f.sync = pref")
	assert.Contains(t, settings, "pref.SetOnPreferenceClickListener(veloxui.PreferenceClickFunc(f.ShowAbout))")
	assert.Contains(t, settings, "pref.SetOnPreferenceChangeListener(veloxui.PreferenceChangeFunc(f.SyncChanged))")

	store := readGenerated(t, dir, "store_gen.go")
	assert.Contains(t, store, "package data")
	assert.Contains(t, store, "func NewStore_(ctx veloxui.Context) *Store_ {")
	assert.Contains(t, store, "func (f *Store_) Fetch(id string) bool {")
	assert.Contains(t, store, "if f.context_ == nil {")
	assert.Contains(t, store, "return f.Store.Fetch(id)")
	assert.Contains(t, store, "f.Open()")
	assert.NotContains(t, store, "HomeBuilder_")
}

// app is the import path of the user types in testdata/app.
const app = "github.com/syssam/veloxui/compiler/gen/component/testdata/app"

func TestGenerate_TypeChecks(t *testing.T) {
	defs, err := load.Load("testdata/*.yaml", "testdata/*.json")
	require.NoError(t, err)
	for _, def := range defs {
		def.Path = path.Join(app, def.Package)
		for _, v := range def.Views {
			if v.Type != nil {
				v.Type = load.MustParseType("*" + app + "/widget.Label")
			}
		}
	}
	dir := t.TempDir()
	cfg := gen.MustNewConfig(gen.WithTarget(dir), gen.WithFeatures(gen.FeatureGuards))
	require.NoError(t, Generate(context.Background(), cfg, defs))

	overlay := make(map[string][]byte)
	generated := make(map[string]string)
	patterns := make([]string, 0, len(defs))
	for _, def := range defs {
		ctx := gen.NewContext(cfg, def)
		data, err := os.ReadFile(filepath.Join(dir, ctx.FileName()))
		require.NoError(t, err)
		dst, err := filepath.Abs(filepath.Join("testdata", "app", def.Package, ctx.FileName()))
		require.NoError(t, err)
		overlay[dst] = data
		generated[def.Path] = ctx.GeneratedName()
		patterns = append(patterns, "./testdata/app/"+def.Package)
	}

	pkgs, err := packages.Load(&packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context: context.Background(),
		Overlay: overlay,
	}, patterns...)
	require.NoError(t, err)
	require.Len(t, pkgs, len(defs))

	var errs []string
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			errs = append(errs, e.Error())
		}
	})
	require.Empty(t, errs, "generated code must type-check against the runtime")
	for _, p := range pkgs {
		name, ok := generated[p.PkgPath]
		require.True(t, ok, p.PkgPath)
		assert.NotNil(t, p.Types.Scope().Lookup(name), "%s declares %s", p.PkgPath, name)
	}
}

func TestGenerate_AlphaFeatureOff(t *testing.T) {
	dir := generateTestdata(t)

	home := readGenerated(t, dir, "home_gen.go")
	assert.NotContains(t, home, "Render")
	assert.Contains(t, home, "f.Ready()")

	store := readGenerated(t, dir, "store_gen.go")
	assert.NotContains(t, store, "Fetch")
}

func TestGenerate_DisabledFeature(t *testing.T) {
	dir := generateTestdata(t, gen.WithoutFeatures(gen.FeatureReceivers, gen.FeatureOptionsMenu))

	home := readGenerated(t, dir, "home_gen.go")
	assert.NotContains(t, home, "RegisterReceiver")
	assert.NotContains(t, home, "OnCreateOptionsMenu")
	assert.Contains(t, home, "f.OnPicked(resultCode, data)")
}

func TestGenerate_UnsupportedFeature(t *testing.T) {
	def := &load.Definition{
		Name:    "Store",
		Kind:    load.KindBean,
		Package: "data",
		Path:    "example.com/app/data",
		Layout:  "store_layout",
	}
	dir := t.TempDir()
	err := Generate(context.Background(), gen.MustNewConfig(gen.WithTarget(dir)), []*load.Definition{def})
	require.Error(t, err)
	assert.True(t, gen.IsGenerationError(err))
	assert.True(t, gen.IsUnsupportedFeature(err))

	var ue *gen.UnsupportedFeatureError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "Store", ue.Definition)
	assert.Equal(t, "bean", ue.Variant)
	assert.Equal(t, gen.FeatureLayout.Name, ue.Feature)

	_, err = os.Stat(filepath.Join(dir, "store_gen.go"))
	assert.True(t, os.IsNotExist(err), "no file is written for a failed unit")
}

func TestAssemble_ConstructionFailure(t *testing.T) {
	def := &load.Definition{
		Name:    "Home",
		Kind:    load.KindFragment,
		Package: "ui",
		Path:    "example.com/app/ui",
		Guards:  []*load.Guard{{Method: "OnCreate", When: load.WhenDetached}},
	}
	ctx := gen.NewContext(gen.MustNewConfig(gen.WithFeatures(gen.FeatureGuards)), def)

	f, err := NewAssembler().Assemble(ctx)
	require.Error(t, err)
	assert.Nil(t, f)
	assert.True(t, gen.IsGenerationError(err))
	assert.True(t, code.IsDuplicateName(err))

	var ge *gen.GenerationError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, "assemble", ge.Phase)
	assert.Equal(t, "home_gen.go", ge.File)
}

func TestNewUnit(t *testing.T) {
	cfg := gen.MustNewConfig()
	for kind, variant := range map[load.Kind]string{"": "fragment", load.KindFragment: "fragment", load.KindBean: "bean"} {
		def := &load.Definition{Name: "Home", Kind: kind, Package: "ui", Path: "example.com/app/ui"}
		unit, err := NewUnit(gen.NewContext(cfg, def))
		require.NoError(t, err)
		assert.Equal(t, variant, unit.Variant())
	}
	_, err := NewUnit(gen.NewContext(cfg, &load.Definition{Name: "Home", Kind: "activity"}))
	assert.True(t, gen.IsDefinitionError(err))
}

// shape captures a file independent of declaration order: each method by
// class and name, and the sorted fields of every class.
func shape(t *testing.T, f *code.File) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, c := range f.Classes() {
		var fields []string
		for _, fd := range c.Fields() {
			fields = append(fields, fd.Name())
		}
		slices.Sort(fields)
		out[c.Name()+" fields"] = strings.Join(fields, ",")
		for _, m := range c.Methods() {
			out[c.Name()+"."+m.Name()] = m.GoString()
		}
	}
	return out
}

func permutations(hs []handler.Handler) [][]handler.Handler {
	if len(hs) <= 1 {
		return [][]handler.Handler{slices.Clone(hs)}
	}
	var out [][]handler.Handler
	for i := range hs {
		rest := slices.Concat(hs[:i:i], hs[i+1:])
		for _, p := range permutations(rest) {
			out = append(out, append([]handler.Handler{hs[i]}, p...))
		}
	}
	return out
}

func TestAssemble_HandlerOrder(t *testing.T) {
	def := &load.Definition{
		Name:        "Home",
		Kind:        load.KindFragment,
		Package:     "ui",
		Path:        "example.com/app/ui",
		Layout:      "home_layout",
		Args:        []*load.Arg{{Field: "userName", Key: "user_name", Type: load.MustParseType("string")}},
		Results:     []*load.Result{{RequestCode: 7, Method: "OnPicked"}},
		Lifecycle:   []*load.LifecycleCall{{Phase: load.PhaseStart, Method: "Track"}},
		AfterInject: []string{"Ready"},
	}
	hs := []handler.Handler{
		handler.Layout{},
		handler.FragmentArgs{},
		handler.ActivityResult{},
		handler.Lifecycle{},
		handler.AfterInject{},
	}
	cfg := gen.MustNewConfig()
	assemble := func(hs []handler.Handler) map[string]string {
		f, err := NewAssembler(WithHandlers(hs...)).Assemble(gen.NewContext(cfg, def))
		require.NoError(t, err)
		return shape(t, f)
	}

	want := assemble(hs)
	require.Contains(t, want, "Home_.OnCreateView")
	require.Contains(t, want, "HomeBuilder_.UserName")
	for _, p := range permutations(hs) {
		assert.Equal(t, want, assemble(p))
	}
}
