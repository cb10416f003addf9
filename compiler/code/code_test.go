package code

import (
	"strings"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runtimePkg = "github.com/syssam/veloxui"

// catch runs fn and returns the construction failure it aborted with.
func catch(fn func()) (err error) {
	defer Catch(&err)
	fn()
	return nil
}

func newTestClass() (*File, *Class) {
	f := NewFile("example.com/app/ui", "ui")
	c := f.Class("Home_", "f")
	c.Embed("Home", jen.Id("Home"))
	return f, c
}

// =============================================================================
// File and Class Tests
// =============================================================================

func TestFile_Render(t *testing.T) {
	f, c := newTestClass()
	f.SetHeader("Code generated by veloxui. DO NOT EDIT.")
	c.Doc("Home_ extends Home.")
	c.Field("count_", jen.Int()).Init(jen.Lit(3))
	c.Constructor("NewHome_")
	m := c.Method("OnStart")
	m.Body().Add(m.SuperCall())

	out := f.GoString()
	assert.Contains(t, out, "// Code generated by veloxui. DO NOT EDIT.")
	assert.Contains(t, out, "package ui")
	assert.Contains(t, out, "// Home_ extends Home.\ntype Home_ struct {")
	assert.Contains(t, out, "\tHome\n")
	assert.Contains(t, out, "count_ int")
	assert.Contains(t, out, "func NewHome_() *Home_ {")
	assert.Contains(t, out, "f := &Home_{}")
	assert.Contains(t, out, "f.count_ = 3")
	assert.Contains(t, out, "return f")
	assert.Contains(t, out, "func (f *Home_) OnStart() {")
	assert.Contains(t, out, "f.Home.OnStart()")
}

func TestField_Doc(t *testing.T) {
	f, c := newTestClass()
	c.Field("count_", jen.Int()).Doc("count_ is guarded by mu.")
	c.Field("total_", jen.Int())

	out := f.GoString()
	assert.Contains(t, out, "\t// count_ is guarded by mu.\n\tcount_ ")
	assert.NotContains(t, out, "// total_")
}

func TestFile_QualifiedTypes(t *testing.T) {
	f, c := newTestClass()
	c.Field("args_", jen.Op("*").Qual(runtimePkg, "Bundle"))

	out := f.GoString()
	assert.Contains(t, out, `"github.com/syssam/veloxui"`)
	assert.Contains(t, out, "args_ *veloxui.Bundle")
}

func TestFile_DuplicateClass(t *testing.T) {
	f, _ := newTestClass()
	err := catch(func() { f.Class("Home_", "f") })
	require.Error(t, err)
	assert.True(t, IsDuplicateName(err))

	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "type", dup.Kind)
	assert.Equal(t, "Home_", dup.Name)
}

func TestFile_Lookup(t *testing.T) {
	f, c := newTestClass()
	got, ok := f.Lookup("Home_")
	require.True(t, ok)
	assert.Same(t, c, got)

	_, ok = f.Lookup("Other_")
	assert.False(t, ok)
	assert.Len(t, f.Classes(), 1)
}

func TestClass_DuplicateMember(t *testing.T) {
	tests := []struct {
		name string
		fn   func(c *Class)
		kind string
	}{
		{"field twice", func(c *Class) { c.Field("x_", jen.Int()); c.Field("x_", jen.Int()) }, "field"},
		{"method twice", func(c *Class) { c.Method("OnStart"); c.Method("OnStart") }, "method"},
		{"method over field", func(c *Class) { c.Field("Run", jen.Int()); c.Method("Run") }, "method"},
		{"field over embedded", func(c *Class) { c.Field("Home", jen.Int()) }, "field"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := newTestClass()
			err := catch(func() { tt.fn(c) })
			var dup *DuplicateNameError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, tt.kind, dup.Kind)
			assert.Contains(t, dup.Error(), "type Home_")
		})
	}
}

func TestClass_Lookups(t *testing.T) {
	_, c := newTestClass()
	fd := c.Field("x_", jen.Int())
	m := c.Method("OnStart")

	got, ok := c.LookupField("x_")
	require.True(t, ok)
	assert.Same(t, fd, got)

	gm, ok := c.LookupMethod("OnStart")
	require.True(t, ok)
	assert.Same(t, m, gm)

	_, ok = c.LookupMethod("OnStop")
	assert.False(t, ok)
	assert.Equal(t, "Home", c.Base().Name())
}

func TestClass_SuperWithoutBase(t *testing.T) {
	f := NewFile("example.com/app/ui", "ui")
	c := f.Class("Plain_", "p")
	err := catch(func() { c.Method("Run").SuperCall() })
	require.Error(t, err)
	assert.True(t, IsConstructionError(err))
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestClass_SecondConstructor(t *testing.T) {
	_, c := newTestClass()
	c.Constructor("NewHome_")
	err := catch(func() { c.Constructor("NewHomeAgain_") })
	assert.True(t, IsConstructionError(err))
}

func TestClass_ConstructorNameClash(t *testing.T) {
	f, c := newTestClass()
	c.Constructor("NewHome_")
	err := catch(func() { f.Class("NewHome_", "n") })
	assert.True(t, IsDuplicateName(err))
}

// =============================================================================
// Method Tests
// =============================================================================

func TestMethod_Signature(t *testing.T) {
	_, c := newTestClass()
	m := c.Method("OnOptionsItemSelected")
	item := m.Param("item", jen.Qual(runtimePkg, "MenuItem"))
	m.Returns(jen.Bool())
	m.Body().Return(m.Super(item.Ref()))

	out := m.GoString()
	assert.Contains(t, out, "func (f *Home_) OnOptionsItemSelected(item veloxui.MenuItem) bool {")
	assert.Contains(t, out, "return f.Home.OnOptionsItemSelected(item)")
	assert.Equal(t, 1, m.Results())
	assert.Len(t, m.Params(), 1)
}

func TestMethod_MultipleResults(t *testing.T) {
	_, c := newTestClass()
	m := c.Method("Lookup").Returns(jen.String(), jen.Error())
	m.Body().Return(jen.Lit(""), jen.Nil())
	assert.Contains(t, m.GoString(), "Lookup() (string, error)")
}

func TestMethod_SuperCallForwardsParams(t *testing.T) {
	_, c := newTestClass()
	m := c.Method("OnActivityResult")
	m.Param("requestCode", jen.Int())
	m.Param("resultCode", jen.Int())
	m.Param("data", jen.Op("*").Qual(runtimePkg, "Intent"))
	m.Body().Add(m.SuperCall())

	assert.Contains(t, m.GoString(), "f.Home.OnActivityResult(requestCode, resultCode, data)")
}

func TestMethod_DuplicateNames(t *testing.T) {
	t.Run("parameter", func(t *testing.T) {
		_, c := newTestClass()
		m := c.Method("Run")
		m.Param("x", jen.Int())
		err := catch(func() { m.Param("x", jen.Int()) })
		var dup *DuplicateNameError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "parameter", dup.Kind)
	})

	t.Run("local shadows parameter", func(t *testing.T) {
		_, c := newTestClass()
		m := c.Method("Run")
		m.Param("x", jen.Int())
		err := catch(func() { m.Body().If(jen.True()).Decl("x", jen.Lit(1)) })
		var dup *DuplicateNameError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "variable", dup.Kind)
	})

	t.Run("receiver", func(t *testing.T) {
		_, c := newTestClass()
		err := catch(func() { c.Method("Run").Param("f", jen.Int()) })
		assert.True(t, IsDuplicateName(err))
	})
}

func TestMethod_ConstructorRules(t *testing.T) {
	_, c := newTestClass()
	ctor := c.Constructor("NewHome_")
	assert.True(t, ctor.IsConstructor())
	assert.Same(t, ctor, c.Ctor())
	assert.True(t, IsConstructionError(catch(func() { ctor.Returns(jen.Int()) })))
	assert.True(t, IsConstructionError(catch(func() { ctor.Super() })))
}

// =============================================================================
// Block Tests
// =============================================================================

func TestBlock_NestedBlocksRenderInline(t *testing.T) {
	_, c := newTestClass()
	m := c.Method("OnCreate")
	body := m.Body()
	before := body.Block()
	body.Add(m.SuperCall())
	after := body.Block()

	after.Add(jen.Id("third").Call())
	before.Add(jen.Id("first").Call())
	before.Add(jen.Id("second").Call())

	out := m.GoString()
	first := strings.Index(out, "first()")
	second := strings.Index(out, "second()")
	super := strings.Index(out, "f.Home.OnCreate()")
	third := strings.Index(out, "third()")
	assert.True(t, first < second && second < super && super < third, out)
	assert.Equal(t, 3, body.Len())
	assert.Same(t, m, before.Method())
}

func TestBlock_BlockAt(t *testing.T) {
	_, c := newTestClass()
	m := c.Method("Run")
	body := m.Body()
	body.Add(jen.Id("a").Call())
	body.Add(jen.Id("c").Call())
	body.BlockAt(1).Add(jen.Id("b").Call())
	body.BlockAt(0).Add(jen.Id("start").Call())

	code := body.GoString()
	assert.Less(t, strings.Index(code, "start()"), strings.Index(code, "a()"))
	assert.Less(t, strings.Index(code, "a()"), strings.Index(code, "b()"))
	assert.Less(t, strings.Index(code, "b()"), strings.Index(code, "c()"))

	err := catch(func() { body.BlockAt(10) })
	assert.True(t, IsConstructionError(err))
}

func TestBlock_Decl(t *testing.T) {
	_, c := newTestClass()
	m := c.Method("Run")
	used := m.Body().Decl("args_", jen.Id("f").Dot("Arguments").Call())
	m.Body().If(jen.Add(used.Ref()).Op("!=").Nil())
	m.Body().Decl("itemID_", jen.Lit("x"))
	m.Body().DeclVar("count", jen.Int(), nil)

	out := m.GoString()
	assert.Contains(t, out, "args_ := f.Arguments()")
	assert.NotContains(t, out, "_ = args_")
	assert.Contains(t, out, `itemID_ := "x"`)
	assert.Contains(t, out, "_ = itemID_")
	assert.Contains(t, out, "var count int")
	assert.True(t, used.Used())

	err := catch(func() { m.Body().DeclVar("bad", nil, nil) })
	assert.True(t, IsConstructionError(err))
}

func TestBlock_IfElse(t *testing.T) {
	_, c := newTestClass()
	m := c.Method("Run")
	then, els := m.Body().IfElse(jen.Id("ok"))
	then.Add(jen.Id("yes").Call())
	els.Add(jen.Id("no").Call())

	out := m.GoString()
	assert.Contains(t, out, "if ok {")
	assert.Contains(t, out, "} else {")
}

func TestBlock_IfInit(t *testing.T) {
	_, c := newTestClass()
	m := c.Method("Run")
	m.Body().If(
		jen.Id("pref").Op(":=").Id("f").Dot("FindPreference").Call(jen.Lit("volume")),
		jen.Id("pref").Op("!=").Nil(),
	).Add(jen.Id("use").Call(jen.Id("pref")))

	out := m.GoString()
	assert.Contains(t, out, `if pref := f.FindPreference("volume"); pref != nil {`)
	assert.Contains(t, out, "use(pref)")

	err := catch(func() { m.Body().If() })
	assert.True(t, IsConstructionError(err))
}

func TestBlock_Switch(t *testing.T) {
	_, c := newTestClass()
	m := c.Method("OnActivityResult")
	code := m.Param("requestCode", jen.Int())
	sw := m.Body().Switch(code.Ref())
	sw.Case(jen.Lit(2)).Add(jen.Id("two").Call())
	sw.Case(jen.Lit(1)).Add(jen.Id("one").Call())
	assert.Same(t, sw.Default(), sw.Default())
	sw.Default().Return()

	out := m.GoString()
	assert.Contains(t, out, "switch requestCode {")
	assert.Contains(t, out, "case 2:")
	assert.Less(t, strings.Index(out, "case 2:"), strings.Index(out, "case 1:"))
	assert.Contains(t, out, "default:")
	assert.Equal(t, 2, sw.Len())
}

func TestBlock_Assign(t *testing.T) {
	_, c := newTestClass()
	fd := c.Field("viewDestroyed_", jen.Bool())
	m := c.Method("OnDestroyView")
	m.Body().Assign(fd.Ref(), jen.True())
	assert.Contains(t, m.GoString(), "f.viewDestroyed_ = true")
}

func TestCond(t *testing.T) {
	expr := Cond(jen.Id("v").Op("==").Nil(), jen.Qual(runtimePkg, "View"), jen.Nil(), jen.Id("v").Dot("FindViewByID").Call(jen.Lit("title")))
	out := jen.Id("x").Op(":=").Add(expr).GoString()
	assert.Contains(t, out, "func() veloxui.View {")
	assert.Contains(t, out, "if v == nil {")
	assert.Contains(t, out, `return v.FindViewByID("title")`)
}

// =============================================================================
// Abort / Catch Tests
// =============================================================================

func TestCatch_PropagatesOtherPanics(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_ = catch(func() { panic("boom") })
	})
}

func TestCatch_NoFailure(t *testing.T) {
	assert.NoError(t, catch(func() {}))
}
