package code

import (
	"github.com/dave/jennifer/jen"
)

// Method is a method of a class, or its constructor. Parameters and local
// variables share one namespace with the receiver name.
type Method struct {
	class   *Class
	name    string
	doc     string
	params  []*Param
	results []jen.Code
	body    *Block
	scope   map[string]string
	ctor    bool
}

func newMethod(c *Class, name string) *Method {
	m := &Method{
		class: c,
		name:  name,
		scope: map[string]string{c.recv: "receiver"},
	}
	m.body = &Block{method: m}
	return m
}

// Name returns the method name.
func (m *Method) Name() string { return m.name }

// Class returns the class the method belongs to.
func (m *Method) Class() *Class { return m.class }

// IsConstructor reports whether m is the constructor of its class.
func (m *Method) IsConstructor() bool { return m.ctor }

// Doc sets the doc comment of the method.
func (m *Method) Doc(doc string) *Method {
	m.doc = doc
	return m
}

// Param appends a parameter.
func (m *Method) Param(name string, typ jen.Code) *Param {
	m.declare("parameter", name)
	p := &Param{name: name, typ: typ}
	m.params = append(m.params, p)
	return p
}

// Params returns the parameters in declaration order.
func (m *Method) Params() []*Param { return m.params }

// Returns sets the result types. The constructor result is fixed.
func (m *Method) Returns(types ...jen.Code) *Method {
	if m.ctor {
		Abort(NewConstructionError(m.name, "constructor results are fixed"))
	}
	m.results = types
	return m
}

// Results returns the number of results.
func (m *Method) Results() int { return len(m.results) }

// Body returns the method body.
func (m *Method) Body() *Block { return m.body }

// Super returns a call of the same method on the embedded base type.
func (m *Method) Super(args ...jen.Code) *jen.Statement {
	if m.ctor {
		Abort(NewConstructionError(m.name, "constructor has no base implementation"))
	}
	return m.class.Super().Dot(m.name).Call(args...)
}

// SuperCall returns a call of the base implementation that forwards every
// parameter in order.
func (m *Method) SuperCall() *jen.Statement {
	args := make([]jen.Code, len(m.params))
	for i, p := range m.params {
		args[i] = p.Ref()
	}
	return m.Super(args...)
}

func (m *Method) declare(kind, name string) {
	if prev, ok := m.scope[name]; ok {
		Abort(&DuplicateNameError{Kind: kind, Name: name, Scope: m.class.name + "." + m.name + " (" + prev + ")"})
	}
	m.scope[name] = kind
}

func (m *Method) decl() jen.Code {
	s := jen.Func()
	if !m.ctor {
		s.Params(jen.Id(m.class.recv).Op("*").Id(m.class.name))
	}
	s.Id(m.name).ParamsFunc(func(g *jen.Group) {
		for _, p := range m.params {
			g.Id(p.name).Add(p.typ)
		}
	})
	switch len(m.results) {
	case 0:
	case 1:
		s.Add(m.results[0])
	default:
		s.Parens(jen.List(m.results...))
	}
	if !m.ctor {
		return s.Block(m.body.Code()...)
	}
	c := m.class
	return s.BlockFunc(func(g *jen.Group) {
		g.Id(c.recv).Op(":=").Op("&").Id(c.name).Values()
		for _, f := range c.fields {
			if f.init != nil {
				g.Add(f.Ref()).Op("=").Add(f.init)
			}
		}
		for _, code := range m.body.Code() {
			g.Add(code)
		}
		g.Return(jen.Id(c.recv))
	})
}

// GoString returns the formatted source of the method declaration.
func (m *Method) GoString() string {
	f := jen.NewFilePathName(m.class.file.path, m.class.file.name)
	addDecl(f, m.doc, m.decl())
	return f.GoString()
}

// Param is a method parameter.
type Param struct {
	name string
	typ  jen.Code
}

// Name returns the parameter name.
func (p *Param) Name() string { return p.name }

// Type returns the parameter type.
func (p *Param) Type() jen.Code { return p.typ }

// Ref returns a reference to the parameter.
func (p *Param) Ref() *jen.Statement { return jen.Id(p.name) }

// Var is a local variable declared in a block.
type Var struct {
	name string
	typ  jen.Code
	init jen.Code
	refs int
}

// Name returns the variable name.
func (v *Var) Name() string { return v.name }

// Ref returns a reference to the variable and marks it used.
func (v *Var) Ref() *jen.Statement {
	v.refs++
	return jen.Id(v.name)
}

// Used reports whether the variable was referenced.
func (v *Var) Used() bool { return v.refs > 0 }
