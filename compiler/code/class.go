package code

import (
	"github.com/dave/jennifer/jen"
)

// Class is a generated struct type with its methods. Fields, embedded types
// and methods share one namespace.
type Class struct {
	file    *File
	name    string
	recv    string
	doc     string
	base    *Field
	fields  []*Field
	methods []*Method
	ctor    *Method
	members map[string]string
}

// Name returns the type name.
func (c *Class) Name() string { return c.name }

// Receiver returns the receiver name used by the class methods.
func (c *Class) Receiver() string { return c.recv }

// File returns the file the class is declared in.
func (c *Class) File() *File { return c.file }

// Doc sets the doc comment of the type.
func (c *Class) Doc(doc string) *Class {
	c.doc = doc
	return c
}

// Self returns a reference to the receiver.
func (c *Class) Self() *jen.Statement { return jen.Id(c.recv) }

// Embed adds an embedded type. name is the field name the embedded type
// is accessed by. The first embedded type is the base of the class.
func (c *Class) Embed(name string, typ jen.Code) *Field {
	f := c.addField("field", name, typ)
	f.embedded = true
	if c.base == nil {
		c.base = f
	}
	return f
}

// Field adds a named field.
func (c *Class) Field(name string, typ jen.Code) *Field {
	return c.addField("field", name, typ)
}

func (c *Class) addField(kind, name string, typ jen.Code) *Field {
	c.declare(kind, name)
	f := &Field{class: c, name: name, typ: typ}
	c.fields = append(c.fields, f)
	return f
}

// LookupField returns the field with the given name.
func (c *Class) LookupField(name string) (*Field, bool) {
	for _, f := range c.fields {
		if f.name == name {
			return f, true
		}
	}
	return nil, false
}

// Fields returns the fields in declaration order, embedded types included.
func (c *Class) Fields() []*Field { return c.fields }

// Method declares a new method on the class.
func (c *Class) Method(name string) *Method {
	c.declare("method", name)
	m := newMethod(c, name)
	c.methods = append(c.methods, m)
	return m
}

// LookupMethod returns the method with the given name.
func (c *Class) LookupMethod(name string) (*Method, bool) {
	for _, m := range c.methods {
		if m.name == name {
			return m, true
		}
	}
	return nil, false
}

// Methods returns the methods in declaration order.
func (c *Class) Methods() []*Method { return c.methods }

// Constructor declares the package-level function that allocates the
// class, assigns field initial values and runs the constructor body. It
// returns a pointer to the class.
func (c *Class) Constructor(name string) *Method {
	if c.ctor != nil {
		Abort(NewConstructionError(name, "class "+c.name+" already has constructor "+c.ctor.name))
	}
	c.file.declare("function", name)
	m := newMethod(c, name)
	m.ctor = true
	m.results = []jen.Code{jen.Op("*").Id(c.name)}
	c.ctor = m
	return m
}

// Ctor returns the constructor, or nil when none was declared.
func (c *Class) Ctor() *Method { return c.ctor }

// Base returns the embedded base type. It aborts when the class has none.
func (c *Class) Base() *Field {
	if c.base == nil {
		Abort(NewConstructionError(c.name, "class has no base type"))
	}
	return c.base
}

// Super returns a reference to the embedded base value.
func (c *Class) Super() *jen.Statement {
	return c.Base().Ref()
}

func (c *Class) declare(kind, name string) {
	if _, ok := c.members[name]; ok {
		Abort(NewDuplicateNameError(kind, name, "type "+c.name))
	}
	c.members[name] = kind
}

func (c *Class) render(f *jen.File) {
	addDecl(f, c.doc, jen.Type().Id(c.name).StructFunc(func(g *jen.Group) {
		for _, f := range c.fields {
			if f.embedded {
				g.Add(f.typ)
				continue
			}
			if f.doc != "" {
				g.Comment(f.doc)
			}
			g.Id(f.name).Add(f.typ)
		}
	}))
	if c.ctor != nil {
		addDecl(f, c.ctor.doc, c.ctor.decl())
	}
	for _, m := range c.methods {
		addDecl(f, m.doc, m.decl())
	}
}

// addDecl adds a top-level declaration with its doc comment.
func addDecl(f *jen.File, doc string, decl jen.Code) {
	if doc != "" {
		f.Comment(doc)
	}
	f.Add(decl)
	f.Line()
}

// Field is a member of a class.
type Field struct {
	class    *Class
	name     string
	typ      jen.Code
	init     jen.Code
	doc      string
	embedded bool
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Type returns the field type.
func (f *Field) Type() jen.Code { return f.typ }

// Ref returns a reference to the field through the class receiver.
func (f *Field) Ref() *jen.Statement {
	return jen.Id(f.class.recv).Dot(f.name)
}

// Init sets the value the constructor assigns to the field.
func (f *Field) Init(value jen.Code) *Field {
	f.init = value
	return f
}

// Doc sets the comment written above the field.
func (f *Field) Doc(doc string) *Field {
	f.doc = doc
	return f
}

// Initial returns the value the constructor assigns, or nil.
func (f *Field) Initial() jen.Code { return f.init }
