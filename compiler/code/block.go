package code

import (
	"github.com/dave/jennifer/jen"
)

// item is an element of a block.
type item interface {
	code() []jen.Code
}

// Block is an ordered, append-only sequence of statements. Nested blocks
// created with Block or BlockAt render inline, without braces.
type Block struct {
	method *Method
	items  []item
}

// Method returns the method the block belongs to.
func (b *Block) Method() *Method { return b.method }

// Len returns the number of items directly held by the block.
func (b *Block) Len() int { return len(b.items) }

// Add appends each code as one statement.
func (b *Block) Add(codes ...jen.Code) *Block {
	for _, c := range codes {
		b.items = append(b.items, stmt{c})
	}
	return b
}

// Assign appends target = value.
func (b *Block) Assign(target, value jen.Code) *Block {
	return b.Add(jen.Add(target).Op("=").Add(value))
}

// Return appends a return statement.
func (b *Block) Return(values ...jen.Code) *Block {
	return b.Add(jen.Return(values...))
}

// Decl appends name := init and returns the declared variable.
func (b *Block) Decl(name string, init jen.Code) *Var {
	return b.DeclVar(name, nil, init)
}

// DeclVar appends a variable declaration with an explicit type. init may
// be nil for a zero value.
func (b *Block) DeclVar(name string, typ, init jen.Code) *Var {
	if typ == nil && init == nil {
		Abort(NewConstructionError(name, "variable needs a type or an initial value"))
	}
	b.method.declare("variable", name)
	v := &Var{name: name, typ: typ, init: init}
	b.items = append(b.items, decl{v})
	return v
}

// Block appends an empty nested block and returns it.
func (b *Block) Block() *Block {
	return b.BlockAt(len(b.items))
}

// BlockAt inserts an empty nested block before the item at index i and
// returns it. i may equal Len to append.
func (b *Block) BlockAt(i int) *Block {
	if i < 0 || i > len(b.items) {
		Abort(NewConstructionError(b.method.name, "block index out of range"))
	}
	nb := &Block{method: b.method}
	b.items = append(b.items, nil)
	copy(b.items[i+1:], b.items[i:])
	b.items[i] = nb
	return nb
}

// If appends if cond { } and returns its body. A leading simple
// statement may be passed before the condition:
//
//	b.If(jen.Id("v").Op(":=").Id("get").Call(), jen.Id("v").Op("!=").Nil())
func (b *Block) If(cond ...jen.Code) *Block {
	then, _ := b.ifElse(cond, false)
	return then
}

// IfElse appends if cond { } else { } and returns both bodies.
func (b *Block) IfElse(cond ...jen.Code) (then, els *Block) {
	return b.ifElse(cond, true)
}

func (b *Block) ifElse(cond []jen.Code, withElse bool) (*Block, *Block) {
	if len(cond) == 0 {
		Abort(NewConstructionError(b.method.name, "if statement needs a condition"))
	}
	s := &ifStmt{cond: cond, then: &Block{method: b.method}}
	if withElse {
		s.els = &Block{method: b.method}
	}
	b.items = append(b.items, s)
	return s.then, s.els
}

// Switch appends switch tag { } and returns it.
func (b *Block) Switch(tag jen.Code) *Switch {
	s := &Switch{method: b.method, tag: tag}
	b.items = append(b.items, s)
	return s
}

// Code returns the statements of the block with nested blocks flattened.
func (b *Block) Code() []jen.Code {
	var out []jen.Code
	for _, it := range b.items {
		out = append(out, it.code()...)
	}
	return out
}

func (b *Block) code() []jen.Code { return b.Code() }

// GoString returns the formatted statements of the block in braces.
func (b *Block) GoString() string {
	return jen.Block(b.Code()...).GoString()
}

// Switch is a switch statement with one block per case.
type Switch struct {
	method *Method
	tag    jen.Code
	cases  []*switchCase
	def    *Block
}

type switchCase struct {
	values []jen.Code
	body   *Block
}

// Case appends a case clause and returns its body.
func (s *Switch) Case(values ...jen.Code) *Block {
	c := &switchCase{values: values, body: &Block{method: s.method}}
	s.cases = append(s.cases, c)
	return c.body
}

// Default returns the body of the default clause, creating it once.
func (s *Switch) Default() *Block {
	if s.def == nil {
		s.def = &Block{method: s.method}
	}
	return s.def
}

// Len returns the number of case clauses, default excluded.
func (s *Switch) Len() int { return len(s.cases) }

func (s *Switch) code() []jen.Code {
	return []jen.Code{jen.Switch(s.tag).BlockFunc(func(g *jen.Group) {
		for _, c := range s.cases {
			g.Case(c.values...).Block(c.body.Code()...)
		}
		if s.def != nil {
			g.Default().Block(s.def.Code()...)
		}
	})}
}

type stmt struct {
	c jen.Code
}

func (s stmt) code() []jen.Code { return []jen.Code{s.c} }

type decl struct {
	v *Var
}

func (d decl) code() []jen.Code {
	var s *jen.Statement
	switch {
	case d.v.typ == nil:
		s = jen.Id(d.v.name).Op(":=").Add(d.v.init)
	case d.v.init == nil:
		s = jen.Var().Id(d.v.name).Add(d.v.typ)
	default:
		s = jen.Var().Id(d.v.name).Add(d.v.typ).Op("=").Add(d.v.init)
	}
	if d.v.Used() {
		return []jen.Code{s}
	}
	return []jen.Code{s, jen.Id("_").Op("=").Id(d.v.name)}
}

type ifStmt struct {
	cond []jen.Code
	then *Block
	els  *Block
}

func (s *ifStmt) code() []jen.Code {
	st := jen.If(s.cond...).Block(s.then.Code()...)
	if s.els != nil {
		st.Else().Block(s.els.Code()...)
	}
	return []jen.Code{st}
}

// Cond returns an expression of type typ that evaluates to then when cond
// holds and to els otherwise.
func Cond(cond, typ, then, els jen.Code) *jen.Statement {
	return jen.Func().Params().Add(typ).Block(
		jen.If(cond).Block(jen.Return(then)),
		jen.Return(els),
	).Call()
}
