// Package code is a small element builder over github.com/dave/jennifer.
//
// It models the pieces of a generated Go file that are extended
// incrementally: a File holds classes (struct types with their methods and
// constructor), a Method holds parameters and a Block, and a Block is an
// ordered, append-only list of statements, local declarations, nested
// blocks, if and switch statements. A nested block can be inserted at any
// position of its parent so that later contributors can append to a fixed
// location without locating code again.
//
// Names are checked when they are declared. A second field or method with
// the same name on a class, a second parameter or local with the same name
// in a method, or a second class or constructor with the same name in a
// file aborts construction with a *DuplicateNameError.
//
// Construction failures are raised with Abort and recovered with Catch at
// the boundary that owns the unit being built:
//
//	func build() (err error) {
//		defer code.Catch(&err)
//		...
//	}
package code
