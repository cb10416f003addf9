// Package holder builds the structure of a generated component.
//
// A holder owns the class of one unit. Structural elements such as
// lifecycle overrides, the content view or the options menu are created on
// first access and memoized, so independent handlers can ask for the same
// location in any order and append to it. Every accessor of a lazy group
// builds the whole group at once.
//
// Holders are not safe for concurrent use. A holder panics through
// code.Abort on construction defects; callers recover with code.Catch.
package holder
