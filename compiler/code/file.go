package code

import (
	"io"

	"github.com/dave/jennifer/jen"
)

// File is one generated source file. It owns the package-level namespace
// of the classes and constructors declared in it.
type File struct {
	path    string
	name    string
	header  string
	classes []*Class
	names   map[string]string
}

// NewFile returns an empty file of the package with the given import path
// and name.
func NewFile(pkgPath, pkgName string) *File {
	return &File{
		path:  pkgPath,
		name:  pkgName,
		names: make(map[string]string),
	}
}

// SetHeader sets the comment rendered above the package clause.
func (f *File) SetHeader(header string) { f.header = header }

// PkgPath returns the import path of the file's package.
func (f *File) PkgPath() string { return f.path }

// PkgName returns the name of the file's package.
func (f *File) PkgName() string { return f.name }

// Classes returns the classes in declaration order.
func (f *File) Classes() []*Class { return f.classes }

// Class declares a new struct type. The receiver name is used by every
// method of the class and by its constructor.
func (f *File) Class(name, receiver string) *Class {
	f.declare("type", name)
	c := &Class{
		file:    f,
		name:    name,
		recv:    receiver,
		members: make(map[string]string),
	}
	f.classes = append(f.classes, c)
	return c
}

// Lookup returns the class with the given name.
func (f *File) Lookup(name string) (*Class, bool) {
	for _, c := range f.classes {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

func (f *File) declare(kind, name string) {
	if _, ok := f.names[name]; ok {
		Abort(NewDuplicateNameError(kind, name, "package "+f.name))
	}
	f.names[name] = kind
}

// Jen renders the file into a jennifer file.
func (f *File) Jen() *jen.File {
	jf := jen.NewFilePathName(f.path, f.name)
	if f.header != "" {
		jf.HeaderComment(f.header)
	}
	for _, c := range f.classes {
		c.render(jf)
	}
	return jf
}

// Render writes the formatted source of the file to w.
func (f *File) Render(w io.Writer) error {
	return f.Jen().Render(w)
}

// GoString returns the formatted source of the file.
func (f *File) GoString() string {
	return f.Jen().GoString()
}
