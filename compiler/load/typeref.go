package load

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Form is the shape of a type reference.
type Form uint8

// Type reference forms.
const (
	FormNamed Form = iota
	FormPointer
	FormSlice
	FormMap
)

// TypeRef is a Go type written as a string in a definition file, for
// example "int", "[]string", "map[string]int", "time.Duration" or
// "*example.com/app/model.User".
type TypeRef struct {
	Form    Form
	PkgPath string   // Import path of a named type; empty for builtins and local types.
	Name    string   // Name of a named type.
	Key     *TypeRef // Map key.
	Elem    *TypeRef // Pointer, slice or map element.
	raw     string
}

// ParseType parses a type string.
func ParseType(s string) (*TypeRef, error) {
	s = strings.TrimSpace(s)
	t, rest, err := parseType(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("unexpected %q after type in %q", rest, s)
	}
	t.raw = s
	return t, nil
}

// MustParseType is like ParseType but panics on error.
func MustParseType(s string) *TypeRef {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

func parseType(s string) (*TypeRef, string, error) {
	switch {
	case s == "":
		return nil, "", fmt.Errorf("empty type")
	case strings.HasPrefix(s, "*"):
		elem, rest, err := parseType(s[1:])
		if err != nil {
			return nil, "", err
		}
		return &TypeRef{Form: FormPointer, Elem: elem}, rest, nil
	case strings.HasPrefix(s, "[]"):
		elem, rest, err := parseType(s[2:])
		if err != nil {
			return nil, "", err
		}
		return &TypeRef{Form: FormSlice, Elem: elem}, rest, nil
	case strings.HasPrefix(s, "map["):
		key, rest, err := parseType(s[4:])
		if err != nil {
			return nil, "", err
		}
		if !strings.HasPrefix(rest, "]") {
			return nil, "", fmt.Errorf("missing ] in map type")
		}
		elem, rest, err := parseType(rest[1:])
		if err != nil {
			return nil, "", err
		}
		return &TypeRef{Form: FormMap, Key: key, Elem: elem}, rest, nil
	}
	end := strings.IndexAny(s, "]")
	if end < 0 {
		end = len(s)
	}
	name, rest := s[:end], s[end:]
	if strings.ContainsAny(name, " *[") {
		return nil, "", fmt.Errorf("invalid type name %q", name)
	}
	t := &TypeRef{Form: FormNamed, Name: name}
	if i := strings.LastIndex(name, "."); i >= 0 {
		if i == 0 || i == len(name)-1 || strings.HasSuffix(name[:i], "/") {
			return nil, "", fmt.Errorf("invalid qualified type %q", name)
		}
		t.PkgPath, t.Name = name[:i], name[i+1:]
	}
	if strings.Contains(t.Name, "/") {
		return nil, "", fmt.Errorf("invalid type name %q", name)
	}
	return t, rest, nil
}

// String returns the type as it was written.
func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}
	if t.raw != "" {
		return t.raw
	}
	switch t.Form {
	case FormPointer:
		return "*" + t.Elem.String()
	case FormSlice:
		return "[]" + t.Elem.String()
	case FormMap:
		return "map[" + t.Key.String() + "]" + t.Elem.String()
	}
	if t.PkgPath != "" {
		return t.PkgPath + "." + t.Name
	}
	return t.Name
}

// Nillable reports whether the zero value of the type is nil.
func (t *TypeRef) Nillable() bool {
	return t.Form != FormNamed || t.Name == "any" || t.Name == "error"
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TypeRef) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t *TypeRef) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TypeRef) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t *TypeRef) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
