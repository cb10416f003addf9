package load

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a definition file.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf returns the format of a file by its extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	}
	return "", false
}

// Parse decodes one definition. Unknown fields are rejected.
func Parse(data []byte, format Format) (*Definition, error) {
	def := &Definition{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(def); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(def); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if def.Kind == "" {
		def.Kind = KindFragment
	}
	if def.Package == "" && def.Path != "" {
		def.Package = filepath.Base(def.Path)
	}
	return def, nil
}

// File loads the definition stored in path.
func File(path string) (*Definition, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, NewParseError(path, "unknown file extension", nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewParseError(path, "", err)
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, NewParseError(path, "", err)
	}
	def.File = path
	return def, nil
}

// Glob expands doublestar patterns (for example "defs/**/*.yaml") into a
// sorted list of definition files. A pattern without meta characters
// names a file directly.
func Glob(patterns ...string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, NewParseError(pattern, "invalid pattern", err)
		}
		for _, m := range matches {
			if _, ok := FormatOf(m); ok {
				files = append(files, m)
			}
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// Load expands patterns and loads every matching definition. Errors of
// all files are joined.
func Load(patterns ...string) ([]*Definition, error) {
	files, err := Glob(patterns...)
	if err != nil {
		return nil, err
	}
	var (
		defs []*Definition
		errs []error
	)
	for _, f := range files {
		def, err := File(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		defs = append(defs, def)
	}
	return defs, errors.Join(errs...)
}
