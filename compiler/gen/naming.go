package gen

import (
	"go/token"

	"github.com/go-openapi/inflect"
	"github.com/stoewer/go-strcase"
)

// snake converts the given name to snake case.
//
//	HomeScreen => home_screen
func snake(s string) string {
	return strcase.SnakeCase(s)
}

// pascal converts the given name to pascal case.
//
//	user_name => UserName
func pascal(s string) string {
	return strcase.UpperCamelCase(s)
}

// bundleKey returns the default bundle key of a field.
//
//	userName => user_name
func bundleKey(field string) string {
	return inflect.Underscore(field)
}

// isIdent reports whether name is a valid, non-keyword Go identifier.
func isIdent(name string) bool {
	return token.IsIdentifier(name)
}

// reserved lists the names the runtime base types declare. Definitions
// cannot use them for members the generated type adds.
var reserved = names(
	"Arguments",
	"SetArguments",
	"Activity",
	"SetHasOptionsMenu",
	"HasOptionsMenu",
	"AddPreferencesFromResource",
	"FindPreference",
)

func names(ids ...string) map[string]struct{} {
	m := make(map[string]struct{})
	for i := range ids {
		m[ids[i]] = struct{}{}
	}
	return m
}
