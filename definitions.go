package sarge

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// ConfigureParserFunc is used when configuring a Parser with NewParserWith
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureFlagFunc is used when defining a Flag with NewFlag or Flag.Set
type ConfigureFlagFunc func(flag *Flag, err *error)

// NameConversionFunc converts a struct field name to a long flag name
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-flag-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_flag_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "myFlagName"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "myflagname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	// DefaultFlagNameConverter names struct fields which carry no explicit name in their tag
	DefaultFlagNameConverter NameConversionFunc = ToKebabCase
)

const (
	longPrefix  = "--"
	shortPrefix = "-"
)

// ParseError reports the token at which a parse pass was aborted. Err is one of
// the errs sentinels (compare with errors.Is).
type ParseError struct {
	// Pos is the zero-based index of the offending token
	Pos int
	// Arg is the offending token as supplied
	Arg string
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
