package sarge

import (
	"log/slog"

	"github.com/napalu/sarge/errs"
	"golang.org/x/text/language"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithHelpDescription("a small program"),
//		WithFlag("kittens",
//			NewFlag(
//				WithShortFlag("k"),
//				WithDescription("number of kittens"),
//				WithValue(true))),
//		WithFlag("help",
//			NewFlag(
//				WithShortFlag("h"),
//				WithDescription("show help"))))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser(NewRegistry())

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, err
}

// WithFlag is a wrapper for AddFlag which is used to define a flag.
// A flag is matched on the command line by its long name prefixed by "--" or
// by its short name prefixed by "-".
func WithFlag(flagName string, flag *Flag) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddFlag(flagName, flag)
	}
}

// WithFlags defines flags using their own long names
func WithFlags(flags ...*Flag) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if parser.registry == nil {
			parser.registry = NewRegistry()
		}
		*err = parser.registry.DefineAll(flags)
	}
}

// WithRegistry replaces the Registry of the Parser, including any flags defined by earlier options
func WithRegistry(registry *Registry) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if registry == nil {
			*err = errs.ErrNilRegistry
			return
		}
		parser.registry = registry
	}
}

// WithPermissive when true, unknown flags are skipped and flags may follow text arguments
func WithPermissive(permissive bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.permissive = permissive
	}
}

// WithLogger sets the logger receiving debug traces of token classification. A nil logger
// discards them.
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if logger == nil {
			logger = discardLogger()
		}
		parser.logger = logger
	}
}

// WithHelpDescription sets the program description printed at the top of the help output
func WithHelpDescription(description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.description = description
	}
}

// WithUsage sets the text printed after the "Usage:" label of the help output
func WithUsage(usage string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.usage = usage
	}
}

// WithLanguage sets the language of the help output labels
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.lang = lang
	}
}
