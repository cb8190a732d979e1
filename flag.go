package sarge

import (
	"fmt"
)

// Flag defines a command-line flag. Long is the identity of the flag and must be
// unique within a Registry; Short is an optional single character alias.
// When RequiresValue is set the token following the flag is bound as its value.
type Flag struct {
	Short         string
	Long          string
	Description   string
	RequiresValue bool
	// DefaultValue is never used while parsing; it is returned by Result.GetOrDefault,
	// the typed accessors and Unmarshal when the flag was not seen.
	DefaultValue string
}

// NewFlag convenience initialization method to configure flags
func NewFlag(configs ...ConfigureFlagFunc) *Flag {
	flag := &Flag{}
	_ = flag.Set(configs...)

	return flag
}

// Set configures the Flag instance with the provided ConfigureFlagFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	flag := &Flag{}
//	err := flag.Set(
//	    WithLongFlag("kittens"),
//	    WithShortFlag("k"),
//	    WithValue(true),
//	)
func (f *Flag) Set(configs ...ConfigureFlagFunc) error {
	var err error
	for _, config := range configs {
		config(f, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// String returns a string representation of the Flag instance
func (f *Flag) String() string {
	s := longPrefix + f.Long
	if f.Short != "" {
		s += " or " + shortPrefix + f.Short
	}
	if f.RequiresValue {
		s += " <val>"
	}
	if f.Description != "" {
		s += fmt.Sprintf(" %q", f.Description)
	}

	return s
}
