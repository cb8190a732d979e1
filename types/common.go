// Package types provides small shared type definitions used across sarge packages.
package types

// TagConfig holds the flag description found in a `sarge` struct tag
type TagConfig struct {
	Name          string
	Short         string
	Description   string
	Default       string
	RequiresValue *bool
	// Position binds the field to a text argument instead of a flag
	Position *int
}

// ListDelimiterFunc signature to match when supplying a user-defined function to check for the runes which form list delimiters.
// Defaults to ',' || r == '|' || r == ' '.
type ListDelimiterFunc func(matchOn rune) bool
