// Package errs defines the translatable sentinel errors returned by sarge.
// This file contains constants for all translation keys used throughout the library.
package errs

const (
	prefixKey = "sarge"
)

// Error prefixes
const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
	MessagePrefixKey  = prefixKey + ".msg"
)

// Parse pass errors
const (
	ErrFlagsAfterPositionalsKey    = ErrorPrefixKey + ".flags_after_positionals"
	ErrUnknownLongFlagKey          = ErrorPrefixKey + ".unknown_long_flag"
	ErrUnknownShortFlagKey         = ErrorPrefixKey + ".unknown_short_flag"
	ErrValueFlagNotAtClusterEndKey = ErrorPrefixKey + ".value_flag_not_at_cluster_end"
	ErrSplitArgsKey                = ErrorPrefixKey + ".split_args"
	ErrNilRegistryKey              = ErrorPrefixKey + ".nil_registry"
)

// Registry errors
const (
	ErrEmptyFlagKey         = ErrorPrefixKey + ".empty_flag"
	ErrNilFlagKey           = ErrorPrefixKey + ".nil_flag"
	ErrFlagAlreadyExistsKey = ErrorPrefixKey + ".flag_already_exists"
	ErrShortFlagConflictKey = ErrorPrefixKey + ".short_flag_conflict"
	ErrInvalidShortFlagKey  = ErrorPrefixKey + ".invalid_short_flag"
)

// Query and conversion errors
const (
	ErrFlagNotFoundKey   = ErrorPrefixKey + ".flag_not_found"
	ErrFlagHasNoValueKey = ErrorPrefixKey + ".flag_has_no_value"
	ErrParseIntKey       = ParseErrorPathKey + ".int"
	ErrParseFloatKey     = ParseErrorPathKey + ".float"
	ErrParseBoolKey      = ParseErrorPathKey + ".bool"
	ErrParseDurationKey  = ParseErrorPathKey + ".duration"
	ErrParseTimeKey      = ParseErrorPathKey + ".time"
)

// Struct binding errors
const (
	ErrBindNilKey                 = ErrorPrefixKey + ".bind_nil"
	ErrPointerToStructExpectedKey = ErrorPrefixKey + ".pointer_to_struct_expected"
	ErrInvalidTagFormatKey        = ErrorPrefixKey + ".invalid_tag_format"
	ErrInvalidPositionKey         = ErrorPrefixKey + ".invalid_position"
	ErrUnsupportedFieldTypeKey    = ErrorPrefixKey + ".unsupported_field_type"
)

// Completion errors
const (
	ErrUnsupportedShellKey = ErrorPrefixKey + ".unsupported_shell"
)

// UI messages
const (
	MsgUsageKey            = MessagePrefixKey + ".usage"
	MsgOptionsKey          = MessagePrefixKey + ".options"
	MsgValuePlaceholderKey = MessagePrefixKey + ".value_placeholder"
)
