package errs

import (
	"github.com/napalu/sarge/i18n"
)

// Parse pass errors
var (
	ErrFlagsAfterPositionals    = i18n.NewError(ErrFlagsAfterPositionalsKey)
	ErrUnknownLongFlag          = i18n.NewError(ErrUnknownLongFlagKey)
	ErrUnknownShortFlag         = i18n.NewError(ErrUnknownShortFlagKey)
	ErrValueFlagNotAtClusterEnd = i18n.NewError(ErrValueFlagNotAtClusterEndKey)
	ErrSplitArgs                = i18n.NewError(ErrSplitArgsKey)
	ErrNilRegistry              = i18n.NewError(ErrNilRegistryKey)
)

// Registry errors
var (
	ErrEmptyFlag         = i18n.NewError(ErrEmptyFlagKey)
	ErrNilFlag           = i18n.NewError(ErrNilFlagKey)
	ErrFlagAlreadyExists = i18n.NewError(ErrFlagAlreadyExistsKey)
	ErrShortFlagConflict = i18n.NewError(ErrShortFlagConflictKey)
	ErrInvalidShortFlag  = i18n.NewError(ErrInvalidShortFlagKey)
)

// Query and conversion errors
var (
	ErrFlagNotFound   = i18n.NewError(ErrFlagNotFoundKey)
	ErrFlagHasNoValue = i18n.NewError(ErrFlagHasNoValueKey)
	ErrParseInt       = i18n.NewError(ErrParseIntKey)
	ErrParseFloat     = i18n.NewError(ErrParseFloatKey)
	ErrParseBool      = i18n.NewError(ErrParseBoolKey)
	ErrParseDuration  = i18n.NewError(ErrParseDurationKey)
	ErrParseTime      = i18n.NewError(ErrParseTimeKey)
)

// Struct binding errors
var (
	ErrBindNil                 = i18n.NewError(ErrBindNilKey)
	ErrPointerToStructExpected = i18n.NewError(ErrPointerToStructExpectedKey)
	ErrInvalidTagFormat        = i18n.NewError(ErrInvalidTagFormatKey)
	ErrInvalidPosition         = i18n.NewError(ErrInvalidPositionKey)
	ErrUnsupportedFieldType    = i18n.NewError(ErrUnsupportedFieldTypeKey)
)

// Completion errors
var (
	ErrUnsupportedShell = i18n.NewError(ErrUnsupportedShellKey)
)

// UpdateMessageProvider switches the message provider used by every error in this package
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
}
