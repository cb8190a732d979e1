package errs

import (
	"errors"
	"testing"

	"github.com/napalu/sarge/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

var allErrors = []*i18n.TrError{
	ErrFlagsAfterPositionals,
	ErrUnknownLongFlag,
	ErrUnknownShortFlag,
	ErrValueFlagNotAtClusterEnd,
	ErrSplitArgs,
	ErrNilRegistry,
	ErrEmptyFlag,
	ErrNilFlag,
	ErrFlagAlreadyExists,
	ErrShortFlagConflict,
	ErrInvalidShortFlag,
	ErrFlagNotFound,
	ErrFlagHasNoValue,
	ErrParseInt,
	ErrParseFloat,
	ErrParseBool,
	ErrParseDuration,
	ErrParseTime,
	ErrBindNil,
	ErrPointerToStructExpected,
	ErrInvalidTagFormat,
	ErrInvalidPosition,
	ErrUnsupportedFieldType,
	ErrUnsupportedShell,
}

func TestErrors_Translated(t *testing.T) {
	bundle := i18n.Default()
	for _, lang := range bundle.Languages() {
		for _, err := range allErrors {
			assert.True(t, bundle.HasKey(lang, err.Key()), "%s missing in %s", err.Key(), lang)
		}
		for _, key := range []string{MsgUsageKey, MsgOptionsKey, MsgValuePlaceholderKey} {
			assert.True(t, bundle.HasKey(lang, key), "%s missing in %s", key, lang)
		}
	}
}

func TestErrors_Distinct(t *testing.T) {
	for i, a := range allErrors {
		for j, b := range allErrors {
			assert.Equal(t, i == j, errors.Is(a, b), "%s vs %s", a.Key(), b.Key())
		}
	}
}

func TestUpdateMessageProvider(t *testing.T) {
	defer UpdateMessageProvider(nil)

	err := ErrUnknownLongFlag.WithArgs("--bogus")
	assert.Equal(t, "long flag --bogus isn't defined", err.Error())

	bundle, bundleErr := i18n.NewBundle()
	assert.NoError(t, bundleErr)
	bundle.SetDefaultLanguage(language.German)
	UpdateMessageProvider(i18n.NewBundleMessageProvider(bundle))

	assert.NotEqual(t, "long flag --bogus isn't defined", err.Error())
	assert.Contains(t, err.Error(), "--bogus")
	assert.True(t, errors.Is(err, ErrUnknownLongFlag))
}
