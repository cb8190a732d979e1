package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support. The message is resolved through the package-level
// MessageProvider each time Error is called, so switching the provider changes
// the language of every TrError, including package-level sentinels.
//
// Example usage:
//
//	err := NewError("sarge.error.unknown_long_flag")
//	err = err.WithArgs("bogus")
//	err = err.Wrap(originalError)
type TrError struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the message for the current provider, formatted with args if provided
func (e *TrError) Error() string {
	msg := getDefaultProvider().GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// BundleMessageProvider resolves messages from a Bundle in the bundle's default language
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider creates a MessageProvider backed by bundle
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle}
}

// GetMessage returns the raw (unformatted) message for key, or key itself when no translation exists
func (p *BundleMessageProvider) GetMessage(key string) string {
	return p.bundle.raw(p.bundle.DefaultLanguage(), key)
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider allows users to set their own provider. Passing nil
// restores the embedded English provider.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

// SetLanguage switches the default provider to the embedded translations for lang.
// Returns ErrLanguageNotFound if the embedded bundle does not carry lang.
func SetLanguage(lang language.Tag) error {
	if !Default().HasLanguage(lang) {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}

	b := Default().clone()
	b.SetDefaultLanguage(lang)
	SetDefaultMessageProvider(NewBundleMessageProvider(b))

	return nil
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}

	return defaultProvider
}
