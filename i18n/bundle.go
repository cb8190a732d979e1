package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrLanguageNotFound    = errors.New("language not found")
	ErrInvalidTranslations = errors.New("invalid translations")
)

// Bundle holds translations per language and a message catalog used for formatting
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the bundle built from the embedded locales
func Default() *Bundle {
	return defaultBundle
}

// NewBundle loads a fresh copy of the embedded locales
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle without translations, defaulting to English
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dir. English is loaded
// first and every other language must carry exactly its keys.
func NewBundleWithFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := NewEmptyBundle()
	if err := b.load(fsys, dir); err != nil {
		return nil, err
	}
	if !b.HasLanguage(b.defaultLang) {
		return nil, fmt.Errorf("%w: %s in %s", ErrLanguageNotFound, b.defaultLang, dir)
	}

	return b, nil
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.DefaultLanguage(), key, args...)
}

// TL returns the translation for the given language and key
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if p, exists := b.printers[lang]; exists {
		return p.Sprintf(key, args...)
	}

	if p := b.printers[b.defaultLang]; p != nil {
		return p.Sprintf(key, args...)
	}

	return key
}

// AddLanguage adds a new language to the bundle or merges translations into an existing one.
// A new non-default language must carry exactly the keys of the default language.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	original := b.translations[lang]
	merged := make(map[string]string, len(original)+len(translations))
	for k, v := range original {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}
	b.translations[lang] = merged

	if lang != b.defaultLang && original == nil {
		if err := b.compareKeys(lang); err != nil {
			delete(b.translations, lang)
			return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, err)
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			if original == nil {
				delete(b.translations, lang)
			} else {
				b.translations[lang] = original
			}
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))

	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]

	return exists
}

// Languages returns the supported languages sorted by tag
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}

	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, exists := b.translations[lang]
	if !exists {
		return false
	}
	_, exists = translations[key]

	return exists
}

// DefaultLanguage returns the language used by T
func (b *Bundle) DefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.defaultLang
}

// SetDefaultLanguage sets the default language
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.defaultLang = lang
}

// raw returns the unformatted message for key in lang, falling back to the
// default language and finally to the key itself
func (b *Bundle) raw(lang language.Tag, key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if msg, ok := b.translations[lang][key]; ok {
		return msg
	}
	if msg, ok := b.translations[language.English][key]; ok {
		return msg
	}

	return key
}

func (b *Bundle) clone() *Bundle {
	b.mu.RLock()
	defer b.mu.RUnlock()

	c := &Bundle{
		defaultLang:  b.defaultLang,
		translations: make(map[language.Tag]map[string]string, len(b.translations)),
		catalog:      b.catalog,
		printers:     make(map[language.Tag]*message.Printer, len(b.printers)),
	}
	for lang, tr := range b.translations {
		c.translations[lang] = tr
	}
	for lang, p := range b.printers {
		c.printers[lang] = p
	}

	return c
}

type localeFile struct {
	lang language.Tag
	file string
}

func (b *Bundle) load(fsys fs.FS, dir string) error {
	names, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return err
	}

	files := make([]localeFile, 0, len(names))
	for _, name := range names {
		lang, err := language.Parse(strings.TrimSuffix(path.Base(name), ".json"))
		if err != nil {
			return fmt.Errorf("locale file %s: %w", name, err)
		}
		files = append(files, localeFile{lang: lang, file: name})
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].lang == b.defaultLang && files[j].lang != b.defaultLang
	})

	for _, f := range files {
		data, err := fs.ReadFile(fsys, f.file)
		if err != nil {
			return err
		}
		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return fmt.Errorf("locale file %s: %w", f.file, err)
		}
		if err := b.AddLanguage(f.lang, translations); err != nil {
			return err
		}
	}

	return nil
}

// compareKeys reports every key lang is missing or adds relative to the default language
func (b *Bundle) compareKeys(lang language.Tag) error {
	reference, ok := b.translations[b.defaultLang]
	if !ok {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, b.defaultLang)
	}

	var problems []error
	translations := b.translations[lang]
	for key := range reference {
		if _, ok := translations[key]; !ok {
			problems = append(problems, fmt.Errorf("missing key %q", key))
		}
	}
	for key := range translations {
		if _, ok := reference[key]; !ok {
			problems = append(problems, fmt.Errorf("extra key %q", key))
		}
	}

	return errors.Join(problems...)
}
