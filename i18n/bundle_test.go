package i18n

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestBundle_EmbeddedLocales(t *testing.T) {
	b := Default()

	assert.Equal(t, language.English, b.DefaultLanguage())
	assert.Equal(t, []language.Tag{language.German, language.English, language.French}, b.Languages())
	assert.True(t, b.HasLanguage(language.German))
	assert.False(t, b.HasLanguage(language.Japanese))
	assert.True(t, b.HasKey(language.French, "sarge.msg.usage"))
	assert.False(t, b.HasKey(language.Japanese, "sarge.msg.usage"))
}

func TestBundle_T(t *testing.T) {
	b := Default()

	assert.Equal(t, "Usage:", b.T("sarge.msg.usage"))
	assert.Equal(t, "Verwendung:", b.TL(language.German, "sarge.msg.usage"))
	assert.Equal(t, "Usage:", b.TL(language.Japanese, "sarge.msg.usage"), "falls back to the default language")
	assert.Equal(t, "flag 'kittens' already exists", b.T("sarge.error.flag_already_exists", "kittens"))
	assert.Equal(t, "Options :", b.TL(language.French, "sarge.msg.options"))
}

func TestBundle_AddLanguage(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	err = b.AddLanguage(language.Spanish, map[string]string{"sarge.msg.usage": "Uso:"})
	assert.True(t, errors.Is(err, ErrInvalidTranslations))
	assert.False(t, b.HasLanguage(language.Spanish))

	err = b.AddLanguage(language.English, map[string]string{"sarge.custom": "custom"})
	require.NoError(t, err)
	assert.Equal(t, "custom", b.T("sarge.custom"))
	assert.Equal(t, "Usage:", b.T("sarge.msg.usage"), "merging keeps existing keys")

	// the shared default bundle is untouched
	assert.False(t, Default().HasKey(language.English, "sarge.custom"))
}

func TestBundle_SetDefaultLanguage(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	b.SetDefaultLanguage(language.German)
	assert.Equal(t, "Optionen:", b.T("sarge.msg.options"))
}

func TestNewEmptyBundle(t *testing.T) {
	b := NewEmptyBundle()
	assert.Empty(t, b.Languages())
	assert.Equal(t, "sarge.msg.usage", b.T("sarge.msg.usage"))
}

func TestNewBundleWithFS(t *testing.T) {
	en := &fstest.MapFile{Data: []byte(`{"greeting": "hello", "farewell": "bye"}`)}

	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr error
		check   func(t *testing.T, b *Bundle)
	}{
		{
			name: "default language loaded before others",
			files: fstest.MapFS{
				"loc/de.json": {Data: []byte(`{"greeting": "hallo", "farewell": "tschüss"}`)},
				"loc/en.json": en,
			},
			check: func(t *testing.T, b *Bundle) {
				assert.Equal(t, "hallo", b.TL(language.German, "greeting"))
				assert.Equal(t, "bye", b.T("farewell"))
			},
		},
		{
			name:    "default language missing",
			files:   fstest.MapFS{"loc/de.json": {Data: []byte(`{"greeting": "hallo"}`)}},
			wantErr: ErrLanguageNotFound,
		},
		{
			name: "missing and extra keys",
			files: fstest.MapFS{
				"loc/en.json": en,
				"loc/fr.json": {Data: []byte(`{"greeting": "salut", "bonus": "x"}`)},
			},
			wantErr: ErrInvalidTranslations,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBundleWithFS(tt.files, "loc")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			tt.check(t, b)
		})
	}
}

func TestNewBundleWithFS_BadFiles(t *testing.T) {
	_, err := NewBundleWithFS(fstest.MapFS{"loc/not a tag.json": {Data: []byte(`{}`)}}, "loc")
	assert.ErrorContains(t, err, "not a tag.json")

	_, err = NewBundleWithFS(fstest.MapFS{"loc/en.json": {Data: []byte(`{`)}}, "loc")
	assert.ErrorContains(t, err, "loc/en.json")
}

func TestBundle_AddLanguageReportsKeys(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	err = b.AddLanguage(language.Italian, map[string]string{"sarge.custom": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing key "sarge.msg.usage"`)
	assert.Contains(t, err.Error(), `extra key "sarge.custom"`)

	empty := NewEmptyBundle()
	err = empty.AddLanguage(language.German, map[string]string{"greeting": "hallo"})
	assert.True(t, errors.Is(err, ErrLanguageNotFound))
	assert.True(t, errors.Is(err, ErrInvalidTranslations))
}
