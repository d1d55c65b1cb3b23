package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultBundle(t *testing.T) {
	b := Default()

	assert.Equal(t, language.English, b.GetDefaultLanguage())
	assert.ElementsMatch(t, []language.Tag{language.English, language.German, language.French}, b.Languages())
	assert.Equal(t, "Usage:", b.T("gohelp.help.usage"))
	assert.Equal(t, "Verwendung:", b.TL(language.German, "gohelp.help.usage"))
	assert.Equal(t, "Utilisation :", b.TL(language.French, "gohelp.help.usage"))
	usageKey := "gohelp.help.command_usage"
	assert.Equal(t, "app command [arguments]", b.T(usageKey, "app"))
}

func TestBundleLanguageMatching(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	tests := []struct {
		name string
		lang language.Tag
		want string
	}{
		{"exact", language.German, "Argumente:"},
		{"regional variant", language.MustParse("de-CH"), "Argumente:"},
		{"canadian french", language.CanadianFrench, "Arguments :"},
		{"unsupported falls back", language.Japanese, "Arguments:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.TL(tt.lang, "gohelp.help.arguments"))
		})
	}

	assert.Equal(t, language.German, b.MatchLanguage(language.MustParse("de-AT")))
}

func TestBundleSetDefaultLanguage(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	b.SetDefaultLanguage(language.German)
	assert.Equal(t, "Beispiele:", b.T("gohelp.help.examples"))

	msg, ok := b.Lookup("gohelp.help.examples")
	assert.True(t, ok)
	assert.Equal(t, "Beispiele:", msg)
}

func TestBundleAddLanguage(t *testing.T) {
	t.Run("empty bundle", func(t *testing.T) {
		b := NewEmptyBundle()
		assert.Equal(t, "some.key", b.T("some.key"))

		require.NoError(t, b.AddLanguage(language.English, map[string]string{"greeting": "Hello %s"}))
		greetingKey := "greeting"
		assert.Equal(t, "Hello Bob", b.T(greetingKey, "Bob"))
	})

	t.Run("missing keys are rejected", func(t *testing.T) {
		b := NewEmptyBundle()
		require.NoError(t, b.AddLanguage(language.English, map[string]string{"a": "A", "b": "B"}))

		err := b.AddLanguage(language.Spanish, map[string]string{"a": "A"})
		assert.ErrorIs(t, err, ErrInvalidTranslations)
		assert.False(t, b.HasLanguage(language.Spanish))
	})

	t.Run("empty translations are rejected", func(t *testing.T) {
		b := NewEmptyBundle()
		assert.ErrorIs(t, b.AddLanguage(language.English, nil), ErrEmptyTranslations)
	})

	t.Run("merge keeps earlier keys", func(t *testing.T) {
		b := NewEmptyBundle()
		require.NoError(t, b.AddLanguage(language.English, map[string]string{"a": "A"}))
		require.NoError(t, b.AddLanguage(language.English, map[string]string{"b": "B"}))

		assert.Equal(t, "A", b.T("a"))
		assert.Equal(t, "B", b.T("b"))
	})
}
