// Package i18n provides the message bundle used for help headings and error messages.
//
// The process-wide bundle returned by Default carries the built-in en, de and fr
// translations. Components accept a Translator so a caller can hand them a bundle of
// its own, or the default bundle switched to another language.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/napalu/gohelp/types/orderedmap"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrMissingKey                         = errors.New("missing key")
)

// Translator looks up translated, printf-formatted messages by key
type Translator interface {
	T(key string, args ...interface{}) string
	TL(lang language.Tag, key string, args ...interface{}) string
	GetDefaultLanguage() language.Tag
}

// Bundle holds the translations of several languages. The default language is the
// reference: every other language must translate the same set of keys.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations *orderedmap.OrderedMap[language.Tag, map[string]string]
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
}

var (
	defaultBundleOnce sync.Once
	defaultBundle     *Bundle
)

// Default returns the shared bundle holding the built-in locales
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		var err error
		defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
		if err != nil {
			panic("failed to load embedded locales: " + err.Error())
		}
	})

	return defaultBundle
}

// NewBundle returns a fresh bundle holding the built-in locales
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle without translations whose default language is English
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: orderedmap.NewOrderedMap[language.Tag, map[string]string](),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
		matcher:      language.NewMatcher([]language.Tag{language.English}),
	}
}

// NewBundleWithFS loads every <lang>.json file below dirPrefix. The default language
// (English unless given) is loaded first so the others can be validated against it.
func NewBundleWithFS(fs embed.FS, dirPrefix string, lang ...language.Tag) (*Bundle, error) {
	b := NewEmptyBundle()
	if len(lang) > 0 {
		b.defaultLang = lang[0]
	}

	entries, err := fs.ReadDir(dirPrefix)
	if err != nil {
		return nil, err
	}

	deferred := make(map[language.Tag]string)
	var order []language.Tag
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}

		file := path.Join(dirPrefix, entry.Name())
		if tag == b.defaultLang {
			if err := b.loadFile(fs, tag, file); err != nil {
				return nil, err
			}
			continue
		}
		deferred[tag] = file
		order = append(order, tag)
	}

	if !b.translations.Has(b.defaultLang) {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	for _, tag := range order {
		if err := b.loadFile(fs, tag, deferred[tag]); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// T returns the translation of key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.GetDefaultLanguage(), key, args...)
}

// TL returns the translation of key in the best match for lang, falling back to the
// default language and finally to the key itself.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p, ok := b.printers[lang]; ok {
		return p.Sprintf(key, args...)
	}

	if b.matcher != nil {
		_, idx, confidence := b.matcher.Match(lang)
		if confidence != language.No {
			if keys := b.translations.Keys(); idx < len(keys) {
				if p, ok := b.printers[keys[idx]]; ok {
					return p.Sprintf(key, args...)
				}
			}
		}
	}

	if p, ok := b.printers[b.defaultLang]; ok {
		return p.Sprintf(key, args...)
	}

	if len(args) > 0 {
		return fmt.Sprintf(key, args...)
	}

	return key
}

// Lookup returns the untranslated message template for key in the default language
func (b *Bundle) Lookup(key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, ok := b.translations.Get(b.defaultLang)
	if !ok {
		return "", false
	}
	msg, ok := translations[key]

	return msg, ok
}

// AddLanguage adds lang or merges translations into it. A language other than the
// default one must translate exactly the keys of the default language.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	if len(translations) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	existing, hadExisting := b.translations.Get(lang)
	merged := make(map[string]string, len(existing)+len(translations))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	if lang != b.defaultLang {
		if errs := b.missingKeys(merged); len(errs) > 0 {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errors.Join(errs...))
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			if !hadExisting {
				return fmt.Errorf("%w: %s: %v", ErrFailedToSetString, key, err)
			}
			delete(merged, key)
		}
	}

	b.translations.Set(lang, merged)
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.matcher = language.NewMatcher(b.translations.Keys())

	return nil
}

// Languages returns the loaded languages in load order
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.translations.Keys()
}

// HasLanguage reports whether lang was loaded
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.translations.Has(lang)
}

// MatchLanguage returns the loaded language closest to lang, or the default language
func (b *Bundle) MatchLanguage(lang language.Tag) language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, idx, confidence := b.matcher.Match(lang)
	keys := b.translations.Keys()
	if confidence == language.No || idx >= len(keys) {
		return b.defaultLang
	}

	return keys[idx]
}

// SetDefaultLanguage switches the language used by T
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.defaultLang = lang
}

// GetDefaultLanguage returns the language used by T
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.defaultLang
}

func (b *Bundle) loadFile(fs embed.FS, lang language.Tag, file string) error {
	data, err := fs.ReadFile(file)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, file, err)
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) missingKeys(translations map[string]string) []error {
	reference, ok := b.translations.Get(b.defaultLang)
	if !ok {
		return nil
	}

	var errs []error
	for key := range reference {
		if _, ok := translations[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingKey, key))
		}
	}

	return errs
}
