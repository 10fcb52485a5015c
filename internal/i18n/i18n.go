// Package i18n provides the localized text shown to users: menu labels, form
// labels and the notices produced by inbound and outbound operations.
//
// Translations live in embedded YAML files under locales/, one per language
// tag. Brazilian Portuguese is the default and the reference catalog.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLang is the language used when none is requested.
const DefaultLang = "pt-BR"

// Catalog translates message ids for one language.
type Catalog struct {
	lang      string
	localizer *goi18n.Localizer
}

// Supported returns the language tags that have a locale file.
func Supported() []string {
	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return []string{DefaultLang}
	}
	var langs []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := f.Name()
		langs = append(langs, name[:len(name)-len(".yaml")])
	}
	return langs
}

// New loads every embedded locale and returns a catalog for lang.
// Messages missing from lang fall back to the default language.
func New(lang string) (*Catalog, error) {
	if lang == "" {
		lang = DefaultLang
	}
	if _, err := language.Parse(lang); err != nil {
		return nil, fmt.Errorf("i18n: invalid language %q: %w", lang, err)
	}

	bundle := goi18n.NewBundle(language.BrazilianPortuguese)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", f.Name(), err)
		}
	}

	return &Catalog{
		lang:      lang,
		localizer: goi18n.NewLocalizer(bundle, lang, DefaultLang),
	}, nil
}

// MustNew is New for callers with a known-good language, such as tests.
func MustNew(lang string) *Catalog {
	c, err := New(lang)
	if err != nil {
		panic(err)
	}
	return c
}

// Lang returns the catalog's language tag.
func (c *Catalog) Lang() string { return c.lang }

// T translates messageID, filling template fields from data.
// An unknown id is returned unchanged.
func (c *Catalog) T(messageID string, data map[string]any) string {
	msg, err := c.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil && msg == "" {
		return messageID
	}
	// A non-nil error with a message means the default language filled in.
	return msg
}
