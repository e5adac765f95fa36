// Package message maps message keys to localized display strings.
package message

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Lookup resolves a message key, formatting params into the localized text.
// Unknown keys are returned as-is.
type Lookup interface {
	Get(key string, params ...interface{}) string
}

var supported = []language.Tag{language.Japanese, language.English}

type Catalog struct {
	builder *catalog.Builder
	printer *message.Printer
	tag     language.Tag
}

// NewCatalog builds the catalog of every supported language and selects the
// one closest to locale.
func NewCatalog(locale string) (*Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, text := range entries {
			if err := b.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("register message %q for %s: %w", key, tag, err)
			}
		}
	}

	requested, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	tag, _, _ := language.NewMatcher(supported).Match(requested)
	base, _ := tag.Base()
	tag = language.Make(base.String())

	return &Catalog{
		builder: b,
		printer: message.NewPrinter(tag, message.Catalog(b)),
		tag:     tag,
	}, nil
}

// Get implements Lookup.
func (c *Catalog) Get(key string, params ...interface{}) string {
	return c.printer.Sprintf(key, params...)
}

// Language returns the language the catalog renders in.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Translations returns the text registered for key in every supported language.
func (c *Catalog) Translations(key string) []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		out = append(out, message.NewPrinter(tag, message.Catalog(c.builder)).Sprintf(key))
	}
	return out
}

// Translator is a Lookup that can also list a key's text in every language.
type Translator interface {
	Lookup
	Translations(key string) []string
}
