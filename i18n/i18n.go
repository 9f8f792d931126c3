// Package i18n holds translated card texts. A Catalog hands out
// card.Translatable messages that are resolved with the language code of the
// card being rendered, so one card definition renders in every language the
// catalog knows.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/utsurius/actionable-messages/card"
)

// Catalog maps message keys to per-language texts. Keys are format strings
// and double as the fallback text.
type Catalog struct {
	b        *catalog.Builder
	fallback language.Tag
}

// NewCatalog returns an empty catalog. Unknown or unparsable locales use
// fallback.
func NewCatalog(fallback language.Tag) *Catalog {
	return &Catalog{
		b:        catalog.NewBuilder(catalog.Fallback(fallback)),
		fallback: fallback,
	}
}

// Set registers the translation of key for one language.
func (c *Catalog) Set(tag language.Tag, key, msg string) error {
	if err := c.b.SetString(tag, key, msg); err != nil {
		return fmt.Errorf("i18n: set %q for %s: %w", key, tag, err)
	}
	return nil
}

// Load registers translations given as language code → key → text.
func (c *Catalog) Load(messages map[string]map[string]string) error {
	for code, msgs := range messages {
		tag, err := language.Parse(code)
		if err != nil {
			return fmt.Errorf("i18n: language %q: %w", code, err)
		}
		for key, msg := range msgs {
			if err := c.Set(tag, key, msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// Languages returns the languages with at least one message.
func (c *Catalog) Languages() []language.Tag { return c.b.Languages() }

// Printer returns a printer for locale, for callers that translate eagerly.
func (c *Catalog) Printer(locale string) *message.Printer {
	return message.NewPrinter(c.tag(locale), message.Catalog(c.b))
}

// Sprintf translates key for locale right away.
func (c *Catalog) Sprintf(locale, key string, args ...any) string {
	return c.Printer(locale).Sprintf(key, args...)
}

// Text returns a lazily translated message.
func (c *Catalog) Text(key string, args ...any) card.Translatable {
	return Message{cat: c, key: key, args: args}
}

func (c *Catalog) tag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return c.fallback
	}
	return tag
}

// Message is a catalog entry resolved at render time.
type Message struct {
	cat  *Catalog
	key  string
	args []any
}

// Translate implements card.Translatable.
func (m Message) Translate(locale string) string {
	return m.cat.Sprintf(locale, m.key, m.args...)
}

// String renders the message in the fallback language.
func (m Message) String() string {
	return m.cat.Sprintf(m.cat.fallback.String(), m.key, m.args...)
}
