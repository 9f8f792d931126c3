// Package samples holds ready-made cards covering every card family. They
// back the cardgen CLI and double as usage examples of the builders.
//
// Sample definitions are static, so builder errors inside them are
// programming errors and panic through card.Must.
package samples

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/utsurius/actionable-messages/card"
	"github.com/utsurius/actionable-messages/i18n"
)

// ErrUnknownSample is returned by Build for names not in the catalogue.
var ErrUnknownSample = errors.New("samples: unknown sample")

// Card is the rendering surface shared by every card root.
type Card interface {
	Kind() card.Kind
	LanguageCode() string
	Payload() map[string]any
	JSONPayload() (string, error)
	HTMLPayload() (string, error)
	SignedPayload(ctx context.Context) (string, error)
	SignedHTMLPayload(ctx context.Context) (string, error)
}

// Params are passed to every sample builder.
type Params struct {
	// CardOptions configure the root, such as its language code and signer.
	CardOptions []card.Option
	// ActionBaseURL prefixes the URLs of HTTP actions. Defaults to
	// DefaultActionBaseURL.
	ActionBaseURL string
}

// DefaultActionBaseURL is the placeholder service receiving card actions.
const DefaultActionBaseURL = "https://actions.contoso.com"

func (p Params) actionURL(name string) string {
	base := p.ActionBaseURL
	if base == "" {
		base = DefaultActionBaseURL
	}
	return base + "/actions/" + name
}

// Sample describes one catalogue entry.
type Sample struct {
	Name        string
	Kind        card.Kind
	Description string
	build       func(Params) Card
}

var registry = []Sample{
	{"activity-update", card.KindAdaptiveCard, "Task update with due date and comment forms", activityUpdate},
	{"agenda", card.KindAdaptiveCard, "Day agenda with locations and travel time", agenda},
	{"calendar-reminder", card.KindAdaptiveCard, "Meeting reminder with snooze choices (translated)", calendarReminder},
	{"expense-approval", card.KindAdaptiveCard, "Outlook expense approval posting to the action endpoint", expenseApproval},
	{"feedback", card.KindAdaptiveCard, "Feedback form generated from a Go struct", feedback},
	{"flight-itinerary", card.KindAdaptiveCard, "Flight itinerary with passengers and price", flightItinerary},
	{"food-order", card.KindAdaptiveCard, "Event registration with nested food choice cards", foodOrder},
	{"restaurant", card.KindAdaptiveCard, "Restaurant review with a picture", restaurant},
	{"github", card.KindMessageCard, "GitHub issue opened connector card", github},
	{"office365-connector", card.KindMessageCard, "Flow approval request connector card", office365Connector},
	{"tiny-pulse", card.KindMessageCard, "TINYPulse engagement poll with an anonymous answer form", tinyPulse},
	{"trello", card.KindMessageCard, "Trello card created connector card", trello},
	{"hero", card.KindHeroCard, "Teams hero card (translated)", hero},
	{"thumbnail", card.KindThumbnailCard, "Teams thumbnail card", thumbnail},
}

// All returns the catalogue grouped by card family.
func All() []Sample { return slices.Clone(registry) }

// Names returns the sample names in catalogue order.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the sample called name.
func Lookup(name string) (Sample, bool) {
	i := slices.IndexFunc(registry, func(s Sample) bool { return s.Name == name })
	if i < 0 {
		return Sample{}, false
	}
	return registry[i], true
}

// Build constructs the sample called name.
func Build(name string, p Params) (Card, error) {
	s, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSample, name)
	}
	return s.build(p), nil
}

//go:embed translations.yaml
var translationsYAML []byte

// Translations holds the texts of the translated samples, keyed by the
// English text.
var Translations = mustCatalog(translationsYAML)

func mustCatalog(src []byte) *i18n.Catalog {
	var msgs map[string]map[string]string
	if err := yaml.Unmarshal(src, &msgs); err != nil {
		panic(fmt.Sprintf("samples: parse translations: %v", err))
	}
	c := i18n.NewCatalog(language.English)
	if err := c.Load(msgs); err != nil {
		panic(err)
	}
	return c
}

// translator returns the eager translation function for the language of c.
func translator(c Card) func(key string, args ...any) string {
	lang := c.LanguageCode()
	return func(key string, args ...any) string {
		return Translations.Sprintf(lang, key, args...)
	}
}
