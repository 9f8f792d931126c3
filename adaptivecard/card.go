package adaptivecard

import (
	"strings"

	"github.com/utsurius/actionable-messages/card"
)

// Options configures a new AdaptiveCard. Every field is optional.
type Options struct {
	// Version must be one of Versions when set.
	Version string
	// Schema is written as "$schema", normally SchemaURL.
	Schema                   string
	FallbackText             string
	Speak                    string
	Lang                     string
	MinHeight                string
	RTL                      *bool
	Style                    Style
	HideOriginalBody         *bool
	VerticalContentAlignment VerticalAlignment
	SelectAction             Action
}

// AdaptiveCard is the root of an Adaptive Card payload.
type AdaptiveCard struct {
	*card.Root
	data *card.Data
}

// NewAdaptiveCard returns an empty card. cardOpts control rendering, such as
// the language code and the encoder.
func NewAdaptiveCard(opts *Options, cardOpts ...card.Option) (*AdaptiveCard, error) {
	if opts == nil {
		opts = &Options{}
	}
	d := card.NewData()
	d.Set("type", "AdaptiveCard")
	c := &AdaptiveCard{Root: card.NewRoot(card.KindAdaptiveCard, d, cardOpts...), data: d}
	setString(d, "$schema", opts.Schema)
	if opts.Version != "" {
		if err := c.SetVersion(opts.Version); err != nil {
			return nil, err
		}
	}
	setString(d, "fallbackText", opts.FallbackText)
	setString(d, "speak", opts.Speak)
	setString(d, "lang", opts.Lang)
	setString(d, "minHeight", opts.MinHeight)
	setBool(d, "rtl", opts.RTL)
	setEnum(d, "style", opts.Style)
	setBool(d, "hideOriginalBody", opts.HideOriginalBody)
	setEnum(d, "verticalContentAlignment", opts.VerticalContentAlignment)
	setAction(d, "selectAction", opts.SelectAction)
	return c, nil
}

// AsData returns a snapshot of the payload, for nesting the card in an
// Action.ShowCard or another container format.
func (c *AdaptiveCard) AsData() *card.Data { return c.data.Clone() }

// SetVersion sets the schema version. Unknown versions are rejected.
func (c *AdaptiveCard) SetVersion(v string) error {
	if !IsValidVersion(v) {
		return card.Errorf(card.InvalidVersion, "invalid version %q: available versions are %s", v, strings.Join(Versions, ", "))
	}
	c.data.Set("version", v)
	return nil
}

func (c *AdaptiveCard) SetSchema(url string) { c.data.Set("$schema", url) }

func (c *AdaptiveCard) SetRefresh(r *Refresh) error {
	snap, err := card.Snapshot("refresh", r)
	if err != nil {
		return err
	}
	c.data.Set("refresh", snap)
	return nil
}

func (c *AdaptiveCard) SetAuthentication(a *Authentication) error {
	snap, err := card.Snapshot("authentication", a)
	if err != nil {
		return err
	}
	c.data.Set("authentication", snap)
	return nil
}

// SetBody replaces the body.
func (c *AdaptiveCard) SetBody(elems ...Element) error {
	list, err := card.Collect("body", elems)
	if err != nil {
		return err
	}
	c.data.Set("body", list)
	return nil
}

// AddElements appends to the body.
func (c *AdaptiveCard) AddElements(elems ...Element) error {
	list, err := card.Collect("body", elems)
	if err != nil {
		return err
	}
	c.data.Append("body", list...)
	return nil
}

// SetActions replaces the card-level actions.
func (c *AdaptiveCard) SetActions(actions ...Action) error {
	list, err := card.Collect("actions", actions)
	if err != nil {
		return err
	}
	c.data.Set("actions", list)
	return nil
}

// AddActions appends card-level actions.
func (c *AdaptiveCard) AddActions(actions ...Action) error {
	list, err := card.Collect("actions", actions)
	if err != nil {
		return err
	}
	c.data.Append("actions", list...)
	return nil
}

func (c *AdaptiveCard) SetSelectAction(a Action) error {
	return snapshotAction(c.data, "selectAction", a)
}

func (c *AdaptiveCard) SetStyle(s Style)            { c.data.Set("style", string(s)) }
func (c *AdaptiveCard) SetHideOriginalBody(v bool)  { c.data.Set("hideOriginalBody", v) }
func (c *AdaptiveCard) SetFallbackText(text string) { c.data.Set("fallbackText", text) }
func (c *AdaptiveCard) SetMinHeight(h string)       { c.data.Set("minHeight", h) }
func (c *AdaptiveCard) SetSpeak(text string)        { c.data.Set("speak", text) }
func (c *AdaptiveCard) SetLang(lang string)         { c.data.Set("lang", lang) }
func (c *AdaptiveCard) SetRTL(v bool)               { c.data.Set("rtl", v) }

func (c *AdaptiveCard) SetVerticalContentAlignment(a VerticalAlignment) {
	c.data.Set("verticalContentAlignment", string(a))
}

// SetBackgroundImage accepts an image URL, an *Image or a *BackgroundImage.
func (c *AdaptiveCard) SetBackgroundImage(image any) error {
	if img, ok := image.(*Image); ok {
		if img == nil {
			return card.Errorf(card.InvalidImageType, "invalid image type %T: must not be nil", image)
		}
		c.data.Set("backgroundImage", img.AsData())
		return nil
	}
	v, err := resolveBackgroundImage(image)
	if err != nil {
		return err
	}
	c.data.Set("backgroundImage", v)
	return nil
}

func (c *AdaptiveCard) SetMetadata(m *Metadata) error {
	snap, err := card.Snapshot("metadata", m)
	if err != nil {
		return err
	}
	c.data.Set("metadata", snap)
	return nil
}
