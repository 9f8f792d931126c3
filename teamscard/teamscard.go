// Package teamscard builds Microsoft Teams hero and thumbnail card
// attachments. All fields except contentType live in the nested content
// object.
package teamscard

import (
	"github.com/utsurius/actionable-messages/card"
)

const (
	HeroContentType      = "application/vnd.microsoft.card.hero"
	ThumbnailContentType = "application/vnd.microsoft.card.thumbnail"
)

// OpenURL is a button that opens a URL.
type OpenURL struct {
	data *card.Data
}

// NewOpenURL returns an openUrl button.
func NewOpenURL(title, url string) *OpenURL {
	d := card.NewData()
	d.Set("type", "openUrl")
	d.Set("title", title)
	d.Set("value", url)
	return &OpenURL{data: d}
}

func (b *OpenURL) AsData() *card.Data { return b.data.Clone() }

// Image is an image of a card.
type Image struct {
	data *card.Data
}

// NewImage returns an image. An empty alt is omitted.
func NewImage(url, alt string) *Image {
	d := card.NewData()
	d.Set("url", url)
	if alt != "" {
		d.Set("alt", alt)
	}
	return &Image{data: d}
}

func (i *Image) SetAlt(alt string) { i.data.Set("alt", alt) }

func (i *Image) AsData() *card.Data { return i.data.Clone() }

// Options configures a new card. Every field is optional.
type Options struct {
	Title    string
	Subtitle string
	Text     string
	Images   []*Image
	Buttons  []*OpenURL
}

// Card is a hero or thumbnail card.
type Card struct {
	*card.Root
	data *card.Data
}

// NewHeroCard returns a Teams hero card.
func NewHeroCard(opts *Options, cardOpts ...card.Option) (*Card, error) {
	return newCard(card.KindHeroCard, HeroContentType, opts, cardOpts)
}

// NewThumbnailCard returns a Teams thumbnail card.
func NewThumbnailCard(opts *Options, cardOpts ...card.Option) (*Card, error) {
	return newCard(card.KindThumbnailCard, ThumbnailContentType, opts, cardOpts)
}

func newCard(kind card.Kind, contentType string, opts *Options, cardOpts []card.Option) (*Card, error) {
	if opts == nil {
		opts = &Options{}
	}
	d := card.NewData()
	d.Set("contentType", contentType)
	c := &Card{Root: card.NewRoot(kind, d, cardOpts...), data: d}
	if opts.Title != "" {
		c.SetTitle(opts.Title)
	}
	if opts.Subtitle != "" {
		c.SetSubtitle(opts.Subtitle)
	}
	if opts.Text != "" {
		c.SetText(opts.Text)
	}
	if len(opts.Images) > 0 {
		if err := c.AddImages(opts.Images...); err != nil {
			return nil, err
		}
	}
	if len(opts.Buttons) > 0 {
		if err := c.AddButtons(opts.Buttons...); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Card) content() *card.Data { return c.data.Object("content") }

func (c *Card) AsData() *card.Data { return c.data.Clone() }

func (c *Card) SetTitle(title string)       { c.content().Set("title", title) }
func (c *Card) SetSubtitle(subtitle string) { c.content().Set("subtitle", subtitle) }
func (c *Card) SetText(text string)         { c.content().Set("text", text) }

func (c *Card) AddImages(images ...*Image) error {
	list, err := card.Collect("images", images)
	if err != nil {
		return err
	}
	c.content().Append("images", list...)
	return nil
}

func (c *Card) AddButtons(buttons ...*OpenURL) error {
	list, err := card.Collect("buttons", buttons)
	if err != nil {
		return err
	}
	c.content().Append("buttons", list...)
	return nil
}
