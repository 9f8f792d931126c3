package messagecard

import (
	"slices"

	"github.com/google/uuid"
	"github.com/utsurius/actionable-messages/card"
)

const schemaContext = "https://schema.org/extensions"

// SectionOptions configures a Section.
type SectionOptions struct {
	StartGroup       bool
	Title            string
	Text             string
	ActivityImage    string
	ActivityTitle    string
	ActivitySubtitle string
	ActivityText     string
	HeroImage        *HeroImage
	Markdown         *bool
	Facts            []*Fact
	Actions          []Action
}

// Section groups content inside a MessageCard.
type Section struct {
	node
}

// NewSection returns a card section.
func NewSection(opts *SectionOptions) (*Section, error) {
	if opts == nil {
		opts = &SectionOptions{}
	}
	s := &Section{node: newNode("")}
	if opts.StartGroup {
		s.SetStartGroup(true)
	}
	setString(s.data, "title", opts.Title)
	setString(s.data, "text", opts.Text)
	s.setActivity(opts.ActivityImage, opts.ActivityTitle, opts.ActivitySubtitle, opts.ActivityText)
	if opts.HeroImage != nil {
		s.data.Set("heroImage", opts.HeroImage.AsData())
	}
	setBool(s.data, "markdown", opts.Markdown)
	if len(opts.Facts) > 0 {
		if err := s.AddFacts(opts.Facts...); err != nil {
			return nil, err
		}
	}
	if len(opts.Actions) > 0 {
		if err := s.AddPotentialActions(opts.Actions...); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Section) SetStartGroup(v bool)  { s.data.Set("startGroup", v) }
func (s *Section) SetTitle(title string) { s.data.Set("title", title) }
func (s *Section) SetText(text string)   { s.data.Set("text", text) }
func (s *Section) SetMarkdown(v bool)    { s.data.Set("markdown", v) }

// SetActivity sets the activity fields that are not empty.
func (s *Section) SetActivity(image, title, subtitle, text string) {
	s.setActivity(image, title, subtitle, text)
}

func (s *Section) setActivity(image, title, subtitle, text string) {
	setString(s.data, "activityImage", image)
	setString(s.data, "activityTitle", title)
	setString(s.data, "activitySubtitle", subtitle)
	setString(s.data, "activityText", text)
}

func (s *Section) SetHeroImage(h *HeroImage) error {
	snap, err := card.Snapshot("heroImage", h)
	if err != nil {
		return err
	}
	s.data.Set("heroImage", snap)
	return nil
}

func (s *Section) AddFacts(facts ...*Fact) error {
	list, err := card.Collect("facts", facts)
	if err != nil {
		return err
	}
	s.data.Append("facts", list...)
	return nil
}

func (s *Section) AddPotentialActions(actions ...Action) error {
	list, err := card.Collect("potentialAction", actions)
	if err != nil {
		return err
	}
	s.data.Append("potentialAction", list...)
	return nil
}

// Options configures a new MessageCard. Every field is optional.
type Options struct {
	Title      string
	Text       string
	Originator string
	Summary    string
	ThemeColor string
	// CorrelationID is used as-is when set. Otherwise a random v4 UUID is
	// generated unless DisableCorrelationID is set.
	CorrelationID        string
	DisableCorrelationID bool
	ExpectedActors       []string
	HideOriginalBody     *bool
}

// MessageCard is the root of a MessageCard payload.
type MessageCard struct {
	*card.Root
	data *card.Data
}

// NewMessageCard returns a MessageCard. The correlationId is generated unless disabled in opts.
func NewMessageCard(opts *Options, cardOpts ...card.Option) *MessageCard {
	if opts == nil {
		opts = &Options{}
	}
	d := card.NewData()
	d.Set("@type", "MessageCard")
	d.Set("@context", schemaContext)
	c := &MessageCard{Root: card.NewRoot(card.KindMessageCard, d, cardOpts...), data: d}
	setString(d, "title", opts.Title)
	setString(d, "text", opts.Text)
	setString(d, "originator", opts.Originator)
	setString(d, "summary", opts.Summary)
	setString(d, "themeColor", opts.ThemeColor)
	switch {
	case opts.CorrelationID != "":
		c.SetCorrelationID(opts.CorrelationID)
	case !opts.DisableCorrelationID:
		c.SetCorrelationID(uuid.NewString())
	}
	if len(opts.ExpectedActors) > 0 {
		c.SetExpectedActors(opts.ExpectedActors...)
	}
	setBool(d, "hideOriginalBody", opts.HideOriginalBody)
	return c
}

func (c *MessageCard) AsData() *card.Data { return c.data.Clone() }

func (c *MessageCard) SetTitle(title string)      { c.data.Set("title", title) }
func (c *MessageCard) SetText(text string)        { c.data.Set("text", text) }
func (c *MessageCard) SetOriginator(id string)    { c.data.Set("originator", id) }
func (c *MessageCard) SetSummary(summary string)  { c.data.Set("summary", summary) }
func (c *MessageCard) SetThemeColor(color string) { c.data.Set("themeColor", color) }
func (c *MessageCard) SetCorrelationID(id string) { c.data.Set("correlationId", id) }
func (c *MessageCard) SetHideOriginalBody(v bool) { c.data.Set("hideOriginalBody", v) }

func (c *MessageCard) SetExpectedActors(actors ...string) {
	c.data.Set("expectedActors", slices.Clone(actors))
}

func (c *MessageCard) AddSections(sections ...*Section) error {
	list, err := card.Collect("sections", sections)
	if err != nil {
		return err
	}
	c.data.Append("sections", list...)
	return nil
}

func (c *MessageCard) AddActions(actions ...Action) error {
	list, err := card.Collect("potentialAction", actions)
	if err != nil {
		return err
	}
	c.data.Append("potentialAction", list...)
	return nil
}
