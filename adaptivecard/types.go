package adaptivecard

import (
	"github.com/utsurius/actionable-messages/card"
)

// BackgroundImageOptions configures a BackgroundImage.
type BackgroundImageOptions struct {
	FillMode            FillMode
	HorizontalAlignment HorizontalAlignment
	VerticalAlignment   VerticalAlignment
}

// BackgroundImage is the object form of a backgroundImage field.
type BackgroundImage struct {
	node
}

// NewBackgroundImage returns a BackgroundImage loaded from url.
func NewBackgroundImage(url string, opts *BackgroundImageOptions) *BackgroundImage {
	b := &BackgroundImage{node: newNode("")}
	b.data.Set("url", url)
	if opts != nil {
		setEnum(b.data, "fillMode", opts.FillMode)
		setEnum(b.data, "horizontalAlignment", opts.HorizontalAlignment)
		setEnum(b.data, "verticalAlignment", opts.VerticalAlignment)
	}
	return b
}

func (b *BackgroundImage) SetURL(url string)      { b.data.Set("url", url) }
func (b *BackgroundImage) SetFillMode(m FillMode) { b.data.Set("fillMode", string(m)) }

func (b *BackgroundImage) SetHorizontalAlignment(a HorizontalAlignment) {
	b.data.Set("horizontalAlignment", string(a))
}

func (b *BackgroundImage) SetVerticalAlignment(a VerticalAlignment) {
	b.data.Set("verticalAlignment", string(a))
}

// Refresh makes the card refresh itself through an Action.Execute.
type Refresh struct {
	node
}

// NewRefresh returns a Refresh. userIDs limits automatic refresh to the
// listed users.
func NewRefresh(action *Execute, userIDs ...string) (*Refresh, error) {
	r := &Refresh{node: newNode("")}
	if err := r.SetAction(action); err != nil {
		return nil, err
	}
	if len(userIDs) > 0 {
		r.SetUserIDs(userIDs...)
	}
	return r, nil
}

func (r *Refresh) SetAction(action *Execute) error {
	snap, err := card.Snapshot("action", action)
	if err != nil {
		return err
	}
	r.data.Set("action", snap)
	return nil
}

func (r *Refresh) SetUserIDs(ids ...string) {
	list := make([]any, len(ids))
	for i, id := range ids {
		list[i] = id
	}
	r.data.Set("userIds", list)
}

// TokenExchangeResource describes a token the host may exchange on behalf of
// the user for single sign-on.
type TokenExchangeResource struct {
	node
}

// NewTokenExchangeResource describes an SSO token exchange.
func NewTokenExchangeResource(id, uri, providerID string) *TokenExchangeResource {
	t := &TokenExchangeResource{node: newNode("")}
	t.data.Set("id", id)
	t.data.Set("uri", uri)
	t.data.Set("providerId", providerID)
	return t
}

// AuthCardButton is a sign-in button of an Authentication block.
type AuthCardButton struct {
	node
}

// NewAuthCardButton returns a sign-in button for Authentication.
func NewAuthCardButton(typ, value, title, image string) *AuthCardButton {
	b := &AuthCardButton{node: newNode(typ)}
	b.data.Set("value", value)
	setString(b.data, "title", title)
	setString(b.data, "image", image)
	return b
}

// AuthenticationOptions configures Authentication.
type AuthenticationOptions struct {
	Text                  string
	ConnectionName        string
	TokenExchangeResource *TokenExchangeResource
}

// Authentication describes how the host obtains a token for the card.
type Authentication struct {
	node
}

// NewAuthentication returns the authentication block of a card.
func NewAuthentication(opts *AuthenticationOptions, buttons ...*AuthCardButton) (*Authentication, error) {
	a := &Authentication{node: newNode("")}
	if opts != nil {
		setString(a.data, "text", opts.Text)
		setString(a.data, "connectionName", opts.ConnectionName)
		if opts.TokenExchangeResource != nil {
			a.data.Set("tokenExchangeResource", opts.TokenExchangeResource.AsData())
		}
	}
	if err := a.SetButtons(buttons...); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Authentication) SetButtons(buttons ...*AuthCardButton) error {
	list, err := card.Collect("buttons", buttons)
	if err != nil {
		return err
	}
	a.data.Set("buttons", list)
	return nil
}

func (a *Authentication) SetText(text string)           { a.data.Set("text", text) }
func (a *Authentication) SetConnectionName(name string) { a.data.Set("connectionName", name) }

func (a *Authentication) SetTokenExchangeResource(r *TokenExchangeResource) error {
	snap, err := card.Snapshot("tokenExchangeResource", r)
	if err != nil {
		return err
	}
	a.data.Set("tokenExchangeResource", snap)
	return nil
}

// Metadata carries the canonical URL of the card.
type Metadata struct {
	node
}

// NewMetadata returns card metadata pointing at webURL.
func NewMetadata(webURL string) *Metadata {
	m := &Metadata{node: newNode("")}
	m.data.Set("webUrl", webURL)
	return m
}
