// Package messagecard builds Office 365 connector MessageCard payloads.
package messagecard

import (
	"github.com/utsurius/actionable-messages/card"
)

// OSType names the platform an ActionTarget applies to.
type OSType string

const (
	OSDefault OSType = "default"
	OSWindows OSType = "windows"
	OSiOS     OSType = "iOS"
	OSAndroid OSType = "android"
)

// ChoiceStyle controls how a MultichoiceInput is displayed.
type ChoiceStyle string

const (
	ChoiceStyleNormal   ChoiceStyle = "normal"
	ChoiceStyleExpanded ChoiceStyle = "expanded"
)

type node struct {
	data *card.Data
}

func newNode(typ string) node {
	d := card.NewData()
	if typ != "" {
		d.Set("@type", typ)
	}
	return node{data: d}
}

func (n *node) AsData() *card.Data { return n.data.Clone() }

func setString(d *card.Data, key, v string) {
	if v != "" {
		d.Set(key, v)
	}
}

func setBool(d *card.Data, key string, v *bool) {
	if v != nil {
		d.Set(key, *v)
	}
}

// Fact is one name/value pair of a section.
type Fact struct {
	node
}

// NewFact returns a name/value pair for a Section.
func NewFact(name, value string) *Fact {
	f := &Fact{node: newNode("")}
	f.data.Set("name", name)
	f.data.Set("value", value)
	return f
}

// HeroImage is the large image of a section.
type HeroImage struct {
	node
}

// NewHeroImage returns the hero image of a Section.
func NewHeroImage(url, title string) *HeroImage {
	h := &HeroImage{node: newNode("")}
	h.SetURL(url)
	setString(h.data, "title", title)
	return h
}

func (h *HeroImage) SetURL(url string)     { h.data.Set("image", url) }
func (h *HeroImage) SetTitle(title string) { h.data.Set("title", title) }

// ActionTarget is the URI an OpenURI action opens on one platform.
type ActionTarget struct {
	node
	os OSType
}

// NewActionTarget returns the OpenUri target for one OS.
func NewActionTarget(os OSType, uri string) *ActionTarget {
	t := &ActionTarget{node: newNode(""), os: os}
	t.data.Set("os", string(os))
	t.data.Set("uri", uri)
	return t
}

// OS returns the platform of the target.
func (t *ActionTarget) OS() OSType { return t.os }

// InputChoice is one option of a MultichoiceInput.
type InputChoice struct {
	node
	value string
}

// NewInputChoice returns one choice of a MultichoiceInput.
func NewInputChoice(display, value string) *InputChoice {
	c := &InputChoice{node: newNode(""), value: value}
	c.data.Set("value", value)
	c.data.Set("display", display)
	return c
}

// Value returns the value submitted when the choice is selected.
func (c *InputChoice) Value() string { return c.value }
