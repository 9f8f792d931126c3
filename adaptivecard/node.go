package adaptivecard

import (
	"maps"

	"github.com/utsurius/actionable-messages/card"
)

// Element is anything that can be placed in a card body or a container.
type Element interface {
	card.Element
	isElement()
}

// Action is anything that can be placed in an actions array or used as a
// select action.
type Action interface {
	card.Element
	isAction()
}

// ElementExtension is embedded by element types defined in other packages,
// such as the Outlook extensions, to make them usable as an Element.
type ElementExtension struct{}

func (ElementExtension) isElement() {}

// ActionExtension is embedded by action types defined in other packages to
// make them usable as an Action.
type ActionExtension struct{}

func (ActionExtension) isAction() {}

type node struct {
	data *card.Data
}

func newNode(typ string) node {
	d := card.NewData()
	if typ != "" {
		d.Set("type", typ)
	}
	return node{data: d}
}

// AsData returns a snapshot of the element's fields.
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

func setInt(d *card.Data, key string, v *int) {
	if v != nil {
		d.Set(key, *v)
	}
}

func setFloat(d *card.Data, key string, v *float64) {
	if v != nil {
		d.Set(key, *v)
	}
}

func setEnum[T ~string](d *card.Data, key string, v T) {
	if v != "" {
		d.Set(key, string(v))
	}
}

func setRequires(d *card.Data, requires map[string]string) {
	if len(requires) == 0 {
		return
	}
	out := make(map[string]any, len(requires))
	for k, v := range requires {
		out[k] = v
	}
	d.Set("requires", out)
}

// setAction stores the snapshot of an optional action; a nil action is
// treated as absent.
func setAction(d *card.Data, key string, a Action) {
	if card.IsNil(a) {
		return
	}
	d.Set(key, a.AsData())
}

func snapshotAction(d *card.Data, key string, a Action) error {
	snap, err := card.Snapshot(key, a)
	if err != nil {
		return err
	}
	d.Set(key, snap)
	return nil
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}

// ElementOptions are the fields shared by body elements.
type ElementOptions struct {
	ID        string
	Separator *bool
	Spacing   Spacing
	IsVisible *bool
	// Requires maps feature names to minimum host versions.
	Requires map[string]string
	Height   BlockElementHeight
}

func (o ElementOptions) apply(d *card.Data) {
	setString(d, "id", o.ID)
	setBool(d, "separator", o.Separator)
	setEnum(d, "spacing", o.Spacing)
	setBool(d, "isVisible", o.IsVisible)
	setRequires(d, o.Requires)
	setEnum(d, "height", o.Height)
}

// baseNode carries the setters shared by body elements and columns.
type baseNode struct {
	node
}

func newBaseNode(typ string) baseNode { return baseNode{node: newNode(typ)} }

func (b *baseNode) SetID(id string)                   { b.data.Set("id", id) }
func (b *baseNode) SetSeparator(v bool)               { b.data.Set("separator", v) }
func (b *baseNode) SetSpacing(s Spacing)              { b.data.Set("spacing", string(s)) }
func (b *baseNode) SetIsVisible(v bool)               { b.data.Set("isVisible", v) }
func (b *baseNode) SetRequires(req map[string]string) { setRequires(b.data, req) }
func (b *baseNode) SetHeight(h BlockElementHeight)    { b.data.Set("height", string(h)) }

type elementNode struct {
	baseNode
}

func newElementNode(typ string) elementNode {
	return elementNode{baseNode: newBaseNode(typ)}
}

func (*elementNode) isElement() {}

// SetFallback accepts FallbackDrop or another Element.
func (e *elementNode) SetFallback(fallback any) error {
	v, err := resolveElementFallback(fallback)
	if err != nil {
		return err
	}
	e.data.Set("fallback", v)
	return nil
}

func resolveElementFallback(fallback any) (any, error) {
	switch f := fallback.(type) {
	case FallbackOption:
		if f == FallbackDrop {
			return string(f), nil
		}
	case Element:
		if !card.IsNil(f) {
			return f.AsData(), nil
		}
	}
	return nil, card.Errorf(card.InvalidFallbackType, "invalid fallback type %T: want FallbackDrop or an element", fallback)
}

func resolveActionFallback(fallback any) (any, error) {
	switch f := fallback.(type) {
	case FallbackOption:
		if f == FallbackDrop {
			return string(f), nil
		}
	case Action:
		if !card.IsNil(f) {
			return f.AsData(), nil
		}
	}
	return nil, card.Errorf(card.InvalidFallbackType, "invalid fallback type %T: want FallbackDrop or an action", fallback)
}

func resolveBackgroundImage(image any) (any, error) {
	switch img := image.(type) {
	case string:
		return img, nil
	case *BackgroundImage:
		if img != nil {
			return img.AsData(), nil
		}
	}
	return nil, card.Errorf(card.InvalidImageType, "invalid image type %T: want a URL or *BackgroundImage", image)
}

func resolveWidth(width any) (any, error) {
	switch w := width.(type) {
	case Width:
		return string(w), nil
	case string:
		return w, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return w, nil
	}
	return nil, card.Errorf(card.InvalidWidthType, "invalid width type %T: want Width, string or integer", width)
}

func resolveHeight(height any) (any, error) {
	switch h := height.(type) {
	case BlockElementHeight:
		return string(h), nil
	case string:
		return h, nil
	}
	return nil, card.Errorf(card.InvalidHeightType, "invalid height type %T: want BlockElementHeight or string", height)
}

func resolveLabel(label any) (any, error) {
	switch l := label.(type) {
	case string:
		return l, nil
	case card.Translatable:
		if !card.IsNil(l) {
			return l, nil
		}
	}
	return nil, card.Errorf(card.InvalidLabelType, "invalid label type %T: want string or translatable text", label)
}
