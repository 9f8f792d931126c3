package adaptivecard

import (
	"github.com/utsurius/actionable-messages/card"
)

// ActionOptions are the fields shared by all actions.
type ActionOptions struct {
	ID        string
	Title     string
	IconURL   string
	Style     ActionStyle
	Tooltip   string
	IsEnabled *bool
	Mode      ActionMode
	Requires  map[string]string
}

func (o *ActionOptions) apply(d *card.Data) {
	if o == nil {
		return
	}
	setString(d, "id", o.ID)
	setString(d, "title", o.Title)
	setString(d, "iconUrl", o.IconURL)
	setEnum(d, "style", o.Style)
	setString(d, "tooltip", o.Tooltip)
	setBool(d, "isEnabled", o.IsEnabled)
	setEnum(d, "mode", o.Mode)
	setRequires(d, o.Requires)
}

type actionNode struct {
	node
}

func newActionNode(typ string, opts *ActionOptions) actionNode {
	a := actionNode{node: newNode(typ)}
	opts.apply(a.data)
	return a
}

func (*actionNode) isAction() {}

func (a *actionNode) SetID(id string)                   { a.data.Set("id", id) }
func (a *actionNode) SetTitle(title string)             { a.data.Set("title", title) }
func (a *actionNode) SetIconURL(url string)             { a.data.Set("iconUrl", url) }
func (a *actionNode) SetStyle(style ActionStyle)        { a.data.Set("style", string(style)) }
func (a *actionNode) SetTooltip(tooltip string)         { a.data.Set("tooltip", tooltip) }
func (a *actionNode) SetIsEnabled(v bool)               { a.data.Set("isEnabled", v) }
func (a *actionNode) SetMode(mode ActionMode)           { a.data.Set("mode", string(mode)) }
func (a *actionNode) SetRequires(req map[string]string) { setRequires(a.data, req) }

// SetFallback accepts FallbackDrop or another Action.
func (a *actionNode) SetFallback(fallback any) error {
	v, err := resolveActionFallback(fallback)
	if err != nil {
		return err
	}
	a.data.Set("fallback", v)
	return nil
}

// OpenURL is Action.OpenUrl.
type OpenURL struct {
	actionNode
}

// NewOpenURL returns an Action.OpenUrl pointing at url.
func NewOpenURL(url string, opts *ActionOptions) *OpenURL {
	a := &OpenURL{actionNode: newActionNode("Action.OpenUrl", opts)}
	a.SetURL(url)
	return a
}

func (a *OpenURL) SetURL(url string) { a.data.Set("url", url) }

// SubmitOptions configures an Action.Submit.
type SubmitOptions struct {
	ActionOptions
	// Data is a string or an object merged with the input values.
	Data any
}

// Submit is Action.Submit.
type Submit struct {
	actionNode
}

// NewSubmit returns an Action.Submit. A nil opts yields a bare action.
func NewSubmit(opts *SubmitOptions) *Submit {
	if opts == nil {
		opts = &SubmitOptions{}
	}
	a := &Submit{actionNode: newActionNode("Action.Submit", &opts.ActionOptions)}
	if opts.Data != nil {
		a.SetData(opts.Data)
	}
	return a
}

// SetData stores data as-is. Plain maps are copied.
func (a *Submit) SetData(data any) {
	if m, ok := data.(map[string]any); ok {
		data = cloneMap(m)
	}
	a.data.Set("data", data)
}

// ShowCard is Action.ShowCard.
type ShowCard struct {
	actionNode
}

// NewShowCard returns an Action.ShowCard. c may be nil and set later.
func NewShowCard(c *AdaptiveCard, opts *ActionOptions) *ShowCard {
	a := &ShowCard{actionNode: newActionNode("Action.ShowCard", opts)}
	if c != nil {
		a.data.Set("card", c.data.Clone())
	}
	return a
}

// SetCard stores a snapshot of the card's payload.
func (a *ShowCard) SetCard(c *AdaptiveCard) error {
	if c == nil {
		return card.Errorf(card.InvalidElementType, "card: must not be nil")
	}
	a.data.Set("card", c.data.Clone())
	return nil
}

// TargetElement names an element toggled by Action.ToggleVisibility.
type TargetElement struct {
	node
}

// NewTargetElement returns a target. A nil isVisible toggles the element.
func NewTargetElement(elementID string, isVisible *bool) *TargetElement {
	t := &TargetElement{node: newNode("")}
	t.SetElementID(elementID)
	setBool(t.data, "isVisible", isVisible)
	return t
}

func (t *TargetElement) SetElementID(id string) { t.data.Set("elementId", id) }
func (t *TargetElement) SetIsVisible(v bool)    { t.data.Set("isVisible", v) }

// ToggleVisibility is Action.ToggleVisibility.
type ToggleVisibility struct {
	actionNode
}

// NewToggleVisibility returns an Action.ToggleVisibility. Each target is a
// *TargetElement or an element id.
func NewToggleVisibility(opts *ActionOptions, targets ...any) (*ToggleVisibility, error) {
	a := &ToggleVisibility{actionNode: newActionNode("Action.ToggleVisibility", opts)}
	if len(targets) > 0 {
		if err := a.SetTargetElements(targets...); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// SetTargetElements replaces the targets.
func (a *ToggleVisibility) SetTargetElements(targets ...any) error {
	list, err := resolveTargets(targets)
	if err != nil {
		return err
	}
	a.data.Set("targetElements", list)
	return nil
}

// AddTargetElements appends targets.
func (a *ToggleVisibility) AddTargetElements(targets ...any) error {
	list, err := resolveTargets(targets)
	if err != nil {
		return err
	}
	a.data.Append("targetElements", list...)
	return nil
}

func resolveTargets(targets []any) ([]any, error) {
	out := make([]any, 0, len(targets))
	for i, t := range targets {
		switch v := t.(type) {
		case string:
			out = append(out, v)
			continue
		case *TargetElement:
			if v != nil {
				out = append(out, v.AsData())
				continue
			}
		}
		return nil, card.Errorf(card.InvalidTargetElementType, "targetElements[%d]: invalid type %T: want *TargetElement or element id", i, t)
	}
	return out, nil
}

// ExecuteOptions configures an Action.Execute.
type ExecuteOptions struct {
	ActionOptions
	Verb             string
	Data             any
	AssociatedInputs AssociatedInputs
}

// Execute is Action.Execute, the universal action model of schema 1.4.
type Execute struct {
	actionNode
}

// NewExecute returns an Action.Execute.
func NewExecute(opts *ExecuteOptions) *Execute {
	if opts == nil {
		opts = &ExecuteOptions{}
	}
	a := &Execute{actionNode: newActionNode("Action.Execute", &opts.ActionOptions)}
	setString(a.data, "verb", opts.Verb)
	if opts.Data != nil {
		a.SetData(opts.Data)
	}
	setEnum(a.data, "associatedInputs", opts.AssociatedInputs)
	return a
}

func (a *Execute) SetVerb(verb string) { a.data.Set("verb", verb) }

// SetData stores data as-is. Plain maps are copied.
func (a *Execute) SetData(data any) {
	if m, ok := data.(map[string]any); ok {
		data = cloneMap(m)
	}
	a.data.Set("data", data)
}

func (a *Execute) SetAssociatedInputs(v AssociatedInputs) {
	a.data.Set("associatedInputs", string(v))
}
