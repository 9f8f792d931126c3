package messagecard

import (
	"maps"

	"github.com/utsurius/actionable-messages/card"
)

// Action is an entry of a potentialAction list.
type Action interface {
	card.Element
	isAction()
}

type actionNode struct {
	node
}

func newActionNode(typ string) actionNode { return actionNode{node: newNode(typ)} }

func (*actionNode) isAction() {}

func (a *actionNode) SetName(name string) { a.data.Set("name", name) }

// OpenURI opens a URI, optionally a different one per platform.
type OpenURI struct {
	actionNode
	os []OSType
}

// NewOpenURI returns an OpenUri action. Each OS may have one target.
func NewOpenURI(name string, targets ...*ActionTarget) (*OpenURI, error) {
	a := &OpenURI{actionNode: newActionNode("OpenUri")}
	a.SetName(name)
	if len(targets) > 0 {
		if err := a.AddTargets(targets...); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// AddTargets appends targets. Each platform may appear once; a repeat fails
// with DuplicateTarget and nothing is added.
func (a *OpenURI) AddTargets(targets ...*ActionTarget) error {
	list, err := card.Collect("targets", targets)
	if err != nil {
		return err
	}
	seen := make(map[OSType]bool, len(a.os)+len(targets))
	for _, os := range a.os {
		seen[os] = true
	}
	added := make([]OSType, 0, len(targets))
	for _, t := range targets {
		if seen[t.OS()] {
			return card.Errorf(card.DuplicateTarget, "target already set for '%s'", t.OS())
		}
		seen[t.OS()] = true
		added = append(added, t.OS())
	}
	a.os = append(a.os, added...)
	a.data.Append("targets", list...)
	return nil
}

// HTTPPostOptions configures an HttpPOST action.
type HTTPPostOptions struct {
	Headers         []*card.Header
	Body            string
	BodyContentType string
}

// HTTPPost posts the card inputs to a target URL.
type HTTPPost struct {
	actionNode
}

// NewHTTPPost returns an HttpPOST action sending to target.
func NewHTTPPost(name, target string, opts *HTTPPostOptions) (*HTTPPost, error) {
	if opts == nil {
		opts = &HTTPPostOptions{}
	}
	a := &HTTPPost{actionNode: newActionNode("HttpPOST")}
	a.SetTarget(target)
	a.SetName(name)
	if len(opts.Headers) > 0 {
		if err := a.AddHeaders(opts.Headers...); err != nil {
			return nil, err
		}
	}
	setString(a.data, "body", opts.Body)
	setString(a.data, "bodyContentType", opts.BodyContentType)
	return a, nil
}

func (a *HTTPPost) SetTarget(url string)         { a.data.Set("target", url) }
func (a *HTTPPost) SetBody(body string)          { a.data.Set("body", body) }
func (a *HTTPPost) SetBodyContentType(ct string) { a.data.Set("bodyContentType", ct) }

func (a *HTTPPost) AddHeaders(headers ...*card.Header) error {
	list, err := card.Collect("headers", headers)
	if err != nil {
		return err
	}
	a.data.Append("headers", list...)
	return nil
}

// InvokeAddInCommand opens an Outlook add-in.
type InvokeAddInCommand struct {
	actionNode
}

// NewInvokeAddInCommand returns the action. initializationContext may be nil.
func NewInvokeAddInCommand(name, addInID, desktopCommandID string, initializationContext map[string]any) *InvokeAddInCommand {
	a := &InvokeAddInCommand{actionNode: newActionNode("InvokeAddInCommand")}
	a.SetAddInID(addInID)
	a.SetDesktopCommandID(desktopCommandID)
	a.SetName(name)
	if len(initializationContext) > 0 {
		a.SetInitializationContext(initializationContext)
	}
	return a
}

func (a *InvokeAddInCommand) SetAddInID(id string)          { a.data.Set("addInId", id) }
func (a *InvokeAddInCommand) SetDesktopCommandID(id string) { a.data.Set("desktopCommandId", id) }

func (a *InvokeAddInCommand) SetInitializationContext(ctx map[string]any) {
	a.data.Set("initializationContext", maps.Clone(ctx))
}

// ActionCard shows a set of inputs with their own actions.
type ActionCard struct {
	actionNode
}

// NewActionCard returns an ActionCard collecting inputs before running actions.
func NewActionCard(name string, inputs []Input, actions []Action) (*ActionCard, error) {
	a := &ActionCard{actionNode: newActionNode("ActionCard")}
	a.SetName(name)
	if len(inputs) > 0 {
		if err := a.AddInputs(inputs...); err != nil {
			return nil, err
		}
	}
	if len(actions) > 0 {
		if err := a.AddActions(actions...); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *ActionCard) AddInputs(inputs ...Input) error {
	list, err := card.Collect("inputs", inputs)
	if err != nil {
		return err
	}
	a.data.Append("inputs", list...)
	return nil
}

func (a *ActionCard) AddActions(actions ...Action) error {
	list, err := card.Collect("actions", actions)
	if err != nil {
		return err
	}
	a.data.Append("actions", list...)
	return nil
}
