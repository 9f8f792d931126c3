// Package outlook provides the Adaptive Card actions and containers that only
// Outlook Actionable Messages understand. Every type here can be placed
// wherever an adaptivecard.Action or adaptivecard.Element is expected.
package outlook

import (
	"reflect"
	"slices"
	"strings"

	"github.com/utsurius/actionable-messages/adaptivecard"
	"github.com/utsurius/actionable-messages/card"
)

// Methods lists the HTTP methods accepted by Action.Http.
var Methods = []string{"GET", "POST"}

type node struct {
	data *card.Data
}

func newNode(typ string, isVisible *bool) node {
	d := card.NewData()
	d.Set("type", typ)
	if isVisible != nil {
		d.Set("isVisible", *isVisible)
	}
	return node{data: d}
}

func (n *node) AsData() *card.Data { return n.data.Clone() }

func (n *node) SetIsVisible(v bool) { n.data.Set("isVisible", v) }

func setString(d *card.Data, key, v string) {
	if v != "" {
		d.Set(key, v)
	}
}

// HTTPOptions configures an HTTP action.
type HTTPOptions struct {
	IsVisible *bool
	Title     string
	Headers   []*card.Header
	// Body is required for POST.
	Body any
}

// HTTP is Action.Http.
type HTTP struct {
	adaptivecard.ActionExtension
	node
}

// NewHTTP returns an Action.Http. The method must be GET or POST, and POST
// requires a non-empty body.
func NewHTTP(method, url string, opts *HTTPOptions) (*HTTP, error) {
	if opts == nil {
		opts = &HTTPOptions{}
	}
	if !slices.Contains(Methods, method) {
		return nil, card.Errorf(card.InvalidMethod, "invalid method %q: available methods are %s", method, strings.Join(Methods, ", "))
	}
	if method == "POST" && isEmptyBody(opts.Body) {
		return nil, card.Errorf(card.MissingRequiredBody, "if method is POST body must be provided")
	}
	a := &HTTP{node: newNode("Action.Http", nil)}
	a.data.Set("method", method)
	a.data.Set("url", url)
	if opts.IsVisible != nil {
		a.SetIsVisible(*opts.IsVisible)
	}
	setString(a.data, "title", opts.Title)
	if len(opts.Headers) > 0 {
		if err := a.AddHeaders(opts.Headers...); err != nil {
			return nil, err
		}
	}
	if !isEmptyBody(opts.Body) {
		a.SetBody(opts.Body)
	}
	return a, nil
}

// isEmptyBody reports whether body carries nothing to send: nil, a nil
// pointer, or a zero-length string, map, slice or array.
func isEmptyBody(body any) bool {
	switch b := body.(type) {
	case nil:
		return true
	case *card.Data:
		return b == nil || b.Len() == 0
	}
	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Pointer:
		return v.IsNil()
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array:
		return v.Len() == 0
	}
	return false
}

func (a *HTTP) SetTitle(title string) { a.data.Set("title", title) }
func (a *HTTP) SetBody(body any)      { a.data.Set("body", body) }

func (a *HTTP) AddHeaders(headers ...*card.Header) error {
	list, err := card.Collect("headers", headers)
	if err != nil {
		return err
	}
	a.data.Append("headers", list...)
	return nil
}

// InvokeAddInCommandOptions configures an InvokeAddInCommand action.
type InvokeAddInCommandOptions struct {
	IsVisible *bool
	Title     string
}

// InvokeAddInCommand is Action.InvokeAddInCommand. It opens an Outlook
// add-in, passing initializationContext to it.
type InvokeAddInCommand struct {
	adaptivecard.ActionExtension
	node
}

// NewInvokeAddInCommand returns an action that opens an Outlook add-in.
func NewInvokeAddInCommand(addInID, desktopCommandID string, initializationContext any, opts *InvokeAddInCommandOptions) *InvokeAddInCommand {
	if opts == nil {
		opts = &InvokeAddInCommandOptions{}
	}
	a := &InvokeAddInCommand{node: newNode("Action.InvokeAddInCommand", nil)}
	a.data.Set("addInId", addInID)
	a.data.Set("desktopCommandId", desktopCommandID)
	a.data.Set("initializationContext", initializationContext)
	if opts.IsVisible != nil {
		a.SetIsVisible(*opts.IsVisible)
	}
	setString(a.data, "title", opts.Title)
	return a
}

func (a *InvokeAddInCommand) SetTitle(title string) { a.data.Set("title", title) }

// FormOptions configure the display form actions.
type FormOptions struct {
	IsVisible *bool
	Title     string
	ItemID    string
}

type formNode struct {
	adaptivecard.ActionExtension
	node
}

func newFormNode(typ string, opts *FormOptions) formNode {
	if opts == nil {
		opts = &FormOptions{}
	}
	f := formNode{node: newNode(typ, opts.IsVisible)}
	setString(f.data, "title", opts.Title)
	setString(f.data, "itemId", opts.ItemID)
	return f
}

func (f *formNode) SetTitle(title string) { f.data.Set("title", title) }
func (f *formNode) SetItemID(id string)   { f.data.Set("itemId", id) }

// DisplayMessageForm is Action.DisplayMessageForm.
type DisplayMessageForm struct {
	formNode
}

// NewDisplayMessageForm returns Action.DisplayMessageForm.
func NewDisplayMessageForm(opts *FormOptions) *DisplayMessageForm {
	return &DisplayMessageForm{formNode: newFormNode("Action.DisplayMessageForm", opts)}
}

// DisplayAppointmentForm is Action.DisplayAppointmentForm.
type DisplayAppointmentForm struct {
	formNode
}

// NewDisplayAppointmentForm returns Action.DisplayAppointmentForm.
func NewDisplayAppointmentForm(opts *FormOptions) *DisplayAppointmentForm {
	return &DisplayAppointmentForm{formNode: newFormNode("Action.DisplayAppointmentForm", opts)}
}

// ToggleVisibilityOptions configures a ToggleVisibility action.
type ToggleVisibilityOptions struct {
	IsVisible *bool
	Title     string
}

// ToggleVisibility is the Outlook flavor of Action.ToggleVisibility.
type ToggleVisibility struct {
	adaptivecard.ActionExtension
	node
}

// NewToggleVisibility returns the action. Each target is an
// *adaptivecard.TargetElement or an element id.
func NewToggleVisibility(opts *ToggleVisibilityOptions, targets ...any) (*ToggleVisibility, error) {
	if opts == nil {
		opts = &ToggleVisibilityOptions{}
	}
	a := &ToggleVisibility{node: newNode("Action.ToggleVisibility", nil)}
	if err := a.AddTargetElements(targets...); err != nil {
		return nil, err
	}
	if opts.IsVisible != nil {
		a.SetIsVisible(*opts.IsVisible)
	}
	setString(a.data, "title", opts.Title)
	return a, nil
}

func (a *ToggleVisibility) SetTitle(title string) { a.data.Set("title", title) }

func (a *ToggleVisibility) AddTargetElements(targets ...any) error {
	list := make([]any, 0, len(targets))
	for i, t := range targets {
		switch v := t.(type) {
		case string:
			list = append(list, v)
			continue
		case *adaptivecard.TargetElement:
			if v != nil {
				list = append(list, v.AsData())
				continue
			}
		}
		return card.Errorf(card.InvalidTargetElementType, "targetElements[%d]: invalid type %T: want *adaptivecard.TargetElement or element id", i, t)
	}
	a.data.Append("targetElements", list...)
	return nil
}

// ActionSetOptions configures an Outlook ActionSet.
type ActionSetOptions struct {
	IsVisible           *bool
	ID                  string
	Spacing             adaptivecard.Spacing
	Separator           *bool
	HorizontalAlignment adaptivecard.HorizontalAlignment
}

// ActionSet is the Outlook flavor of ActionSet. It accepts Outlook actions
// as well as the standard ones.
type ActionSet struct {
	adaptivecard.ElementExtension
	node
}

// NewActionSet returns an ActionSet that also accepts Outlook actions.
func NewActionSet(opts *ActionSetOptions, actions ...adaptivecard.Action) (*ActionSet, error) {
	if opts == nil {
		opts = &ActionSetOptions{}
	}
	e := &ActionSet{node: newNode("ActionSet", opts.IsVisible)}
	setString(e.data, "id", opts.ID)
	setString(e.data, "spacing", string(opts.Spacing))
	if opts.Separator != nil {
		e.data.Set("separator", *opts.Separator)
	}
	setString(e.data, "horizontalAlignment", string(opts.HorizontalAlignment))
	if len(actions) > 0 {
		if err := e.AddActions(actions...); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *ActionSet) SetID(id string)                   { e.data.Set("id", id) }
func (e *ActionSet) SetSpacing(s adaptivecard.Spacing) { e.data.Set("spacing", string(s)) }
func (e *ActionSet) SetSeparator(v bool)               { e.data.Set("separator", v) }

func (e *ActionSet) SetHorizontalAlignment(a adaptivecard.HorizontalAlignment) {
	e.data.Set("horizontalAlignment", string(a))
}

func (e *ActionSet) AddActions(actions ...adaptivecard.Action) error {
	list, err := card.Collect("actions", actions)
	if err != nil {
		return err
	}
	e.data.Append("actions", list...)
	return nil
}
