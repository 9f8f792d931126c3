package adaptivecard

import (
	"github.com/utsurius/actionable-messages/card"
)

// InputOptions are the fields shared by all inputs.
type InputOptions struct {
	ElementOptions
	// Label is a plain label. Use SetLabel for translatable labels.
	Label        string
	IsRequired   *bool
	ErrorMessage string
}

func (o *InputOptions) apply(d *card.Data) {
	o.ElementOptions.apply(d)
	setString(d, "label", o.Label)
	setBool(d, "isRequired", o.IsRequired)
	setString(d, "errorMessage", o.ErrorMessage)
}

type inputNode struct {
	elementNode
}

func newInputNode(typ, id string, opts *InputOptions) inputNode {
	in := inputNode{elementNode: newElementNode(typ)}
	in.data.Set("id", id)
	opts.apply(in.data)
	// The positional id wins over ElementOptions.ID.
	in.data.Set("id", id)
	return in
}

func (in *inputNode) SetIsRequired(v bool)       { in.data.Set("isRequired", v) }
func (in *inputNode) SetErrorMessage(msg string) { in.data.Set("errorMessage", msg) }

// SetLabel accepts a string or a card.Translatable.
func (in *inputNode) SetLabel(label any) error {
	v, err := resolveLabel(label)
	if err != nil {
		return err
	}
	in.data.Set("label", v)
	return nil
}

// TextInputOptions configures a TextInput.
type TextInputOptions struct {
	InputOptions
	IsMultiline  *bool
	MaxLength    *int
	Placeholder  string
	Style        TextInputStyle
	InlineAction Action
	Value        string
	Regex        string
}

// TextInput is Input.Text.
type TextInput struct {
	inputNode
}

// NewTextInput returns an Input.Text with the given id.
func NewTextInput(id string, opts *TextInputOptions) *TextInput {
	if opts == nil {
		opts = &TextInputOptions{}
	}
	in := &TextInput{inputNode: newInputNode("Input.Text", id, &opts.InputOptions)}
	setBool(in.data, "isMultiline", opts.IsMultiline)
	setInt(in.data, "maxLength", opts.MaxLength)
	setString(in.data, "placeholder", opts.Placeholder)
	setEnum(in.data, "style", opts.Style)
	setAction(in.data, "inlineAction", opts.InlineAction)
	setString(in.data, "value", opts.Value)
	setString(in.data, "regex", opts.Regex)
	return in
}

func (in *TextInput) SetIsMultiline(v bool)      { in.data.Set("isMultiline", v) }
func (in *TextInput) SetMaxLength(n int)         { in.data.Set("maxLength", n) }
func (in *TextInput) SetPlaceholder(text string) { in.data.Set("placeholder", text) }
func (in *TextInput) SetStyle(s TextInputStyle)  { in.data.Set("style", string(s)) }
func (in *TextInput) SetValue(v string)          { in.data.Set("value", v) }
func (in *TextInput) SetRegex(re string)         { in.data.Set("regex", re) }

func (in *TextInput) SetInlineAction(a Action) error {
	return snapshotAction(in.data, "inlineAction", a)
}

// NumberInputOptions configures a NumberInput.
type NumberInputOptions struct {
	InputOptions
	Min         *float64
	Max         *float64
	Placeholder string
	Value       *float64
}

// NumberInput is Input.Number.
type NumberInput struct {
	inputNode
}

// NewNumberInput returns an Input.Number with the given id.
func NewNumberInput(id string, opts *NumberInputOptions) *NumberInput {
	if opts == nil {
		opts = &NumberInputOptions{}
	}
	in := &NumberInput{inputNode: newInputNode("Input.Number", id, &opts.InputOptions)}
	setFloat(in.data, "min", opts.Min)
	setFloat(in.data, "max", opts.Max)
	setString(in.data, "placeholder", opts.Placeholder)
	setFloat(in.data, "value", opts.Value)
	return in
}

func (in *NumberInput) SetMin(v float64)           { in.data.Set("min", v) }
func (in *NumberInput) SetMax(v float64)           { in.data.Set("max", v) }
func (in *NumberInput) SetPlaceholder(text string) { in.data.Set("placeholder", text) }
func (in *NumberInput) SetValue(v float64)         { in.data.Set("value", v) }

// DateTimeOptions configure Input.Date and Input.Time. Dates use
// YYYY-MM-DD and times HH:MM.
type DateTimeOptions struct {
	InputOptions
	Min         string
	Max         string
	Placeholder string
	Value       string
}

func (o *DateTimeOptions) apply(d *card.Data) {
	setString(d, "min", o.Min)
	setString(d, "max", o.Max)
	setString(d, "placeholder", o.Placeholder)
	setString(d, "value", o.Value)
}

type dateTimeNode struct {
	inputNode
}

func newDateTimeNode(typ, id string, opts *DateTimeOptions) dateTimeNode {
	if opts == nil {
		opts = &DateTimeOptions{}
	}
	n := dateTimeNode{inputNode: newInputNode(typ, id, &opts.InputOptions)}
	opts.apply(n.data)
	return n
}

func (n *dateTimeNode) SetMin(v string)            { n.data.Set("min", v) }
func (n *dateTimeNode) SetMax(v string)            { n.data.Set("max", v) }
func (n *dateTimeNode) SetPlaceholder(text string) { n.data.Set("placeholder", text) }
func (n *dateTimeNode) SetValue(v string)          { n.data.Set("value", v) }

// DateInput is Input.Date.
type DateInput struct {
	dateTimeNode
}

// NewDateInput returns an Input.Date with the given id.
func NewDateInput(id string, opts *DateTimeOptions) *DateInput {
	return &DateInput{dateTimeNode: newDateTimeNode("Input.Date", id, opts)}
}

// TimeInput is Input.Time.
type TimeInput struct {
	dateTimeNode
}

// NewTimeInput returns an Input.Time with the given id.
func NewTimeInput(id string, opts *DateTimeOptions) *TimeInput {
	return &TimeInput{dateTimeNode: newDateTimeNode("Input.Time", id, opts)}
}

// ToggleInputOptions configures a ToggleInput.
type ToggleInputOptions struct {
	InputOptions
	Value    string
	ValueOff string
	ValueOn  string
	Wrap     *bool
}

// ToggleInput is Input.Toggle.
type ToggleInput struct {
	inputNode
}

// NewToggleInput returns an Input.Toggle with the given id and title.
func NewToggleInput(id, title string, opts *ToggleInputOptions) *ToggleInput {
	if opts == nil {
		opts = &ToggleInputOptions{}
	}
	in := &ToggleInput{inputNode: newInputNode("Input.Toggle", id, &opts.InputOptions)}
	in.SetTitle(title)
	setString(in.data, "value", opts.Value)
	setString(in.data, "valueOff", opts.ValueOff)
	setString(in.data, "valueOn", opts.ValueOn)
	setBool(in.data, "wrap", opts.Wrap)
	return in
}

func (in *ToggleInput) SetTitle(title string) { in.data.Set("title", title) }
func (in *ToggleInput) SetValue(v string)     { in.data.Set("value", v) }
func (in *ToggleInput) SetValueOff(v string)  { in.data.Set("valueOff", v) }
func (in *ToggleInput) SetValueOn(v string)   { in.data.Set("valueOn", v) }
func (in *ToggleInput) SetWrap(v bool)        { in.data.Set("wrap", v) }

// InputChoice is one option of a ChoiceSetInput.
type InputChoice struct {
	node
}

// NewInputChoice returns one choice of a ChoiceSetInput.
func NewInputChoice(title, value string) *InputChoice {
	c := &InputChoice{node: newNode("")}
	c.data.Set("title", title)
	c.data.Set("value", value)
	return c
}

// ChoiceSetInputOptions configures a ChoiceSetInput.
type ChoiceSetInputOptions struct {
	InputOptions
	IsMultiSelect *bool
	Style         ChoiceInputStyle
	// Value holds the selected values, comma separated.
	Value       string
	Placeholder string
	Wrap        *bool
}

// ChoiceSetInput is Input.ChoiceSet.
type ChoiceSetInput struct {
	inputNode
}

// NewChoiceSetInput returns an Input.ChoiceSet. Choice values must be unique.
func NewChoiceSetInput(id string, opts *ChoiceSetInputOptions, choices ...*InputChoice) (*ChoiceSetInput, error) {
	if opts == nil {
		opts = &ChoiceSetInputOptions{}
	}
	in := &ChoiceSetInput{inputNode: newInputNode("Input.ChoiceSet", id, &opts.InputOptions)}
	if err := in.SetChoices(choices...); err != nil {
		return nil, err
	}
	setBool(in.data, "isMultiSelect", opts.IsMultiSelect)
	setEnum(in.data, "style", opts.Style)
	setString(in.data, "value", opts.Value)
	setString(in.data, "placeholder", opts.Placeholder)
	setBool(in.data, "wrap", opts.Wrap)
	return in, nil
}

func (in *ChoiceSetInput) SetChoices(choices ...*InputChoice) error {
	list, err := card.Collect("choices", choices)
	if err != nil {
		return err
	}
	in.data.Set("choices", list)
	return nil
}

func (in *ChoiceSetInput) AddChoices(choices ...*InputChoice) error {
	list, err := card.Collect("choices", choices)
	if err != nil {
		return err
	}
	in.data.Append("choices", list...)
	return nil
}

func (in *ChoiceSetInput) SetIsMultiSelect(v bool)     { in.data.Set("isMultiSelect", v) }
func (in *ChoiceSetInput) SetStyle(s ChoiceInputStyle) { in.data.Set("style", string(s)) }
func (in *ChoiceSetInput) SetValue(v string)           { in.data.Set("value", v) }
func (in *ChoiceSetInput) SetPlaceholder(text string)  { in.data.Set("placeholder", text) }
func (in *ChoiceSetInput) SetWrap(v bool)              { in.data.Set("wrap", v) }
