package messagecard

import (
	"slices"

	"github.com/utsurius/actionable-messages/card"
)

// Input is an input of an ActionCard.
type Input interface {
	card.Element
	isInput()
}

// InputOptions are the fields shared by all inputs.
type InputOptions struct {
	ID         string
	Title      string
	Value      string
	IsRequired *bool
}

type inputNode struct {
	node
}

func newInputNode(typ string, opts *InputOptions) inputNode {
	in := inputNode{node: newNode(typ)}
	if opts != nil {
		setString(in.data, "id", opts.ID)
		setString(in.data, "title", opts.Title)
		setString(in.data, "value", opts.Value)
		setBool(in.data, "isRequired", opts.IsRequired)
	}
	return in
}

func (*inputNode) isInput() {}

func (in *inputNode) SetID(id string)       { in.data.Set("id", id) }
func (in *inputNode) SetTitle(title string) { in.data.Set("title", title) }
func (in *inputNode) SetValue(v string)     { in.data.Set("value", v) }
func (in *inputNode) SetIsRequired(v bool)  { in.data.Set("isRequired", v) }

// TextInputOptions configures a TextInput.
type TextInputOptions struct {
	InputOptions
	MaxLength   *int
	IsMultiline bool
}

// TextInput is a single or multi line text field. isMultiline is always
// written.
type TextInput struct {
	inputNode
}

// NewTextInput returns a TextInput.
func NewTextInput(opts *TextInputOptions) *TextInput {
	if opts == nil {
		opts = &TextInputOptions{}
	}
	in := &TextInput{inputNode: newInputNode("TextInput", &opts.InputOptions)}
	if opts.MaxLength != nil {
		in.SetMaxLength(*opts.MaxLength)
	}
	in.SetIsMultiline(opts.IsMultiline)
	return in
}

func (in *TextInput) SetMaxLength(n int)    { in.data.Set("maxLength", n) }
func (in *TextInput) SetIsMultiline(v bool) { in.data.Set("isMultiline", v) }

// DateInputOptions configures a DateInput.
type DateInputOptions struct {
	InputOptions
	IncludeTime *bool
}

// DateInput is a date picker, optionally with a time.
type DateInput struct {
	inputNode
}

// NewDateInput returns a DateInput.
func NewDateInput(opts *DateInputOptions) *DateInput {
	if opts == nil {
		opts = &DateInputOptions{}
	}
	in := &DateInput{inputNode: newInputNode("DateInput", &opts.InputOptions)}
	setBool(in.data, "includeTime", opts.IncludeTime)
	return in
}

func (in *DateInput) SetIncludeTime(v bool) { in.data.Set("includeTime", v) }

// MultichoiceInputOptions configures a MultichoiceInput.
type MultichoiceInputOptions struct {
	InputOptions
	IsMultiSelect *bool
	Style         ChoiceStyle
}

// MultichoiceInput offers a list of choices. Choice values are unique.
type MultichoiceInput struct {
	inputNode
	values []string
}

// NewMultichoiceInput returns a MultichoiceInput. Choice values must be unique.
func NewMultichoiceInput(opts *MultichoiceInputOptions, choices ...*InputChoice) (*MultichoiceInput, error) {
	if opts == nil {
		opts = &MultichoiceInputOptions{}
	}
	in := &MultichoiceInput{inputNode: newInputNode("MultichoiceInput", &opts.InputOptions)}
	if len(choices) > 0 {
		if err := in.AddChoices(choices...); err != nil {
			return nil, err
		}
	}
	setBool(in.data, "isMultiSelect", opts.IsMultiSelect)
	if opts.Style != "" {
		in.SetStyle(opts.Style)
	}
	return in, nil
}

// AddChoices appends choices. A value already present, in the input or
// earlier in the same call, fails with DuplicateChoiceValue and nothing is
// added.
func (in *MultichoiceInput) AddChoices(choices ...*InputChoice) error {
	list, err := card.Collect("choices", choices)
	if err != nil {
		return err
	}
	values := slices.Clone(in.values)
	for _, c := range choices {
		if slices.Contains(values, c.Value()) {
			return card.Errorf(card.DuplicateChoiceValue, "choice with value '%s' already added", c.Value())
		}
		values = append(values, c.Value())
	}
	in.values = values
	in.data.Append("choices", list...)
	return nil
}

func (in *MultichoiceInput) SetIsMultiSelect(v bool) { in.data.Set("isMultiSelect", v) }
func (in *MultichoiceInput) SetStyle(s ChoiceStyle)  { in.data.Set("style", string(s)) }
