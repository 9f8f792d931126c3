package adaptivecard

import (
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"
	"github.com/utsurius/actionable-messages/card"
)

// FormSchema reflects T into the flat JSON Schema that FormFromStruct turns
// into inputs. Field names follow the json tags; titles, descriptions, enums,
// formats and limits come from jsonschema tags.
func FormSchema[T any]() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	return r.Reflect(new(T))
}

// FormFromStruct returns one input element per exported field of T, in
// declaration order:
//
//   - strings with an enum become Input.ChoiceSet
//   - strings with format "date" or "time" become Input.Date or Input.Time
//   - other strings become Input.Text
//   - integers and numbers become Input.Number
//   - booleans become Input.Toggle
//
// Nested objects and arrays are rejected with UnsupportedOperation.
func FormFromStruct[T any]() ([]Element, error) {
	s := FormSchema[T]()
	if s == nil || s.Type != "object" {
		return nil, card.Errorf(card.UnsupportedOperation, "form: %T is not a struct", *new(T))
	}
	var out []Element
	if s.Properties == nil {
		return out, nil
	}
	for el := s.Properties.Oldest(); el != nil; el = el.Next() {
		in, err := formInput(el.Key, el.Value, slices.Contains(s.Required, el.Key))
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func formInput(id string, p *jsonschema.Schema, required bool) (Element, error) {
	common := InputOptions{
		Label:      p.Title,
		IsRequired: card.Bool(required),
	}
	if common.Label == "" {
		common.Label = id
	}

	switch p.Type {
	case "string":
		if len(p.Enum) > 0 {
			choices := make([]*InputChoice, 0, len(p.Enum))
			for _, v := range p.Enum {
				s := fmt.Sprint(v)
				choices = append(choices, NewInputChoice(s, s))
			}
			return NewChoiceSetInput(id, &ChoiceSetInputOptions{
				InputOptions: common,
				Placeholder:  p.Description,
			}, choices...)
		}
		switch p.Format {
		case "date":
			return NewDateInput(id, &DateTimeOptions{InputOptions: common, Placeholder: p.Description}), nil
		case "time":
			return NewTimeInput(id, &DateTimeOptions{InputOptions: common, Placeholder: p.Description}), nil
		}
		opts := &TextInputOptions{
			InputOptions: common,
			Placeholder:  p.Description,
			Regex:        p.Pattern,
		}
		if p.MaxLength != nil {
			opts.MaxLength = card.Int(int(*p.MaxLength))
		}
		switch p.Format {
		case "email":
			opts.Style = TextInputStyleEmail
		case "uri":
			opts.Style = TextInputStyleURL
		}
		return NewTextInput(id, opts), nil
	case "integer", "number":
		opts := &NumberInputOptions{InputOptions: common, Placeholder: p.Description}
		if v, err := p.Minimum.Float64(); err == nil && p.Minimum != "" {
			opts.Min = card.Float(v)
		}
		if v, err := p.Maximum.Float64(); err == nil && p.Maximum != "" {
			opts.Max = card.Float(v)
		}
		return NewNumberInput(id, opts), nil
	case "boolean":
		title := p.Description
		if title == "" {
			title = common.Label
		}
		return NewToggleInput(id, title, &ToggleInputOptions{InputOptions: common}), nil
	}
	return nil, card.Errorf(card.UnsupportedOperation, "form: field %q: unsupported type %q", id, p.Type)
}
