package card

import (
	"encoding"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Translatable is a lazily resolved string, such as a catalog message.
// It is rendered with the language code of the card being rendered.
type Translatable interface {
	Translate(locale string) string
}

// Encoder converts payload values into JSON-native values for one render.
// The locale is the card's language code; implementations must not keep it
// beyond the call.
type Encoder interface {
	Encode(v any, locale string) (any, error)
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(v any, locale string) (any, error)

func (f EncoderFunc) Encode(v any, locale string) (any, error) { return f(v, locale) }

// DefaultEncoder walks mappings, lists and plain maps and converts each leaf:
// JSON primitives pass through, Translatable values are resolved with the
// render locale, UUIDs, times, durations and text marshalers become strings.
// Anything else is left for encoding/json.
type DefaultEncoder struct{}

// Encode implements Encoder.
func (DefaultEncoder) Encode(v any, locale string) (any, error) {
	return encodeValue(v, locale)
}

func encodeValue(v any, locale string) (any, error) {
	switch t := v.(type) {
	case nil, string, bool, json.Number, json.RawMessage,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return t, nil
	case *Data:
		if t == nil {
			return nil, nil
		}
		out := NewData()
		for k, e := range t.All() {
			enc, err := encodeValue(e, locale)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out.Set(k, enc)
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			enc, err := encodeValue(e, locale)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = enc
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			enc, err := encodeValue(e, locale)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = enc
		}
		return out, nil
	case Translatable:
		return t.Translate(locale), nil
	case uuid.UUID:
		return t.String(), nil
	case time.Time:
		return t.Format("2006-01-02T15:04:05.000Z07:00"), nil
	case time.Duration:
		return t.String(), nil
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err != nil {
			return nil, err
		}
		return string(b), nil
	default:
		return v, nil
	}
}
