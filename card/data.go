package card

import (
	"encoding/json"
	"iter"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Data is the insertion-ordered field mapping behind every card object.
// Keys marshal in the order they were first set.
type Data struct {
	om *orderedmap.OrderedMap[string, any]
}

// NewData returns an empty mapping.
func NewData() *Data {
	return &Data{om: orderedmap.New[string, any]()}
}

// Set stores v under key. An existing key keeps its position.
func (d *Data) Set(key string, v any) { d.om.Set(key, v) }

// Get returns the value stored under key.
func (d *Data) Get(key string) (any, bool) { return d.om.Get(key) }

// Has reports whether key is present.
func (d *Data) Has(key string) bool {
	_, ok := d.om.Get(key)
	return ok
}

// Delete removes key.
func (d *Data) Delete(key string) { d.om.Delete(key) }

// Len returns the number of fields.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return d.om.Len()
}

// Keys returns the field names in insertion order.
func (d *Data) Keys() []string {
	keys := make([]string, 0, d.Len())
	for k := range d.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over the fields in insertion order.
func (d *Data) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if d == nil {
			return
		}
		for p := d.om.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Append extends the list stored under key, creating it when absent.
func (d *Data) Append(key string, vs ...any) {
	cur, _ := d.om.Get(key)
	list, _ := cur.([]any)
	next := make([]any, 0, len(list)+len(vs))
	next = append(next, list...)
	next = append(next, vs...)
	d.om.Set(key, next)
}

// Object returns the nested mapping stored under key, creating it when
// absent or when key holds something other than a mapping.
func (d *Data) Object(key string) *Data {
	if cur, ok := d.om.Get(key); ok {
		if obj, ok := cur.(*Data); ok {
			return obj
		}
	}
	obj := NewData()
	d.om.Set(key, obj)
	return obj
}

// Clone returns a deep copy. Nested mappings, lists and plain maps are
// copied; every other value is shared.
func (d *Data) Clone() *Data {
	if d == nil {
		return nil
	}
	out := NewData()
	for k, v := range d.All() {
		out.om.Set(k, cloneValue(v))
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Data:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []string:
		return slices.Clone(t)
	case json.RawMessage:
		return slices.Clone(t)
	default:
		return v
	}
}

// Map converts the mapping into plain Go maps and slices, recursively.
// Leaf values are copied as-is.
func (d *Data) Map() map[string]any {
	if d == nil {
		return nil
	}
	out := make(map[string]any, d.Len())
	for k, v := range d.All() {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case *Data:
		return t.Map()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plainValue(e)
		}
		return out
	case []string:
		return slices.Clone(t)
	case json.RawMessage:
		return slices.Clone(t)
	default:
		return v
	}
}

// MarshalJSON writes the fields in insertion order.
func (d *Data) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	return d.om.MarshalJSON()
}

// MarshalYAML writes the fields in insertion order.
func (d *Data) MarshalYAML() (any, error) {
	return d.om.MarshalYAML()
}
