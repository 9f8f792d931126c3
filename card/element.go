package card

import "reflect"

// Element is implemented by every builder that renders to a JSON object.
// AsData returns a snapshot: later changes to the builder do not reach it.
type Element interface {
	AsData() *Data
}

// Snapshot renders one child element for storage in a parent field.
func Snapshot(field string, e Element) (*Data, error) {
	if IsNil(e) {
		return nil, Errorf(InvalidElementType, "%s: element must not be nil", field)
	}
	return e.AsData(), nil
}

// Collect renders a list of child elements for storage in a parent field,
// preserving order. Nothing is returned when any element is nil.
func Collect[E Element](field string, elems []E) ([]any, error) {
	out := make([]any, 0, len(elems))
	for i, e := range elems {
		if IsNil(e) {
			return nil, Errorf(InvalidElementType, "%s[%d]: element must not be nil", field, i)
		}
		out = append(out, e.AsData())
	}
	return out, nil
}

// IsNil reports whether v is nil or a nil pointer, map, slice or func
// stored in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
