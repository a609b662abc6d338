package graph

import "maps"

// Attributes holds opaque per-node data. Values are expected to be numbers
// or strings; other types are carried along but ignored by numeric lookups.
type Attributes map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty, non-nil map.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return Attributes{}
	}
	return maps.Clone(a)
}

// Number returns the value for key as float64. It accepts every Go integer
// and float type; strings and other values report false.
func (a Attributes) Number(key string) (float64, bool) {
	switch v := a[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

// String returns the value for key if it is a string.
func (a Attributes) String(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}
