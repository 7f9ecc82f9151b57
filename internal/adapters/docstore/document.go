package docstore

// Typed accessors for schemaless documents. Aggregation and scoring operate
// only on fields that are present and of the expected type; these helpers
// report absence instead of defaulting, so malformed values are excluded
// from computations rather than treated as zero.

// String returns a non-empty string field. ok is false when the field is
// absent, not a string, or empty.
func String(doc Document, key string) (string, bool) {
	v, ok := doc[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Int returns an integer field. JSON decoding yields float64, so integral
// floats are accepted; fractional values are not.
func Int(doc Document, key string) (int, bool) {
	v, ok := doc[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	case float32:
		if n == float32(int(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// Float returns a numeric field as float64. ok is false for absent or
// non-numeric values.
func Float(doc Document, key string) (float64, bool) {
	v, ok := doc[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Strings returns a string-list field. Both []string and []any forms are
// accepted; non-string elements are ignored.
func Strings(doc Document, key string) ([]string, bool) {
	v, ok := doc[key]
	if !ok {
		return nil, false
	}
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// Map returns a nested object field. ok is false for absent or non-object
// values.
func Map(doc Document, key string) (map[string]any, bool) {
	v, ok := doc[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return m, true
}
