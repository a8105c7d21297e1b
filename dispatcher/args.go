package dispatcher

import "math"

// Argument bags arrive untyped from the transport. JSON decoding yields
// float64 for numbers and []any for arrays; these helpers convert and
// default at the dispatcher boundary.

func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", validationf("missing required field %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", validationf("field %q must be a string", key)
	}
	if s == "" {
		return "", validationf("missing required field %q", key)
	}
	return s, nil
}

func optionalString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", validationf("field %q must be a string", key)
	}
	return s, nil
}

func optionalStringSlice(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return []string{}, nil
	}
	switch vals := v.(type) {
	case []string:
		return vals, nil
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			s, ok := item.(string)
			if !ok {
				return nil, validationf("field %q must be an array of strings", key)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, validationf("field %q must be an array of strings", key)
}

func optionalInt(args map[string]any, key string, def int64) (int64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, validationf("field %q must be an integer", key)
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	}
	return 0, validationf("field %q must be a number", key)
}
