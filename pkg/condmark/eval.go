package condmark

import (
	"strings"
)

// ResolvePath walks the data mapping along a dot-separated key path.
// The boolean result reports whether the full path resolved; a missing key
// or a non-map value partway through short-circuits to absent. Absence is a
// normal outcome here, never an error: callers treat it as falsy.
func ResolvePath(data TemplateData, path string) (interface{}, bool) {
	logger := GetLogger()
	if logger.IsDebugMode() {
		logger.DebugCondition(path, data)
	}

	if data == nil {
		return nil, false
	}

	current := interface{}(data)
	for _, key := range strings.Split(path, ".") {
		value, ok := mapLookup(current, key)
		if !ok {
			return nil, false
		}
		current = value
	}

	if logger.IsDebugMode() {
		logger.WithField("result", current).Debug("Path resolution complete")
	}

	return current, true
}

// mapLookup reads a single key from a map-like value
func mapLookup(current interface{}, key string) (interface{}, bool) {
	if current == nil {
		return nil, false
	}

	switch v := current.(type) {
	case TemplateData:
		value, ok := v[key]
		return value, ok
	case map[string]interface{}:
		value, ok := v[key]
		return value, ok
	case map[string]string:
		value, ok := v[key]
		return value, ok
	case map[string]int:
		value, ok := v[key]
		return value, ok
	case map[string]float64:
		value, ok := v[key]
		return value, ok
	case map[string]bool:
		value, ok := v[key]
		return value, ok
	default:
		// Not a map-like structure
		return nil, false
	}
}

// EvaluateCondition resolves a block condition against the data mapping.
// A leading "!" negates the outcome. The result reports whether the block's
// content is kept.
func EvaluateCondition(condition string, data TemplateData) bool {
	negated := strings.HasPrefix(condition, "!")
	path := strings.TrimPrefix(condition, "!")

	value, resolved := ResolvePath(data, path)
	truthy := resolved && isTruthy(value)

	logger := GetLogger()
	if logger.IsDebugMode() {
		logger.WithFields(Fields{
			"condition": condition,
			"resolved":  resolved,
			"kept":      truthy != negated,
		}).Debug("Evaluated block condition")
	}

	if negated {
		return !truthy
	}
	return truthy
}

// isTruthy classifies a resolved value. The falsy set is exactly: false,
// numeric zero, the empty string, and a nil or absent value. Everything else
// is truthy, including empty slices and empty maps. The treatment of empty
// collections is a tested semantic of the marker language and must not be
// tightened to collection emptiness.
func isTruthy(val interface{}) bool {
	if val == nil {
		return false
	}

	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		// Non-nil objects are truthy, empty or not
		return true
	}
}
