package mapper

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// String reads a field as text. Numbers and booleans are rendered,
// objects and arrays read as empty.
func (k Keys) String(r Record) string {
	v, ok := k.Lookup(r)
	if !ok {
		return ""
	}
	return asString(v)
}

// Int reads a field as an integer; nil when absent or not numeric
func (k Keys) Int(r Record) *int {
	v, ok := k.Lookup(r)
	if !ok {
		return nil
	}
	f, ok := asFloat(v)
	if !ok || f != math.Trunc(f) {
		return nil
	}
	n := int(f)
	return &n
}

// Float reads a field as a number; nil when absent or not numeric
func (k Keys) Float(r Record) *float64 {
	v, ok := k.Lookup(r)
	if !ok {
		return nil
	}
	f, ok := asFloat(v)
	if !ok {
		return nil
	}
	return &f
}

// Strings reads a field as a sequence of non-empty strings. A single
// comma-separated string is split.
func (k Keys) Strings(r Record) []string {
	v, ok := k.Lookup(r)
	if !ok {
		return []string{}
	}

	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case []string:
		items = make([]any, 0, len(t))
		for _, s := range t {
			items = append(items, s)
		}
	case string:
		for _, s := range strings.Split(t, ",") {
			items = append(items, s)
		}
	default:
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(asString(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asFloat(v any) (float64, bool) {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
