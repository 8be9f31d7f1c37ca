package keyed

import (
	"reflect"
	"strings"
)

// Normalize returns the attribute form of key: string keys are trimmed,
// interior spaces and hyphens become underscores and the result is lower
// cased. Keys of any other type are returned unchanged.
func Normalize(key any) any {
	s, ok := key.(string)
	if !ok {
		return key
	}
	return normalizeString(s)
}

var normReplacer = strings.NewReplacer(" ", "_", "-", "_")

func normalizeString(s string) string {
	return strings.ToLower(normReplacer.Replace(strings.TrimSpace(s)))
}

// hashable reports whether k may be used as a key of a built-in map
// without panicking.
func hashable(k any) bool {
	if k == nil {
		return true
	}
	return isComparable(reflect.ValueOf(k))
}

func isComparable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return isComparable(v.Elem())
	case reflect.Array:
		for i := range v.Len() {
			if !isComparable(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range v.NumField() {
			if !isComparable(v.Field(i)) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
