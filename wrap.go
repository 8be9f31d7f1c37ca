package keyed

import (
	"maps"
	"reflect"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/signadot/keyed/debug"
)

type missing struct{}

// Missing is a marker value: assigning it deletes the key if present and
// is otherwise a no-op. It is never stored.
var Missing = missing{}

func isMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

var mapPtrType = reflect.TypeFor[*Map]()

// Wrap converts the plain mappings in v, at any depth, into *Map.
//
//   - a *Map is returned as is
//   - a mapping becomes a new *Map; entries holding Missing are dropped
//   - a sequence which may hold mappings becomes a new []any of wrapped
//     elements; other sequences are returned as is
//   - anything else is returned as is
//
// Wrap is idempotent. Values later added to a sequence in place, for
// example with append, are not wrapped.
func Wrap(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *Map:
		return x
	case yaml.MapSlice:
		return wrapMapping(x)
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = Wrap(e)
		}
		return res
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return wrapMapping(v)
	case reflect.Slice, reflect.Array:
		if !mayHoldMapping(rv.Type()) {
			return v
		}
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return v
		}
		res := make([]any, rv.Len())
		for i := range rv.Len() {
			res[i] = Wrap(rv.Index(i).Interface())
		}
		return res
	}
	return v
}

func wrapMapping(v any) any {
	ps, err := entries(v)
	if err != nil {
		if debug.Wrap() {
			debug.Logf("not wrapping %T: %v\n", v, err)
		}
		return v
	}
	if debug.Wrap() {
		debug.Logf("wrap %T with %d entries\n", v, len(ps))
	}
	res := newMap(len(ps))
	for i := range ps {
		if isMissing(ps[i].Value) {
			continue
		}
		res.store(ps[i].Key, Wrap(ps[i].Value))
	}
	return res
}

// mayHoldMapping reports whether a value of type t could contain a mapping.
func mayHoldMapping(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Map:
		return true
	case reflect.Slice, reflect.Array:
		return mayHoldMapping(t.Elem())
	case reflect.Pointer:
		return t == mapPtrType
	}
	return false
}

// Dict returns the visible content of m as plain Go values: every nested
// *Map becomes a map[any]any keyed by original keys and every []any is
// copied with its elements converted.
func (m *Map) Dict() map[any]any {
	res := make(map[any]any, m.Len())
	for k, v := range m.All() {
		res[k] = unwrap(v)
	}
	return res
}

func unwrap(v any) any {
	switch x := v.(type) {
	case *Map:
		if x == nil {
			return nil
		}
		return x.Dict()
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = unwrap(e)
		}
		return res
	}
	return v
}

// plainItems is Items with values converted as by Dict.
func (m *Map) plainItems() []Pair {
	res := m.Items()
	for i := range res {
		res[i].Value = unwrap(res[i].Value)
	}
	return res
}

// Clone returns a deep copy of m. Nested maps, slices and *Map values are
// copied recursively, hidden keys included; other pointers are shared.
func (m *Map) Clone() *Map {
	res := newMap(len(m.keys))
	res.keys = append(res.keys, m.keys...)
	for k, v := range m.data {
		res.data[k] = deepCopy(v)
	}
	maps.Copy(res.keymap, m.keymap)
	if len(m.hidden) != 0 {
		res.hidden = maps.Clone(m.hidden)
	}
	return res
}

func deepCopy(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *Map:
		if x == nil {
			return x
		}
		return x.Clone()
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = deepCopy(e)
		}
		return res
	case yaml.MapSlice:
		res := slices.Clone(x)
		for i := range res {
			res[i].Value = deepCopy(res[i].Value)
		}
		return res
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		res := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			res.SetMapIndex(iter.Key(), copyValue(iter.Value(), rv.Type().Elem()))
		}
		return res.Interface()
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		res := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := range rv.Len() {
			res.Index(i).Set(copyValue(rv.Index(i), rv.Type().Elem()))
		}
		return res.Interface()
	}
	return v
}

func copyValue(v reflect.Value, t reflect.Type) reflect.Value {
	c := deepCopy(v.Interface())
	if c == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(c)
}

// truthy reports whether v would count as true in a boolean context:
// zero numbers, empty strings and empty containers do not.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil, missing:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case *Map:
		return x != nil && x.Len() != 0
	}
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
