package keyed

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

// Pair is a single key/value entry.
type Pair struct {
	Key   any
	Value any
}

// entries puts a mapping like source into canonical ordered form. Three
// kinds of sources are accepted: mappings (Go maps, sorted by key, and
// yaml.MapSlice), key/value pair sequences, and *Map.
func entries(src any) ([]Pair, error) {
	var res []Pair
	switch x := src.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil is not a mapping", ErrType)
	case *Map:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *Map", ErrType)
		}
		return x.Items(), nil
	case []Pair:
		res = x
	case yaml.MapSlice:
		res = make([]Pair, len(x))
		for i := range x {
			res[i] = Pair{Key: x[i].Key, Value: x[i].Value}
		}
	default:
		v := reflect.ValueOf(src)
		switch v.Kind() {
		case reflect.Map:
			return mapEntries(v), nil
		case reflect.Slice, reflect.Array:
			ps, err := pairEntries(v)
			if err != nil {
				return nil, err
			}
			res = ps
		default:
			return nil, fmt.Errorf("%w: %T is neither a mapping nor key-value pairs", ErrType, src)
		}
	}
	for i := range res {
		if !hashable(res[i].Key) {
			return nil, fmt.Errorf("%w: key %T at %d is not comparable", ErrType, res[i].Key, i)
		}
	}
	return res, nil
}

func pairEntries(v reflect.Value) ([]Pair, error) {
	res := make([]Pair, 0, v.Len())
	for i := range v.Len() {
		e := v.Index(i)
		for e.Kind() == reflect.Interface && !e.IsNil() {
			e = e.Elem()
		}
		switch e.Kind() {
		case reflect.Slice, reflect.Array:
			if e.Len() == 2 {
				res = append(res, Pair{Key: e.Index(0).Interface(), Value: e.Index(1).Interface()})
				continue
			}
		case reflect.Struct:
			if p, ok := e.Interface().(Pair); ok {
				res = append(res, p)
				continue
			}
		}
		return nil, fmt.Errorf("%w: element %d of %s is not a key-value pair", ErrType, i, v.Type())
	}
	return res, nil
}

// mapEntries returns the entries of a Go map sorted by key, Go maps
// having no order of their own.
func mapEntries(v reflect.Value) []Pair {
	res := make([]Pair, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		res = append(res, Pair{Key: iter.Key().Interface(), Value: iter.Value().Interface()})
	}
	slices.SortFunc(res, func(a, b Pair) int {
		return compareKeys(a.Key, b.Key)
	})
	return res
}

// compareKeys orders strings lexically, numbers by value and anything
// else by type name then printed form.
func compareKeys(a, b any) int {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.Compare(as, bs)
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return cmp.Compare(af, bf)
	}
	ta, tb := fmt.Sprintf("%T", a), fmt.Sprintf("%T", b)
	if ta != tb {
		return strings.Compare(ta, tb)
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func isMapping(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case *Map:
		return x != nil
	case yaml.MapSlice:
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.Map
}

func isSequence(v any) bool {
	switch v.(type) {
	case nil, string, yaml.MapSlice:
		return false
	case []any:
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}
