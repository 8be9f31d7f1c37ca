package keyed

import (
	"reflect"
)

// Equal reports whether other holds the same visible entries as m. other
// may be any source accepted by New; the comparison ignores order and
// recurses into nested mappings and sequences. Numbers compare by value,
// so int 1 equals float64 1. Unsupported operands are simply not equal.
func (m *Map) Equal(other any) bool {
	if other == nil {
		return false
	}
	ps, err := entries(other)
	if err != nil {
		return false
	}
	return equalEntries(m.Items(), ps)
}

func equalEntries(a, b []Pair) bool {
	ai, bi := index(a), index(b)
	if len(ai) != len(bi) {
		return false
	}
	for k, av := range ai {
		bv, ok := bi[k]
		if !ok || !equalValue(av, bv) {
			return false
		}
	}
	return true
}

// index collapses entries into a built-in map, later entries winning.
func index(ps []Pair) map[any]any {
	res := make(map[any]any, len(ps))
	for i := range ps {
		res[ps[i].Key] = ps[i].Value
	}
	return res
}

func equalValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if isMapping(a) || isMapping(b) {
		if !isMapping(a) || !isMapping(b) {
			return false
		}
		ae, err := entries(a)
		if err != nil {
			return false
		}
		be, err := entries(b)
		if err != nil {
			return false
		}
		return equalEntries(ae, be)
	}
	if isSequence(a) || isSequence(b) {
		if !isSequence(a) || !isSequence(b) {
			return false
		}
		av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
		if av.Len() != bv.Len() {
			return false
		}
		for i := range av.Len() {
			if !equalValue(av.Index(i).Interface(), bv.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
	if eq, ok := numericEqual(a, b); ok {
		return eq
	}
	return reflect.DeepEqual(a, b)
}

// numericEqual compares a and b by value when both are numbers.
func numericEqual(a, b any) (eq, ok bool) {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	ak, bk := numKind(av.Kind()), numKind(bv.Kind())
	if ak == notNum || bk == notNum {
		return false, false
	}
	switch {
	case ak == intNum && bk == intNum:
		return av.Int() == bv.Int(), true
	case ak == uintNum && bk == uintNum:
		return av.Uint() == bv.Uint(), true
	case ak == intNum && bk == uintNum:
		return av.Int() >= 0 && uint64(av.Int()) == bv.Uint(), true
	case ak == uintNum && bk == intNum:
		return bv.Int() >= 0 && uint64(bv.Int()) == av.Uint(), true
	}
	af, _ := toFloat(a)
	bf, _ := toFloat(b)
	return af == bf, true
}

const (
	notNum = iota
	intNum
	uintNum
	floatNum
)

func numKind(k reflect.Kind) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intNum
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintNum
	case reflect.Float32, reflect.Float64:
		return floatNum
	}
	return notNum
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch numKind(rv.Kind()) {
	case intNum:
		return float64(rv.Int()), true
	case uintNum:
		return float64(rv.Uint()), true
	case floatNum:
		return rv.Float(), true
	}
	return 0, false
}
