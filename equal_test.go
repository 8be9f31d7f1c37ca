package keyed

import (
	"testing"

	"github.com/goccy/go-yaml"
)

func TestEqual(t *testing.T) {
	m := MustNew([]Pair{{"a", 1}, {"b", map[string]any{"c": []any{1, "x"}}}})
	tests := []struct {
		name  string
		other any
		want  bool
	}{
		{"plain map", map[string]any{"b": map[string]any{"c": []any{1, "x"}}, "a": 1}, true},
		{"any keyed map", map[any]any{"a": 1, "b": map[any]any{"c": []any{1, "x"}}}, true},
		{"float value", map[string]any{"a": 1.0, "b": map[string]any{"c": []any{1.0, "x"}}}, true},
		{"typed slice", map[string]any{"a": int64(1), "b": map[string]any{"c": [2]any{1, "x"}}}, true},
		{"pairs", []Pair{{"b", map[string]any{"c": []any{1, "x"}}}, {"a", 1}}, true},
		{"map slice", yaml.MapSlice{{Key: "a", Value: 1}, {Key: "b", Value: yaml.MapSlice{{Key: "c", Value: []any{1, "x"}}}}}, true},
		{"keyed map", MustNew(map[string]any{"a": 1, "b": map[string]any{"c": []any{1, "x"}}}), true},
		{"value differs", map[string]any{"a": 2, "b": map[string]any{"c": []any{1, "x"}}}, false},
		{"extra key", map[string]any{"a": 1, "b": map[string]any{"c": []any{1, "x"}}, "d": nil}, false},
		{"missing key", map[string]any{"a": 1}, false},
		{"nested order", map[string]any{"a": 1, "b": map[string]any{"c": []any{"x", 1}}}, false},
		{"normalized key differs", map[string]any{"A": 1, "b": map[string]any{"c": []any{1, "x"}}}, false},
		{"nil", nil, false},
		{"scalar", 3, false},
		{"string", "ab", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Equal(tc.other); got != tc.want {
				t.Errorf("got %t want %t", got, tc.want)
			}
		})
	}
}

func TestNumericEqual(t *testing.T) {
	tests := []struct {
		a, b   any
		eq, ok bool
	}{
		{1, 1.0, true, true},
		{int8(-1), uint(1), false, true},
		{uint16(3), int64(3), true, true},
		{float32(0.5), 0.5, true, true},
		{1, "1", false, false},
		{true, 1, false, false},
	}
	for _, tc := range tests {
		eq, ok := numericEqual(tc.a, tc.b)
		if eq != tc.eq || ok != tc.ok {
			t.Errorf("numericEqual(%#v, %#v) = %t, %t", tc.a, tc.b, eq, ok)
		}
	}
}
