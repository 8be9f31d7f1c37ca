package keyed

import (
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-yaml"
)

type matchTest struct {
	sub any
	res bool
}

var matchTests = []matchTest{
	{sub: map[string]any{"body": map[string]any{"e": []any{2, map[string]any{"g": 9.806}}}}, res: true},
	{sub: map[string]any{"body": map[string]any{"f": map[string]any{"y": []any{map[string]any{"p": 5}, []any{8}}}}}, res: true},
	{sub: map[string]any{"extra": "info"}, res: true},
	{sub: [][]any{{"extra", "info"}}, res: true},
	{sub: map[string]any{"headers": map[string]any{}, "body": map[string]any{}}, res: true},
	{sub: map[string]any{}, res: true},
	{sub: map[int]int{1: 1}, res: false},
	{sub: map[string]any{"extra": ""}, res: false},
	{sub: map[string]any{"extra": map[string]any{}}, res: false},
	{sub: map[string]any{"body": map[string]any{"f": map[string]any{"y": []any{nil}}}}, res: false},
	{sub: map[string]any{"body": map[string]any{"e": []any{2}}}, res: false},
	{sub: map[string]any{"headers": map[string]any{}, "body": map[string]any{}, "nonexistent": map[string]any{}}, res: false},
	{sub: map[string]any{"headers": map[string]any{"accept_encoding": "gzip"}}, res: false},
}

func TestSubmapSupermap(t *testing.T) {
	doc := sampleDoc()
	for i := range matchTests {
		mt := &matchTests[i]
		t.Run(fmt.Sprint(mt.sub), func(t *testing.T) {
			sub := MustNew(mt.sub)
			got, err := sub.IsSubmapOf(doc)
			if err != nil {
				t.Fatal(err)
			}
			if got != mt.res {
				t.Errorf("IsSubmapOf: got %t want %t", got, mt.res)
			}
			got, err = doc.IsSupermapOf(mt.sub)
			if err != nil {
				t.Fatal(err)
			}
			if got != mt.res {
				t.Errorf("IsSupermapOf: got %t want %t", got, mt.res)
			}
		})
	}
}

func TestSubmapRoles(t *testing.T) {
	m := MustNew(map[string]any{"a": map[string]any{"b": 1}})
	super := map[string]any{"a": map[string]any{"b": 1, "c": 2}, "z": 9}
	if ok, err := m.IsSubmapOf(super); err != nil || !ok {
		t.Errorf("IsSubmapOf: got %t, %v", ok, err)
	}
	if ok, err := MustNew(super).IsSubmapOf(m); err != nil || ok {
		t.Errorf("swapped: got %t, %v", ok, err)
	}
	if ok, err := MustNew(map[int]int{1: 1}).IsSubmapOf([][]int{{1, 1}, {2, 2}}); err != nil || !ok {
		t.Errorf("pairs: got %t, %v", ok, err)
	}
}

func TestSubmapErrors(t *testing.T) {
	m := &Map{}
	for _, other := range []any{nil, "string", 123, []any{"non", "key-value", "pair"}} {
		if _, err := m.IsSubmapOf(other); !errors.Is(err, ErrType) {
			t.Errorf("IsSubmapOf(%#v): got %v want ErrType", other, err)
		}
		if _, err := m.IsSupermapOf(other); !errors.Is(err, ErrType) {
			t.Errorf("IsSupermapOf(%#v): got %v want ErrType", other, err)
		}
	}
}

func TestMatchNormalized(t *testing.T) {
	doc := sampleDoc()
	sub := MustNew(map[string]any{"Headers": map[string]any{"accept_encoding": "gzip"}})
	if Match(doc, sub) {
		t.Error("exact match should fail")
	}
	if !Match(doc, sub, MatchNormalized(true)) {
		t.Error("normalized match should succeed")
	}
}

func TestMatchHidden(t *testing.T) {
	doc := sampleDoc()
	if err := doc.Hide("body"); err != nil {
		t.Fatal(err)
	}
	ok, err := doc.IsSupermapOf(map[string]any{"body": map[string]any{"f": map[string]any{"x": nil}}})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("hidden key should not match")
	}
	body, err := doc.Get("body")
	if err != nil {
		t.Fatal(err)
	}
	dx, err := body.(*Map).Merge(map[string]any{"something": "new"})
	if err != nil {
		t.Fatal(err)
	}
	ok, err = dx.IsSupermapOf(map[string]any{"f": map[string]any{"x": nil}, "something": "new"})
	if err != nil || !ok {
		t.Errorf("got %t, %v", ok, err)
	}
}

func TestSubmapKeepsOperandKeys(t *testing.T) {
	super := []Pair{{"a", 1}, {"A", 2}}
	ok, err := MustNew([]Pair{{"a", 1}}).IsSubmapOf(super)
	if err != nil || !ok {
		t.Errorf("a: got %t, %v", ok, err)
	}
	ok, err = MustNew([]Pair{{"A", 2}}).IsSubmapOf(super)
	if err != nil || !ok {
		t.Errorf("A: got %t, %v", ok, err)
	}
	nested := map[string]any{"n": yaml.MapSlice{{Key: "x-y", Value: 1}, {Key: "X_Y", Value: 2}}}
	ok, err = MustNew(map[string]any{"n": map[string]any{"x-y": 1}}).IsSubmapOf(nested)
	if err != nil || !ok {
		t.Errorf("nested: got %t, %v", ok, err)
	}
	ok, err = MustNew([]Pair{{"a", 1}, {"b", 2}}).IsSupermapOf(super)
	if err != nil || ok {
		t.Errorf("supermap: got %t, %v", ok, err)
	}
}
