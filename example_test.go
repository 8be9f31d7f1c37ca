package keyed_test

import (
	"errors"
	"fmt"

	"github.com/signadot/keyed"
)

func ExampleMap_Attr() {
	m := keyed.MustNew(map[string]any{"Accept-Encoding": "gzip"})
	v, _ := m.Attr("accept_encoding")
	fmt.Println(v, m.Has("accept_encoding"), m.Has("Accept-Encoding"))
	// Output: gzip false true
}

func ExampleMap_Dict() {
	m := keyed.MustNew(map[string]any{"a": map[string]any{"b": 1}})
	d := m.Dict()
	fmt.Printf("%T %v\n", d["a"], d)
	// Output: map[interface {}]interface {} map[a:map[b:1]]
}

func ExampleMap_GetFrom() {
	m := keyed.MustNew(map[string]any{"body": map[string]any{"e": []any{2, map[string]any{"g": 9.806}}}})
	v, _ := m.GetFrom("$.body.e[1].g")
	fmt.Println(v)
	_, err := m.GetFrom("$.body.e[5]")
	fmt.Println(errors.Is(err, keyed.ErrIndexOutOfRange))
	_, err = m.GetFrom("bad")
	fmt.Println(errors.Is(err, keyed.ErrValue))
	// Output:
	// 9.806
	// true
	// true
}

func ExampleMap_Merge() {
	m := keyed.MustNew(map[string]any{"x": 1})
	res, _ := m.Merge(map[string]any{"x": 2, "y": 3})
	fmt.Println(res)
	plain, _ := keyed.MustNew(map[string]any{"y": 2}).MergeInto(map[string]any{"x": 1})
	fmt.Println(plain)
	// Output:
	// {"x":2,"y":3}
	// map[x:1 y:2]
}

func ExampleMap_IsSubmapOf() {
	m := keyed.MustNew(map[string]any{"a": map[string]any{"b": 1}})
	super := map[string]any{"a": map[string]any{"b": 1, "c": 2}, "z": 9}
	ok, _ := m.IsSubmapOf(super)
	fmt.Println(ok)
	ok, _ = m.IsSupermapOf(super)
	fmt.Println(ok)
	// Output:
	// true
	// false
}

func ExampleFromJSON() {
	m, err := keyed.FromJSON(`{"z": 1, "a": [1.5, {"Some-Key": null}]}`)
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Keys())
	fmt.Println(m)
	// Output:
	// [z a]
	// {"z":1,"a":[1.5,{"Some-Key":null}]}
}
