package keyed

import (
	"fmt"
	"iter"
	"slices"
)

// Map is an ordered mapping whose string keys may also be reached through
// their normalized attribute form.
//
// Entries are stored under their original key in insertion order. The
// keymap side table records, for every stored key k, Normalize(k) -> k.
// The zero value is an empty map ready to use.
type Map struct {
	keys   []any
	data   map[any]any
	keymap map[any]any
	hidden map[any]bool
}

// New builds a Map from the given sources, applied in order so that later
// sources override earlier ones. A source is a *Map, any Go map, a
// yaml.MapSlice, a []Pair, or a slice of 2 element slices or arrays. Nil
// sources are skipped. Nested mappings and sequences are wrapped.
func New(sources ...any) (*Map, error) {
	var all []Pair
	for _, src := range sources {
		if src == nil {
			continue
		}
		ps, err := entries(src)
		if err != nil {
			return nil, err
		}
		all = append(all, ps...)
	}
	m := newMap(len(all))
	for i := range all {
		m.Set(all[i].Key, all[i].Value)
	}
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(sources ...any) *Map {
	m, err := New(sources...)
	if err != nil {
		panic(err)
	}
	return m
}

func newMap(n int) *Map {
	return &Map{
		keys:   make([]any, 0, n),
		data:   make(map[any]any, n),
		keymap: make(map[any]any, n),
	}
}

func (m *Map) init() {
	if m.data == nil {
		m.data = map[any]any{}
	}
	if m.keymap == nil {
		m.keymap = map[any]any{}
	}
}

// resolve maps key to the original key it designates, first through the
// keymap, then verbatim.
func (m *Map) resolve(key any) (any, bool) {
	if !hashable(key) {
		return nil, false
	}
	if orig, ok := m.keymap[Normalize(key)]; ok {
		return orig, true
	}
	if _, ok := m.data[key]; ok {
		return key, true
	}
	return nil, false
}

// Get returns the value stored under key, or under the key which has the
// same normalized form.
func (m *Map) Get(key any) (any, error) {
	orig, ok := m.resolve(key)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return m.data[orig], nil
}

// Attr is attribute style access: name is resolved through its
// normalized form, so Attr("accept_encoding") finds "Accept-Encoding".
func (m *Map) Attr(name string) (any, error) {
	return m.Get(name)
}

// GetDefault is like Get but returns def when key is absent. A falsy def
// (zero number, empty string or container, false) yields nil.
func (m *Map) GetDefault(key, def any) any {
	v, err := m.Get(key)
	if err != nil {
		if truthy(def) {
			return def
		}
		return nil
	}
	return v
}

// GetMany returns the values designated by keys, in order. An absent key
// yields its default: with no defs nil, with one def that def for every
// key, otherwise defs[i] for keys[i]. Any other number of defs is ErrValue.
func (m *Map) GetMany(keys []any, defs ...any) ([]any, error) {
	switch len(defs) {
	case 0, 1, len(keys):
	default:
		return nil, fmt.Errorf("%w: %d defaults for %d keys", ErrValue, len(defs), len(keys))
	}
	res := make([]any, len(keys))
	for i, k := range keys {
		v, err := m.Get(k)
		if err == nil {
			res[i] = v
			continue
		}
		switch {
		case len(defs) == len(keys):
			res[i] = defs[i]
		case len(defs) == 1:
			res[i] = defs[0]
		}
	}
	return res, nil
}

// Set stores value under the verbatim key. Assigning Missing deletes the
// key if present. If the normalized form of key already designates a
// different original key, that entry is replaced in place by key.
//
// Set panics if key is not comparable, as a built-in map would.
func (m *Map) Set(key, value any) {
	if isMissing(value) {
		_ = m.Delete(key)
		return
	}
	m.store(key, Wrap(value))
}

// SetAttr is attribute style assignment: if name resolves to an existing
// original key, that key is written, otherwise name is stored verbatim.
func (m *Map) SetAttr(name string, value any) {
	var key any = name
	if orig, ok := m.keymap[Normalize(name)]; ok {
		key = orig
	}
	m.Set(key, value)
}

func (m *Map) store(key, value any) {
	m.init()
	norm := Normalize(key)
	if prev, ok := m.keymap[norm]; ok && prev != key {
		i := slices.Index(m.keys, prev)
		m.keys[i] = key
		delete(m.data, prev)
		if m.hidden[prev] {
			delete(m.hidden, prev)
			m.hidden[key] = true
		}
	} else if _, ok := m.data[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.keymap[norm] = key
	m.data[key] = value
}

// Delete removes the entry designated by key.
func (m *Map) Delete(key any) error {
	orig, ok := m.resolve(key)
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	m.remove(orig)
	return nil
}

func (m *Map) remove(orig any) {
	delete(m.data, orig)
	delete(m.keymap, Normalize(orig))
	delete(m.hidden, orig)
	if i := slices.Index(m.keys, orig); i != -1 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
}

// Has reports whether key is a visible key, compared exactly: no
// normalization takes place.
func (m *Map) Has(key any) bool {
	if !hashable(key) {
		return false
	}
	_, ok := m.data[key]
	return ok && !m.hidden[key]
}

// Contains reports whether every one of keys satisfies Has.
func (m *Map) Contains(keys ...any) bool {
	for _, k := range keys {
		if !m.Has(k) {
			return false
		}
	}
	return true
}

func (m *Map) Len() int {
	return len(m.keys) - len(m.hidden)
}

// All iterates over the visible entries in insertion order. The map must
// not be modified during iteration.
func (m *Map) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, k := range m.keys {
			if m.hidden[k] {
				continue
			}
			if !yield(k, m.data[k]) {
				return
			}
		}
	}
}

func (m *Map) Keys() []any {
	res := make([]any, 0, m.Len())
	for k := range m.All() {
		res = append(res, k)
	}
	return res
}

func (m *Map) Values() []any {
	res := make([]any, 0, m.Len())
	for _, v := range m.All() {
		res = append(res, v)
	}
	return res
}

func (m *Map) Items() []Pair {
	res := make([]Pair, 0, m.Len())
	for k, v := range m.All() {
		res = append(res, Pair{Key: k, Value: v})
	}
	return res
}

// Clear removes every entry, including hidden ones.
func (m *Map) Clear() {
	m.keys = m.keys[:0]
	clear(m.data)
	clear(m.keymap)
	clear(m.hidden)
}

// Pop returns the value designated by key and removes it. When key is
// absent, Pop returns the first element of def, or ErrAttributeNotFound if
// no default was given.
func (m *Map) Pop(key any, def ...any) (any, error) {
	orig, ok := m.resolve(key)
	if !ok {
		if len(def) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrAttributeNotFound, key)
		}
		return def[0], nil
	}
	v := m.data[orig]
	m.remove(orig)
	return v, nil
}

// PopItem removes and returns the first visible entry.
func (m *Map) PopItem() (key, value any, err error) {
	for k, v := range m.All() {
		m.remove(k)
		return k, v, nil
	}
	return nil, nil, fmt.Errorf("%w: map is empty", ErrKeyNotFound)
}

// SetDefault returns the value designated by key, storing def first if
// key is absent.
func (m *Map) SetDefault(key, def any) any {
	if v, err := m.Get(key); err == nil {
		return v
	}
	m.Set(key, def)
	v, _ := m.Get(key)
	return v
}

// Reverse returns a new Map with the visible keys and values swapped.
// Values which cannot serve as keys yield ErrType.
func (m *Map) Reverse() (*Map, error) {
	res := newMap(m.Len())
	for k, v := range m.All() {
		if _, ok := v.(*Map); ok || !hashable(v) {
			return nil, fmt.Errorf("%w: value %T of key %v cannot be a key", ErrType, v, k)
		}
		res.Set(v, k)
	}
	return res, nil
}

func (m *Map) String() string {
	d, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprint(m.Dict())
	}
	return string(d)
}
