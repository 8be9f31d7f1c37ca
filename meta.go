package keyed

import "fmt"

// Hide marks the entries designated by keys as hidden. Hidden entries stay
// reachable through Get, Set and Delete but are left out of Len, iteration,
// Has, equality, Dict, encoding, merging and matching. If any key is
// absent, Hide fails with ErrKeyNotFound and nothing is hidden.
func (m *Map) Hide(keys ...any) error {
	origs := make([]any, len(keys))
	for i, k := range keys {
		orig, ok := m.resolve(k)
		if !ok {
			return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
		}
		origs[i] = orig
	}
	if m.hidden == nil {
		m.hidden = map[any]bool{}
	}
	for _, orig := range origs {
		m.hidden[orig] = true
	}
	return nil
}

// Show makes the entries designated by keys visible again. Showing a
// visible entry is a no-op. If any key is absent, Show fails with
// ErrKeyNotFound and nothing changes.
func (m *Map) Show(keys ...any) error {
	origs := make([]any, len(keys))
	for i, k := range keys {
		orig, ok := m.resolve(k)
		if !ok {
			return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
		}
		origs[i] = orig
	}
	for _, orig := range origs {
		delete(m.hidden, orig)
	}
	return nil
}

// IsHidden reports whether the entry designated by key is hidden, or
// ErrKeyNotFound if there is no such entry.
func (m *Map) IsHidden(key any) (bool, error) {
	orig, ok := m.resolve(key)
	if !ok {
		return false, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return m.hidden[orig], nil
}

// HiddenKeys returns the hidden keys in insertion order.
func (m *Map) HiddenKeys() []any {
	var res []any
	for _, k := range m.keys {
		if m.hidden[k] {
			res = append(res, k)
		}
	}
	return res
}
