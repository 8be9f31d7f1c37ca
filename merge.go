package keyed

import (
	"fmt"

	"github.com/signadot/keyed/debug"
)

// Merge returns a new Map holding the plain content of m unioned with the
// plain content of other, other winning on conflicting keys. Keys of m keep
// their position; new keys of other follow in order. other may be any
// source accepted by New, nil excepted.
func (m *Map) Merge(other any) (*Map, error) {
	ps, err := mergeOperand(other)
	if err != nil {
		return nil, err
	}
	if debug.Merge() {
		debug.Logf("merge %d entries onto %s\n", len(ps), m)
	}
	return New(m.plainItems(), ps)
}

// MergeInto returns the plain content of other unioned with the plain
// content of m, m winning on conflicting keys. It is the mirror of Merge
// for when the receiving side is not a Map; the result is a plain map.
func (m *Map) MergeInto(other any) (map[any]any, error) {
	ps, err := mergeOperand(other)
	if err != nil {
		return nil, err
	}
	if debug.Merge() {
		debug.Logf("merge %s into %d entries\n", m, len(ps))
	}
	res := make(map[any]any, len(ps)+m.Len())
	for i := range ps {
		res[ps[i].Key] = ps[i].Value
	}
	for k, v := range m.All() {
		res[k] = unwrap(v)
	}
	return res, nil
}

func mergeOperand(other any) ([]Pair, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: cannot merge with nil", ErrType)
	}
	if om, ok := other.(*Map); ok && om != nil {
		return om.plainItems(), nil
	}
	ps, err := entries(other)
	if err != nil {
		return nil, fmt.Errorf("invalid merge operand: %w", err)
	}
	return ps, nil
}

// Update sets every entry of each source in turn, as Set would. Sources
// are those accepted by New; nil sources are skipped. If any source is
// invalid, Update fails with ErrValue and m is left unchanged.
func (m *Map) Update(sources ...any) error {
	var all []Pair
	for _, src := range sources {
		if src == nil {
			continue
		}
		ps, err := entries(src)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValue, err)
		}
		all = append(all, ps...)
	}
	for i := range all {
		m.Set(all[i].Key, all[i].Value)
	}
	return nil
}
