package keyed

import (
	"fmt"

	"github.com/signadot/keyed/debug"
)

type MatchConfig struct {
	Normalized bool
}

type MatchOpt func(*MatchConfig)

// MatchNormalized makes keys of the sub side find their counterpart on the
// super side through normalization instead of exact comparison.
func MatchNormalized(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Normalized = v }
}

// IsSubmapOf reports whether every visible entry of m appears in other
// with an equal value, nested mappings being compared by the same rule.
// other must be a mapping like source accepted by New, else ErrType. Its
// keys are taken as given: keys of other differing only in normalized form
// stay distinct.
func (m *Map) IsSubmapOf(other any, opts ...MatchOpt) (bool, error) {
	ref, err := viewOf(other)
	if err != nil {
		return false, err
	}
	return matchView(ref, mapView{m: m}, matchConfig(opts)), nil
}

// IsSupermapOf is IsSubmapOf with the roles swapped.
func (m *Map) IsSupermapOf(other any, opts ...MatchOpt) (bool, error) {
	sub, err := viewOf(other)
	if err != nil {
		return false, err
	}
	return matchView(mapView{m: m}, sub, matchConfig(opts)), nil
}

// Match reports whether doc contains match: every visible key of match is
// a visible key of doc, values of nested mappings match recursively and
// all other values are equal.
func Match(doc, match *Map, opts ...MatchOpt) bool {
	return matchView(mapView{m: doc}, mapView{m: match}, matchConfig(opts))
}

func matchConfig(opts []MatchOpt) *MatchConfig {
	cfg := &MatchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// mapView is a mapping under comparison: either a *Map, or the entries of
// any other mapping like value indexed by their exact keys.
type mapView struct {
	m     *Map
	pairs []Pair
	index map[any]any
}

func viewOf(v any) (mapView, error) {
	if x, ok := v.(*Map); ok && x != nil {
		return mapView{m: x}, nil
	}
	if v == nil {
		return mapView{}, fmt.Errorf("%w: nil is not a mapping", ErrType)
	}
	ps, err := entries(v)
	if err != nil {
		return mapView{}, err
	}
	idx := index(ps)
	uniq := make([]Pair, 0, len(idx))
	seen := make(map[any]bool, len(idx))
	for i := range ps {
		k := ps[i].Key
		if seen[k] {
			continue
		}
		seen[k] = true
		uniq = append(uniq, Pair{Key: k, Value: idx[k]})
	}
	return mapView{pairs: uniq, index: idx}, nil
}

func (v mapView) items() []Pair {
	if v.m != nil {
		return v.m.Items()
	}
	return v.pairs
}

func (v mapView) lookup(key any, cfg *MatchConfig) (any, bool) {
	if v.m != nil {
		return lookup(v.m, key, cfg)
	}
	if val, ok := v.index[key]; ok {
		return val, true
	}
	if !cfg.Normalized {
		return nil, false
	}
	norm := Normalize(key)
	for i := range v.pairs {
		if Normalize(v.pairs[i].Key) == norm {
			return v.pairs[i].Value, true
		}
	}
	return nil, false
}

func matchView(doc, match mapView, cfg *MatchConfig) bool {
	for _, p := range match.items() {
		dv, ok := doc.lookup(p.Key, cfg)
		if !ok {
			if debug.Match() {
				debug.Logf("match: key %v missing\n", p.Key)
			}
			return false
		}
		if isMapping(p.Value) {
			if !isMapping(dv) {
				return false
			}
			mv, err := viewOf(p.Value)
			if err != nil {
				return false
			}
			ddv, err := viewOf(dv)
			if err != nil || !matchView(ddv, mv, cfg) {
				return false
			}
			continue
		}
		if !equalValue(dv, p.Value) {
			if debug.Match() {
				debug.Logf("match: values differ at key %v\n", p.Key)
			}
			return false
		}
	}
	return true
}

func lookup(m *Map, key any, cfg *MatchConfig) (any, bool) {
	if !cfg.Normalized {
		if !m.Has(key) {
			return nil, false
		}
		return m.data[key], true
	}
	orig, ok := m.resolve(key)
	if !ok || m.hidden[orig] {
		return nil, false
	}
	return m.data[orig], true
}
