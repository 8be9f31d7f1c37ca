package keyed

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
)

// FromYAML parses a YAML document whose top level value is a mapping.
// Mapping key order is preserved.
func FromYAML(d []byte) (*Map, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromDecodedYAML(v)
}

// YAML returns the YAML text of the visible content of m, keys in
// insertion order.
func (m *Map) YAML() (string, error) {
	d, err := yaml.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// MarshalYAML emits m as an ordered mapping.
func (m *Map) MarshalYAML() (any, error) {
	res := make(yaml.MapSlice, 0, m.Len())
	for k, v := range m.All() {
		res = append(res, yaml.MapItem{Key: k, Value: v})
	}
	return res, nil
}

func (m *Map) UnmarshalYAML(node ast.Node) error {
	var v any
	if err := yaml.NodeToValue(node, &v, yaml.UseOrderedMap()); err != nil {
		return err
	}
	res, err := fromDecodedYAML(v)
	if err != nil {
		return err
	}
	*m = *res
	return nil
}

func fromDecodedYAML(v any) (*Map, error) {
	ms, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: top level YAML value is %T, not a mapping", ErrType, v)
	}
	res := newMap(len(ms))
	for _, item := range ms {
		if !hashable(item.Key) {
			return nil, fmt.Errorf("%w: YAML key %T is not comparable", ErrType, item.Key)
		}
		res.store(yamlScalar(item.Key), Wrap(yamlValue(item.Value)))
	}
	return res, nil
}

// yamlValue brings decoded YAML integers to int, as FromJSON does, so that
// both decoders yield the same values.
func yamlValue(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(yaml.MapSlice, len(x))
		for i, item := range x {
			res[i] = yaml.MapItem{Key: yamlScalar(item.Key), Value: yamlValue(item.Value)}
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = yamlValue(e)
		}
		return res
	}
	return yamlScalar(v)
}

func yamlScalar(v any) any {
	switch x := v.(type) {
	case int64:
		if x >= math.MinInt && x <= math.MaxInt {
			return int(x)
		}
	case uint64:
		if x <= math.MaxInt {
			return int(x)
		}
	}
	return v
}
