package keyed

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/keyed/debug"
)

// Patch applies the RFC 6902 JSON patch ops to the JSON form of m and
// returns the result as a new Map. m is unchanged. Objects produced by the
// patch carry their keys in sorted order.
func (m *Map) Patch(ops []byte) (*Map, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid patch: %v", ErrValue, err)
	}
	doc, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if debug.Merge() {
		debug.Logf("patch %d ops onto %s\n", len(p), doc)
	}
	out, err := p.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return FromJSON(string(out))
}

// MergePatch applies the RFC 7386 merge patch to the JSON form of m and
// returns the result as a new Map. Unlike Merge, a null in patch removes
// the key.
func (m *Map) MergePatch(patch []byte) (*Map, error) {
	doc, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: merge patch: %v", ErrValue, err)
	}
	return FromJSON(string(out))
}
