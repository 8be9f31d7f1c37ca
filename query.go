package keyed

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/keyed/debug"
	"github.com/theory/jsonpath"
)

// Select evaluates the RFC 9535 JSONPath query expr against the JSON form
// of m and returns the matched nodes. Unlike GetFrom, Select supports the
// full query language, filters and wildcards included; keys are matched
// verbatim.
func (m *Map) Select(expr string) ([]any, error) {
	p, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValue, err)
	}
	d, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(d, &doc); err != nil {
		return nil, err
	}
	nodes := p.Select(doc)
	if debug.Path() {
		debug.Logf("select %s matched %d nodes\n", expr, len(nodes))
		debug.LogAny(nodes)
	}
	return append(make([]any, 0, len(nodes)), nodes...), nil
}
