package keyed

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

type encState struct {
	prefix string
	indent string
	hidden bool
}

type EncodeOption func(*encState)

// EncodeIndent indents the output as json.Indent does.
func EncodeIndent(prefix, indent string) EncodeOption {
	return func(es *encState) { es.prefix, es.indent = prefix, indent }
}

// EncodeHidden includes hidden keys in the output.
func EncodeHidden(v bool) EncodeOption {
	return func(es *encState) { es.hidden = v }
}

// JSON returns the JSON text of m, with original keys in insertion order.
// Non-string keys are written in their printed form; keys which have no
// such form yield ErrType. The text is compact, {"a":1} rather than
// {"a": 1}; use EncodeIndent for a spaced layout.
func (m *Map) JSON(opts ...EncodeOption) (string, error) {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	if err := m.encode(buf, es); err != nil {
		return "", err
	}
	if es.prefix == "" && es.indent == "" {
		return buf.String(), nil
	}
	out := bytes.NewBuffer(nil)
	if err := json.Indent(out, buf.Bytes(), es.prefix, es.indent); err != nil {
		return "", err
	}
	return out.String(), nil
}

func (m *Map) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := m.encode(buf, &encState{}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Map) encode(buf *bytes.Buffer, es *encState) error {
	buf.WriteByte('{')
	first := true
	for _, k := range m.keys {
		if m.hidden[k] && !es.hidden {
			continue
		}
		ks, err := jsonKey(k)
		if err != nil {
			return err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		d, err := json.Marshal(ks)
		if err != nil {
			return err
		}
		buf.Write(d)
		buf.WriteByte(':')
		if err := encodeValue(buf, m.data[k], es); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeValue(buf *bytes.Buffer, v any, es *encState) error {
	switch x := v.(type) {
	case *Map:
		if x != nil {
			return x.encode(buf, es)
		}
	case []any:
		buf.WriteByte('[')
		for i, e := range x {
			if i != 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, e, es); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

func jsonKey(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(x), nil
	case encoding.TextMarshaler:
		d, err := x.MarshalText()
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
	switch numKind(reflect.ValueOf(k).Kind()) {
	case intNum, uintNum:
		return fmt.Sprint(k), nil
	case floatNum:
		f, _ := toFloat(k)
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("%w: key of type %T has no JSON form", ErrType, k)
}

// ToJSONAny returns the visible content of m as map[string]any, nested
// values converted likewise, with keys in their JSON form.
func (m *Map) ToJSONAny() (map[string]any, error) {
	res := make(map[string]any, m.Len())
	for k, v := range m.All() {
		ks, err := jsonKey(k)
		if err != nil {
			return nil, err
		}
		jv, err := toJSONAny(v)
		if err != nil {
			return nil, err
		}
		res[ks] = jv
	}
	return res, nil
}

func toJSONAny(v any) (any, error) {
	switch x := v.(type) {
	case *Map:
		if x == nil {
			return nil, nil
		}
		return x.ToJSONAny()
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			je, err := toJSONAny(e)
			if err != nil {
				return nil, err
			}
			res[i] = je
		}
		return res, nil
	}
	return v, nil
}

// FromJSON parses a JSON document whose top level value is an object.
// Object key order is preserved; integer literals become int and other
// numbers float64. Parse errors are those of encoding/json.
func FromJSON(s string) (*Map, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("invalid token %v after top-level value", tok)
	}
	m, ok := v.(*Map)
	if !ok {
		return nil, fmt.Errorf("%w: top level JSON value is %T, not an object", ErrType, v)
	}
	return m, nil
}

func (m *Map) UnmarshalJSON(d []byte) error {
	res, err := FromJSON(string(d))
	if err != nil {
		return err
	}
	*m = *res
	return nil
}

// token is dec.Token where the input may not end.
func token(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := token(dec)
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			res := &Map{}
			for dec.More() {
				kt, err := token(dec)
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", kt)
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				res.store(key, v)
			}
			if _, err := token(dec); err != nil {
				return nil, err
			}
			return res, nil
		case '[':
			res := []any{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				res = append(res, v)
			}
			if _, err := token(dec); err != nil {
				return nil, err
			}
			return res, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", x)
	case json.Number:
		return number(x), nil
	}
	return tok, nil
}

func number(n json.Number) any {
	if i, err := strconv.Atoi(string(n)); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
