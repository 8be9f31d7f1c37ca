package keyed

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/signadot/keyed/debug"
)

// Path is a parsed GetFrom path: a chain of steps, each of which is either
// an attribute step (Field) or a sequence index step (Index).
type Path struct {
	Field *string
	Index *int
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			buf.WriteString("." + *x.Field)
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// ParsePath parses paths of the form
//
//	PATH := "$." STEP ( "." STEP | "[" INTEGER "]" )*
//
// where STEP, once normalized, is an identifier and INTEGER is an
// unsigned decimal literal. Any other input yields ErrValue. An INTEGER too
// large for int can never be in range and yields ErrIndexOutOfRange.
func ParsePath(p string) (*Path, error) {
	if !strings.HasPrefix(p, "$.") {
		return nil, fmt.Errorf("%w: path %q should start with '$.'", ErrValue, p)
	}
	root := &Path{}
	if err := parseFrag(p[1:], root); err != nil {
		if errors.Is(err, ErrIndexOutOfRange) {
			return nil, fmt.Errorf("path %q: %w", p, err)
		}
		return nil, fmt.Errorf("%w: path %q: %v", ErrValue, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag, ']')
		if i == -1 {
			return errors.New("expected '[' <index> ']'")
		}
		index, err := parseIndex(frag[1:i])
		if err != nil {
			return err
		}
		parent.Index = &index
		rest = frag[i+1:]
	default:
		return fmt.Errorf("expected '.' or '[' at %q", frag)
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	parent.Next = next
	return parseFrag(rest, next)
}

func parseField(frag string) (field, rest string, err error) {
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		i = len(frag)
	}
	field, rest = frag[:i], frag[i:]
	if !isIdent(normalizeString(field)) {
		return "", "", fmt.Errorf("invalid attribute %q", field)
	}
	return field, rest, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func parseIndex(is string) (int, error) {
	if is == "" {
		return 0, errors.New("empty index")
	}
	for i := 0; i < len(is); i++ {
		if is[i] < '0' || is[i] > '9' {
			return 0, fmt.Errorf("invalid index %q", is)
		}
	}
	i, err := strconv.Atoi(is)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: index %s overflows int", ErrIndexOutOfRange, is)
	}
	return i, err
}

// GetFrom returns the value at path, which is parsed with ParsePath.
// Attribute steps resolve keys through normalization, as Attr does; index
// steps select from sequences. A missing attribute yields ErrKeyNotFound
// and an index past the end ErrIndexOutOfRange.
func (m *Map) GetFrom(path string) (any, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	var res any = m
	for x := p; x != nil; x = x.Next {
		if debug.Path() {
			debug.Logf("%s: step %s on %T\n", path, x, res)
		}
		if x.Field != nil {
			xm, ok := res.(*Map)
			if !ok || xm == nil {
				return nil, fmt.Errorf("%w: %s: %T has no attribute %q", ErrKeyNotFound, path, res, *x.Field)
			}
			res, err = xm.Attr(*x.Field)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			continue
		}
		res, err = indexValue(res, *x.Index)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return res, nil
}

func indexValue(v any, i int) (any, error) {
	if xs, ok := v.([]any); ok {
		if i >= len(xs) {
			return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(xs))
		}
		return xs[i], nil
	}
	if !isSequence(v) {
		return nil, fmt.Errorf("%w: cannot index %T", ErrType, v)
	}
	rv := reflect.ValueOf(v)
	if i >= rv.Len() {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, rv.Len())
	}
	return rv.Index(i).Interface(), nil
}
