package keyed

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type diffState struct {
	colors bool
}

type DiffOption func(*diffState)

// DiffColors colors inserted lines green and deleted lines red.
func DiffColors(v bool) DiffOption {
	return func(ds *diffState) { ds.colors = v }
}

// Diff returns a line diff from the indented JSON form of from to that of
// to. Lines are prefixed by "- " when only in from, "+ " when only in to
// and two spaces otherwise. Maps which are Equal yield "".
func Diff(from, to *Map, opts ...DiffOption) (string, error) {
	ds := &diffState{}
	for _, opt := range opts {
		opt(ds)
	}
	if from == nil || to == nil {
		return "", fmt.Errorf("%w: cannot diff a nil map", ErrType)
	}
	if from.Equal(to) {
		return "", nil
	}
	a, err := from.JSON(EncodeIndent("", "  "))
	if err != nil {
		return "", err
	}
	b, err := to.JSON(EncodeIndent("", "  "))
	if err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(a+"\n", b+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)

	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	if ds.colors {
		ins.EnableColor()
		del.EnableColor()
	} else {
		ins.DisableColor()
		del.DisableColor()
	}
	var sb strings.Builder
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			switch d.Type {
			case diffpatch.DiffInsert:
				sb.WriteString(ins.Sprint("+ " + line))
			case diffpatch.DiffDelete:
				sb.WriteString(del.Sprint("- " + line))
			default:
				sb.WriteString("  " + line)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
