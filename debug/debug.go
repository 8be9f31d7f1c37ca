// Package debug holds the environment controlled debug switches of keyed.
//
// Each switch is read once at program start from a KEYED_DEBUG_* variable
// holding a value accepted by strconv.ParseBool.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Wrap  bool
	Path  bool
	Match bool
	Merge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Wrap = boolEnv("KEYED_DEBUG_WRAP")
	d.Path = boolEnv("KEYED_DEBUG_PATH")
	d.Match = boolEnv("KEYED_DEBUG_MATCH")
	d.Merge = boolEnv("KEYED_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Wrap() bool {
	return d.Wrap
}
func Path() bool {
	return d.Path
}
func Match() bool {
	return d.Match
}
func Merge() bool {
	return d.Merge
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(output, "%v\n", v)
		return
	}
	output.Write(d)
	output.Write([]byte{'\n'})
}
