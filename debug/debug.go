package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Decode bool
	Patch  bool
	Diff   bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JV_DEBUG_PARSE")
	d.Decode = boolEnv("JV_DEBUG_DECODE")
	d.Patch = boolEnv("JV_DEBUG_PATCH")
	d.Diff = boolEnv("JV_DEBUG_DIFF")
	d.Eval = boolEnv("JV_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Decode() bool {
	return d.Decode
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}
