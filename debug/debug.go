package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Merge bool
	Path  bool
	Load  bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("JT_DEBUG_MERGE")
	d.Path = boolEnv("JT_DEBUG_PATH")
	d.Load = boolEnv("JT_DEBUG_LOAD")
	d.Eval = boolEnv("JT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Path() bool {
	return d.Path
}
func Load() bool {
	return d.Load
}
func Eval() bool {
	return d.Eval
}
