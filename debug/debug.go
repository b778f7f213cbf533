// Package debug holds environment-gated diagnostics. Each switch is
// read once at startup from an MCKENNA_DEBUG_* variable.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load   bool
	Patch  bool
	Eval   bool
	Sample bool
	Mesh   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("MCKENNA_DEBUG_LOAD")
	d.Patch = boolEnv("MCKENNA_DEBUG_PATCH")
	d.Eval = boolEnv("MCKENNA_DEBUG_EVAL")
	d.Sample = boolEnv("MCKENNA_DEBUG_SAMPLE")
	d.Mesh = boolEnv("MCKENNA_DEBUG_MESH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func Sample() bool {
	return d.Sample
}
func Mesh() bool {
	return d.Mesh
}
