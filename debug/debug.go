package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex    bool
	Schema bool
	Match  bool
	VM     bool
	Value  bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("FFL_DEBUG_LEX")
	d.Schema = boolEnv("FFL_DEBUG_SCHEMA")
	d.Match = boolEnv("FFL_DEBUG_MATCH")
	d.VM = boolEnv("FFL_DEBUG_VM")
	d.Value = boolEnv("FFL_DEBUG_VALUE")
	d.Eval = boolEnv("FFL_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Schema() bool {
	return d.Schema
}
func Match() bool {
	return d.Match
}
func VM() bool {
	return d.VM
}
func Value() bool {
	return d.Value
}
func Eval() bool {
	return d.Eval
}
