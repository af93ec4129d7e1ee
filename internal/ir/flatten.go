package ir

import "strings"

// FlattenName joins a parent name and a field name with "." (or returns the
// parent name alone when field is empty). FlattenRef builds on it and turns
// the dots into "_" to get the dotless name used in target text; that result
// has the same "<memory>_<port>_<field>" form MemoryPortWireName builds
// directly for synthesized memory-port wires.
func FlattenName(parentName, field string) string {
	if field == "" {
		return parentName
	}

	return parentName + "." + field
}

// FlattenRef recursively flattens a chain of SubField accesses (or a bare
// Reference) to its canonical dotless name, replacing "." with "_" so the
// result is a legal target-language identifier.
func FlattenRef(e Expr) string {
	switch v := e.(type) {
	case *Reference:
		return v.Name
	case *SubField:
		return strings.ReplaceAll(FlattenName(FlattenRef(v.Parent), v.Field), ".", "_")
	default:
		return ""
	}
}

// MemoryPortWireName synthesizes the flattened wire name for one field
// (data/addr/en/mask) of one named port on memory m, e.g. "mem_w_data".
// This is the one function classify and emit both call so that synthesized
// names and the names referenced by the emitted write-port procedure can
// never drift apart (spec.md §3's "synthesized wire names" invariant).
func MemoryPortWireName(memory, port, field string) string {
	return memory + "_" + port + "_" + field
}

// HavocWireName synthesizes the per-memory havoc wire name.
func HavocWireName(memory string) string {
	return "havoc_" + memory
}

// WriteProcedureName synthesizes the per-memory write-procedure name.
func WriteProcedureName(memory string) string {
	return "write_mem_" + memory
}
