package logger

import "fmt"

// typeOf names a sink by its concrete type for diagnostic messages only.
// Duplicate-sink rejection and removal use reference identity (==), never
// this; type identity is purely cosmetic here, the way the specification's
// design notes describe the teacher's original reflection-based diagnostic.
func typeOf(v any) string {
	return fmt.Sprintf("%T", v)
}
