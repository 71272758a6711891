package metal

import (
	"fmt"

	"github.com/slint-ui/sksl/ir"
)

// typeName returns the MSL spelling of a type. The source language's scalar
// and vector names are also valid MSL, so registered names pass through
// unchanged.
func typeName(t *ir.Type) string {
	switch t.Inner.(type) {
	case ir.ScalarType, ir.VectorType, ir.VoidType:
		return t.Name
	default:
		panic(fmt.Sprintf("type '%s' has no MSL spelling", t))
	}
}

// formatFloat writes a float literal that round-trips as a 32-bit float and
// always carries a decimal marker.
func formatFloat(v float32) string {
	if v == float32(int64(v)) && v < 1e9 && v > -1e9 {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%g", v)
}
