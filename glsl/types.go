package glsl

import (
	"fmt"

	"github.com/slint-ui/sksl/ir"
)

// glslTypeNames maps the source language's type names to their GLSL
// spellings. Scalars keep their names; vectors change to the vecN family.
var glslTypeNames = map[string]string{
	"void":   "void",
	"bool":   "bool",
	"int":    "int",
	"float":  "float",
	"float2": "vec2",
	"float3": "vec3",
	"float4": "vec4",
}

// typeName returns the GLSL spelling of a type.
func typeName(t *ir.Type) string {
	if name, ok := glslTypeNames[t.Name]; ok {
		return name
	}
	switch t.Inner.(type) {
	case ir.ScalarType:
		// User-declared scalar aliases (enum types) lower to int.
		return "int"
	default:
		panic(fmt.Sprintf("type '%s' has no GLSL spelling", t))
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
