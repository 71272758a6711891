package glsl

// glslKeywords contains GLSL reserved words and built-in type names that
// generated identifiers must avoid.
var glslKeywords = map[string]struct{}{
	// Basic and vector types
	"void": {}, "bool": {}, "int": {}, "uint": {}, "float": {}, "double": {},
	"vec2": {}, "vec3": {}, "vec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"uvec2": {}, "uvec3": {}, "uvec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},
	"mat2": {}, "mat3": {}, "mat4": {},

	// Storage and parameter qualifiers
	"attribute": {}, "const": {}, "uniform": {}, "varying": {},
	"buffer": {}, "shared": {}, "coherent": {}, "volatile": {},
	"restrict": {}, "readonly": {}, "writeonly": {},
	"layout": {}, "centroid": {}, "flat": {}, "smooth": {},
	"noperspective": {}, "patch": {}, "sample": {},
	"in": {}, "out": {}, "inout": {},
	"invariant": {}, "precise": {}, "precision": {},
	"highp": {}, "mediump": {}, "lowp": {},

	// Control flow
	"break": {}, "continue": {}, "do": {}, "for": {}, "while": {},
	"switch": {}, "case": {}, "default": {}, "if": {}, "else": {},
	"return": {}, "discard": {},

	// Other keywords and common built-ins
	"struct": {}, "true": {}, "false": {},
	"sampler2D": {}, "sampler3D": {}, "samplerCube": {},
	"texture": {}, "main": {},
}

// isReserved reports whether name is a GLSL reserved word.
func isReserved(name string) bool {
	_, ok := glslKeywords[name]
	return ok
}

// escapeName makes name safe to emit as a GLSL identifier. GLSL additionally
// reserves every identifier starting with "gl_".
func escapeName(name string) string {
	if name == "" {
		return "_unnamed"
	}
	if isReserved(name) || hasReservedPrefix(name) {
		return "_" + name
	}
	return name
}

func hasReservedPrefix(name string) bool {
	return len(name) >= 3 && name[:3] == "gl_"
}
