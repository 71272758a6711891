package metal

// mslKeywords contains reserved words that generated identifiers must avoid:
// C++14 keywords, Metal address space and type names, and the names the
// generated scaffolding claims for itself.
var mslKeywords = map[string]struct{}{
	// C++ keywords
	"alignas": {}, "alignof": {}, "and": {}, "asm": {}, "auto": {},
	"bool": {}, "break": {}, "case": {}, "catch": {}, "char": {},
	"class": {}, "const": {}, "constexpr": {}, "continue": {},
	"decltype": {}, "default": {}, "delete": {}, "do": {}, "double": {},
	"else": {}, "enum": {}, "explicit": {}, "extern": {}, "false": {},
	"float": {}, "for": {}, "friend": {}, "goto": {}, "if": {},
	"inline": {}, "int": {}, "long": {}, "mutable": {}, "namespace": {},
	"new": {}, "noexcept": {}, "nullptr": {}, "operator": {},
	"private": {}, "protected": {}, "public": {}, "register": {},
	"return": {}, "short": {}, "signed": {}, "sizeof": {}, "static": {},
	"struct": {}, "switch": {}, "template": {}, "this": {}, "throw": {},
	"true": {}, "try": {}, "typedef": {}, "typeid": {}, "typename": {},
	"union": {}, "unsigned": {}, "using": {}, "virtual": {}, "void": {},
	"volatile": {}, "while": {},

	// Metal address spaces and qualifiers
	"constant": {}, "device": {}, "thread": {}, "threadgroup": {},
	"kernel": {}, "vertex": {}, "fragment": {},

	// Metal types
	"half": {}, "uint": {}, "uchar": {}, "ushort": {},
	"float2": {}, "float3": {}, "float4": {},
	"half2": {}, "half3": {}, "half4": {},
	"int2": {}, "int3": {}, "int4": {},
	"uint2": {}, "uint3": {}, "uint4": {},
	"bool2": {}, "bool3": {}, "bool4": {},
	"float2x2": {}, "float3x3": {}, "float4x4": {},
	"texture1d": {}, "texture2d": {}, "texture3d": {}, "texturecube": {},
	"sampler": {},
}

// isReserved reports whether name is an MSL reserved word.
func isReserved(name string) bool {
	_, ok := mslKeywords[name]
	return ok
}

// escapeName makes name safe to emit as an MSL identifier.
func escapeName(name string) string {
	if name == "" {
		return "_unnamed"
	}
	if isReserved(name) {
		return name + "_"
	}
	return name
}
