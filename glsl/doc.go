// Package glsl generates GLSL fragment shader source from a resolved
// program.
//
// Unlike the Metal backend, GLSL needs no entry point wrapping: the built-in
// inputs map to gl_FragCoord and gl_FrontFacing, the color output becomes a
// declared 'out vec4', and the program's entry function is emitted directly
// as 'void main()'.
//
// Enum declarations and string literals have no GLSL 330 spelling and report
// a GenerationError.
package glsl
