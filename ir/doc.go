// Package ir defines the intermediate representation for the compiler.
//
// The IR is a fully-resolved version of the program (all types determined,
// all names bound), ready for code generation. Every construct is represented
// by the single Node type: a kind discriminator, a tagged payload carrying the
// construct-specific data, and two ordered lists of exclusively-owned
// children, one for value-producing sub-nodes (expressions) and one for
// effect-producing sub-nodes (statements).
//
// Generic tree algorithms (type queries, dead-variable analysis, rewriting)
// work against Node without enumerating every construct, while typed payload
// access stays safe: a payload is only reachable under its matching kind, and
// mismatched access is a programming error that fails immediately rather than
// an error value a caller could ignore.
package ir
