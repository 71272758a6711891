// Package metal generates Metal Shading Language source from a resolved
// program.
//
// # Usage
//
//	source, info, err := metal.Compile(program, metal.DefaultOptions())
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(source)
//
// # Entry point wrapping
//
// Metal fragment functions cannot write built-in variables the way the
// source language does, so the entry point is emitted in two pieces. The
// built-in inputs are gathered into an Inputs struct and the built-in
// outputs into an Outputs struct:
//
//	struct Inputs {
//	    float4 sk_FragCoord [[position]];
//	    bool sk_FrontFacing [[front_facing]];
//	};
//	struct Outputs {
//	    float4 sk_FragColor [[color(0)]];
//	};
//
// The user's entry point becomes an inner function taking both structs:
//
//	void _skslMain(Inputs _in, thread Outputs& _out) { ... }
//
// and a generated wrapper carries the Metal stage attributes, assembles
// Inputs, calls the inner function, and returns the outputs:
//
//	fragment Outputs fragmentMain(float4 sk_FragCoord [[position]],
//	                              bool sk_FrontFacing [[front_facing]]) {
//	    Inputs _in = { sk_FragCoord, sk_FrontFacing };
//	    Outputs _out;
//	    _skslMain(_in, _out);
//	    return _out;
//	}
//
// Emission order is fixed: header, input struct, output struct, uniform
// struct, program-scope constants, helper functions, inner entry function,
// wrapper. The same program always produces byte-identical output.
//
// # Limitations
//
// String literals have no Metal spelling, helper functions cannot touch the
// built-in variables (they live in the entry point's structs), and global
// variables must be 'const' or 'uniform'. Each of these reports a
// GenerationError.
package metal
