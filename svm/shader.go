package svm

import (
	"github.com/cyclesgraph/compiler/core/log"
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/optimize"
)

// BumpEvalStateSize is the number of stack slots EnterBumpEval saves and
// LeaveBumpEval later restores when a shader needs both a true
// displacement pass and a Bump-derived shading normal in the same
// evaluation (spec 4.G step 2, "displacement_method == Both").
const BumpEvalStateSize = 16

// pass identifies one of the four shader-compilation passes, always run
// in this order when applicable (spec 4.G, "Per-shader-type
// compilation").
type pass int

const (
	passBump pass = iota
	passSurface
	passVolume
	passDisplacement
)

// CompileShader runs all four applicable passes over g's Output node and
// returns the shader's local instruction stream plus its ShaderJump
// table (spec 4.G summary). g must already be Finalized; CompileShader
// does not mutate the graph. id is the shader's pre-assigned, stable id
// (spec 5: "the global id counter, which is pre-assigned"), used only
// to stamp the returned ShaderProgram.
func CompileShader(ctx log.Context, g *graph.Graph, id int, cfg optimize.Config) ShaderProgram {
	c := newCompiler(g)
	out := g.OutputNode()
	jump := ShaderJump{SurfaceOffset: -1, VolumeOffset: -1, DisplacementOffset: -1}

	// The first instruction of every shader's local stream is a
	// ShaderJump header (spec 3: "the first instruction of every shader
	// is a ShaderJump whose b, c, d fields are the absolute offsets...
	// into a global instruction array"). Its fields are placeholders
	// until Program.Append knows this shader's base offset in the global
	// stream and patches them in place under the append mutex (spec 7).
	headerIdx := c.emit(Instruction{A: int32(OpShaderJump)})

	runBump := out.Input("Normal").Linked()
	runSurface := out.Input("Surface").Linked()
	runVolume := out.Input("Volume").Linked()
	runDisplacement := out.Input("Displacement").Linked()

	fallsThrough := runBump && cfg.DisplacementMethod == optimize.DisplacementBoth

	if runBump {
		c.reset()
		savedOffset := graph.Invalid
		if fallsThrough {
			savedOffset = c.st.findOffset(BumpEvalStateSize)
			c.emit(Instruction{A: int32(OpEnterBumpEval), B: int32(savedOffset)})
		}
		c.generateNode(out.Input("Normal").Link.Node)
		if fallsThrough {
			c.emit(Instruction{A: int32(OpLeaveBumpEval), B: int32(savedOffset)})
			// No End: the Bump pass falls through directly into Surface
			// (spec 4.G step 6), sharing this pass's stack/liveness state.
		} else {
			c.emit(Instruction{A: int32(OpEnd)})
		}
	}

	if runSurface {
		if !fallsThrough {
			c.reset()
		}
		jump.SurfaceOffset = int32(len(c.code))
		c.generateMultiClosure(out, out.Input("Surface").Link.Node)
		c.emit(Instruction{A: int32(OpEnd)})
	}

	if runVolume {
		c.reset()
		jump.VolumeOffset = int32(len(c.code))
		c.generateMultiClosure(out, out.Input("Volume").Link.Node)
		c.emit(Instruction{A: int32(OpEnd)})
	}

	if runDisplacement {
		c.reset()
		jump.DisplacementOffset = int32(len(c.code))
		disp := out.Input("Displacement")
		c.generateNode(disp.Link.Node)
		dispSlot := c.st.assignOutput(disp.Link)
		c.emit(Instruction{A: int32(OpSetDisplacement), B: int32(dispSlot)})
		c.emit(Instruction{A: int32(OpEnd)})
	}

	if c.compileFailed || c.st.compileFailed {
		ctx.Warning().Logf("svm: shader %d overflowed the stack, emitting empty program", id)
		return ShaderProgram{ID: id, Instructions: []Instruction{{A: int32(OpEnd)}}, Jump: ShaderJump{-1, -1, -1}, CompileFailed: true}
	}

	c.code[headerIdx] = Instruction{
		A: int32(OpShaderJump),
		B: jump.SurfaceOffset,
		C: jump.VolumeOffset,
		D: jump.DisplacementOffset,
	}

	return ShaderProgram{ID: id, Instructions: c.code, Jump: jump, Flags: c.flags}
}
