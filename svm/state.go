package svm

import "github.com/cyclesgraph/compiler/graph"

// Compiler holds the mutable state of a single shader's single-pass
// compilation (one of Bump, Surface, Volume, Displacement). It is
// reset between passes (spec 4.G: "the current active stack and
// instruction buffer are reset between passes"); distinct shaders each
// get their own Compiler, so no field here is shared across goroutines
// (spec 5).
type Compiler struct {
	g    *graph.Graph
	st   *stack
	code []Instruction

	closureDone map[*graph.Node]bool
	emitted     map[*graph.Node]bool

	mixWeightOffset int
	flags           Flags
	compileFailed   bool // latched across passes; a single pass's stack overflow fails the whole shader (spec 7, StackOverflow)
}

func newCompiler(g *graph.Graph) *Compiler {
	return &Compiler{
		g:               g,
		st:              newStack(),
		closureDone:     map[*graph.Node]bool{},
		emitted:         map[*graph.Node]bool{},
		mixWeightOffset: graph.Invalid,
	}
}

// reset clears per-pass state (stack offsets, stack allocator, the
// emitted/closureDone memoization sets — the same node may need
// re-emitting in a later pass since each pass's liveness is independent)
// matching spec 4.G step 1 ("clear all socket stack_offset on every
// node"). The accumulated instruction buffer is NOT cleared: passes are
// concatenated into one contiguous per-shader stream (spec 4.G summary),
// with each pass's starting offset recorded into the ShaderJump table
// before that pass begins. The Bump-falls-through-to-Surface case (spec
// 4.G step 6) additionally skips reset entirely, sharing both stack and
// liveness state across the boundary since no End separates them.
func (c *Compiler) reset() {
	for _, n := range c.g.Nodes() {
		for _, in := range n.Inputs {
			in.StackOffset = graph.Invalid
		}
		for _, out := range n.Outputs {
			out.StackOffset = graph.Invalid
		}
	}
	c.compileFailed = c.compileFailed || c.st.compileFailed
	c.st = newStack()
	c.closureDone = map[*graph.Node]bool{}
	c.emitted = map[*graph.Node]bool{}
	c.mixWeightOffset = graph.Invalid
}

// emit appends one instruction and returns its index.
func (c *Compiler) emit(i Instruction) int {
	c.code = append(c.code, i)
	return len(c.code) - 1
}

// patchJump rewrites instruction idx's offset field (word D, the
// convention every branch opcode here uses) to target - idx - 1, the
// number of instructions to skip (spec 4.G: "back-patch the jump's
// offset field to the post-branch instruction count minus the patch
// index minus one").
func (c *Compiler) patchJump(idx int) {
	c.code[idx].D = int32(len(c.code) - idx - 1)
}
