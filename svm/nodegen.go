package svm

import "github.com/cyclesgraph/compiler/graph"

// CompileFunc emits the instruction(s) for one already-dependency-resolved
// node: every linked input's producer is guaranteed already emitted (and
// therefore holds an assigned stack slot) by the time a CompileFunc runs.
type CompileFunc func(c *Compiler, n *graph.Node)

// Compilers maps NodeType.Name to its compile function, the codegen
// counterpart of fold.Rules (spec 4.C) and optimize's per-pass rule
// tables: one dispatch-by-name entry per node type this module's
// registry declares.
var Compilers = map[string]CompileFunc{
	"Value":              compileValue,
	"Color":               compileValue,
	"Math":                compileMath,
	"VectorMath":          compileVectorMath,
	"Mix":                 compileMix,
	"Gamma":               compileGamma,
	"RGBToBW":             compileRGBToBW,
	"BrightContrast":      compileBrightContrast,
	"Invert":              compileInvert,
	"CombineXYZ":          compileCombineVector,
	"CombineRGB":          compileCombineVector,
	"SeparateXYZ":         compileSeparateVector,
	"SeparateRGB":         compileSeparateVector,
	"Blackbody":           compileBlackbody,
	"Geometry":            compileGeometry,
	"TextureCoordinate":   compileTextureCoordinate,
	"DiffuseBSDF":         compileSimpleBSDF,
	"GlossyBSDF":          compileSimpleBSDF,
	"TransparentBSDF":     compileTransparentBSDF,
	"GlassBSDF":           compileSimpleBSDF,
	"Emission":            compileEmission,
	"Background":          compileBackground,
	"VolumeScatter":       compileVolumeScatter,
	"AddClosure":          nil, // handled structurally by generateMultiClosure, never dispatched here
	"MixClosure":          nil,
	"MixClosureWeight":    compileMixClosureWeight,
	"Bump":                compileBump,
	"SetNormal":           compileSetNormal,
	"Displacement":        compileDisplacement,
	"VectorDisplacement":  compileDisplacement,
}

// generateNode recursively emits n's unemitted linked-input producers,
// then n itself (spec 4.G, generate_node; used directly by the
// Displacement pass for its single input and the Bump pass for whatever
// feeds Normal).
func (c *Compiler) generateNode(n *graph.Node) {
	if c.emitted[n] {
		return
	}
	c.generateDependencies(n)
	c.compileOne(n)
}

// generateDependencies recursively emits every unemitted producer feeding
// n's linked inputs, without emitting n itself (spec 4.G,
// generate_closure_node step 1: "recursively emits any unemitted
// dependency of every input").
func (c *Compiler) generateDependencies(n *graph.Node) {
	for _, in := range n.Inputs {
		if !in.Linked() {
			continue
		}
		producer := in.Link.Node
		if c.emitted[producer] {
			continue
		}
		c.generateNode(producer)
	}
}

// compileOne assigns input/output slots, runs the node's registered
// compile function (if any — closure nodes are handled by the
// generate_multi_closure/generate_closure_node walk instead) and marks
// the node emitted.
func (c *Compiler) compileOne(n *graph.Node) {
	if c.emitted[n] {
		return
	}
	if fn, ok := Compilers[n.Type.Name]; ok && fn != nil {
		fn(c, n)
	}
	c.emitted[n] = true
	c.st.clearUsers(n, c.emitted)
}

// generateSVMNodes implements spec 4.G's fixed-point emission loop: for
// each un-emitted node in set, emit it iff every linked-input producer is
// already emitted (within set or outside it — a producer outside set is
// by construction already part of an earlier, already-emitted prelude).
// Each pass advances at least one node or the loop gives up, matching the
// spec's "equivalent to topological sort" contract for any acyclic set.
func (c *Compiler) generateSVMNodes(set map[*graph.Node]bool) {
	for {
		progressed := false
		for n := range set {
			if c.emitted[n] {
				continue
			}
			if !c.allProducersEmitted(n) {
				continue
			}
			c.compileOne(n)
			progressed = true
		}
		if !progressed {
			return
		}
	}
}

func (c *Compiler) allProducersEmitted(n *graph.Node) bool {
	for _, in := range n.Inputs {
		if in.Linked() && !c.emitted[in.Link.Node] {
			return false
		}
	}
	return true
}

// loadConstant emits the ValueF/ValueV instruction for an input's default
// value into a freshly assigned slot, implementing the load half of
// stack_assign(input) (spec 4.G).
func (c *Compiler) loadConstant(in *graph.Input) int {
	off, needsLoad := c.st.assignInput(in)
	if !needsLoad || off == graph.Invalid {
		return off
	}
	v := in.Value
	if in.Kind().IsFloat3() {
		// ValueV spans two instructions: the header names the
		// destination slot, the continuation word carries the three
		// packed floats (no room for all of offset+x+y+z in one word).
		c.emit(Instruction{A: int32(OpValueV), B: int32(off)})
		c.emit(Instruction{A: floatBits(v.Float3[0]), B: floatBits(v.Float3[1]), C: floatBits(v.Float3[2])})
	} else {
		c.emit(Instruction{A: int32(OpValueF), B: int32(off), C: floatBits(v.Float)})
	}
	return off
}

// slotOf returns in's assigned stack slot: if in is linked, its producer
// is generated first (recursively, if not already emitted) so the slot
// it returns always holds a live value; if unlinked, a constant load is
// emitted on first use.
func (c *Compiler) slotOf(in *graph.Input) int {
	if in.StackOffset != graph.Invalid {
		return in.StackOffset
	}
	if in.Linked() {
		if !c.emitted[in.Link.Node] {
			c.generateNode(in.Link.Node)
		}
		return c.st.assignOutput(in.Link)
	}
	return c.loadConstant(in)
}
