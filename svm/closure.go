package svm

import (
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/registry"
)

// generateMultiClosure walks the closure tree rooted at node, emitting
// ClosureCombine nodes structurally (as conditional jumps over each
// branch) and leaf closures via generateClosureNode (spec 4.G,
// "Multi-closure generation"). root is threaded through unchanged; it is
// currently unused by the leaf/combine logic itself but kept as a
// parameter to match the spec's named signature and to leave room for a
// future per-root memoization scope without reshaping callers.
func (c *Compiler) generateMultiClosure(root, node *graph.Node) {
	if c.closureDone[node] {
		return
	}
	if node.Special == registry.SpecialClosureCombine {
		c.generateCombine(root, node)
		return
	}
	c.generateClosureNode(node)
}

// generateCombine implements the ClosureCombine half of spec 4.G's
// multi-closure generation: the shared prelude (the Fac dependency plus
// whatever both branches need regardless of which one executes) is
// emitted once, then each branch is guarded by a JumpIfOne/JumpIfZero
// that skips straight past it when fac proves that branch irrelevant.
func (c *Compiler) generateCombine(root, node *graph.Node) {
	c1 := node.Input("Closure1")
	c2 := node.Input("Closure2")
	fac, hasFac := node.InputOk("Fac")

	if !hasFac {
		c.closureDone[node] = true
		if c1.Linked() {
			c.generateMultiClosure(root, c1.Link.Node)
		}
		if c2.Linked() {
			c.generateMultiClosure(root, c2.Link.Node)
		}
		return
	}

	if fac.Linked() && !c.emitted[fac.Link.Node] {
		c.generateNode(fac.Link.Node)
	}
	facSlot := c.slotOf(fac)
	c.closureDone[node] = true

	if c1.Linked() {
		idx := c.emit(Instruction{A: int32(OpJumpIfOne), B: int32(facSlot)})
		c.generateMultiClosure(root, c1.Link.Node)
		c.patchJump(idx)
	}
	if c2.Linked() {
		idx := c.emit(Instruction{A: int32(OpJumpIfZero), B: int32(facSlot)})
		c.generateMultiClosure(root, c2.Link.Node)
		c.patchJump(idx)
	}
}

// generateClosureNode implements spec 4.G's leaf-closure generation: emit
// scalar/vector dependencies, resolve the mix-weight register, emit the
// node's own opcode(s), release temporaries and set shader flags.
func (c *Compiler) generateClosureNode(n *graph.Node) {
	c.generateDependencies(n)

	c.mixWeightOffset = graph.Invalid
	weightName := "SurfaceMixWeight"
	if _, ok := n.InputOk("VolumeMixWeight"); ok {
		weightName = "VolumeMixWeight"
	}
	if mw, ok := n.InputOk(weightName); ok {
		if mw.Linked() || !mw.Value.IsZero(mw.Kind()) {
			c.mixWeightOffset = c.slotOf(mw)
		}
	}

	if fn, ok := Compilers[n.Type.Name]; ok && fn != nil {
		fn(c, n)
	}

	c.closureDone[n] = true
	c.emitted[n] = true
	c.st.clearUsers(n, c.emitted)

	switch n.Type.Name {
	case "Emission":
		c.flags.set(FlagSurfaceEmission)
	case "TransparentBSDF":
		c.flags.set(FlagSurfaceTransparent)
	case "GlassBSDF":
		// multiscatter/refractive BSSRDF-adjacent cost class; flagged so
		// the Shader Manager's has_surface_bssrdf bit sees it (spec 4.H).
		if n.Type.ClosureCost >= 2 {
			c.flags.set(FlagSurfaceBSSRDF)
			if n.Bump != graph.BumpNone {
				c.flags.set(FlagBSSRDFBump)
			}
		}
	case "VolumeScatter":
		c.flags.set(FlagVolume)
	}
	if n.Bump != graph.BumpNone {
		c.flags.set(FlagBump)
	}
}

func bsdfOpcode(n *graph.Node) Opcode {
	switch n.Type.Name {
	case "Emission":
		return OpClosureEmission
	case "Background":
		return OpClosureBackground
	case "VolumeScatter":
		return OpClosureVolume
	default:
		return OpClosureBSDF
	}
}

func compileSimpleBSDF(c *Compiler, n *graph.Node) {
	col := c.slotOf(n.Input("Color"))
	nrm := graph.Invalid
	if in, ok := n.InputOk("Normal"); ok {
		nrm = c.slotOf(in)
	}
	out := c.st.assignIfLinked(n.Output("BSDF"))

	rough, ior := graph.Invalid, graph.Invalid
	if in, ok := n.InputOk("Roughness"); ok {
		rough = c.slotOf(in)
	}
	if in, ok := n.InputOk("IOR"); ok {
		ior = c.slotOf(in)
	}

	if c.mixWeightOffset != graph.Invalid {
		c.emit(Instruction{A: int32(OpClosureSetWeight), B: int32(c.mixWeightOffset)})
	}
	c.emit(Instruction{
		A: int32(bsdfOpcode(n)),
		B: encodeUchar4(byte(col), byte(nrm), byte(out), 0),
		C: encodeUchar4(byte(rough), byte(ior), 0, 0),
	})
}

func compileTransparentBSDF(c *Compiler, n *graph.Node) {
	col := c.slotOf(n.Input("Color"))
	out := c.st.assignIfLinked(n.Output("BSDF"))
	c.emitClosureWeighted(OpClosureBSDF, encodeUchar4(byte(col), 0, byte(out), 0))
}

func compileEmission(c *Compiler, n *graph.Node) {
	col := c.slotOf(n.Input("Color"))
	strength := c.slotOf(n.Input("Strength"))
	out := c.st.assignIfLinked(n.Output("Emission"))
	c.emitClosureWeighted(OpClosureEmission, encodeUchar4(byte(col), byte(strength), byte(out), 0))
}

func compileBackground(c *Compiler, n *graph.Node) {
	col := c.slotOf(n.Input("Color"))
	strength := c.slotOf(n.Input("Strength"))
	out := c.st.assignIfLinked(n.Output("Background"))
	c.emitClosureWeighted(OpClosureBackground, encodeUchar4(byte(col), byte(strength), byte(out), 0))
}

func compileVolumeScatter(c *Compiler, n *graph.Node) {
	col := c.slotOf(n.Input("Color"))
	density := c.slotOf(n.Input("Density"))
	out := c.st.assignIfLinked(n.Output("Volume"))
	c.emitClosureWeighted(OpClosureVolume, encodeUchar4(byte(col), byte(density), byte(out), 0))
}

// emitClosureWeighted emits an optional ClosureSetWeight ahead of the
// node's own opcode when a mix-weight register is in play (spec 4.G:
// "stashes the slot in a mix_weight_offset register consulted by the
// node during its own emission").
func (c *Compiler) emitClosureWeighted(op Opcode, payload int32) {
	if c.mixWeightOffset != graph.Invalid {
		c.emit(Instruction{A: int32(OpClosureSetWeight), B: int32(c.mixWeightOffset)})
	}
	c.emit(Instruction{A: int32(op), B: payload})
}

// compileMixClosureWeight computes the two child weights of a
// ClosureCombine's weight-propagation node (spec 4.F): Weight1 =
// (1-Fac)*Weight, Weight2 = Fac*Weight. There is no dedicated kernel
// opcode for this; it is expressed as ordinary Math instructions since
// it is pure scalar arithmetic synthesized by the closure-tree
// transformer, not a node a user graph ever contains directly.
func compileMixClosureWeight(c *Compiler, n *graph.Node) {
	fac := c.slotOf(n.Input("Fac"))
	weight := c.slotOf(n.Input("Weight"))

	oneSlot := c.st.findOffset(1)
	c.emit(Instruction{A: int32(OpValueF), B: int32(oneSlot), C: floatBits(1)})

	invFacSlot := c.st.findOffset(1)
	c.emit(Instruction{
		A: int32(OpMath),
		B: encodeUchar4(byte(mathSubtract), 0, 0, 0),
		C: encodeUchar4(byte(oneSlot), byte(fac), byte(invFacSlot), 0),
	})

	w1 := c.st.assignIfLinked(n.Output("Weight1"))
	c.emit(Instruction{
		A: int32(OpMath),
		B: encodeUchar4(byte(mathMultiply), 0, 0, 0),
		C: encodeUchar4(byte(invFacSlot), byte(weight), byte(w1), 0),
	})

	w2 := c.st.assignIfLinked(n.Output("Weight2"))
	c.emit(Instruction{
		A: int32(OpMath),
		B: encodeUchar4(byte(mathMultiply), 0, 0, 0),
		C: encodeUchar4(byte(fac), byte(weight), byte(w2), 0),
	})

	c.st.release(oneSlot, 1)
	c.st.release(invFacSlot, 1)
}

// mathSubtract/mathMultiply mirror fold.MathSubtract/fold.MathMultiply's
// ordinal values; this package avoids importing fold to keep codegen
// decoupled from the constant folder, the same tradeoff bump.go makes
// for its VectorMath DotProduct ordinal.
const (
	mathSubtract = 1
	mathMultiply = 2
)

func compileBump(c *Compiler, n *graph.Node) {
	sc := c.slotOf(n.Input("SampleCenter"))
	sx := c.slotOf(n.Input("SampleX"))
	sy := c.slotOf(n.Input("SampleY"))
	strength := c.slotOf(n.Input("Strength"))
	distance := c.slotOf(n.Input("Distance"))
	normalIn := graph.Invalid
	if in, ok := n.InputOk("Normal"); ok && in.Linked() {
		normalIn = c.slotOf(in)
	}
	out := c.st.assignIfLinked(n.Output("Normal"))
	c.emit(Instruction{
		A: int32(OpSetBump),
		B: encodeUchar4(byte(sc), byte(sx), byte(sy), byte(normalIn)),
		C: encodeUchar4(byte(strength), byte(distance), byte(out), 0),
	})
}

func compileSetNormal(c *Compiler, n *graph.Node) {
	dir := c.slotOf(n.Input("Direction"))
	out := c.st.assignIfLinked(n.Output("Normal"))
	c.emit(Instruction{A: int32(OpNormal), B: encodeUchar4(byte(dir), byte(out), 0, 0)})
}

func compileDisplacement(c *Compiler, n *graph.Node) {
	if n.Type.Name == "VectorDisplacement" {
		vec := c.slotOf(n.Input("Vector"))
		mid := c.slotOf(n.Input("Midlevel"))
		scale := c.slotOf(n.Input("Scale"))
		out := c.st.assignIfLinked(n.Output("Displacement"))
		c.emit(Instruction{A: int32(OpVectorDisplacement), B: encodeUchar4(byte(vec), byte(mid), byte(scale), byte(out))})
		return
	}
	height := c.slotOf(n.Input("Height"))
	mid := c.slotOf(n.Input("Midlevel"))
	scale := c.slotOf(n.Input("Scale"))
	out := c.st.assignIfLinked(n.Output("Displacement"))
	c.emit(Instruction{A: int32(OpDisplacement), B: encodeUchar4(byte(height), byte(mid), byte(scale), byte(out))})
}
