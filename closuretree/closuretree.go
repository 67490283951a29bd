// Package closuretree implements transform_multi_closure of spec 4.F: a
// recursive rewrite of a MixClosure/AddClosure tree into an explicit
// weight-propagation subgraph, so the SVM codegen's leaf closures each
// carry a single precomputed mix-weight scalar instead of needing to know
// their position in the tree.
//
// It is grounded on the teacher's generic-subroutine specialization walk
// (gapil/resolver/generic_subroutine.go recursively rewrites a call tree
// into concrete instantiations, threading accumulated substitutions down
// each branch exactly as this package threads an accumulated weight) and
// its control-flow rewriting (gapil/resolver/flow.go).
package closuretree

import (
	"github.com/cyclesgraph/compiler/fold"
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/registry"
)

// Transform walks the closure tree reachable from in (the Output node's
// Surface or Volume input) and rewrites every ClosureCombine node into a
// MixClosureWeight-driven weight split, terminating at leaf closures whose
// weightInputName ("SurfaceMixWeight" or "VolumeMixWeight") ends up
// carrying its resolved mix weight. A no-op if in is unlinked.
func Transform(g *graph.Graph, in *graph.Input, weightInputName string) {
	if !in.Linked() {
		return
	}
	walk(g, in.Link.Node, nil, weightInputName)
}

func walk(g *graph.Graph, n *graph.Node, weight *graph.Output, weightInputName string) {
	if n.Special == registry.SpecialClosureCombine {
		walkCombine(g, n, weight, weightInputName)
		return
	}
	walkLeaf(g, n, weight, weightInputName)
}

func walkCombine(g *graph.Graph, n *graph.Node, weight *graph.Output, weightInputName string) {
	c1 := n.Input("Closure1")
	c2 := n.Input("Closure2")

	fac, hasFac := n.InputOk("Fac")
	if !hasFac {
		// Pure add: both branches see the same inbound weight unchanged.
		if c1.Linked() {
			walk(g, c1.Link.Node, weight, weightInputName)
		}
		if c2.Linked() {
			walk(g, c2.Link.Node, weight, weightInputName)
		}
		return
	}

	mcw := g.Add(g.Registry.Lookup("MixClosureWeight"))
	if fac.Linked() {
		g.Connect(fac.Link, mcw.Input("Fac"))
	} else {
		mcw.Input("Fac").Value = fac.Value
	}
	if weight != nil {
		g.Connect(weight, mcw.Input("Weight"))
	}

	if c1.Linked() {
		walk(g, c1.Link.Node, mcw.Output("Weight1"), weightInputName)
	}
	if c2.Linked() {
		walk(g, c2.Link.Node, mcw.Output("Weight2"), weightInputName)
	}
}

func walkLeaf(g *graph.Graph, n *graph.Node, weight *graph.Output, weightInputName string) {
	mw, ok := n.InputOk(weightInputName)
	if !ok || weight == nil {
		return
	}

	// mw already carries a non-default/linked weight: this leaf is shared
	// by more than one branch (e.g. after deduplication), so its two
	// inbound contributions must be multiplied together rather than one
	// overwriting the other.
	if mw.Linked() || mw.Value.Float != 1 {
		mul := g.Add(g.Registry.Lookup("Math"))
		mul.Input("Type").Value = registry.IntValue(int32(fold.MathMultiply))
		if mw.Linked() {
			g.Connect(mw.Link, mul.Input("Value1"))
		} else {
			mul.Input("Value1").Value = mw.Value
		}
		g.DisconnectInput(mw)
		g.Connect(weight, mul.Input("Value2"))
		g.Connect(mul.Output("Value"), mw)
		return
	}

	g.Connect(weight, mw)
}
