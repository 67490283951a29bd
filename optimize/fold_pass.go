package optimize

import (
	"github.com/cyclesgraph/compiler/core/log"
	"github.com/cyclesgraph/compiler/fold"
	"github.com/cyclesgraph/compiler/graph"
)

// constantFoldPass implements spec 4.D step 4a: a Kahn-style topological
// evaluation of fold.Fold over the whole graph, memoized so no node is
// folded twice. Rather than maintaining an explicit ready-queue and
// scheduled-bit per node, this re-scans the (possibly still-growing, as
// folds like Bump's can synthesize a Geometry node) node list each round
// and folds whatever has become ready; a round that folds nothing ends
// the pass. This converges to the same fixed point a queue would, with
// simpler bookkeeping for nodes added mid-pass.
func constantFoldPass(ctx log.Context, g *graph.Graph) {
	out := g.OutputNode()
	dispWasLinked := out.Input("Displacement").Linked()

	done := map[*graph.Node]bool{}
	for {
		progressed := false
		for _, n := range g.Nodes() {
			if done[n] || !foldReady(n, done) {
				continue
			}
			done[n] = true
			fold.Fold(g, n)
			progressed = true
		}
		if !progressed {
			break
		}
	}

	if dispWasLinked && !out.Input("Displacement").Linked() {
		preserveDisplacementDefault(ctx, g, out)
	}
}

// foldReady is true once every producer feeding n's linked inputs has
// already been folded (or n has no linked inputs at all).
func foldReady(n *graph.Node, done map[*graph.Node]bool) bool {
	for _, in := range n.Inputs {
		if in.Linked() && !done[in.Link.Node] {
			return false
		}
	}
	return true
}

// preserveDisplacementDefault connects a new Color node (through the
// Convert that Connect inserts) to the Output node's Displacement input
// after the fold pass has disconnected the whole displacement pipeline
// out from under it, so a shader that declared displacement keeps a
// linked displacement input (spec 4.D step 4a, final paragraph). The
// Color node has no inputs; the Displacement input's previous default
// value is not copied into it.
func preserveDisplacementDefault(ctx log.Context, g *graph.Graph, out *graph.Node) {
	disp := out.Input("Displacement")
	c := g.Add(g.Registry.Lookup("Color"))
	result := g.Connect(c.Output("Color"), disp)
	if result == graph.ConnectRejected {
		ctx.Warning().Logf("optimize: failed to preserve folded-away displacement default on %s", out.DiagName())
	}
}
