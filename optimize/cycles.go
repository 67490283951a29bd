package optimize

import (
	"github.com/cyclesgraph/compiler/core/log"
	"github.com/cyclesgraph/compiler/graph"
)

// breakCycles implements spec 4.D step 4e: a Tarjan-style DFS from the
// Output node over the dependency direction (input -> producing output's
// node), using visited/on-stack flags. Reaching a node already on the
// current stack means its connecting input closes a cycle; that input is
// disconnected and the DFS continues without recursing into the
// already-on-stack node. Which edge gets cut is unspecified beyond being
// deterministic for a fixed id assignment (spec 7, CycleDetected).
func breakCycles(ctx log.Context, g *graph.Graph) map[*graph.Node]bool {
	visited := map[*graph.Node]bool{}
	onStack := map[*graph.Node]bool{}

	var walk func(n *graph.Node)
	walk = func(n *graph.Node) {
		visited[n] = true
		onStack[n] = true
		for _, in := range n.Inputs {
			if !in.Linked() {
				continue
			}
			producer := in.Link.Node
			if onStack[producer] {
				ctx.Warning().Logf("optimize: cycle detected through %s.%s, disconnecting",
					n.DiagName(), in.Decl().Name)
				g.DisconnectInput(in)
				continue
			}
			if !visited[producer] {
				walk(producer)
			}
		}
		onStack[n] = false
	}

	walk(g.OutputNode())
	return visited
}
