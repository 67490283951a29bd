package optimize

import "github.com/cyclesgraph/compiler/graph"

// deadCodeEliminate implements spec 4.D step 4f: any node the cycle-break
// DFS never reached is unreferenced by the Output node and everything it
// transitively depends on, so its incoming edges are cleared and the node
// is deleted.
func deadCodeEliminate(g *graph.Graph, reached map[*graph.Node]bool) {
	var dead []*graph.Node
	for _, n := range g.Nodes() {
		if !reached[n] {
			dead = append(dead, n)
		}
	}
	for _, n := range dead {
		for _, in := range n.Inputs {
			g.DisconnectInput(in)
		}
		g.Remove(n)
	}
}
