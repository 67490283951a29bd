package optimize

import (
	"fmt"
	"strings"

	"github.com/cyclesgraph/compiler/graph"
)

// deduplicate implements spec 4.D step 4c: a single bottom-up (producers
// before consumers, the same topological order constantFoldPass uses)
// Kahn schedule that merges any node whose NodeType, bump tag, unlinked
// input values and linked input producers exactly match one already
// scheduled. Bottom-up order guarantees a single pass reaches fixpoint:
// by the time a node is considered, every node it could possibly collide
// with upstream has already been merged down to its final representative.
func deduplicate(g *graph.Graph) {
	done := map[*graph.Node]bool{}
	groups := map[string]*graph.Node{}

	for {
		progressed := false
		for _, n := range g.Nodes() {
			if done[n] || !foldReady(n, done) {
				continue
			}
			done[n] = true
			progressed = true

			key := dedupKey(n)
			if survivor, ok := groups[key]; ok {
				mergeNode(g, survivor, n)
			} else {
				groups[key] = n
			}
		}
		if !progressed {
			break
		}
	}
}

func dedupKey(n *graph.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%d", n.Type.Name, n.Bump)
	for _, in := range n.Inputs {
		if in.Linked() {
			fmt.Fprintf(&b, "|L%p", in.Link)
		} else {
			fmt.Fprintf(&b, "|V%v", in.Value)
		}
	}
	return b.String()
}

// mergeNode redirects every consumer of dup's outputs to the corresponding
// output of survivor, disconnects dup's own inputs, and removes it from
// the graph.
func mergeNode(g *graph.Graph, survivor, dup *graph.Node) {
	for _, in := range dup.Inputs {
		g.DisconnectInput(in)
	}
	for i, out := range dup.Outputs {
		g.RelinkOutput(out, survivor.Outputs[i])
	}
	g.Remove(dup)
}
