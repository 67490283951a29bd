package optimize

import (
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/registry"
)

// removeProxies implements spec 4.D step 1. A Proxy is a same-type no-op
// Convert a group-expansion pass left behind; it is always fully
// eliminated here, never carried into later passes.
func removeProxies(g *graph.Graph) {
	var toRemove []*graph.Node
	for _, n := range g.Nodes() {
		if n.Special != registry.SpecialProxy {
			continue
		}
		in := n.SoleInput()
		out := n.SoleOutput()

		if in.Linked() {
			g.Bypass(n, out, in.Link)
		} else {
			consumers := append([]*graph.Input(nil), out.Consumers...)
			g.DisconnectOutput(out)
			for _, c := range consumers {
				c.Value = in.Value
			}
		}
		toRemove = append(toRemove, n)
	}
	for _, n := range toRemove {
		g.Remove(n)
	}

	removeDeadAutoconverts(g)
}

// removeDeadAutoconverts deletes any auto-inserted Convert node whose
// output no longer has any consumer, the cleanup proxy removal can leave
// behind when a rewired input reverts to its default value.
func removeDeadAutoconverts(g *graph.Graph) {
	for {
		var dead *graph.Node
		for _, n := range g.Nodes() {
			if n.Special != registry.SpecialAutoconvert {
				continue
			}
			if len(n.SoleOutput().Consumers) == 0 {
				dead = n
				break
			}
		}
		if dead == nil {
			return
		}
		g.DisconnectInput(dead.SoleInput())
		g.Remove(dead)
	}
}
