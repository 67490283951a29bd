package optimize

import (
	"github.com/cyclesgraph/compiler/fold"
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/registry"
)

// expand implements spec 4.D step 2: give each node a chance to split
// itself into a subgraph. Only PrincipledBSDF does so in this registry
// (emission and alpha are both folded out into separate closures so the
// SVM codegen never has to special-case a single node with three
// simultaneous closure-like behaviors).
func expand(g *graph.Graph) {
	for _, n := range g.Nodes() {
		if n.Type.Name == "PrincipledBSDF" {
			expandPrincipled(g, n)
		}
	}
}

func expandPrincipled(g *graph.Graph, n *graph.Node) {
	bsdfOut := n.Output("BSDF")
	emission := n.Input("Emission")
	alpha := n.Input("Alpha")

	hasEmission := emission.Linked() || !emission.Value.IsZero(registry.Color)
	hasAlpha := alpha.Linked() || alpha.Value.Float != 1

	if !hasEmission && !hasAlpha {
		return
	}

	originalConsumers := append([]*graph.Input(nil), bsdfOut.Consumers...)
	g.DisconnectOutput(bsdfOut)
	result := bsdfOut

	if hasEmission {
		add := g.Add(g.Registry.Lookup("AddClosure"))
		em := g.Add(g.Registry.Lookup("Emission"))
		if emission.Linked() {
			g.Connect(emission.Link, em.Input("Color"))
		} else {
			em.Input("Color").Value = emission.Value
		}
		g.DisconnectInput(emission)
		emission.Value = registry.Value{}

		g.Connect(result, add.Input("Closure1"))
		g.Connect(em.Output("Emission"), add.Input("Closure2"))
		result = add.Output("Closure")
	}

	if hasAlpha {
		mix := g.Add(g.Registry.Lookup("MixClosure"))
		transp := g.Add(g.Registry.Lookup("TransparentBSDF"))

		sub := g.Add(g.Registry.Lookup("Math"))
		sub.Input("Type").Value = registry.IntValue(int32(fold.MathSubtract))
		sub.Input("Value1").Value = registry.FloatValue(1)
		if alpha.Linked() {
			g.Connect(alpha.Link, sub.Input("Value2"))
		} else {
			sub.Input("Value2").Value = alpha.Value
		}
		g.DisconnectInput(alpha)
		alpha.Value = registry.FloatValue(1)

		g.Connect(sub.Output("Value"), mix.Input("Fac"))
		g.Connect(result, mix.Input("Closure1"))
		g.Connect(transp.Output("BSDF"), mix.Input("Closure2"))
		result = mix.Output("Closure")
	}

	for _, oc := range originalConsumers {
		g.Connect(result, oc)
	}
}
