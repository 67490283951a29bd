package bump_test

import (
	"testing"

	"github.com/cyclesgraph/compiler/bump"
	"github.com/cyclesgraph/compiler/core/assert"
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/registry"
)

func newTestGraph() (*graph.Graph, *registry.Registry) {
	r := registry.NewStandardRegistry()
	return graph.New(r), r
}

func TestRefineBumpNodesTriplicatesHeightSubgraph(t *testing.T) {
	g, r := newTestGraph()
	val := g.Add(r.Lookup("Value"))
	bumpNode := g.Add(r.Lookup("Bump"))
	g.Connect(val.Output("Value"), bumpNode.Input("Height"))

	before := len(g.Nodes())
	bump.RefineBumpNodes(g)

	assert.For(t, "two clones added").That(len(g.Nodes())).Equals(before + 2)
	assert.For(t, "height input no longer directly linked to the original Value node").
		That(bumpNode.Input("Height").Linked()).Equals(false)
	assert.For(t, "SampleCenter now carries the original producer").
		That(bumpNode.Input("SampleCenter").Link.Node).Equals(val)
	assert.For(t, "SampleX is linked").That(bumpNode.Input("SampleX").Linked()).Equals(true)
	assert.For(t, "SampleY is linked").That(bumpNode.Input("SampleY").Linked()).Equals(true)

	var center, dx, dy int
	for _, n := range g.Nodes() {
		switch n.Bump {
		case graph.BumpCenter:
			center++
		case graph.BumpDX:
			dx++
		case graph.BumpDY:
			dy++
		}
	}
	assert.For(t, "one center-tagged node").That(center).Equals(1)
	assert.For(t, "one dx-tagged node").That(dx).Equals(1)
	assert.For(t, "one dy-tagged node").That(dy).Equals(1)
}

func TestRefineBumpNodesSkipsUnlinkedHeight(t *testing.T) {
	g, r := newTestGraph()
	g.Add(r.Lookup("Bump"))

	before := len(g.Nodes())
	bump.RefineBumpNodes(g)

	assert.For(t, "no nodes added when Height is unlinked").That(len(g.Nodes())).Equals(before)
}

func TestFromDisplacementSynthesizesBumpFromHeight(t *testing.T) {
	g, r := newTestGraph()
	val := g.Add(r.Lookup("Value"))
	g.Connect(val.Output("Value"), g.OutputNode().Input("Displacement"))

	bump.FromDisplacement(g)

	out := g.OutputNode()
	assert.For(t, "Normal input now linked").That(out.Input("Normal").Linked()).Equals(true)
	assert.For(t, "Normal is driven by a SetNormal node").
		That(out.Input("Normal").Link.Node.Type.Name).Equals("SetNormal")

	var bumpNodes, vectorMathNodes int
	for _, n := range g.Nodes() {
		switch n.Type.Name {
		case "Bump":
			bumpNodes++
		case "VectorMath":
			vectorMathNodes++
		}
	}
	assert.For(t, "exactly one synthesized Bump node").That(bumpNodes).Equals(1)
	assert.For(t, "three dot-product VectorMath nodes, one per sample").
		That(vectorMathNodes).Equals(3)
}

func TestFromDisplacementIsNoOpWithoutDisplacement(t *testing.T) {
	g, _ := newTestGraph()
	before := len(g.Nodes())

	bump.FromDisplacement(g)

	assert.For(t, "no nodes added when Displacement is unlinked").That(len(g.Nodes())).Equals(before)
	assert.For(t, "Normal stays unlinked").That(g.OutputNode().Input("Normal").Linked()).Equals(false)
}
