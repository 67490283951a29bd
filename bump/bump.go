// Package bump implements the Bump/Displacement Transformer of spec 4.E:
// duplicating a subgraph into three independently-tagged copies (Center,
// DX, DY) so the renderer can resample the same shader network at three
// slightly offset surface positions and finite-difference the result into
// a perturbed normal.
//
// It is grounded on the teacher's back-reference-safe graph cloning
// (core/data/cloner.go, generalized in graph.CopyNodes) and its plugin-
// style graph-rewrite passes (gapil/compiler/plugins/cloner/cloner.go
// clones and rewires a function body the same way this package clones and
// rewires a node subgraph).
package bump

import (
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/registry"
)

// tagNodes sets every node in set to tag.
func tagNodes(set map[*graph.Node]bool, tag graph.BumpTag) {
	for n := range set {
		n.Bump = tag
	}
}

// RefineBumpNodes implements spec 4.D step 5 "refine_bump_nodes": for
// every Bump node whose Height input is linked, triplicate the subgraph
// feeding Height into Center/DX/DY copies, then rewire Height itself to
// the Center sample and the two clones' corresponding outputs into
// SampleX/SampleY.
func RefineBumpNodes(g *graph.Graph) {
	for _, n := range g.Nodes() {
		if n.Special != registry.SpecialBump {
			continue
		}
		height := n.Input("Height")
		if !height.Linked() {
			continue
		}
		refineOne(g, n, height)
	}
}

func refineOne(g *graph.Graph, bumpNode *graph.Node, height *graph.Input) {
	set := graph.FindDependencies(height)
	set[height.Link.Node] = true

	dx := g.CopyNodes(set)
	dy := g.CopyNodes(set)

	tagNodes(set, graph.BumpCenter)
	tagNodes(nodeSet(dx), graph.BumpDX)
	tagNodes(nodeSet(dy), graph.BumpDY)

	heightProducer := height.Link.Node
	heightOutIdx := height.Link.Index

	g.DisconnectInput(height)
	g.Connect(heightProducer.Outputs[heightOutIdx], bumpNode.Input("SampleCenter"))
	g.Connect(dx[heightProducer].Outputs[heightOutIdx], bumpNode.Input("SampleX"))
	g.Connect(dy[heightProducer].Outputs[heightOutIdx], bumpNode.Input("SampleY"))
}

// nodeSet turns a clone map's value set into a membership set, for tagging.
func nodeSet(clones map[*graph.Node]*graph.Node) map[*graph.Node]bool {
	set := make(map[*graph.Node]bool, len(clones))
	for _, clone := range clones {
		set[clone] = true
	}
	return set
}

// FromDisplacement implements spec 4.D step 5 "bump_from_displacement":
// when the caller has asked for implicit bump (scene displacement_method
// not True), the Displacement output's subgraph is triplicated the same
// way, each copy reduced to a scalar height via a VectorMath(DotProduct)
// against the surface normal, and fed into a freshly synthesized Bump node
// whose resulting Normal replaces the Output node's Normal input through a
// fresh SetNormal node.
func FromDisplacement(g *graph.Graph) {
	out := g.OutputNode()
	disp := out.Input("Displacement")
	if !disp.Linked() {
		return
	}

	set := graph.FindDependencies(disp)
	set[disp.Link.Node] = true

	center := map[*graph.Node]*graph.Node{}
	for n := range set {
		center[n] = n
	}
	dx := g.CopyNodes(set)
	dy := g.CopyNodes(set)

	tagNodes(set, graph.BumpCenter)
	tagNodes(nodeSet(dx), graph.BumpDX)
	tagNodes(nodeSet(dy), graph.BumpDY)

	producer := disp.Link.Node
	outIdx := disp.Link.Index

	geom := g.Add(g.Registry.Lookup("Geometry"))
	bumpNode := g.Add(g.Registry.Lookup("Bump"))

	dot := func(clones map[*graph.Node]*graph.Node) *graph.Output {
		vm := g.Add(g.Registry.Lookup("VectorMath"))
		vm.Input("Type").Value = registry.IntValue(int32(dotProductOp))
		g.Connect(clones[producer].Outputs[outIdx], vm.Input("Vector1"))
		g.Connect(geom.Output("Normal"), vm.Input("Vector2"))
		return vm.Output("Value")
	}

	g.Connect(dot(center), bumpNode.Input("SampleCenter"))
	g.Connect(dot(dx), bumpNode.Input("SampleX"))
	g.Connect(dot(dy), bumpNode.Input("SampleY"))
	g.Connect(geom.Output("Normal"), bumpNode.Input("Normal"))

	setNormal := g.Add(g.Registry.Lookup("SetNormal"))
	g.Connect(bumpNode.Output("Normal"), setNormal.Input("Direction"))

	g.DisconnectInput(out.Input("Normal"))
	g.Connect(setNormal.Output("Normal"), out.Input("Normal"))
}

// dotProductOp is the VectorMath mode ordinal for DotProduct, matching
// fold.VecMathDot's numeric value (the fold package's VectorMathOp enum is
// not imported here to keep this package independent of fold; both are
// grounded on the same node-type contract in registry/builtins.go).
const dotProductOp = 2
